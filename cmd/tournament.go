package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	application "github.com/Error-42/othello-arena/internal"
	"github.com/Error-42/othello-arena/internal/arena"
)

func newTournamentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tournament <agent-list-file> <ms> <concurrency>",
		Short: "Run a round-robin tournament between the agents listed in a file",
		Long: `Every agent plays every other agent twice, once with each color. The report
is a score table with estimated Elo ratings, sorted by score. The list file
contains one agent path per line, resolved relative to the file itself.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, cons, err := setup()
			if err != nil {
				return err
			}

			if ms, msErr := strconv.Atoi(args[1]); msErr != nil || ms <= 0 {
				return fmt.Errorf("%w: <max time> must be a positive integer, got %q", ErrBadArgument, args[1])
			}

			concurrency, err := strconv.Atoi(args[2])
			if err != nil || concurrency < 1 {
				return fmt.Errorf("%w: <concurrency> must be at least 1, got %q", ErrBadArgument, args[2])
			}

			paths, err := readAgentList(args[0])
			if err != nil {
				return err
			}

			factories := make([]arena.PlayerFactory, 0, len(paths))
			for _, path := range paths {
				factory, buildErr := agentFactory(path, args[1])
				if buildErr != nil {
					return buildErr
				}
				factories = append(factories, factory)
			}

			games := arena.BuildRoundRobin(factories, cons)
			batch := arena.New(games, concurrency, cons, arena.SubmodeTournament)

			return application.RunArena(logger, conf, cons, batch)
		},
	}
}

// readAgentList - loads and validates a tournament roster: at least two
// distinct existing agent paths, one per line, relative to the list file.
func readAgentList(listPath string) ([]string, error) {
	content, err := os.ReadFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to read <agent list>: %v", ErrBadArgument, err)
	}

	baseDir := filepath.Dir(listPath)

	var paths []string
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paths = append(paths, filepath.Join(baseDir, line))
	}

	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: agent list file is empty", ErrBadArgument)
	}

	if len(paths) == 1 {
		return nil, fmt.Errorf("%w: agent list only contains one element: %q", ErrBadArgument, paths[0])
	}

	seen := make(map[string]bool, len(paths))
	for _, path := range paths {
		if seen[path] {
			return nil, fmt.Errorf("%w: agent list contains duplicate element %q", ErrBadArgument, path)
		}
		seen[path] = true

		if err = validateAgentPath(path); err != nil {
			return nil, err
		}
	}

	return paths, nil
}

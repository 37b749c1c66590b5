package cmd

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	application "github.com/Error-42/othello-arena/internal"
	"github.com/Error-42/othello-arena/internal/arena"
	"github.com/Error-42/othello-arena/internal/console"
	"github.com/Error-42/othello-arena/internal/game"
	"github.com/Error-42/othello-arena/internal/othello"
	"github.com/Error-42/othello-arena/internal/player"
)

const maxCompareDepth = 5

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <depth> <pairs|all> <concurrency> <agent1> <ms1> <agent2> <ms2>",
		Short: "Compare the strength of two agents over paired games with swapped colors",
		Long: `Play paired games to compare two agents. Games are started from the openings
reachable after <depth> plies (the first ply is fixed to d3 when depth >= 1);
each opening is played twice, once with each agent as X. <pairs> picks that
many openings at random, or "all" plays every one.`,
		Args: cobra.ExactArgs(7),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, cons, err := setup()
			if err != nil {
				return err
			}

			depth, err := strconv.Atoi(args[0])
			if err != nil || depth < 0 {
				return fmt.Errorf("%w: <depth> must be a non-negative integer, got %q", ErrBadArgument, args[0])
			}
			if depth > maxCompareDepth {
				return fmt.Errorf("%w: <depth> can be at most %d", ErrBadArgument, maxCompareDepth)
			}

			concurrency, err := strconv.Atoi(args[2])
			if err != nil || concurrency < 1 {
				return fmt.Errorf("%w: <concurrency> must be at least 1, got %q", ErrBadArgument, args[2])
			}

			first, err := agentFactory(args[3], args[4])
			if err != nil {
				return err
			}
			second, err := agentFactory(args[5], args[6])
			if err != nil {
				return err
			}

			starts, err := compareStarts(depth, args[1], cons)
			if err != nil {
				return err
			}

			games := arena.BuildComparePairs(starts, first, second, cons)
			batch := arena.New(games, concurrency, cons, arena.SubmodeCompare)

			return application.RunArena(logger, conf, cons, batch)
		},
	}
}

// compareStarts - the opening positions for a compare batch: all openings at
// the given depth, or a random sample of them.
func compareStarts(depth int, amount string, cons *console.Console) ([]othello.Position, error) {
	possible := othello.OpeningPositions(depth)

	if amount == "a" || amount == "all" {
		return possible, nil
	}

	pairs, err := strconv.Atoi(amount)
	if err != nil || pairs < 1 {
		return nil, fmt.Errorf("%w: <pairs> must be 'all' or a positive integer, got %q", ErrBadArgument, amount)
	}

	if depth == 0 {
		starts := make([]othello.Position, pairs)
		for i := range starts {
			starts[i] = possible[0]
		}
		return starts, nil
	}

	if pairs > len(possible) {
		cons.Print("Warning: specified pairs of games is higher than possible game starts, number of games adjusted")
		pairs = len(possible)
	}

	rand.Shuffle(len(possible), func(i, j int) {
		possible[i], possible[j] = possible[j], possible[i]
	})

	return possible[:pairs], nil
}

// agentFactory - validates an agent's path and time limit and returns a
// factory producing a fresh player per match.
func agentFactory(path, timeLimitMS string) (arena.PlayerFactory, error) {
	if err := validateAgentPath(path); err != nil {
		return nil, err
	}

	ms, err := strconv.Atoi(timeLimitMS)
	if err != nil || ms <= 0 {
		return nil, fmt.Errorf("%w: <max time> must be a positive integer, got %q", ErrBadArgument, timeLimitMS)
	}

	timeLimit := time.Duration(ms) * time.Millisecond

	return func() game.Player {
		return player.NewAI(path, nil, timeLimit)
	}, nil
}

// Package cmd wires the command line onto the arena engine. Usage errors are
// rejected here, before any match starts.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Error-42/othello-arena/internal/config"
	"github.com/Error-42/othello-arena/internal/console"
)

var (
	ErrBadArgument = errors.New("bad argument")

	configPath   string
	consoleLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "othello-arena",
		Short:         "Run batches of Othello matches between external agent programs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yml", "path to the config file")
	root.PersistentFlags().StringVarP(&consoleLevel, "level", "l", "info", "console level: debug|info|warn|necessary")

	root.AddCommand(newCompareCmd())
	root.AddCommand(newTournamentCmd())
	root.AddCommand(newResultsCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute - runs the CLI; the returned error has already been logged by main.
func Execute() error {
	return newRootCmd().Execute()
}

// setup - loads the config and builds the logger and the status sink shared by
// every command.
func setup() (*config.Config, *slog.Logger, *console.Console, error) {
	conf := config.MustLoad(configPath)

	var logLevel slog.Level
	switch conf.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		return nil, nil, nil, fmt.Errorf("%w: unknown log level %q", ErrBadArgument, conf.LogLevel)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	level, err := console.ParseLevel(consoleLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrBadArgument, err)
	}

	cons := console.New(os.Stdout, level, logger)

	return conf, logger, cons, nil
}

// validateAgentPath - a usage check: the agent program must be an existing
// file.
func validateAgentPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: path %q is not valid", ErrBadArgument, path)
	}

	if info.IsDir() {
		return fmt.Errorf("%w: path %q points to something not a file", ErrBadArgument, path)
	}

	return nil
}

package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Error-42/othello-arena/internal/repository"
	"github.com/Error-42/othello-arena/internal/repository/storage/sqlite"
)

const defaultResultsLimit = 20

func newResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results [n]",
		Short: "List the most recently archived match results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, _, cons, err := setup()
			if err != nil {
				return err
			}

			if conf.Storage.SQLitePath == "" {
				return fmt.Errorf("%w: no sqlite-path configured, nothing has been archived", ErrBadArgument)
			}

			limit := defaultResultsLimit
			if len(args) == 1 {
				limit, err = strconv.Atoi(args[0])
				if err != nil || limit < 1 {
					return fmt.Errorf("%w: [n] must be a positive integer, got %q", ErrBadArgument, args[0])
				}
			}

			storage, err := sqlite.New(conf.Storage.SQLitePath)
			if err != nil {
				return fmt.Errorf("could not open match archive: %w", err)
			}
			defer storage.Close()

			ctx := context.Background()
			if err = storage.Init(ctx); err != nil {
				return fmt.Errorf("could not init match archive: %w", err)
			}

			records, err := repository.NewMatchRepository(storage.Connection).ListRecent(ctx, limit)
			if err != nil {
				return fmt.Errorf("could not list match results: %w", err)
			}

			cons.Print(fmt.Sprintf("%-20s %6s %-30s %-30s", "Finished", "Winner", "X", "O"))
			for _, record := range records {
				cons.Print(fmt.Sprintf("%-20s %6s %-30s %-30s",
					record.FinishedAt.Format("2006-01-02 15:04:05"),
					record.Winner, record.PlayerX, record.PlayerO))
			}

			return nil
		},
	}
}

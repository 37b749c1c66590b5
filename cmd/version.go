package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.12.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "othello-arena v%s\n", version)
		},
	}
}

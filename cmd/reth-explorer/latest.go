package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/explorer"
)

func newLatestCmd() *cobra.Command {
	var count uint64

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the most recent blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.ShowLatest(ctx, count)
			})
		},
	}

	cmd.Flags().Uint64Var(&count, "count", 10, "number of blocks to show")
	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/explorer"
)

func newGasCmd() *cobra.Command {
	var blocks uint64

	cmd := &cobra.Command{
		Use:   "gas",
		Short: "Show gas statistics over recent blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.ShowGas(ctx, blocks)
			})
		},
	}

	cmd.Flags().Uint64Var(&blocks, "blocks", 100, "size of the analysis window")
	return cmd
}

package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/explorer"
)

func newBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <number|hash>",
		Short: "Show a block by number or hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.ShowBlock(ctx, args[0])
			})
		},
	}
}

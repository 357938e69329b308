package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/explorer"
)

func newAccountCmd() *cobra.Command {
	var blockNum uint64

	cmd := &cobra.Command{
		Use:   "account <address>",
		Short: "Show an account's balance, nonce, and contract status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var block *uint64
			if cmd.Flags().Changed("block") {
				block = &blockNum
			}
			return run(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.ShowAccount(ctx, args[0], block)
			})
		},
	}

	cmd.Flags().Uint64Var(&blockNum, "block", 0, "query state at this block instead of latest")
	return cmd
}

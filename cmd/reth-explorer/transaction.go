package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/explorer"
)

func newTransactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "transaction <hash>",
		Aliases: []string{"tx"},
		Short:   "Show a transaction and its receipt",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(ctx context.Context, e *explorer.Explorer) error {
				return e.ShowTransaction(ctx, args[0])
			})
		},
	}
}

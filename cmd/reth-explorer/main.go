package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rethlabs/reth-explorer/internal/config"
	"github.com/rethlabs/reth-explorer/internal/explorer"
	"github.com/rethlabs/reth-explorer/internal/rpc"
)

var (
	cfgPath string
	rpcURL  string
)

func main() {
	root := &cobra.Command{
		Use:   "reth-explorer",
		Short: "Read-only Ethereum chain explorer",
		Long: `reth-explorer queries an Ethereum JSON-RPC node for blocks,
transactions, account state, and gas statistics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "config file path")
	root.PersistentFlags().StringVar(&rpcURL, "rpc-url", "", "JSON-RPC endpoint (overrides config)")

	root.AddCommand(
		newBlockCmd(),
		newTransactionCmd(),
		newAccountCmd(),
		newLatestCmd(),
		newGasCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newExplorer loads configuration, builds the logger, and dials the node.
// The returned cleanup flushes the logger.
func newExplorer(ctx context.Context) (*explorer.Explorer, func(), error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, nil, err
	}
	if rpcURL != "" {
		cfg.Node.URL = rpcURL
	}

	log, err := config.NewLogger(&cfg.Log)
	if err != nil {
		return nil, nil, err
	}

	client, err := rpc.Dial(ctx, cfg.Node.URL, rpc.Options{
		Timeout:        cfg.Node.Timeout.Std(),
		InitialBackoff: cfg.Retry.InitialBackoff.Std(),
		MaxElapsed:     cfg.Retry.MaxElapsed.Std(),
		CacheCapacity:  cfg.Cache.Capacity,
		CacheTTL:       cfg.Cache.TTL.Std(),
	}, log)
	if err != nil {
		_ = log.Sync()
		return nil, nil, err
	}

	cleanup := func() {
		if err := log.Sync(); err != nil {
			// Sync to a terminal fails on some platforms; nothing to do.
			_ = err
		}
	}
	return explorer.New(client, log), cleanup, nil
}

// run wraps a command body with explorer setup and teardown.
func run(cmd *cobra.Command, fn func(ctx context.Context, e *explorer.Explorer) error) error {
	ctx := cmd.Context()
	e, cleanup, err := newExplorer(ctx)
	if err != nil {
		return err
	}
	defer cleanup()
	return fn(ctx, e)
}

// Package explorer wires the RPC client, the stats aggregator, and the
// display layer together behind one method per CLI command.
package explorer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/rethlabs/reth-explorer/internal/display"
	"github.com/rethlabs/reth-explorer/internal/rpc"
	"github.com/rethlabs/reth-explorer/internal/stats"
)

// Explorer executes the read-only queries the CLI exposes.
type Explorer struct {
	client *rpc.Client
	log    *zap.Logger
}

func New(client *rpc.Client, log *zap.Logger) *Explorer {
	return &Explorer{client: client, log: log}
}

// isBlockHash distinguishes a 32-byte hex hash from a decimal block number.
func isBlockHash(id string) bool {
	return strings.HasPrefix(id, "0x") && len(id) == 66
}

// ShowBlock fetches a block by decimal number or 0x-prefixed hash and
// renders it.
func (e *Explorer) ShowBlock(ctx context.Context, id string) error {
	var (
		block *rpc.Block
		err   error
	)
	switch {
	case isBlockHash(id):
		block, err = e.client.GetBlockByHash(ctx, id)
	default:
		var n uint64
		n, err = strconv.ParseUint(id, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid block identifier %q: expected a decimal number or a 0x-prefixed 32-byte hash", id)
		}
		block, err = e.client.GetBlockByNumber(ctx, n)
	}
	if err != nil {
		return err
	}
	display.RenderBlock(block)
	return nil
}

// ShowTransaction fetches a transaction with its receipt and renders it.
func (e *Explorer) ShowTransaction(ctx context.Context, hash string) error {
	tx, err := e.client.GetTransaction(ctx, hash)
	if err != nil {
		return err
	}
	display.RenderTransaction(tx)
	return nil
}

// ShowAccount fetches account state at the given block, or the latest when
// block is nil, and renders it.
func (e *Explorer) ShowAccount(ctx context.Context, address string, block *uint64) error {
	acct, err := e.client.GetAccount(ctx, address, block)
	if err != nil {
		return err
	}
	tag := "latest"
	if block != nil {
		tag = fmt.Sprintf("block %d", *block)
	}
	display.RenderAccount(acct, tag)
	return nil
}

// ShowLatest fetches the most recent count blocks and renders a summary
// table, newest first.
func (e *Explorer) ShowLatest(ctx context.Context, count uint64) error {
	blocks, err := e.client.LatestBlocks(ctx, count)
	if err != nil {
		return err
	}
	display.RenderLatestBlocks(blocks)
	return nil
}

// ShowGas aggregates gas metrics over the most recent blocks and renders
// them.
func (e *Explorer) ShowGas(ctx context.Context, blocks uint64) error {
	gs, err := stats.Collect(ctx, e.client, blocks, e.log)
	if err != nil {
		return err
	}
	display.RenderGasStatistics(gs)
	return nil
}

package rpc

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rethlabs/reth-explorer/internal/hexnum"
)

// latestBlocksConcurrency bounds the fan-out of LatestBlocks so a large
// window does not hammer the node.
const latestBlocksConcurrency = 4

// GetBlockByNumber fetches the block at height n, serving repeated queries
// from the cache. Full transaction objects are requested so the hash list is
// populated regardless of how the node abbreviates it.
func (c *Client) GetBlockByNumber(ctx context.Context, n uint64) (*Block, error) {
	key := fmt.Sprintf("block_%d", n)
	if raw, ok := c.cache.Get(key); ok {
		if block, err := decodeBlock(raw); err == nil {
			c.log.Debug("cache hit", zap.String("key", key))
			return block, nil
		}
	}

	raw, err := c.call(ctx, "eth_getBlockByNumber", hexnum.FormatUint64(n), true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block %d: %w", n, err)
	}

	block, err := decodeBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("block %d: %w", n, err)
	}
	c.cache.Put(key, raw)

	return block, nil
}

// GetBlockByHash fetches the block with the given hash. The cache key
// includes the query mode so number and hash lookups never collide.
func (c *Client) GetBlockByHash(ctx context.Context, blockHash string) (*Block, error) {
	key := fmt.Sprintf("block_hash_%s", blockHash)
	if raw, ok := c.cache.Get(key); ok {
		if block, err := decodeBlock(raw); err == nil {
			c.log.Debug("cache hit", zap.String("key", key))
			return block, nil
		}
	}

	raw, err := c.call(ctx, "eth_getBlockByHash", blockHash, true)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch block %s: %w", blockHash, err)
	}

	block, err := decodeBlock(raw)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", blockHash, err)
	}
	c.cache.Put(key, raw)

	return block, nil
}

// GetLatestBlockNumber returns the current head height. The value is
// inherently time-varying, so it is never cached.
func (c *Client) GetLatestBlockNumber(ctx context.Context) (uint64, error) {
	raw, err := c.call(ctx, "eth_blockNumber")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch latest block number: %w", err)
	}

	var hexStr string
	if err := json.Unmarshal(raw, &hexStr); err != nil {
		return 0, fmt.Errorf("failed to parse block number: %w", err)
	}
	return hexnum.ParseUint64(hexStr)
}

// txEnvelope is the cached payload for a transaction query: both underlying
// responses, so a hit can rebuild the merged entity.
type txEnvelope struct {
	Tx      json.RawMessage `json:"tx"`
	Receipt json.RawMessage `json:"receipt,omitempty"`
}

// GetTransaction fetches the transaction body and its receipt and merges
// them into one entity. The merged pair is cached under the transaction
// hash, independent of the two underlying calls.
func (c *Client) GetTransaction(ctx context.Context, txHash string) (*Transaction, error) {
	key := fmt.Sprintf("tx_%s", txHash)
	if raw, ok := c.cache.Get(key); ok {
		var env txEnvelope
		if err := json.Unmarshal(raw, &env); err == nil {
			if tx, err := decodeTransaction(env.Tx, env.Receipt); err == nil {
				c.log.Debug("cache hit", zap.String("key", key))
				return tx, nil
			}
		}
	}

	txRaw, err := c.call(ctx, "eth_getTransactionByHash", txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction %s: %w", txHash, err)
	}
	receiptRaw, err := c.call(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch receipt for %s: %w", txHash, err)
	}

	tx, err := decodeTransaction(txRaw, receiptRaw)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", txHash, err)
	}

	if cached, err := json.Marshal(txEnvelope{Tx: txRaw, Receipt: receiptRaw}); err == nil {
		c.cache.Put(key, cached)
	}

	return tx, nil
}

// accountEnvelope is the cached payload for an account query: the three raw
// responses that the merged entity is rebuilt from.
type accountEnvelope struct {
	Balance string `json:"balance"`
	Nonce   string `json:"nonce"`
	Code    string `json:"code"`
}

// GetAccount fetches balance, nonce, and code for address at the given block
// and merges them. A nil block pins the query to "latest". The cache key
// includes the resolved block tag so queries against different blocks do not
// collide.
func (c *Client) GetAccount(ctx context.Context, address string, block *uint64) (*Account, error) {
	if err := validateAddress(address); err != nil {
		return nil, err
	}

	blockTag := "latest"
	if block != nil {
		blockTag = hexnum.FormatUint64(*block)
	}

	key := fmt.Sprintf("balance_%s_%s", address, blockTag)
	if raw, ok := c.cache.Get(key); ok {
		var env accountEnvelope
		if err := json.Unmarshal(raw, &env); err == nil {
			if acct, err := buildAccount(address, env); err == nil {
				c.log.Debug("cache hit", zap.String("key", key))
				return acct, nil
			}
		}
	}

	var env accountEnvelope
	for _, q := range []struct {
		method string
		dest   *string
	}{
		{"eth_getBalance", &env.Balance},
		{"eth_getTransactionCount", &env.Nonce},
		{"eth_getCode", &env.Code},
	} {
		raw, err := c.call(ctx, q.method, address, blockTag)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch account %s: %w", address, err)
		}
		if err := json.Unmarshal(raw, q.dest); err != nil {
			return nil, fmt.Errorf("account %s: unexpected %s response: %w", address, q.method, err)
		}
	}

	acct, err := buildAccount(address, env)
	if err != nil {
		return nil, err
	}

	if cached, err := json.Marshal(env); err == nil {
		c.cache.Put(key, cached)
	}

	return acct, nil
}

func buildAccount(address string, env accountEnvelope) (*Account, error) {
	balance, err := hexnum.ParseQuantity(env.Balance)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	nonce, err := hexnum.ParseQuantity(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("failed to parse nonce: %w", err)
	}

	// Code arrives as a hex blob; only its length matters here. "0x" means
	// no deployed code, i.e. an externally owned account.
	codeSize := uint64(len(strings.TrimPrefix(env.Code, "0x")) / 2)

	return &Account{
		Address:  common.HexToAddress(address),
		Balance:  balance,
		Nonce:    nonce,
		CodeSize: codeSize,
	}, nil
}

// LatestBlocks fetches the count most recent blocks, newest first. Blocks
// are fetched with a bounded fan-out; individual failures are logged and
// skipped so one bad block does not empty the listing.
func (c *Client) LatestBlocks(ctx context.Context, count uint64) ([]*Block, error) {
	head, err := c.GetLatestBlockNumber(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	if count > head+1 {
		count = head + 1
	}

	results := make([]*Block, count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(latestBlocksConcurrency)
	for i := uint64(0); i < count; i++ {
		i := i
		g.Go(func() error {
			block, err := c.GetBlockByNumber(gctx, head-i)
			if err != nil {
				c.log.Warn("skipping block",
					zap.Uint64("number", head-i),
					zap.Error(err))
				return nil
			}
			results[i] = block
			return nil
		})
	}
	_ = g.Wait()

	blocks := make([]*Block, 0, count)
	for _, b := range results {
		if b != nil {
			blocks = append(blocks, b)
		}
	}
	return blocks, nil
}

// validateAddress checks that addr is a 20-byte hex string, with or without
// the "0x" prefix.
func validateAddress(addr string) error {
	s := strings.TrimPrefix(addr, "0x")
	if len(s) != common.AddressLength*2 {
		return fmt.Errorf("invalid address %q: expected 20 bytes", addr)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	return nil
}

// Package rpc implements the read-only JSON-RPC client layer: connection
// establishment with a liveness probe, response caching, transient-failure
// retry with exponential backoff, and decoding of hex-encoded responses into
// typed entities.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/rethlabs/reth-explorer/internal/cache"
)

// Options controls the transport timeout, the retry budget, and cache sizing.
type Options struct {
	Timeout        time.Duration // per-request HTTP timeout
	InitialBackoff time.Duration // delay before the first retry
	MaxElapsed     time.Duration // total retry budget per call
	CacheCapacity  int           // bounded entry count
	CacheTTL       time.Duration // entry time-to-live
}

// DefaultOptions returns the stock tuning: 60s request timeout, 30s retry
// budget, 1000 cache entries with a 5 minute TTL.
func DefaultOptions() Options {
	return Options{
		Timeout:        60 * time.Second,
		InitialBackoff: 500 * time.Millisecond,
		MaxElapsed:     30 * time.Second,
		CacheCapacity:  1000,
		CacheTTL:       5 * time.Minute,
	}
}

// Client is the single gateway to the remote node. It owns the response
// cache; the cache is shared by all concurrent operations on one client and
// is safe for concurrent use.
type Client struct {
	url            string
	httpClient     *http.Client
	cache          *cache.Store
	log            *zap.Logger
	initialBackoff time.Duration
	maxElapsed     time.Duration
}

// Dial builds a client for url and immediately issues an eth_chainId probe.
// A failed probe is fatal and is not retried: an unreachable endpoint at
// startup is not considered transient.
func Dial(ctx context.Context, url string, opts Options, log *zap.Logger) (*Client, error) {
	c := &Client{
		url:            url,
		httpClient:     &http.Client{Timeout: opts.Timeout},
		cache:          cache.New(opts.CacheCapacity, opts.CacheTTL),
		log:            log,
		initialBackoff: opts.InitialBackoff,
		maxElapsed:     opts.MaxElapsed,
	}

	raw, err := c.send(ctx, "eth_chainId")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to node at %s: %w", url, err)
	}
	var chainID string
	if err := json.Unmarshal(raw, &chainID); err != nil {
		return nil, fmt.Errorf("failed to connect to node at %s: unexpected chain id: %w", url, err)
	}

	log.Info("connected to node",
		zap.String("url", url),
		zap.String("chain_id", chainID))
	return c, nil
}

// send performs a single JSON-RPC exchange with no retry and returns the raw
// "result" payload.
func (c *Client) send(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", httpResp.StatusCode)
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var resp response
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("invalid JSON response: %w", err)
	}
	if resp.Error != nil {
		return nil, fmt.Errorf("RPC error %d: %s", resp.Error.Code, resp.Error.Message)
	}

	return resp.Result, nil
}

// call wraps send with exponential backoff. The transport cannot distinguish
// transient from permanent failures, so every failure after a successful dial
// is retried (with jitter) until the elapsed budget runs out, at which point
// the most recent failure surfaces to the caller.
func (c *Client) call(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	bo.MaxElapsedTime = c.maxElapsed

	attempt := 0
	return backoff.RetryNotifyWithData(
		func() (json.RawMessage, error) {
			attempt++
			return c.send(ctx, method, params...)
		},
		backoff.WithContext(bo, ctx),
		func(err error, next time.Duration) {
			c.log.Warn("rpc call failed, retrying",
				zap.String("method", method),
				zap.Int("attempt", attempt),
				zap.Duration("next_backoff", next),
				zap.Error(err))
		},
	)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8545", cfg.Node.URL)
	assert.Equal(t, 60*time.Second, cfg.Node.Timeout.Std())
	assert.Equal(t, 30*time.Second, cfg.Retry.MaxElapsed.Std())
	assert.Equal(t, 1000, cfg.Cache.Capacity)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL.Std())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadOverlaysFileOntoDefaults(t *testing.T) {
	path := writeConfig(t, `
node:
  url: https://mainnet.example.com/v1/key
  timeout: 10s
cache:
  capacity: 50
  ttl: 1m
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://mainnet.example.com/v1/key", cfg.Node.URL)
	assert.Equal(t, 10*time.Second, cfg.Node.Timeout.Std())
	assert.Equal(t, 50, cfg.Cache.Capacity)
	assert.Equal(t, time.Minute, cfg.Cache.TTL.Std())
	// Untouched sections keep their defaults.
	assert.Equal(t, 30*time.Second, cfg.Retry.MaxElapsed.Std())
	assert.Equal(t, 500*time.Millisecond, cfg.Retry.InitialBackoff.Std())
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("NODE_RPC_URL", "https://node.example.com:8545")
	path := writeConfig(t, "node:\n  url: ${NODE_RPC_URL}\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://node.example.com:8545", cfg.Node.URL)
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	path := writeConfig(t, "node:\n  timeout: soon\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"empty url", func(c *Config) { c.Node.URL = "" }, "node.url is required"},
		{"bad scheme", func(c *Config) { c.Node.URL = "ws://host:1" }, "invalid node.url scheme"},
		{"missing host", func(c *Config) { c.Node.URL = "http://" }, "missing host"},
		{"zero timeout", func(c *Config) { c.Node.Timeout = 0 }, "node.timeout"},
		{"zero backoff", func(c *Config) { c.Retry.InitialBackoff = 0 }, "retry.initial_backoff"},
		{"zero budget", func(c *Config) { c.Retry.MaxElapsed = 0 }, "retry.max_elapsed"},
		{"zero capacity", func(c *Config) { c.Cache.Capacity = 0 }, "cache.capacity"},
		{"zero ttl", func(c *Config) { c.Cache.TTL = 0 }, "cache.ttl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

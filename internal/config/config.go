// Package config provides YAML configuration loading with environment
// variable expansion, default value application, and validation.
package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so values like "60s" or "5m" parse from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Config is the root configuration structure.
type Config struct {
	Node  Node  `yaml:"node"`
	Retry Retry `yaml:"retry"`
	Cache Cache `yaml:"cache"`
	Log   Log   `yaml:"log"`
}

// Node describes the JSON-RPC endpoint. The URL supports ${VAR} environment
// expansion so API keys can stay out of the file.
type Node struct {
	URL     string   `yaml:"url"`
	Timeout Duration `yaml:"timeout"` // per-request HTTP timeout
}

// Retry bounds the exponential backoff applied to in-flight calls.
type Retry struct {
	InitialBackoff Duration `yaml:"initial_backoff"`
	MaxElapsed     Duration `yaml:"max_elapsed"` // total budget per call
}

// Cache sizes the response cache.
type Cache struct {
	Capacity int      `yaml:"capacity"` // bounded entry count
	TTL      Duration `yaml:"ttl"`
}

// Log configures the structured logger.
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // console or json
}

// Default returns the configuration used when no file is present: a local
// node, a 60s request timeout, a 30s retry budget, and a 1000-entry /
// 5-minute cache.
func Default() *Config {
	return &Config{
		Node:  Node{URL: "http://localhost:8545", Timeout: Duration(60 * time.Second)},
		Retry: Retry{InitialBackoff: Duration(500 * time.Millisecond), MaxElapsed: Duration(30 * time.Second)},
		Cache: Cache{Capacity: 1000, TTL: Duration(5 * time.Minute)},
		Log:   Log{Level: "info", Format: "console"},
	}
}

// Load reads path if it exists, overlaying its values onto the defaults.
// A missing file is not an error. Environment variables referenced as ${VAR}
// in the file are expanded; a .env file in the working directory is loaded
// first so it can supply them.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and warns (to stderr) about suspicious
// values without failing on them.
func (c *Config) Validate() error {
	if c.Node.URL == "" {
		return fmt.Errorf("node.url is required")
	}
	u, err := url.Parse(c.Node.URL)
	if err != nil {
		return fmt.Errorf("invalid node.url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid node.url scheme %q (expected http or https)", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid node.url (missing host)")
	}

	if c.Node.Timeout <= 0 {
		return fmt.Errorf("node.timeout must be > 0")
	}
	if c.Retry.InitialBackoff <= 0 {
		return fmt.Errorf("retry.initial_backoff must be > 0")
	}
	if c.Retry.MaxElapsed <= 0 {
		return fmt.Errorf("retry.max_elapsed must be > 0")
	}
	if c.Cache.Capacity <= 0 {
		return fmt.Errorf("cache.capacity must be > 0")
	}
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0")
	}

	if c.Node.Timeout.Std() < 500*time.Millisecond {
		fmt.Fprintf(os.Stderr, "Warning: node.timeout is very low (%s); requests may fail under normal network jitter\n", c.Node.Timeout.Std())
	}
	if c.Retry.MaxElapsed.Std() > 2*time.Minute {
		fmt.Fprintf(os.Stderr, "Warning: retry.max_elapsed is very high (%s); failures may take a long time to surface\n", c.Retry.MaxElapsed.Std())
	}

	return nil
}

// Package cache provides a bounded, time-expiring store for raw JSON-RPC
// response payloads. Keys are request fingerprints derived from the method
// and its parameters; values are the raw "result" payloads, so a hit can be
// re-decoded without a network round trip.
package cache

import (
	"encoding/json"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Store wraps an expirable LRU. Lookups and insertions are safe under
// concurrent access; entries are evicted by capacity pressure or TTL,
// whichever occurs first.
type Store struct {
	entries *expirable.LRU[string, json.RawMessage]
}

// New creates a store holding at most capacity entries, each living for ttl.
func New(capacity int, ttl time.Duration) *Store {
	return &Store{
		entries: expirable.NewLRU[string, json.RawMessage](capacity, nil, ttl),
	}
}

// Get returns the payload cached under key. Expired entries are treated as
// absent even if not yet physically evicted. A miss never triggers a fetch;
// that is the caller's responsibility.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	return s.entries.Get(key)
}

// Put stores payload under key. Insertion always succeeds; the least
// recently used entry is silently evicted when the store is at capacity.
func (s *Store) Put(key string, payload json.RawMessage) {
	s.entries.Add(key, payload)
}

// Len returns the number of entries currently held, including entries that
// have expired but not yet been evicted.
func (s *Store) Len() int {
	return s.entries.Len()
}

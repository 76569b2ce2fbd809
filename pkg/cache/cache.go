// Package cache stores validation reports keyed by their input.
//
// Validation is deterministic: the same envelope or plan checked with the
// same options always yields the same report, so a cached report can be
// returned instead of re-running the geometry. Three backends are provided:
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for the HTTP API
//   - [NullCache]: caching disabled
//
// Keys are built by a [Keyer] so callers never format them by hand.
package cache

import (
	"context"
	"time"
)

// TTLReport is how long a cached report stays valid.
const TTLReport = 24 * time.Hour

// Cache is a byte-oriented key/value store with expiration.
type Cache interface {
	// Get returns the stored data and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Package cache stores computed layouts keyed by graph content.
//
// Layout computation is deterministic in the graph and the layout
// options, so results can be cached aggressively. Keys combine the
// sha256 hash of the input drawing with the option set (see
// [LayoutKey]). Backends: [FileCache] for the CLI, [RedisCache] for
// server deployments, [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the cached value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

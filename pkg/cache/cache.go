// Package cache stores registry answers between and within invocations.
//
// Values are opaque byte slices addressed by string keys. Three backends are
// provided:
//
//   - [FileCache] persists entries as JSON files with an expiry, for use
//     across CLI runs.
//   - [MemoryCache] is a bounded in-process LRU.
//   - [NullCache] stores nothing.
//
// [Tiered] chains two caches so a persistent cache can sit behind a memory
// cache.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was present. An expired
	// entry is a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Removing a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// QueryKey returns the cache key for an `npm view <pkg> <field>` answer.
func QueryKey(pkg, field string) string {
	return "npm:view:" + pkg + ":" + field
}

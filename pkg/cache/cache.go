// Package cache stores rendered artifacts keyed by a hash of the box and the
// render options.
//
// Three backends implement [Cache]:
//   - [NullCache] never stores anything (caching disabled, tests)
//   - [FileCache] keeps entries as files under a directory (CLI)
//   - [RedisCache] keeps entries in Redis (server, multi-instance)
//
// Keys come from a [Keyer], so callers never build key strings by hand:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(setHash, cache.ArtifactKeyOpts{Kind: "page", Page: 2, Format: "svg"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Entry lifetimes. Results are pure functions of their key, so the TTLs only
// bound disk and memory use.
const (
	TTLSet      = 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value and true on a hit. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores a value. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Package cache provides layout result caching for wireform.
//
// Laying out a document is deterministic, so a content hash of the
// document plus the layout options fully identifies the result. The CLI
// uses a file-backed cache under the XDG cache directory; the HTTP server
// can use Redis to share results across instances; NullCache disables
// caching entirely.
//
// # Usage
//
//	// CLI
//	c, err := cache.NewFileCache(dir)
//
//	// Server
//	c, err := cache.NewRedisCache(ctx, cache.RedisConfig{Addr: "localhost:6379"})
//
//	// Disabled
//	c := cache.NewNullCache()
//
// Keys are produced by a Keyer so CLI and server can never disagree on
// key shape:
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.LayoutKey(docHash, cache.LayoutKeyOpts{Viewport: "narrow"})
package cache

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for caching operations.
var (
	// ErrNotFound is returned when a requested item does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCacheMiss is returned when an item is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)

// Cache is the interface for cache backends.
//
// Get returns (data, hit, error): a miss is not an error, and backends
// treat corrupt or expired entries as misses rather than failures.
type Cache interface {
	// Get retrieves a value from the cache.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// =============================================================================
// Keyer - Cache Key Construction
// =============================================================================

// LayoutKeyOpts parameterizes layout cache keys. Every option that
// changes the computed placements must appear here, otherwise two
// different layouts could collide on one key.
type LayoutKeyOpts struct {
	Viewport          string
	Arrangement       string
	IncludeContainers bool
}

// Keyer generates cache keys for the layout pipeline. Decoding is cheap
// enough that only computed layouts are cached, so one method suffices.
type Keyer interface {
	// LayoutKey generates a key for computed placements.
	LayoutKey(docHash string, opts LayoutKeyOpts) string
}

// DefaultKeyer is the standard key scheme: a namespace prefix plus a
// hash over the identifying components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for computed placements.
func (k *DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts.Viewport, opts.Arrangement,
		opts.IncludeContainers)
}

package cache

import (
	"context"
	"time"
)

// NullCache satisfies Cache without storing anything. It backs the
// --no-cache flag and keeps the pipeline free of nil checks when the
// cache backend is "none".
type NullCache struct{}

// NewNullCache creates a cache that misses on every read.
func NewNullCache() Cache {
	return NullCache{}
}

// Get always misses.
func (NullCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards the layout result.
func (NullCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return nil
}

// Delete is a no-op.
func (NullCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Close is a no-op.
func (NullCache) Close() error {
	return nil
}

var _ Cache = NullCache{}

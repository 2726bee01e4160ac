// Package cache provides the response cache the API client is
// constructed with. Implementations are explicit objects with their own
// lifecycle rather than process-wide singletons, so tests can inject
// and inspect them.
package cache

import (
	"context"
	"time"
)

// Cache stores raw API response bodies keyed by request URL.
type Cache interface {
	// Get returns the cached value, or ErrMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value for the given TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases any background resources.
	Close() error
}

type cacheError string

func (e cacheError) Error() string { return string(e) }

// ErrMiss indicates the key was not found in the cache.
const ErrMiss cacheError = "cache miss"

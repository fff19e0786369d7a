// internal/core/ports/cache.go
package ports

import (
	"context"
	"time"
)

// CacheRepository defines the interface for cache operations. It backs the
// analysis cache, the public vehicle-page cache and the token blacklist.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}) error
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
	DeletePattern(ctx context.Context, pattern string) error
	Exists(ctx context.Context, keys ...string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error

	// GetOrSet fetches through the cache: on a miss it calls fetch, stores
	// the result under key with ttl, and unmarshals it into dest.
	GetOrSet(ctx context.Context, key string, dest interface{},
		fetch func() (interface{}, error), ttl time.Duration) error

	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)

	TTL(ctx context.Context, key string) (time.Duration, error)
	Ping(ctx context.Context) error
}

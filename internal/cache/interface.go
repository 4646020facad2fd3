package cache

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_cache.go -package=mocks movieflix/internal/cache Cache,RefreshTokenCache

// Cache defines the interface for caching operations.
type Cache interface {
	// Set stores a value in cache with TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	// Get retrieves a value from cache. Returns false if key doesn't exist.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Delete removes a key from cache.
	Delete(ctx context.Context, key string) error
	// Incr increments the counter at key and returns the new value.
	// The counter expires window after its first increment.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
	// Ping checks the connection.
	Ping(ctx context.Context) error
}

// Ensure implementations satisfy the Cache interface
var (
	_ Cache = (*Redis)(nil)
	_ Cache = Noop{}
)

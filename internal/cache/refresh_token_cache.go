package cache

import (
	"context"
	"time"

	"movieflix/internal/models"
)

// RefreshTokenCache keeps refresh token records in the cache, keyed by the
// hash of the token string.
type RefreshTokenCache interface {
	// Set caches the record until it expires. Expired records are not cached.
	Set(ctx context.Context, token *models.RefreshToken) error
	// Get returns nil without error on a cache miss.
	Get(ctx context.Context, token string) (*models.RefreshToken, error)
	Delete(ctx context.Context, token string) error
}

// TokenHasher turns a refresh token into the digest stored in cache keys.
// auth.RefreshTokenGenerator satisfies it.
type TokenHasher interface {
	Hash(token string) string
}

type refreshTokenCache struct {
	cache  Cache
	hasher TokenHasher
	now    func() time.Time
}

// NewRefreshTokenCache creates a new RefreshTokenCache.
func NewRefreshTokenCache(cache Cache, hasher TokenHasher) RefreshTokenCache {
	return &refreshTokenCache{cache: cache, hasher: hasher, now: time.Now}
}

// RefreshTokenCacheKey generates a cache key from a refresh token hash.
func RefreshTokenCacheKey(tokenHash string) string {
	return "refresh_token:" + tokenHash
}

func (c *refreshTokenCache) key(token string) string {
	return RefreshTokenCacheKey(c.hasher.Hash(token))
}

func (c *refreshTokenCache) Set(ctx context.Context, token *models.RefreshToken) error {
	ttl := token.ExpiresAt.Sub(c.now())
	if ttl <= 0 {
		return nil
	}
	return c.cache.Set(ctx, c.key(token.Token), token, ttl)
}

func (c *refreshTokenCache) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	found, err := c.cache.Get(ctx, c.key(token), &record)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &record, nil
}

func (c *refreshTokenCache) Delete(ctx context.Context, token string) error {
	return c.cache.Delete(ctx, c.key(token))
}

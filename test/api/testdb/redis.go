//go:build api

package testdb

import (
	"context"
	"fmt"
	"time"

	"movieflix/internal/cache"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// RedisContainer runs Redis for the refresh-token cache, profile cache and rate limits.
type RedisContainer struct {
	Container testcontainers.Container
	Addr      string
	Client    *redis.Client
	// Cache wraps Client the way the server does.
	Cache *cache.Redis
}

// SetupRedis starts a Redis container and connects to it.
func SetupRedis(ctx context.Context) (*RedisContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start redis: %w", err)
	}

	addr, err := container.PortEndpoint(ctx, "6379/tcp", "")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	rc := &RedisContainer{
		Container: container,
		Addr:      addr,
		Client:    client,
		Cache:     cache.NewRedisFromClient(client),
	}

	if err := rc.Cache.Ping(ctx); err != nil {
		_ = rc.Cleanup(ctx)
		return nil, err
	}
	return rc, nil
}

// Cleanup closes the client and terminates the container.
func (rc *RedisContainer) Cleanup(ctx context.Context) error {
	_ = rc.Client.Close()
	if rc.Container != nil {
		return rc.Container.Terminate(ctx)
	}
	return nil
}

// FlushDB drops every key, including rate limit counters.
func (rc *RedisContainer) FlushDB(ctx context.Context) error {
	return rc.Client.FlushDB(ctx).Err()
}

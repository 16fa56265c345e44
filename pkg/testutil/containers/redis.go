//go:build integration

package containers

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// RedisContainer is a throwaway Redis for the guard suites.
type RedisContainer struct {
	Container testcontainers.Container
	URL       string
	Client    *redis.Client
}

// NewRedisContainer starts Redis and returns a pinged client. Manager owns
// the lifetime, so nothing is registered with t.Cleanup.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	c, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis: %v", err)
	}
	abort := func(step string, err error) {
		_ = c.Terminate(ctx)
		t.Fatalf("redis %s: %v", step, err)
	}

	url, err := c.ConnectionString(ctx)
	if err != nil {
		abort("connection string", err)
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		abort("parse url", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		abort("ping", err)
	}
	return &RedisContainer{Container: c, URL: url, Client: rdb}
}

// FlushAll clears every key between tests.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushAll(ctx).Err()
}

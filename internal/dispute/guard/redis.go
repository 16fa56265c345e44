// Package guard keeps a dispute from being resolved by two callers at once.
// The Redis guard coordinates across instances; the memory guard covers a
// single process.
package guard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	id "billsplit/pkg/domain"
	"billsplit/pkg/platform/sentinel"
)

const (
	// Redis key prefix for in-flight resolutions
	resolveKeyPrefix = "billsplit:resolve:"

	defaultTTL = 30 * time.Second
)

// releaseScript deletes the key only if this holder still owns it, so a
// holder whose lease expired cannot release someone else's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard is a lease per report held in Redis with SET NX PX.
type RedisGuard struct {
	client *redis.Client
	ttl    time.Duration
}

// RedisGuardOption configures a RedisGuard instance.
type RedisGuardOption func(*RedisGuard)

// WithTTL bounds how long a lease outlives a crashed holder.
func WithTTL(ttl time.Duration) RedisGuardOption {
	return func(g *RedisGuard) {
		if ttl > 0 {
			g.ttl = ttl
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisGuardOption) *RedisGuard {
	g := &RedisGuard{client: client, ttl: defaultTTL}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Acquire takes the lease for reportID. It returns sentinel.ErrAlreadyUsed
// when the lease is held and wraps sentinel.ErrUnavailable when Redis fails.
func (g *RedisGuard) Acquire(ctx context.Context, reportID id.ReportID) (func(context.Context), error) {
	key := resolveKeyPrefix + reportID.String()
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: acquire resolution lease: %v", sentinel.ErrUnavailable, err)
	}
	if !ok {
		return nil, sentinel.ErrAlreadyUsed
	}

	release := func(ctx context.Context) {
		// Best effort; the TTL reclaims the key if this fails.
		_ = releaseScript.Run(ctx, g.client, []string{key}, token).Err()
	}
	return release, nil
}

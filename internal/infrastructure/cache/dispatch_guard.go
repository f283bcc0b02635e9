package cache

import (
	"context"
	"time"

	"mototrackr/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// RedisDispatchGuard claims (job, status) dispatch keys in redis so a
// replayed status update does not message the customer twice.
//
// SET NX with a TTL: the first caller within the window wins, later callers
// see false. Keys expire on their own; there is nothing to clean up.

type RedisDispatchGuard struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IDispatchGuard = (*RedisDispatchGuard)(nil)

func NewRedisDispatchGuard(rdb *redis.Client, ttl time.Duration) *RedisDispatchGuard {
	return &RedisDispatchGuard{rdb: rdb, ttl: ttl}
}

func (g *RedisDispatchGuard) Acquire(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), g.ttl).Result()
}

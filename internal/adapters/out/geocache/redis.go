package geocache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"cargotracker/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

// RedisCache is a GeocodeCache backed by Redis, letting multiple instances
// share resolved addresses. Expiry is native Redis TTL. Redis being down
// degrades to cache misses; geocoding itself keeps working.
type RedisCache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed geocode cache over an existing client.
func NewRedisCache(rdb *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, logger: logger}
}

// Get returns the cached result for the address, or ok=false on a miss or
// any Redis failure.
func (c *RedisCache) Get(ctx context.Context, address string) (*ports.GeocodeResult, bool) {
	payload, err := c.rdb.Get(ctx, redisKeyPrefix+address).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("geocode cache read failed", "error", err)
		}
		return nil, false
	}

	var result ports.GeocodeResult
	if err := json.Unmarshal(payload, &result); err != nil {
		c.logger.Warn("geocode cache entry corrupted", "address", address, "error", err)
		return nil, false
	}

	return &result, true
}

// Set stores a result for the address with the given TTL. Failures are
// logged and swallowed; caching is best effort.
func (c *RedisCache) Set(ctx context.Context, address string, result *ports.GeocodeResult, ttl time.Duration) {
	if result == nil || ttl <= 0 {
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("geocode cache marshal failed", "address", address, "error", err)
		return
	}

	if err := c.rdb.Set(ctx, redisKeyPrefix+address, payload, ttl).Err(); err != nil {
		c.logger.Warn("geocode cache write failed", "error", err)
	}
}

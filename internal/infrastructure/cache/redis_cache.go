package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/firsthome/affordability-service/internal/infrastructure/config"
)

// RedisCache implements port.Cache on top of a Redis instance. Entries carry
// per-key TTLs so callers own their staleness policy (24h for scraped rates,
// months for tax estimates).
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a cache backed by the configured Redis instance.
func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &RedisCache{client: client}
}

// Get returns the cached value and whether it was present.
func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value with the given TTL. A zero TTL means no expiry.
func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Ping verifies connectivity, for readiness probes.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

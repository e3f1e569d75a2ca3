package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache backed by a Redis server, for deployments where
// multiple API processes should share the standings window.
type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedis connects to Redis from a URL and verifies connectivity.
func NewRedis(ctx context.Context, redisURL string, logger *slog.Logger) (*Redis, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Redis{client: client, logger: logger}, nil
}

// Get retrieves a cached value. Redis errors degrade to a miss: the
// cache is an optimization, never a source of truth.
func (c *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("redis get failed", "key", key, "error", err)
		return nil, false
	}
	return data, true
}

// Set stores a value with a TTL. Errors are logged and swallowed.
func (c *Redis) Set(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		c.logger.Warn("redis set failed", "key", key, "error", err)
	}
}

// Stats returns basic connection statistics.
func (c *Redis) Stats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"backend": "redis",
		"enabled": true,
	}
	if n, err := c.client.DBSize(ctx).Result(); err == nil {
		stats["total_keys"] = n
	}
	if err := c.client.Ping(ctx).Err(); err != nil {
		stats["error"] = err.Error()
	}
	return stats
}

// Close releases the underlying connection pool.
func (c *Redis) Close() error {
	return c.client.Close()
}

package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Cache backed by Redis, letting separate sync runs (and
// separate machines) share one translation memory.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// RedisCacheOption configures a RedisCache.
type RedisCacheOption func(*RedisCache)

// WithTTL sets the expiration of cached translations.
// Default: 30 days. Zero or negative means no expiration.
func WithTTL(ttl time.Duration) RedisCacheOption {
	return func(c *RedisCache) {
		c.ttl = ttl
	}
}

// NewRedisCache creates a Redis-backed translation cache.
// The client should be obtained from OpenRedis.
func NewRedisCache(client redis.UniversalClient, opts ...RedisCacheOption) *RedisCache {
	c := &RedisCache{
		client: client,
		ttl:    30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.ttl < 0 {
		c.ttl = 0
	}
	return c
}

// Get retrieves a cached translation, or ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", fmt.Errorf("translate: redis get: %w", err)
	}
	return value, nil
}

// Set stores a translation with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key, value string) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("translate: redis set: %w", err)
	}
	return nil
}

// OpenRedis connects to Redis from a redis:// or rediss:// URL and verifies
// the connection with a bounded ping retry, so a temporarily unreachable
// server at startup does not immediately fail the run.
func OpenRedis(ctx context.Context, url string) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyRedisURL
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("translate: parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	const attempts = 3
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				_ = client.Close()
				return nil, ctx.Err()
			case <-time.After(time.Second):
			}
		}
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			return client, nil
		}
	}

	_ = client.Close()
	return nil, fmt.Errorf("translate: connect to redis: %w", lastErr)
}

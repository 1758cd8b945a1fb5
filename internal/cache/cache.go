// Package cache provides a Redis-backed key/value cache with TTL support.
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/allisson/notes/internal/errors"
)

// ErrCacheMiss indicates the requested key is not present in the cache.
var ErrCacheMiss = apperrors.Wrap(apperrors.ErrNotFound, "cache miss")

// Cache defines operations for a TTL key/value cache.
type Cache interface {
	// Get returns the cached value for key, or ErrCacheMiss if absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key with the given TTL.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Delete removes key from the cache. Removing an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// redisCache implements Cache on top of a Redis client.
type redisCache struct {
	rdb redis.UniversalClient
}

// NewRedisClient creates a Redis client from a connection URL
// (e.g., "redis://localhost:6379/0").
func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to parse redis url")
	}
	return redis.NewClient(opts), nil
}

// NewRedisCache creates a Cache backed by the given Redis client.
func NewRedisCache(rdb redis.UniversalClient) Cache {
	return &redisCache{rdb: rdb}
}

// Get returns the cached value for key, or ErrCacheMiss if absent.
func (c *redisCache) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrCacheMiss
		}
		return "", apperrors.Wrap(err, "failed to get cache key")
	}
	return val, nil
}

// Set stores value under key with the given TTL.
func (c *redisCache) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to set cache key")
	}
	return nil
}

// Delete removes key from the cache.
func (c *redisCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		return apperrors.Wrap(err, "failed to delete cache key")
	}
	return nil
}

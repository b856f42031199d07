// Package cache provides a tag-aware cache with Redis and in-process backends.
package cache

import (
	"context"
	"errors"
	"time"

	"community-portal-backend/internal/logger"
)

// ErrCacheMiss is returned by Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache stores JSON-serialized values with optional tags. Invalidating a tag
// evicts every entry that was stored with it.
type Cache interface {
	// Get decodes the value stored under key into dest
	Get(ctx context.Context, key string, dest any) error
	// Set stores value under key for ttl and associates it with tags
	Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error
	// Forget removes a single key
	Forget(ctx context.Context, key string) error
	// InvalidateTags removes every key associated with any of the tags
	InvalidateTags(ctx context.Context, tags ...string) error
	// Ping checks the backend is reachable
	Ping(ctx context.Context) error
}

// Remember returns the cached value for key, or calls producer and caches its result.
// Concurrent misses may each call producer; the last writer wins.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, producer func(context.Context) (T, error), tags ...string) (T, error) {
	var cached T
	err := c.Get(ctx, key, &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		logger.WithContext(ctx).WithField("key", key).Warnf("cache read failed: %v", err)
	}

	value, err := producer(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if err := c.Set(ctx, key, value, ttl, tags...); err != nil {
		logger.WithContext(ctx).WithField("key", key).Warnf("cache write failed: %v", err)
	}
	return value, nil
}

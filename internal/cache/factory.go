package cache

import (
	"fmt"

	"community-portal-backend/internal/config"
	apperrors "community-portal-backend/internal/errors"

	"github.com/redis/go-redis/v9"
)

// keyPrefix namespaces cache keys when Redis is shared with other services
const keyPrefix = "community_portal:"

// New builds the cache selected by CACHE_DRIVER. The returned client is nil for the memory driver.
func New(cfg *config.Config) (Cache, *redis.Client, error) {
	switch cfg.CacheDriver {
	case "memory":
		return NewMemoryCache(cfg.CacheMemoryMaxBytes), nil, nil
	case "", "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		return NewRedisCache(client, keyPrefix), client, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCacheDriver, cfg.CacheDriver)
	}
}

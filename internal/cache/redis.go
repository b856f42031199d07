package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
)

const tagKeyPrefix = "cache:tag:"

// tagScript adds a key to a tag set and only ever extends the set's lifetime, so the
// set outlives every key it lists. A ttl of 0 makes the set persistent.
var tagScript = redis.NewScript(`
redis.call('SADD', KEYS[1], ARGV[1])
local ttl = tonumber(ARGV[2])
if ttl <= 0 then
  redis.call('PERSIST', KEYS[1])
  return 0
end
local current = redis.call('PTTL', KEYS[1])
if current == -1 and redis.call('SCARD', KEYS[1]) > 1 then
  return 0
end
if current < ttl then
  redis.call('PEXPIRE', KEYS[1], ttl)
end
return 1
`)

// RedisCache keeps values as strings and one Redis set per tag listing its keys
type RedisCache struct {
	client *redis.Client
	prefix string
}

var _ Cache = (*RedisCache)(nil)

// NewRedisCache creates a Redis-backed cache. prefix namespaces every key.
func NewRedisCache(client *redis.Client, prefix string) *RedisCache {
	return &RedisCache{client: client, prefix: prefix}
}

func (r *RedisCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisCache) tagKey(tag string) string {
	return r.prefix + tagKeyPrefix + tag
}

// Get decodes the value stored under key into dest
func (r *RedisCache) Get(ctx context.Context, key string, dest any) error {
	raw, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := sonic.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

// Set stores value and registers key in every tag set
func (r *RedisCache) Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(key), data, ttl)
	for _, tag := range tags {
		tagScript.Eval(ctx, pipe, []string{r.tagKey(tag)}, r.key(key), ttl.Milliseconds())
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Forget removes a single key
func (r *RedisCache) Forget(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

// InvalidateTags deletes every member of the tag sets along with the sets themselves
func (r *RedisCache) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		tagKey := r.tagKey(tag)
		members, err := r.client.SMembers(ctx, tagKey).Result()
		if err != nil {
			return fmt.Errorf("redis smembers %s: %w", tag, err)
		}
		keys := append(members, tagKey)
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("redis invalidate %s: %w", tag, err)
		}
	}
	return nil
}

// Ping checks the Redis connection
func (r *RedisCache) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

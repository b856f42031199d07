package cache

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/VictoriaMetrics/fastcache"
	"github.com/bytedance/sonic"
)

// expiryHeaderLen is the size of the big-endian unix-nano expiry stored before each payload
const expiryHeaderLen = 8

// MemoryCache is an in-process cache backed by fastcache. Each entry carries
// its own expiry header and tags are tracked in a guarded index.
type MemoryCache struct {
	cache *fastcache.Cache
	now   func() time.Time

	mu   sync.Mutex
	tags map[string]map[string]struct{}
}

var _ Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a MemoryCache holding at most maxBytes (default 32MB)
func NewMemoryCache(maxBytes int) *MemoryCache {
	if maxBytes <= 0 {
		maxBytes = 32 * 1024 * 1024
	}
	return &MemoryCache{
		cache: fastcache.New(maxBytes),
		now:   time.Now,
		tags:  make(map[string]map[string]struct{}),
	}
}

// Get decodes the value stored under key into dest
func (m *MemoryCache) Get(ctx context.Context, key string, dest any) error {
	entry := m.cache.GetBig(nil, []byte(key))
	if len(entry) < expiryHeaderLen {
		return ErrCacheMiss
	}

	expiresAt := int64(binary.BigEndian.Uint64(entry[:expiryHeaderLen]))
	if expiresAt != 0 && m.now().UnixNano() >= expiresAt {
		m.cache.Del([]byte(key))
		return ErrCacheMiss
	}

	if err := sonic.Unmarshal(entry[expiryHeaderLen:], dest); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

// Set stores value with an expiry header and records its tags
func (m *MemoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration, tags ...string) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	var expiresAt int64
	if ttl > 0 {
		expiresAt = m.now().Add(ttl).UnixNano()
	}

	entry := make([]byte, expiryHeaderLen+len(data))
	binary.BigEndian.PutUint64(entry[:expiryHeaderLen], uint64(expiresAt))
	copy(entry[expiryHeaderLen:], data)
	m.cache.SetBig([]byte(key), entry)

	if len(tags) > 0 {
		m.mu.Lock()
		for _, tag := range tags {
			keys, ok := m.tags[tag]
			if !ok {
				keys = make(map[string]struct{})
				m.tags[tag] = keys
			}
			keys[key] = struct{}{}
		}
		m.mu.Unlock()
	}
	return nil
}

// Forget removes a single key
func (m *MemoryCache) Forget(ctx context.Context, key string) error {
	m.cache.Del([]byte(key))
	return nil
}

// InvalidateTags removes every key recorded under the tags
func (m *MemoryCache) InvalidateTags(ctx context.Context, tags ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, tag := range tags {
		for key := range m.tags[tag] {
			m.cache.Del([]byte(key))
		}
		delete(m.tags, tag)
	}
	return nil
}

// Ping always succeeds for the in-process cache
func (m *MemoryCache) Ping(ctx context.Context) error {
	return nil
}

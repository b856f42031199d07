package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type aboutView struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// CacheBehaviourSuite runs the same contract against every backend
type CacheBehaviourSuite struct {
	suite.Suite
	newCache func() Cache
	cache    Cache
	ctx      context.Context
}

func (s *CacheBehaviourSuite) SetupTest() {
	s.cache = s.newCache()
	s.ctx = context.Background()
}

func (s *CacheBehaviourSuite) TestGetMiss() {
	var v aboutView
	err := s.cache.Get(s.ctx, "absent", &v)
	s.True(errors.Is(err, ErrCacheMiss))
}

func (s *CacheBehaviourSuite) TestSetGet() {
	s.Require().NoError(s.cache.Set(s.ctx, "about_us_page", aboutView{Title: "About", Count: 3}, time.Hour, "pages"))

	var v aboutView
	s.Require().NoError(s.cache.Get(s.ctx, "about_us_page", &v))
	s.Equal("About", v.Title)
	s.Equal(int64(3), v.Count)
}

func (s *CacheBehaviourSuite) TestForget() {
	s.Require().NoError(s.cache.Set(s.ctx, "k", aboutView{Title: "x"}, time.Hour))
	s.Require().NoError(s.cache.Forget(s.ctx, "k"))

	var v aboutView
	s.True(errors.Is(s.cache.Get(s.ctx, "k", &v), ErrCacheMiss))
}

func (s *CacheBehaviourSuite) TestInvalidateTags() {
	s.Require().NoError(s.cache.Set(s.ctx, "about_us_page", aboutView{Title: "About"}, time.Hour, "pages", "about_us"))
	s.Require().NoError(s.cache.Set(s.ctx, "contact_page", aboutView{Title: "Contact"}, time.Hour, "pages"))
	s.Require().NoError(s.cache.Set(s.ctx, "untagged", aboutView{Title: "Other"}, time.Hour))

	s.Require().NoError(s.cache.InvalidateTags(s.ctx, "about_us"))

	var v aboutView
	s.True(errors.Is(s.cache.Get(s.ctx, "about_us_page", &v), ErrCacheMiss))
	s.NoError(s.cache.Get(s.ctx, "contact_page", &v))
	s.Equal("Contact", v.Title)

	s.Require().NoError(s.cache.InvalidateTags(s.ctx, "pages"))
	s.True(errors.Is(s.cache.Get(s.ctx, "contact_page", &v), ErrCacheMiss))
	s.NoError(s.cache.Get(s.ctx, "untagged", &v))
}

func (s *CacheBehaviourSuite) TestInvalidateUnknownTag() {
	s.NoError(s.cache.InvalidateTags(s.ctx, "never-used"))
}

func (s *CacheBehaviourSuite) TestRemember() {
	calls := 0
	producer := func(ctx context.Context) (aboutView, error) {
		calls++
		return aboutView{Title: "Built", Count: int64(calls)}, nil
	}

	first, err := Remember(s.ctx, s.cache, "about_us_page", time.Hour, producer, "about_us")
	s.Require().NoError(err)
	second, err := Remember(s.ctx, s.cache, "about_us_page", time.Hour, producer, "about_us")
	s.Require().NoError(err)

	s.Equal(1, calls)
	s.Equal(first, second)

	s.Require().NoError(s.cache.InvalidateTags(s.ctx, "about_us"))
	third, err := Remember(s.ctx, s.cache, "about_us_page", time.Hour, producer, "about_us")
	s.Require().NoError(err)
	s.Equal(2, calls)
	s.Equal(int64(2), third.Count)
}

func (s *CacheBehaviourSuite) TestRememberProducerError() {
	wantErr := errors.New("db down")
	_, err := Remember(s.ctx, s.cache, "k", time.Hour, func(ctx context.Context) (aboutView, error) {
		return aboutView{}, wantErr
	})
	s.ErrorIs(err, wantErr)

	var v aboutView
	s.True(errors.Is(s.cache.Get(s.ctx, "k", &v), ErrCacheMiss))
}

func TestMemoryCache(t *testing.T) {
	suite.Run(t, &CacheBehaviourSuite{newCache: func() Cache { return NewMemoryCache(0) }})
}

func TestRedisCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	suite.Run(t, &CacheBehaviourSuite{newCache: func() Cache {
		mr.FlushAll()
		return NewRedisCache(client, "test:")
	}})
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(0)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", aboutView{Title: "x"}, time.Minute))

	var v aboutView
	require.NoError(t, c.Get(ctx, "k", &v))

	now = now.Add(2 * time.Minute)
	assert.True(t, errors.Is(c.Get(ctx, "k", &v), ErrCacheMiss))
}

func TestRedisCacheExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCache(client, "")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", aboutView{Title: "x"}, time.Minute, "t"))
	assert.True(t, mr.Exists("cache:tag:t"))

	mr.FastForward(2 * time.Minute)

	var v aboutView
	assert.True(t, errors.Is(c.Get(ctx, "k", &v), ErrCacheMiss))
	assert.NoError(t, c.Ping(ctx))
}

func TestRedisTagSetOutlivesItsLongestKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCache(client, "")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "long", aboutView{Title: "long"}, time.Hour, "pages"))
	require.NoError(t, c.Set(ctx, "short", aboutView{Title: "short"}, time.Minute, "pages"))
	assert.Equal(t, time.Hour, mr.TTL("cache:tag:pages"))

	mr.FastForward(2 * time.Minute)
	require.NoError(t, c.InvalidateTags(ctx, "pages"))

	var v aboutView
	assert.True(t, errors.Is(c.Get(ctx, "long", &v), ErrCacheMiss))
}

func TestRedisTagSetWithPersistentKey(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewRedisCache(client, "")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "forever", aboutView{Title: "f"}, 0, "about_us"))
	require.NoError(t, c.Set(ctx, "brief", aboutView{Title: "b"}, time.Minute, "about_us"))
	assert.Equal(t, time.Duration(0), mr.TTL("cache:tag:about_us"))

	mr.FastForward(time.Hour)
	require.NoError(t, c.InvalidateTags(ctx, "about_us"))

	var v aboutView
	assert.True(t, errors.Is(c.Get(ctx, "forever", &v), ErrCacheMiss))
}

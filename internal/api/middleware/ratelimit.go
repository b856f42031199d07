package middleware

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RateLimitResult is the outcome of a single limiter check
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter decides whether the caller identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (*RateLimitResult, error)
}

// RedisLimiter is a GCRA limiter shared by every instance through Redis
type RedisLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

var _ Limiter = (*RedisLimiter)(nil)

// NewRedisLimiter allows perMinute requests per key and minute
func NewRedisLimiter(client *redis.Client, perMinute int) *RedisLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &RedisLimiter{
		limiter: redis_rate.NewLimiter(client),
		limit:   redis_rate.PerMinute(perMinute),
	}
}

// Allow consumes one request from key's budget
func (l *RedisLimiter) Allow(ctx context.Context, key string) (*RateLimitResult, error) {
	res, err := l.limiter.Allow(ctx, key, l.limit)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	return &RateLimitResult{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}

// RateLimit rejects callers over budget with 429. The key combines scope with the
// authenticated user id or the client IP. A nil limiter or a limiter error lets the request through.
func RateLimit(limiter Limiter, scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		res, err := limiter.Allow(c, rateLimitKey(c, scope))
		if err != nil {
			logger.WithContext(c).Warnf("rate limit check failed, allowing request: %v", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(res.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if !res.Allowed {
			retryAfter := int(math.Ceil(res.RetryAfter.Seconds()))
			if retryAfter < 1 {
				retryAfter = 1
			}
			telemetry.RateLimitedTotal.WithLabelValues(routeLabel(c)).Inc()
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}

// rateLimitKey prefers the authenticated user id over the client IP
func rateLimitKey(c *gin.Context, scope string) string {
	if userID := c.GetString(auth.UserIDKey); userID != "" {
		return "ratelimit:" + scope + ":user:" + userID
	}
	return "ratelimit:" + scope + ":ip:" + c.ClientIP()
}

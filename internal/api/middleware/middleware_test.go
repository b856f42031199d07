package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"community-portal-backend/internal/auth"
	"community-portal-backend/internal/config"
	"community-portal-backend/internal/logger"
	"community-portal-backend/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(router *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	t.Run("generates id", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", nil)
		id := w.Header().Get(RequestIDHeader)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("reuses inbound id", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{AllowedOrigins: []string{"http://localhost:3000"}}
	router := gin.New()
	router.Use(CORS(cfg))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", map[string]string{"Origin": "http://evil.test"})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := perform(router, http.MethodOptions, "/ping", map[string]string{"Origin": "http://localhost:3000"})
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
	})
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := perform(router, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"An unexpected error occurred."}`, w.Body.String())
}

func TestLoggerPassesThrough(t *testing.T) {
	router := gin.New()
	router.Use(Logger())
	router.GET("/teapot", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	w := perform(router, http.MethodGet, "/teapot", nil)
	assert.Equal(t, http.StatusTeapot, w.Code)
}

func TestMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200"))
	perform(router, http.MethodGet, "/items/42", nil)
	perform(router, http.MethodGet, "/items/43", nil)
	after := testutil.ToFloat64(telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "200"))
	assert.Equal(t, before+2, after)

	unmatched := testutil.ToFloat64(telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "<no-route>", "404"))
	perform(router, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, unmatched+1, testutil.ToFloat64(telemetry.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "<no-route>", "404")))
}

type fakeLimiter struct {
	budget int
	keys   []string
	err    error
}

func (f *fakeLimiter) Allow(_ context.Context, key string) (*RateLimitResult, error) {
	f.keys = append(f.keys, key)
	if f.err != nil {
		return nil, f.err
	}
	if f.budget <= 0 {
		return &RateLimitResult{Allowed: false, Limit: 2, RetryAfter: 1500 * time.Millisecond}, nil
	}
	f.budget--
	return &RateLimitResult{Allowed: true, Limit: 2, Remaining: f.budget}, nil
}

func TestRateLimit(t *testing.T) {
	t.Run("rejects over budget", func(t *testing.T) {
		limiter := &fakeLimiter{budget: 2}
		router := gin.New()
		router.POST("/subscribe", RateLimit(limiter, "newsletter"), func(c *gin.Context) { c.Status(http.StatusCreated) })

		assert.Equal(t, http.StatusCreated, perform(router, http.MethodPost, "/subscribe", nil).Code)
		w := perform(router, http.MethodPost, "/subscribe", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

		w = perform(router, http.MethodPost, "/subscribe", nil)
		require.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "2", w.Header().Get("Retry-After"))
		assert.JSONEq(t, `{"success":false,"message":"Too many requests. Please try again later."}`, w.Body.String())
		assert.Contains(t, limiter.keys[0], "ratelimit:newsletter:ip:")
	})

	t.Run("keys by user when authenticated", func(t *testing.T) {
		limiter := &fakeLimiter{budget: 5}
		router := gin.New()
		router.POST("/reports", func(c *gin.Context) {
			c.Set(auth.UserIDKey, "user-1")
		}, RateLimit(limiter, "reports"), func(c *gin.Context) { c.Status(http.StatusOK) })

		perform(router, http.MethodPost, "/reports", nil)
		assert.Equal(t, []string{"ratelimit:reports:user:user-1"}, limiter.keys)
	})

	t.Run("limiter failure lets request through", func(t *testing.T) {
		limiter := &fakeLimiter{err: errors.New("redis down")}
		router := gin.New()
		router.POST("/subscribe", RateLimit(limiter, "newsletter"), func(c *gin.Context) { c.Status(http.StatusCreated) })

		assert.Equal(t, http.StatusCreated, perform(router, http.MethodPost, "/subscribe", nil).Code)
	})

	t.Run("nil limiter", func(t *testing.T) {
		router := gin.New()
		router.POST("/subscribe", RateLimit(nil, "newsletter"), func(c *gin.Context) { c.Status(http.StatusCreated) })

		assert.Equal(t, http.StatusCreated, perform(router, http.MethodPost, "/subscribe", nil).Code)
	})
}

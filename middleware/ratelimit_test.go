package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func TestMemoryLimiterQuota(t *testing.T) {
	limiter := NewMemoryLimiter(60, time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	for i := 0; i < 60; i++ {
		assert.True(t, limiter.Consume(ctx, "10.0.0.1"), "request %d should be allowed", i+1)
	}
	assert.False(t, limiter.Consume(ctx, "10.0.0.1"), "request 61 should be denied")
}

func TestMemoryLimiterKeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute)
	defer limiter.Stop()

	ctx := context.Background()
	assert.True(t, limiter.Consume(ctx, "10.0.0.1"))
	assert.True(t, limiter.Consume(ctx, "10.0.0.1"))
	assert.False(t, limiter.Consume(ctx, "10.0.0.1"))

	assert.True(t, limiter.Consume(ctx, "10.0.0.2"), "a fresh key has its own quota")
}

func TestMemoryLimiterRefills(t *testing.T) {
	limiter := NewMemoryLimiter(2, 100*time.Millisecond)
	defer limiter.Stop()

	ctx := context.Background()
	assert.True(t, limiter.Consume(ctx, "k"))
	assert.True(t, limiter.Consume(ctx, "k"))
	assert.False(t, limiter.Consume(ctx, "k"))

	time.Sleep(120 * time.Millisecond)
	assert.True(t, limiter.Consume(ctx, "k"), "tokens refill over the window")
}

func TestRateLimitMiddlewareRejectsWith429(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute)
	defer limiter.Stop()

	r := gin.New()
	r.Use(RateLimit(limiter))
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	do := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ok", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1234").Code)

	w := do("10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
	assert.Contains(t, w.Body.String(), "42901")

	// a different caller is not affected
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1234").Code)
}

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"binance-relay/errors"
	"binance-relay/pkg/logger"
	"binance-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Limiter grants or denies one request for a caller key. It is the only
// shared mutable state in the relay and must be safe for concurrent use. It
// is injected rather than package-global so a distributed implementation can
// replace the in-memory one in a multi-process deployment.
type Limiter interface {
	Consume(ctx context.Context, key string) bool
}

// MemoryLimiter keeps one token bucket per caller key, refilled at
// requests/window. Buckets idle for ten minutes are dropped by a background
// sweep.
type MemoryLimiter struct {
	buckets  sync.Map // key -> *bucket
	limit    rate.Limit
	burst    int
	stopOnce sync.Once
	stop     chan struct{}
}

type bucket struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	seen    time.Time
}

// NewMemoryLimiter creates a limiter allowing requests per window for each
// key, with a burst of the full quota.
func NewMemoryLimiter(requests int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		limit: rate.Limit(float64(requests) / window.Seconds()),
		burst: requests,
		stop:  make(chan struct{}),
	}
	go l.cleanup()
	return l
}

// Consume takes one token from the key's bucket, creating it on first use.
func (l *MemoryLimiter) Consume(_ context.Context, key string) bool {
	b := l.getBucket(key)

	b.mu.Lock()
	b.seen = time.Now()
	b.mu.Unlock()

	return b.limiter.Allow()
}

// Stop terminates the cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *MemoryLimiter) getBucket(key string) *bucket {
	if v, ok := l.buckets.Load(key); ok {
		return v.(*bucket)
	}

	b := &bucket{
		limiter: rate.NewLimiter(l.limit, l.burst),
		seen:    time.Now(),
	}
	actual, loaded := l.buckets.LoadOrStore(key, b)
	if !loaded {
		logger.Debugf("Created rate limit bucket for %s", key)
	}
	return actual.(*bucket)
}

// cleanup 定期清理不活跃的令牌桶
func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			now := time.Now()
			l.buckets.Range(func(key, value any) bool {
				b := value.(*bucket)
				b.mu.Lock()
				idle := now.Sub(b.seen) > 10*time.Minute
				b.mu.Unlock()
				if idle {
					l.buckets.Delete(key)
					logger.Debugf("Cleaned up idle rate limit bucket for %v", key)
				}
				return true
			})
		}
	}
}

// RateLimit rejects requests with 429 once the caller's quota is spent. Keys
// are client IPs; the check runs before any handler logic.
func RateLimit(limiter Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Consume(c.Request.Context(), key) {
			metrics.GetMetrics().RateLimitRejections.Inc()
			logger.Infof("Rate limit exceeded for %s on %s", key, c.Request.URL.Path)
			errors.RespondWithError(c, http.StatusTooManyRequests,
				errors.NewRateLimitExceededError(key))
			return
		}

		c.Next()
	}
}

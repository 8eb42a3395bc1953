package middleware

import (
	"context"
	"fmt"
	"time"

	"binance-relay/config"
	"binance-relay/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter is a fixed-window counter shared by every relay process
// pointing at the same Redis. One INCR per request; the window key expires
// on its own.
type RedisLimiter struct {
	client    *redis.Client
	keyPrefix string
	requests  int
	window    time.Duration
}

// NewRedisLimiter connects to Redis and verifies the connection before
// returning the limiter.
func NewRedisLimiter(cfg config.RedisConfig, requests int, window time.Duration) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     100,
		MinIdleConns: 10,
		MaxRetries:   3,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = "binance_relay:rate:"
	}

	return &RedisLimiter{
		client:    client,
		keyPrefix: keyPrefix,
		requests:  requests,
		window:    window,
	}, nil
}

// Consume counts the request against the key's current window. Redis errors
// fail open: the relay keeps serving rather than rejecting everything when
// Redis is down.
func (l *RedisLimiter) Consume(ctx context.Context, key string) bool {
	k := l.keyPrefix + key

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		logger.Errorf("Redis rate limit check failed for %s: %v", key, err)
		return true
	}
	if n == 1 {
		l.client.Expire(ctx, k, l.window)
	}

	return n <= int64(l.requests)
}

// Close releases the Redis connection pool.
func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

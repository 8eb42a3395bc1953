package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"binance-relay/config"
	"binance-relay/middleware"
	"binance-relay/pkg/logger"
	"binance-relay/router"
	"binance-relay/upstream"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Init("binance-relay")
		logger.Errorf("Failed to load config: %v", err)
		os.Exit(1)
	}

	logger.InitWithConfig(logger.Config{
		ServiceName: "binance-relay",
		Mode:        "console",
		Level:       cfg.Log.Level,
		Encoding:    cfg.Log.Encoding,
	})
	defer logger.Close()

	limiter, err := buildLimiter(cfg)
	if err != nil {
		logger.Errorf("Failed to initialize rate limiter: %v", err)
		os.Exit(1)
	}

	up := upstream.New(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.Timeout)*time.Millisecond)

	r := router.SetupRouter(up, limiter)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	logger.Infof("Relay starting on port %d, upstream %s", cfg.Port, cfg.Upstream.BaseURL)
	logger.Infof("Rate limit: %d requests per %ds per client (%s backend)",
		cfg.RateLimit.Requests, cfg.RateLimit.Window, cfg.RateLimit.Backend)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf("Failed to start server: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
	if err := up.Close(); err != nil {
		logger.Errorf("Error closing upstream client: %v", err)
	}
	if closer, ok := limiter.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Errorf("Error closing rate limiter: %v", err)
		}
	}

	logger.Info("Server exited")
}

func buildLimiter(cfg *config.Config) (middleware.Limiter, error) {
	window := time.Duration(cfg.RateLimit.Window) * time.Second

	switch cfg.RateLimit.Backend {
	case "redis":
		return middleware.NewRedisLimiter(cfg.RateLimit.Redis, cfg.RateLimit.Requests, window)
	default:
		return middleware.NewMemoryLimiter(cfg.RateLimit.Requests, window), nil
	}
}

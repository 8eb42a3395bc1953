package router

import (
	"time"

	"binance-relay/config"
	"binance-relay/handler"
	"binance-relay/middleware"
	"binance-relay/upstream"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRouter assembles the middleware chain and the relay route table.
func SetupRouter(up *upstream.Client, limiter middleware.Limiter) *gin.Engine {
	cfg := config.GetConfig()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "no-referrer",
	}))
	r.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", handler.HeaderAPIKey, handler.HeaderAPISecret},
		MaxAge:       12 * time.Hour,
	}))

	prometheusMiddleware := middleware.NewPrometheusMiddleware()
	r.Use(prometheusMiddleware.Monitor())
	r.Use(middleware.AccessLog())

	h := handler.NewRelayHandler(up)

	// Banner and metrics are served locally and stay outside the quota.
	r.GET("/", h.Index)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/")
	api.Use(middleware.RateLimit(limiter))
	{
		api.GET("/ping", h.Ping())

		api.GET("/price/:symbol", h.Price())
		api.GET("/price", h.Price())
		api.GET("/prices", h.Prices())
		api.GET("/exchangeInfo", h.ExchangeInfo())
		api.GET("/klines", h.Klines())
		api.GET("/ticker/24hr", h.Ticker24h())

		api.GET("/balances", h.Balances())
		api.GET("/account", h.Account())
		api.GET("/openOrders", h.OpenOrders())
		api.GET("/myTrades", h.MyTrades())
	}

	return r
}

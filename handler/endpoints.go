package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index is the service banner.
func (h *RelayHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "binance-relay",
	})
}

// Ping checks connectivity to the upstream exchange.
func (h *RelayHandler) Ping() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/ping",
		Reshape: func(status int, _ []byte) (interface{}, error) {
			return gin.H{"status": "ok", "upstream_status": status}, nil
		},
	})
}

// Price returns the latest price for one symbol.
func (h *RelayHandler) Price() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/ticker/price",
		Required:     []string{"symbol"},
		Reshape:      reshapePrice,
	})
}

// Prices returns the full price list as a symbol-to-price map.
func (h *RelayHandler) Prices() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/ticker/price",
		Reshape:      reshapePrices,
	})
}

// ExchangeInfo passes the exchange metadata through unchanged.
func (h *RelayHandler) ExchangeInfo() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/exchangeInfo",
	})
}

// Klines passes candlestick data through unchanged.
func (h *RelayHandler) Klines() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/klines",
		Required:     []string{"symbol", "interval", "limit"},
	})
}

// Ticker24h passes 24h ticker statistics through unchanged.
func (h *RelayHandler) Ticker24h() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/ticker/24hr",
		Optional:     []string{"symbol"},
	})
}

// Balances returns the account's non-empty balances.
func (h *RelayHandler) Balances() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/account",
		Signed:       true,
		Reshape:      reshapeBalances,
	})
}

// Account passes the raw account payload through unchanged.
func (h *RelayHandler) Account() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/account",
		Signed:       true,
	})
}

// OpenOrders lists open orders, optionally scoped to one symbol.
func (h *RelayHandler) OpenOrders() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/openOrders",
		Signed:       true,
		Optional:     []string{"symbol"},
	})
}

// MyTrades lists the account's trades for a symbol.
func (h *RelayHandler) MyTrades() gin.HandlerFunc {
	return h.Relay(Endpoint{
		UpstreamPath: "/api/v3/myTrades",
		Signed:       true,
		Required:     []string{"symbol"},
		Optional:     []string{"limit", "fromId", "startTime", "endTime"},
	})
}

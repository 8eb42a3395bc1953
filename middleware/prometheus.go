package middleware

import (
	"strconv"
	"time"

	"binance-relay/pkg/metrics"

	"github.com/gin-gonic/gin"
)

type PrometheusMiddleware struct {
	metrics *metrics.RelayMetrics
}

func NewPrometheusMiddleware() *PrometheusMiddleware {
	return &PrometheusMiddleware{
		metrics: metrics.GetMetrics(),
	}
}

// Monitor records request count, latency and in-flight gauge per route. The
// route label is the gin template (e.g. /price/:symbol), not the raw path,
// to keep cardinality bounded.
func (m *PrometheusMiddleware) Monitor() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.RequestsInFlight.WithLabelValues(route).Inc()

		c.Next()

		m.metrics.RequestsInFlight.WithLabelValues(route).Dec()

		duration := time.Since(startTime).Milliseconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		m.metrics.RequestsTotal.WithLabelValues(route, statusCode).Inc()
		m.metrics.RequestDuration.WithLabelValues(route).Observe(float64(duration))
	}
}

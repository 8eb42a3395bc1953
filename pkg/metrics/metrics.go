package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type RelayMetrics struct {
	RequestsTotal         *prometheus.CounterVec
	RequestDuration       *prometheus.HistogramVec
	RequestsInFlight      *prometheus.GaugeVec
	RateLimitRejections   prometheus.Counter
	UpstreamRequestsTotal *prometheus.CounterVec
	UpstreamDuration      *prometheus.HistogramVec
	UpstreamErrors        *prometheus.CounterVec
}

var (
	DefaultMetrics *RelayMetrics
)

func InitMetrics() *RelayMetrics {
	metrics := &RelayMetrics{
		// Inbound request counter
		// Labels: route (gin route template), status_code
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "binance_relay",
				Name:      "requests_total",
				Help:      "Total number of inbound requests",
			},
			[]string{"route", "status_code"},
		),

		// Inbound request latency histogram (milliseconds)
		// Labels: route
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "binance_relay",
				Name:      "request_duration_milliseconds",
				Help:      "Inbound request duration in milliseconds",
				Buckets:   []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 30000},
			},
			[]string{"route"},
		),

		// Concurrent inbound requests
		// Labels: route
		RequestsInFlight: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "binance_relay",
				Name:      "requests_in_flight",
				Help:      "Current number of inbound requests being processed",
			},
			[]string{"route"},
		),

		// Requests rejected by the rate limiter before reaching a handler
		RateLimitRejections: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: "binance_relay",
				Name:      "rate_limit_rejections_total",
				Help:      "Total number of requests rejected by the rate limiter",
			},
		),

		// Outbound calls to the exchange
		// Labels: endpoint (upstream path), status_code
		UpstreamRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "binance_relay",
				Name:      "upstream_requests_total",
				Help:      "Total number of requests sent to the upstream exchange",
			},
			[]string{"endpoint", "status_code"},
		),

		// Outbound call latency histogram (milliseconds)
		// Labels: endpoint
		UpstreamDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "binance_relay",
				Name:      "upstream_request_duration_milliseconds",
				Help:      "Upstream request duration in milliseconds",
				Buckets:   []float64{10, 50, 100, 200, 500, 1000, 2000, 5000, 10000, 30000},
			},
			[]string{"endpoint"},
		),

		// Failed outbound calls
		// Labels: endpoint, error_type (rejected, transport)
		UpstreamErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "binance_relay",
				Name:      "upstream_errors_total",
				Help:      "Total number of failed upstream requests",
			},
			[]string{"endpoint", "error_type"},
		),
	}

	DefaultMetrics = metrics
	return metrics
}

func GetMetrics() *RelayMetrics {
	if DefaultMetrics == nil {
		return InitMetrics()
	}
	return DefaultMetrics
}

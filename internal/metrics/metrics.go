package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/birddigital/cachecontrol"
)

// ServeMetrics provides Prometheus metrics for the static file server
type ServeMetrics struct {
	// HTTP request latency histogram
	RequestDuration *prometheus.HistogramVec

	// HTTP requests total counter
	RequestsTotal *prometheus.CounterVec

	// Responses that received a Cache-Control header, by MIME type
	CacheableResponses *prometheus.CounterVec

	// Responses that passed through without decoration
	PassthroughResponses prometheus.Counter
}

// NewServeMetrics creates and registers static server metrics
func NewServeMetrics(reg prometheus.Registerer) *ServeMetrics {
	factory := promauto.With(reg)

	return &ServeMetrics{
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "staticserve_http_request_duration_seconds",
				Help: "HTTP request latency in seconds",
				Buckets: []float64{
					0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0,
				},
			},
			[]string{"method"},
		),

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staticserve_http_requests_total",
				Help: "Total number of HTTP requests processed",
			},
			[]string{"method", "status"},
		),

		CacheableResponses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staticserve_cacheable_responses_total",
				Help: "Responses decorated with a Cache-Control header, by MIME type",
			},
			[]string{"mime_type"},
		),

		PassthroughResponses: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "staticserve_responses_passthrough_total",
				Help: "Responses returned without Cache-Control decoration",
			},
		),
	}
}

// RecordResponse records a completed request and whether its response was
// decorated with a Cache-Control header.
func (m *ServeMetrics) RecordResponse(method string, status int, durationSeconds float64, contentType string, decorated bool) {
	m.RequestDuration.WithLabelValues(method).Observe(durationSeconds)
	m.RequestsTotal.WithLabelValues(method, statusLabel(status)).Inc()

	if decorated {
		m.CacheableResponses.WithLabelValues(cachecontrol.MimeTypeFromString(contentType).String()).Inc()
	} else {
		m.PassthroughResponses.Inc()
	}
}

// statusLabel buckets status codes into their class ("2xx", "4xx", ...)
// to keep label cardinality low.
func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}

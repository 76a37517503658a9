package metrics

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Toluwaa-o/string-analyzer/pkg/config"
)

// RequestMetrics tracks HTTP request processing.
//
// Metrics:
//   - <ns>_http_requests_total: request count by method, route, status
//   - <ns>_http_request_duration_seconds: latency histogram by method, route
type RequestMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRequestMetrics creates and registers request metrics with the
// provided registry.
func NewRequestMetrics(cfg config.MetricsConfig, registry *prometheus.Registry) *RequestMetrics {
	rm := &RequestMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				// In-memory scans finish fast; sub-millisecond buckets matter.
				Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"method", "route"},
		),
	}

	registry.MustRegister(rm.requestsTotal, rm.requestDuration)
	return rm
}

// Observe records one completed request.
func (rm *RequestMetrics) Observe(method, path string, status int, duration time.Duration) {
	route := NormalizeRoute(path)
	rm.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	rm.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// NormalizeRoute collapses request paths onto their route patterns so the
// string values stored under /strings/{value} cannot blow up label
// cardinality.
func NormalizeRoute(path string) string {
	if path == "/strings/filter-by-natural-language" {
		return path
	}
	if strings.HasPrefix(path, "/strings/") && len(path) > len("/strings/") {
		return "/strings/{value}"
	}
	return path
}

package middleware

import (
	"net/http"
	"time"

	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/metrics"
)

// Metrics records one observation per request in the collector's request
// metrics: a count by method, route, and status, plus a latency
// histogram. Paths are normalized to route patterns before labeling.
func Metrics(rm *metrics.RequestMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			rm.Observe(r.Method, r.URL.Path, rw.statusCode, time.Since(start))
		})
	}
}

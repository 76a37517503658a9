package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout enforces a per-request deadline via context.WithTimeout.
// Handlers observe the deadline through the request context; the store
// operations themselves never block, so in practice this only guards
// against slow clients holding a handler open.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

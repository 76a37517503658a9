package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Toluwaa-o/string-analyzer/pkg/api"
)

// Recovery recovers from panics in HTTP handlers and returns a 500 error
// response. The panic and stack trace are logged for debugging; no
// internal detail reaches the client.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(r.Context())

				slog.ErrorContext(r.Context(), "panic in handler",
					"error", err,
					"request_id", requestID,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				api.WriteJSON(w, http.StatusInternalServerError,
					api.NewServerError("an internal error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

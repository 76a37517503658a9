package handlers

import (
	"net/http"
	"time"

	"github.com/Toluwaa-o/string-analyzer/pkg/api"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
)

// HealthHandler serves GET /health for liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a liveness handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler for liveness checks.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().Unix(),
	})
}

// ReadyHandler serves GET /ready for readiness probes. The service is
// ready once the store is constructed; the record count is included for
// operator convenience.
type ReadyHandler struct {
	Store *store.Store
}

// NewReadyHandler creates a readiness handler over the given store.
func NewReadyHandler(s *store.Store) *ReadyHandler {
	return &ReadyHandler{Store: s}
}

// ServeHTTP implements http.Handler for readiness checks.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Store == nil {
		api.WriteJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "not_ready",
			"timestamp": time.Now().Unix(),
		})
		return
	}

	api.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ready",
		"records":   h.Store.Len(),
		"timestamp": time.Now().Unix(),
	})
}

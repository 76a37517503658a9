package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code. Encoding
// errors are logged rather than surfaced: the status line is already on
// the wire by the time encoding can fail.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError maps the error through HandleError and writes the resulting
// JSON error response.
func WriteError(w http.ResponseWriter, err error) {
	status, resp := HandleError(err)
	WriteJSON(w, status, resp)
}

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toluwaa-o/string-analyzer/pkg/store"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	NewHealthHandler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Timestamp int64  `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.InDelta(t, time.Now().Unix(), resp.Timestamp, 5)
}

func TestReadyHandler(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Put(store.NewRecord("hello")))

	h := &ReadyHandler{Store: s}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Records int    `json:"records"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, 1, resp.Records)
}

func TestReadyHandlerNoStore(t *testing.T) {
	h := &ReadyHandler{}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

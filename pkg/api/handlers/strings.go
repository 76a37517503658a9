package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Toluwaa-o/string-analyzer/pkg/analyzer"
	"github.com/Toluwaa-o/string-analyzer/pkg/api"
	"github.com/Toluwaa-o/string-analyzer/pkg/filter"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
	"github.com/Toluwaa-o/string-analyzer/pkg/telemetry/metrics"
)

// StringsHandler serves the /strings endpoints.
type StringsHandler struct {
	store    *store.Store
	analysis *metrics.AnalysisMetrics
	maxBody  int64
}

// NewStringsHandler creates a handler over the given store. The metrics
// may be nil, in which case nothing is recorded. A non-positive maxBody
// falls back to the default request body limit.
func NewStringsHandler(s *store.Store, am *metrics.AnalysisMetrics, maxBody int64) *StringsHandler {
	return &StringsHandler{store: s, analysis: am, maxBody: maxBody}
}

// Create handles POST /strings: analyze the submitted value and insert
// the record. 201 with the record on success, 400 on a missing or empty
// value, 409 when the trimmed string's hash is already stored.
func (h *StringsHandler) Create(w http.ResponseWriter, r *http.Request) {
	value, err := api.ParseCreateStringRequest(r, h.maxBody)
	if err != nil {
		api.WriteError(w, err)
		return
	}

	rec := store.NewRecord(value)
	if err := h.store.Put(rec); err != nil {
		api.WriteError(w, err)
		return
	}

	if h.analysis != nil {
		h.analysis.StringAnalyzed()
	}
	slog.DebugContext(r.Context(), "string stored",
		"id", rec.ID,
		"length", rec.Properties.Length,
	)

	api.WriteJSON(w, http.StatusCreated, rec)
}

// List handles GET /strings: apply the structured filter parameters to
// every stored record. The structured min_length is inclusive here,
// unlike the natural-language path.
func (h *StringsHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria, err := api.ParseListCriteria(r.URL.Query())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	matched := filter.Apply(h.store.List(), criteria)

	api.WriteJSON(w, http.StatusOK, api.ListResponse{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: criteria.Fields(),
	})
}

// Query handles GET /strings/filter-by-natural-language: interpret the
// free-text query with the substring heuristics, then filter. 400 when
// no heuristic matches.
func (h *StringsHandler) Query(w http.ResponseWriter, r *http.Request) {
	query, err := api.ParseNaturalLanguageQuery(r.URL.Query())
	if err != nil {
		api.WriteError(w, err)
		return
	}

	criteria, err := filter.Interpret(query)
	if err != nil {
		if h.analysis != nil {
			h.analysis.NLQuery(metrics.OutcomeUnparsable)
		}
		api.WriteError(w, err)
		return
	}
	if h.analysis != nil {
		h.analysis.NLQuery(metrics.OutcomeParsed)
	}

	matched := filter.Apply(h.store.List(), criteria)

	api.WriteJSON(w, http.StatusOK, api.QueryResponse{
		Data:  matched,
		Count: len(matched),
		InterpretedQuery: api.InterpretedQuery{
			Original:      query,
			ParsedFilters: criteria.Fields(),
		},
	})
}

// Get handles GET /strings/{value}: hash the raw path segment and look
// the record up. The segment is hashed verbatim, so a value stored with
// surrounding whitespace is found by its trimmed form only.
func (h *StringsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := analyzer.Hash(r.PathValue("value"))

	rec, err := h.store.Get(id)
	if err != nil {
		api.WriteError(w, err)
		return
	}
	api.WriteJSON(w, http.StatusOK, rec)
}

// Delete handles DELETE /strings/{value}: 204 with an empty body on
// success, 404 for an unknown hash.
func (h *StringsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := analyzer.Hash(r.PathValue("value"))

	if err := h.store.Delete(id); err != nil {
		api.WriteError(w, err)
		return
	}

	slog.DebugContext(r.Context(), "string deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Toluwaa-o/string-analyzer/pkg/analyzer"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
)

// newTestMux mirrors the server's route table over a fresh store.
func newTestMux(t *testing.T) (*http.ServeMux, *store.Store) {
	t.Helper()

	s := store.New()
	h := NewStringsHandler(s, nil, 0)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /strings", h.Create)
	mux.HandleFunc("GET /strings", h.List)
	mux.HandleFunc("GET /strings/filter-by-natural-language", h.Query)
	mux.HandleFunc("GET /strings/{value}", h.Get)
	mux.HandleFunc("DELETE /strings/{value}", h.Delete)
	return mux, s
}

func doJSON(t *testing.T, mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func createString(t *testing.T, mux *http.ServeMux, value string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"value": value})
	require.NoError(t, err)
	return doJSON(t, mux, http.MethodPost, "/strings", string(body))
}

func TestCreateString(t *testing.T) {
	mux, _ := newTestMux(t)

	w := createString(t, mux, "racecar")
	require.Equal(t, http.StatusCreated, w.Code)

	var rec struct {
		ID         string `json:"id"`
		Value      string `json:"value"`
		Properties struct {
			Length                int            `json:"length"`
			IsPalindrome          bool           `json:"is_palindrome"`
			UniqueCharacters      int            `json:"unique_characters"`
			WordCount             int            `json:"word_count"`
			SHA256Hash            string         `json:"sha256_hash"`
			CharacterFrequencyMap map[string]int `json:"character_frequency_map"`
		} `json:"properties"`
		CreatedAt string `json:"created_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))

	assert.Equal(t, "racecar", rec.Value)
	assert.Equal(t, analyzer.Hash("racecar"), rec.ID)
	assert.Equal(t, rec.Properties.SHA256Hash, rec.ID)
	assert.Equal(t, 7, rec.Properties.Length)
	assert.True(t, rec.Properties.IsPalindrome)
	assert.Equal(t, 4, rec.Properties.UniqueCharacters)
	assert.Equal(t, 1, rec.Properties.WordCount)
	assert.Equal(t, map[string]int{"r": 2, "a": 2, "c": 2, "e": 1}, rec.Properties.CharacterFrequencyMap)

	// Timestamps serialize as ISO-8601 / RFC 3339.
	_, err := time.Parse(time.RFC3339, rec.CreatedAt)
	assert.NoError(t, err)
}

func TestCreateStringDuplicate(t *testing.T) {
	mux, _ := newTestMux(t)

	require.Equal(t, http.StatusCreated, createString(t, mux, "hello").Code)

	w := createString(t, mux, "hello")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCreateStringTrimmedDuplicate(t *testing.T) {
	// The hash is over the trimmed value, so padded input collides.
	mux, _ := newTestMux(t)

	require.Equal(t, http.StatusCreated, createString(t, mux, "hello").Code)
	assert.Equal(t, http.StatusConflict, createString(t, mux, "  hello  ").Code)
}

func TestCreateStringInvalidBody(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing value field", `{}`},
		{"empty value", `{"value": ""}`},
		{"wrong type", `{"value": 42}`},
		{"malformed JSON", `{"value": `},
		{"empty body", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, mux, http.MethodPost, "/strings", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateStringBodyTooLarge(t *testing.T) {
	h := NewStringsHandler(store.New(), nil, 16)

	body := fmt.Sprintf(`{"value": %q}`, strings.Repeat("x", 64))
	req := httptest.NewRequest(http.MethodPost, "/strings", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Create(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "exceeds maximum size")
}

func TestGetString(t *testing.T) {
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "racecar").Code)

	w := doJSON(t, mux, http.MethodGet, "/strings/racecar", "")
	require.Equal(t, http.StatusOK, w.Code)

	var rec store.Record
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, "racecar", rec.Value)
	assert.True(t, rec.Properties.IsPalindrome)
}

func TestGetStringNotFound(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/strings/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetStringHashesRawSegment(t *testing.T) {
	// The path segment is hashed verbatim; a padded lookup of a trimmed
	// record misses because the stored id is the trimmed hash.
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "  abc  ").Code)

	w := doJSON(t, mux, http.MethodGet, "/strings/abc", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, mux, http.MethodGet, "/strings/"+url.PathEscape("  abc  "), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteString(t *testing.T) {
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "hello").Code)

	w := doJSON(t, mux, http.MethodDelete, "/strings/hello", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, w.Body.Len(), "delete response body must be empty")

	w = doJSON(t, mux, http.MethodGet, "/strings/hello", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, mux, http.MethodDelete, "/strings/hello", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type listResponse struct {
	Data []struct {
		Value      string `json:"value"`
		Properties struct {
			Length       int  `json:"length"`
			IsPalindrome bool `json:"is_palindrome"`
			WordCount    int  `json:"word_count"`
		} `json:"properties"`
	} `json:"data"`
	Count          int            `json:"count"`
	FiltersApplied map[string]any `json:"filters_applied"`
}

func listStrings(t *testing.T, mux *http.ServeMux, query string) listResponse {
	t.Helper()

	w := doJSON(t, mux, http.MethodGet, "/strings"+query, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (r listResponse) values() []string {
	out := make([]string, 0, len(r.Data))
	for _, d := range r.Data {
		out = append(out, d.Value)
	}
	return out
}

func TestListAllStrings(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"first", "second", "third"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	resp := listStrings(t, mux, "")
	assert.Equal(t, 3, resp.Count)
	assert.Equal(t, []string{"first", "second", "third"}, resp.values())
	assert.Empty(t, resp.FiltersApplied)
}

func TestListEmptyStoreReturnsArray(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/strings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestListFilterPalindrome(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"racecar", "hello", "madam"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	resp := listStrings(t, mux, "?is_palindrome=true")
	assert.Equal(t, []string{"racecar", "madam"}, resp.values())
	assert.Equal(t, map[string]any{"is_palindrome": true}, resp.FiltersApplied)
}

func TestListFilterMinLengthInclusive(t *testing.T) {
	// Structured min_length keeps a record of exactly that length.
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "hello").Code)

	resp := listStrings(t, mux, "?min_length=5")
	assert.Equal(t, []string{"hello"}, resp.values())

	resp = listStrings(t, mux, "?min_length=6")
	assert.Empty(t, resp.values())
}

func TestListFilterCombined(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"hi", "hello", "hello world", "greetings"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	resp := listStrings(t, mux, "?min_length=5&max_length=9&word_count=1")
	assert.Equal(t, []string{"hello", "greetings"}, resp.values())
	assert.Equal(t, map[string]any{
		"min_length": float64(5),
		"max_length": float64(9),
		"word_count": float64(1),
	}, resp.FiltersApplied)
}

func TestListFilterContainsCharacter(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"apple", "cherry", "banana"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	resp := listStrings(t, mux, "?contains_character=a")
	assert.Equal(t, []string{"apple", "banana"}, resp.values())
}

func TestListMalformedParams(t *testing.T) {
	mux, _ := newTestMux(t)

	tests := []struct {
		name  string
		query string
	}{
		{"bad bool", "?is_palindrome=maybe"},
		{"bad int", "?min_length=five"},
		{"bad word count", "?word_count=1.5"},
		{"multi-char contains", "?contains_character=ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, mux, http.MethodGet, "/strings"+tt.query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

type queryResponse struct {
	Data []struct {
		Value string `json:"value"`
	} `json:"data"`
	Count            int `json:"count"`
	InterpretedQuery struct {
		Original      string         `json:"original"`
		ParsedFilters map[string]any `json:"parsed_filters"`
	} `json:"interpreted_query"`
}

func queryStrings(t *testing.T, mux *http.ServeMux, query string) (*httptest.ResponseRecorder, queryResponse) {
	t.Helper()

	target := "/strings/filter-by-natural-language?query=" + url.QueryEscape(query)
	w := doJSON(t, mux, http.MethodGet, target, "")

	var resp queryResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestNaturalLanguagePalindromes(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"racecar", "hello", "madam"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	w, resp := queryStrings(t, mux, "Show me palindromic strings")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, "Show me palindromic strings", resp.InterpretedQuery.Original)
	assert.Equal(t, map[string]any{"is_palindrome": true}, resp.InterpretedQuery.ParsedFilters)
}

func TestNaturalLanguageLongerThanIsExclusive(t *testing.T) {
	// A record of length exactly 5 is kept by structured min_length=5
	// but excluded by "longer than 5": the interpreter stores 6 and the
	// comparison is strictly greater.
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "hello").Code)

	structured := listStrings(t, mux, "?min_length=5")
	assert.Equal(t, []string{"hello"}, structured.values())

	w, resp := queryStrings(t, mux, "strings longer than 5")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, resp.Count)
	assert.Equal(t, map[string]any{"min_length": float64(6)}, resp.InterpretedQuery.ParsedFilters)
}

func TestNaturalLanguageLongerThanMatches(t *testing.T) {
	mux, _ := newTestMux(t)
	require.Equal(t, http.StatusCreated, createString(t, mux, "a much longer value").Code)
	require.Equal(t, http.StatusCreated, createString(t, mux, "short").Code)

	w, resp := queryStrings(t, mux, "strings longer than 6")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "a much longer value", resp.Data[0].Value)
}

func TestNaturalLanguageSingleWordContainingLetter(t *testing.T) {
	mux, _ := newTestMux(t)
	for _, v := range []string{"banana", "two words", "cherry"} {
		require.Equal(t, http.StatusCreated, createString(t, mux, v).Code)
	}

	w, resp := queryStrings(t, mux, "single word strings containing the letter b")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "banana", resp.Data[0].Value)
	assert.Equal(t, map[string]any{
		"word_count":         float64(1),
		"contains_character": "b",
	}, resp.InterpretedQuery.ParsedFilters)
}

func TestNaturalLanguageUnparsable(t *testing.T) {
	mux, _ := newTestMux(t)

	w, _ := queryStrings(t, mux, "show me everything")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unable to parse")
}

func TestNaturalLanguageMissingQueryParam(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet, "/strings/filter-by-natural-language", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNaturalLanguageRouteWinsOverValueRoute(t *testing.T) {
	// The literal segment must not be treated as a string lookup even
	// though it matches GET /strings/{value} shape.
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, http.MethodGet,
		fmt.Sprintf("/strings/filter-by-natural-language?query=%s", url.QueryEscape("palindromes")), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestMux(t)

	w := doJSON(t, mux, http.MethodPut, "/strings", `{"value":"x"}`)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

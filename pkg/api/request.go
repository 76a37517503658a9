package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"unicode/utf8"

	"github.com/Toluwaa-o/string-analyzer/pkg/filter"
)

// DefaultMaxRequestBodySize is the request body limit used when the
// caller does not supply one (1MB). Analyzed strings are short; anything
// near this limit is abuse.
const DefaultMaxRequestBodySize = 1 << 20

// ParseCreateStringRequest parses and validates the body of POST /strings.
// It enforces the given body size limit (0 means the default) and
// requires a present, non-empty "value" field. The returned string is
// the raw submitted value, untrimmed; trimming is the analyzer's concern.
func ParseCreateStringRequest(r *http.Request, maxBody int64) (string, error) {
	if maxBody <= 0 {
		maxBody = DefaultMaxRequestBodySize
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody+1))
	if err != nil {
		return "", fmt.Errorf("failed to read request body: %w", err)
	}
	if int64(len(body)) > maxBody {
		return "", NewRequestError(
			fmt.Sprintf("request body exceeds maximum size of %d bytes", maxBody),
			"body", CodeRequestTooLarge)
	}

	var req CreateStringRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", NewRequestError(fmt.Sprintf("invalid JSON: %v", err), "body", CodeInvalidJSON)
	}

	if req.Value == nil {
		return "", NewRequestError("missing required field 'value'", "value", CodeMissingValue)
	}
	if *req.Value == "" {
		return "", NewRequestError("'value' must not be empty", "value", CodeInvalidValue)
	}
	return *req.Value, nil
}

// ParseListCriteria parses the structured filter parameters of
// GET /strings. Absent parameters leave their predicate unset; any value
// that fails to parse is a RequestError naming the parameter.
func ParseListCriteria(params url.Values) (filter.Criteria, error) {
	var c filter.Criteria

	if raw := params.Get("is_palindrome"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return filter.Criteria{}, NewRequestError(
				fmt.Sprintf("invalid boolean value %q", raw), "is_palindrome", CodeInvalidValue)
		}
		c.IsPalindrome = &v
	}

	if v, err := intParam(params, "min_length"); err != nil {
		return filter.Criteria{}, err
	} else {
		c.MinLength = v
	}
	if v, err := intParam(params, "max_length"); err != nil {
		return filter.Criteria{}, err
	} else {
		c.MaxLength = v
	}
	if v, err := intParam(params, "word_count"); err != nil {
		return filter.Criteria{}, err
	} else {
		c.WordCount = v
	}

	if raw := params.Get("contains_character"); raw != "" {
		if utf8.RuneCountInString(raw) > 1 {
			return filter.Criteria{}, NewRequestError(
				"must be a single character", "contains_character", CodeInvalidValue)
		}
		c.ContainsCharacter = raw
	}

	return c, nil
}

// ParseNaturalLanguageQuery extracts and validates the "query" parameter
// of GET /strings/filter-by-natural-language.
func ParseNaturalLanguageQuery(params url.Values) (string, error) {
	if !params.Has("query") {
		return "", NewRequestError("missing required parameter 'query'", "query", CodeMissingValue)
	}
	return params.Get("query"), nil
}

func intParam(params url.Values, name string) (*int, error) {
	raw := params.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, NewRequestError(
			fmt.Sprintf("invalid integer value %q", raw), name, CodeInvalidValue)
	}
	return &v, nil
}

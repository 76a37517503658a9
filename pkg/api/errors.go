package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Toluwaa-o/string-analyzer/pkg/filter"
	"github.com/Toluwaa-o/string-analyzer/pkg/store"
)

// RequestError is a boundary validation failure: a malformed body,
// parameter, or query. It always maps to HTTP 400.
type RequestError struct {
	Message string
	Param   string
	Code    string
}

func (e *RequestError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("invalid request: %s (param %q)", e.Message, e.Param)
	}
	return fmt.Sprintf("invalid request: %s", e.Message)
}

// NewRequestError creates a RequestError for the given parameter.
func NewRequestError(message, param, code string) *RequestError {
	return &RequestError{Message: message, Param: param, Code: code}
}

// HandleError maps an error to its HTTP status code and JSON error
// response. Domain errors map directly per the error model: validation
// and unparsable queries to 400, unknown hashes to 404, duplicate
// strings to 409. Anything unrecognized becomes a 500 without leaking
// internals; nothing is retried.
func HandleError(err error) (int, *ErrorResponse) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, NewInvalidRequestError(reqErr.Message, reqErr.Param, reqErr.Code)
	}

	var unparsable *filter.UnparsableQueryError
	if errors.As(err, &unparsable) {
		return http.StatusBadRequest, NewInvalidRequestError(
			"unable to parse natural language query", "query", CodeUnparsableQuery)
	}

	if errors.Is(err, store.ErrNotFound) {
		return http.StatusNotFound, NewNotFoundError("string not found")
	}

	if errors.Is(err, store.ErrConflict) {
		return http.StatusConflict, NewConflictError("string already exists")
	}

	return http.StatusInternalServerError, NewServerError(
		"an internal error occurred")
}

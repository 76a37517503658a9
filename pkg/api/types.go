package api

import "github.com/Toluwaa-o/string-analyzer/pkg/store"

// CreateStringRequest is the body of POST /strings. Value is a pointer so
// a missing field can be told apart from an explicit empty string; both
// are rejected, but with the distinction visible for error messages.
type CreateStringRequest struct {
	Value *string `json:"value"`
}

// ListResponse is the body of GET /strings.
type ListResponse struct {
	Data           []*store.Record `json:"data"`
	Count          int             `json:"count"`
	FiltersApplied map[string]any  `json:"filters_applied"`
}

// QueryResponse is the body of GET /strings/filter-by-natural-language.
type QueryResponse struct {
	Data             []*store.Record  `json:"data"`
	Count            int              `json:"count"`
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// InterpretedQuery echoes the original query alongside the predicates the
// interpreter derived from it. ParsedFilters carries wire names and wire
// values; min_length in particular echoes the already-incremented value
// the strict comparison runs against.
type InterpretedQuery struct {
	Original      string         `json:"original"`
	ParsedFilters map[string]any `json:"parsed_filters"`
}

// Error type constants used in ErrorResponse.
const (
	ErrorTypeInvalidRequest = "invalid_request_error"
	ErrorTypeNotFound       = "not_found_error"
	ErrorTypeConflict       = "conflict_error"
	ErrorTypeServerError    = "server_error"
)

// Error code constants used in ErrorResponse.
const (
	CodeInvalidJSON      = "invalid_json"
	CodeInvalidValue     = "invalid_value"
	CodeMissingValue     = "missing_value"
	CodeRequestTooLarge  = "request_too_large"
	CodeUnparsableQuery  = "unparsable_query"
	CodeStringNotFound   = "string_not_found"
	CodeDuplicateString  = "duplicate_string"
	CodeInternalError    = "internal_error"
	CodeRequestCancelled = "request_cancelled"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single error.
type ErrorDetail struct {
	// Message is a human-readable description.
	Message string `json:"message"`

	// Type is one of the ErrorType constants.
	Type string `json:"type"`

	// Param names the offending request field or parameter, if any.
	Param string `json:"param,omitempty"`

	// Code is one of the Code constants.
	Code string `json:"code"`
}

// NewErrorResponse creates an error response with the given details.
func NewErrorResponse(message, errorType, param, code string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Message: message,
			Type:    errorType,
			Param:   param,
			Code:    code,
		},
	}
}

// NewInvalidRequestError creates a 400-class error response.
func NewInvalidRequestError(message, param, code string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeInvalidRequest, param, code)
}

// NewNotFoundError creates a 404-class error response.
func NewNotFoundError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeNotFound, "", CodeStringNotFound)
}

// NewConflictError creates a 409-class error response.
func NewConflictError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeConflict, "", CodeDuplicateString)
}

// NewServerError creates a 500-class error response.
func NewServerError(message string) *ErrorResponse {
	return NewErrorResponse(message, ErrorTypeServerError, "", CodeInternalError)
}

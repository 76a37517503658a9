// Package middleware provides the HTTP middleware chain for the string
// analyzer: panic recovery, request ID propagation, request logging,
// metrics recording, CORS, and per-request timeouts.
//
// The chain is assembled outside-in by the server; each middleware is an
// independent func(http.Handler) http.Handler.
package middleware

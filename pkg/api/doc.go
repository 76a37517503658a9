// Package api defines the HTTP boundary of the string analyzer: the JSON
// request and response shapes, boundary validation, and the mapping from
// domain errors to HTTP error responses.
//
// Handlers live in the handlers subpackage and the middleware chain in
// the middleware subpackage; this package holds the wire types and
// helpers both of them share.
package api

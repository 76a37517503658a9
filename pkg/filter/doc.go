// Package filter applies predicate sets to stored string records and
// derives predicate sets from free-text queries.
//
// A Criteria value holds up to five optional predicates combined with
// logical AND. Two entry points produce Criteria: the structured HTTP
// query parameters, and Interpret, a fixed list of case-insensitive
// substring heuristics over a natural-language query.
//
// One asymmetry is deliberate and load-bearing: the structured min_length
// predicate is inclusive (length >= N), while the interpreter's "longer
// than N" stores N+1 and matches strictly (length > N+1). Both endpoints
// exclude a record of length exactly N for "longer than N"; they disagree
// on longer records near the boundary. This mirrors the observable API
// behavior and must not be unified.
package filter

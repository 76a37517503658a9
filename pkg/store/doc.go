// Package store provides the in-memory record table for analyzed strings.
//
// The store lives for the process lifetime and is never persisted. Records
// are keyed by their content hash, so at most one record exists per
// distinct trimmed string. A single RWMutex guards every logical operation
// to keep each Put/Get/Delete/List atomic under Go's concurrent HTTP
// runtime; no ordering is promised across requests beyond that.
package store

// Package handlers implements the HTTP handlers for the string analyzer:
// the strings CRUD and filter endpoints plus the health and readiness
// probes.
//
// Handlers hold their dependencies explicitly — the store is constructed
// at startup and passed in, never reached through a package-level
// variable.
package handlers

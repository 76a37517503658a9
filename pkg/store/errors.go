package store

import "errors"

var (
	// ErrConflict is returned by Put when a record with the same ID
	// already exists.
	ErrConflict = errors.New("record already exists")

	// ErrNotFound is returned by Get and Delete when no record exists
	// for the given ID.
	ErrNotFound = errors.New("record not found")
)

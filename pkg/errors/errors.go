package errors

import "errors"

var (
	// Argument errors
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnknownHashFunc = errors.New("unknown hash function")

	// Lookup errors
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("key already exists")

	// Table errors
	ErrTableNotInitialized = errors.New("table not initialized")
	ErrAllocation          = errors.New("allocation failed")
)

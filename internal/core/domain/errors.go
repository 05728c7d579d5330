package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMalformedRecord indicates an input line that does not decode
	// as a single JSON object. It aborts the run.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidConfig indicates a configuration file with unusable values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

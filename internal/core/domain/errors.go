package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidInterval indicates an interval outside the supported set.
	// Only the boundary that accepts user input returns it; running tasks never see it.
	ErrInvalidInterval = errors.New("invalid interval")

	// ErrRegistryClosed indicates the keep-alive registry has been shut down.
	ErrRegistryClosed = errors.New("registry closed")
)

// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity does not exist. Owner-scoped
	// lookups report a foreign task id as this error too, so existence of
	// another user's task is never leaked.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied indicates failed authentication (credential mismatch).
	ErrPermissionDenied = errors.New("permission denied")

	// ErrConflict indicates a unique constraint violation (e.g., username taken).
	ErrConflict = errors.New("conflict")

	// ErrInvalidArgument indicates rejected caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotImplemented indicates a declared operation without a resolver.
	ErrNotImplemented = errors.New("not implemented")
)

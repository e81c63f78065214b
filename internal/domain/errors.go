package domain

import "errors"

// Error taxonomy shared by all services. Repositories and services wrap
// these sentinels with fmt.Errorf("%w: ...") so callers can classify an
// outcome with errors.Is while still seeing the specific reason.
var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks an entity that is absent or not visible to the
	// caller's tenant.
	ErrNotFound = errors.New("not found")

	// ErrConflict marks state already claimed by a previous or concurrent
	// operation, e.g. an occupied bed or a duplicate active booking.
	ErrConflict = errors.New("conflict")

	// ErrInvalidState marks an entity that exists but is not in the
	// lifecycle state the requested transition needs.
	ErrInvalidState = errors.New("invalid state")

	// ErrInternal marks storage or connectivity failures.
	ErrInternal = errors.New("internal error")
)

package errs

import (
	"errors"
)

var (
	// ErrNotFound covers both a missing entity and a requester that lacks
	// the owner/booker relationship to see it. The two are deliberately not
	// distinguished in responses.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks a well-formed request that violates a business rule.
	ErrValidation = errors.New("validation failed")

	// ErrConflict marks a uniqueness violation (duplicate email).
	ErrConflict = errors.New("conflict")
)

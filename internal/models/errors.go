package models

import "errors"

// Error kinds surfaced by the core. Operations wrap them with context,
// callers test with errors.Is.
var (
	// ErrNotFound: a referenced entity does not exist, a required open
	// period is missing, or a person is not a member of the room.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState: a precondition the core refuses to ignore.
	ErrInvalidState = errors.New("invalid state")

	// ErrValidation: malformed input reached the core.
	ErrValidation = errors.New("validation failed")
)

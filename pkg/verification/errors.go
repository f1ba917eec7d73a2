package verification

import "errors"

var (
	// ErrInvalidEmail is returned when an address does not match the institutional format
	ErrInvalidEmail = errors.New("email does not match the institutional address format")

	// ErrNoAttempt is returned when no verification attempt exists for a user
	ErrNoAttempt = errors.New("no pending verification attempt")
)

package leads

import "errors"

var (
	// ErrMissingFullName is returned when the full name is absent or blank
	ErrMissingFullName = errors.New("fullName is required")

	// ErrMissingEmail is returned when the email is absent or blank
	ErrMissingEmail = errors.New("email is required")

	// ErrMissingMessage is returned when a required message is absent or blank
	ErrMissingMessage = errors.New("message is required")
)

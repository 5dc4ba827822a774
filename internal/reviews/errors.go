package reviews

import "errors"

var (
	// ErrMissingFullName is returned when the full name is absent or blank
	ErrMissingFullName = errors.New("fullName is required")

	// ErrMissingEmail is returned when the email is absent or blank
	ErrMissingEmail = errors.New("email is required")

	// ErrInvalidRating is returned when the rating is not an integer from 1 to 5
	ErrInvalidRating = errors.New("rating must be 1-5")

	// ErrMissingMessage is returned when the review text is absent or blank
	ErrMissingMessage = errors.New("message is required")
)

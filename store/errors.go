package store

import "errors"

var (
	// ErrNotFound is returned when an update or delete target does not
	// exist. Deletes are not idempotent: a missing id is an error, not a
	// silent success.
	ErrNotFound = errors.New("document not found")

	// ErrValidation marks a required-field failure caught before any
	// store call is made.
	ErrValidation = errors.New("validation failed")

	// ErrAuthorization marks a valid credential whose identity is not
	// permitted.
	ErrAuthorization = errors.New("not authorized")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

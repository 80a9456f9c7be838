package memory

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDriverNotFound = errors.New("driver not found")
	ErrTripNotFound   = errors.New("trip not found")

	// ErrAlreadyExists is returned by Create when the ID is taken.
	ErrAlreadyExists = errors.New("id already exists")
)

package services

import "errors"

var (
	// ErrNoDriverAvailable is returned when every driver is busy or the only
	// available driver is the passenger.
	ErrNoDriverAvailable = errors.New("no driver available")

	// ErrNilEntity is returned when AddUser or AddDriver gets nil.
	ErrNilEntity = errors.New("entity must not be nil")
)

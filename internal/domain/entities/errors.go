package entities

import "errors"

var (
	// ErrInvalidID is returned when an entity ID is zero or negative.
	ErrInvalidID = errors.New("id must be a positive integer")

	// ErrInvalidVIN is returned when a driver's vehicle identification number is malformed.
	ErrInvalidVIN = errors.New("vin must be 17 characters")

	// ErrInvalidStatus is returned for a driver status outside AVAILABLE/UNAVAILABLE.
	ErrInvalidStatus = errors.New("invalid driver status")

	// ErrInvalidRating is returned when a trip rating is outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidCost is returned when a trip cost is negative.
	ErrInvalidCost = errors.New("cost must not be negative")

	// ErrInvalidTimes is returned when a trip ends before it starts.
	ErrInvalidTimes = errors.New("trip end time is before start time")

	// ErrMissingParty is returned when a trip has no driver or no passenger.
	ErrMissingParty = errors.New("trip requires a driver and a passenger")

	// ErrNilTrip is returned when a nil trip is added to a trip list.
	ErrNilTrip = errors.New("trip must be provided")

	// ErrTripMismatch is returned when a trip is added to someone who is not a party to it.
	ErrTripMismatch = errors.New("trip does not belong to this user")

	// ErrTripNotInProgress is returned when a driver is asked to accept a finished trip.
	ErrTripNotInProgress = errors.New("trip is not in progress")

	// ErrTripCompleted is returned when finishing a trip that already has a cost and rating.
	ErrTripCompleted = errors.New("trip already completed")

	// ErrDriverUnavailable is returned when an UNAVAILABLE driver is asked to accept a trip.
	ErrDriverUnavailable = errors.New("driver is unavailable")

	// ErrValidation is the fallback for struct validation failures without a dedicated sentinel.
	ErrValidation = errors.New("validation failed")
)

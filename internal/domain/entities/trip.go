package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus is derived from a trip's data rather than stored.
type TripStatus string

const (
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
)

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Trip links a driver and a passenger. A trip in progress has neither a
// cost nor a rating; both are set together by Finish.
//
// Go Learning Note — Pointers for Optional Values:
// EndTime, Cost and Rating are pointers so that "not set yet" (nil) is
// distinguishable from a real zero value. A zero-dollar trip and an unpriced
// trip are different things.
type Trip struct {
	ID        int
	Driver    *Driver
	Passenger *User
	StartTime time.Time
	EndTime   *time.Time
	Cost      *decimal.Decimal
	Rating    *int
}

// TripInput carries the fields NewTrip validates. Leave Cost and Rating nil
// to create a trip in progress.
type TripInput struct {
	ID        int              `validate:"gt=0"`
	Driver    *Driver          `validate:"-"`
	Passenger *User            `validate:"-"`
	StartTime time.Time        `validate:"-"`
	EndTime   *time.Time       `validate:"-"`
	Cost      *decimal.Decimal `validate:"-"`
	Rating    *int             `validate:"omitempty,min=1,max=5"`
}

// NewTrip validates in and builds a Trip. A zero StartTime means "now".
// The trip is not added to either party's list; callers do that explicitly
// with AddDrivenTrip/AcceptTrip and AddTrip.
func NewTrip(in TripInput) (*Trip, error) {
	if err := validateStruct(in); err != nil {
		return nil, err
	}
	if in.Driver == nil || in.Passenger == nil {
		return nil, ErrMissingParty
	}
	if in.Cost != nil && in.Cost.IsNegative() {
		return nil, ErrInvalidCost
	}

	start := in.StartTime
	if start.IsZero() {
		start = time.Now()
	}
	if in.EndTime != nil && in.EndTime.Before(start) {
		return nil, ErrInvalidTimes
	}

	return &Trip{
		ID:        in.ID,
		Driver:    in.Driver,
		Passenger: in.Passenger,
		StartTime: start,
		EndTime:   in.EndTime,
		Cost:      in.Cost,
		Rating:    in.Rating,
	}, nil
}

// InProgress reports whether the trip is still missing both its cost and
// its rating. Such trips are left out of every aggregate.
func (t *Trip) InProgress() bool {
	return t.Cost == nil && t.Rating == nil
}

func (t *Trip) Status() TripStatus {
	if t.InProgress() {
		return TripStatusInProgress
	}
	return TripStatusCompleted
}

// Duration is the time between start and end, or 0 while there is no end.
func (t *Trip) Duration() time.Duration {
	if t.EndTime == nil {
		return 0
	}
	return t.EndTime.Sub(t.StartTime)
}

// Date is the calendar day the trip started on, in the start time's location.
func (t *Trip) Date() time.Time {
	y, m, d := t.StartTime.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.StartTime.Location())
}

// Finish completes a trip in progress. It returns ErrTripCompleted when the
// trip already has a cost or rating, and leaves the trip untouched on any
// validation error.
func (t *Trip) Finish(end time.Time, cost decimal.Decimal, rating int) error {
	if !t.InProgress() {
		return ErrTripCompleted
	}
	if rating < MinRating || rating > MaxRating {
		return ErrInvalidRating
	}
	if cost.IsNegative() {
		return ErrInvalidCost
	}
	if end.Before(t.StartTime) {
		return ErrInvalidTimes
	}

	t.EndTime = &end
	t.Cost = &cost
	t.Rating = &rating
	return nil
}

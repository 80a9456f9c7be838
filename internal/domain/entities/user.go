// Package entities defines the ride-sharing domain model: users who request
// trips, drivers who fulfill them, and the trips that link the two. The
// types here have no dependencies on storage or transport; everything they
// compute is folded from the trip lists they own.
//
// Go Learning Note — "internal/" directory:
// Packages under internal/ cannot be imported by code outside this module.
// Go enforces this at the compiler level.
package entities

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// User is a person who requests trips. Trips holds every trip the user took
// as a passenger, in the order they were added.
type User struct {
	ID          int     `validate:"gt=0"`
	Name        string  `validate:"-"`
	PhoneNumber string  `validate:"-"`
	Trips       []*Trip `validate:"-"`
}

// NewUser creates a User with an empty trip list. It returns ErrInvalidID
// when id is not positive.
func NewUser(id int, name, phone string) (*User, error) {
	u := &User{
		ID:          id,
		Name:        name,
		PhoneNumber: phone,
		Trips:       []*Trip{},
	}
	if err := validateStruct(u); err != nil {
		return nil, err
	}
	return u, nil
}

// AddTrip appends a trip taken by this user as a passenger.
func (u *User) AddTrip(trip *Trip) error {
	if trip == nil {
		return ErrNilTrip
	}
	if trip.Passenger != u {
		return ErrTripMismatch
	}
	u.Trips = append(u.Trips, trip)
	return nil
}

// CompletedTrips returns the user's trips that are no longer in progress.
func (u *User) CompletedTrips() []*Trip {
	return completed(u.Trips)
}

// NetExpenditures is the total cost of the user's completed trips.
func (u *User) NetExpenditures() decimal.Decimal {
	return sumCosts(u.Trips)
}

// TotalTimeSpent is the summed duration of the user's completed trips,
// truncated to whole minutes.
func (u *User) TotalTimeSpent() time.Duration {
	total := lo.SumBy(completed(u.Trips), func(t *Trip) time.Duration {
		return t.Duration()
	})
	return total.Truncate(time.Minute)
}

// completed drops trips in progress. Every aggregate starts from here.
func completed(trips []*Trip) []*Trip {
	return lo.Reject(trips, func(t *Trip, _ int) bool {
		return t.InProgress()
	})
}

func sumCosts(trips []*Trip) decimal.Decimal {
	costs := lo.FilterMap(completed(trips), func(t *Trip, _ int) (decimal.Decimal, bool) {
		if t.Cost == nil {
			return decimal.Zero, false
		}
		return *t.Cost, true
	})
	return lo.Reduce(costs, func(total, cost decimal.Decimal, _ int) decimal.Decimal {
		return total.Add(cost)
	}, decimal.Zero)
}

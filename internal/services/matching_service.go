package services

import (
	"context"
	"time"

	"github.com/samber/lo"

	"rideshare/internal/domain/entities"
	"rideshare/internal/repository"
)

// MatchingService picks the driver for a new trip. Among AVAILABLE drivers
// other than the passenger themself it prefers, in order:
//  1. drivers who have never driven a trip
//  2. the driver whose most recent trip ended longest ago
//  3. the lowest driver ID
//
// Go Learning Note — Accept Interfaces:
// The service depends on repository.DriverRepository, not on the memory
// implementation. Tests and callers can hand it anything with the same
// method set.
type MatchingService struct {
	driverRepo repository.DriverRepository
}

func NewMatchingService(driverRepo repository.DriverRepository) *MatchingService {
	return &MatchingService{driverRepo: driverRepo}
}

// FindDriver returns the best available driver for passenger, or
// ErrNoDriverAvailable.
func (s *MatchingService) FindDriver(ctx context.Context, passenger *entities.User) (*entities.Driver, error) {
	available, err := s.driverRepo.GetAvailableDrivers(ctx)
	if err != nil {
		return nil, err
	}

	candidates := lo.Reject(available, func(d *entities.Driver, _ int) bool {
		return &d.User == passenger
	})
	if len(candidates) == 0 {
		return nil, ErrNoDriverAvailable
	}

	return lo.MinBy(candidates, idleLonger), nil
}

// idleLonger reports whether a should be offered a trip before b.
func idleLonger(a, b *entities.Driver) bool {
	aIdle, aDriven := lastTripEnd(a)
	bIdle, bDriven := lastTripEnd(b)

	switch {
	case aDriven != bDriven:
		return !aDriven
	case !aIdle.Equal(bIdle):
		return aIdle.Before(bIdle)
	default:
		return a.ID < b.ID
	}
}

// lastTripEnd is the latest end (or start, for trips without an end) of the
// driver's trips. The bool is false for a driver with no driven trips.
func lastTripEnd(d *entities.Driver) (time.Time, bool) {
	if len(d.DrivenTrips) == 0 {
		return time.Time{}, false
	}
	ends := lo.Map(d.DrivenTrips, func(t *entities.Trip, _ int) time.Time {
		if t.EndTime != nil {
			return *t.EndTime
		}
		return t.StartTime
	})
	return lo.MaxBy(ends, func(a, b time.Time) bool {
		return a.After(b)
	}), true
}

package memory

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"rideshare/internal/domain/entities"
)

// TripRepository stores trips in memory. Lookups by driver or passenger are
// O(n) scans over the ID-ordered listing.
type TripRepository struct {
	mu    sync.RWMutex
	trips map[int]*entities.Trip
}

func NewTripRepository() *TripRepository {
	return &TripRepository{
		trips: make(map[int]*entities.Trip),
	}
}

func (r *TripRepository) Create(ctx context.Context, trip *entities.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trips[trip.ID]; exists {
		return ErrAlreadyExists
	}
	r.trips[trip.ID] = trip
	return nil
}

func (r *TripRepository) GetByID(ctx context.Context, id int) (*entities.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, exists := r.trips[id]
	if !exists {
		return nil, ErrTripNotFound
	}
	return trip, nil
}

// List returns all trips in ID order.
func (r *TripRepository) List(ctx context.Context) ([]*entities.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.trips), nil
}

func (r *TripRepository) GetByDriverID(ctx context.Context, driverID int) ([]*entities.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(sortedValues(r.trips), func(t *entities.Trip, _ int) bool {
		return t.Driver != nil && t.Driver.ID == driverID
	}), nil
}

func (r *TripRepository) GetByPassengerID(ctx context.Context, passengerID int) ([]*entities.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(sortedValues(r.trips), func(t *entities.Trip, _ int) bool {
		return t.Passenger != nil && t.Passenger.ID == passengerID
	}), nil
}

// NextID returns one more than the highest stored trip ID, starting at 1.
func (r *TripRepository) NextID(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.trips) == 0 {
		return 1, nil
	}
	return lo.Max(lo.Keys(r.trips)) + 1, nil
}

package memory

import (
	"context"
	"sync"

	"github.com/samber/lo"

	"rideshare/internal/domain/entities"
)

type DriverRepository struct {
	mu      sync.RWMutex
	drivers map[int]*entities.Driver
}

func NewDriverRepository() *DriverRepository {
	return &DriverRepository{
		drivers: make(map[int]*entities.Driver),
	}
}

func (r *DriverRepository) Create(ctx context.Context, driver *entities.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.drivers[driver.ID]; exists {
		return ErrAlreadyExists
	}
	r.drivers[driver.ID] = driver
	return nil
}

func (r *DriverRepository) GetByID(ctx context.Context, id int) (*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, exists := r.drivers[id]
	if !exists {
		return nil, ErrDriverNotFound
	}
	return driver, nil
}

// List returns all drivers in ID order.
func (r *DriverRepository) List(ctx context.Context) ([]*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return sortedValues(r.drivers), nil
}

// GetAvailableDrivers returns the AVAILABLE drivers in ID order.
func (r *DriverRepository) GetAvailableDrivers(ctx context.Context) ([]*entities.Driver, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(sortedValues(r.drivers), func(d *entities.Driver, _ int) bool {
		return d.IsAvailable()
	}), nil
}

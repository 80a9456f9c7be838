// Package repository declares the storage ports the dispatcher depends on.
// The only implementation lives in repository/memory.
package repository

import (
	"context"

	"rideshare/internal/domain/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id int) (*entities.User, error)
	List(ctx context.Context) ([]*entities.User, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *entities.Driver) error
	GetByID(ctx context.Context, id int) (*entities.Driver, error)
	List(ctx context.Context) ([]*entities.Driver, error)
	GetAvailableDrivers(ctx context.Context) ([]*entities.Driver, error)
}

type TripRepository interface {
	Create(ctx context.Context, trip *entities.Trip) error
	GetByID(ctx context.Context, id int) (*entities.Trip, error)
	List(ctx context.Context) ([]*entities.Trip, error)
	GetByDriverID(ctx context.Context, driverID int) ([]*entities.Trip, error)
	GetByPassengerID(ctx context.Context, passengerID int) ([]*entities.Trip, error)
	NextID(ctx context.Context) (int, error)
}

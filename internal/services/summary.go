package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"rideshare/internal/domain/entities"
)

// DriverSummary is a snapshot of a driver's aggregates.
type DriverSummary struct {
	DriverID        int
	Name            string
	Status          entities.DriverStatus
	TripsDriven     int
	AverageRating   float64
	TotalRevenue    decimal.Decimal
	NetExpenditures decimal.Decimal
}

// UserSummary is a snapshot of a passenger's aggregates.
type UserSummary struct {
	UserID          int
	Name            string
	TripsTaken      int
	NetExpenditures decimal.Decimal
	TotalTimeSpent  time.Duration
}

// DriverSummary folds the driver's trips. TripsDriven counts completed trips only.
func (s *TripService) DriverSummary(ctx context.Context, driverID int) (DriverSummary, error) {
	driver, err := s.driverRepo.GetByID(ctx, driverID)
	if err != nil {
		return DriverSummary{}, fmt.Errorf("find driver %d: %w", driverID, err)
	}

	return DriverSummary{
		DriverID:        driver.ID,
		Name:            driver.Name,
		Status:          driver.Status,
		TripsDriven:     len(driver.CompletedDrivenTrips()),
		AverageRating:   driver.AverageRating(),
		TotalRevenue:    driver.TotalRevenue(),
		NetExpenditures: driver.NetExpenditures(),
	}, nil
}

// UserSummary folds the passenger's trips. TripsTaken counts completed trips only.
func (s *TripService) UserSummary(ctx context.Context, userID int) (UserSummary, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return UserSummary{}, fmt.Errorf("find user %d: %w", userID, err)
	}

	return UserSummary{
		UserID:          user.ID,
		Name:            user.Name,
		TripsTaken:      len(user.CompletedTrips()),
		NetExpenditures: user.NetExpenditures(),
		TotalTimeSpent:  user.TotalTimeSpent(),
	}, nil
}

package entities_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"rideshare/internal/domain/entities"
)

var tripDay = time.Date(2016, time.August, 8, 9, 0, 0, 0, time.UTC)

func cost(amount string) *decimal.Decimal {
	d := decimal.RequireFromString(amount)
	return &d
}

func rating(n int) *int {
	return &n
}

func at(offset time.Duration) *time.Time {
	t := tripDay.Add(offset)
	return &t
}

func newPassenger(t *testing.T, id int) *entities.User {
	t.Helper()
	u, err := entities.NewUser(id, "Ada", "412-432-7640")
	require.NoError(t, err)
	return u
}

func newDriver(t *testing.T, id int) *entities.Driver {
	t.Helper()
	d, err := entities.NewDriver(id, "Lovelace", "12345678912345678", "353-533-5334", entities.DriverStatusAvailable)
	require.NoError(t, err)
	return d
}

// completedTrip builds a finished trip and registers it on both sides.
func completedTrip(t *testing.T, id int, driver *entities.Driver, passenger *entities.User, amount string, stars int) *entities.Trip {
	t.Helper()
	trip, err := entities.NewTrip(entities.TripInput{
		ID:        id,
		Driver:    driver,
		Passenger: passenger,
		StartTime: tripDay,
		EndTime:   at(15 * time.Minute),
		Cost:      cost(amount),
		Rating:    rating(stars),
	})
	require.NoError(t, err)
	require.NoError(t, driver.AddDrivenTrip(trip))
	require.NoError(t, passenger.AddTrip(trip))
	return trip
}

func inProgressTrip(t *testing.T, id int, driver *entities.Driver, passenger *entities.User) *entities.Trip {
	t.Helper()
	trip, err := entities.NewTrip(entities.TripInput{
		ID:        id,
		Driver:    driver,
		Passenger: passenger,
		StartTime: tripDay,
	})
	require.NoError(t, err)
	return trip
}

package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rideshare/internal/config"
	"rideshare/internal/domain/entities"
	"rideshare/internal/repository/memory"
	"rideshare/pkg/logx"
)

var clockStart = time.Date(2016, time.August, 8, 9, 0, 0, 0, time.UTC)

// fakeClock advances by step on every reading.
type fakeClock struct {
	current time.Time
	step    time.Duration
}

func (c *fakeClock) Now() time.Time {
	now := c.current
	c.current = c.current.Add(c.step)
	return now
}

func setupTripService(t *testing.T) (*TripService, *fakeClock, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	clock := &fakeClock{current: clockStart, step: 20 * time.Minute}

	service := NewTripService(
		memory.NewUserRepository(),
		memory.NewDriverRepository(),
		memory.NewTripRepository(),
		config.NewDefaultConfig(),
		logx.NewNop(),
		NewMetrics(reg),
	).WithClock(clock.Now)

	return service, clock, reg
}

func addUser(t *testing.T, s *TripService, id int) *entities.User {
	t.Helper()
	user, err := entities.NewUser(id, "Passenger", "555-0100")
	require.NoError(t, err)
	require.NoError(t, s.AddUser(context.Background(), user))
	return user
}

func addDriver(t *testing.T, s *TripService, id int) *entities.Driver {
	t.Helper()
	driver, err := entities.NewDriver(id, "Driver", "1C9EVBRM0YBC564DZ", "555-0200", entities.DriverStatusAvailable)
	require.NoError(t, err)
	require.NoError(t, s.AddDriver(context.Background(), driver))
	return driver
}

func TestTripService_RequestTrip(t *testing.T) {
	service, _, reg := setupTripService(t)
	ctx := context.Background()
	passenger := addUser(t, service, 1)
	driver := addDriver(t, service, 10)

	trip, err := service.RequestTrip(ctx, passenger.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, trip.ID)
	assert.True(t, trip.InProgress())
	assert.Equal(t, clockStart, trip.StartTime)
	assert.Same(t, driver, trip.Driver)
	assert.Same(t, passenger, trip.Passenger)
	assert.Equal(t, entities.DriverStatusUnavailable, driver.Status)
	assert.Same(t, trip, driver.DrivenTrips[0])
	assert.Same(t, trip, passenger.Trips[0])

	stored, err := service.FindTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Same(t, trip, stored)

	metrics := service.metrics
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TripsRequested), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.AvailableDrivers), 0)

	count, err := testutil.GatherAndCount(reg, "rideshare_trips_requested_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTripService_RequestTrip_UnknownPassenger(t *testing.T) {
	service, _, _ := setupTripService(t)
	addDriver(t, service, 10)

	_, err := service.RequestTrip(context.Background(), 404)
	require.ErrorIs(t, err, memory.ErrUserNotFound)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.TripsRejected.WithLabelValues(RejectUnknownPassenger)), 0)
}

func TestTripService_RequestTrip_NoDriverAvailable(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	addUser(t, service, 1)
	addUser(t, service, 2)
	addDriver(t, service, 10)

	_, err := service.RequestTrip(ctx, 1)
	require.NoError(t, err)

	_, err = service.RequestTrip(ctx, 2)
	require.ErrorIs(t, err, ErrNoDriverAvailable)
	assert.InDelta(t, 1, testutil.ToFloat64(service.metrics.TripsRejected.WithLabelValues(RejectNoDriver)), 0)

	user, err := service.FindUser(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, user.Trips)
}

func TestTripService_RequestTrip_DriverNeverDrivesThemself(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	driver := addDriver(t, service, 10)
	require.NoError(t, service.AddUser(ctx, &driver.User))

	_, err := service.RequestTrip(ctx, driver.ID)
	require.ErrorIs(t, err, ErrNoDriverAvailable)

	other := addDriver(t, service, 11)
	trip, err := service.RequestTrip(ctx, driver.ID)
	require.NoError(t, err)
	assert.Same(t, other, trip.Driver)
	assert.Same(t, &driver.User, trip.Passenger)
	assert.True(t, driver.IsAvailable())
}

func TestTripService_CompleteTrip(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	passenger := addUser(t, service, 1)
	driver := addDriver(t, service, 10)

	trip, err := service.RequestTrip(ctx, passenger.ID)
	require.NoError(t, err)

	done, err := service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(12), 5)
	require.NoError(t, err)

	assert.False(t, done.InProgress())
	assert.Equal(t, 20*time.Minute, done.Duration())
	assert.True(t, driver.IsAvailable())
	assert.Equal(t, "8.28", driver.TotalRevenue().StringFixed(2))
	assert.Equal(t, "12.00", passenger.NetExpenditures().StringFixed(2))

	metrics := service.metrics
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.TripsCompleted), 0)
	assert.InDelta(t, 12, testutil.ToFloat64(metrics.TripCostTotal), 1e-9)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.AvailableDrivers), 0)
}

func TestTripService_CompleteTrip_Errors(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	addUser(t, service, 1)
	driver := addDriver(t, service, 10)

	_, err := service.CompleteTrip(ctx, 99, decimal.NewFromInt(10), 5)
	require.ErrorIs(t, err, memory.ErrTripNotFound)

	trip, err := service.RequestTrip(ctx, 1)
	require.NoError(t, err)

	_, err = service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(10), 9)
	require.ErrorIs(t, err, entities.ErrInvalidRating)
	assert.True(t, trip.InProgress())
	assert.False(t, driver.IsAvailable())

	_, err = service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(10), 4)
	require.NoError(t, err)

	_, err = service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(10), 4)
	require.ErrorIs(t, err, entities.ErrTripCompleted)
	assert.InDelta(t, 2, testutil.ToFloat64(service.metrics.TripsRejected.WithLabelValues(RejectInvalidTrip)), 0)
}

func TestTripService_AddDuplicates(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	addUser(t, service, 1)
	addDriver(t, service, 10)

	user, err := entities.NewUser(1, "Again", "")
	require.NoError(t, err)
	require.ErrorIs(t, service.AddUser(ctx, user), memory.ErrAlreadyExists)

	driver, err := entities.NewDriver(10, "Again", "33133313331333133", "", "")
	require.NoError(t, err)
	require.ErrorIs(t, service.AddDriver(ctx, driver), memory.ErrAlreadyExists)

	require.ErrorIs(t, service.AddUser(ctx, nil), ErrNilEntity)
	require.ErrorIs(t, service.AddDriver(ctx, nil), ErrNilEntity)
}

func TestTripService_AppliesConfiguredCommission(t *testing.T) {
	cfg := config.NewDefaultConfig()
	cfg.Pricing.CommissionFee = 2
	cfg.Pricing.DriverShare = 0.5

	service := NewTripService(
		memory.NewUserRepository(),
		memory.NewDriverRepository(),
		memory.NewTripRepository(),
		cfg,
		logx.NewNop(),
		NewMetrics(nil),
	)
	ctx := context.Background()
	addUser(t, service, 1)
	driver := addDriver(t, service, 10)

	trip, err := service.RequestTrip(ctx, 1)
	require.NoError(t, err)
	_, err = service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(12), 5)
	require.NoError(t, err)

	assert.Equal(t, "5.00", driver.TotalRevenue().StringFixed(2))
}

func TestTripService_Summaries(t *testing.T) {
	service, _, _ := setupTripService(t)
	ctx := context.Background()
	addUser(t, service, 1)
	addDriver(t, service, 10)

	for _, fare := range []int64{12, 15, 10} {
		trip, err := service.RequestTrip(ctx, 1)
		require.NoError(t, err)
		_, err = service.CompleteTrip(ctx, trip.ID, decimal.NewFromInt(fare), 4)
		require.NoError(t, err)
	}
	_, err := service.RequestTrip(ctx, 1)
	require.NoError(t, err)

	driverSummary, err := service.DriverSummary(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 3, driverSummary.TripsDriven)
	assert.InDelta(t, 4.0, driverSummary.AverageRating, 0.001)
	assert.Equal(t, "25.64", driverSummary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "-25.64", driverSummary.NetExpenditures.StringFixed(2))
	assert.Equal(t, entities.DriverStatusUnavailable, driverSummary.Status)

	userSummary, err := service.UserSummary(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, userSummary.TripsTaken)
	assert.Equal(t, "37.00", userSummary.NetExpenditures.StringFixed(2))
	assert.Equal(t, 60*time.Minute, userSummary.TotalTimeSpent)

	_, err = service.DriverSummary(ctx, 99)
	require.ErrorIs(t, err, memory.ErrDriverNotFound)
	_, err = service.UserSummary(ctx, 99)
	require.ErrorIs(t, err, memory.ErrUserNotFound)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"rideshare/internal/config"
	"rideshare/internal/domain/entities"
	"rideshare/internal/repository"
	"rideshare/pkg/logx"
	"rideshare/pkg/utils"
)

// TripService is the dispatcher: it owns the registries of users, drivers
// and trips, starts trips on request and closes them with a cost and rating.
// Every call runs synchronously on the caller's goroutine.
type TripService struct {
	userRepo   repository.UserRepository
	driverRepo repository.DriverRepository
	tripRepo   repository.TripRepository
	matcher    *MatchingService
	notifier   *NotificationService
	metrics    *Metrics
	commission utils.Commission
	logger     *slog.Logger
	now        func() time.Time
}

func NewTripService(
	userRepo repository.UserRepository,
	driverRepo repository.DriverRepository,
	tripRepo repository.TripRepository,
	cfg *config.Config,
	logger *slog.Logger,
	metrics *Metrics,
) *TripService {
	return &TripService{
		userRepo:   userRepo,
		driverRepo: driverRepo,
		tripRepo:   tripRepo,
		matcher:    NewMatchingService(driverRepo),
		notifier:   NewNotificationService(logger),
		metrics:    metrics,
		commission: cfg.Pricing.Commission(),
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock replaces time.Now for trip start and end times.
func (s *TripService) WithClock(now func() time.Time) *TripService {
	s.now = now
	return s
}

// AddUser registers a passenger.
func (s *TripService) AddUser(ctx context.Context, user *entities.User) error {
	if user == nil {
		return ErrNilEntity
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("add user %d: %w", user.ID, err)
	}
	s.logger.DebugContext(ctx, "user added", slog.Int(logx.FieldUserID, user.ID))
	return nil
}

// AddDriver registers a driver and applies the configured commission to
// their revenue.
func (s *TripService) AddDriver(ctx context.Context, driver *entities.Driver) error {
	if driver == nil {
		return ErrNilEntity
	}
	if err := s.driverRepo.Create(ctx, driver); err != nil {
		return fmt.Errorf("add driver %d: %w", driver.ID, err)
	}
	driver.SetCommission(s.commission)
	s.logger.DebugContext(ctx, "driver added",
		slog.Int(logx.FieldDriverID, driver.ID),
		slog.String(logx.FieldVIN, driver.VIN),
	)
	s.refreshAvailability(ctx)
	return nil
}

func (s *TripService) FindUser(ctx context.Context, id int) (*entities.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *TripService) FindDriver(ctx context.Context, id int) (*entities.Driver, error) {
	return s.driverRepo.GetByID(ctx, id)
}

func (s *TripService) FindTrip(ctx context.Context, id int) (*entities.Trip, error) {
	return s.tripRepo.GetByID(ctx, id)
}

// RequestTrip starts a trip for the passenger with the next trip ID. The
// matched driver accepts it (becoming UNAVAILABLE) and the trip is added to
// both parties' lists. The returned trip is in progress.
func (s *TripService) RequestTrip(ctx context.Context, passengerID int) (*entities.Trip, error) {
	log := s.logger.With(
		slog.String(logx.FieldRequestID, utils.GenerateRequestID()),
		slog.Int(logx.FieldPassengerID, passengerID),
	)
	ctx = logx.WithLogger(ctx, log)

	passenger, err := s.userRepo.GetByID(ctx, passengerID)
	if err != nil {
		s.metrics.reject(RejectUnknownPassenger)
		log.WarnContext(ctx, "trip request rejected", logx.Error(err))
		return nil, fmt.Errorf("find passenger %d: %w", passengerID, err)
	}

	driver, err := s.matcher.FindDriver(ctx, passenger)
	if err != nil {
		s.metrics.reject(RejectNoDriver)
		log.WarnContext(ctx, "trip request rejected", logx.Error(err))
		return nil, fmt.Errorf("match driver: %w", err)
	}

	id, err := s.tripRepo.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("next trip id: %w", err)
	}

	trip, err := entities.NewTrip(entities.TripInput{
		ID:        id,
		Driver:    driver,
		Passenger: passenger,
		StartTime: s.now(),
	})
	if err != nil {
		s.metrics.reject(RejectInvalidTrip)
		return nil, fmt.Errorf("new trip: %w", err)
	}

	if err := driver.AcceptTrip(trip); err != nil {
		s.metrics.reject(RejectInvalidTrip)
		return nil, fmt.Errorf("driver %d accept trip %d: %w", driver.ID, trip.ID, err)
	}
	if err := passenger.AddTrip(trip); err != nil {
		return nil, fmt.Errorf("passenger %d add trip %d: %w", passenger.ID, trip.ID, err)
	}
	if err := s.tripRepo.Create(ctx, trip); err != nil {
		return nil, fmt.Errorf("store trip %d: %w", trip.ID, err)
	}

	s.metrics.TripsRequested.Inc()
	s.refreshAvailability(ctx)
	s.notifier.NotifyDriverOfTrip(ctx, trip)

	return trip, nil
}

// CompleteTrip finishes a trip in progress at the current clock time and
// frees its driver.
func (s *TripService) CompleteTrip(ctx context.Context, tripID int, cost decimal.Decimal, rating int) (*entities.Trip, error) {
	log := s.logger.With(
		slog.String(logx.FieldRequestID, utils.GenerateRequestID()),
		slog.Int(logx.FieldTripID, tripID),
	)
	ctx = logx.WithLogger(ctx, log)

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("find trip %d: %w", tripID, err)
	}

	if err := trip.Finish(s.now(), cost, rating); err != nil {
		s.metrics.reject(RejectInvalidTrip)
		log.WarnContext(ctx, "trip completion rejected", logx.Error(err))
		return nil, fmt.Errorf("finish trip %d: %w", tripID, err)
	}
	trip.Driver.EndTrip()

	s.metrics.completed(cost)
	s.refreshAvailability(ctx)
	s.notifier.NotifyPassengerOfReceipt(ctx, trip)

	return trip, nil
}

func (s *TripService) refreshAvailability(ctx context.Context) {
	available, err := s.driverRepo.GetAvailableDrivers(ctx)
	if err != nil {
		logx.FromContext(ctx, s.logger).ErrorContext(ctx, "count available drivers", logx.Error(err))
		return
	}
	s.metrics.AvailableDrivers.Set(float64(len(available)))
}

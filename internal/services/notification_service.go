package services

import (
	"context"
	"log/slog"

	"rideshare/internal/domain/entities"
	"rideshare/pkg/logx"
)

// NotificationService reports trip events. Without a push channel it
// writes them as structured log lines on the request's logger.
type NotificationService struct {
	logger *slog.Logger
}

func NewNotificationService(logger *slog.Logger) *NotificationService {
	return &NotificationService{logger: logger}
}

// NotifyDriverOfTrip tells the driver a passenger is waiting.
func (s *NotificationService) NotifyDriverOfTrip(ctx context.Context, trip *entities.Trip) {
	logx.FromContext(ctx, s.logger).InfoContext(ctx, "trip assigned",
		slog.Int(logx.FieldTripID, trip.ID),
		slog.Int(logx.FieldDriverID, trip.Driver.ID),
		slog.Int(logx.FieldPassengerID, trip.Passenger.ID),
		slog.String(logx.FieldVIN, trip.Driver.VIN),
	)
}

// NotifyPassengerOfReceipt sends the passenger the final cost and duration.
func (s *NotificationService) NotifyPassengerOfReceipt(ctx context.Context, trip *entities.Trip) {
	if trip.Cost == nil || trip.Rating == nil {
		return
	}
	logx.FromContext(ctx, s.logger).InfoContext(ctx, "trip receipt",
		slog.Int(logx.FieldTripID, trip.ID),
		slog.Int(logx.FieldPassengerID, trip.Passenger.ID),
		slog.String(logx.FieldCost, trip.Cost.StringFixed(2)),
		slog.Int(logx.FieldRating, *trip.Rating),
		slog.Float64(logx.FieldDurationMin, trip.Duration().Minutes()),
	)
}

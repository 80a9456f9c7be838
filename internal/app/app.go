// Package app wires configuration, logging, metrics, repositories and the
// trip dispatcher into one value.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"rideshare/internal/config"
	"rideshare/internal/repository/memory"
	"rideshare/internal/services"
	"rideshare/pkg/logx"
)

type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *services.Metrics
	Trips   *services.TripService
}

// New builds an App from cfg. Logs go to logOut; metrics are registered on
// reg, which may be nil.
func New(cfg *config.Config, logOut io.Writer, reg prometheus.Registerer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logx.New(logOut, cfg.Log.LoggerOptions())
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	metrics := services.NewMetrics(reg)
	trips := services.NewTripService(
		memory.NewUserRepository(),
		memory.NewDriverRepository(),
		memory.NewTripRepository(),
		cfg,
		logger,
		metrics,
	)

	logger.Debug("rideshare ready",
		slog.String("commission-fee", cfg.Pricing.Commission().Fee.String()),
		slog.String("driver-share", cfg.Pricing.Commission().DriverShare.String()),
	)

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Trips:   trips,
	}, nil
}

// FromEnvironment is New with config.Load.
func FromEnvironment(logOut io.Writer, reg prometheus.Registerer) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	return New(cfg, logOut, reg)
}

// Package config centralizes the module's configuration into typed structs.
//
// Go Learning Note — Configuration Management:
// Defaults live in NewDefaultConfig as plain struct literals. Load layers
// environment variables on top: github.com/joho/godotenv copies a local .env
// file into the process environment (when one exists) and
// github.com/caarlos0/env parses the `env` struct tags, falling back to
// `envDefault` for anything unset.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"rideshare/pkg/logx"
	"rideshare/pkg/utils"
)

// Config is the top-level configuration container.
type Config struct {
	Pricing PricingConfig
	Log     LogConfig
}

// PricingConfig controls how a trip cost is split between the company and
// the driver: payout = (cost - CommissionFee) * DriverShare.
type PricingConfig struct {
	CommissionFee float64 `env:"RIDESHARE_COMMISSION_FEE" envDefault:"1.65"`
	DriverShare   float64 `env:"RIDESHARE_DRIVER_SHARE" envDefault:"0.80"`
}

// LogConfig selects the log level and whether output is colorized.
type LogConfig struct {
	Level   string `env:"RIDESHARE_LOG_LEVEL" envDefault:"info"`
	NoColor bool   `env:"RIDESHARE_LOG_NO_COLOR" envDefault:"false"`
}

// NewDefaultConfig returns a Config populated with the default fare split
// and info-level logging.
func NewDefaultConfig() *Config {
	return &Config{
		Pricing: PricingConfig{
			CommissionFee: utils.DefaultCommissionFee,
			DriverShare:   utils.DefaultDriverShare,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads an optional .env file, then the environment. A missing .env is
// not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("env.Parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the pricing values.
func (c *Config) Validate() error {
	if err := c.Pricing.Commission().Validate(); err != nil {
		return fmt.Errorf("pricing: %w", err)
	}
	return nil
}

// Commission converts the pricing settings into the split drivers use.
func (p PricingConfig) Commission() utils.Commission {
	return utils.NewCommission(p.CommissionFee, p.DriverShare)
}

// LoggerOptions converts the log settings for logx.New.
func (l LogConfig) LoggerOptions() logx.Options {
	return logx.Options{
		Level:   l.Level,
		NoColor: l.NoColor,
	}
}

package utils

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Default fare split: a flat fee goes to the company and the driver keeps
// 80% of the remainder.
const (
	DefaultCommissionFee = 1.65
	DefaultDriverShare   = 0.80
)

var (
	ErrNegativeFee        = errors.New("commission fee must not be negative")
	ErrDriverShareOutside = errors.New("driver share must be in (0, 1]")
)

// Commission describes how a trip's cost is split between the company and
// the driver:
//
//	payout = (cost - Fee) * DriverShare
//
// Go Learning Note — decimal.Decimal:
// Money is kept in github.com/shopspring/decimal instead of float64. Binary
// floats cannot represent 1.65 exactly, so sums like 8.28 + 10.68 + 6.68
// drift away from 25.64. Decimal arithmetic keeps every cent exact.
type Commission struct {
	Fee         decimal.Decimal
	DriverShare decimal.Decimal
}

// DefaultCommission returns the 1.65 fee / 80% share split.
func DefaultCommission() Commission {
	return NewCommission(DefaultCommissionFee, DefaultDriverShare)
}

func NewCommission(fee, driverShare float64) Commission {
	return Commission{
		Fee:         decimal.NewFromFloat(fee),
		DriverShare: decimal.NewFromFloat(driverShare),
	}
}

// Validate rejects a negative fee or a share that would pay the driver
// nothing or more than the whole fare.
func (c Commission) Validate() error {
	if c.Fee.IsNegative() {
		return ErrNegativeFee
	}
	if !c.DriverShare.IsPositive() || c.DriverShare.GreaterThan(decimal.NewFromInt(1)) {
		return ErrDriverShareOutside
	}
	return nil
}

// DriverPayout is the driver's part of a single trip cost. Costs below the
// fee produce a negative payout, left to the caller to interpret.
func (c Commission) DriverPayout(cost decimal.Decimal) decimal.Decimal {
	return cost.Sub(c.Fee).Mul(c.DriverShare)
}

// RoundCents rounds a money amount to two decimal places.
func RoundCents(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

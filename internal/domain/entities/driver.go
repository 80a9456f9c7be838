package entities

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"rideshare/pkg/utils"
)

// DriverStatus is a typed string enum with the two states a driver can be in.
//
// Go Learning Note — Type Aliases for Enums:
// Go doesn't have a native enum keyword. The idiomatic pattern is to define a
// named type (usually based on string or int) and then declare constants of
// that type. String-based enums read well in logs and validation messages.
type DriverStatus string

const (
	DriverStatusAvailable   DriverStatus = "AVAILABLE"
	DriverStatusUnavailable DriverStatus = "UNAVAILABLE"
)

// Driver is a User who also drives. Trips (promoted from User) are the trips
// the driver took as a passenger; DrivenTrips are the ones they drove.
//
// Go Learning Note — Struct Embedding:
// Embedding User gives Driver its ID, Name, Trips and methods such as AddTrip
// without inheritance. A Driver can still ride as a passenger: the trip's
// Passenger field points at &driver.User. Methods Driver declares itself,
// like NetExpenditures, shadow the embedded ones; the embedded version stays
// reachable as d.User.NetExpenditures().
type Driver struct {
	User
	VIN         string       `validate:"vin"`
	Status      DriverStatus `validate:"oneof=AVAILABLE UNAVAILABLE"`
	DrivenTrips []*Trip      `validate:"-"`

	commission utils.Commission
}

// NewDriver creates a Driver with an empty list of driven trips. An empty
// status defaults to AVAILABLE. The ID, VIN and status are validated.
func NewDriver(id int, name, vin, phone string, status DriverStatus) (*Driver, error) {
	if status == "" {
		status = DriverStatusAvailable
	}
	d := &Driver{
		User: User{
			ID:          id,
			Name:        name,
			PhoneNumber: phone,
			Trips:       []*Trip{},
		},
		VIN:         vin,
		Status:      status,
		DrivenTrips: []*Trip{},
		commission:  utils.DefaultCommission(),
	}
	if err := validateStruct(d); err != nil {
		return nil, err
	}
	return d, nil
}

// SetCommission replaces the fare split used by TotalRevenue.
func (d *Driver) SetCommission(c utils.Commission) {
	d.commission = c
}

// Commission returns the fare split used by TotalRevenue.
func (d *Driver) Commission() utils.Commission {
	return d.commission
}

// IsAvailable reports whether the driver can accept a new trip.
func (d *Driver) IsAvailable() bool {
	return d.Status == DriverStatusAvailable
}

// AddDrivenTrip appends a trip this driver drove.
func (d *Driver) AddDrivenTrip(trip *Trip) error {
	if trip == nil {
		return ErrNilTrip
	}
	if trip.Driver != d {
		return ErrTripMismatch
	}
	d.DrivenTrips = append(d.DrivenTrips, trip)
	return nil
}

// CompletedDrivenTrips returns the driven trips that are no longer in progress.
func (d *Driver) CompletedDrivenTrips() []*Trip {
	return completed(d.DrivenTrips)
}

// AcceptTrip takes on a trip in progress: it is recorded as driven and the
// driver becomes UNAVAILABLE until EndTrip.
func (d *Driver) AcceptTrip(trip *Trip) error {
	if trip == nil {
		return ErrNilTrip
	}
	if !trip.InProgress() {
		return ErrTripNotInProgress
	}
	if !d.IsAvailable() {
		return ErrDriverUnavailable
	}
	if err := d.AddDrivenTrip(trip); err != nil {
		return err
	}
	d.Status = DriverStatusUnavailable
	return nil
}

// EndTrip marks the driver AVAILABLE again.
func (d *Driver) EndTrip() {
	d.Status = DriverStatusAvailable
}

// AverageRating is the mean rating of the driver's rated trips, or 0 when
// no driven trip has a rating yet.
func (d *Driver) AverageRating() float64 {
	ratings := lo.FilterMap(d.DrivenTrips, func(t *Trip, _ int) (float64, bool) {
		if t.Rating == nil {
			return 0, false
		}
		return float64(*t.Rating), true
	})
	if len(ratings) == 0 {
		return 0
	}
	return lo.Sum(ratings) / float64(len(ratings))
}

// TotalRevenue is the driver's payout summed over completed driven trips,
// rounded to cents.
func (d *Driver) TotalRevenue() decimal.Decimal {
	payouts := lo.FilterMap(completed(d.DrivenTrips), func(t *Trip, _ int) (decimal.Decimal, bool) {
		if t.Cost == nil {
			return decimal.Zero, false
		}
		return d.commission.DriverPayout(*t.Cost), true
	})
	total := lo.Reduce(payouts, func(sum, payout decimal.Decimal, _ int) decimal.Decimal {
		return sum.Add(payout)
	}, decimal.Zero)
	return utils.RoundCents(total)
}

// NetExpenditures is what the driver spent riding as a passenger minus what
// they earned driving. It is negative for a driver who earns more than they
// spend.
func (d *Driver) NetExpenditures() decimal.Decimal {
	return d.User.NetExpenditures().Sub(d.TotalRevenue())
}

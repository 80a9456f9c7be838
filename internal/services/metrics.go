package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Rejection reasons recorded on rideshare_trips_rejected_total.
const (
	RejectUnknownPassenger = "unknown_passenger"
	RejectNoDriver         = "no_driver"
	RejectInvalidTrip      = "invalid_trip"
)

// Metrics are the dispatcher's Prometheus instruments. Registering them is
// up to the caller; nothing here serves them.
type Metrics struct {
	TripsRequested   prometheus.Counter
	TripsCompleted   prometheus.Counter
	TripsRejected    *prometheus.CounterVec
	TripCostTotal    prometheus.Counter
	AvailableDrivers prometheus.Gauge
}

// NewMetrics creates the instruments and registers them with reg. A nil reg
// creates unregistered instruments, which is what most tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TripsRequested: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rideshare",
			Name:      "trips_requested_total",
			Help:      "Trips created and accepted by a driver.",
		}),
		TripsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rideshare",
			Name:      "trips_completed_total",
			Help:      "Trips finished with a cost and rating.",
		}),
		TripsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rideshare",
			Name:      "trips_rejected_total",
			Help:      "Trip requests or completions that failed, by reason.",
		}, []string{"reason"}),
		TripCostTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "rideshare",
			Name:      "trip_cost_total",
			Help:      "Sum of completed trip costs.",
		}),
		AvailableDrivers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "rideshare",
			Name:      "available_drivers",
			Help:      "Drivers currently AVAILABLE.",
		}),
	}
}

func (m *Metrics) reject(reason string) {
	m.TripsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) completed(cost decimal.Decimal) {
	m.TripsCompleted.Inc()
	m.TripCostTotal.Add(cost.InexactFloat64())
}

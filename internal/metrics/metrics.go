package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookings = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "bookings_total",
			Help:      "Successful room bookings.",
		},
	)

	cancellations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "cancellations_total",
			Help:      "Successful reservation cancellations.",
		},
	)

	persistenceErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "hotelier",
			Name:      "persistence_errors_total",
			Help:      "Failed ledger snapshot writes.",
		},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookings, cancellations, persistenceErrors)
	})
}

// IncBooking counts a confirmed booking.
func IncBooking() {
	bookings.Inc()
}

// IncCancellation counts a completed cancellation.
func IncCancellation() {
	cancellations.Inc()
}

// IncPersistenceError counts a non-fatal ledger save failure.
func IncPersistenceError() {
	persistenceErrors.Inc()
}

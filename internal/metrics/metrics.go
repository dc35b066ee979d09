package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	backendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymslot",
			Name:      "backend_requests_total",
			Help:      "Backend gateway requests by endpoint and outcome.",
		},
		[]string{"endpoint", "outcome"},
	)

	paymentOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymslot",
			Name:      "payment_outcomes_total",
			Help:      "Payment confirmation outcomes.",
		},
		[]string{"outcome"},
	)

	staleResponses = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "gymslot",
			Name:      "stale_responses_discarded_total",
			Help:      "Slot responses discarded because a newer request superseded them.",
		},
	)

	invalidRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymslot",
			Name:      "invalid_records_total",
			Help:      "Malformed slot/booking records skipped by the filters.",
		},
		[]string{"kind"},
	)

	exports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gymslot",
			Name:      "exports_total",
			Help:      "Bookings export attempts by status.",
		},
		[]string{"status"},
	)
)

// Register registers Prometheus metrics. Safe to call multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(backendRequests, paymentOutcomes, staleResponses, invalidRecords, exports)
	})
}

// IncBackendRequest counts one gateway call.
func IncBackendRequest(endpoint, outcome string) {
	backendRequests.WithLabelValues(endpoint, outcome).Inc()
}

// IncPaymentOutcome counts one payment confirmation outcome.
func IncPaymentOutcome(outcome string) {
	paymentOutcomes.WithLabelValues(outcome).Inc()
}

// IncStaleResponse counts one discarded stale slot response.
func IncStaleResponse() {
	staleResponses.Inc()
}

// IncInvalidRecord counts one malformed record skipped during filtering.
func IncInvalidRecord(kind string) {
	invalidRecords.WithLabelValues(kind).Inc()
}

// IncExport counts one export attempt.
func IncExport(status string) {
	exports.WithLabelValues(status).Inc()
}

package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	bookingCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "appointments",
			Name:      "booking_created_total",
			Help:      "Count of bookings created by status.",
		},
		[]string{"status"},
	)

	bookingConflict = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appointments",
			Name:      "booking_conflict_total",
			Help:      "Count of booking requests rejected for overlapping an existing booking.",
		},
	)

	slotQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appointments",
			Name:      "slot_queries_total",
			Help:      "Count of free-slot computations requested.",
		},
	)

	slotCacheHits = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "appointments",
			Name:      "slot_cache_hits_total",
			Help:      "Count of free-slot responses served from cache.",
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(bookingCreated, bookingConflict, slotQueries, slotCacheHits)
	})
}

func IncBookingCreated(status string) {
	bookingCreated.WithLabelValues(status).Inc()
}

func IncBookingConflict() {
	bookingConflict.Inc()
}

func IncSlotQuery() {
	slotQueries.Inc()
}

func IncSlotCacheHit() {
	slotCacheHits.Inc()
}

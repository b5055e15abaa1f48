package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Scheduling outcomes
	BookingsTotal       prometheus.Counter
	ReschedulesTotal    prometheus.Counter
	StatusChanges       *prometheus.CounterVec
	ConflictsRejected   prometheus.Counter
	TransitionsRejected prometheus.Counter

	// Window cache
	WindowLoads       prometheus.Counter
	WindowLoadLatency prometheus.Histogram

	// Collaborator health
	DataAccessFailures *prometheus.CounterVec

	// Event publishing
	EventsPublished prometheus.Counter
	EventsFailed    prometheus.Counter
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace, subsystem string) *Metrics {
	return &Metrics{
		BookingsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "bookings_total",
			Help:      "Total number of appointments booked",
		}),
		ReschedulesTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reschedules_total",
			Help:      "Total number of appointments rescheduled",
		}),
		StatusChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "status_changes_total",
			Help:      "Total number of appointment status changes by target status",
		}, []string{"status"}),
		ConflictsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "conflicts_rejected_total",
			Help:      "Total number of bookings and reschedules rejected for a slot conflict",
		}),
		TransitionsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "transitions_rejected_total",
			Help:      "Total number of status changes rejected by the lifecycle",
		}),
		WindowLoads: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "window_loads_total",
			Help:      "Total number of calendar window loads",
		}),
		WindowLoadLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "window_load_duration_seconds",
			Help:      "Time spent loading a calendar window from storage",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}),
		DataAccessFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "data_access_failures_total",
			Help:      "Total number of persistence collaborator failures by operation",
		}, []string{"operation"}),
		EventsPublished: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "events_published_total",
			Help:      "Total number of appointment events published",
		}),
		EventsFailed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "events_failed_total",
			Help:      "Total number of appointment events that failed to publish",
		}),
	}
}

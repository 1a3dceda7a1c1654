// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"route", "method", "status"},
	)
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	// Domain
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total registered users",
		},
	)
	ExercisesAdded = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "exercises_added_total",
			Help: "Total persisted exercises",
		},
	)
	LogEntriesReturned = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "exercise_log_entries_returned",
			Help:    "Number of entries returned per log query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 500},
		},
	)

	registerOnce sync.Once
)

// Handler serves the default registry.
var Handler = promhttp.Handler

// Init registers all collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			RequestsTotal,
			RequestLatency,
			UsersRegistered,
			ExercisesAdded,
			LogEntriesReturned,
		)
	})
}

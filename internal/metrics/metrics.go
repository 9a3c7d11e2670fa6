// Package metrics exposes Prometheus instrumentation for the HTTP layer, the
// document store and the aggregate cache.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/v2/event"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	StoreCommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongodb_command_duration_seconds",
			Help:    "Duration of MongoDB commands in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"command"},
	)

	StoreCommandErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongodb_command_errors_total",
			Help: "Total number of failed MongoDB commands",
		},
		[]string{"command"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_hits_total",
			Help: "Total number of aggregate cache hits",
		},
		[]string{"key"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_misses_total",
			Help: "Total number of aggregate cache misses",
		},
		[]string{"key"},
	)

	CacheBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_cache_breaker_state",
			Help: "Cache circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// RecordAPIRequest records one served request.
func RecordAPIRequest(method, route string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// NewCommandMonitor returns a MongoDB command monitor feeding the store metrics.
func NewCommandMonitor() *event.CommandMonitor {
	return &event.CommandMonitor{
		Succeeded: func(_ context.Context, e *event.CommandSucceededEvent) {
			StoreCommandDuration.WithLabelValues(e.CommandName).Observe(e.Duration.Seconds())
		},
		Failed: func(_ context.Context, e *event.CommandFailedEvent) {
			StoreCommandDuration.WithLabelValues(e.CommandName).Observe(e.Duration.Seconds())
			StoreCommandErrors.WithLabelValues(e.CommandName).Inc()
		},
	}
}

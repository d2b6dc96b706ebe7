// Cadence - Social Analytics Posting-Time Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

// Package metrics holds the Prometheus collectors exported on /metrics.
//
// Collectors are registered on the default registry at init through promauto.
// Callers use the Record helpers rather than touching the vectors directly so
// label sets stay consistent.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being served",
		},
	)

	// Database
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	PostsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "posts_ingested_total",
			Help: "Total number of post facts written",
		},
	)

	// Engine
	AggregationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_aggregations_total",
			Help: "Total number of recommendation aggregations",
		},
		[]string{"source"}, // "store" or "inline"
	)

	AggregationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_aggregation_duration_seconds",
			Help:    "Duration of recommendation aggregation including data fetch",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	RecommendationSlots = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_slots",
			Help:    "Number of ranked time slots per aggregation",
			Buckets: []float64{0, 1, 3, 6, 12, 24, 48, 96, 168},
		},
	)

	ProjectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_projections_total",
			Help: "Total number of calendar month projections",
		},
		[]string{"source"},
	)

	ProjectionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "calendar_projection_duration_seconds",
			Help:    "Duration of calendar projection including data fetch",
			Buckets: []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		},
	)

	CalendarDays = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calendar_days_total",
			Help: "Projected calendar days by score category",
		},
		[]string{"category"},
	)

	// Response cache
	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planner_cache_lookups_total",
			Help: "Planner response cache lookups by kind and result",
		},
		[]string{"kind", "result"}, // result: hit, miss
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Requests through a circuit breaker by result",
		},
		[]string{"name", "result"}, // result: success, failure, rejected
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// System
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordDBQuery records a database query metric
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIngest counts written posts.
func RecordIngest(n int) {
	if n > 0 {
		PostsIngested.Add(float64(n))
	}
}

// RecordAggregation records one recommendation run.
func RecordAggregation(source string, slots int, duration time.Duration) {
	AggregationsTotal.WithLabelValues(source).Inc()
	AggregationDuration.Observe(duration.Seconds())
	RecommendationSlots.Observe(float64(slots))
}

// RecordProjection records one calendar projection and its day categories.
func RecordProjection(source string, categories map[string]int, duration time.Duration) {
	ProjectionsTotal.WithLabelValues(source).Inc()
	ProjectionDuration.Observe(duration.Seconds())
	for category, n := range categories {
		CalendarDays.WithLabelValues(category).Add(float64(n))
	}
}

// RecordCacheLookup counts one planner cache lookup.
func RecordCacheLookup(kind string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookups.WithLabelValues(kind, result).Inc()
}

// RecordBreakerRequest counts one call through the named breaker.
func RecordBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordBreakerTransition updates the state gauge and counts the transition.
// state is the numeric value of the new state.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// SetAppInfo publishes build information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

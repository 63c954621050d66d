// CampusNavigator - Campus Wayfinding and Interactive Map Service
// Copyright 2026 Chaitanya (Chaitanya-116)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Chaitanya-116/CampusNavigator

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Account store metrics
	StoreOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_store_operations_total",
			Help: "Total number of account store operations",
		},
		[]string{"operation", "result"}, // result: "ok", "not_found", "conflict", "error"
	)

	// Auth metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of signup/login attempts",
		},
		[]string{"operation", "result"},
	)

	// Suggestion engine metrics
	SearchQueries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "Total number of suggestion queries at or above the length threshold",
		},
	)

	SearchQueriesEmpty = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "search_queries_empty_total",
			Help: "Total number of suggestion queries that matched nothing",
		},
	)

	// Map view session metrics
	MapSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "map_sessions_active",
			Help: "Current number of live map view sessions",
		},
	)

	MapOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "map_operations_total",
			Help: "Total number of map view controller operations",
		},
		[]string{"operation"}, // "toggle", "filter", "focus", "basemap"
	)

	MapRendererInitFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "map_renderer_init_failures_total",
			Help: "Total number of renderer initializations that exhausted their retry budget",
		},
	)
)

// RecordAPIRequest records one completed request. Called from the metrics
// middleware with the route pattern, not the raw path, to bound cardinality.
func RecordAPIRequest(method, endpoint string, status int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(increment bool) {
	if increment {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// Vestra - Wardrobe Management and Marketplace Backend
// Copyright 2026 Vestra Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vestra-app/vestra

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - API endpoint latency and throughput
// - Recommendation engine latency and output size
// - BadgerDB store operations
// - Authentication outcomes

var (
	// API Endpoint Metrics
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
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Engine Metrics
	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation pipeline runs in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	RecommendationCandidates = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_candidates",
			Help:    "Number of outfit candidates returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 10},
		},
	)

	RecommendationWardrobeSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_wardrobe_size",
			Help:    "Number of wardrobe items considered per request",
			Buckets: []float64{0, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	RecommendationEmptyResults = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_empty_results_total",
			Help: "Total number of recommendation requests that returned no candidates",
		},
	)

	// Store Metrics (BadgerDB)
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "record_type"},
	)

	StoreOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_errors_total",
			Help: "Total number of store operation errors",
		},
		[]string{"operation", "record_type"},
	)

	// Authentication Metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"}, // "success", "invalid_credentials", "invalid_token"
	)
)

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

// RecordRecommendation records one recommendation pipeline run
func RecordRecommendation(duration time.Duration, wardrobeSize, candidates int) {
	RecommendationDuration.Observe(duration.Seconds())
	RecommendationWardrobeSize.Observe(float64(wardrobeSize))
	RecommendationCandidates.Observe(float64(candidates))
	if candidates == 0 {
		RecommendationEmptyResults.Inc()
	}
}

// RecordStoreOperation records a store operation metric
func RecordStoreOperation(operation, recordType string, duration time.Duration, err error) {
	StoreOperationDuration.WithLabelValues(operation, recordType).Observe(duration.Seconds())
	if err != nil {
		StoreOperationErrors.WithLabelValues(operation, recordType).Inc()
	}
}

// RecordAuthAttempt records an authentication attempt outcome
func RecordAuthAttempt(result string) {
	AuthAttempts.WithLabelValues(result).Inc()
}

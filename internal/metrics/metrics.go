// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package metrics provides Prometheus instrumentation for the API surface
// and the loaded watchlist.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "reelist_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelist_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelist_api_active_requests",
			Help: "Number of API requests currently in flight",
		},
	)

	// Watchlist Metrics
	MoviesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelist_movies_total",
			Help: "Number of movies in the loaded table",
		},
	)

	MoviesWatched = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "reelist_movies_watched",
			Help: "Number of movies marked watched",
		},
	)

	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reelist_mutations_total",
			Help: "Total number of rating/watched mutations",
		},
		[]string{"kind", "outcome"}, // kind: rating|watched, outcome: applied|rejected
	)
)

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
	APIRequestsTotal.WithLabelValues(method, path, status).Inc()
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// SetTableGauges records the size and watched count of the current table.
func SetTableGauges(total, watched int) {
	MoviesTotal.Set(float64(total))
	MoviesWatched.Set(float64(watched))
}

// RecordMutation records one mutation attempt.
func RecordMutation(kind string, applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "rejected"
	}
	MutationsTotal.WithLabelValues(kind, outcome).Inc()
}

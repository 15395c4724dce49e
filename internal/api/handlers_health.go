// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"
	"time"
)

// HealthResponse reports service status for monitoring.
type HealthResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Records       int    `json:"records"`
}

// Health handles GET /api/v1/health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	h.mu.Lock()
	records := h.table.Len()
	h.mu.Unlock()

	rw.Success(HealthResponse{
		Status:        "ok",
		UptimeSeconds: int64(time.Since(h.started) / time.Second),
		Records:       records,
	})
}

// HealthLive handles GET /api/v1/health/live (process liveness).
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "alive"})
}

// HealthReady handles GET /api/v1/health/ready. The service is ready once a
// table is loaded, which NewHandler guarantees.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]string{"status": "ready"})
}

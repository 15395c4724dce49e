// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"sync"
	"time"

	"github.com/reelist/reelist/internal/config"
	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/watchlist"
)

// Handler owns the session's watchlist table and implements all endpoints.
//
// The core table assumes exclusive, sequential access; the handler is the
// host that guarantees it. Every endpoint takes mu, so reads and mutations
// from concurrent HTTP clients are serialized into the single-threaded model
// the core expects.
type Handler struct {
	cfg *config.Config

	mu    sync.Mutex
	table *watchlist.Table

	started time.Time
}

// NewHandler creates a handler around an already-loaded table.
func NewHandler(cfg *config.Config, table *watchlist.Table) *Handler {
	h := &Handler{
		cfg:     cfg,
		table:   table,
		started: time.Now(),
	}
	h.updateTableGauges()
	return h
}

// ReplaceTable swaps in a freshly loaded table, discarding the previous
// session state.
func (h *Handler) ReplaceTable(table *watchlist.Table) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.table = table
	h.updateTableGauges()
}

// updateTableGauges refreshes the table-size metrics. Callers must hold mu
// or have exclusive access during construction.
func (h *Handler) updateTableGauges() {
	watched := 0
	for _, rec := range h.table.Records() {
		if rec.Watched {
			watched++
		}
	}
	metrics.SetTableGauges(h.table.Len(), watched)
}

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"

	"github.com/reelist/reelist/internal/watchlist"
)

// SuggestResponse carries one random unwatched suggestion. When every movie
// is watched, Movie is null and AllWatched is true; that is a distinct
// "nothing left" outcome, not a failure.
type SuggestResponse struct {
	Movie      *watchlist.MovieRecord `json:"movie"`
	AllWatched bool                   `json:"all_watched"`
}

// Suggest handles GET /api/v1/suggest. Each call is an independent uniform
// draw from the unwatched subset.
func (h *Handler) Suggest(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	h.mu.Lock()
	rec, ok := h.table.PickUnwatched()
	h.mu.Unlock()

	if !ok {
		rw.Success(SuggestResponse{AllWatched: true})
		return
	}
	rw.Success(SuggestResponse{Movie: &rec})
}

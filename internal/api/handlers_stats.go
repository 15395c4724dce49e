// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"math"
	"net/http"

	"github.com/reelist/reelist/internal/stats"
	"github.com/reelist/reelist/internal/watchlist"
)

// StatsResponse is the aggregate view rendered by the stats endpoint. All
// figures cover the watched subset only.
type StatsResponse struct {
	stats.Summary

	// AverageRating is null when no watched movie has a rating (the
	// aggregate is NaN, which JSON cannot carry).
	AverageRating *float64 `json:"average_rating"`

	TopRated        []watchlist.MovieRecord `json:"top_rated"`
	ByDirector      []stats.Group           `json:"by_director"`
	ByActor         []stats.Group           `json:"by_actor"`
	ByGenre         []stats.GenreCount      `json:"by_genre"`
	WatchedByRating []watchlist.MovieRecord `json:"watched_by_rating"`
}

// Stats handles GET /api/v1/stats.
//
// Directors and actors appear only with at least two watched movies,
// matching the reference behavior.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	h.mu.Lock()
	summary := stats.Summarize(h.table)
	resp := StatsResponse{
		Summary:         summary,
		TopRated:        stats.TopRated(h.table, h.cfg.API.TopRatedCount),
		ByDirector:      stats.ByDirector(h.table, stats.MinGroupCount),
		ByActor:         stats.ByActor(h.table, stats.MinGroupCount),
		ByGenre:         stats.ByGenre(h.table),
		WatchedByRating: stats.WatchedByRating(h.table),
	}
	h.mu.Unlock()

	if !math.IsNaN(summary.AverageRating) {
		avg := summary.AverageRating
		resp.AverageRating = &avg
	}

	rw.Success(resp)
}

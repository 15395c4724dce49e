// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"

	"github.com/reelist/reelist/internal/filter"
	"github.com/reelist/reelist/internal/watchlist"
)

// MoviesResponse contains a filtered view of the table.
type MoviesResponse struct {
	Movies []watchlist.MovieRecord `json:"movies"`
	Count  int                     `json:"count"`
	Total  int                     `json:"total"`
}

// Movies handles GET /api/v1/movies.
//
// Query parameters map onto the filter criteria. When a title query (q) is
// present, the result is the fuzzy top match only and other filters are
// ignored (detail view); otherwise all active filters apply (list view).
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	criteria, err := h.criteriaFromQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	h.mu.Lock()
	movies := filter.Apply(h.table, criteria)
	total := h.table.Len()
	h.mu.Unlock()

	rw.Success(MoviesResponse{
		Movies: movies,
		Count:  len(movies),
		Total:  total,
	})
}

// Movie handles GET /api/v1/movies/{index}.
func (h *Handler) Movie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	index, err := recordIndex(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	h.mu.Lock()
	rec, ok := h.table.Record(index)
	h.mu.Unlock()

	if !ok {
		rw.NotFound("no movie at that index")
		return
	}
	rw.Success(rec)
}

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"net/http"

	"github.com/reelist/reelist/internal/search"
)

// SearchResponse contains ranked fuzzy title matches.
type SearchResponse struct {
	Matches []search.TitleMatch `json:"matches"`
	Count   int                 `json:"count"`
}

// SearchTitles handles GET /api/v1/search/titles.
//
// Parameters:
//   - q: search query (required, 1-200 characters)
//   - min_score: similarity cutoff override (1-100)
//   - limit: maximum results override (1-100)
//
// An empty candidate table or a query with no match above the cutoff yields
// an empty match list, not an error.
func (h *Handler) SearchTitles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	query := r.URL.Query().Get("q")
	if query == "" {
		rw.BadRequest("query parameter 'q' is required")
		return
	}
	if len(query) > 200 {
		rw.BadRequest("query parameter 'q' must be 200 characters or less")
		return
	}

	opts, err := h.searchOptionsFromQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	h.mu.Lock()
	records := h.table.Records()
	h.mu.Unlock()

	titles := make([]string, len(records))
	for i, rec := range records {
		titles[i] = rec.Title
	}

	matches := search.Match(query, titles, opts)
	rw.Success(SearchResponse{Matches: matches, Count: len(matches)})
}

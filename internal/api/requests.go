// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/reelist/reelist/internal/filter"
	"github.com/reelist/reelist/internal/search"
)

// SetRatingRequest is the body of PUT /movies/{index}/rating. A null rating
// clears the personal score.
type SetRatingRequest struct {
	Rating *float64 `json:"rating" validate:"omitempty,halfstep"`
}

// SetWatchedRequest is the body of PUT /movies/{index}/watched.
type SetWatchedRequest struct {
	Watched *bool `json:"watched" validate:"required"`
}

// recordIndex extracts the {index} URL parameter.
func recordIndex(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("index %q is not an integer", raw)
	}
	return index, nil
}

// criteriaFromQuery maps list-view query parameters onto filter criteria.
//
// Supported parameters: director, actor, genres (comma-separated), decade,
// watched (all|watched|unwatched), q (title query). Absent parameters leave
// the dimension inactive.
func (h *Handler) criteriaFromQuery(r *http.Request) (filter.Criteria, error) {
	q := r.URL.Query()

	c := filter.Criteria{
		Director:   q.Get("director"),
		Actor:      q.Get("actor"),
		TitleQuery: q.Get("q"),
		Watched:    filter.WatchedAll,
		SearchOptions: search.Options{
			Limit:    h.cfg.Search.Limit,
			MinScore: h.cfg.Search.MinScore,
		},
	}

	if genres := strings.TrimSpace(q.Get("genres")); genres != "" {
		for _, g := range strings.Split(genres, ",") {
			if g = strings.TrimSpace(g); g != "" {
				c.Genres = append(c.Genres, g)
			}
		}
	}

	if raw := q.Get("decade"); raw != "" && raw != filter.All {
		decade, err := strconv.Atoi(raw)
		if err != nil {
			return c, fmt.Errorf("decade %q is not an integer", raw)
		}
		c.Decade = &decade
	}

	switch state := q.Get("watched"); state {
	case "", string(filter.WatchedAll), filter.All:
	case string(filter.WatchedOnly):
		c.Watched = filter.WatchedOnly
	case string(filter.Unwatched):
		c.Watched = filter.Unwatched
	default:
		return c, fmt.Errorf("watched %q must be all, watched, or unwatched", state)
	}

	return c, nil
}

// searchOptionsFromQuery reads min_score and limit overrides for the title
// search endpoint, falling back to configured defaults.
func (h *Handler) searchOptionsFromQuery(r *http.Request) (search.Options, error) {
	opts := search.Options{
		Limit:    h.cfg.Search.Limit,
		MinScore: h.cfg.Search.MinScore,
	}

	if raw := r.URL.Query().Get("min_score"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return opts, fmt.Errorf("min_score must be an integer between 1 and 100")
		}
		opts.MinScore = parsed
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			return opts, fmt.Errorf("limit must be an integer between 1 and 100")
		}
		opts.Limit = parsed
	}

	return opts, nil
}

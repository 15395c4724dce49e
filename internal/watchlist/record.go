// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import "strings"

// Missing is the sentinel written into absent string columns at load time.
const Missing = "N/A"

// Canonical column names of the interchange format. Header matching trims
// whitespace; column order is not significant.
const (
	ColTitle     = "Title"
	ColYear      = "Year"
	ColGenres    = "Genres"
	ColActors    = "Actors"
	ColDirector  = "Director"
	ColPlot      = "Plot"
	ColPosterURL = "Poster_URL"
	ColRating    = "Rating"
	ColWatched   = "Watched"
)

// ExportColumns is the column order used when exporting a table.
var ExportColumns = []string{
	ColTitle, ColYear, ColGenres, ColActors, ColDirector,
	ColPlot, ColPosterURL, ColRating, ColWatched,
}

// MovieRecord is one row of the table.
//
// Genres and Actors are derived from the raw comma-plus-space separated
// columns at load time and are never mutated directly. Year and Rating use
// pointers so "unknown" is distinguishable from zero.
type MovieRecord struct {
	// Index is the stable zero-based row position assigned at load. It is
	// the only selector the mutation gateway accepts.
	Index int `json:"index"`

	Title     string   `json:"title"`
	Year      *int     `json:"year"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Director  string   `json:"director"`
	Plot      string   `json:"plot"`
	PosterURL string   `json:"poster_url"`

	// Rating is a personal score in [0.5, 10.0] with 0.5 steps, nil when
	// unrated. A non-nil rating implies Watched (enforced by SetRating).
	Rating *float64 `json:"rating"`

	Watched bool `json:"watched"`
}

// Decade returns the release decade bucket (floor(year/10)*10) and true,
// or 0 and false when the year is unknown.
func (r MovieRecord) Decade() (int, bool) {
	if r.Year == nil {
		return 0, false
	}
	return (*r.Year / 10) * 10, true
}

// RawTable is the tabular interchange form consumed by Load and produced by
// Export. The surrounding host is responsible for (de)serializing it, e.g.
// from CSV (see internal/csvio).
type RawTable struct {
	Header []string
	Rows   [][]string
}

// splitList derives a list field from a comma-plus-space separated raw
// string. Empty and sentinel values derive an empty list.
func splitList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == Missing {
		return []string{}
	}
	parts := strings.Split(raw, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// joinList is the inverse of splitList, used by Export.
func joinList(list []string) string {
	return strings.Join(list, ", ")
}

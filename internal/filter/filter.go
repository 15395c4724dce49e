// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package filter

import (
	"strings"

	"github.com/reelist/reelist/internal/search"
	"github.com/reelist/reelist/internal/watchlist"
)

// WatchedState selects records by their watched flag.
type WatchedState string

// Watched state values. Anything else is treated as WatchedAll.
const (
	WatchedAll  WatchedState = "all"
	WatchedOnly WatchedState = "watched"
	Unwatched   WatchedState = "unwatched"
)

// All is the inactive value for single-select string dimensions, matching
// the "All" entry the reference UI prepends to its select boxes.
const All = "All"

// Criteria is the transient combination of active filter selections. The
// zero value is fully inactive and passes every record.
type Criteria struct {
	// Director filters by exact string equality. Empty or "All" is inactive.
	Director string

	// Actor filters by case-insensitive substring over the raw actor list.
	// A partial name can over-match ("Ann" matches "Anna"); this mirrors the
	// reference behavior and is documented as intentional.
	Actor string

	// Genres passes records whose derived genres intersect the set. Empty
	// means no constraint.
	Genres []string

	// Decade matches floor(year/10)*10. Records with an unknown year never
	// match an active decade. Nil is inactive.
	Decade *int

	// Watched selects by watched state.
	Watched WatchedState

	// TitleQuery, when non-empty, overrides all other dimensions and
	// restricts the result to the fuzzy matcher's top result.
	TitleQuery string

	// SearchOptions tunes the fuzzy match used for TitleQuery. Zero values
	// take the matcher defaults.
	SearchOptions search.Options
}

// Apply narrows the table to records satisfying the criteria, preserving
// table order.
func Apply(t *watchlist.Table, c Criteria) []watchlist.MovieRecord {
	records := t.Records()

	if strings.TrimSpace(c.TitleQuery) != "" {
		return topMatch(records, c)
	}

	out := make([]watchlist.MovieRecord, 0, len(records))
	for _, rec := range records {
		if matches(rec, c) {
			out = append(out, rec)
		}
	}
	return out
}

// topMatch resolves the title query to the single best fuzzy match. The
// matcher's index points back into the records slice, so duplicate titles
// resolve unambiguously.
func topMatch(records []watchlist.MovieRecord, c Criteria) []watchlist.MovieRecord {
	titles := make([]string, len(records))
	for i, rec := range records {
		titles[i] = rec.Title
	}

	ranked := search.Match(c.TitleQuery, titles, c.SearchOptions)
	if len(ranked) == 0 {
		return []watchlist.MovieRecord{}
	}
	return []watchlist.MovieRecord{records[ranked[0].Index]}
}

// matches evaluates all non-title dimensions with AND logic.
func matches(rec watchlist.MovieRecord, c Criteria) bool {
	if active(c.Director) && rec.Director != c.Director {
		return false
	}

	if active(c.Actor) && !actorMatches(rec, c.Actor) {
		return false
	}

	if len(c.Genres) > 0 && !genreIntersects(rec.Genres, c.Genres) {
		return false
	}

	if c.Decade != nil {
		decade, ok := rec.Decade()
		if !ok || decade != *c.Decade {
			return false
		}
	}

	switch c.Watched {
	case WatchedOnly:
		if !rec.Watched {
			return false
		}
	case Unwatched:
		if rec.Watched {
			return false
		}
	}

	return true
}

// active reports whether a single-select string dimension is constraining.
func active(v string) bool {
	return v != "" && v != All
}

// actorMatches performs the case-insensitive substring test against the raw
// (re-joined) actor string.
func actorMatches(rec watchlist.MovieRecord, actor string) bool {
	raw := strings.ToLower(strings.Join(rec.Actors, ", "))
	return strings.Contains(raw, strings.ToLower(actor))
}

// genreIntersects reports whether any record genre is in the selected set.
func genreIntersects(genres, selected []string) bool {
	for _, g := range genres {
		for _, s := range selected {
			if g == s {
				return true
			}
		}
	}
	return false
}

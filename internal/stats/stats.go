// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package stats

import (
	"math"
	"sort"

	"github.com/reelist/reelist/internal/watchlist"
)

// MinGroupCount is the default threshold for the director and actor
// groupings: a person appears only with at least this many watched movies.
const MinGroupCount = 2

// Group is one director or actor with the watched titles they appear in,
// in table order.
type Group struct {
	Name   string   `json:"name"`
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}

// GenreCount is one genre with its watched-movie count.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// Summary is the aggregate view over the watched subset.
type Summary struct {
	TotalRecords   int `json:"total_records"`
	TotalWatched   int `json:"total_watched"`
	TotalUnwatched int `json:"total_unwatched"`
	RatedCount     int `json:"rated_count"`

	// AverageRating is the mean of non-null ratings among watched records.
	// NaN when no such ratings exist; guard before rendering.
	AverageRating float64 `json:"-"`

	// MostCommonGenre is the genre with the maximum watched count, ties
	// broken by first-encountered order. Empty when nothing is watched.
	MostCommonGenre      string `json:"most_common_genre,omitempty"`
	MostCommonGenreCount int    `json:"most_common_genre_count,omitempty"`
}

// Summarize computes the headline aggregate figures.
func Summarize(t *watchlist.Table) Summary {
	s := Summary{TotalRecords: t.Len(), AverageRating: math.NaN()}

	var sum float64
	for _, rec := range t.Records() {
		if !rec.Watched {
			continue
		}
		s.TotalWatched++
		if rec.Rating != nil {
			s.RatedCount++
			sum += *rec.Rating
		}
	}
	s.TotalUnwatched = s.TotalRecords - s.TotalWatched

	if s.RatedCount > 0 {
		s.AverageRating = sum / float64(s.RatedCount)
	}

	for _, gc := range ByGenre(t) {
		if gc.Count > s.MostCommonGenreCount {
			s.MostCommonGenre = gc.Genre
			s.MostCommonGenreCount = gc.Count
		}
	}

	return s
}

// TopRated returns up to n watched, rated records ordered by rating
// descending. Equal ratings keep original table order (stable sort).
func TopRated(t *watchlist.Table, n int) []watchlist.MovieRecord {
	rated := make([]watchlist.MovieRecord, 0, t.Len())
	for _, rec := range t.Records() {
		if rec.Watched && rec.Rating != nil {
			rated = append(rated, rec)
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		return *rated[i].Rating > *rated[j].Rating
	})

	if n >= 0 && len(rated) > n {
		rated = rated[:n]
	}
	return rated
}

// WatchedByRating returns every watched record ordered by rating descending,
// unrated records last, stable within equal ratings. This backs the watched
// movies listing.
func WatchedByRating(t *watchlist.Table) []watchlist.MovieRecord {
	watched := make([]watchlist.MovieRecord, 0, t.Len())
	for _, rec := range t.Records() {
		if rec.Watched {
			watched = append(watched, rec)
		}
	}

	sort.SliceStable(watched, func(i, j int) bool {
		ri, rj := watched[i].Rating, watched[j].Rating
		switch {
		case ri == nil:
			return false
		case rj == nil:
			return true
		default:
			return *ri > *rj
		}
	})
	return watched
}

// ByDirector groups watched titles by director, keeping only directors with
// at least minCount watched movies. Groups are ordered by the director's
// first appearance in the table; minCount <= 0 applies the default of 2.
// Records with the "N/A" director sentinel are skipped.
func ByDirector(t *watchlist.Table, minCount int) []Group {
	if minCount <= 0 {
		minCount = MinGroupCount
	}

	groups := groupTitles(t, func(rec watchlist.MovieRecord) []string {
		if rec.Director == watchlist.Missing {
			return nil
		}
		return []string{rec.Director}
	})
	return filterGroups(groups, minCount)
}

// ByActor groups watched titles by actor, keeping only actors with at least
// minCount watched movies. The per-record actor list is exploded, so a
// record with three actors contributes to three counts. minCount <= 0
// applies the default of 2.
func ByActor(t *watchlist.Table, minCount int) []Group {
	if minCount <= 0 {
		minCount = MinGroupCount
	}

	groups := groupTitles(t, func(rec watchlist.MovieRecord) []string {
		return rec.Actors
	})
	return filterGroups(groups, minCount)
}

// ByGenre counts watched movies per genre, ordered by first appearance.
func ByGenre(t *watchlist.Table) []GenreCount {
	index := make(map[string]int)
	counts := make([]GenreCount, 0)

	for _, rec := range t.Records() {
		if !rec.Watched {
			continue
		}
		for _, genre := range rec.Genres {
			i, seen := index[genre]
			if !seen {
				index[genre] = len(counts)
				counts = append(counts, GenreCount{Genre: genre})
				i = len(counts) - 1
			}
			counts[i].Count++
		}
	}
	return counts
}

// groupTitles builds encounter-ordered groups keyed by the names a record
// contributes, over the watched subset only.
func groupTitles(t *watchlist.Table, names func(watchlist.MovieRecord) []string) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, rec := range t.Records() {
		if !rec.Watched {
			continue
		}
		for _, name := range names(rec) {
			i, seen := index[name]
			if !seen {
				index[name] = len(groups)
				groups = append(groups, Group{Name: name})
				i = len(groups) - 1
			}
			groups[i].Count++
			groups[i].Titles = append(groups[i].Titles, rec.Title)
		}
	}
	return groups
}

// filterGroups drops groups below the count threshold, preserving order.
func filterGroups(groups []Group, minCount int) []Group {
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if g.Count >= minCount {
			out = append(out, g)
		}
	}
	return out
}

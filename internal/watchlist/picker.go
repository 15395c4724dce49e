// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import "math/rand/v2"

// PickUnwatched selects one uniformly random record from the unwatched
// subset. It returns false when every record is watched; that is a valid
// "all caught up" outcome, not an error.
//
// Each call is an independent draw. There is no memory between calls and no
// guarantee against repeating a previous suggestion.
func (t *Table) PickUnwatched() (MovieRecord, bool) {
	unwatched := make([]int, 0, len(t.records))
	for i, rec := range t.records {
		if !rec.Watched {
			unwatched = append(unwatched, i)
		}
	}
	if len(unwatched) == 0 {
		return MovieRecord{}, false
	}
	return t.records[unwatched[rand.IntN(len(unwatched))]], true
}

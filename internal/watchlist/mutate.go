// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import (
	"fmt"
	"math"

	"github.com/reelist/reelist/internal/logging"
)

// Rating bounds. Valid ratings are the 20 half-step values 0.5, 1.0, ... 10.0.
const (
	MinRating  = 0.5
	MaxRating  = 10.0
	RatingStep = 0.5
)

// validRating reports whether r is one of the discrete rating steps.
func validRating(r float64) bool {
	if r < MinRating || r > MaxRating {
		return false
	}
	steps := r / RatingStep
	return steps == math.Trunc(steps)
}

// SetWatched sets the watched flag on the record at index. It has no
// cascading effect on the rating: unmarking a rated movie as watched is
// allowed and leaves the rating in place.
func (t *Table) SetWatched(index int, watched bool) error {
	if index < 0 || index >= len(t.records) {
		return &ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("no record at index %d", index),
		}
	}

	t.records[index].Watched = watched

	logging.Debug().
		Int("index", index).
		Bool("watched", watched).
		Str("title", t.records[index].Title).
		Msg("Updated watched flag")
	return nil
}

// SetRating sets or clears the rating on the record at index.
//
// A non-nil rating must be one of the half-step values in [0.5, 10.0];
// anything else is rejected with *ValidationError and the table is left
// unchanged. Setting a rating forces watched to true. Clearing the rating
// (nil) leaves the watched flag as it is.
func (t *Table) SetRating(index int, rating *float64) error {
	if index < 0 || index >= len(t.records) {
		return &ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("no record at index %d", index),
		}
	}

	if rating == nil {
		t.records[index].Rating = nil
		logging.Debug().
			Int("index", index).
			Str("title", t.records[index].Title).
			Msg("Cleared rating")
		return nil
	}

	if !validRating(*rating) {
		return &ValidationError{
			Field: "rating",
			Message: fmt.Sprintf("%g is not a half-step value between %g and %g",
				*rating, MinRating, MaxRating),
		}
	}

	value := *rating
	t.records[index].Rating = &value
	t.records[index].Watched = true

	logging.Debug().
		Int("index", index).
		Float64("rating", value).
		Str("title", t.records[index].Title).
		Msg("Updated rating")
	return nil
}

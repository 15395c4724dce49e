// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package stats computes read-only summaries over the watched subset of the
// table.
//
// Every aggregation filters to watched records first (or, for rating
// figures, to records with a non-null rating). The aggregator never fails on
// degenerate data: an empty table, missing years, or zero ratings degrade to
// empty or neutral results. AverageRating is NaN when no ratings exist;
// callers must guard before rendering it.
//
// Ordered slices are returned instead of maps wherever the reference
// behavior depends on encounter order (top-rated ties, most common genre).
package stats

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package filter narrows the watchlist table to records satisfying a
// Criteria value.
//
// All filter dimensions are optional and combine with AND logic; an inactive
// dimension ("All", empty string, empty set) passes everything. The genre
// set uses OR logic within the dimension: a record passes when any of its
// derived genres is selected.
//
// A non-empty title query switches the engine into detail view: it delegates
// to the fuzzy matcher and returns only the top match, ignoring every other
// dimension. This asymmetry is inherited from the reference behavior (see
// DESIGN.md).
//
// For a fixed table and fixed criteria the output membership and order are
// reproducible; iteration follows the table's insertion order.
package filter

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package watchlist holds the canonical in-memory movie table.
//
// The table is built once per loaded dataset and lives for the session. It
// owns column normalization and defaulting: missing columns are filled with
// documented defaults rather than rejected, and the comma-separated genre and
// actor columns are split into derived lists at load time.
//
// Three concerns live here:
//
//   - Loading and exporting the raw tabular interchange format (table.go)
//   - The mutation gateway for rating and watched updates (mutate.go)
//   - The random unwatched suggestion (picker.go)
//
// Mutations are keyed by the stable zero-based row index assigned at load.
// Titles are display and search keys only; they are not required to be
// unique, so keying updates by title would silently corrupt duplicate rows.
//
// The table assumes exclusive, sequential access. A host embedding it in a
// concurrent server must serialize calls (see internal/api).
package watchlist

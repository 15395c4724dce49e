// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package csvio reads and writes the CSV interchange form of the watchlist
// table.
//
// It is the host-side serialization collaborator: the core consumes and
// produces watchlist.RawTable values, and this package maps those to CSV
// bytes. Unparseable CSV surfaces as *watchlist.SchemaError so the load
// boundary reports a single error taxonomy.
package csvio

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package dataset sources the initial watchlist table for a session.
//
// The host either reads a local CSV file or, when none is configured,
// fetches the remote starter dataset the way the reference application does.
// Both paths funnel through csvio and watchlist.Load so the same schema
// normalization applies regardless of origin.
package dataset

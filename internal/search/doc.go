// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

// Package search ranks candidate titles by approximate similarity to a
// free-text query.
//
// Scoring is an integer 0-100 similarity (100 = exact match) computed as the
// better of two normalized Levenshtein ratios: one over the whole normalized
// string and one over the token-sorted form, so word reordering ("godfather
// the") still finds "The Godfather". Matching is case-insensitive.
//
// Results are filtered by a minimum score, ordered by score descending with
// ties preserving candidate input order (stable sort), and truncated to a
// limit. The first entry is the "top match" used for detail display.
//
// An empty query returns an empty result by design: filtering must never be
// triggered by absence of input.
package search

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package search

import (
	"sort"
	"strings"
)

// Default ranking bounds, applied when Options fields are zero or out of
// range.
const (
	DefaultLimit    = 8
	DefaultMinScore = 60

	maxLimit = 100
)

// Options controls ranking.
type Options struct {
	// Limit is the maximum number of matches returned (default 8, max 100).
	Limit int

	// MinScore is the minimum similarity score kept (default 60).
	MinScore int
}

// TitleMatch is one ranked candidate. Index is the candidate's position in
// the input slice so callers can resolve duplicate titles unambiguously.
type TitleMatch struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Score int    `json:"score"`
}

// Match scores every candidate against the query and returns matches with
// score >= MinScore, ordered by score descending. Equal scores preserve
// candidate input order, which determines the top match downstream.
//
// An empty query or empty candidate list yields an empty result.
func Match(query string, candidates []string, opts Options) []TitleMatch {
	if opts.Limit <= 0 || opts.Limit > maxLimit {
		opts.Limit = DefaultLimit
	}
	if opts.MinScore <= 0 || opts.MinScore > 100 {
		opts.MinScore = DefaultMinScore
	}

	query = normalize(query)
	if query == "" || len(candidates) == 0 {
		return []TitleMatch{}
	}

	matches := make([]TitleMatch, 0, len(candidates))
	for i, candidate := range candidates {
		score := scoreNormalized(query, normalize(candidate))
		if score >= opts.MinScore {
			matches = append(matches, TitleMatch{Index: i, Title: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches
}

// Score computes the 0-100 similarity between a query and a single
// candidate. Case-insensitive; 100 for an exact match.
func Score(query, candidate string) int {
	q := normalize(query)
	if q == "" {
		return 0
	}
	return scoreNormalized(q, normalize(candidate))
}

// scoreNormalized scores two already-normalized strings as the better of the
// plain ratio and the token-sort ratio.
func scoreNormalized(query, candidate string) int {
	if query == candidate {
		return 100
	}
	score := ratio(query, candidate)
	if tokenScore := ratio(tokenSort(query), tokenSort(candidate)); tokenScore > score {
		score = tokenScore
	}
	return score
}

// ratio is the normalized Levenshtein similarity: 100 * (1 - dist/maxLen),
// rounded down. Single-character edits reduce it monotonically.
func ratio(a, b string) int {
	if a == b {
		return 100
	}
	ra, rb := []rune(a), []rune(b)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	if longest == 0 {
		return 100
	}
	dist := levenshtein(ra, rb)
	return (100 * (longest - dist)) / longest
}

// tokenSort rebuilds a string from its whitespace-separated tokens in sorted
// order, making the ratio insensitive to word reordering.
func tokenSort(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// levenshtein computes the edit distance between two rune slices using a
// single-row DP table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, min(prev[j]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// normalize lowercases and collapses runs of whitespace.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package filter

import (
	"reflect"
	"testing"

	"github.com/reelist/reelist/internal/watchlist"
)

func newTestTable(t *testing.T) *watchlist.Table {
	t.Helper()
	table, err := watchlist.Load(watchlist.RawTable{
		Header: []string{"Title", "Year", "Genres", "Actors", "Director", "Watched"},
		Rows: [][]string{
			{"Heat", "1995", "Crime, Thriller", "Al Pacino, Robert De Niro", "Michael Mann", "true"},
			{"Alien", "1979", "Horror, Sci-Fi", "Sigourney Weaver", "Ridley Scott", "true"},
			{"Blade Runner", "1982", "Sci-Fi", "Harrison Ford", "Ridley Scott", "false"},
			{"Unknown Era", "N/A", "Drama", "Anna Karina", "N/A", "false"},
		},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return table
}

func titles(records []watchlist.MovieRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.Title
	}
	return out
}

func TestApply(t *testing.T) {
	decade1970 := 1970
	decade1990 := 1990

	tests := []struct {
		name     string
		criteria Criteria
		want     []string
	}{
		{
			name:     "zero criteria passes everything",
			criteria: Criteria{},
			want:     []string{"Heat", "Alien", "Blade Runner", "Unknown Era"},
		},
		{
			name:     "director exact match",
			criteria: Criteria{Director: "Ridley Scott"},
			want:     []string{"Alien", "Blade Runner"},
		},
		{
			name:     "director All is inactive",
			criteria: Criteria{Director: All},
			want:     []string{"Heat", "Alien", "Blade Runner", "Unknown Era"},
		},
		{
			name:     "actor substring case insensitive",
			criteria: Criteria{Actor: "de niro"},
			want:     []string{"Heat"},
		},
		{
			name:     "actor partial name over-matches",
			criteria: Criteria{Actor: "Ann"},
			want:     []string{"Unknown Era"},
		},
		{
			name:     "genres OR within the set",
			criteria: Criteria{Genres: []string{"Horror", "Crime"}},
			want:     []string{"Heat", "Alien"},
		},
		{
			name:     "decade bucket",
			criteria: Criteria{Decade: &decade1970},
			want:     []string{"Alien"},
		},
		{
			name:     "unknown year never matches a decade",
			criteria: Criteria{Decade: &decade1990},
			want:     []string{"Heat"},
		},
		{
			name:     "watched only",
			criteria: Criteria{Watched: WatchedOnly},
			want:     []string{"Heat", "Alien"},
		},
		{
			name:     "unwatched only",
			criteria: Criteria{Watched: Unwatched},
			want:     []string{"Blade Runner", "Unknown Era"},
		},
		{
			name: "dimensions AND together",
			criteria: Criteria{
				Director: "Ridley Scott",
				Genres:   []string{"Sci-Fi"},
				Watched:  WatchedOnly,
			},
			want: []string{"Alien"},
		},
		{
			name:     "title query returns only the top fuzzy match",
			criteria: Criteria{TitleQuery: "blade runer"},
			want:     []string{"Blade Runner"},
		},
		{
			name: "title query overrides other dimensions",
			criteria: Criteria{
				TitleQuery: "Heat",
				Director:   "Ridley Scott",
				Watched:    Unwatched,
			},
			want: []string{"Heat"},
		},
		{
			name:     "title query with no match above cutoff",
			criteria: Criteria{TitleQuery: "zzzzzzzz"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := newTestTable(t)
			got := titles(Apply(table, tt.criteria))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	table := newTestTable(t)
	criteria := Criteria{Director: "Ridley Scott"}

	first := Apply(table, criteria)
	second := Apply(table, criteria)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Apply() differs:\n first %v\nsecond %v", first, second)
	}
}

func TestApplyDoesNotMutateTable(t *testing.T) {
	table := newTestTable(t)
	before := table.Records()

	Apply(table, Criteria{Genres: []string{"Sci-Fi"}, Watched: Unwatched})

	if !reflect.DeepEqual(table.Records(), before) {
		t.Error("Apply() mutated the table")
	}
}

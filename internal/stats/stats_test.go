// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package stats

import (
	"math"
	"reflect"
	"testing"

	"github.com/reelist/reelist/internal/watchlist"
)

func newTestTable(t *testing.T) *watchlist.Table {
	t.Helper()
	table, err := watchlist.Load(watchlist.RawTable{
		Header: []string{"Title", "Genres", "Actors", "Director", "Rating", "Watched"},
		Rows: [][]string{
			{"Heat", "Crime, Thriller", "Al Pacino, Robert De Niro", "Michael Mann", "9", "true"},
			{"Alien", "Horror, Sci-Fi", "Sigourney Weaver", "Ridley Scott", "9", "true"},
			{"Blade Runner", "Sci-Fi", "Harrison Ford", "Ridley Scott", "7", "true"},
			{"The Insider", "Drama", "Al Pacino", "Michael Mann", "", "true"},
			{"Gladiator", "Action", "Russell Crowe", "Ridley Scott", "8", "false"},
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

func TestSummarize(t *testing.T) {
	s := Summarize(newTestTable(t))

	if s.TotalRecords != 5 {
		t.Errorf("TotalRecords = %d, want 5", s.TotalRecords)
	}
	if s.TotalWatched != 4 {
		t.Errorf("TotalWatched = %d, want 4", s.TotalWatched)
	}
	if s.TotalUnwatched != 1 {
		t.Errorf("TotalUnwatched = %d, want 1", s.TotalUnwatched)
	}
	if s.RatedCount != 3 {
		t.Errorf("RatedCount = %d, want 3", s.RatedCount)
	}

	// (9 + 9 + 7) / 3; the unwatched 8.0 must not contribute.
	want := 25.0 / 3.0
	if math.Abs(s.AverageRating-want) > 1e-9 {
		t.Errorf("AverageRating = %v, want %v", s.AverageRating, want)
	}

	// Sci-Fi appears twice among watched records; ties break toward the
	// first-encountered genre, so a count of 2 beats the five singles.
	if s.MostCommonGenre != "Sci-Fi" {
		t.Errorf("MostCommonGenre = %q, want %q", s.MostCommonGenre, "Sci-Fi")
	}
	if s.MostCommonGenreCount != 2 {
		t.Errorf("MostCommonGenreCount = %d, want 2", s.MostCommonGenreCount)
	}
}

func TestSummarizeNoRatings(t *testing.T) {
	table, err := watchlist.Load(watchlist.RawTable{
		Header: []string{"Title", "Watched"},
		Rows:   [][]string{{"Heat", "true"}},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	s := Summarize(table)
	if !math.IsNaN(s.AverageRating) {
		t.Errorf("AverageRating = %v with no ratings, want NaN", s.AverageRating)
	}
}

func TestTopRated(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []string
	}{
		// Heat and Alien tie at 9; table order breaks the tie.
		{name: "top two keeps table order on ties", n: 2, want: []string{"Heat", "Alien"}},
		{name: "n larger than rated set", n: 10, want: []string{"Heat", "Alien", "Blade Runner"}},
		{name: "zero n", n: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(TopRated(newTestTable(t), tt.n))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopRated(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestWatchedByRating(t *testing.T) {
	got := titles(WatchedByRating(newTestTable(t)))
	// Rated watched records descending, then the unrated watched record.
	want := []string{"Heat", "Alien", "Blade Runner", "The Insider"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WatchedByRating() = %v, want %v", got, want)
	}
}

func TestByDirector(t *testing.T) {
	got := ByDirector(newTestTable(t), 0)

	// Ridley Scott has Gladiator too, but it is unwatched.
	want := []Group{
		{Name: "Michael Mann", Count: 2, Titles: []string{"Heat", "The Insider"}},
		{Name: "Ridley Scott", Count: 2, Titles: []string{"Alien", "Blade Runner"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByDirector() = %+v, want %+v", got, want)
	}
}

func TestByDirectorSkipsMissingSentinel(t *testing.T) {
	table, err := watchlist.Load(watchlist.RawTable{
		Header: []string{"Title", "Director", "Watched"},
		Rows: [][]string{
			{"A", "N/A", "true"},
			{"B", "N/A", "true"},
		},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got := ByDirector(table, 1); len(got) != 0 {
		t.Errorf("ByDirector() = %+v, want no groups for the N/A sentinel", got)
	}
}

func TestByActorExplodesLists(t *testing.T) {
	got := ByActor(newTestTable(t), 2)

	// Only Al Pacino appears in two watched records.
	want := []Group{
		{Name: "Al Pacino", Count: 2, Titles: []string{"Heat", "The Insider"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByActor() = %+v, want %+v", got, want)
	}
}

func TestByGenre(t *testing.T) {
	got := ByGenre(newTestTable(t))

	// Encounter order over the watched subset; Gladiator's Action is absent.
	want := []GenreCount{
		{Genre: "Crime", Count: 1},
		{Genre: "Thriller", Count: 1},
		{Genre: "Horror", Count: 1},
		{Genre: "Sci-Fi", Count: 2},
		{Genre: "Drama", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByGenre() = %+v, want %+v", got, want)
	}
}

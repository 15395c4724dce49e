// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import (
	"errors"
	"reflect"
	"testing"
)

func fullHeader() []string {
	return []string{
		"Title", "Year", "Genres", "Actors", "Director",
		"Plot", "Poster_URL", "Rating", "Watched",
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawTable
		wantErr bool
		verify  func(t *testing.T, table *Table)
	}{
		{
			name: "full row",
			raw: RawTable{
				Header: fullHeader(),
				Rows: [][]string{
					{"Heat", "1995", "Crime, Thriller", "Al Pacino, Robert De Niro", "Michael Mann", "A heist goes wrong", "http://example.com/heat.jpg", "9.5", "true"},
				},
			},
			verify: func(t *testing.T, table *Table) {
				rec, ok := table.Record(0)
				if !ok {
					t.Fatal("Record(0) not found")
				}
				if rec.Title != "Heat" {
					t.Errorf("Title = %q, want %q", rec.Title, "Heat")
				}
				if rec.Year == nil || *rec.Year != 1995 {
					t.Errorf("Year = %v, want 1995", rec.Year)
				}
				if !reflect.DeepEqual(rec.Genres, []string{"Crime", "Thriller"}) {
					t.Errorf("Genres = %v, want [Crime Thriller]", rec.Genres)
				}
				if !reflect.DeepEqual(rec.Actors, []string{"Al Pacino", "Robert De Niro"}) {
					t.Errorf("Actors = %v, want [Al Pacino Robert De Niro]", rec.Actors)
				}
				if rec.Rating == nil || *rec.Rating != 9.5 {
					t.Errorf("Rating = %v, want 9.5", rec.Rating)
				}
				if !rec.Watched {
					t.Error("Watched = false, want true")
				}
			},
		},
		{
			name: "missing columns are defaulted",
			raw: RawTable{
				Header: []string{"Title"},
				Rows:   [][]string{{"Solaris"}},
			},
			verify: func(t *testing.T, table *Table) {
				rec, _ := table.Record(0)
				if rec.Director != Missing {
					t.Errorf("Director = %q, want %q", rec.Director, Missing)
				}
				if rec.Year != nil {
					t.Errorf("Year = %v, want nil", rec.Year)
				}
				if rec.Rating != nil {
					t.Errorf("Rating = %v, want nil", rec.Rating)
				}
				if rec.Watched {
					t.Error("Watched = true, want false")
				}
				if len(rec.Genres) != 0 {
					t.Errorf("Genres = %v, want empty", rec.Genres)
				}
			},
		},
		{
			name: "empty cells degrade instead of failing",
			raw: RawTable{
				Header: fullHeader(),
				Rows: [][]string{
					{"Stalker", "", "", "", "", "", "", "", ""},
				},
			},
			verify: func(t *testing.T, table *Table) {
				rec, _ := table.Record(0)
				if rec.Year != nil {
					t.Errorf("Year = %v, want nil", rec.Year)
				}
				if rec.Plot != Missing {
					t.Errorf("Plot = %q, want %q", rec.Plot, Missing)
				}
			},
		},
		{
			name: "non-numeric year and rating coerce to nil",
			raw: RawTable{
				Header: []string{"Title", "Year", "Rating"},
				Rows:   [][]string{{"Brazil", "unknown", "great"}},
			},
			verify: func(t *testing.T, table *Table) {
				rec, _ := table.Record(0)
				if rec.Year != nil {
					t.Errorf("Year = %v, want nil", rec.Year)
				}
				if rec.Rating != nil {
					t.Errorf("Rating = %v, want nil", rec.Rating)
				}
			},
		},
		{
			name: "duplicate header first occurrence wins",
			raw: RawTable{
				Header: []string{"Title", "Title"},
				Rows:   [][]string{{"First", "Second"}},
			},
			verify: func(t *testing.T, table *Table) {
				rec, _ := table.Record(0)
				if rec.Title != "First" {
					t.Errorf("Title = %q, want %q", rec.Title, "First")
				}
			},
		},
		{
			name: "header names are trimmed",
			raw: RawTable{
				Header: []string{" Title ", "  Year"},
				Rows:   [][]string{{"Alien", "1979"}},
			},
			verify: func(t *testing.T, table *Table) {
				rec, _ := table.Record(0)
				if rec.Title != "Alien" {
					t.Errorf("Title = %q, want %q", rec.Title, "Alien")
				}
				if rec.Year == nil || *rec.Year != 1979 {
					t.Errorf("Year = %v, want 1979", rec.Year)
				}
			},
		},
		{
			name:    "missing header row",
			raw:     RawTable{},
			wantErr: true,
		},
		{
			name: "ragged row",
			raw: RawTable{
				Header: []string{"Title", "Year"},
				Rows:   [][]string{{"Alien", "1979"}, {"Blade Runner"}},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := Load(tt.raw)
			if tt.wantErr {
				var serr *SchemaError
				if !errors.As(err, &serr) {
					t.Fatalf("Load() error = %v, want *SchemaError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.verify(t, table)
		})
	}
}

func TestLoadAssignsStableIndexes(t *testing.T) {
	table, err := Load(RawTable{
		Header: []string{"Title"},
		Rows:   [][]string{{"A"}, {"B"}, {"C"}},
	})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	for i, rec := range table.Records() {
		if rec.Index != i {
			t.Errorf("record %d has Index = %d", i, rec.Index)
		}
	}
}

func TestRecordOutOfRange(t *testing.T) {
	table, _ := Load(RawTable{Header: []string{"Title"}, Rows: [][]string{{"A"}}})

	for _, index := range []int{-1, 1, 100} {
		if _, ok := table.Record(index); ok {
			t.Errorf("Record(%d) ok = true, want false", index)
		}
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	table, _ := Load(RawTable{Header: []string{"Title"}, Rows: [][]string{{"A"}}})

	snapshot := table.Records()
	snapshot[0].Title = "mutated"

	rec, _ := table.Record(0)
	if rec.Title != "A" {
		t.Errorf("Title = %q after mutating snapshot, want %q", rec.Title, "A")
	}
}

func TestExportRoundTrip(t *testing.T) {
	raw := RawTable{
		Header: fullHeader(),
		Rows: [][]string{
			{"Heat", "1995", "Crime, Thriller", "Al Pacino", "Michael Mann", "Heist", "http://x", "9.5", "true"},
			{"Stalker", "N/A", "", "", "N/A", "N/A", "N/A", "", "false"},
		},
	}

	table, err := Load(raw)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	exported := table.Export()
	if !reflect.DeepEqual(exported.Header, fullHeader()) {
		t.Errorf("Header = %v, want %v", exported.Header, fullHeader())
	}

	reloaded, err := Load(exported)
	if err != nil {
		t.Fatalf("Load(Export()) error: %v", err)
	}
	if !reflect.DeepEqual(reloaded.Records(), table.Records()) {
		t.Errorf("round-trip mismatch:\n got %+v\nwant %+v", reloaded.Records(), table.Records())
	}
}

func TestExportReflectsMutations(t *testing.T) {
	table, _ := Load(RawTable{
		Header: fullHeader(),
		Rows: [][]string{
			{"Heat", "1995", "Crime", "Al Pacino", "Michael Mann", "Heist", "http://x", "", "false"},
		},
	})

	rating := 8.5
	if err := table.SetRating(0, &rating); err != nil {
		t.Fatalf("SetRating() error: %v", err)
	}

	row := table.Export().Rows[0]
	if row[7] != "8.5" {
		t.Errorf("exported rating = %q, want %q", row[7], "8.5")
	}
	if row[8] != "true" {
		t.Errorf("exported watched = %q, want %q", row[8], "true")
	}
}

func TestDecade(t *testing.T) {
	year := 1987
	tests := []struct {
		name   string
		year   *int
		want   int
		wantOK bool
	}{
		{name: "known year", year: &year, want: 1980, wantOK: true},
		{name: "unknown year", year: nil, want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := MovieRecord{Year: tt.year}
			got, ok := rec.Decade()
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Decade() = (%d, %v), want (%d, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

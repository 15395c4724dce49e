// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package csvio

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/reelist/reelist/internal/watchlist"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    watchlist.RawTable
		wantErr bool
	}{
		{
			name:  "header and rows",
			input: "Title,Year\nHeat,1995\nAlien,1979\n",
			want: watchlist.RawTable{
				Header: []string{"Title", "Year"},
				Rows:   [][]string{{"Heat", "1995"}, {"Alien", "1979"}},
			},
		},
		{
			name:  "quoted fields with commas",
			input: "Title,Actors\nHeat,\"Al Pacino, Robert De Niro\"\n",
			want: watchlist.RawTable{
				Header: []string{"Title", "Actors"},
				Rows:   [][]string{{"Heat", "Al Pacino, Robert De Niro"}},
			},
		},
		{
			name:  "header only",
			input: "Title,Year\n",
			want: watchlist.RawTable{
				Header: []string{"Title", "Year"},
			},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "ragged row",
			input:   "Title,Year\nHeat\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.input))
			if tt.wantErr {
				var serr *watchlist.SchemaError
				if !errors.As(err, &serr) {
					t.Fatalf("Read() error = %v, want *watchlist.SchemaError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Read() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	raw := watchlist.RawTable{
		Header: []string{"Title", "Actors", "Rating"},
		Rows: [][]string{
			{"Heat", "Al Pacino, Robert De Niro", "9.5"},
			{"Alien", "Sigourney Weaver", ""},
		},
	}

	var buf bytes.Buffer
	if err := Write(&buf, raw); err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	got, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(got, raw) {
		t.Errorf("round-trip = %+v, want %+v", got, raw)
	}
}

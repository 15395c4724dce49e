// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import (
	"strconv"
	"strings"

	"github.com/reelist/reelist/internal/logging"
)

// Table is the canonical movie collection for one session. It is created by
// Load, mutated in place through the mutation gateway, and replaced wholesale
// when a new dataset is loaded.
type Table struct {
	records []MovieRecord
}

// Load normalizes a raw table into a Table.
//
// Header names are whitespace-trimmed and matched against the canonical
// columns; the first occurrence of a duplicated header wins. Missing columns
// are defaulted per row: Rating to nil, Watched to false, every other column
// to the "N/A" sentinel. Genre and actor lists are derived by splitting the
// raw strings on ", ".
//
// Load fails with *SchemaError only when the input is not tabular: no header
// row, or a data row whose width does not match the header.
func Load(raw RawTable) (*Table, error) {
	if len(raw.Header) == 0 {
		return nil, &SchemaError{Reason: "missing header row"}
	}

	cols := make(map[string]int, len(raw.Header))
	for i, name := range raw.Header {
		name = strings.TrimSpace(name)
		if _, seen := cols[name]; !seen {
			cols[name] = i
		}
	}

	records := make([]MovieRecord, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if len(row) != len(raw.Header) {
			return nil, &SchemaError{
				Reason: "row width does not match header",
				Row:    i + 1,
			}
		}

		cell := func(col string) (string, bool) {
			idx, ok := cols[col]
			if !ok {
				return "", false
			}
			return strings.TrimSpace(row[idx]), true
		}

		rec := MovieRecord{
			Index:     i,
			Title:     stringCell(cell, ColTitle),
			Director:  stringCell(cell, ColDirector),
			Plot:      stringCell(cell, ColPlot),
			PosterURL: stringCell(cell, ColPosterURL),
		}
		rawGenres, _ := cell(ColGenres)
		rawActors, _ := cell(ColActors)
		rec.Genres = splitList(rawGenres)
		rec.Actors = splitList(rawActors)
		rec.Year = parseYear(cell)
		rec.Rating = parseRating(cell)
		rec.Watched = parseWatched(cell)

		records = append(records, rec)
	}

	logging.Debug().
		Int("records", len(records)).
		Int("columns", len(raw.Header)).
		Msg("Loaded watchlist table")

	return &Table{records: records}, nil
}

// stringCell reads a string column, applying the "N/A" default when the
// column is absent or the cell is empty.
func stringCell(cell func(string) (string, bool), col string) string {
	v, ok := cell(col)
	if !ok || v == "" {
		return Missing
	}
	return v
}

// parseYear reads the Year column. Absent, empty, or non-numeric values
// degrade to nil rather than failing the load.
func parseYear(cell func(string) (string, bool)) *int {
	v, ok := cell(ColYear)
	if !ok || v == "" || v == Missing {
		return nil
	}
	year, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &year
}

// parseRating reads the Rating column. Non-numeric text coerces to nil, the
// same way the interchange format treats an empty cell.
func parseRating(cell func(string) (string, bool)) *float64 {
	v, ok := cell(ColRating)
	if !ok || v == "" || v == Missing {
		return nil
	}
	rating, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &rating
}

// parseWatched reads the Watched column, accepting common boolean-like
// tokens. Anything unrecognized defaults to false.
func parseWatched(cell func(string) (string, bool)) bool {
	v, ok := cell(ColWatched)
	if !ok {
		return false
	}
	switch strings.ToLower(v) {
	case "true", "t", "1", "yes", "y":
		return true
	default:
		return false
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a snapshot of all records in insertion order. The returned
// slice is a copy; mutating it does not affect the table.
func (t *Table) Records() []MovieRecord {
	out := make([]MovieRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Record returns the record at the given index and true, or a zero record
// and false when the index is out of range.
func (t *Table) Record(index int) (MovieRecord, bool) {
	if index < 0 || index >= len(t.records) {
		return MovieRecord{}, false
	}
	return t.records[index], true
}

// Export produces the raw tabular form of the table using the canonical
// column order. Title, Year, Director, Plot, Poster_URL, Rating and Watched
// round-trip exactly; Genres and Actors are re-joined from the derived lists.
func (t *Table) Export() RawTable {
	rows := make([][]string, 0, len(t.records))
	for _, rec := range t.records {
		year := Missing
		if rec.Year != nil {
			year = strconv.Itoa(*rec.Year)
		}
		rating := ""
		if rec.Rating != nil {
			rating = strconv.FormatFloat(*rec.Rating, 'f', -1, 64)
		}
		rows = append(rows, []string{
			rec.Title,
			year,
			joinList(rec.Genres),
			joinList(rec.Actors),
			rec.Director,
			rec.Plot,
			rec.PosterURL,
			rating,
			strconv.FormatBool(rec.Watched),
		})
	}

	header := make([]string, len(ExportColumns))
	copy(header, ExportColumns)
	return RawTable{Header: header, Rows: rows}
}

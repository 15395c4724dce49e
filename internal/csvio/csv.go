// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/reelist/reelist/internal/watchlist"
)

// Read parses CSV into a raw table. The first row is the header; the
// csv reader enforces rectangular rows. Parse failures are reported as
// *watchlist.SchemaError.
func Read(r io.Reader) (watchlist.RawTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	var raw watchlist.RawTable
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return watchlist.RawTable{}, &watchlist.SchemaError{
				Reason: fmt.Sprintf("unparseable CSV: %v", err),
				Row:    len(raw.Rows) + 1,
			}
		}
		if raw.Header == nil {
			raw.Header = row
			continue
		}
		raw.Rows = append(raw.Rows, row)
	}

	if raw.Header == nil {
		return watchlist.RawTable{}, &watchlist.SchemaError{Reason: "empty input"}
	}
	return raw, nil
}

// Write serializes a raw table as CSV, header first.
func Write(w io.Writer, raw watchlist.RawTable) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(raw.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range raw.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

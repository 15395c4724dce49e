// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package watchlist

import "fmt"

// SchemaError indicates the raw input was not tabular. It is fatal to Load:
// no partial table is produced. Missing columns are NOT schema errors; they
// are defaulted.
type SchemaError struct {
	// Reason describes what made the input unusable.
	Reason string

	// Row is the 1-based data row that triggered the error, 0 when the
	// problem is not row-specific (e.g. a missing header).
	Row int
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("schema error at row %d: %s", e.Row, e.Reason)
	}
	return "schema error: " + e.Reason
}

// ValidationError indicates a mutation was rejected. The table is left
// unchanged; rejection is idempotent.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

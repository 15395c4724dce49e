// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"errors"
	"net/http"

	"github.com/reelist/reelist/internal/csvio"
	"github.com/reelist/reelist/internal/logging"
	"github.com/reelist/reelist/internal/watchlist"
)

// ExportDataset handles GET /api/v1/export, streaming the current table as
// a CSV download. Rating and watched round-trip exactly; genre and actor
// columns are re-joined from the derived lists.
func (h *Handler) ExportDataset(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	raw := h.table.Export()
	h.mu.Unlock()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="my_movie_ratings.csv"`)

	if err := csvio.Write(w, raw); err != nil {
		// Headers are already out; all we can do is log.
		logging.Error().Err(err).Msg("Failed to stream CSV export")
	}
}

// ImportDataset handles POST /api/v1/import, replacing the session table
// with an uploaded CSV. A schema error aborts the import and keeps the
// previous table.
func (h *Handler) ImportDataset(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	body := http.MaxBytesReader(w, r.Body, h.cfg.API.MaxImportBytes)
	raw, err := csvio.Read(body)
	if err != nil {
		h.writeLoadError(rw, err)
		return
	}

	table, err := watchlist.Load(raw)
	if err != nil {
		h.writeLoadError(rw, err)
		return
	}

	h.ReplaceTable(table)
	logging.Info().Int("records", table.Len()).Msg("Imported dataset")

	rw.Success(map[string]int{"records": table.Len()})
}

// writeLoadError maps load failures onto API responses.
func (h *Handler) writeLoadError(rw *ResponseWriter, err error) {
	var serr *watchlist.SchemaError
	if errors.As(err, &serr) {
		rw.SchemaError(serr.Error())
		return
	}
	rw.BadRequest(err.Error())
}

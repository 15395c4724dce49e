// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/reelist/reelist/internal/metrics"
	"github.com/reelist/reelist/internal/validation"
	"github.com/reelist/reelist/internal/watchlist"
)

// SetRating handles PUT /api/v1/movies/{index}/rating.
//
// A non-null rating must be a half-step value in [0.5, 10.0] and marks the
// movie watched. A null rating clears the score and leaves the watched flag
// untouched. Rejected requests leave the table unchanged.
func (h *Handler) SetRating(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	index, err := recordIndex(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var req SetRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordMutation("rating", false)
		rw.ValidationError(verr.Error(), nil)
		return
	}

	h.mu.Lock()
	err = h.table.SetRating(index, req.Rating)
	var rec watchlist.MovieRecord
	if err == nil {
		rec, _ = h.table.Record(index)
		h.updateTableGauges()
	}
	h.mu.Unlock()

	if err != nil {
		metrics.RecordMutation("rating", false)
		h.writeMutationError(rw, err)
		return
	}

	metrics.RecordMutation("rating", true)
	rw.Success(rec)
}

// SetWatched handles PUT /api/v1/movies/{index}/watched. It never touches
// the rating.
func (h *Handler) SetWatched(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	index, err := recordIndex(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	var req SetWatchedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		rw.BadRequest("invalid JSON body")
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		metrics.RecordMutation("watched", false)
		rw.ValidationError(verr.Error(), nil)
		return
	}

	h.mu.Lock()
	err = h.table.SetWatched(index, *req.Watched)
	var rec watchlist.MovieRecord
	if err == nil {
		rec, _ = h.table.Record(index)
		h.updateTableGauges()
	}
	h.mu.Unlock()

	if err != nil {
		metrics.RecordMutation("watched", false)
		h.writeMutationError(rw, err)
		return
	}

	metrics.RecordMutation("watched", true)
	rw.Success(rec)
}

// writeMutationError maps core mutation errors onto API responses. An
// out-of-range index reads as 404, an invalid value as 400.
func (h *Handler) writeMutationError(rw *ResponseWriter, err error) {
	var verr *watchlist.ValidationError
	if errors.As(err, &verr) {
		if verr.Field == "index" {
			rw.NotFound(verr.Message)
			return
		}
		rw.ValidationError(verr.Error(), nil)
		return
	}
	rw.InternalError(err.Error())
}

// Reelist - Personal Movie Watchlist Tracker
// Copyright 2026 Reelist Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/reelist/reelist

package validation

import (
	"strings"
	"testing"
)

type ratingPayload struct {
	Rating *float64 `validate:"omitempty,halfstep"`
}

type watchedPayload struct {
	Watched *bool `validate:"required"`
}

func TestHalfstepRule(t *testing.T) {
	tests := []struct {
		name    string
		rating  *float64
		wantErr bool
	}{
		{name: "nil passes omitempty", rating: nil},
		{name: "minimum", rating: ptr(0.5)},
		{name: "maximum", rating: ptr(10.0)},
		{name: "mid grid", rating: ptr(7.5)},
		{name: "whole number", rating: ptr(8.0)},
		{name: "zero", rating: ptr(0.0), wantErr: true},
		{name: "off grid", rating: ptr(7.3), wantErr: true},
		{name: "above maximum", rating: ptr(10.5), wantErr: true},
		{name: "negative", rating: ptr(-0.5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&ratingPayload{Rating: tt.rating})
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequiredPointer(t *testing.T) {
	if err := ValidateStruct(&watchedPayload{}); err == nil {
		t.Error("ValidateStruct() = nil for missing required field, want error")
	}

	watched := false
	if err := ValidateStruct(&watchedPayload{Watched: &watched}); err != nil {
		t.Errorf("ValidateStruct() error = %v for present field, want nil", err)
	}
}

func TestErrorMessages(t *testing.T) {
	err := ValidateStruct(&ratingPayload{Rating: ptr(7.3)})
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error")
	}
	if !strings.Contains(err.Error(), "half-step") {
		t.Errorf("Error() = %q, want half-step message", err.Error())
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() has %d entries, want 1", len(errs))
	}
	if errs[0].Tag() != "halfstep" {
		t.Errorf("Tag() = %q, want %q", errs[0].Tag(), "halfstep")
	}
}

func ptr(f float64) *float64 { return &f }

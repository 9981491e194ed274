// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"strings"
	"testing"
)

func TestValidateAttempt(t *testing.T) {
	tests := []struct {
		name        string
		displayName string
		pokes       int
		donuts      int
		totalDonuts int
		wantField   string // "" means valid
	}{
		{"valid", "Alice", 10, 2, 3, ""},
		{"valid at bounds", "Al", 100000, 1000, 1000, ""},
		{"zero donuts ok", "Alice", 0, 0, 1, ""},
		{"name too short", "A", 10, 2, 3, "name"},
		{"empty name", "", 10, 2, 3, "name"},
		{"name too long", strings.Repeat("a", 33), 10, 2, 3, "name"},
		{"negative pokes", "Alice", -1, 2, 3, "pokes"},
		{"pokes over max", "Alice", 100001, 2, 3, "pokes"},
		{"negative donuts", "Alice", 10, -1, 3, "donuts"},
		{"donuts over max", "Alice", 10, 1001, 1000, "donuts"},
		{"zero total donuts", "Alice", 10, 0, 0, "totalDonuts"},
		{"total donuts over max", "Alice", 10, 2, 1001, "totalDonuts"},
		{"donuts exceed total", "Alice", 10, 5, 3, "donuts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateAttempt(tt.displayName, tt.pokes, tt.donuts, tt.totalDonuts)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("Expected valid, got %v", verr)
				}
				return
			}
			if verr == nil {
				t.Fatalf("Expected error on field %q, got nil", tt.wantField)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q (%s)", tt.wantField, verr.Field, verr.Message)
			}
		})
	}
}

func TestValidateAttemptFirstErrorWins(t *testing.T) {
	// Both name and pokes are invalid; name is reported
	verr := ValidateAttempt("A", -1, 5, 3)
	if verr == nil || verr.Field != "name" {
		t.Fatalf("Expected name error first, got %v", verr)
	}

	// Both pokes and donuts are invalid; pokes is reported
	verr = ValidateAttempt("Alice", -1, -1, 3)
	if verr == nil || verr.Field != "pokes" {
		t.Fatalf("Expected pokes error first, got %v", verr)
	}
}

func TestValidateAttemptCrossFieldRunsLast(t *testing.T) {
	// donuts > totalDonuts but donuts is also out of range; the range
	// error wins over the consistency error
	verr := ValidateAttempt("Alice", 10, 1001, 1000)
	if verr == nil || verr.Field != "donuts" {
		t.Fatalf("Expected donuts error, got %v", verr)
	}
	if verr.Message != "Donuts eliminated must be between 0 and 1000." {
		t.Errorf("Expected range message, got %q", verr.Message)
	}

	// Both fields in range individually; the dedicated consistency
	// message is used
	verr = ValidateAttempt("Alice", 10, 5, 3)
	if verr == nil {
		t.Fatal("Expected consistency error, got nil")
	}
	if verr.Message != "Donuts eliminated cannot exceed total donuts." {
		t.Errorf("Expected consistency message, got %q", verr.Message)
	}
}

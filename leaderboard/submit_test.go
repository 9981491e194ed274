// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/danielhkuo/donut-poke/models"
	"github.com/danielhkuo/donut-poke/testutil"
)

func TestSubmitAcceptsAndReturnsLeaders(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	attempt, leaders, err := store.Submit(ctx, models.SubmitAttemptRequest{
		Name: "  Alice  ", Pokes: 10, Donuts: 2, TotalDonuts: 3,
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if attempt.ID == 0 {
		t.Error("Expected an assigned id")
	}
	if attempt.Name != "Alice" {
		t.Errorf("Expected sanitized name 'Alice', got '%s'", attempt.Name)
	}
	if attempt.Slug != "alice" {
		t.Errorf("Expected slug 'alice', got '%s'", attempt.Slug)
	}
	if len(leaders) != 1 {
		t.Fatalf("Expected 1 leader, got %d", len(leaders))
	}
	if leaders[0].Name != "Alice" || leaders[0].Pokes != 10 {
		t.Errorf("Unexpected leader row: %+v", leaders[0])
	}
}

func TestSubmitAggregatesAcrossSubmissions(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	if _, _, err := store.Submit(ctx, models.SubmitAttemptRequest{Name: "José", Pokes: 5, Donuts: 1, TotalDonuts: 3}); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	_, leaders, err := store.Submit(ctx, models.SubmitAttemptRequest{Name: "jose", Pokes: 2, Donuts: 3, TotalDonuts: 3})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	// One leader row with independent per-field maxima and the latest name
	if len(leaders) != 1 {
		t.Fatalf("Expected 1 leader for equivalent names, got %d", len(leaders))
	}
	l := leaders[0]
	if l.Name != "jose" {
		t.Errorf("Expected latest display name 'jose', got '%s'", l.Name)
	}
	if l.Pokes != 5 || l.Donuts != 3 {
		t.Errorf("Expected pokes 5, donuts 3, got pokes %d donuts %d", l.Pokes, l.Donuts)
	}
}

func TestSubmitRejectsBlockedNames(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	blocked := []string{"hitler", "h1tler", "xX_sh1t_Xx"}
	for _, name := range blocked {
		_, _, err := store.Submit(ctx, models.SubmitAttemptRequest{
			Name: name, Pokes: 10, Donuts: 1, TotalDonuts: 3,
		})
		if !errors.Is(err, ErrContentPolicy) {
			t.Errorf("Submit(%q): expected ErrContentPolicy, got %v", name, err)
		}
	}

	// Nothing was persisted
	entries, err := store.RecentLog(ctx, 10)
	if err != nil {
		t.Fatalf("RecentLog failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected empty log after rejections, got %d entries", len(entries))
	}
}

func TestSubmitContentGateRunsBeforeValidation(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	// Blocked name and out-of-range pokes: content policy wins
	_, _, err := store.Submit(ctx, models.SubmitAttemptRequest{
		Name: "h1tler", Pokes: 999999, Donuts: 1, TotalDonuts: 3,
	})
	if !errors.Is(err, ErrContentPolicy) {
		t.Fatalf("Expected ErrContentPolicy before validation, got %v", err)
	}
}

func TestSubmitValidationErrors(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	tests := []struct {
		name      string
		req       models.SubmitAttemptRequest
		wantField string
	}{
		{"short name", models.SubmitAttemptRequest{Name: "A", Pokes: 1, Donuts: 0, TotalDonuts: 1}, "name"},
		{"name empty after sanitization", models.SubmitAttemptRequest{Name: "🍩🍩🍩", Pokes: 1, Donuts: 0, TotalDonuts: 1}, "name"},
		{"pokes out of range", models.SubmitAttemptRequest{Name: "Alice", Pokes: 100001, Donuts: 0, TotalDonuts: 1}, "pokes"},
		{"cross-field inconsistency", models.SubmitAttemptRequest{Name: "Alice", Pokes: 1, Donuts: 5, TotalDonuts: 3}, "donuts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := store.Submit(ctx, tt.req)
			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q (%s)", tt.wantField, verr.Field, verr.Message)
			}
		})
	}

	entries, err := store.RecentLog(ctx, 10)
	if err != nil {
		t.Fatalf("RecentLog failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected no partial effects, got %d entries", len(entries))
	}
}

func TestSubmitCrossFieldErrorIsDedicated(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	// Both counters individually in range; only the consistency rule fails
	_, _, err := store.Submit(ctx, models.SubmitAttemptRequest{
		Name: "Alice", Pokes: 1, Donuts: 5, TotalDonuts: 3,
	})

	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Message != "Donuts eliminated cannot exceed total donuts." {
		t.Errorf("Expected the consistency message, got %q", verr.Message)
	}
}

func TestSubmitStoredRowsStayConsistent(t *testing.T) {
	store := NewStore(testutil.SetupTestDB(t))
	ctx := context.Background()

	reqs := []models.SubmitAttemptRequest{
		{Name: "Alice", Pokes: 10, Donuts: 3, TotalDonuts: 3},
		{Name: "Bob", Pokes: 0, Donuts: 0, TotalDonuts: 1},
		{Name: "Carol", Pokes: 100000, Donuts: 1000, TotalDonuts: 1000},
	}
	for _, req := range reqs {
		if _, _, err := store.Submit(ctx, req); err != nil {
			t.Fatalf("Submit(%q) failed: %v", req.Name, err)
		}
	}

	entries, err := store.RecentLog(ctx, 10)
	if err != nil {
		t.Fatalf("RecentLog failed: %v", err)
	}
	for _, e := range entries {
		if e.Donuts > e.TotalDonuts {
			t.Errorf("Stored row %d violates donuts <= totalDonuts: %+v", e.ID, e)
		}
	}
}

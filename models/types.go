// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Bounds enforced on submitted attempts
const (
	MinNameLength  = 2
	MaxNameLength  = 32
	MaxPokes       = 100000
	MaxDonuts      = 1000
	MaxTotalDonuts = 1000
)

// Request types

type SubmitAttemptRequest struct {
	Name        string `json:"name"`
	Pokes       int    `json:"pokes"`
	Donuts      int    `json:"donuts"`
	TotalDonuts int    `json:"totalDonuts"`
}

// Response types

type LeadersResponse struct {
	Leaders []Leader `json:"leaders"`
}

type LogResponse struct {
	Entries []Attempt `json:"entries"`
}

type SubmitAttemptResponse struct {
	Entry   Attempt  `json:"entry"`
	Leaders []Leader `json:"leaders"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

// Domain types

// Attempt is one immutable score submission. Rows are append-only; the
// id is store-assigned and strictly increasing in submission order.
type Attempt struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"-"` // dedup key, never exposed
	Pokes       int       `json:"pokes"`
	Donuts      int       `json:"donuts"`
	TotalDonuts int       `json:"totalDonuts"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Leader is the derived per-player aggregate shown on the leaderboard.
// Each counter is the maximum seen across all of the player's attempts,
// independently per field; Name comes from the most recent attempt.
type Leader struct {
	Name        string    `json:"name"`
	Pokes       int       `json:"pokes"`
	Donuts      int       `json:"donuts"`
	TotalDonuts int       `json:"totalDonuts"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Error response

type ErrorResponse struct {
	Message string `json:"message"`
}

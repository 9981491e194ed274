// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitAttemptRequest: name, pokes, donuts, totalDonuts

# Response Types

Types for JSON responses:

  - LeadersResponse: leaders
  - LogResponse: entries
  - SubmitAttemptResponse: entry, leaders
  - HealthResponse: status
  - ErrorResponse: message

# Domain Types

Internal data structures:

  - Attempt: one immutable score submission (append-only)
  - Leader: derived per-player aggregate with independent per-field maxima

# Validation

ValidateAttempt enforces field bounds and the donuts/totalDonuts
consistency rule on a sanitized candidate:

	if verr := models.ValidateAttempt(name, pokes, donuts, totalDonuts); verr != nil {
		// verr.Field, verr.Message
	}

Bounds:

	name        2-32 runes after sanitization
	pokes       0-100000
	donuts      0-1000
	totalDonuts 1-1000, and donuts <= totalDonuts

The first failing field wins; the cross-field check runs last.
*/
package models

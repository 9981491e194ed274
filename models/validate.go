// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// ValidationError reports the first failing field of a submission.
// Validation is fail-fast: once a field fails, the rest are not checked.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidateAttempt checks a candidate submission whose name has already
// been sanitized. Field checks run in declaration order; the cross-field
// donuts/totalDonuts consistency check runs only after every field check
// passes, so schema errors are always reported first.
func ValidateAttempt(name string, pokes, donuts, totalDonuts int) *ValidationError {
	// The sanitizer already truncates to MaxNameLength; the upper bound
	// here guards direct callers that skip it.
	if n := len([]rune(name)); n < MinNameLength || n > MaxNameLength {
		return &ValidationError{Field: "name", Message: "Name must be between 2 and 32 characters."}
	}
	if pokes < 0 || pokes > MaxPokes {
		return &ValidationError{Field: "pokes", Message: "Pokes must be between 0 and 100000."}
	}
	if donuts < 0 || donuts > MaxDonuts {
		return &ValidationError{Field: "donuts", Message: "Donuts eliminated must be between 0 and 1000."}
	}
	if totalDonuts < 1 || totalDonuts > MaxTotalDonuts {
		return &ValidationError{Field: "totalDonuts", Message: "Total donuts must be between 1 and 1000."}
	}
	if donuts > totalDonuts {
		return &ValidationError{Field: "donuts", Message: "Donuts eliminated cannot exceed total donuts."}
	}
	return nil
}

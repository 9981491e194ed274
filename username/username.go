// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package username

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength is the display-name cap, measured in runes after sanitization.
const MaxLength = 32

// Basic block list. Extend as needed for production deployments.
var blockedSubstrings = []string{
	"fuck",
	"shit",
	"bitch",
	"cunt",
	"nazi",
	"hitler",
	"kkk",
	"slave",
	"terrorist",
	"whore",
	"rape",
}

// foldAccents decomposes and drops combining marks, so "é" becomes "e".
var foldAccents = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))

func isAllowed(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) ||
		r == '\'' || r == '.' || r == '_' || r == '-'
}

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '\'' || r == '.' || r == '_' || r == '-'
}

// Sanitize canonicalizes a raw display name: compatibility-normalize,
// strip everything but letters, digits, whitespace and '._-, collapse
// whitespace runs, trim, and cap at MaxLength runes. Casing and accents
// are preserved. Empty input yields empty output.
func Sanitize(raw string) string {
	if raw == "" {
		return ""
	}

	normalized := norm.NFKC.String(raw)

	var b strings.Builder
	for _, r := range normalized {
		if isAllowed(r) {
			b.WriteRune(r)
		}
	}

	collapsed := strings.Join(strings.Fields(b.String()), " ")

	// Truncate after collapsing, so the cap applies to the final form
	kept := []rune(collapsed)
	if len(kept) > MaxLength {
		kept = kept[:MaxLength]
	}
	return string(kept)
}

// fold builds the accent-insensitive, case-insensitive, separator-free
// form shared by Slugify and the block list comparison key.
func fold(value string) string {
	folded, _, err := transform.String(foldAccents, value)
	if err != nil {
		// NFKD never fails on valid UTF-8; fall back to the input
		folded = value
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	for _, r := range folded {
		if !isSeparator(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Slugify derives the deduplication key for a sanitized display name.
// "José", "jose" and "j.o.s.e" all share the slug "jose". The result may
// be empty when the name consisted only of separators; every such name
// collapses into the same degenerate key.
func Slugify(sanitized string) string {
	return fold(sanitized)
}

// leetDigits maps digits to the letters they commonly stand in for.
var leetDigits = strings.NewReplacer(
	"0", "o",
	"1", "i",
	"3", "e",
	"4", "a",
	"5", "s",
	"7", "t",
)

// IsBlocked reports whether a sanitized display name contains a blocked
// term. Matching runs on the accent-folded, case-folded, separator-free
// form, checked two ways against the digit tricks: with decimal digits
// dropped (catches insertions like "hit1ler") and with lookalike digits
// mapped to letters (catches substitutions like "h1tler"). Either key
// matching blocks the name. Matching is plain substring containment;
// innocent names that happen to contain a blocked term (such as
// "Grape") are rejected too.
func IsBlocked(sanitized string) bool {
	if sanitized == "" {
		return false
	}

	folded := fold(sanitized)

	stripped := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, folded)
	mapped := leetDigits.Replace(folded)

	for _, needle := range blockedSubstrings {
		if strings.Contains(stripped, needle) || strings.Contains(mapped, needle) {
			return true
		}
	}
	return false
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package username normalizes player display names and screens them
against a block list.

# Sanitization

Sanitize produces the stored display form:

	name := username.Sanitize(raw)

Steps: NFKC normalization, strip everything outside letters, digits,
whitespace and '._-, collapse whitespace, trim, truncate to 32 runes.
Casing and accents survive sanitization - "José" stays "José".

# Slugs

Slugify derives the key used to group attempts by player:

	slug := username.Slugify(name)

The slug is accent-folded (NFKD with combining marks removed),
lower-cased, and stripped of whitespace and '._-. It is intentionally
lossy: "José" and "jose" share a slug and therefore a leaderboard row.

# Block List

IsBlocked checks the name against a fixed list of offensive substrings:

	if username.IsBlocked(name) {
		// reject with a generic message
	}

Digits get special handling: the folded form is checked once with
digits stripped (defeating insertions like "hit1ler") and once with
lookalike digits mapped to letters (defeating substitutions like
"h1tler"). Matching is substring containment, which over-rejects by
design ("Grape" contains "rape"); callers must never reveal which term
matched.
*/
package username

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package leaderboard implements the scoring store: the append-only
attempt log, the ranked leaderboard view derived from it, and the
submission pipeline that feeds it.

# Store

Store wraps an injected *sql.DB; lifecycle belongs to the host:

	store := leaderboard.NewStore(conn)

# Attempt Log

Append persists one attempt with a store-assigned id and timestamp:

	attempt, err := store.Append(ctx, candidate)

Ids increase strictly with submission order and are never reused; rows
are never mutated or deleted. RecentLog reads the tail, most recent
first (created_at desc, id desc):

	entries, err := store.RecentLog(ctx, 100)

# Leaderboard View

TopLeaders groups attempts by slug and computes one Leader per player:

	leaders, err := store.TopLeaders(ctx, 25)

Each counter is the group's maximum taken independently per field - a
player's best pokes and best donuts may come from different attempts.
This cumulative personal-best semantics is intentional; do not replace
it with best-single-attempt. The display name is the most recently
submitted one for the slug. Ordering is pokes desc, donuts desc,
lastUpdated asc (earlier achiever wins full ties).

# Submission Pipeline

Submit orchestrates sanitize -> block list -> validate -> append ->
recompute:

	attempt, leaders, err := store.Submit(ctx, req)

Rejections are typed: ErrContentPolicy for blocked names (checked
first), *models.ValidationError for bounds and the donuts <=
totalDonuts rule. Any other error is a storage fault; nothing is
retried and nothing is partially applied.
*/
package leaderboard

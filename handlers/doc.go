// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers implements the HTTP request handlers.

# Leaderboard Handler

LeaderboardHandler serves the three leaderboard endpoints:

	h := handlers.NewLeaderboardHandler(store, cfg)

  - GetLeaders: GET /leaderboard - top 25 ranked standings
  - GetLog: GET /leaderboard/log - last 100 raw attempts
  - SubmitAttempt: POST /leaderboard - record a new attempt

# Submission Flow

SubmitAttempt parses the body (capped at 1 MB), hands it to
leaderboard.Store.Submit, and maps the outcome:

  - accepted: 201 with the stored entry and refreshed leaders
  - blocked name: 400 "Choose a different username." (always generic)
  - validation failure: 400 with the first failing field's message
  - storage fault: 500 "Unable to record leaderboard entry right now."

The handler never applies a partial effect; all domain decisions live in
the leaderboard package.
*/
package handlers

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the donut-poke API.

# Route Registration

NewRouter creates a configured handler with all endpoints:

	handler := router.NewRouter(store, cfg)

# Endpoints

Health:

	GET /health

Leaderboard (public):

	GET  /leaderboard     - Top ranked standings (limit 25)
	GET  /leaderboard/log - Recent submission log (limit 100)
	POST /leaderboard     - Submit an attempt

# Handler Initialization

The router creates handler instances with dependency injection:

	leaderboardHandler := handlers.NewLeaderboardHandler(store, cfg)

The returned handler is wrapped in CORS middleware since the game
frontend is served from a different origin.
*/
package router

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/donut-poke/cliparse"
	"github.com/danielhkuo/donut-poke/handlers"
	"github.com/danielhkuo/donut-poke/leaderboard"
	"github.com/danielhkuo/donut-poke/middleware"
	"github.com/danielhkuo/donut-poke/models"
)

func NewRouter(store *leaderboard.Store, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	leaderboardHandler := handlers.NewLeaderboardHandler(store, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{Status: "ok"})
	})

	// Leaderboard
	mux.HandleFunc("GET /leaderboard", middleware.WithLogging(leaderboardHandler.GetLeaders))
	mux.HandleFunc("GET /leaderboard/log", middleware.WithLogging(leaderboardHandler.GetLog))
	mux.HandleFunc("POST /leaderboard", middleware.WithLogging(leaderboardHandler.SubmitAttempt))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("donut-poke API v1"))
	})

	// The game frontend is served from a different origin
	return middleware.CORS(mux)
}

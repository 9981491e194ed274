// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/donut-poke/cliparse"
	"github.com/danielhkuo/donut-poke/leaderboard"
	"github.com/danielhkuo/donut-poke/middleware"
	"github.com/danielhkuo/donut-poke/models"
)

// maxBodyBytes caps submission bodies at 1 MB
const maxBodyBytes = 1 << 20

type LeaderboardHandler struct {
	store *leaderboard.Store
	cfg   cliparse.Config
}

func NewLeaderboardHandler(store *leaderboard.Store, cfg cliparse.Config) *LeaderboardHandler {
	return &LeaderboardHandler{store: store, cfg: cfg}
}

// GetLeaders handles GET /leaderboard
func (h *LeaderboardHandler) GetLeaders(w http.ResponseWriter, r *http.Request) {
	leaders, err := h.store.TopLeaders(r.Context(), leaderboard.DefaultLeaderLimit)
	if err != nil {
		slog.Error("failed to query leaders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to load the leaderboard right now.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LeadersResponse{Leaders: leaders})
}

// GetLog handles GET /leaderboard/log
func (h *LeaderboardHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.RecentLog(r.Context(), leaderboard.DefaultLogLimit)
	if err != nil {
		slog.Error("failed to query log", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to load the leaderboard right now.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LogResponse{Entries: entries})
}

// SubmitAttempt handles POST /leaderboard
func (h *LeaderboardHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req models.SubmitAttemptRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, leaders, err := h.store.Submit(r.Context(), req)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.Is(err, leaderboard.ErrContentPolicy):
			// Generic on purpose; never reveal what matched
			middleware.ErrorResponse(w, http.StatusBadRequest, "Choose a different username.")
		case errors.As(err, &verr):
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
		default:
			slog.Error("failed to record leaderboard entry", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to record leaderboard entry right now.")
		}
		return
	}

	slog.Info("attempt recorded", "id", entry.ID, "name", entry.Name, "pokes", entry.Pokes)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitAttemptResponse{
		Entry:   entry,
		Leaders: leaders,
	})
}

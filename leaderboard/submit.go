// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"context"

	"github.com/danielhkuo/donut-poke/models"
	"github.com/danielhkuo/donut-poke/username"
)

// Submit runs the full submission pipeline: sanitize the name, screen
// it against the block list, validate the candidate, append it, and
// return the refreshed standings. Only the append mutates state, so a
// rejection at any earlier stage leaves no partial effect.
//
// Errors: ErrContentPolicy for blocked names, *models.ValidationError
// for schema/consistency failures, anything else is a storage fault.
func (s *Store) Submit(ctx context.Context, req models.SubmitAttemptRequest) (models.Attempt, []models.Leader, error) {
	name := username.Sanitize(req.Name)

	// Gate runs before schema validation; an empty or too-short name on
	// a blocked submission still reports the content rejection
	if username.IsBlocked(name) {
		return models.Attempt{}, nil, ErrContentPolicy
	}

	if verr := models.ValidateAttempt(name, req.Pokes, req.Donuts, req.TotalDonuts); verr != nil {
		return models.Attempt{}, nil, verr
	}

	attempt, err := s.Append(ctx, models.Attempt{
		Name:        name,
		Slug:        username.Slugify(name),
		Pokes:       req.Pokes,
		Donuts:      req.Donuts,
		TotalDonuts: req.TotalDonuts,
	})
	if err != nil {
		return models.Attempt{}, nil, err
	}

	leaders, err := s.TopLeaders(ctx, DefaultLeaderLimit)
	if err != nil {
		return models.Attempt{}, nil, err
	}

	return attempt, leaders, nil
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package leaderboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/donut-poke/db"
	"github.com/danielhkuo/donut-poke/models"
)

// Default result limits for the read endpoints
const (
	DefaultLeaderLimit = 25
	DefaultLogLimit    = 100
)

// ErrContentPolicy marks a display name rejected by the block list.
// Callers must surface it with a generic message that never reveals
// which term matched.
var ErrContentPolicy = errors.New("name rejected by content policy")

// Store is the scoring store: the append-only attempt log plus the
// leaderboard view derived from it. The *sql.DB handle is owned by the
// hosting process; Store never opens or closes it.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Append persists one validated attempt, assigning its id and
// timestamp. The insert is a single statement, so readers observe
// either the full row or nothing. Failure here is a storage fault, not
// a domain rejection.
func (s *Store) Append(ctx context.Context, attempt models.Attempt) (models.Attempt, error) {
	now := time.Now().UTC()
	stamp := now.Format(db.TimeLayout)

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO leaderboard_entries
			(name, name_slug, pokes, donuts, total_donuts, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`, attempt.Name, attempt.Slug, attempt.Pokes, attempt.Donuts, attempt.TotalDonuts, stamp).Scan(&attempt.ID)

	if err != nil {
		return models.Attempt{}, fmt.Errorf("failed to append attempt: %w", err)
	}

	attempt.CreatedAt = now
	return attempt, nil
}

// RecentLog returns attempts most recent first, ties broken by id
// descending. limit <= 0 falls back to DefaultLogLimit.
func (s *Store) RecentLog(ctx context.Context, limit int) ([]models.Attempt, error) {
	if limit <= 0 {
		limit = DefaultLogLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, name_slug, pokes, donuts, total_donuts, created_at
		FROM leaderboard_entries
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query log: %w", err)
	}
	defer rows.Close()

	entries := []models.Attempt{}
	for rows.Next() {
		var a models.Attempt
		var createdAt string
		if err := rows.Scan(&a.ID, &a.Name, &a.Slug, &a.Pokes, &a.Donuts, &a.TotalDonuts, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		if a.CreatedAt, err = time.Parse(db.TimeLayout, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse attempt timestamp: %w", err)
		}
		entries = append(entries, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}

	return entries, nil
}

// TopLeaders computes the ranked standings, one row per slug. Each
// counter is the maximum across the group's attempts independently -
// two different attempts may each contribute one maximum. The display
// name comes from the group's most recent attempt. Ordering: pokes
// desc, donuts desc, then lastUpdated asc so whoever reached the tied
// maxima first ranks higher. Recomputed fresh on every call.
func (s *Store) TopLeaders(ctx context.Context, limit int) ([]models.Leader, error) {
	if limit <= 0 {
		limit = DefaultLeaderLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT
			(SELECT latest.name
			 FROM leaderboard_entries latest
			 WHERE latest.name_slug = e.name_slug
			 ORDER BY latest.created_at DESC, latest.id DESC
			 LIMIT 1) AS name,
			MAX(e.pokes) AS pokes,
			MAX(e.donuts) AS donuts,
			MAX(e.total_donuts) AS total_donuts,
			MAX(e.updated_at) AS last_updated
		FROM leaderboard_entries e
		GROUP BY e.name_slug
		ORDER BY pokes DESC, donuts DESC, last_updated ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaders: %w", err)
	}
	defer rows.Close()

	leaders := []models.Leader{}
	for rows.Next() {
		var l models.Leader
		var lastUpdated string
		if err := rows.Scan(&l.Name, &l.Pokes, &l.Donuts, &l.TotalDonuts, &lastUpdated); err != nil {
			return nil, fmt.Errorf("failed to scan leader: %w", err)
		}
		if l.LastUpdated, err = time.Parse(db.TimeLayout, lastUpdated); err != nil {
			return nil, fmt.Errorf("failed to parse leader timestamp: %w", err)
		}
		leaders = append(leaders, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaders: %w", err)
	}

	return leaders, nil
}

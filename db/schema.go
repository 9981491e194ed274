// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	schema := sqliteSchema
	if databaseType == TypePostgres {
		schema = postgresSchema
	}
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The CHECK constraints duplicate the validator's bounds on purpose:
// the storage layer refuses inconsistent rows even from callers that
// bypass validation.

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS leaderboard_entries (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    name_slug TEXT NOT NULL,
    pokes INTEGER NOT NULL CHECK (pokes >= 0),
    donuts INTEGER NOT NULL CHECK (donuts >= 0),
    total_donuts INTEGER NOT NULL CHECK (total_donuts > 0),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_name_slug ON leaderboard_entries(name_slug);
CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_created_at ON leaderboard_entries(created_at);
`

const postgresSchema = `
CREATE TABLE IF NOT EXISTS leaderboard_entries (
    id BIGSERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    name_slug TEXT NOT NULL,
    pokes INTEGER NOT NULL CHECK (pokes >= 0),
    donuts INTEGER NOT NULL CHECK (donuts >= 0),
    total_donuts INTEGER NOT NULL CHECK (total_donuts > 0),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_name_slug ON leaderboard_entries(name_slug);
CREATE INDEX IF NOT EXISTS idx_leaderboard_entries_created_at ON leaderboard_entries(created_at);
`

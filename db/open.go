// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// TimeLayout is the storage encoding for timestamp columns. Fixed width
// and always UTC, so lexicographic order on the TEXT column equals
// chronological order under both drivers.
const TimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Open connects to the configured database and verifies the connection
// with a ping. For SQLite, databaseURL is a file path; the parent
// directory is created if missing, WAL journaling is enabled, and the
// pool is capped at a single connection so concurrent appends serialize
// inside the driver instead of surfacing busy errors. For Postgres,
// databaseURL is a standard connection string.
func Open(databaseType, databaseURL string) (*sql.DB, error) {
	switch databaseType {
	case TypePostgres:
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to ping postgres database: %w", err)
		}
		return conn, nil

	case TypeSQLite:
		path := filepath.Clean(databaseURL)
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data directory: %w", err)
			}
		}
		dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// Single writer; id assignment stays strictly increasing
		conn.SetMaxOpenConns(1)
		if err := conn.Ping(); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
		}
		return conn, nil

	default:
		return nil, fmt.Errorf("unsupported database type %q", databaseType)
	}
}

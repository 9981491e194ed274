// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Opening a Connection

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

Supported types:

  - sqlite (default): databaseURL is a file path; WAL mode, a 5s busy
    timeout, and a single-connection pool are applied. The parent
    directory is created if needed.
  - postgres: databaseURL is a lib/pq connection string.

# Schema Creation

CreateSchema initializes the attempts table:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

One durable table holds the append-only attempt log:

  - leaderboard_entries: id, name, name_slug, pokes, donuts,
    total_donuts, created_at, updated_at

Rows are never updated or deleted in normal operation. CHECK constraints
on the counters back up the validator at the storage boundary.

# Indexes

  - leaderboard_entries.name_slug (leader grouping)
  - leaderboard_entries.created_at (recent log ordering)
*/
package db

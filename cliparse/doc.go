// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 8787)
  - DatabaseURL: SQLite file path or Postgres connection string
    (default: data/leaderboard.db)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)

# CLI Flags

	-p  Server port
	-d  Database URL
	-t  Database type

# Environment Variables

Flags fall back to environment variables:

	PORT          → -p
	DATABASE_URL  → -d
	DATABASE_TYPE → -t

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - PORT is not a number
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_URL is missing in postgres mode

SQLite mode defaults the URL to data/leaderboard.db.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	handler := router.NewRouter(store, cfg)
*/
package cliparse

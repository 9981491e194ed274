// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the donut-poke leaderboard
server.

donut-poke persists player score attempts (pokes and donuts eliminated)
in an append-only log and serves ranked standings aggregated per player.

# Starting the Server

The server runs on SQLite out of the box:

	go run main.go

Or against Postgres:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 8787 -d data/leaderboard.db -t sqlite

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 8787)
  - DATABASE_URL (-d): SQLite path or Postgres connection string
    (default: data/leaderboard.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - leaderboard: attempt log, ranked view, submission pipeline
  - username: display-name sanitization, slugs, block list
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types and validation
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/donut-poke/cliparse"
	"github.com/danielhkuo/donut-poke/db"
)

// SetupTestDB opens a fresh file-backed SQLite database under the
// test's temp directory and applies the schema.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "leaderboard.db")
	conn, err := db.Open(db.TypeSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		conn.Close()
	})

	if err := db.CreateSchema(conn, db.TypeSQLite); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8787,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  "test.db",
	}
}

// InsertAttempt writes one row directly, bypassing the submission
// pipeline, so tests can control slugs and timestamps exactly.
func InsertAttempt(t *testing.T, conn *sql.DB, name, slug string, pokes, donuts, totalDonuts int, at time.Time) int64 {
	t.Helper()

	stamp := at.UTC().Format(db.TimeLayout)
	var id int64
	err := conn.QueryRow(`
		INSERT INTO leaderboard_entries
			(name, name_slug, pokes, donuts, total_donuts, created_at, updated_at)
		VALUES
			($1, $2, $3, $4, $5, $6, $6)
		RETURNING id
	`, name, slug, pokes, donuts, totalDonuts, stamp).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to insert test attempt: %v", err)
	}

	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	jsonBody, _ := json.Marshal(body)
	req := httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

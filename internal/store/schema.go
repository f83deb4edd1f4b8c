package store

import (
	"database/sql"
	"fmt"
	"time"
)

// timeLayout is fixed-width so TEXT timestamps sort chronologically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS pathways (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		target_role TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		body        TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS adaptations (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		pathway_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		body       TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS adaptations_pathway ON adaptations (pathway_id, id)`,
	`CREATE TABLE IF NOT EXISTS provider_calls (
		sequence   INTEGER PRIMARY KEY,
		timestamp  TEXT NOT NULL,
		provider   TEXT NOT NULL,
		term       TEXT NOT NULL,
		results    INTEGER NOT NULL,
		latency_ms INTEGER NOT NULL,
		success    INTEGER NOT NULL,
		error      TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS llm_requests (
		sequence      INTEGER PRIMARY KEY,
		timestamp     TEXT NOT NULL,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		error         TEXT NOT NULL DEFAULT '',
		request_body  TEXT NOT NULL DEFAULT '',
		response_body TEXT NOT NULL DEFAULT ''
	)`,
}

// migrate creates any missing tables. Statements are idempotent.
func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

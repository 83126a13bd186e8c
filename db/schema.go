// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"time"
)

// Driver names registered by github.com/lib/pq and modernc.org/sqlite
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, databaseType string) error {
	var ddl string
	switch databaseType {
	case DriverPostgres:
		ddl = postgresSchema
	case DriverSQLite:
		ddl = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", databaseType)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Timestamp scans created_at from either driver.
// lib/pq yields time.Time; SQLite may yield text depending on the column
// metadata available for RETURNING results.
type Timestamp struct {
	Time time.Time
}

var sqliteTimeFormats = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
}

// Scan implements sql.Scanner
func (ts *Timestamp) Scan(value interface{}) error {
	switch v := value.(type) {
	case time.Time:
		ts.Time = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		return fmt.Errorf("timestamp is NULL")
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", value)
	}
}

func (ts *Timestamp) parse(s string) error {
	for _, layout := range sqliteTimeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

const postgresSchema = `
-- Round scores (append only)
CREATE TABLE IF NOT EXISTS round_scores (
    id BIGSERIAL PRIMARY KEY,
    user_id TEXT NOT NULL,
    session_id TEXT,
    round_index INTEGER NOT NULL,
    score DOUBLE PRECISION,
    confidence DOUBLE PRECISION,
    passed BOOLEAN,
    meta JSONB,
    recognized_text TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

ALTER TABLE round_scores ADD COLUMN IF NOT EXISTS recognized_text TEXT;

CREATE INDEX IF NOT EXISTS idx_round_scores_user_id ON round_scores(user_id);
CREATE INDEX IF NOT EXISTS idx_round_scores_session_id ON round_scores(session_id);
`

const sqliteSchema = `
-- Round scores (append only)
CREATE TABLE IF NOT EXISTS round_scores (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT NOT NULL,
    session_id TEXT,
    round_index INTEGER NOT NULL,
    score REAL,
    confidence REAL,
    passed BOOLEAN,
    meta TEXT,
    recognized_text TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT (strftime('%Y-%m-%d %H:%M:%f', 'now'))
);

CREATE INDEX IF NOT EXISTS idx_round_scores_user_id ON round_scores(user_id);
CREATE INDEX IF NOT EXISTS idx_round_scores_session_id ON round_scores(session_id);
`

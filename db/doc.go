// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables for the configured driver:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
Both postgres (github.com/lib/pq) and sqlite (modernc.org/sqlite) are
supported; the handlers use $N placeholders, which both accept.

# Tables

  - round_scores: one row per submitted round, insert only

id and created_at are generated by the database. meta is JSONB on postgres
and TEXT on sqlite. Nothing in the service updates or deletes rows.

# Indexes

  - round_scores.user_id
  - round_scores.session_id

# Timestamps

Timestamp is a sql.Scanner that accepts time.Time or the text forms sqlite
produces, so RETURNING created_at scans the same way on both drivers.
*/
package db

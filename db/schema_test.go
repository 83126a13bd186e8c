// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func TestCreateSchema_SQLite(t *testing.T) {
	conn, err := sql.Open(DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open sqlite: %v", err)
	}
	defer conn.Close()
	conn.SetMaxOpenConns(1)

	if err := CreateSchema(conn, DriverSQLite); err != nil {
		t.Fatalf("CreateSchema() error = %v", err)
	}
	// Second call must be a no-op
	if err := CreateSchema(conn, DriverSQLite); err != nil {
		t.Fatalf("CreateSchema() second call error = %v", err)
	}

	var id int64
	var createdAt Timestamp
	err = conn.QueryRow(`
		INSERT INTO round_scores (user_id, round_index)
		VALUES ($1, $2)
		RETURNING id, created_at
	`, "u1", 0).Scan(&id, &createdAt)
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	if id != 1 {
		t.Errorf("Expected first id 1, got %d", id)
	}
	if time.Since(createdAt.Time) > time.Minute || createdAt.Time.IsZero() {
		t.Errorf("Expected created_at close to now, got %v", createdAt.Time)
	}
}

func TestCreateSchema_UnknownType(t *testing.T) {
	if err := CreateSchema(nil, "mysql"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestTimestampScan(t *testing.T) {
	want := time.Date(2026, 10, 14, 9, 30, 15, 250_000_000, time.UTC)

	tests := []struct {
		name    string
		value   interface{}
		want    time.Time
		wantErr bool
	}{
		{"time value", want, want, false},
		{"sqlite text with millis", "2026-10-14 09:30:15.250", want, false},
		{"sqlite bytes", []byte("2026-10-14 09:30:15.250"), want, false},
		{"sqlite text no fraction", "2026-10-14 09:30:15", want.Truncate(time.Second), false},
		{"rfc3339", "2026-10-14T09:30:15.25Z", want, false},
		{"null", nil, time.Time{}, true},
		{"garbage", "yesterday", time.Time{}, true},
		{"wrong type", 42, time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := ts.Scan(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Scan() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !ts.Time.Equal(tt.want) {
				t.Errorf("Scan() = %v, want %v", ts.Time, tt.want)
			}
		})
	}
}

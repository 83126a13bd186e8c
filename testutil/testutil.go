// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/danielhkuo/round-score/cliparse"
	"github.com/danielhkuo/round-score/db"
	"github.com/danielhkuo/round-score/pronunciation"
)

// TestAPIKey is the shared secret used by GetTestConfig
const TestAPIKey = "test-api-key"

// SetupTestDB creates a fresh in-memory database with the full schema.
// The pool is pinned to one connection so every query sees the same database.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open(db.DriverSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn, db.DriverSQLite); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              3000,
		DatabaseURL:       ":memory:",
		DatabaseType:      cliparse.DatabaseSQLite,
		APIKey:            TestAPIKey,
		AzureSpeechKey:    "test-azure-key",
		AzureSpeechRegion: "japaneast",
		DefaultLanguage:   cliparse.DefaultLanguage,
	}
}

// CountRoundScores returns the number of rows in round_scores
func CountRoundScores(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(`SELECT COUNT(*) FROM round_scores`).Scan(&n); err != nil {
		t.Fatalf("Failed to count round scores: %v", err)
	}
	return n
}

// FakeAssessor records calls and returns a canned result or error
type FakeAssessor struct {
	Result pronunciation.Result
	Err    error

	mu       sync.Mutex
	requests []pronunciation.Request
}

func (f *FakeAssessor) Assess(ctx context.Context, req pronunciation.Request) (pronunciation.Result, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.Err != nil {
		return pronunciation.Result{}, f.Err
	}
	return f.Result, nil
}

// Requests returns a copy of every request seen so far
func (f *FakeAssessor) Requests() []pronunciation.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]pronunciation.Request(nil), f.requests...)
}

// SilentWAV builds a 16 kHz, 16-bit mono PCM wave file of n zero samples
func SilentWAV(samples int) []byte {
	const (
		sampleRate = 16000
		bits       = 16
		channels   = 1
	)
	dataLen := samples * bits / 8 * channels

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataLen))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(channels))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(channels*bits/8))
	binary.Write(&buf, binary.LittleEndian, uint16(bits))

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, uint32(dataLen))
	buf.Write(make([]byte, dataLen))

	return buf.Bytes()
}

// SilentWAVBase64 is SilentWAV encoded the way clients send it
func SilentWAVBase64(samples int) string {
	return base64.StdEncoding.EncodeToString(SilentWAV(samples))
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req = httptest.NewRequest(method, path, nil)
	case string:
		req = httptest.NewRequest(method, path, bytes.NewReader([]byte(b)))
		req.Header.Set("Content-Type", "application/json")
	default:
		jsonBody, _ := json.Marshal(b)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeaders returns headers carrying the test API key
func AuthHeaders() map[string]string {
	return map[string]string{"x-api-key": TestAPIKey}
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

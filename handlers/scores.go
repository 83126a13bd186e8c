// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/round-score/db"
	"github.com/danielhkuo/round-score/middleware"
	"github.com/danielhkuo/round-score/models"
)

// MaxScoreBodyBytes caps POST /round-score bodies
const MaxScoreBodyBytes = 200_000

var (
	ErrUserIDRequired = errors.New("userId is required")
	ErrRoundIndexInt  = errors.New("roundIndex must be an integer")
)

type ScoreHandler struct {
	db *sql.DB
}

func NewScoreHandler(db *sql.DB) *ScoreHandler {
	return &ScoreHandler{db: db}
}

// SubmitRoundScore handles POST /round-score
// Validates the report and inserts exactly one row into round_scores
func (h *ScoreHandler) SubmitRoundScore(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitRoundScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

	report, err := ValidateRoundScore(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var meta interface{}
	if report.Meta != nil {
		meta = string(report.Meta)
	}

	var id int64
	var createdAt db.Timestamp
	err = h.db.QueryRowContext(r.Context(), `
		INSERT INTO round_scores (user_id, session_id, round_index, score, confidence, passed, meta, recognized_text)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`, report.UserID, report.SessionID, report.RoundIndex, report.Score, report.Confidence,
		report.Passed, meta, report.RecognizedText).Scan(&id, &createdAt)
	if err != nil {
		slog.Error("insert failed", "error", err, "user_id", report.UserID, "round_index", report.RoundIndex)
		middleware.FailureResponse(w, http.StatusInternalServerError, err)
		return
	}

	slog.Info("round score recorded", "id", id, "user_id", report.UserID, "round_index", report.RoundIndex)

	middleware.JSONResponse(w, http.StatusOK, models.SubmitRoundScoreResponse{
		OK:        true,
		ID:        id,
		CreatedAt: createdAt.Time,
	})
}

// ValidateRoundScore checks userId, then roundIndex, and converts the
// request to a RoundScore. Other fields are not validated; the store
// decides whether it accepts them.
func ValidateRoundScore(req models.SubmitRoundScoreRequest) (models.RoundScore, error) {
	var report models.RoundScore

	var userID string
	if isAbsent(req.UserID) || json.Unmarshal(req.UserID, &userID) != nil || strings.TrimSpace(userID) == "" {
		return report, ErrUserIDRequired
	}
	report.UserID = userID

	roundIndex, err := parseInteger(req.RoundIndex)
	if err != nil {
		return report, err
	}
	report.RoundIndex = roundIndex

	report.SessionID = driverValue(req.SessionID)
	report.Score = driverValue(req.Score)
	report.Confidence = driverValue(req.Confidence)
	report.Passed = driverValue(req.Passed)
	report.RecognizedText = driverValue(req.RecognizedText)
	if !isAbsent(req.Meta) {
		report.Meta = req.Meta
	}

	return report, nil
}

// isAbsent reports a missing field or an explicit null
func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// parseInteger accepts any JSON number with an integral value, so 2, 2.0
// and 3e1 are rounds 2 and 30. Strings, fractions and null are rejected.
// The result is decimal integer text; range is left to the column type.
func parseInteger(raw json.RawMessage) (string, error) {
	if isAbsent(raw) {
		return "", ErrRoundIndexInt
	}
	num, ok := asNumber(raw)
	if !ok {
		return "", ErrRoundIndexInt
	}

	if n, err := strconv.ParseInt(string(num), 10, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}

	f, err := strconv.ParseFloat(string(num), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return "", ErrRoundIndexInt
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func asNumber(raw json.RawMessage) (json.Number, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	num, ok := v.(json.Number)
	return num, ok
}

// driverValue passes an optional field to the store as sent: nil for
// absent or null, the unquoted text of a JSON string, and the literal
// JSON text of anything else.
func driverValue(raw json.RawMessage) *string {
	if isAbsent(raw) {
		return nil
	}
	text := string(bytes.TrimSpace(raw))
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(text), &s); err == nil {
			return &s
		}
	}
	return &text
}

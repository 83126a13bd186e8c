package models

import (
	"encoding/json"
	"time"
)

// Request types

// SubmitRoundScoreRequest keeps every field raw so the handler can tell a
// missing field from a null one and forward values as sent.
type SubmitRoundScoreRequest struct {
	UserID         json.RawMessage `json:"userId"`
	SessionID      json.RawMessage `json:"sessionId"`
	RoundIndex     json.RawMessage `json:"roundIndex"`
	Score          json.RawMessage `json:"score"`
	Confidence     json.RawMessage `json:"confidence"`
	Passed         json.RawMessage `json:"passed"`
	Meta           json.RawMessage `json:"meta"`
	RecognizedText json.RawMessage `json:"recognizedText"`
}

type PronunciationRequest struct {
	ExpectedText   string `json:"expectedText"`
	AudioWavBase64 string `json:"audioWavBase64"`
	Language       string `json:"language"`
}

// Response types

type SubmitRoundScoreResponse struct {
	OK        bool      `json:"ok"`
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type PronunciationResponse struct {
	OK                 bool    `json:"ok"`
	RecognizedText     string  `json:"recognizedText"`
	AccuracyScore      float64 `json:"accuracyScore"`
	FluencyScore       float64 `json:"fluencyScore"`
	CompletenessScore  float64 `json:"completenessScore"`
	PronunciationScore float64 `json:"pronunciationScore"`
}

type HealthResponse struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

// Domain types

// RoundScore is one accepted round outcome, ready to insert.
// Optional values hold the text the client sent and are converted by the
// store; nil pointers and a nil Meta are stored as NULL.
type RoundScore struct {
	UserID         string
	SessionID      *string
	RoundIndex     string // decimal integer text
	Score          *string
	Confidence     *string
	Passed         *string
	Meta           json.RawMessage
	RecognizedText *string
}

// Error responses

// ErrorResponse is returned for auth and validation failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// FailureResponse is returned when a dependency (store or provider) fails
type FailureResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

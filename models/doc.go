// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SubmitRoundScoreRequest: userId, sessionId, roundIndex, score,
    confidence, passed, meta, recognizedText (all raw JSON)
  - PronunciationRequest: expectedText, audioWavBase64, language

# Response Types

  - SubmitRoundScoreResponse: ok, id, created_at
  - PronunciationResponse: ok, recognizedText and the four sub-scores
  - HealthResponse: ok, db
  - ErrorResponse: error (401 and 400)
  - FailureResponse: ok=false, error (500)

# Domain Types

  - RoundScore: a validated score report, one row in round_scores
*/
package models

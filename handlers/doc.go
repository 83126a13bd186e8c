// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the round-score API.

# Handler Types

  - ScoreHandler: validates and stores round score reports
  - PronunciationHandler: relays pronunciation assessment to a provider
  - HealthHandler: store liveness probe

Handlers are created via constructor functions:

	scoreHandler := handlers.NewScoreHandler(db)
	pronHandler := handlers.NewPronunciationHandler(assessor, cfg)
	healthHandler := handlers.NewHealthHandler(db)

# Score Submission

	POST /round-score → SubmitRoundScore

userId must be a non-blank string and roundIndex an integral number;
userId is checked first. Other fields are not validated: absent or null
becomes NULL, anything else is handed to the driver as sent and the column
type decides (a rejected value is a 500). One INSERT ...
RETURNING id, created_at per request; identical bodies produce separate
rows. Store errors are returned as {"ok":false,"error":...} with 500.

# Pronunciation Assessment

	POST /azure-pron-score → Assess

expectedText and audioWavBase64 are checked before anything else, then the
audio is decoded and parsed as PCM WAV, then a single Assess call is made.
language defaults to the configured locale (ja-JP). Results are relayed
as-is and never stored.

# Health

	GET /health → Health

Runs SELECT 1 and reports {"ok":true,"db":true}. Not behind the API key.
*/
package handlers

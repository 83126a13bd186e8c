// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the round-score API.

# Route Registration

NewRouter returns the fully wrapped handler:

	handler := router.NewRouter(db, cfg, assessor)

# Endpoints

Health (no API key):

	GET /health

Guarded by X-API-Key:

	POST /round-score      - Persist one practice round score (200 kB body limit)
	POST /azure-pron-score - Pronunciation assessment proxy (25 MB body limit)

# Middleware Order

Every request passes Recover, then CORS (preflight answered here), then
per-route WithLogging, RequireAPIKey and LimitBody before reaching the
handler. A rejected key never reads the body.
*/
package router

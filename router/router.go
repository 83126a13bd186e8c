// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/round-score/auth"
	"github.com/danielhkuo/round-score/cliparse"
	"github.com/danielhkuo/round-score/handlers"
	"github.com/danielhkuo/round-score/middleware"
	"github.com/danielhkuo/round-score/pronunciation"
)

// NewRouter wires every route. assessor may be nil, in which case the
// pronunciation endpoint answers 500 after validating input.
func NewRouter(db *sql.DB, cfg cliparse.Config, assessor pronunciation.Assessor) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	scoreHandler := handlers.NewScoreHandler(db)
	pronHandler := handlers.NewPronunciationHandler(assessor, cfg)

	// Health check (no API key, used by liveness probes)
	mux.HandleFunc("GET /health", middleware.WithLogging(healthHandler.Health))

	// Score submission
	mux.HandleFunc("POST /round-score", middleware.WithLogging(
		auth.RequireAPIKey(cfg.APIKey,
			middleware.LimitBody(handlers.MaxScoreBodyBytes, scoreHandler.SubmitRoundScore))))

	// Pronunciation assessment proxy
	mux.HandleFunc("POST /azure-pron-score", middleware.WithLogging(
		auth.RequireAPIKey(cfg.APIKey,
			middleware.LimitBody(handlers.MaxAudioBodyBytes, pronHandler.Assess))))

	return middleware.Recover(middleware.CORS(mux))
}

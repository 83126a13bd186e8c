// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/round-score/middleware"
	"github.com/danielhkuo/round-score/models"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health handles GET /health
// Unauthenticated; round-trips a sentinel query through the store
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	var ok int
	if err := h.db.QueryRowContext(r.Context(), `SELECT 1 AS ok`).Scan(&ok); err != nil {
		slog.Error("health check failed", "error", err)
		middleware.FailureResponse(w, http.StatusInternalServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HealthResponse{
		OK: true,
		DB: ok == 1,
	})
}

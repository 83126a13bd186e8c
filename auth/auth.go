// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/round-score/middleware"
)

// HeaderAPIKey carries the shared secret on every guarded request
const HeaderAPIKey = "X-API-Key"

var (
	ErrMissingAPIKey = errors.New("missing api key")
	ErrInvalidAPIKey = errors.New("invalid api key")
)

// ValidateAPIKey checks the provided key against the configured one.
// The match is exact; no trimming or case folding is done.
func ValidateAPIKey(provided, expected string) error {
	if provided == "" {
		return ErrMissingAPIKey
	}
	if expected == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// RequireAPIKey rejects requests whose x-api-key header does not match apiKey.
// next is not called on failure, so no body is read and no store or provider
// work happens.
func RequireAPIKey(apiKey string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ValidateAPIKey(r.Header.Get(HeaderAPIKey), apiKey); err != nil {
			slog.Warn("request rejected",
				"path", r.URL.Path,
				"remote", middleware.GetClientIP(r),
				"reason", err,
			)
			middleware.ErrorResponse(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
			return
		}
		next(w, r)
	}
}

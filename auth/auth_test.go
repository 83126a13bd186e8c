// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		provided string
		expected string
		wantErr  error
	}{
		{"exact match", "secret", "secret", nil},
		{"missing", "", "secret", ErrMissingAPIKey},
		{"wrong key", "nope", "secret", ErrInvalidAPIKey},
		{"prefix only", "sec", "secret", ErrInvalidAPIKey},
		{"trailing space", "secret ", "secret", ErrInvalidAPIKey},
		{"case differs", "SECRET", "secret", ErrInvalidAPIKey},
		{"nothing configured", "secret", "", ErrInvalidAPIKey},
		{"longer than expected", "secret2", "secret", ErrInvalidAPIKey},
		{"multibyte match", "鍵-κλειδί", "鍵-κλειδί", nil},
		{"multibyte mismatch", "鍵-κλειδι", "鍵-κλειδί", ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAPIKey(tt.provided, tt.expected)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateAPIKey() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCalled bool
	}{
		{"valid key", "test-api-key", http.StatusOK, true},
		{"missing header", "", http.StatusUnauthorized, false},
		{"wrong key", "wrong", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := RequireAPIKey("test-api-key", func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("POST", "/round-score", nil)
			if tt.header != "" {
				req.Header.Set("x-api-key", tt.header)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("Expected status %d, got %d", tt.wantStatus, w.Code)
			}
			if called != tt.wantCalled {
				t.Errorf("Expected handler called = %v, got %v", tt.wantCalled, called)
			}

			if tt.wantStatus == http.StatusUnauthorized {
				var resp map[string]any
				if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
					t.Fatalf("Failed to decode response: %v", err)
				}
				if resp["error"] != "Unauthorized" {
					t.Errorf("Expected error 'Unauthorized', got %v", resp["error"])
				}
			}
		})
	}
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/round-score/models"
	"github.com/danielhkuo/round-score/pronunciation"
	"github.com/danielhkuo/round-score/testutil"
)

func TestAssess(t *testing.T) {
	fake := &testutil.FakeAssessor{Result: pronunciation.Result{
		RecognizedText:     "こんにちは。",
		AccuracyScore:      92,
		FluencyScore:       85.5,
		CompletenessScore:  100,
		PronunciationScore: 89.7,
	}}
	handler := NewPronunciationHandler(fake, testutil.GetTestConfig())

	body := models.PronunciationRequest{
		ExpectedText:   "こんにちは",
		AudioWavBase64: testutil.SilentWAVBase64(1600),
	}
	req := testutil.MakeRequest("POST", "/azure-pron-score", body, nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.PronunciationResponse
	testutil.AssertJSON(t, w, &resp)

	if !resp.OK {
		t.Error("Expected ok=true")
	}
	if resp.RecognizedText != "こんにちは。" {
		t.Errorf("Expected recognizedText 'こんにちは。', got %q", resp.RecognizedText)
	}
	if resp.AccuracyScore != 92 || resp.FluencyScore != 85.5 || resp.CompletenessScore != 100 || resp.PronunciationScore != 89.7 {
		t.Errorf("Sub-scores not relayed verbatim: %+v", resp)
	}

	calls := fake.Requests()
	if len(calls) != 1 {
		t.Fatalf("Expected 1 provider call, got %d", len(calls))
	}
	if calls[0].ReferenceText != "こんにちは" {
		t.Errorf("Expected reference text 'こんにちは', got %q", calls[0].ReferenceText)
	}
	if calls[0].Language != "ja-JP" {
		t.Errorf("Expected default language ja-JP, got %q", calls[0].Language)
	}
	if calls[0].Audio == nil || len(calls[0].Audio.Data) != 3200 || calls[0].Audio.SampleRate != 16000 {
		t.Errorf("Expected decoded 16 kHz PCM data of 3200 bytes, got %+v", calls[0].Audio)
	}
}

func TestAssess_LanguageAndEmptyTranscript(t *testing.T) {
	fake := &testutil.FakeAssessor{Result: pronunciation.Result{AccuracyScore: 10}}
	handler := NewPronunciationHandler(fake, testutil.GetTestConfig())

	body := models.PronunciationRequest{
		ExpectedText:   "hello",
		AudioWavBase64: testutil.SilentWAVBase64(160),
		Language:       "en-US",
	}
	req := testutil.MakeRequest("POST", "/azure-pron-score", body, nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// recognizedText must be present even when the provider heard nothing
	if !strings.Contains(w.Body.String(), `"recognizedText":""`) {
		t.Errorf("Expected empty recognizedText in body, got %s", w.Body.String())
	}
	if got := fake.Requests()[0].Language; got != "en-US" {
		t.Errorf("Expected language en-US, got %q", got)
	}
}

func TestAssess_BadInput(t *testing.T) {
	wav := testutil.SilentWAVBase64(160)

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
		wantError  string
	}{
		{"empty body", ``, http.StatusBadRequest, "expectedText and audioWavBase64 are required"},
		{"missing audio", models.PronunciationRequest{ExpectedText: "こんにちは"}, http.StatusBadRequest, "expectedText and audioWavBase64 are required"},
		{"missing text", models.PronunciationRequest{AudioWavBase64: wav}, http.StatusBadRequest, "expectedText and audioWavBase64 are required"},
		{"whitespace text", models.PronunciationRequest{ExpectedText: "  ", AudioWavBase64: wav}, http.StatusBadRequest, "expectedText and audioWavBase64 are required"},
		{"not base64", models.PronunciationRequest{ExpectedText: "a", AudioWavBase64: "***"}, http.StatusBadRequest, pronunciation.ErrInvalidBase64.Error()},
		{"not wav", models.PronunciationRequest{ExpectedText: "a", AudioWavBase64: base64.StdEncoding.EncodeToString([]byte("ID3\x03\x00 mp3 data here"))}, http.StatusBadRequest, pronunciation.ErrNotWAV.Error()},
		{"silent zero-length wav", models.PronunciationRequest{ExpectedText: "a", AudioWavBase64: testutil.SilentWAVBase64(0)}, http.StatusBadRequest, pronunciation.ErrEmptyAudio.Error()},
		{"wrong field types", `{"expectedText":1,"audioWavBase64":true}`, http.StatusBadRequest, "Invalid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &testutil.FakeAssessor{}
			handler := NewPronunciationHandler(fake, testutil.GetTestConfig())

			req := testutil.MakeRequest("POST", "/azure-pron-score", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Assess(w, req)

			testutil.AssertStatus(t, w, tt.wantStatus)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tt.wantError {
				t.Errorf("Expected error %q, got %q", tt.wantError, resp.Error)
			}
			if n := len(fake.Requests()); n != 0 {
				t.Errorf("Expected no provider call, got %d", n)
			}
		})
	}
}

func TestAssess_NoCredentials(t *testing.T) {
	handler := NewPronunciationHandler(nil, testutil.GetTestConfig())

	body := models.PronunciationRequest{ExpectedText: "こんにちは", AudioWavBase64: testutil.SilentWAVBase64(160)}
	req := testutil.MakeRequest("POST", "/azure-pron-score", body, nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.FailureResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OK || resp.Error != ErrNoSpeechCredentials.Error() {
		t.Errorf("Unexpected response: %+v", resp)
	}
}

func TestAssess_MissingFieldsCheckedBeforeCredentials(t *testing.T) {
	handler := NewPronunciationHandler(nil, testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/azure-pron-score", `{"expectedText":"a"}`, nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestAssess_ProviderFailure(t *testing.T) {
	fake := &testutil.FakeAssessor{Err: &pronunciation.ProviderError{
		Provider: "azure speech",
		Detail:   "recognition canceled (Error): WebSocket upgrade failed: Authentication error (401)",
	}}
	handler := NewPronunciationHandler(fake, testutil.GetTestConfig())

	body := models.PronunciationRequest{ExpectedText: "こんにちは", AudioWavBase64: testutil.SilentWAVBase64(160)}
	req := testutil.MakeRequest("POST", "/azure-pron-score", body, nil)
	w := httptest.NewRecorder()

	handler.Assess(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.FailureResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.OK {
		t.Error("Expected ok=false")
	}
	if !strings.Contains(resp.Error, "Authentication error (401)") {
		t.Errorf("Expected provider detail in error, got %q", resp.Error)
	}
	if n := len(fake.Requests()); n != 1 {
		t.Errorf("Expected exactly one provider call (no retry), got %d", n)
	}
}

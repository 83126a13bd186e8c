// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/round-score/cliparse"
	"github.com/danielhkuo/round-score/middleware"
	"github.com/danielhkuo/round-score/models"
	"github.com/danielhkuo/round-score/pronunciation"
)

// MaxAudioBodyBytes caps POST /azure-pron-score bodies (base64 WAV)
const MaxAudioBodyBytes = 25_000_000

var (
	ErrPronunciationFields = errors.New("expectedText and audioWavBase64 are required")
	ErrNoSpeechCredentials = errors.New("Azure speech credentials are not configured")
)

type PronunciationHandler struct {
	assessor pronunciation.Assessor
	cfg      cliparse.Config
}

// NewPronunciationHandler wires the handler to an assessor.
// A nil assessor makes every request fail with 500 after input checks.
func NewPronunciationHandler(assessor pronunciation.Assessor, cfg cliparse.Config) *PronunciationHandler {
	return &PronunciationHandler{assessor: assessor, cfg: cfg}
}

// Assess handles POST /azure-pron-score
// Relays one provider assessment; nothing is stored
func (h *PronunciationHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req models.PronunciationRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.WriteBodyError(w, err)
		return
	}

	if strings.TrimSpace(req.ExpectedText) == "" || strings.TrimSpace(req.AudioWavBase64) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, ErrPronunciationFields.Error())
		return
	}

	if h.assessor == nil {
		slog.Error("pronunciation request without speech credentials")
		middleware.FailureResponse(w, http.StatusInternalServerError, ErrNoSpeechCredentials)
		return
	}

	raw, err := pronunciation.DecodeAudio(req.AudioWavBase64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	wav, err := pronunciation.ParseWAV(raw)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(wav.Data) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, pronunciation.ErrEmptyAudio.Error())
		return
	}

	language := strings.TrimSpace(req.Language)
	if language == "" {
		language = h.defaultLanguage()
	}

	slog.Info("pronunciation assessment requested",
		"language", language,
		"audio_bytes", humanize.Bytes(uint64(len(raw))),
		"sample_rate", wav.SampleRate,
		"channels", wav.Channels,
	)

	result, err := h.assessor.Assess(r.Context(), pronunciation.Request{
		ReferenceText: req.ExpectedText,
		Audio:         wav,
		Language:      language,
	})
	if err != nil {
		slog.Error("pronunciation assessment failed", "error", err, "language", language)
		middleware.FailureResponse(w, http.StatusInternalServerError, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.PronunciationResponse{
		OK:                 true,
		RecognizedText:     result.RecognizedText,
		AccuracyScore:      result.AccuracyScore,
		FluencyScore:       result.FluencyScore,
		CompletenessScore:  result.CompletenessScore,
		PronunciationScore: result.PronunciationScore,
	})
}

func (h *PronunciationHandler) defaultLanguage() string {
	if h.cfg.DefaultLanguage != "" {
		return h.cfg.DefaultLanguage
	}
	return cliparse.DefaultLanguage
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package pronunciation

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBase64 = errors.New("audioWavBase64 is not valid base64")
	ErrEmptyAudio    = errors.New("audio payload is empty")
)

// Request is one assessment: a reference phrase and the audio reading it
type Request struct {
	ReferenceText string
	Audio         *WAV
	Language      string
}

// Result holds the transcript and the four sub-scores, 0 to 100
type Result struct {
	RecognizedText     string
	AccuracyScore      float64
	FluencyScore       float64
	CompletenessScore  float64
	PronunciationScore float64
}

// Assessor scores a single utterance against its reference text.
// Each call is one provider round trip; nothing is cached or retried.
type Assessor interface {
	Assess(ctx context.Context, req Request) (Result, error)
}

// ProviderError wraps a failure reported by the speech provider
type ProviderError struct {
	Provider string
	Detail   string
	Err      error
}

func (e *ProviderError) Error() string {
	if e.Detail != "" && e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Provider, e.Detail, e.Err)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Provider, e.Detail)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// DecodeAudio decodes base64 audio as sent by browsers and mobile clients.
// Accepts the standard and URL alphabets, with or without padding, and
// strips a leading data URI prefix ("data:audio/wav;base64,").
func DecodeAudio(encoded string) ([]byte, error) {
	s := strings.TrimSpace(encoded)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	s = strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', ' ', '\t':
			return -1
		}
		return r
	}, s)
	if s == "" {
		return nil, ErrEmptyAudio
	}

	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	for _, enc := range encodings {
		if b, err := enc.DecodeString(s); err == nil {
			if len(b) == 0 {
				return nil, ErrEmptyAudio
			}
			return b, nil
		}
	}
	return nil, ErrInvalidBase64
}

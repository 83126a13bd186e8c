// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build cgo

package azure

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Microsoft/cognitive-services-speech-sdk-go/audio"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/common"
	"github.com/Microsoft/cognitive-services-speech-sdk-go/speech"

	"github.com/danielhkuo/round-score/pronunciation"
)

// Assess pushes the PCM samples to a single-shot recognizer with phoneme
// granularity, hundred-mark grading and miscue detection.
// Every SDK handle is released before returning, including on panic.
func (a *Assessor) Assess(ctx context.Context, req pronunciation.Request) (res pronunciation.Result, err error) {
	if err := ctx.Err(); err != nil {
		return pronunciation.Result{}, err
	}
	if req.Audio == nil || len(req.Audio.Data) == 0 {
		return pronunciation.Result{}, pronunciation.ErrEmptyAudio
	}

	params, err := pronunciationParams(req.ReferenceText)
	if err != nil {
		return pronunciation.Result{}, providerErr("failed to encode assessment params", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			res = pronunciation.Result{}
			err = &pronunciation.ProviderError{
				Provider: providerName,
				Detail:   "failed to read assessment result",
				Err:      fmt.Errorf("panic: %v", rec),
			}
		}
	}()

	speechConfig, err := speech.NewSpeechConfigFromSubscription(a.subscriptionKey, a.region)
	if err != nil {
		return pronunciation.Result{}, providerErr("failed to create speech config", err)
	}
	defer speechConfig.Close()

	if err := speechConfig.SetSpeechRecognitionLanguage(req.Language); err != nil {
		return pronunciation.Result{}, providerErr("failed to set recognition language", err)
	}
	// NBest with the assessment block is only present in detailed output
	if err := speechConfig.SetOutputFormat(common.Detailed); err != nil {
		return pronunciation.Result{}, providerErr("failed to set output format", err)
	}
	if err := speechConfig.SetPropertyByString(paramsProperty, params); err != nil {
		return pronunciation.Result{}, providerErr("failed to apply assessment params", err)
	}

	format, err := audio.GetWaveFormatPCM(req.Audio.SampleRate, req.Audio.BitsPerSample, req.Audio.Channels)
	if err != nil {
		return pronunciation.Result{}, providerErr("unsupported audio format", err)
	}
	defer format.Close()

	stream, err := audio.CreatePushAudioInputStreamFromFormat(format)
	if err != nil {
		return pronunciation.Result{}, providerErr("failed to create audio stream", err)
	}
	defer stream.Close()

	audioConfig, err := audio.NewAudioConfigFromStreamInput(stream)
	if err != nil {
		return pronunciation.Result{}, providerErr("failed to create audio config", err)
	}
	defer audioConfig.Close()

	recognizer, err := speech.NewSpeechRecognizerFromConfig(speechConfig, audioConfig)
	if err != nil {
		return pronunciation.Result{}, providerErr("failed to create recognizer", err)
	}
	defer recognizer.Close()

	if err := stream.Write(req.Audio.Data); err != nil {
		return pronunciation.Result{}, providerErr("failed to write audio", err)
	}
	stream.CloseStream()

	start := time.Now()
	result := <-recognizer.RecognizeOnceAsync()
	defer result.Close()

	slog.Info("azure assessment completed",
		"language", req.Language,
		"audio_ms", req.Audio.Duration().Milliseconds(),
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if result.Error != nil {
		return pronunciation.Result{}, providerErr("recognition failed", result.Error)
	}
	if result.Result == nil {
		return pronunciation.Result{}, providerErr("recognition returned no result", nil)
	}
	return parseRecognition(readRecognition(result.Result))
}

// readRecognition copies what parseRecognition needs out of the SDK result
func readRecognition(result *speech.SpeechRecognitionResult) recognition {
	rec := recognition{
		reason: result.Reason.String(),
		text:   result.Text,
		json:   result.Properties.GetProperty(common.SpeechServiceResponseJSONResult, ""),
	}

	switch result.Reason {
	case common.RecognizedSpeech:
		rec.outcome = outcomeRecognized
	case common.NoMatch:
		rec.outcome = outcomeNoMatch
	case common.Canceled:
		rec.outcome = outcomeCanceled
		rec.cancelDetail = result.Properties.GetProperty(common.CancellationDetailsReasonDetailedText, "")
		if rec.cancelDetail == "" {
			rec.cancelDetail = result.Properties.GetProperty(common.SpeechServiceResponseJSONErrorDetails, "")
		}
	default:
		rec.outcome = outcomeOther
	}
	return rec
}

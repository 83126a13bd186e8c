// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package pronunciation defines the pronunciation assessment contract and the
audio handling shared by every provider.

# Assessor

An Assessor scores one utterance against a reference phrase:

	res, err := assessor.Assess(ctx, pronunciation.Request{
		ReferenceText: "こんにちは",
		Audio:         wav,
		Language:      "ja-JP",
	})

The Azure implementation lives in pronunciation/azure. Handlers depend on the
interface only, so tests substitute a fake.

# Audio

DecodeAudio turns the audioWavBase64 field into bytes and ParseWAV extracts
the PCM format and sample data:

	raw, err := pronunciation.DecodeAudio(req.AudioWavBase64)
	wav, err := pronunciation.ParseWAV(raw)

Only linear PCM is accepted (format tag 1, or WAVE_FORMAT_EXTENSIBLE with a
PCM subformat).

# Errors

Provider failures are returned as *ProviderError carrying the provider's own
detail text, which handlers pass through to the caller.
*/
package pronunciation

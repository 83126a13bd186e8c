// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package azure implements pronunciation.Assessor with the Azure Cognitive
Services Speech SDK.

	assessor, err := azure.NewAssessor(cfg.AzureSpeechKey, cfg.AzureSpeechRegion)

Each Assess call builds its own speech config, push stream and recognizer,
runs RecognizeOnceAsync once, and closes everything on return. No timeout
is added beyond what the SDK enforces.

The assessment settings (reference text, HundredMark grading, Phoneme
granularity, miscue detection) travel as JSON in the
PronunciationAssessment_Params property, and the scores are read from the
detailed service response (SpeechServiceResponse_JsonResult, NBest[0]).

The SDK links against the native Speech SDK library (cgo); see the SDK's
README for the SPEECHSDK_ROOT, CGO_CFLAGS and CGO_LDFLAGS setup. Builds
without cgo compile an Assess that always returns ErrNoSDK, and the
response parsing tests run there:

	CGO_ENABLED=0 go test ./pronunciation/azure/
*/
package azure

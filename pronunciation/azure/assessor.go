// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package azure

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/round-score/pronunciation"
)

const providerName = "azure speech"

// paramsProperty is the speech config property carrying the assessment
// settings as JSON.
const paramsProperty = "PronunciationAssessment_Params"

// Assessor runs Azure pronunciation assessment, one recognizer per request.
// It is safe for concurrent use; it holds only the credentials.
type Assessor struct {
	subscriptionKey string
	region          string
}

// NewAssessor returns an Assessor for the given subscription
func NewAssessor(subscriptionKey, region string) (*Assessor, error) {
	if subscriptionKey == "" || region == "" {
		return nil, errors.New("azure speech key and region are required")
	}
	return &Assessor{subscriptionKey: subscriptionKey, region: region}, nil
}

type assessmentParams struct {
	ReferenceText string `json:"referenceText"`
	GradingSystem string `json:"gradingSystem"`
	Granularity   string `json:"granularity"`
	Dimension     string `json:"dimension"`
	EnableMiscue  bool   `json:"enableMiscue"`
}

// pronunciationParams renders the PronunciationAssessment_Params value:
// hundred-mark grading, phoneme granularity, miscue detection on.
func pronunciationParams(referenceText string) (string, error) {
	body, err := json.Marshal(assessmentParams{
		ReferenceText: referenceText,
		GradingSystem: "HundredMark",
		Granularity:   "Phoneme",
		Dimension:     "Comprehensive",
		EnableMiscue:  true,
	})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

type outcome int

const (
	outcomeRecognized outcome = iota
	outcomeNoMatch
	outcomeCanceled
	outcomeOther
)

// recognition is what Assess reads off an SDK result before releasing it
type recognition struct {
	outcome      outcome
	reason       string
	text         string
	json         string
	cancelDetail string
}

// detailedResult is the subset of the detailed service response we relay
type detailedResult struct {
	DisplayText string `json:"DisplayText"`
	NBest       []struct {
		Display                 string `json:"Display"`
		PronunciationAssessment *struct {
			AccuracyScore     float64 `json:"AccuracyScore"`
			FluencyScore      float64 `json:"FluencyScore"`
			CompletenessScore float64 `json:"CompletenessScore"`
			PronScore         float64 `json:"PronScore"`
		} `json:"PronunciationAssessment"`
	} `json:"NBest"`
}

// parseAssessmentJSON extracts the transcript and the four sub-scores from
// the best hypothesis. A hypothesis without an assessment block scores zero.
func parseAssessmentJSON(raw []byte) (pronunciation.Result, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return pronunciation.Result{}, errors.New("empty service response")
	}

	var parsed detailedResult
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return pronunciation.Result{}, fmt.Errorf("decode service response: %w", err)
	}

	res := pronunciation.Result{RecognizedText: parsed.DisplayText}
	if len(parsed.NBest) == 0 {
		return res, nil
	}

	best := parsed.NBest[0]
	if res.RecognizedText == "" {
		res.RecognizedText = best.Display
	}
	if pa := best.PronunciationAssessment; pa != nil {
		res.AccuracyScore = pa.AccuracyScore
		res.FluencyScore = pa.FluencyScore
		res.CompletenessScore = pa.CompletenessScore
		res.PronunciationScore = pa.PronScore
	}
	return res, nil
}

// parseRecognition maps a finished recognition to a Result.
// NoMatch still yields (usually zero) scores; Canceled is a provider error.
func parseRecognition(rec recognition) (pronunciation.Result, error) {
	switch rec.outcome {
	case outcomeRecognized:
		res, err := parseAssessmentJSON([]byte(rec.json))
		if err != nil {
			return pronunciation.Result{}, providerErr("malformed assessment result", err)
		}
		if rec.text != "" {
			res.RecognizedText = rec.text
		}
		return res, nil

	case outcomeNoMatch:
		slog.Warn("azure assessment matched no speech")
		res, err := parseAssessmentJSON([]byte(rec.json))
		if err != nil {
			return pronunciation.Result{RecognizedText: rec.text}, nil
		}
		if rec.text != "" {
			res.RecognizedText = rec.text
		}
		return res, nil

	case outcomeCanceled:
		detail := "recognition canceled"
		if rec.cancelDetail != "" {
			detail += ": " + rec.cancelDetail
		}
		return pronunciation.Result{}, &pronunciation.ProviderError{Provider: providerName, Detail: detail}

	default:
		return pronunciation.Result{}, providerErr(fmt.Sprintf("unexpected result reason %s", rec.reason), nil)
	}
}

func providerErr(detail string, err error) error {
	return &pronunciation.ProviderError{Provider: providerName, Detail: detail, Err: err}
}

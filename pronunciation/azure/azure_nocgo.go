// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build !cgo

package azure

import (
	"context"
	"errors"

	"github.com/danielhkuo/round-score/pronunciation"
)

// ErrNoSDK is returned when the binary was built without cgo
var ErrNoSDK = errors.New("built without cgo; the Speech SDK is unavailable")

// Assess always fails: the Speech SDK needs cgo.
func (a *Assessor) Assess(ctx context.Context, req pronunciation.Request) (pronunciation.Result, error) {
	return pronunciation.Result{}, providerErr("speech SDK unavailable", ErrNoSDK)
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/round-score/models"
	"github.com/danielhkuo/round-score/pronunciation"
	"github.com/danielhkuo/round-score/testutil"
)

// TestConcurrentRoundScoreSubmissions verifies that simultaneous submissions
// each land as exactly one row with a unique id
func TestConcurrentRoundScoreSubmissions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	handler := NewScoreHandler(db)

	numRequests := 20
	var successCount atomic.Int32
	var wg sync.WaitGroup
	var mu sync.Mutex
	ids := make(map[int64]bool)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := fmt.Sprintf(`{"userId":"user-%d","sessionId":"shared","roundIndex":%d,"score":%d}`, idx%3, idx, idx*5)
			req := testutil.MakeRequest("POST", "/round-score", body, nil)
			w := httptest.NewRecorder()

			handler.SubmitRoundScore(w, req)

			if w.Code != http.StatusOK {
				return
			}
			var resp models.SubmitRoundScoreResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				return
			}

			successCount.Add(1)
			mu.Lock()
			ids[resp.ID] = true
			mu.Unlock()
		}(i)
	}

	wg.Wait()

	if int(successCount.Load()) != numRequests {
		t.Errorf("Expected %d successful submissions, got %d", numRequests, successCount.Load())
	}
	if len(ids) != numRequests {
		t.Errorf("Expected %d distinct ids, got %d", numRequests, len(ids))
	}
	if n := testutil.CountRoundScores(t, db); n != numRequests {
		t.Errorf("Expected %d rows in database, got %d", numRequests, n)
	}
}

// TestConcurrentAssessments verifies the proxy shares no per-request state
func TestConcurrentAssessments(t *testing.T) {
	fake := &testutil.FakeAssessor{Result: pronunciation.Result{PronunciationScore: 80}}
	handler := NewPronunciationHandler(fake, testutil.GetTestConfig())

	numRequests := 10
	var wg sync.WaitGroup
	var okCount atomic.Int32

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			body := models.PronunciationRequest{
				ExpectedText:   fmt.Sprintf("phrase %d", idx),
				AudioWavBase64: testutil.SilentWAVBase64(160 * (idx + 1)),
			}
			req := testutil.MakeRequest("POST", "/azure-pron-score", body, nil)
			w := httptest.NewRecorder()

			handler.Assess(w, req)

			if w.Code == http.StatusOK {
				okCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	if int(okCount.Load()) != numRequests {
		t.Errorf("Expected %d successful assessments, got %d", numRequests, okCount.Load())
	}

	seen := make(map[string]int)
	for _, req := range fake.Requests() {
		seen[req.ReferenceText] = len(req.Audio.Data)
	}
	for i := 0; i < numRequests; i++ {
		text := fmt.Sprintf("phrase %d", i)
		if seen[text] != 320*(i+1) {
			t.Errorf("Request %q carried %d audio bytes, want %d", text, seen[text], 320*(i+1))
		}
	}
}

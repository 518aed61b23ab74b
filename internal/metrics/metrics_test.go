// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package metrics

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/match", "200"))

	RecordAPIRequest("POST", "/match", "200", 12*time.Millisecond)
	RecordAPIRequest("POST", "/match", "200", 3*time.Millisecond)

	got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("POST", "/match", "200"))
	if got-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", got-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("api_active_requests = %v, want %v", got, before)
	}
}

func TestRecordMatch(t *testing.T) {
	success := MatchRequestsTotal.WithLabelValues(OutcomeSuccess)
	beforeOK := testutil.ToFloat64(success)
	beforeScored := testutil.ToFloat64(MatchCandidatesScored)
	beforeExcluded := testutil.ToFloat64(MatchCandidatesExcluded)

	RecordMatch(10, 5, 2, 4*time.Millisecond)

	if d := testutil.ToFloat64(success) - beforeOK; d != 1 {
		t.Errorf("success delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(MatchCandidatesScored) - beforeScored; d != 8 {
		t.Errorf("scored delta = %v, want 8", d)
	}
	if d := testutil.ToFloat64(MatchCandidatesExcluded) - beforeExcluded; d != 2 {
		t.Errorf("excluded delta = %v, want 2", d)
	}
}

func TestRecordMatchFailure(t *testing.T) {
	tests := []struct {
		outcome string
		label   string
	}{
		{OutcomeInvalid, OutcomeInvalid},
		{OutcomeTimeout, OutcomeTimeout},
		{OutcomeError, OutcomeError},
		{OutcomeCanceled, OutcomeCanceled},
		{"bogus", OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.outcome, func(t *testing.T) {
			c := MatchRequestsTotal.WithLabelValues(tt.label)
			before := testutil.ToFloat64(c)
			RecordMatchFailure(tt.outcome)
			if d := testutil.ToFloat64(c) - before; d != 1 {
				t.Errorf("%s delta = %v, want 1", tt.label, d)
			}
		})
	}
}

func TestUpdateEngineStats(t *testing.T) {
	UpdateEngineStats(42, 1.5, 90)

	if got := testutil.ToFloat64(EngineRequests); got != 42 {
		t.Errorf("match_engine_requests = %v, want 42", got)
	}
	if got := testutil.ToFloat64(EngineAvgProcessingMS); got != 1.5 {
		t.Errorf("match_engine_avg_processing_ms = %v, want 1.5", got)
	}
	if got := testutil.ToFloat64(AppUptime); got != 90 {
		t.Errorf("app_uptime_seconds = %v, want 90", got)
	}
}

func TestClientMetrics(t *testing.T) {
	req := CircuitBreakerRequests.WithLabelValues("test-breaker", "rejected")
	before := testutil.ToFloat64(req)

	RecordClientRequest("test-breaker", "rejected")
	RecordFallback("breaker_open")
	RecordBreakerTransition("test-breaker", "closed", "open", 2)

	if d := testutil.ToFloat64(req) - before; d != 1 {
		t.Errorf("breaker requests delta = %v, want 1", d)
	}
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("test-breaker")); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues("test-breaker", "closed", "open")); got < 1 {
		t.Errorf("transitions = %v, want >= 1", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0")
	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0", runtime.Version())); got != 1 {
		t.Errorf("app_info = %v, want 1", got)
	}
}

func TestMetricGathering(t *testing.T) {
	RecordAPIRequest("GET", "/health", "200", time.Millisecond)

	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("GatherAndLint: %v", err)
	}
	for _, p := range problems {
		if p.Metric == "match_pool_size" || p.Metric == "match_duration_seconds" {
			t.Errorf("lint problem on %s: %s", p.Metric, p.Text)
		}
	}
}

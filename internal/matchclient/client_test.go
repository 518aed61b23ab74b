// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matchclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/TheACJ/SkillBridge-sub000/internal/config"
	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
)

func testClientConfig(url string) *config.ClientConfig {
	return &config.ClientConfig{
		ServiceURL:        url,
		Timeout:           2 * time.Second,
		RequestsPerSecond: 0,
		Burst:             10,
		Breaker: config.BreakerConfig{
			MaxRequests:  1,
			Interval:     time.Minute,
			OpenTimeout:  time.Minute,
			MinRequests:  2,
			FailureRatio: 0.5,
		},
	}
}

func testRequest() *matching.MatchRequest {
	return &matching.MatchRequest{
		Learner: matching.LearnerProfile{
			ID:              uuid.New(),
			Skills:          []string{"go"},
			ExperienceLevel: "beginner",
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.ClientConfig
		wantErr bool
	}{
		{"nil config", nil, true},
		{"empty url", testClientConfig("  "), true},
		{"trailing slash trimmed", testClientConfig("http://matcher:8001/"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.cfg)
			if tt.wantErr {
				if !errors.Is(err, ErrNoServiceURL) {
					t.Errorf("err = %v, want ErrNoServiceURL", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}
			if c.BaseURL() != "http://matcher:8001" {
				t.Errorf("BaseURL = %q", c.BaseURL())
			}
			if c.State() != "closed" {
				t.Errorf("State = %q, want closed", c.State())
			}
		})
	}
}

func TestClient_Match(t *testing.T) {
	mentor := uuid.New()
	var gotRequestID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/match" {
			http.NotFound(w, r)
			return
		}
		gotRequestID = r.Header.Get("X-Request-ID")

		var req matching.MatchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{})
			return
		}
		writeJSON(w, http.StatusOK, &matching.MatchResponse{
			Matches:          []matching.Match{{MentorID: mentor, Score: 91.5, Reasoning: "Rank 1 match: Strong skill alignment"}},
			AlgorithmVersion: matching.AlgorithmVersion,
		})
	}))
	defer srv.Close()

	c, err := NewClient(testClientConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	ctx := logging.ContextWithRequestID(context.Background(), "req-remote")
	resp, err := c.Match(ctx, testRequest())
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(resp.Matches) != 1 || resp.Matches[0].MentorID != mentor {
		t.Errorf("unexpected response: %+v", resp)
	}
	if gotRequestID != "req-remote" {
		t.Errorf("X-Request-ID = %q, want req-remote", gotRequestID)
	}
}

func TestClient_Health(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthStatus{Status: "healthy", Version: "1.0.0", Timestamp: time.Now()})
	}))
	defer srv.Close()

	c, err := NewClient(testClientConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	status, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health: %v", err)
	}
	if status.Status != "healthy" || status.Version != "1.0.0" {
		t.Errorf("status = %+v", status)
	}
}

func TestClient_StatusErrors(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		clientError bool
	}{
		{"validation", http.StatusBadRequest,
			`{"error":{"code":"VALIDATION_ERROR","message":"limit must be greater than or equal to 1","request_id":"r1"}}`,
			"VALIDATION_ERROR", true},
		{"timeout", http.StatusServiceUnavailable, `{"error":{"code":"MATCH_TIMEOUT","message":"slow"}}`, "MATCH_TIMEOUT", false},
		{"throttled", http.StatusTooManyRequests, `{"error":{"code":"TOO_MANY_REQUESTS","message":"slow down"}}`, "TOO_MANY_REQUESTS", false},
		{"plain text", http.StatusBadGateway, `upstream down`, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c, err := NewClient(testClientConfig(srv.URL))
			if err != nil {
				t.Fatalf("NewClient: %v", err)
			}

			_, err = c.Match(context.Background(), testRequest())
			var se *StatusError
			if !errors.As(err, &se) {
				t.Fatalf("expected *StatusError, got %v", err)
			}
			if se.StatusCode != tt.status || se.Code != tt.wantCode {
				t.Errorf("got %d %q, want %d %q", se.StatusCode, se.Code, tt.status, tt.wantCode)
			}
			if se.IsClientError() != tt.clientError {
				t.Errorf("IsClientError = %v, want %v", se.IsClientError(), tt.clientError)
			}
			if tt.wantCode == "" && se.Message != "upstream down" {
				t.Errorf("Message = %q", se.Message)
			}
		})
	}
}

func TestClient_BreakerOpensOnFailures(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := NewClient(testClientConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	for i := 0; i < 2; i++ {
		if _, err := c.Match(context.Background(), testRequest()); err == nil {
			t.Fatal("expected failure")
		}
	}
	if c.State() != "open" {
		t.Fatalf("State = %q, want open", c.State())
	}

	_, err = c.Match(context.Background(), testRequest())
	if !isRejected(err) {
		t.Errorf("expected breaker rejection, got %v", err)
	}
	if got := hits.Load(); got != 2 {
		t.Errorf("server hits = %d, want 2", got)
	}
}

func TestClient_ClientErrorsDoNotTripBreaker(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error": map[string]string{"code": "VALIDATION_ERROR", "message": "bad"},
		})
	}))
	defer srv.Close()

	c, err := NewClient(testClientConfig(srv.URL))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	for i := 0; i < 5; i++ {
		_, _ = c.Match(context.Background(), testRequest())
	}
	if c.State() != "closed" {
		t.Errorf("State = %q, want closed", c.State())
	}
}

func TestClient_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &matching.MatchResponse{Matches: []matching.Match{}})
	}))
	defer srv.Close()

	cfg := testClientConfig(srv.URL)
	cfg.RequestsPerSecond = 0.001
	cfg.Burst = 1
	c, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	if _, err := c.Match(context.Background(), testRequest()); err != nil {
		t.Fatalf("first Match: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.Match(ctx, testRequest())
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestStateHelpers(t *testing.T) {
	if stateToString(99) != "unknown" || stateToFloat(99) != -1 {
		t.Error("unknown state should map to unknown/-1")
	}
}

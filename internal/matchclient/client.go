// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matchclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/TheACJ/SkillBridge-sub000/internal/config"
	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/metrics"
)

// BreakerName labels the client's circuit breaker in logs and metrics.
const BreakerName = "matching-service"

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 64 << 10

var (
	// ErrNoServiceURL is returned by NewClient when no remote URL is configured.
	ErrNoServiceURL = errors.New("matching service URL is not configured")

	// ErrRateLimited is returned when the client-side limiter cannot grant a
	// slot before the context ends.
	ErrRateLimited = errors.New("client rate limit exceeded")
)

// StatusError is a non-200 response from the remote service.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("matching service returned %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("matching service returned %d: %s", e.StatusCode, e.Message)
}

// IsClientError reports whether the remote rejected the request itself.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusTooManyRequests
}

// HealthStatus is the remote GET /health body.
type HealthStatus struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

// Client calls a remote matching service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	cb         *gobreaker.CircuitBreaker[interface{}]
}

// NewClient creates a client from the client config section.
func NewClient(cfg *config.ClientConfig) (*Client, error) {
	if cfg == nil || strings.TrimSpace(cfg.ServiceURL) == "" {
		return nil, ErrNoServiceURL
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.ServiceURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		cb:      newBreaker(BreakerName, cfg.Breaker),
	}, nil
}

// BaseURL returns the remote service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// State returns the circuit breaker state as a string.
func (c *Client) State() string {
	return stateToString(c.cb.State())
}

// Match posts req to the remote /match endpoint.
func (c *Client) Match(ctx context.Context, req *matching.MatchRequest) (*matching.MatchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode match request: %w", err)
	}

	result, err := c.execute(ctx, func() (interface{}, error) {
		var resp matching.MatchResponse
		if err := c.do(ctx, http.MethodPost, "/match", body, &resp); err != nil {
			return nil, err
		}
		return &resp, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*matching.MatchResponse), nil
}

// Health reads the remote /health endpoint.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	result, err := c.execute(ctx, func() (interface{}, error) {
		var status HealthStatus
		if err := c.do(ctx, http.MethodGet, "/health", nil, &status); err != nil {
			return nil, err
		}
		return &status, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*HealthStatus), nil
}

// execute waits for the rate limiter and runs fn through the breaker.
func (c *Client) execute(ctx context.Context, fn func() (interface{}, error)) (interface{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		metrics.RecordClientRequest(BreakerName, "rejected")
		return nil, fmt.Errorf("%w: %w", ErrRateLimited, err)
	}

	result, err := c.cb.Execute(fn)
	if err != nil {
		if isRejected(err) {
			metrics.RecordClientRequest(BreakerName, "rejected")
			logging.Ctx(ctx).Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.RecordClientRequest(BreakerName, "failure")
		}
		return nil, err
	}

	metrics.RecordClientRequest(BreakerName, "success")
	return result, nil
}

// do performs one HTTP exchange and decodes a 200 body into out.
func (c *Client) do(ctx context.Context, method, path string, body []byte, out interface{}) error {
	var reader io.Reader = http.NoBody
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logging.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decodeStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// decodeStatusError builds a *StatusError from the standard error body,
// falling back to the raw text when the body is not in that shape.
func decodeStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	se := &StatusError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error *struct {
			Code      string `json:"code"`
			Message   string `json:"message"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != nil {
		se.Code = envelope.Error.Code
		se.Message = envelope.Error.Message
		se.RequestID = envelope.Error.RequestID
		return se
	}

	se.Message = strings.TrimSpace(string(raw))
	if se.Message == "" {
		se.Message = http.StatusText(resp.StatusCode)
	}
	return se
}

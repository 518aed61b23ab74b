// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matchclient

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/metrics"
)

// Source names the path that produced a response.
type Source string

const (
	SourceRemote Source = "remote"
	SourceLocal  Source = "local"
)

// Fallback reasons used in logs and metrics.
const (
	ReasonNoRemote    = "no_remote"
	ReasonBreakerOpen = "breaker_open"
	ReasonTimeout     = "timeout"
	ReasonRateLimited = "rate_limited"
	ReasonRemoteError = "remote_error"
)

// Matcher produces a match response for a request.
type Matcher interface {
	Match(ctx context.Context, req *matching.MatchRequest) (*matching.MatchResponse, error)
}

// FallbackMatcher prefers a remote matcher and falls back to a local one.
type FallbackMatcher struct {
	remote   Matcher
	local    Matcher
	endpoint string
	log      *logging.MatchLogger
}

// NewFallbackMatcher creates a matcher. client may be nil, in which case every
// request is served locally.
func NewFallbackMatcher(client *Client, local Matcher) *FallbackMatcher {
	fm := &FallbackMatcher{
		local: local,
		log:   logging.NewMatchLogger("matchclient"),
	}
	if client != nil {
		fm.remote = client
		fm.endpoint = client.BaseURL()
	}
	return fm
}

// Match serves req remotely when possible and locally otherwise.
func (f *FallbackMatcher) Match(ctx context.Context, req *matching.MatchRequest) (*matching.MatchResponse, Source, error) {
	if f.remote == nil {
		metrics.RecordFallback(ReasonNoRemote)
		return f.serveLocal(ctx, req)
	}

	resp, err := f.remote.Match(ctx, req)
	if err == nil {
		return resp, SourceRemote, nil
	}

	// The remote rejected the request itself, or the caller gave up.
	var se *StatusError
	if errors.As(err, &se) && se.IsClientError() {
		return nil, SourceRemote, err
	}
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return nil, SourceRemote, err
	}

	reason := fallbackReason(err)
	metrics.RecordFallback(reason)
	f.log.Fallback(ctx, f.endpoint, err)

	return f.serveLocal(ctx, req)
}

func (f *FallbackMatcher) serveLocal(ctx context.Context, req *matching.MatchRequest) (*matching.MatchResponse, Source, error) {
	resp, err := f.local.Match(ctx, req)
	return resp, SourceLocal, err
}

func fallbackReason(err error) string {
	switch {
	case isRejected(err):
		return ReasonBreakerOpen
	case errors.Is(err, ErrRateLimited):
		return ReasonRateLimited
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	}

	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ReasonTimeout
	}
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusServiceUnavailable {
		return ReasonTimeout
	}
	return ReasonRemoteError
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package api

import (
	"context"
	"time"

	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
)

// DefaultMaxBodyBytes caps POST /match bodies when no limit is configured.
const DefaultMaxBodyBytes int64 = 4 << 20

// Matcher is the engine surface the handlers depend on.
// *matching.Engine satisfies it.
type Matcher interface {
	Match(ctx context.Context, req *matching.MatchRequest) (*matching.MatchResponse, error)
	Stats() matching.StatsSnapshot
}

// Handler serves the matching API.
type Handler struct {
	matcher  Matcher
	matchLog *logging.MatchLogger
	version  string
	maxBody  int64
	now      func() time.Time
}

// NewHandler creates a handler. A non-positive maxBodyBytes selects
// DefaultMaxBodyBytes.
func NewHandler(matcher Matcher, version string, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxBodyBytes
	}
	return &Handler{
		matcher:  matcher,
		matchLog: logging.NewMatchLogger("api"),
		version:  version,
		maxBody:  maxBodyBytes,
		now:      time.Now,
	}
}

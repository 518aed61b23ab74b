// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// MatchLogger writes the service's domain events: served matches, rejected
// requests and remote-client fallbacks. All methods pick up request_id
// from ctx.
type MatchLogger struct {
	logger zerolog.Logger
}

// NewMatchLogger creates a MatchLogger on the global logger.
func NewMatchLogger(component string) *MatchLogger {
	return &MatchLogger{logger: WithComponent(component)}
}

// NewMatchLoggerWithLogger creates a MatchLogger on a specific logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewMatchLoggerWithLogger(logger zerolog.Logger, component string) *MatchLogger {
	return &MatchLogger{logger: logger.With().Str("component", component).Logger()}
}

func (m *MatchLogger) withContext(ctx context.Context) *zerolog.Logger {
	l := m.logger
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		l = l.With().Str("request_id", requestID).Logger()
	}
	return &l
}

// Served records a successful match request.
func (m *MatchLogger) Served(ctx context.Context, learnerID string, pool, returned, excluded int, latencyMS float64, source string) {
	m.withContext(ctx).Info().
		Str("learner_id", learnerID).
		Int("pool_size", pool).
		Int("returned", returned).
		Int("excluded", excluded).
		Float64("latency_ms", latencyMS).
		Str("source", source).
		Msg("match served")
}

// Rejected records a request that failed validation.
func (m *MatchLogger) Rejected(ctx context.Context, field string, err error) {
	m.withContext(ctx).Info().
		Str("field", field).
		Err(err).
		Msg("match request rejected")
}

// TimedOut records a request that exceeded its budget.
func (m *MatchLogger) TimedOut(ctx context.Context, pool int, err error) {
	m.withContext(ctx).Warn().
		Int("pool_size", pool).
		Err(err).
		Msg("match request timed out")
}

// Canceled records a request the caller abandoned before scoring finished.
func (m *MatchLogger) Canceled(ctx context.Context, pool int) {
	m.withContext(ctx).Debug().
		Int("pool_size", pool).
		Msg("match request canceled by client")
}

// Failed records an unexpected failure.
func (m *MatchLogger) Failed(ctx context.Context, err error) {
	m.withContext(ctx).Error().
		Err(err).
		Msg("match request failed")
}

// Fallback records that the remote matcher was bypassed for the local engine.
func (m *MatchLogger) Fallback(ctx context.Context, endpoint string, reason error) {
	m.withContext(ctx).Warn().
		Str("endpoint", endpoint).
		Err(reason).
		Msg("remote matcher unavailable, using local engine")
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"sync/atomic"
	"time"
)

// Stats accumulates process-wide counters. All methods are safe for
// concurrent use. The counters are monotonic and advisory.
type Stats struct {
	startedAt time.Time
	now       func() time.Time

	totalRequests      atomic.Int64
	totalMicros        atomic.Int64
	validationErrors   atomic.Int64
	timeouts           atomic.Int64
	candidatesScored   atomic.Int64
	candidatesExcluded atomic.Int64
}

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	TotalRequests           int64   `json:"total_requests"`
	AverageProcessingTimeMS float64 `json:"average_processing_time_ms"`
	// CacheHitRate is always 0; the engine keeps no result cache.
	CacheHitRate       float64 `json:"cache_hit_rate"`
	UptimeSeconds      int64   `json:"uptime_seconds"`
	ValidationErrors   int64   `json:"validation_errors"`
	Timeouts           int64   `json:"timeouts"`
	CandidatesScored   int64   `json:"candidates_scored"`
	CandidatesExcluded int64   `json:"candidates_excluded"`
}

// NewStats creates counters starting now.
func NewStats() *Stats {
	return newStatsWithClock(time.Now)
}

func newStatsWithClock(now func() time.Time) *Stats {
	return &Stats{startedAt: now(), now: now}
}

// recordRequest counts one request and its latency.
func (s *Stats) recordRequest(elapsed time.Duration) {
	s.totalRequests.Add(1)
	s.totalMicros.Add(elapsed.Microseconds())
}

func (s *Stats) recordValidationError() {
	s.validationErrors.Add(1)
}

func (s *Stats) recordTimeout() {
	s.timeouts.Add(1)
}

func (s *Stats) recordCandidates(scored, excluded int) {
	s.candidatesScored.Add(int64(scored))
	s.candidatesExcluded.Add(int64(excluded))
}

// Snapshot returns the current counter values.
func (s *Stats) Snapshot() StatsSnapshot {
	total := s.totalRequests.Load()
	var avg float64
	if total > 0 {
		avg = float64(s.totalMicros.Load()) / 1000 / float64(total)
	}
	return StatsSnapshot{
		TotalRequests:           total,
		AverageProcessingTimeMS: avg,
		UptimeSeconds:           int64(s.now().Sub(s.startedAt).Seconds()),
		ValidationErrors:        s.validationErrors.Load(),
		Timeouts:                s.timeouts.Load(),
		CandidatesScored:        s.candidatesScored.Load(),
		CandidatesExcluded:      s.candidatesExcluded.Load(),
	}
}

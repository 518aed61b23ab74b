// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
	"github.com/TheACJ/SkillBridge-sub000/internal/metrics"
)

// DefaultReportInterval is used when StatsReporterConfig.Interval is unset.
const DefaultReportInterval = time.Minute

// StatsSource exposes engine counters. *matching.Engine satisfies it.
type StatsSource interface {
	Stats() matching.StatsSnapshot
}

// StatsReporterConfig holds configuration for the stats reporter.
type StatsReporterConfig struct {
	// Interval between reports.
	Interval time.Duration

	// LogSnapshots writes each snapshot at info level. When false the
	// reporter only refreshes gauges.
	LogSnapshots bool
}

// StatsReporter periodically copies engine counters into Prometheus
// gauges and the log.
type StatsReporter struct {
	source StatsSource
	config StatsReporterConfig
	logger zerolog.Logger
	name   string
}

// NewStatsReporter creates a stats reporter.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStatsReporter(source StatsSource, cfg StatsReporterConfig, logger zerolog.Logger) *StatsReporter {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultReportInterval
	}
	return &StatsReporter{
		source: source,
		config: cfg,
		logger: logger.With().Str("service", "stats-reporter").Logger(),
		name:   "stats-reporter",
	}
}

// Serve implements suture.Service. It reports once on start and then on
// every tick until ctx is canceled.
func (s *StatsReporter) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.config.Interval).Msg("stats reporter starting")

	s.report()

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.report()
			return ctx.Err()
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *StatsReporter) report() {
	snap := s.source.Stats()

	var total uint64
	if snap.TotalRequests > 0 {
		total = uint64(snap.TotalRequests)
	}
	metrics.UpdateEngineStats(total, snap.AverageProcessingTimeMS, float64(snap.UptimeSeconds))

	if !s.config.LogSnapshots {
		return
	}
	s.logger.Info().
		Int64("total_requests", snap.TotalRequests).
		Float64("avg_processing_ms", snap.AverageProcessingTimeMS).
		Int64("validation_errors", snap.ValidationErrors).
		Int64("timeouts", snap.Timeouts).
		Int64("candidates_scored", snap.CandidatesScored).
		Int64("candidates_excluded", snap.CandidatesExcluded).
		Int64("uptime_seconds", snap.UptimeSeconds).
		Msg("engine stats")
}

func (s *StatsReporter) String() string {
	return s.name
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
)

// candidateScorer runs the per-candidate pipeline up to, but excluding,
// ranking.
type candidateScorer func(l *NormalizedLearner, m *MentorProfile) (Match, error)

// RequestValidator checks a request before the engine's own validation.
// A non-nil error rejects the request and is counted as a validation
// error. Errors that are not already a *ValidationError are wrapped in one.
type RequestValidator func(req *MatchRequest) error

// Engine scores and ranks mentor candidates for a learner.
// It is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	workers int
	stats   *Stats
	score   candidateScorer

	validate RequestValidator
}

// NewEngine creates a new matching engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg = cfg.Clone()
	return &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "matching").Logger(),
		workers: cfg.workerCount(),
		stats:   NewStats(),
		score:   scoreCandidate,
	}, nil
}

// SetRequestValidator installs an additional request check, typically
// struct-tag validation from the transport layer. It must be called before
// the engine is shared between goroutines.
func (e *Engine) SetRequestValidator(v RequestValidator) {
	e.validate = v
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// Stats returns a snapshot of the process-wide counters.
func (e *Engine) Stats() StatsSnapshot {
	return e.stats.Snapshot()
}

// Match scores every mentor in req against the learner and returns the
// ranked top matches. Validation failures return a *ValidationError and
// nothing is scored. Exceeding the configured timeout returns ErrTimeout.
func (e *Engine) Match(ctx context.Context, req *MatchRequest) (*MatchResponse, error) {
	start := time.Now()
	defer func() {
		e.stats.recordRequest(time.Since(start))
	}()

	learner, limit, err := e.prepareRequest(req)
	if err != nil {
		e.stats.recordValidationError()
		return nil, err
	}

	logger := e.createRequestLogger(ctx, learner, len(req.Mentors), limit)
	logger.Debug().Msg("processing match request")

	ctx, cancel := context.WithTimeout(ctx, e.config.Limits.Timeout)
	defer cancel()

	scored, excluded, err := e.scorePool(ctx, learner, req.Mentors, logger)
	if err != nil {
		return nil, e.classifyError(err, logger)
	}
	e.stats.recordCandidates(len(scored), excluded)

	matches := Rank(scored, limit)
	resp := &MatchResponse{
		Matches:            matches,
		ProcessingTimeMS:   elapsedMS(start),
		AlgorithmVersion:   AlgorithmVersion,
		CandidatesExcluded: excluded,
	}

	logger.Debug().
		Int("scored", len(scored)).
		Int("excluded", excluded).
		Int("returned", len(matches)).
		Float64("latency_ms", resp.ProcessingTimeMS).
		Msg("match complete")

	return resp, nil
}

// prepareRequest validates the request and resolves the effective limit.
func (e *Engine) prepareRequest(req *MatchRequest) (*NormalizedLearner, int, error) {
	if req == nil {
		return nil, 0, newValidationError("request", "is required")
	}

	if e.validate != nil {
		if err := e.validate(req); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				return nil, 0, err
			}
			return nil, 0, &ValidationError{Field: "request", Message: err.Error(), Err: err}
		}
	}

	limit := e.config.Limits.DefaultLimit
	if req.Limit != nil {
		if *req.Limit < 1 {
			return nil, 0, newValidationError("limit", "must be at least 1, got %d", *req.Limit)
		}
		limit = min(*req.Limit, e.config.Limits.MaxLimit)
	}

	if n := len(req.Mentors); n > e.config.Limits.MaxCandidates {
		return nil, 0, newValidationError("mentors",
			"pool of %d exceeds maximum of %d", n, e.config.Limits.MaxCandidates)
	}

	learner, err := NormalizeLearner(req.Learner)
	if err != nil {
		return nil, 0, err
	}
	return learner, limit, nil
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) createRequestLogger(ctx context.Context, l *NormalizedLearner, pool, limit int) zerolog.Logger {
	logCtx := e.logger.With().
		Str("learner_id", l.ID.String()).
		Int("pool_size", pool).
		Int("limit", limit)
	if requestID := logging.RequestIDFromContext(ctx); requestID != "" {
		logCtx = logCtx.Str("request_id", requestID)
	}
	return logCtx.Logger()
}

// scorePool fans the pool out over the worker limit. Results land in the
// slot of their input index and are compacted in input order, so the
// returned slice is independent of completion order.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) scorePool(ctx context.Context, l *NormalizedLearner, mentors []MentorProfile, logger zerolog.Logger) ([]Match, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if len(mentors) == 0 {
		return []Match{}, 0, nil
	}

	slots := make([]Match, len(mentors))
	ok := make([]bool, len(mentors))
	var excluded atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	batch := batchSize(len(mentors), e.workers)
	for lo := 0; lo < len(mentors); lo += batch {
		hi := min(lo+batch, len(mentors))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				m, err := e.scoreSafely(l, &mentors[i])
				if err != nil {
					excluded.Add(1)
					logger.Warn().
						Err(err).
						Int("index", i).
						Str("mentor_id", mentors[i].ID.String()).
						Msg("excluding candidate")
					continue
				}
				slots[i] = m
				ok[i] = true
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	scored := make([]Match, 0, len(mentors))
	for i := range slots {
		if ok[i] {
			scored = append(scored, slots[i])
		}
	}
	return scored, int(excluded.Load()), nil
}

// scoreSafely converts a panic in one candidate's pipeline into an error.
func (e *Engine) scoreSafely(l *NormalizedLearner, m *MentorProfile) (match Match, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrCandidatePanic, r)
		}
	}()
	return e.score(l, m)
}

// classifyError maps context errors onto the engine's error taxonomy.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func (e *Engine) classifyError(err error, logger zerolog.Logger) error {
	if errors.Is(err, context.DeadlineExceeded) {
		e.stats.recordTimeout()
		logger.Warn().Dur("timeout", e.config.Limits.Timeout).Msg("match timed out, discarding partial results")
		return fmt.Errorf("%w after %s", ErrTimeout, e.config.Limits.Timeout)
	}
	if errors.Is(err, context.Canceled) {
		logger.Debug().Msg("match canceled by caller")
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	logger.Debug().Err(err).Msg("match aborted")
	return fmt.Errorf("match aborted: %w", err)
}

// scoreCandidate is the default per-candidate pipeline.
func scoreCandidate(l *NormalizedLearner, p *MentorProfile) (Match, error) {
	m, err := NormalizeMentor(*p)
	if err != nil {
		return Match{}, err
	}
	factors := ComputeFactors(l, m)
	return Match{
		MentorID:             m.ID,
		Score:                Aggregate(factors),
		CompatibilityFactors: factors,
	}, nil
}

// batchSize splits n candidates into roughly four batches per worker.
func batchSize(n, workers int) int {
	chunks := max(1, workers*4)
	return max(1, (n+chunks-1)/chunks)
}

func elapsedMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Match outcomes used as the "outcome" label.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeTimeout = "timeout"
	OutcomeError   = "error"
	// OutcomeCanceled marks requests abandoned by the caller before scoring finished.
	OutcomeCanceled = "canceled"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Matching Metrics
	MatchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_requests_total",
			Help: "Total number of match requests by outcome",
		},
		[]string{"outcome"},
	)

	MatchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_duration_seconds",
			Help:    "Matching engine processing time in seconds",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 5},
		},
	)

	MatchPoolSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_pool_size",
			Help:    "Number of candidate mentors per match request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8), // 1 .. 16384
		},
	)

	MatchCandidatesScored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_candidates_scored_total",
			Help: "Total number of mentors scored",
		},
	)

	MatchCandidatesExcluded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "match_candidates_excluded_total",
			Help: "Total number of mentors excluded as malformed",
		},
	)

	EngineRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "match_engine_requests",
			Help: "Requests handled by the matching engine since start",
		},
	)

	EngineAvgProcessingMS = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "match_engine_avg_processing_ms",
			Help: "Mean engine processing time in milliseconds",
		},
	)

	// Remote Client Metrics
	ClientRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_client_requests_total",
			Help: "Total number of remote matching service calls",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	ClientFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "match_client_fallbacks_total",
			Help: "Total number of requests served by the local engine after a remote failure",
		},
		[]string{"reason"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordMatch records one completed match request.
func RecordMatch(poolSize, returned, excluded int, duration time.Duration) {
	MatchRequestsTotal.WithLabelValues(OutcomeSuccess).Inc()
	MatchDuration.Observe(duration.Seconds())
	MatchPoolSize.Observe(float64(poolSize))
	MatchCandidatesScored.Add(float64(poolSize - excluded))
	MatchCandidatesExcluded.Add(float64(excluded))
}

// RecordMatchFailure records a match request that did not produce a response.
// Unknown outcomes are counted as errors.
func RecordMatchFailure(outcome string) {
	switch outcome {
	case OutcomeInvalid, OutcomeTimeout, OutcomeError, OutcomeCanceled:
	default:
		outcome = OutcomeError
	}
	MatchRequestsTotal.WithLabelValues(outcome).Inc()
}

// UpdateEngineStats publishes an engine stats snapshot.
func UpdateEngineStats(totalRequests uint64, avgProcessingMS, uptimeSeconds float64) {
	EngineRequests.Set(float64(totalRequests))
	EngineAvgProcessingMS.Set(avgProcessingMS)
	AppUptime.Set(uptimeSeconds)
}

// RecordClientRequest records a remote call result: success, failure or rejected.
func RecordClientRequest(breaker, result string) {
	ClientRequestsTotal.WithLabelValues(result).Inc()
	CircuitBreakerRequests.WithLabelValues(breaker, result).Inc()
}

// RecordFallback counts a request served locally after the remote path failed.
func RecordFallback(reason string) {
	ClientFallbacks.WithLabelValues(reason).Inc()
}

// RecordBreakerTransition records a circuit breaker state change. state is
// the numeric value of the new state.
func RecordBreakerTransition(name, from, to string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

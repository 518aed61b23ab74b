// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package metrics provides Prometheus metrics for the matching service.

All collectors are registered on the default registry through promauto and
exposed by the HTTP server at /metrics.

# Available Metrics

HTTP:
  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests
  - api_rate_limit_hits_total{endpoint}

Matching:
  - match_requests_total{outcome}: success, invalid, timeout, error
  - match_duration_seconds: engine latency for completed matches
  - match_pool_size: candidate pool size per request
  - match_candidates_scored_total, match_candidates_excluded_total
  - match_engine_requests, match_engine_avg_processing_ms: engine stats
    snapshot published by the stats reporter

Remote client:
  - match_client_requests_total{result}
  - match_client_fallbacks_total{reason}
  - circuit_breaker_state{name}: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total{name,result}
  - circuit_breaker_state_transitions_total{name,from_state,to_state}

Process:
  - app_info{version,go_version}
  - app_uptime_seconds
*/
package metrics

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package middleware provides HTTP middleware for the matching service.

Key Components:

  - RequestID: propagates or generates X-Request-ID and stores it in the
    logging context so every log line for a request carries request_id
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - AccessLog: per-request debug logging with a warning for slow requests

All middleware use the http.HandlerFunc wrapping form. The API router adapts
them to chi's func(http.Handler) http.Handler signature.
*/
package middleware

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package middleware

import (
	"net/http"
	"time"

	"github.com/TheACJ/SkillBridge-sub000/internal/logging"
)

// DefaultSlowThreshold is the latency above which AccessLog warns.
const DefaultSlowThreshold = time.Second

// AccessLog returns middleware that logs every request at debug level and
// requests slower than threshold at warn level. A non-positive threshold
// selects DefaultSlowThreshold.
func AccessLog(threshold time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	if threshold <= 0 {
		threshold = DefaultSlowThreshold
	}

	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			event := logger.Debug()
			msg := "request completed"
			if duration > threshold {
				event = logger.Warn().Dur("threshold", threshold)
				msg = "Slow request detected"
			}

			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapper.statusCode).
				Float64("duration_ms", float64(duration.Microseconds())/1000).
				Msg(msg)
		}
	}
}

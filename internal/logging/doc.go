// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

// Package logging provides the zerolog-based structured logging used across
// the matching service.
//
// # Overview
//
// The package provides:
//   - A process-wide zerolog logger configured once from main via Init
//   - JSON output for production, console output for development
//   - Request ID propagation through context.Context
//   - An slog.Handler bridge so suture's sutureslog hook logs through zerolog
//   - MatchLogger, a domain logger for match outcomes and client fallbacks
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("addr", addr).Msg("matching service listening")
//	logging.Ctx(ctx).Warn().Err(err).Msg("remote matcher unavailable")
//
// # Configuration
//
// Environment Variables (mapped by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// Always terminate event chains with .Msg() or .Send(); an unterminated
// chain is never written.
package logging

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built once and shared. Field errors are
// reported by their JSON path (for example "learner.availability") so the
// messages line up with the request body a client sent.
//
// # Usage
//
//	var req matching.MatchRequest
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, r, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// # Custom Tags
//
//   - experience_level: value must name a known learner experience level
//     (beginner, intermediate, advanced; case-insensitive)
//
// Mentor entries are deliberately not validated here. Malformed mentors are
// excluded from ranking by the matching engine rather than failing the request.
package validation

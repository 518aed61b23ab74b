// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

// Package matching implements the mentor-learner compatibility engine.
//
// # Pipeline
//
// Every mentor in a request's candidate pool runs through the same pipeline:
//
//	normalize -> five factor scorers -> weighted aggregate -> rank -> reasoning
//
// The factor scorers are:
//
//   - Skill overlap: Jaccard similarity of learner skills and goals against mentor expertise
//   - Location match: exact comparison of normalized locations
//   - Availability match: min/max ratio of weekly hours
//   - Experience compatibility: distance from the ideal band for the learner's level
//   - Teaching style match: fixed compatibility table
//
// Weights are package constants (see WeightSkillOverlap and friends) and are
// never configurable per request, so scores stay comparable across requests.
//
// # Concurrency
//
// Engine.Match fans candidates out to a bounded errgroup. Each worker writes
// into the slot of its candidate's input index, so completion order never
// influences the ranking. A panic or malformed record in one candidate
// excludes only that candidate. A request that exceeds the configured
// timeout fails with ErrTimeout and all partial results are discarded.
//
// # Usage
//
//	engine, err := matching.NewEngine(matching.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Match(ctx, &matching.MatchRequest{
//	    Learner: learner,
//	    Mentors: mentors,
//	})
//
// # Statistics
//
// The engine keeps process-wide atomic counters (request count, average
// latency, exclusions). They are advisory and never feed back into scoring.
package matching

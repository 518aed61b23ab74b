// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

/*
Package services provides suture.Service wrappers for the matching service.

  - HTTPService runs an *http.Server and drains it on context cancellation.
  - StatsReporter copies engine counters into Prometheus gauges on a ticker
    and optionally logs each snapshot.

Every wrapper implements fmt.Stringer so supervisor events name the service.
*/
package services

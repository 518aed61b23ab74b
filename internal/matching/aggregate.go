// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import "math"

// Factor weights. They sum to 1.0.
const (
	WeightSkillOverlap            = 0.40
	WeightLocationMatch           = 0.15
	WeightAvailabilityMatch       = 0.15
	WeightExperienceCompatibility = 0.15
	WeightTeachingStyleMatch      = 0.15
)

// Aggregate combines the factors into a score in [0, 100] rounded to one
// decimal place. Terms are summed in a fixed order so results are
// bit-identical across runs.
//
//nolint:gocritic // hugeParam: factors passed by value, never mutated
func Aggregate(f CompatibilityFactors) float64 {
	sum := WeightSkillOverlap * f.SkillOverlap
	sum += WeightLocationMatch * boolScore(f.LocationMatch)
	sum += WeightAvailabilityMatch * f.AvailabilityMatch
	sum += WeightExperienceCompatibility * f.ExperienceCompatibility
	sum += WeightTeachingStyleMatch * f.TeachingStyleMatch

	score := math.Round(sum*1000) / 10
	return math.Min(100, math.Max(0, score))
}

func boolScore(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"fmt"
	"sort"
	"strings"
)

// NotableThreshold is the sub-score a factor must reach to be named.
const NotableThreshold = 0.7

// maxReasons caps how many factors a reasoning string names.
const maxReasons = 2

// moderateReason is used when no factor is notable.
const moderateReason = "Moderate overall compatibility"

type reasonCandidate struct {
	label  string
	weight float64
	value  float64
}

// GenerateReasoning names up to two notable factors, highest weighted
// contribution first, and prefixes the candidate's 1-based rank.
// The output is advisory text and must not be parsed.
//
//nolint:gocritic // hugeParam: factors passed by value, never mutated
func GenerateReasoning(f CompatibilityFactors, rank int) string {
	// declaration order is the tie-break for equal contributions
	candidates := []reasonCandidate{
		{"Excellent skill alignment", WeightSkillOverlap, f.SkillOverlap},
		{"Location match", WeightLocationMatch, boolScore(f.LocationMatch)},
		{"Availability compatibility", WeightAvailabilityMatch, f.AvailabilityMatch},
		{"Experience level match", WeightExperienceCompatibility, f.ExperienceCompatibility},
		{"Teaching style match", WeightTeachingStyleMatch, f.TeachingStyleMatch},
	}

	notable := candidates[:0]
	for _, c := range candidates {
		if c.value >= NotableThreshold {
			notable = append(notable, c)
		}
	}
	sort.SliceStable(notable, func(i, j int) bool {
		return notable[i].weight*notable[i].value > notable[j].weight*notable[j].value
	})
	if len(notable) > maxReasons {
		notable = notable[:maxReasons]
	}

	if len(notable) == 0 {
		return fmt.Sprintf("Rank %d match: %s", rank, moderateReason)
	}
	labels := make([]string, len(notable))
	for i, c := range notable {
		labels[i] = c.label
	}
	return fmt.Sprintf("Rank %d match: %s", rank, strings.Join(labels, ", "))
}

// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import "sort"

// Rank orders matches by score, descending, truncates to limit and fills in
// each survivor's reasoning. Equal scores keep their input order. The input
// slice is reordered in place. The result is never nil.
func Rank(matches []Match, limit int) []Match {
	if len(matches) == 0 || limit <= 0 {
		return []Match{}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	for i := range matches {
		matches[i].Reasoning = GenerateReasoning(matches[i].CompatibilityFactors, i+1)
	}
	return matches
}

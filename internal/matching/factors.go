// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import "math"

// experienceBand is the ideal mentor-experience range [lower, upper).
// An unbounded band has no upper edge.
type experienceBand struct {
	lower     int
	upper     int
	unbounded bool
}

var experienceBands = map[ExperienceLevel]experienceBand{
	LevelBeginner:     {lower: 1, upper: 4},
	LevelIntermediate: {lower: 3, upper: 8},
	LevelAdvanced:     {lower: 5, unbounded: true},
}

// experienceDecayPerYear is the score lost per year outside the band.
const experienceDecayPerYear = 0.25

// neutralStyleScore is used for unlisted pairs and unspecified styles.
const neutralStyleScore = 0.25

type stylePair struct {
	a, b TeachingStyle
}

// styleAffinity lists partial-credit pairs. Lookups try both orders.
var styleAffinity = map[stylePair]float64{
	{StyleStructured, StyleProjectBased}: 0.5,
	{StyleFlexible, StyleSocratic}:       0.5,
}

// ComputeFactors runs all five scorers for one pair.
func ComputeFactors(l *NormalizedLearner, m *NormalizedMentor) CompatibilityFactors {
	return CompatibilityFactors{
		SkillOverlap:            SkillOverlap(l.Wanted, m.Expertise),
		LocationMatch:           LocationMatch(l.Location, m.Location),
		AvailabilityMatch:       AvailabilityMatch(l.Availability, m.Availability),
		ExperienceCompatibility: ExperienceCompatibility(l.Level, m.ExperienceYears),
		TeachingStyleMatch:      TeachingStyleMatch(l.Style, m.Style),
	}
}

// SkillOverlap is the Jaccard similarity |A∩B| / |A∪B|.
// An empty union scores 0.
func SkillOverlap(wanted, expertise TokenSet) float64 {
	small, large := wanted, expertise
	if len(small) > len(large) {
		small, large = large, small
	}
	inter := 0
	for tok := range small {
		if large.Has(tok) {
			inter++
		}
	}
	union := len(wanted) + len(expertise) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// LocationMatch requires both locations to be set and equal.
func LocationMatch(learner, mentor string) bool {
	return learner != "" && learner == mentor
}

// AvailabilityMatch is the symmetric ratio of weekly hours.
func AvailabilityMatch(learnerHours, mentorHours int) float64 {
	switch {
	case learnerHours == 0 && mentorHours == 0:
		return 1
	case learnerHours <= 0 || mentorHours <= 0:
		return 0
	}
	lo, hi := learnerHours, mentorHours
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo) / float64(hi)
}

// ExperienceCompatibility scores mentor years against the learner level's
// ideal band, decaying linearly outside it and flooring at 0.
func ExperienceCompatibility(level ExperienceLevel, years int) float64 {
	band, ok := experienceBands[level]
	if !ok {
		return 0
	}

	var distance int
	switch {
	case years < band.lower:
		distance = band.lower - years
	case !band.unbounded && years >= band.upper:
		// distance from the last whole year inside the band
		distance = years - (band.upper - 1)
	default:
		return 1
	}
	return math.Max(0, 1-experienceDecayPerYear*float64(distance))
}

// TeachingStyleMatch looks the pair up in the compatibility table.
func TeachingStyleMatch(learner, mentor TeachingStyle) float64 {
	if learner == StyleUnspecified || mentor == StyleUnspecified {
		return neutralStyleScore
	}
	if learner == mentor {
		return 1
	}
	if v, ok := styleAffinity[stylePair{learner, mentor}]; ok {
		return v
	}
	if v, ok := styleAffinity[stylePair{mentor, learner}]; ok {
		return v
	}
	return neutralStyleScore
}

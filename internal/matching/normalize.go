// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"strings"

	"github.com/google/uuid"
)

// TokenSet is a set of normalized tokens.
type TokenSet map[string]struct{}

// NewTokenSet lower-cases and trims every token, drops empties and
// collapses duplicates.
func NewTokenSet(raw ...[]string) TokenSet {
	size := 0
	for _, r := range raw {
		size += len(r)
	}
	set := make(TokenSet, size)
	for _, r := range raw {
		for _, tok := range r {
			if t := normalizeToken(tok); t != "" {
				set[t] = struct{}{}
			}
		}
	}
	return set
}

// Has reports whether tok is in the set. tok must already be normalized.
func (s TokenSet) Has(tok string) bool {
	_, ok := s[tok]
	return ok
}

func normalizeToken(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizedLearner is a learner profile in comparable form.
type NormalizedLearner struct {
	ID           uuid.UUID
	Wanted       TokenSet // skills ∪ learning goals
	Location     string
	Availability int
	Level        ExperienceLevel
	Style        TeachingStyle
}

// NormalizedMentor is a mentor profile in comparable form.
type NormalizedMentor struct {
	ID              uuid.UUID
	Expertise       TokenSet
	Location        string
	Availability    int
	ExperienceYears int
	Rating          float64
	HourlyRate      float64
	Style           TeachingStyle
}

// NormalizeLearner validates p and returns its normalized form.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func NormalizeLearner(p LearnerProfile) (*NormalizedLearner, error) {
	if p.ID == uuid.Nil {
		return nil, newValidationError("learner.id", "is required")
	}
	if p.Availability < 0 {
		return nil, newValidationError("learner.availability", "must be non-negative, got %d", p.Availability)
	}
	level, ok := ParseExperienceLevel(p.ExperienceLevel)
	if !ok {
		return nil, newValidationError("learner.experience_level",
			"must be one of beginner, intermediate, advanced, got %q", p.ExperienceLevel)
	}

	return &NormalizedLearner{
		ID:           p.ID,
		Wanted:       NewTokenSet(p.Skills, p.LearningGoals),
		Location:     normalizeToken(p.Location),
		Availability: p.Availability,
		Level:        level,
		Style:        ParseTeachingStyle(p.PreferredTeachingStyle),
	}, nil
}

// NormalizeMentor validates p and returns its normalized form.
//
//nolint:gocritic // hugeParam: profile passed by value for immutability
func NormalizeMentor(p MentorProfile) (*NormalizedMentor, error) {
	switch {
	case p.ID == uuid.Nil:
		return nil, newValidationError("mentor.id", "is required")
	case p.Availability < 0:
		return nil, newValidationError("mentor.availability", "must be non-negative, got %d", p.Availability)
	case p.ExperienceYears < 0:
		return nil, newValidationError("mentor.experience_years", "must be non-negative, got %d", p.ExperienceYears)
	case p.Rating < 0 || p.Rating > 5:
		return nil, newValidationError("mentor.rating", "must be between 0 and 5, got %g", p.Rating)
	case p.HourlyRate < 0:
		return nil, newValidationError("mentor.hourly_rate", "must be non-negative, got %g", p.HourlyRate)
	}

	return &NormalizedMentor{
		ID:              p.ID,
		Expertise:       NewTokenSet(p.Expertise),
		Location:        normalizeToken(p.Location),
		Availability:    p.Availability,
		ExperienceYears: p.ExperienceYears,
		Rating:          p.Rating,
		HourlyRate:      p.HourlyRate,
		Style:           ParseTeachingStyle(p.TeachingStyle),
	}, nil
}

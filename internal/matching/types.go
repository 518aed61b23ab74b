// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// AlgorithmVersion is reported in every response so callers can detect
// scoring changes across deployments.
const AlgorithmVersion = "1.0.0"

// ExperienceLevel is the learner's self-declared level.
type ExperienceLevel string

const (
	// LevelBeginner prefers mentors with 1-3 years of experience.
	LevelBeginner ExperienceLevel = "beginner"
	// LevelIntermediate prefers mentors with 3-7 years of experience.
	LevelIntermediate ExperienceLevel = "intermediate"
	// LevelAdvanced prefers mentors with 5 or more years of experience.
	LevelAdvanced ExperienceLevel = "advanced"
)

// String returns the wire name of the level.
func (l ExperienceLevel) String() string {
	return string(l)
}

// ParseExperienceLevel parses a level case-insensitively.
func ParseExperienceLevel(raw string) (ExperienceLevel, bool) {
	switch ExperienceLevel(strings.ToLower(strings.TrimSpace(raw))) {
	case LevelBeginner:
		return LevelBeginner, true
	case LevelIntermediate:
		return LevelIntermediate, true
	case LevelAdvanced:
		return LevelAdvanced, true
	default:
		return "", false
	}
}

// TeachingStyle is the closed set of teaching styles.
type TeachingStyle string

const (
	StyleStructured   TeachingStyle = "structured"
	StyleFlexible     TeachingStyle = "flexible"
	StyleProjectBased TeachingStyle = "project_based"
	StyleSocratic     TeachingStyle = "socratic"
	StyleUnspecified  TeachingStyle = "unspecified"
)

// String returns the wire name of the style.
func (s TeachingStyle) String() string {
	return string(s)
}

var styleReplacer = strings.NewReplacer("-", "_", " ", "_")

// ParseTeachingStyle maps free text onto the closed enum. Unrecognized
// values, including the empty string, map to StyleUnspecified.
func ParseTeachingStyle(raw string) TeachingStyle {
	s := styleReplacer.Replace(strings.ToLower(strings.TrimSpace(raw)))
	switch s {
	case "structured":
		return StyleStructured
	case "flexible":
		return StyleFlexible
	case "project_based", "hands_on":
		return StyleProjectBased
	case "socratic":
		return StyleSocratic
	default:
		return StyleUnspecified
	}
}

// LearnerProfile describes the learner a match is computed for.
type LearnerProfile struct {
	// ID identifies the learner. It must not be the nil UUID.
	ID uuid.UUID `json:"id" validate:"required"`

	// Skills the learner already has.
	Skills []string `json:"skills"`

	// LearningGoals are skills the learner wants to acquire.
	LearningGoals []string `json:"learning_goals"`

	// Location is compared exactly after normalization.
	Location string `json:"location"`

	// Availability is the requested weekly hours.
	Availability int `json:"availability" validate:"gte=0"`

	// ExperienceLevel is one of beginner, intermediate or advanced.
	ExperienceLevel string `json:"experience_level" validate:"required,experience_level"`

	// PreferredLanguages are carried through normalization but not scored.
	PreferredLanguages []string `json:"preferred_languages"`

	// PreferredTeachingStyle is optional. Empty means unspecified.
	PreferredTeachingStyle string `json:"preferred_teaching_style,omitempty"`
}

// MentorProfile describes one candidate in the pool.
type MentorProfile struct {
	ID              uuid.UUID `json:"id"`
	Expertise       []string  `json:"expertise"`
	Location        string    `json:"location"`
	Availability    int       `json:"availability"`
	ExperienceYears int       `json:"experience_years"`
	Rating          float64   `json:"rating"`
	HourlyRate      float64   `json:"hourly_rate"`
	TeachingStyle   string    `json:"teaching_style"`
}

// UnmarshalJSON decodes a mentor without failing on its id. A missing,
// null, empty or non-UUID id decodes to uuid.Nil, which NormalizeMentor
// rejects, so one bad record is excluded instead of failing the request.
func (p *MentorProfile) UnmarshalJSON(data []byte) error {
	var wire struct {
		ID              json.RawMessage `json:"id"`
		Expertise       []string        `json:"expertise"`
		Location        string          `json:"location"`
		Availability    int             `json:"availability"`
		ExperienceYears int             `json:"experience_years"`
		Rating          float64         `json:"rating"`
		HourlyRate      float64         `json:"hourly_rate"`
		TeachingStyle   string          `json:"teaching_style"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	*p = MentorProfile{
		ID:              parseMentorID(wire.ID),
		Expertise:       wire.Expertise,
		Location:        wire.Location,
		Availability:    wire.Availability,
		ExperienceYears: wire.ExperienceYears,
		Rating:          wire.Rating,
		HourlyRate:      wire.HourlyRate,
		TeachingStyle:   wire.TeachingStyle,
	}
	return nil
}

func parseMentorID(raw json.RawMessage) uuid.UUID {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil {
		return uuid.Nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// CompatibilityFactors holds the five bounded sub-scores for one pair.
type CompatibilityFactors struct {
	SkillOverlap            float64 `json:"skill_overlap"`
	LocationMatch           bool    `json:"location_match"`
	AvailabilityMatch       float64 `json:"availability_match"`
	ExperienceCompatibility float64 `json:"experience_compatibility"`
	TeachingStyleMatch      float64 `json:"teaching_style_match"`
}

// Match is one scored candidate.
type Match struct {
	MentorID             uuid.UUID            `json:"mentor_id"`
	Score                float64              `json:"score"`
	Reasoning            string               `json:"reasoning"`
	CompatibilityFactors CompatibilityFactors `json:"compatibility_factors"`
}

// MatchRequest is the input of Engine.Match.
type MatchRequest struct {
	// Learner is the profile candidates are scored against.
	Learner LearnerProfile `json:"learner" validate:"required"`

	// Mentors is the candidate pool. Input order breaks score ties.
	Mentors []MentorProfile `json:"mentors"`

	// Limit caps the number of returned matches. Nil selects the
	// configured default; values above the configured maximum are clamped.
	Limit *int `json:"limit,omitempty" validate:"omitempty,gte=1"`
}

// MatchResponse is the output of Engine.Match.
type MatchResponse struct {
	// Matches is ranked by score, descending. Never nil.
	Matches []Match `json:"matches"`

	// ProcessingTimeMS is wall-clock time spent in the engine.
	ProcessingTimeMS float64 `json:"processing_time_ms"`

	// AlgorithmVersion identifies the scoring formulas in use.
	AlgorithmVersion string `json:"algorithm_version"`

	// CandidatesExcluded counts mentors dropped because their record was
	// malformed or their scoring failed.
	CandidatesExcluded int `json:"candidates_excluded"`
}

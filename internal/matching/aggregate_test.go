// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"math"
	"testing"
)

func TestWeightsSumToOne(t *testing.T) {
	sum := WeightSkillOverlap + WeightLocationMatch + WeightAvailabilityMatch +
		WeightExperienceCompatibility + WeightTeachingStyleMatch
	if math.Abs(sum-1.0) > 1e-12 {
		t.Errorf("weights sum to %v, want 1.0", sum)
	}
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		factors CompatibilityFactors
		want    float64
	}{
		{
			name: "all perfect",
			factors: CompatibilityFactors{
				SkillOverlap: 1, LocationMatch: true, AvailabilityMatch: 1,
				ExperienceCompatibility: 1, TeachingStyleMatch: 1,
			},
			want: 100,
		},
		{
			name:    "all zero",
			factors: CompatibilityFactors{},
			want:    0,
		},
		{
			name:    "skill only",
			factors: CompatibilityFactors{SkillOverlap: 1},
			want:    40,
		},
		{
			name:    "location only",
			factors: CompatibilityFactors{LocationMatch: true},
			want:    15,
		},
		{
			name:    "half experience only",
			factors: CompatibilityFactors{ExperienceCompatibility: 0.5},
			want:    7.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.factors)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Aggregate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregate_OneDecimal(t *testing.T) {
	f := CompatibilityFactors{
		SkillOverlap:            1.0 / 3.0,
		AvailabilityMatch:       2.0 / 7.0,
		ExperienceCompatibility: 0.75,
		TeachingStyleMatch:      0.5,
	}
	got := Aggregate(f)
	if scaled := got * 10; math.Abs(scaled-math.Round(scaled)) > 1e-9 {
		t.Errorf("Aggregate() = %v, want one decimal place", got)
	}
}

func TestAggregate_Bounds(t *testing.T) {
	values := []float64{0, 0.1, 0.25, 0.5, 2.0 / 3.0, 0.75, 0.9, 1}
	for _, s := range values {
		for _, a := range values {
			for _, loc := range []bool{false, true} {
				got := Aggregate(CompatibilityFactors{
					SkillOverlap: s, LocationMatch: loc, AvailabilityMatch: a,
					ExperienceCompatibility: s, TeachingStyleMatch: a,
				})
				if got < 0 || got > 100 {
					t.Fatalf("Aggregate() = %v out of [0,100]", got)
				}
			}
		}
	}
}

func TestAggregate_Monotonic(t *testing.T) {
	base := CompatibilityFactors{SkillOverlap: 0.5, AvailabilityMatch: 0.5, ExperienceCompatibility: 0.5, TeachingStyleMatch: 0.5}
	better := base
	better.SkillOverlap = 0.8
	if Aggregate(better) <= Aggregate(base) {
		t.Errorf("raising a factor should raise the score: %v <= %v", Aggregate(better), Aggregate(base))
	}
}

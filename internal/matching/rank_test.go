// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package matching

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func scoredMatches(scores ...float64) ([]Match, []uuid.UUID) {
	matches := make([]Match, len(scores))
	ids := make([]uuid.UUID, len(scores))
	for i, s := range scores {
		ids[i] = uuid.New()
		matches[i] = Match{MentorID: ids[i], Score: s}
	}
	return matches, ids
}

func TestRank_SortsDescending(t *testing.T) {
	matches, ids := scoredMatches(10, 90, 50)

	got := Rank(matches, 10)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []uuid.UUID{ids[1], ids[2], ids[0]}
	for i := range want {
		if got[i].MentorID != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i].MentorID, want[i])
		}
	}
}

func TestRank_StableTies(t *testing.T) {
	matches, ids := scoredMatches(70, 80, 70, 80, 70)

	got := Rank(matches, 10)
	want := []uuid.UUID{ids[1], ids[3], ids[0], ids[2], ids[4]}
	for i := range want {
		if got[i].MentorID != want[i] {
			t.Errorf("position %d = %s, want %s", i, got[i].MentorID, want[i])
		}
	}
}

func TestRank_Truncates(t *testing.T) {
	matches, ids := scoredMatches(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	got := Rank(matches, 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].MentorID != ids[9] {
		t.Errorf("top = %s, want highest-scoring %s", got[0].MentorID, ids[9])
	}
}

func TestRank_NeverPads(t *testing.T) {
	matches, _ := scoredMatches(5, 6)
	if got := Rank(matches, 20); len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestRank_Empty(t *testing.T) {
	got := Rank(nil, 5)
	if got == nil {
		t.Fatal("Rank(nil) returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestRank_AssignsReasoningByRank(t *testing.T) {
	matches, _ := scoredMatches(10, 20, 30)

	got := Rank(matches, 3)
	for i, m := range got {
		prefix := "Rank " + string(rune('1'+i)) + " match: "
		if !strings.HasPrefix(m.Reasoning, prefix) {
			t.Errorf("match %d reasoning = %q, want prefix %q", i, m.Reasoning, prefix)
		}
	}
}

package skillgraph

import (
	"errors"
	"testing"
)

func pathIDs(p Path) []string {
	ids := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		ids[i] = s.ID
	}
	return ids
}

func TestLearningPath_FullClosure(t *testing.T) {
	g := mustGraph(t)

	p, err := g.LearningPath("exponents", map[string]bool{})
	if err != nil {
		t.Fatal(err)
	}

	got := pathIDs(p)
	// Closure over all edge strengths pulls in subtraction through the
	// recommended edge into multiplication.
	want := []string{"counting", "addition", "subtraction", "multiplication", "exponents"}
	if len(got) != len(want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}

	// 10 + 20 + 20 + 40 + default 30.
	if p.TotalMinutes != 120 {
		t.Errorf("TotalMinutes = %d, want 120", p.TotalMinutes)
	}
	if len(p.ThresholdConcepts) != 1 || p.ThresholdConcepts[0] != "multiplication" {
		t.Errorf("ThresholdConcepts = %v, want [multiplication]", p.ThresholdConcepts)
	}
}

func TestLearningPath_SkipsMastered(t *testing.T) {
	g := mustGraph(t)

	p, err := g.LearningPath("exponents", map[string]bool{
		"counting": true, "addition": true, "subtraction": true,
	})
	if err != nil {
		t.Fatal(err)
	}
	got := pathIDs(p)
	want := []string{"multiplication", "exponents"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("path = %v, want %v", got, want)
	}
}

func TestLearningPath_GoalMastered(t *testing.T) {
	g := mustGraph(t)

	p, err := g.LearningPath("counting", map[string]bool{"counting": true})
	if err != nil {
		t.Fatal(err)
	}
	if len(p.Skills) != 0 {
		t.Errorf("path = %v, want empty for a mastered goal", pathIDs(p))
	}
}

func TestLearningPath_UnknownGoal(t *testing.T) {
	g := mustGraph(t)
	if _, err := g.LearningPath("calculus", nil); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("err = %v, want ErrSkillNotFound", err)
	}
}

func TestLearningPath_TieBreakAtEveryDequeue(t *testing.T) {
	// Two independent chains toward a shared goal. The low-Bloom chain
	// should interleave ahead of the high-Bloom one as its nodes free up.
	skills := []Skill{
		{ID: "goal", BloomLevel: 4, Difficulty: 5},
		{ID: "a1", BloomLevel: 1, Difficulty: 1},
		{ID: "a2", BloomLevel: 1, Difficulty: 2},
		{ID: "b1", BloomLevel: 3, Difficulty: 1},
	}
	prereqs := []Prerequisite{
		{FromID: "a1", ToID: "a2", Strength: StrengthRequired},
		{FromID: "a2", ToID: "goal", Strength: StrengthRequired},
		{FromID: "b1", ToID: "goal", Strength: StrengthRequired},
	}
	g, err := NewGraph(skills, prereqs)
	if err != nil {
		t.Fatal(err)
	}

	p, err := g.LearningPath("goal", nil)
	if err != nil {
		t.Fatal(err)
	}
	got := pathIDs(p)
	// a2 only becomes ready after a1; it still sorts before b1 by Bloom
	// level because the tie-break runs at each dequeue, not once up front.
	want := []string{"a1", "a2", "b1", "goal"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path = %v, want %v", got, want)
		}
	}
}

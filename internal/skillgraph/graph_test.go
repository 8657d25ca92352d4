package skillgraph

import (
	"errors"
	"strings"
	"testing"
)

// testSkills builds a small arithmetic-flavored graph:
//
//	counting -> addition -> multiplication -> exponents
//	               \-> subtraction
//	multiplication also recommends subtraction.
func testSkills() ([]Skill, []Prerequisite) {
	skills := []Skill{
		{ID: "counting", Name: "Counting", Difficulty: 1, BloomLevel: 1, EstimatedMins: 10},
		{ID: "addition", Name: "Addition", Difficulty: 2, BloomLevel: 2, EstimatedMins: 20},
		{ID: "subtraction", Name: "Subtraction", Difficulty: 3, BloomLevel: 2, EstimatedMins: 20},
		{ID: "multiplication", Name: "Multiplication", Difficulty: 5, BloomLevel: 3, EstimatedMins: 40, ThresholdConcept: true},
		{ID: "exponents", Name: "Exponents", Difficulty: 7, BloomLevel: 3},
	}
	prereqs := []Prerequisite{
		{FromID: "counting", ToID: "addition", Strength: StrengthRequired, Confidence: 0.95},
		{FromID: "addition", ToID: "subtraction", Strength: StrengthRequired, Confidence: 0.9},
		{FromID: "addition", ToID: "multiplication", Strength: StrengthRequired, Confidence: 0.9},
		{FromID: "subtraction", ToID: "multiplication", Strength: StrengthRecommended, Confidence: 0.6},
		{FromID: "multiplication", ToID: "exponents", Strength: StrengthRequired, Confidence: 0.85},
	}
	return skills, prereqs
}

func mustGraph(t *testing.T) *Graph {
	t.Helper()
	g, err := NewGraph(testSkills())
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewGraph_TopologicalOrder(t *testing.T) {
	g := mustGraph(t)

	order := g.TopologicalOrder()
	if len(order) != 5 {
		t.Fatalf("order has %d skills, want 5", len(order))
	}

	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	_, prereqs := testSkills()
	for _, e := range prereqs {
		if pos[e.FromID] >= pos[e.ToID] {
			t.Errorf("%s appears at %d, after its dependent %s at %d",
				e.FromID, pos[e.FromID], e.ToID, pos[e.ToID])
		}
	}
}

func TestNewGraph_Errors(t *testing.T) {
	skills, prereqs := testSkills()

	tests := []struct {
		name    string
		mutate  func(*[]Skill, *[]Prerequisite)
		wantMsg string
	}{
		{
			"duplicate id",
			func(s *[]Skill, p *[]Prerequisite) { *s = append(*s, Skill{ID: "addition", Name: "Again"}) },
			"duplicate skill id",
		},
		{
			"empty id",
			func(s *[]Skill, p *[]Prerequisite) { *s = append(*s, Skill{Name: "Nameless"}) },
			"empty id",
		},
		{
			"unknown edge target",
			func(s *[]Skill, p *[]Prerequisite) {
				*p = append(*p, Prerequisite{FromID: "addition", ToID: "calculus", Strength: StrengthRequired})
			},
			"unknown skill",
		},
		{
			"invalid strength",
			func(s *[]Skill, p *[]Prerequisite) {
				*p = append(*p, Prerequisite{FromID: "counting", ToID: "exponents", Strength: "mandatory"})
			},
			"invalid strength",
		},
		{
			"cycle",
			func(s *[]Skill, p *[]Prerequisite) {
				*p = append(*p, Prerequisite{FromID: "exponents", ToID: "counting", Strength: StrengthRequired})
			},
			"cycle",
		},
	}

	for _, tc := range tests {
		s, p := append([]Skill(nil), skills...), append([]Prerequisite(nil), prereqs...)
		tc.mutate(&s, &p)
		_, err := NewGraph(s, p)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.wantMsg) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.wantMsg)
		}
	}
}

func TestGraph_Lookups(t *testing.T) {
	g := mustGraph(t)

	s, err := g.Skill("multiplication")
	if err != nil {
		t.Fatal(err)
	}
	if !s.ThresholdConcept {
		t.Error("multiplication should be a threshold concept")
	}

	if _, err := g.Skill("calculus"); !errors.Is(err, ErrSkillNotFound) {
		t.Errorf("unknown skill: err = %v, want ErrSkillNotFound", err)
	}

	if got := len(g.Prerequisites("multiplication")); got != 2 {
		t.Errorf("multiplication has %d prerequisites, want 2", got)
	}
	if got := g.Dependents("addition"); len(got) != 2 {
		t.Errorf("addition has %d dependents, want 2", len(got))
	}
}

func TestSkill_Defaults(t *testing.T) {
	s := Skill{ID: "x", Difficulty: 12}
	if got := s.NormalizedDifficulty(); got != 1 {
		t.Errorf("NormalizedDifficulty capped = %v, want 1", got)
	}
	if got := s.Minutes(); got != DefaultEstimatedMins {
		t.Errorf("Minutes = %d, want default %d", got, DefaultEstimatedMins)
	}
	s = Skill{ID: "y", Difficulty: 4, EstimatedMins: 25}
	if got := s.NormalizedDifficulty(); got != 0.4 {
		t.Errorf("NormalizedDifficulty = %v, want 0.4", got)
	}
	if got := s.Minutes(); got != 25 {
		t.Errorf("Minutes = %d, want 25", got)
	}
}

package recommend

import (
	"math"
	"strings"
	"testing"

	"github.com/abhisek/tutorkit/internal/scaffold"
)

func f64(v float64) *float64 { return &v }

func TestDeriveAdjustments_ExpertiseBaseline(t *testing.T) {
	tests := []struct {
		expertise ExpertiseLevel
		wantLevel scaffold.Level
		wantDelta float64
	}{
		{ExpertiseNovice, scaffold.LevelWorkedExamples, -0.15},
		{ExpertiseIntermediate, scaffold.LevelGuidedPractice, -0.05},
		{ExpertiseAdvanced, scaffold.LevelHints, 0.05},
		{ExpertiseExpert, scaffold.LevelIndependent, 0.15},
	}

	for _, tc := range tests {
		adj := deriveAdjustments(Profile{Expertise: tc.expertise}, RecentPerformance{})
		if adj.ScaffoldLevel != tc.wantLevel {
			t.Errorf("%s: ScaffoldLevel = %d, want %d", tc.expertise, adj.ScaffoldLevel, tc.wantLevel)
		}
		if math.Abs(adj.DifficultyDelta-tc.wantDelta) > 1e-9 {
			t.Errorf("%s: DifficultyDelta = %v, want %v", tc.expertise, adj.DifficultyDelta, tc.wantDelta)
		}
	}
}

func TestDeriveAdjustments_HelpSeekingShift(t *testing.T) {
	avoidant := deriveAdjustments(Profile{
		Expertise:   ExpertiseAdvanced,
		HelpSeeking: HelpAvoidant,
	}, RecentPerformance{})
	if avoidant.ScaffoldLevel != scaffold.LevelGuidedPractice {
		t.Errorf("avoidant: ScaffoldLevel = %d, want one step more support", avoidant.ScaffoldLevel)
	}

	excessive := deriveAdjustments(Profile{
		Expertise:   ExpertiseAdvanced,
		HelpSeeking: HelpExcessive,
	}, RecentPerformance{})
	if excessive.ScaffoldLevel != scaffold.LevelIndependent {
		t.Errorf("excessive: ScaffoldLevel = %d, want one step less support", excessive.ScaffoldLevel)
	}

	// Shifts clamp at the ends of the range.
	clamped := deriveAdjustments(Profile{
		Expertise:   ExpertiseNovice,
		HelpSeeking: HelpAvoidant,
	}, RecentPerformance{})
	if clamped.ScaffoldLevel != scaffold.LevelWorkedExamples {
		t.Errorf("clamped: ScaffoldLevel = %d, want floor", clamped.ScaffoldLevel)
	}
}

func TestDeriveAdjustments_Streaks(t *testing.T) {
	failing := deriveAdjustments(Profile{Expertise: ExpertiseAdvanced},
		RecentPerformance{ConsecutiveFailures: 3})
	if failing.ScaffoldLevel != scaffold.LevelGuidedPractice {
		t.Errorf("failure streak: ScaffoldLevel = %d, want stepped-down level", failing.ScaffoldLevel)
	}
	if math.Abs(failing.DifficultyDelta-(-0.05)) > 1e-9 {
		t.Errorf("failure streak: DifficultyDelta = %v, want -0.05", failing.DifficultyDelta)
	}

	succeeding := deriveAdjustments(Profile{Expertise: ExpertiseIntermediate},
		RecentPerformance{ConsecutiveSuccesses: 4})
	if math.Abs(succeeding.DifficultyDelta-0.05) > 1e-9 {
		t.Errorf("success streak: DifficultyDelta = %v, want 0.05", succeeding.DifficultyDelta)
	}
}

func TestDeriveAdjustments_LowPersistence(t *testing.T) {
	adj := deriveAdjustments(Profile{
		Expertise:        ExpertiseAdvanced,
		PersistenceScore: f64(0.2),
	}, RecentPerformance{})
	if adj.ScaffoldLevel != scaffold.LevelGuidedPractice {
		t.Errorf("low persistence: ScaffoldLevel = %d, want one step more support", adj.ScaffoldLevel)
	}

	// The default persistence of 0.5 leaves the level alone.
	adj = deriveAdjustments(Profile{Expertise: ExpertiseAdvanced}, RecentPerformance{})
	if adj.ScaffoldLevel != scaffold.LevelHints {
		t.Errorf("default persistence: ScaffoldLevel = %d, want baseline", adj.ScaffoldLevel)
	}
}

func TestDeriveAdjustments_LoadCeiling(t *testing.T) {
	tests := []struct {
		wm   WorkingMemory
		want LoadCeiling
	}{
		{WorkingMemoryLow, CeilingLow},
		{WorkingMemoryMedium, CeilingMedium},
		{WorkingMemoryHigh, CeilingHigh},
		{"", CeilingMedium},
	}
	for _, tc := range tests {
		adj := deriveAdjustments(Profile{WorkingMemory: tc.wm}, RecentPerformance{})
		if adj.LoadCeiling != tc.want {
			t.Errorf("wm %q: LoadCeiling = %s, want %s", tc.wm, adj.LoadCeiling, tc.want)
		}
	}
}

func TestHelpPrompt_Priority(t *testing.T) {
	// Overconfidence wins even when every other condition also holds.
	p := Profile{
		HelpSeeking:         HelpAvoidant,
		OverconfidenceRate:  f64(0.5),
		UnderconfidenceRate: f64(0.9),
	}
	if got := helpPrompt(p); !strings.Contains(got, "confidence") {
		t.Errorf("prompt = %q, want the overconfidence prompt", got)
	}

	p = Profile{HelpSeeking: HelpAvoidant, UnderconfidenceRate: f64(0.9)}
	if got := helpPrompt(p); !strings.Contains(got, "more than you think") {
		t.Errorf("prompt = %q, want the underconfidence prompt", got)
	}

	p = Profile{HelpSeeking: HelpAvoidant}
	if got := helpPrompt(p); !strings.Contains(got, "hint") {
		t.Errorf("prompt = %q, want the avoidant prompt", got)
	}

	if got := helpPrompt(Profile{}); got != "" {
		t.Errorf("prompt = %q, want none for a default profile", got)
	}
}

func TestProfile_Defaults(t *testing.T) {
	p := Profile{}
	if p.expertise() != ExpertiseIntermediate {
		t.Errorf("default expertise = %s", p.expertise())
	}
	if p.loadThreshold() != 0.7 {
		t.Errorf("default load threshold = %v, want 0.7", p.loadThreshold())
	}
	if p.optimalComplexity() != 0.5 {
		t.Errorf("default optimal complexity = %v, want 0.5", p.optimalComplexity())
	}
	if p.timeMultiplier() != 1.15 {
		t.Errorf("default time multiplier = %v, want 1.15", p.timeMultiplier())
	}

	expert := Profile{Expertise: ExpertiseExpert}
	if expert.optimalComplexity() != 0.8 {
		t.Errorf("expert optimal complexity = %v, want 0.8", expert.optimalComplexity())
	}
}

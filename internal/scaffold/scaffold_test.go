package scaffold

import "testing"

func TestForMastery(t *testing.T) {
	tests := []struct {
		pMastery float64
		want     Level
	}{
		{0, LevelWorkedExamples},
		{0.29, LevelWorkedExamples},
		{0.3, LevelGuidedPractice}, // boundary goes to the lighter level
		{0.49, LevelGuidedPractice},
		{0.5, LevelHints},
		{0.69, LevelHints},
		{0.7, LevelIndependent},
		{1, LevelIndependent},
	}

	for _, tc := range tests {
		got, err := ForMastery(tc.pMastery)
		if err != nil {
			t.Fatalf("ForMastery(%v): %v", tc.pMastery, err)
		}
		if got != tc.want {
			t.Errorf("ForMastery(%v) = %d, want %d", tc.pMastery, got, tc.want)
		}
	}
}

func TestForMastery_OutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1} {
		if _, err := ForMastery(p); err == nil {
			t.Errorf("ForMastery(%v): expected error", p)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   Level
		want Level
	}{
		{0, LevelWorkedExamples},
		{-2, LevelWorkedExamples},
		{2, LevelGuidedPractice},
		{5, LevelIndependent},
	}
	for _, tc := range tests {
		if got := Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := LevelWorkedExamples.Label(); got != "Worked examples" {
		t.Errorf("Label = %q", got)
	}
	if got := Level(9).Label(); got != "Unknown" {
		t.Errorf("Label(9) = %q, want Unknown", got)
	}
}

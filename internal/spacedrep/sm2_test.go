package spacedrep

import (
	"math"
	"testing"
	"time"
)

var reviewTime = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestQuality(t *testing.T) {
	tests := []struct {
		name       string
		correct    bool
		responseMs int
		expectedMs int
		want       int
	}{
		{"incorrect", false, 1000, 10000, 1},
		{"incorrect without timing", false, 0, 0, 1},
		{"fast correct", true, 4000, 10000, 5},
		{"normal correct", true, 8000, 10000, 4},
		{"slow correct", true, 15000, 10000, 3},
		{"exactly half expected", true, 5000, 10000, 4},
		{"exactly expected", true, 10000, 10000, 3},
		{"correct without timing", true, 0, 0, 4},
		{"correct without expected time", true, 5000, 0, 4},
	}

	for _, tc := range tests {
		got := Quality(tc.correct, tc.responseMs, tc.expectedMs)
		if got != tc.want {
			t.Errorf("%s: Quality = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestApply_IntervalLadder(t *testing.T) {
	// Three successful reviews at qualities 5, 4, 5.
	s := NewState()
	var err error

	steps := []struct {
		quality      int
		wantInterval int
		wantEF       float64
		wantReps     int
	}{
		{5, 1, 2.6, 1},
		{4, 6, 2.6, 2},
		{5, 16, 2.7, 3}, // round(6 * 2.7)
	}

	for i, step := range steps {
		s, err = Apply(s, step.quality, reviewTime)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if s.IntervalDays != step.wantInterval {
			t.Errorf("step %d: IntervalDays = %d, want %d", i, s.IntervalDays, step.wantInterval)
		}
		if math.Abs(s.EaseFactor-step.wantEF) > 1e-9 {
			t.Errorf("step %d: EaseFactor = %v, want %v", i, s.EaseFactor, step.wantEF)
		}
		if s.Repetitions != step.wantReps {
			t.Errorf("step %d: Repetitions = %d, want %d", i, s.Repetitions, step.wantReps)
		}
	}

	wantNext := reviewTime.AddDate(0, 0, 16)
	if !s.NextReviewAt.Equal(wantNext) {
		t.Errorf("NextReviewAt = %v, want %v", s.NextReviewAt, wantNext)
	}
}

func TestApply_FailureResetsLadder(t *testing.T) {
	s := NewState()
	var err error
	for _, q := range []int{5, 4, 5} {
		if s, err = Apply(s, q, reviewTime); err != nil {
			t.Fatal(err)
		}
	}

	s, err = Apply(s, 1, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if s.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want 0 after failure", s.Repetitions)
	}
	if s.IntervalDays != FirstInterval {
		t.Errorf("IntervalDays = %d, want %d after failure", s.IntervalDays, FirstInterval)
	}

	// The ease factor took the failure penalty even though the ladder reset.
	if s.EaseFactor >= 2.7 {
		t.Errorf("EaseFactor = %v, want lowered by the failed review", s.EaseFactor)
	}
}

func TestApply_EaseFactorFloor(t *testing.T) {
	s := NewState()
	var err error
	for i := 0; i < 20; i++ {
		if s, err = Apply(s, 0, reviewTime); err != nil {
			t.Fatal(err)
		}
	}
	if s.EaseFactor != MinEaseFactor {
		t.Errorf("EaseFactor = %v, want floor %v", s.EaseFactor, MinEaseFactor)
	}
}

func TestApply_QualityThreeKeepsLadderButLowersEase(t *testing.T) {
	s := NewState()
	s, err := Apply(s, 3, reviewTime)
	if err != nil {
		t.Fatal(err)
	}
	if s.Repetitions != 1 {
		t.Errorf("Repetitions = %d, want 1 (quality 3 passes)", s.Repetitions)
	}
	if s.EaseFactor >= InitialEaseFactor {
		t.Errorf("EaseFactor = %v, want below %v", s.EaseFactor, InitialEaseFactor)
	}
}

func TestApply_InvalidQuality(t *testing.T) {
	for _, q := range []int{-1, 6} {
		if _, err := Apply(NewState(), q, reviewTime); err == nil {
			t.Errorf("Apply(quality=%d): expected error", q)
		}
	}
}

func TestState_Due(t *testing.T) {
	s := NewState()
	if s.IsDue(reviewTime) {
		t.Error("never-scheduled state should not be due")
	}

	s, err := Apply(s, 4, reviewTime)
	if err != nil {
		t.Fatal(err)
	}

	if s.IsDue(reviewTime.Add(12 * time.Hour)) {
		t.Error("should not be due half a day after a 1-day interval")
	}
	if !s.IsDue(reviewTime.AddDate(0, 0, 1)) {
		t.Error("should be due exactly at the review date")
	}

	overdue := s.OverdueDays(reviewTime.AddDate(0, 0, 3))
	if math.Abs(overdue-2) > 1e-9 {
		t.Errorf("OverdueDays = %v, want 2", overdue)
	}
	if got := s.OverdueDays(reviewTime); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}
}

func TestState_DecayExceeded(t *testing.T) {
	s := NewState()
	var err error
	// Build up to a 6-day interval, grace is then 3 days.
	for _, q := range []int{4, 4} {
		if s, err = Apply(s, q, reviewTime); err != nil {
			t.Fatal(err)
		}
	}
	if s.IntervalDays != SecondInterval {
		t.Fatalf("IntervalDays = %d, want %d", s.IntervalDays, SecondInterval)
	}

	due := s.NextReviewAt
	if s.DecayExceeded(due.AddDate(0, 0, 2)) {
		t.Error("2 days overdue is inside the 3-day grace window")
	}
	if !s.DecayExceeded(due.AddDate(0, 0, 4)) {
		t.Error("4 days overdue is past the 3-day grace window")
	}
	if s.DecayExceeded(reviewTime) {
		t.Error("not yet due, decay cannot be exceeded")
	}
}

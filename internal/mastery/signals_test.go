package mastery

import (
	"context"
	"testing"

	"github.com/abhisek/tutorkit/internal/intervention"
)

func TestSessionSignals(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(nil, repo)
	ctx := context.Background()

	record := func(skill string, correct bool) {
		t.Helper()
		if _, err := svc.RecordAttempt(ctx, "kim", skill, correct, 0, 0, attemptTime); err != nil {
			t.Fatal(err)
		}
	}
	// A clean streak on one skill and a trailing slump on another.
	for _, c := range []bool{true, true, true} {
		record("fractions", c)
	}
	for _, c := range []bool{true, false, false} {
		record("decimals", c)
	}

	sig, err := svc.SessionSignals(ctx, "kim")
	if err != nil {
		t.Fatal(err)
	}
	if sig.ConsecutiveSuccesses != 3 {
		t.Errorf("ConsecutiveSuccesses = %d, want 3", sig.ConsecutiveSuccesses)
	}
	if sig.ConsecutiveFailures != 2 {
		t.Errorf("ConsecutiveFailures = %d, want 2", sig.ConsecutiveFailures)
	}
	if sig.SessionAttempts != 6 {
		t.Errorf("SessionAttempts = %d, want 6", sig.SessionAttempts)
	}
	if want := 4.0 / 6.0; sig.SessionAccuracy != want {
		t.Errorf("SessionAccuracy = %v, want %v", sig.SessionAccuracy, want)
	}

	// The derived counters feed the trigger table directly; the slump alone
	// is not enough for any rule to fire without profile signals.
	if active := intervention.Evaluate(sig, nil); len(active) != 0 {
		t.Errorf("Evaluate fired %d triggers, want none", len(active))
	}
}

func TestSessionSignals_OtherLearnerInvisible(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(nil, repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.RecordAttempt(ctx, "lee", "fractions", false, 0, 0, attemptTime); err != nil {
			t.Fatal(err)
		}
	}

	sig, err := svc.SessionSignals(ctx, "kim")
	if err != nil {
		t.Fatal(err)
	}
	if sig != (intervention.Context{}) {
		t.Errorf("signals for an unseen learner = %+v, want zero", sig)
	}
}

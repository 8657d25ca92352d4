package mastery

import (
	"context"
	"testing"
	"time"
)

// masterSkill drives a skill to mastered with repeated correct attempts.
func masterSkill(t *testing.T, svc *Service, learnerID, skillID string, at time.Time) {
	t.Helper()
	for i := 0; i < 10; i++ {
		if _, err := svc.RecordAttempt(context.Background(), learnerID, skillID, true, 0, 0, at); err != nil {
			t.Fatal(err)
		}
		if svc.GetState(learnerID, skillID).Status == StatusMastered {
			return
		}
	}
	t.Fatal("skill never reached mastery")
}

func TestRunDecayCheck(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(nil, repo)
	masterSkill(t, svc, "kim", "fractions", attemptTime)

	st := svc.GetState("kim", "fractions")
	beforeDecay := st.PMastery

	// Inside the grace window nothing happens. The last review left a
	// multi-day interval; half of it is the grace.
	graceEnd := st.SpacedRep.NextReviewAt.Add(time.Duration(float64(st.SpacedRep.IntervalDays)*0.4*24) * time.Hour)
	transitions, err := svc.RunDecayCheck(context.Background(), "kim", graceEnd)
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 0 {
		t.Fatalf("decay fired inside the grace window: %+v", transitions)
	}

	// Far past the grace window the skill demotes.
	late := st.SpacedRep.NextReviewAt.AddDate(0, 0, st.SpacedRep.IntervalDays)
	transitions, err = svc.RunDecayCheck(context.Background(), "kim", late)
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 1 {
		t.Fatalf("got %d transitions, want 1", len(transitions))
	}
	tr := transitions[0]
	if tr.From != StatusMastered || tr.To != StatusLearning || tr.Trigger != "time-decay" {
		t.Errorf("transition = %+v", tr)
	}

	st = svc.GetState("kim", "fractions")
	if st.Status != StatusLearning {
		t.Errorf("Status = %s, want learning", st.Status)
	}
	if st.PMastery >= st.MasteryThreshold {
		t.Errorf("PMastery = %v, want below threshold %v", st.PMastery, st.MasteryThreshold)
	}
	if st.PMastery >= beforeDecay {
		t.Errorf("PMastery = %v, want shrunk from %v", st.PMastery, beforeDecay)
	}
	if st.SpacedRep.Repetitions != 0 || st.SpacedRep.IntervalDays != 1 {
		t.Errorf("review ladder = %d reps / %d days, want reset", st.SpacedRep.Repetitions, st.SpacedRep.IntervalDays)
	}

	if len(repo.mastery) == 0 || repo.mastery[len(repo.mastery)-1].Trigger != "time-decay" {
		t.Error("decay did not append a mastery event")
	}

	// A second pass finds nothing: the skill is no longer mastered.
	transitions, err = svc.RunDecayCheck(context.Background(), "kim", late)
	if err != nil {
		t.Fatal(err)
	}
	if len(transitions) != 0 {
		t.Errorf("decay refired on a learning skill: %+v", transitions)
	}
}

func TestDueSkills(t *testing.T) {
	svc := NewService(nil, nil)
	masterSkill(t, svc, "kim", "aaa", attemptTime)
	masterSkill(t, svc, "kim", "bbb", attemptTime.AddDate(0, 0, -3))
	svc.RecordAttempt(context.Background(), "kim", "learning-only", true, 0, 0, attemptTime)

	// Both mastered skills share the interval; bbb reviewed earlier so it
	// is more overdue.
	st := svc.GetState("kim", "aaa")
	now := st.SpacedRep.NextReviewAt.AddDate(0, 0, 1)

	due := svc.DueSkills("kim", now)
	if len(due) != 2 {
		t.Fatalf("due = %v, want two skills", due)
	}
	if due[0] != "bbb" || due[1] != "aaa" {
		t.Errorf("due = %v, want most overdue first [bbb aaa]", due)
	}

	if got := svc.DueSkills("kim", attemptTime); len(got) != 0 {
		t.Errorf("due before any review date = %v, want none", got)
	}
}

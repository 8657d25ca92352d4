package mastery

import (
	"context"
	"testing"
	"time"

	"github.com/abhisek/tutorkit/internal/bkt"
	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/store"
)

var attemptTime = time.Date(2026, 4, 10, 14, 0, 0, 0, time.UTC)

// recordingRepo captures appended events for assertions.
type recordingRepo struct {
	attempts []store.AttemptEventData
	mastery  []store.MasteryEventData
	fits     []store.FitEventData
}

func (r *recordingRepo) AppendAttemptEvent(_ context.Context, d store.AttemptEventData) error {
	r.attempts = append(r.attempts, d)
	return nil
}

func (r *recordingRepo) AppendMasteryEvent(_ context.Context, d store.MasteryEventData) error {
	r.mastery = append(r.mastery, d)
	return nil
}

func (r *recordingRepo) AppendFitEvent(_ context.Context, d store.FitEventData) error {
	r.fits = append(r.fits, d)
	return nil
}

func (r *recordingRepo) AttemptOutcomes(_ context.Context, learnerID, skillID string) ([]bool, error) {
	var outcomes []bool
	for _, a := range r.attempts {
		if a.LearnerID == learnerID && a.SkillID == skillID {
			outcomes = append(outcomes, a.Correct)
		}
	}
	return outcomes, nil
}

func (r *recordingRepo) AttemptedSkills(_ context.Context, learnerID string) ([]string, error) {
	seen := map[string]bool{}
	var ids []string
	for _, a := range r.attempts {
		if a.LearnerID != learnerID || seen[a.SkillID] {
			continue
		}
		seen[a.SkillID] = true
		ids = append(ids, a.SkillID)
	}
	return ids, nil
}

func TestGetState_Defaults(t *testing.T) {
	svc := NewService(nil, nil)
	st := svc.GetState("kim", "fractions")

	if st.Status != StatusNotStarted {
		t.Errorf("Status = %s, want %s", st.Status, StatusNotStarted)
	}
	if st.PMastery != bkt.DefaultParams().PL0 {
		t.Errorf("PMastery = %v, want PL0", st.PMastery)
	}
	if st.MasteryThreshold != DefaultMasteryThreshold {
		t.Errorf("MasteryThreshold = %v, want %v", st.MasteryThreshold, DefaultMasteryThreshold)
	}

	// Second access returns the same record.
	st.TotalAttempts = 7
	if again := svc.GetState("kim", "fractions"); again.TotalAttempts != 7 {
		t.Error("GetState did not return the existing record")
	}
}

func TestRecordAttempt_Pipeline(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(nil, repo)
	ctx := context.Background()

	res, err := svc.RecordAttempt(ctx, "kim", "fractions", true, 4000, 10000, attemptTime)
	if err != nil {
		t.Fatal(err)
	}

	st := res.State
	if st.Status != StatusLearning {
		t.Errorf("Status = %s, want learning after first attempt", st.Status)
	}
	if res.Transition == nil || res.Transition.Trigger != "first-attempt" {
		t.Errorf("Transition = %+v, want first-attempt", res.Transition)
	}
	if st.PMastery <= bkt.DefaultParams().PL0 {
		t.Errorf("PMastery = %v, did not rise after a correct answer", st.PMastery)
	}
	if st.TotalAttempts != 1 || st.CorrectAttempts != 1 || st.ConsecutiveSuccesses != 1 {
		t.Errorf("counters = %d/%d/%d, want 1/1/1",
			st.TotalAttempts, st.CorrectAttempts, st.ConsecutiveSuccesses)
	}
	if res.Quality != 5 {
		t.Errorf("Quality = %d, want 5 for a fast correct answer", res.Quality)
	}
	if st.SpacedRep.Repetitions != 1 || st.SpacedRep.IntervalDays != 1 {
		t.Errorf("spaced rep = %d reps / %d days, want 1/1",
			st.SpacedRep.Repetitions, st.SpacedRep.IntervalDays)
	}

	if len(repo.attempts) != 1 {
		t.Fatalf("appended %d attempt events, want 1", len(repo.attempts))
	}
	if repo.attempts[0].PMasteryAfter != st.PMastery {
		t.Error("attempt event does not carry the post-update estimate")
	}
	if repo.attempts[0].SessionID == "" {
		t.Error("attempt event missing the session id")
	}
	if len(repo.mastery) != 1 || repo.mastery[0].Trigger != "first-attempt" {
		t.Errorf("mastery events = %+v, want the first-attempt transition", repo.mastery)
	}
}

func TestRecordAttempt_FailureResetsStreak(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.RecordAttempt(ctx, "kim", "sums", true, 0, 0, attemptTime); err != nil {
			t.Fatal(err)
		}
	}
	res, err := svc.RecordAttempt(ctx, "kim", "sums", false, 0, 0, attemptTime)
	if err != nil {
		t.Fatal(err)
	}
	st := res.State
	if st.ConsecutiveSuccesses != 0 {
		t.Errorf("ConsecutiveSuccesses = %d, want 0 after a miss", st.ConsecutiveSuccesses)
	}
	if st.TotalAttempts != 4 || st.CorrectAttempts != 3 {
		t.Errorf("counters = %d/%d, want 4/3", st.TotalAttempts, st.CorrectAttempts)
	}
	if st.SpacedRep.Repetitions != 0 {
		t.Errorf("Repetitions = %d, want reset by the failed review", st.SpacedRep.Repetitions)
	}
}

func TestRecordAttempt_MasteryTransition(t *testing.T) {
	repo := &recordingRepo{}
	svc := NewService(nil, repo)
	ctx := context.Background()

	var mastered *Transition
	for i := 0; i < 10; i++ {
		res, err := svc.RecordAttempt(ctx, "kim", "fractions", true, 0, 0, attemptTime)
		if err != nil {
			t.Fatal(err)
		}
		if res.Transition != nil && res.Transition.To == StatusMastered {
			mastered = res.Transition
			break
		}
	}
	if mastered == nil {
		t.Fatal("ten correct answers never reached mastery")
	}
	if mastered.Trigger != "threshold-reached" {
		t.Errorf("Trigger = %q, want threshold-reached", mastered.Trigger)
	}

	st := svc.GetState("kim", "fractions")
	if st.Status != StatusMastered {
		t.Errorf("Status = %s, want mastered", st.Status)
	}
	if st.PMastery < st.MasteryThreshold {
		t.Errorf("PMastery = %v below threshold %v", st.PMastery, st.MasteryThreshold)
	}
	if st.ScaffoldLevel != scaffold.LevelIndependent {
		t.Errorf("ScaffoldLevel = %d, want independent at mastery", st.ScaffoldLevel)
	}

	if !svc.MasteredSkills("kim")["fractions"] {
		t.Error("MasteredSkills does not include fractions")
	}
}

func TestSetParams(t *testing.T) {
	svc := NewService(nil, nil)
	svc.GetState("kim", "sums").PMastery = 0.42

	fitted := bkt.Params{PL0: 0.2, PT: 0.15, PS: 0.08, PG: 0.25}
	if err := svc.SetParams("kim", "sums", fitted); err != nil {
		t.Fatal(err)
	}

	st := svc.GetState("kim", "sums")
	if st.Params != fitted {
		t.Errorf("Params = %+v, want %+v", st.Params, fitted)
	}
	if st.PMastery != 0.42 {
		t.Errorf("PMastery = %v, fitting must not move the estimate", st.PMastery)
	}

	bad := bkt.Params{PL0: 0.2, PT: 0.15, PS: 0.6, PG: 0.5}
	if err := svc.SetParams("kim", "sums", bad); err == nil {
		t.Error("expected error for invalid parameters")
	}
}

func TestReset(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	svc.RecordAttempt(ctx, "kim", "a", true, 0, 0, attemptTime)
	svc.RecordAttempt(ctx, "kim", "b", true, 0, 0, attemptTime)
	svc.RecordAttempt(ctx, "lee", "a", true, 0, 0, attemptTime)

	if removed := svc.Reset("kim"); removed != 2 {
		t.Errorf("Reset removed %d, want 2", removed)
	}
	if len(svc.States("kim")) != 0 {
		t.Error("kim still has states after reset")
	}
	if len(svc.States("lee")) != 1 {
		t.Error("reset touched another learner's states")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	for i := 0; i < 4; i++ {
		if _, err := svc.RecordAttempt(ctx, "kim", "fractions", i != 1, 4000, 10000, attemptTime); err != nil {
			t.Fatal(err)
		}
	}
	orig := svc.GetState("kim", "fractions")

	restored := NewService(svc.SnapshotData(), nil).GetState("kim", "fractions")

	if restored.PMastery != orig.PMastery {
		t.Errorf("PMastery = %v, want %v", restored.PMastery, orig.PMastery)
	}
	if restored.Status != orig.Status {
		t.Errorf("Status = %s, want %s", restored.Status, orig.Status)
	}
	if restored.Params != orig.Params {
		t.Errorf("Params = %+v, want %+v", restored.Params, orig.Params)
	}
	if restored.TotalAttempts != orig.TotalAttempts || restored.CorrectAttempts != orig.CorrectAttempts {
		t.Errorf("counters = %d/%d, want %d/%d",
			restored.TotalAttempts, restored.CorrectAttempts, orig.TotalAttempts, orig.CorrectAttempts)
	}
	if restored.SpacedRep.EaseFactor != orig.SpacedRep.EaseFactor ||
		restored.SpacedRep.IntervalDays != orig.SpacedRep.IntervalDays ||
		restored.SpacedRep.Repetitions != orig.SpacedRep.Repetitions {
		t.Errorf("spaced rep state = %+v, want %+v", restored.SpacedRep, orig.SpacedRep)
	}
	if !restored.SpacedRep.NextReviewAt.Equal(orig.SpacedRep.NextReviewAt) {
		t.Errorf("NextReviewAt = %v, want %v", restored.SpacedRep.NextReviewAt, orig.SpacedRep.NextReviewAt)
	}
	if restored.ScaffoldLevel != orig.ScaffoldLevel {
		t.Errorf("ScaffoldLevel = %d, want %d", restored.ScaffoldLevel, orig.ScaffoldLevel)
	}
}

func TestEstimate(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		if _, err := svc.RecordAttempt(ctx, "kim", "sums", true, 0, 0, attemptTime); err != nil {
			t.Fatal(err)
		}
	}

	est, err := svc.Estimate("kim", "sums", 0.95)
	if err != nil {
		t.Fatal(err)
	}
	st := svc.GetState("kim", "sums")
	if est.PMastery != st.PMastery {
		t.Errorf("estimate centered at %v, want %v", est.PMastery, st.PMastery)
	}
	if est.Lower >= est.Upper {
		t.Errorf("interval [%v, %v] out of order", est.Lower, est.Upper)
	}
	if est.NEffective <= 0 || est.NEffective > 5 {
		t.Errorf("NEffective = %v, want in (0, 5]", est.NEffective)
	}
}

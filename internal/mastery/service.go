// Package mastery orchestrates the per-attempt update pipeline: BKT mastery
// update, status transitions, scaffold selection, and SM-2 scheduling, with
// state persisted through injected store repositories.
package mastery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/tutorkit/internal/bkt"
	"github.com/abhisek/tutorkit/internal/psychostats"
	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/spacedrep"
	"github.com/abhisek/tutorkit/internal/store"
)

// Service manages learner skill states. Updates are neither commutative nor
// idempotent, so callers must serialize concurrent updates per
// (learner, skill) key.
type Service struct {
	states    map[string]*SkillState
	eventRepo store.EventRepo
	// sessionID groups every event appended during this service's lifetime,
	// one service per study session.
	sessionID string
}

// NewService creates a mastery service, loading states from the snapshot.
func NewService(snap *store.SnapshotData, eventRepo store.EventRepo) *Service {
	s := &Service{
		states:    make(map[string]*SkillState),
		eventRepo: eventRepo,
		sessionID: uuid.NewString(),
	}
	if snap != nil {
		s.loadFromSnapshot(snap)
	}
	return s
}

func stateKey(learnerID, skillID string) string {
	return learnerID + "/" + skillID
}

// GetState returns the state for a (learner, skill) pair, creating a
// not-started record on first access.
func (s *Service) GetState(learnerID, skillID string) *SkillState {
	key := stateKey(learnerID, skillID)
	if st, ok := s.states[key]; ok {
		return st
	}
	params := bkt.DefaultParams()
	st := &SkillState{
		LearnerID:        learnerID,
		SkillID:          skillID,
		PMastery:         params.PL0,
		Params:           params,
		Status:           StatusNotStarted,
		MasteryThreshold: DefaultMasteryThreshold,
		SpacedRep:        spacedrep.NewState(),
		ScaffoldLevel:    scaffold.LevelWorkedExamples,
	}
	s.states[key] = st
	return st
}

// MasteredSkills returns the learner's set of mastered skill ids.
func (s *Service) MasteredSkills(learnerID string) map[string]bool {
	result := make(map[string]bool)
	for _, st := range s.states {
		if st.LearnerID == learnerID && st.Status == StatusMastered {
			result[st.SkillID] = true
		}
	}
	return result
}

// States returns all states for a learner.
func (s *Service) States(learnerID string) []*SkillState {
	var result []*SkillState
	for _, st := range s.states {
		if st.LearnerID == learnerID {
			result = append(result, st)
		}
	}
	return result
}

// AttemptResult is the combined outcome of recording one attempt.
type AttemptResult struct {
	State      *SkillState
	Transition *Transition // nil when no status change occurred
	Quality    int
}

// RecordAttempt runs the full attempt pipeline for one observation:
// BKT update, counters, status thresholds, scaffold reselection, and the
// SM-2 schedule update. Events are appended to the event repo when one is
// configured.
func (s *Service) RecordAttempt(ctx context.Context, learnerID, skillID string, correct bool, responseMs, expectedMs int, now time.Time) (*AttemptResult, error) {
	st := s.GetState(learnerID, skillID)

	var transition *Transition
	if st.Status == StatusNotStarted {
		transition = &Transition{
			LearnerID: learnerID,
			SkillID:   skillID,
			From:      StatusNotStarted,
			To:        StatusLearning,
			Trigger:   "first-attempt",
		}
		st.Status = StatusLearning
	}

	updated, err := bkt.Update(st.PMastery, correct, st.Params)
	if err != nil {
		return nil, fmt.Errorf("bkt update: %w", err)
	}
	st.PMastery = updated

	st.TotalAttempts++
	if correct {
		st.CorrectAttempts++
		st.ConsecutiveSuccesses++
	} else {
		st.ConsecutiveSuccesses = 0
	}

	if st.Status == StatusLearning && st.PMastery >= st.MasteryThreshold {
		transition = &Transition{
			LearnerID: learnerID,
			SkillID:   skillID,
			From:      StatusLearning,
			To:        StatusMastered,
			Trigger:   "threshold-reached",
		}
		st.Status = StatusMastered
	}

	level, err := scaffold.ForMastery(st.PMastery)
	if err != nil {
		return nil, fmt.Errorf("scaffold selection: %w", err)
	}
	st.ScaffoldLevel = level

	quality := spacedrep.Quality(correct, responseMs, expectedMs)
	srState, err := spacedrep.Apply(st.SpacedRep, quality, now)
	if err != nil {
		return nil, fmt.Errorf("spaced repetition update: %w", err)
	}
	st.SpacedRep = srState
	st.UpdatedAt = now

	if s.eventRepo != nil {
		if err := s.appendAttemptEvents(ctx, st, correct, responseMs, expectedMs, quality, transition); err != nil {
			return nil, err
		}
	}

	return &AttemptResult{State: st, Transition: transition, Quality: quality}, nil
}

func (s *Service) appendAttemptEvents(ctx context.Context, st *SkillState, correct bool, responseMs, expectedMs, quality int, transition *Transition) error {
	err := s.eventRepo.AppendAttemptEvent(ctx, store.AttemptEventData{
		LearnerID:     st.LearnerID,
		SkillID:       st.SkillID,
		Correct:       correct,
		ResponseMs:    responseMs,
		ExpectedMs:    expectedMs,
		Quality:       quality,
		PMasteryAfter: st.PMastery,
		SessionID:     s.sessionID,
	})
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	if transition != nil {
		err := s.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
			LearnerID:  st.LearnerID,
			SkillID:    st.SkillID,
			FromStatus: string(transition.From),
			ToStatus:   string(transition.To),
			Trigger:    transition.Trigger,
			PMastery:   st.PMastery,
		})
		if err != nil {
			return fmt.Errorf("append mastery event: %w", err)
		}
	}
	return nil
}

// SetParams installs freshly fitted BKT parameters for a skill. The current
// mastery estimate is kept; only the model parameters change.
func (s *Service) SetParams(learnerID, skillID string, params bkt.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	st := s.GetState(learnerID, skillID)
	st.Params = params
	return nil
}

// Estimate builds a confidence interval around the current mastery estimate
// at the given confidence level.
func (s *Service) Estimate(learnerID, skillID string, level float64) (psychostats.MasteryEstimate, error) {
	st := s.GetState(learnerID, skillID)
	return psychostats.EstimateMastery(st.PMastery, st.TotalAttempts, st.Params.PT, level)
}

// Reset removes all state for a learner. The explicit learner-initiated
// path; states are never deleted otherwise.
func (s *Service) Reset(learnerID string) int {
	removed := 0
	for key, st := range s.states {
		if st.LearnerID == learnerID {
			delete(s.states, key)
			removed++
		}
	}
	return removed
}

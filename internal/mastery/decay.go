package mastery

import (
	"context"
	"sort"
	"time"

	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/spacedrep"
	"github.com/abhisek/tutorkit/internal/store"
)

// decayFactor shrinks the mastery estimate when a skill decays. The result
// always lands below the mastery threshold so the skill re-enters learning.
const decayFactor = 0.7

// RunDecayCheck scans a learner's mastered skills and demotes any that are
// overdue past their grace window back to learning, resetting the review
// ladder. Called at session start. Returns the transitions that occurred.
func (s *Service) RunDecayCheck(ctx context.Context, learnerID string, now time.Time) ([]*Transition, error) {
	var transitions []*Transition

	for _, st := range s.states {
		if st.LearnerID != learnerID || st.Status != StatusMastered {
			continue
		}
		if !st.SpacedRep.DecayExceeded(now) {
			continue
		}

		st.PMastery *= decayFactor
		if st.PMastery >= st.MasteryThreshold {
			st.PMastery = st.MasteryThreshold - 0.01
		}
		st.Status = StatusLearning
		st.ConsecutiveSuccesses = 0

		st.SpacedRep.Repetitions = 0
		st.SpacedRep.IntervalDays = spacedrep.FirstInterval
		st.SpacedRep.NextReviewAt = now.AddDate(0, 0, spacedrep.FirstInterval)

		if level, err := scaffold.ForMastery(st.PMastery); err == nil {
			st.ScaffoldLevel = level
		}
		st.UpdatedAt = now

		t := &Transition{
			LearnerID: learnerID,
			SkillID:   st.SkillID,
			From:      StatusMastered,
			To:        StatusLearning,
			Trigger:   "time-decay",
		}
		transitions = append(transitions, t)

		if s.eventRepo != nil {
			err := s.eventRepo.AppendMasteryEvent(ctx, store.MasteryEventData{
				LearnerID:  learnerID,
				SkillID:    st.SkillID,
				FromStatus: string(t.From),
				ToStatus:   string(t.To),
				Trigger:    t.Trigger,
				PMastery:   st.PMastery,
			})
			if err != nil {
				return transitions, err
			}
		}
	}
	return transitions, nil
}

// DueSkills returns the learner's mastered skills due for review, most
// overdue first.
func (s *Service) DueSkills(learnerID string, now time.Time) []string {
	type dueSkill struct {
		id      string
		overdue float64
	}
	var due []dueSkill
	for _, st := range s.states {
		if st.LearnerID != learnerID || st.Status != StatusMastered {
			continue
		}
		if st.SpacedRep.IsDue(now) {
			due = append(due, dueSkill{id: st.SkillID, overdue: st.SpacedRep.OverdueDays(now)})
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].overdue != due[j].overdue {
			return due[i].overdue > due[j].overdue
		}
		return due[i].id < due[j].id
	})

	ids := make([]string, len(due))
	for i, d := range due {
		ids[i] = d.id
	}
	return ids
}

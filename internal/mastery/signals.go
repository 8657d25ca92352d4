package mastery

import (
	"context"
	"fmt"

	"github.com/abhisek/tutorkit/internal/intervention"
)

// SessionSignals derives the performance counters the intervention trigger
// table inspects: the longest live success streak across skills, the deepest
// trailing failure run in the attempt log, and attempt totals with accuracy.
// Profile and session-duration signals are the caller's to fill in.
func (s *Service) SessionSignals(ctx context.Context, learnerID string) (intervention.Context, error) {
	var c intervention.Context

	correct := 0
	for _, st := range s.States(learnerID) {
		c.SessionAttempts += st.TotalAttempts
		correct += st.CorrectAttempts
		if st.ConsecutiveSuccesses > c.ConsecutiveSuccesses {
			c.ConsecutiveSuccesses = st.ConsecutiveSuccesses
		}
	}
	if c.SessionAttempts > 0 {
		c.SessionAccuracy = float64(correct) / float64(c.SessionAttempts)
	}

	if s.eventRepo == nil {
		return c, nil
	}
	skills, err := s.eventRepo.AttemptedSkills(ctx, learnerID)
	if err != nil {
		return c, fmt.Errorf("attempted skills: %w", err)
	}
	for _, skillID := range skills {
		outcomes, err := s.eventRepo.AttemptOutcomes(ctx, learnerID, skillID)
		if err != nil {
			return c, fmt.Errorf("attempt outcomes for %s: %w", skillID, err)
		}
		run := 0
		for i := len(outcomes) - 1; i >= 0 && !outcomes[i]; i-- {
			run++
		}
		if run > c.ConsecutiveFailures {
			c.ConsecutiveFailures = run
		}
	}
	return c, nil
}

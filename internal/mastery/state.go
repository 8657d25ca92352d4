package mastery

import (
	"time"

	"github.com/abhisek/tutorkit/internal/bkt"
	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/spacedrep"
)

// Status is a skill's position in the mastery lifecycle.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusLearning   Status = "learning"
	StatusMastered   Status = "mastered"
)

// DefaultMasteryThreshold is the mastery probability at which a skill
// transitions to mastered.
const DefaultMasteryThreshold = 0.80

// SkillState is the full learner-relative state for one (learner, skill)
// pair. Created on first attempt, mutated on every subsequent attempt,
// deleted only by an explicit reset.
type SkillState struct {
	LearnerID string
	SkillID   string

	PMastery         float64
	Params           bkt.Params
	Status           Status
	MasteryThreshold float64

	TotalAttempts        int
	CorrectAttempts      int
	ConsecutiveSuccesses int

	SpacedRep     spacedrep.State
	ScaffoldLevel scaffold.Level
	UpdatedAt     time.Time
}

// Accuracy returns the lifetime accuracy ratio for the skill.
func (s *SkillState) Accuracy() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts)
}

// Transition records a status change for event logging and display.
type Transition struct {
	LearnerID string
	SkillID   string
	From      Status
	To        Status
	Trigger   string // "first-attempt", "threshold-reached", "time-decay", "reset"
}

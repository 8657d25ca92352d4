package store

import (
	"context"
	"time"
)

// SnapshotVersion is the current snapshot data format version.
const SnapshotVersion = 1

// SkillStateData is the persisted form of one learner skill state. Times
// are RFC3339 strings; optional times are nil when never set.
type SkillStateData struct {
	LearnerID string `json:"learner_id"`
	SkillID   string `json:"skill_id"`

	PMastery float64 `json:"p_mastery"`
	PL0      float64 `json:"p_l0"`
	PT       float64 `json:"p_t"`
	PS       float64 `json:"p_s"`
	PG       float64 `json:"p_g"`

	Status           string  `json:"status"`
	MasteryThreshold float64 `json:"mastery_threshold"`

	TotalAttempts        int `json:"total_attempts"`
	CorrectAttempts      int `json:"correct_attempts"`
	ConsecutiveSuccesses int `json:"consecutive_successes"`

	EaseFactor   float64 `json:"ease_factor"`
	IntervalDays int     `json:"interval_days"`
	Repetitions  int     `json:"repetitions"`
	NextReviewAt *string `json:"next_review_at,omitempty"`
	LastReviewAt *string `json:"last_review_at,omitempty"`

	ScaffoldLevel int    `json:"scaffold_level"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// SnapshotData captures all learner skill states at a point in time,
// keyed by "learnerID/skillID".
type SnapshotData struct {
	Version int                        `json:"version"`
	Skills  map[string]*SkillStateData `json:"skills"`
}

// Snapshot represents a point-in-time capture of learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot stamped with the current event sequence.
	Save(ctx context.Context, data *SnapshotData) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error

	// DeleteAll removes every snapshot (learner reset).
	DeleteAll(ctx context.Context) error
}

// AttemptEventData captures one recorded practice attempt.
type AttemptEventData struct {
	LearnerID     string
	SkillID       string
	Correct       bool
	ResponseMs    int
	ExpectedMs    int
	Quality       int
	PMasteryAfter float64
	SessionID     string
}

// MasteryEventData captures a mastery status transition.
type MasteryEventData struct {
	LearnerID  string
	SkillID    string
	FromStatus string
	ToStatus   string
	Trigger    string
	PMastery   float64
}

// FitEventData captures one EM fitting run.
type FitEventData struct {
	LearnerID     string
	SkillID       string
	PL0           float64
	PT            float64
	PS            float64
	PG            float64
	LogLikelihood float64
	Iterations    int
	Converged     bool
	Quality       string
	SampleSize    int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAttemptEvent records a practice attempt.
	AppendAttemptEvent(ctx context.Context, data AttemptEventData) error

	// AppendMasteryEvent records a mastery status transition.
	AppendMasteryEvent(ctx context.Context, data MasteryEventData) error

	// AppendFitEvent records one parameter-fitting run.
	AppendFitEvent(ctx context.Context, data FitEventData) error

	// AttemptOutcomes returns a skill's attempt outcomes in strict
	// chronological (sequence) order, as required by the fitter.
	AttemptOutcomes(ctx context.Context, learnerID, skillID string) ([]bool, error)

	// AttemptedSkills returns the distinct skill ids a learner has
	// attempted.
	AttemptedSkills(ctx context.Context, learnerID string) ([]string, error)
}

// Package spacedrep schedules mastered-skill review using the SM-2
// spaced repetition algorithm.
package spacedrep

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// InitialEaseFactor is the SM-2 starting ease factor.
	InitialEaseFactor = 2.5

	// MinEaseFactor is the SM-2 ease factor floor.
	MinEaseFactor = 1.3

	// FirstInterval and SecondInterval are the fixed intervals (days) for
	// the first two successful repetitions; later intervals grow by the
	// ease factor.
	FirstInterval  = 1
	SecondInterval = 6

	// MinPassQuality is the lowest quality counted as successful recall.
	// Anything below resets the repetition ladder.
	MinPassQuality = 3
)

// ErrInvalidQuality reports a quality score outside [0,5].
var ErrInvalidQuality = errors.New("quality out of range")

// State holds the SM-2 scheduling state for one (learner, skill) pair.
type State struct {
	EaseFactor   float64   `json:"ease_factor"`
	IntervalDays int       `json:"interval_days"`
	Repetitions  int       `json:"repetitions"`
	NextReviewAt time.Time `json:"next_review_at"`
	LastReviewAt time.Time `json:"last_review_at"`
}

// NewState returns the scheduling state for a skill with no reviews yet.
func NewState() State {
	return State{EaseFactor: InitialEaseFactor}
}

// Quality derives an SM-2 recall quality from correctness and response time.
// Any incorrect answer maps to 1 ("attempted but wrong") rather than 0:
// a wrong attempt is still weaker evidence of forgetting than a blackout.
// For correct answers the ratio against the expected time grades recall:
// under half the expected time is a perfect 5, under the expected time a 4,
// slower a 3. Without timing data a correct answer scores 4.
func Quality(correct bool, responseMs, expectedMs int) int {
	if !correct {
		return 1
	}
	if expectedMs <= 0 || responseMs <= 0 {
		return 4
	}
	ratio := float64(responseMs) / float64(expectedMs)
	switch {
	case ratio < 0.5:
		return 5
	case ratio < 1.0:
		return 4
	default:
		return 3
	}
}

// Apply advances the schedule by one review at the given quality.
//
// The ease factor updates on every review regardless of outcome and never
// drops below MinEaseFactor. Quality below MinPassQuality resets the
// repetition ladder: repetitions back to 0 and the interval to one day.
func Apply(s State, quality int, now time.Time) (State, error) {
	if quality < 0 || quality > 5 {
		return State{}, fmt.Errorf("%w: %d, want [0,5]", ErrInvalidQuality, quality)
	}
	if s.EaseFactor == 0 {
		s.EaseFactor = InitialEaseFactor
	}

	q := float64(quality)
	s.EaseFactor += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if s.EaseFactor < MinEaseFactor {
		s.EaseFactor = MinEaseFactor
	}

	if quality < MinPassQuality {
		s.Repetitions = 0
		s.IntervalDays = FirstInterval
	} else {
		switch s.Repetitions {
		case 0:
			s.IntervalDays = FirstInterval
		case 1:
			s.IntervalDays = SecondInterval
		default:
			s.IntervalDays = int(math.Round(float64(s.IntervalDays) * s.EaseFactor))
		}
		s.Repetitions++
	}

	s.LastReviewAt = now
	s.NextReviewAt = now.AddDate(0, 0, s.IntervalDays)
	return s, nil
}

// IsDue reports whether the skill is at or past its review date.
// A skill that has never been scheduled is not due.
func (s State) IsDue(now time.Time) bool {
	if s.NextReviewAt.IsZero() {
		return false
	}
	return !now.Before(s.NextReviewAt)
}

// OverdueDays returns how far past due the skill is, in days.
// Returns 0 when not yet due.
func (s State) OverdueDays(now time.Time) float64 {
	if !s.IsDue(now) {
		return 0
	}
	return now.Sub(s.NextReviewAt).Hours() / 24.0
}

// DaysUntilReview returns whole days until the next review, 0 if due.
func (s State) DaysUntilReview(now time.Time) int {
	if s.IsDue(now) {
		return 0
	}
	return int(s.NextReviewAt.Sub(now).Hours()/24.0) + 1
}

// DecayExceeded reports whether the skill is overdue past a grace window of
// half its current interval, the point at which mastery should be treated
// as decayed rather than merely due.
func (s State) DecayExceeded(now time.Time) bool {
	if !s.IsDue(now) {
		return false
	}
	grace := time.Duration(float64(s.IntervalDays) * 0.5 * 24 * float64(time.Hour))
	return now.After(s.NextReviewAt.Add(grace))
}

// Package scaffold maps mastery probability to instructional scaffolding
// intensity.
package scaffold

import "fmt"

// Level is a scaffolding intensity from 1 (maximum support) to 4
// (independent practice).
type Level int

const (
	LevelWorkedExamples Level = 1 // full worked examples
	LevelGuidedPractice Level = 2 // guided practice with prompts
	LevelHints          Level = 3 // hints on request
	LevelIndependent    Level = 4 // independent practice
)

// Mastery thresholds for each step down in support.
const (
	guidedThreshold      = 0.3
	hintsThreshold       = 0.5
	independentThreshold = 0.7
)

// ForMastery returns the scaffold level for a mastery probability.
// A pure step function with no hysteresis: recomputed fresh on every attempt.
func ForMastery(pMastery float64) (Level, error) {
	if pMastery < 0 || pMastery > 1 {
		return 0, fmt.Errorf("mastery probability out of range: %v", pMastery)
	}
	switch {
	case pMastery < guidedThreshold:
		return LevelWorkedExamples, nil
	case pMastery < hintsThreshold:
		return LevelGuidedPractice, nil
	case pMastery < independentThreshold:
		return LevelHints, nil
	default:
		return LevelIndependent, nil
	}
}

// Label returns a human-readable name for a level.
func (l Level) Label() string {
	switch l {
	case LevelWorkedExamples:
		return "Worked examples"
	case LevelGuidedPractice:
		return "Guided practice"
	case LevelHints:
		return "Hints available"
	case LevelIndependent:
		return "Independent practice"
	default:
		return "Unknown"
	}
}

// Clamp bounds a level to the valid 1–4 range. Used when adjustment rules
// shift a level past either end.
func Clamp(l Level) Level {
	if l < LevelWorkedExamples {
		return LevelWorkedExamples
	}
	if l > LevelIndependent {
		return LevelIndependent
	}
	return l
}

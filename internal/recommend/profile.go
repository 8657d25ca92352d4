package recommend

// ExpertiseLevel is the learner's overall expertise band.
type ExpertiseLevel string

const (
	ExpertiseNovice       ExpertiseLevel = "novice"
	ExpertiseIntermediate ExpertiseLevel = "intermediate"
	ExpertiseAdvanced     ExpertiseLevel = "advanced"
	ExpertiseExpert       ExpertiseLevel = "expert"
)

// GoalOrientation classifies what motivates the learner.
type GoalOrientation string

const (
	OrientationMastery     GoalOrientation = "mastery"
	OrientationPerformance GoalOrientation = "performance"
	OrientationAvoidance   GoalOrientation = "avoidance"
)

// HelpSeeking classifies the learner's help-seeking pattern.
type HelpSeeking string

const (
	HelpAppropriate HelpSeeking = "appropriate"
	HelpAvoidant    HelpSeeking = "avoidant"
	HelpExcessive   HelpSeeking = "excessive"
)

// WorkingMemory is a coarse working-memory capacity indicator.
type WorkingMemory string

const (
	WorkingMemoryLow    WorkingMemory = "low"
	WorkingMemoryMedium WorkingMemory = "medium"
	WorkingMemoryHigh   WorkingMemory = "high"
)

// Profile carries the learner signals consumed by the scorer. All numeric
// fields are optional pointers; accessors apply the documented defaults so
// a zero Profile degrades gracefully rather than erroring.
type Profile struct {
	Expertise       ExpertiseLevel  // default intermediate
	GoalOrientation GoalOrientation // default mastery
	HelpSeeking     HelpSeeking     // default appropriate
	WorkingMemory   WorkingMemory   // default medium

	// CognitiveLoadThreshold is the maximum cognitive load (0–1) the
	// learner handles comfortably. Default 0.7.
	CognitiveLoadThreshold *float64
	// OptimalComplexity is the normalized difficulty (0–1) at which the
	// learner is best challenged. Defaults by expertise band.
	OptimalComplexity *float64
	// PersistenceScore (0–1) gauges tolerance for sustained struggle.
	// Default 0.5.
	PersistenceScore *float64
	// OverconfidenceRate and UnderconfidenceRate (0–1) come from
	// confidence-vs-correctness calibration. Default 0.
	OverconfidenceRate  *float64
	UnderconfidenceRate *float64
}

// Defaults per expertise band.
var optimalComplexityByExpertise = map[ExpertiseLevel]float64{
	ExpertiseNovice:       0.3,
	ExpertiseIntermediate: 0.5,
	ExpertiseAdvanced:     0.65,
	ExpertiseExpert:       0.8,
}

// timeMultiplierByExpertise scales skill time estimates: novices need more
// time than the content estimate assumes, experts less.
var timeMultiplierByExpertise = map[ExpertiseLevel]float64{
	ExpertiseNovice:       1.5,
	ExpertiseIntermediate: 1.15,
	ExpertiseAdvanced:     0.9,
	ExpertiseExpert:       0.7,
}

func (p Profile) expertise() ExpertiseLevel {
	switch p.Expertise {
	case ExpertiseNovice, ExpertiseIntermediate, ExpertiseAdvanced, ExpertiseExpert:
		return p.Expertise
	}
	return ExpertiseIntermediate
}

func (p Profile) goalOrientation() GoalOrientation {
	switch p.GoalOrientation {
	case OrientationMastery, OrientationPerformance, OrientationAvoidance:
		return p.GoalOrientation
	}
	return OrientationMastery
}

func (p Profile) helpSeeking() HelpSeeking {
	switch p.HelpSeeking {
	case HelpAppropriate, HelpAvoidant, HelpExcessive:
		return p.HelpSeeking
	}
	return HelpAppropriate
}

func (p Profile) workingMemory() WorkingMemory {
	switch p.WorkingMemory {
	case WorkingMemoryLow, WorkingMemoryMedium, WorkingMemoryHigh:
		return p.WorkingMemory
	}
	return WorkingMemoryMedium
}

func (p Profile) loadThreshold() float64 {
	if p.CognitiveLoadThreshold != nil {
		return *p.CognitiveLoadThreshold
	}
	return 0.7
}

func (p Profile) optimalComplexity() float64 {
	if p.OptimalComplexity != nil {
		return *p.OptimalComplexity
	}
	return optimalComplexityByExpertise[p.expertise()]
}

func (p Profile) persistence() float64 {
	if p.PersistenceScore != nil {
		return *p.PersistenceScore
	}
	return 0.5
}

func (p Profile) overconfidence() float64 {
	if p.OverconfidenceRate != nil {
		return *p.OverconfidenceRate
	}
	return 0
}

func (p Profile) underconfidence() float64 {
	if p.UnderconfidenceRate != nil {
		return *p.UnderconfidenceRate
	}
	return 0
}

func (p Profile) timeMultiplier() float64 {
	return timeMultiplierByExpertise[p.expertise()]
}

// RecentPerformance summarizes the learner's current session.
type RecentPerformance struct {
	ConsecutiveSuccesses int
	ConsecutiveFailures  int
	SessionMinutes       int
}

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/tutorkit/internal/scaffold"
	"github.com/abhisek/tutorkit/internal/skillgraph"
)

// LoadCeiling caps how much intrinsic cognitive load content should carry
// for the learner.
type LoadCeiling string

const (
	CeilingLow    LoadCeiling = "low"
	CeilingMedium LoadCeiling = "medium"
	CeilingHigh   LoadCeiling = "high"
)

// Adjustments are the per-recommendation pedagogical settings handed to the
// content layer.
type Adjustments struct {
	ScaffoldLevel scaffold.Level `json:"scaffold_level"`
	// DifficultyDelta shifts presented difficulty relative to the skill's
	// baseline, on the normalized 0–1 scale.
	DifficultyDelta float64     `json:"difficulty_delta"`
	LoadCeiling     LoadCeiling `json:"load_ceiling"`
	// HelpPrompt is an optional single metacognitive prompt, chosen by
	// priority: overconfidence > underconfidence > avoidant > excessive.
	HelpPrompt string `json:"help_prompt,omitempty"`
}

// failureShiftThreshold is the consecutive-failure count after which the
// scaffold level steps down one more notch.
const failureShiftThreshold = 3

// lowPersistence is the persistence score below which the learner gets one
// extra level of support.
const lowPersistence = 0.3

var scaffoldByExpertise = map[ExpertiseLevel]scaffold.Level{
	ExpertiseNovice:       scaffold.LevelWorkedExamples,
	ExpertiseIntermediate: scaffold.LevelGuidedPractice,
	ExpertiseAdvanced:     scaffold.LevelHints,
	ExpertiseExpert:       scaffold.LevelIndependent,
}

var difficultyDeltaByExpertise = map[ExpertiseLevel]float64{
	ExpertiseNovice:       -0.15,
	ExpertiseIntermediate: -0.05,
	ExpertiseAdvanced:     0.05,
	ExpertiseExpert:       0.15,
}

// deriveAdjustments computes the pedagogical settings for a learner from
// profile and recent performance.
func deriveAdjustments(p Profile, recent RecentPerformance) Adjustments {
	level := scaffoldByExpertise[p.expertise()]

	// Avoidant help-seekers get one level more support baked in; excessive
	// help-seekers one level less, to push toward independence.
	switch p.helpSeeking() {
	case HelpAvoidant:
		level--
	case HelpExcessive:
		level++
	}
	if recent.ConsecutiveFailures >= failureShiftThreshold {
		level--
	}
	// Low persistence learners disengage quickly when unsupported.
	if p.persistence() < lowPersistence {
		level--
	}
	level = scaffold.Clamp(level)

	delta := difficultyDeltaByExpertise[p.expertise()]
	if recent.ConsecutiveSuccesses >= 3 {
		delta += 0.1
	}
	if recent.ConsecutiveFailures >= 3 {
		delta -= 0.1
	}

	return Adjustments{
		ScaffoldLevel:   level,
		DifficultyDelta: delta,
		LoadCeiling:     loadCeiling(p.workingMemory()),
		HelpPrompt:      helpPrompt(p),
	}
}

func loadCeiling(wm WorkingMemory) LoadCeiling {
	switch wm {
	case WorkingMemoryLow:
		return CeilingLow
	case WorkingMemoryHigh:
		return CeilingHigh
	default:
		return CeilingMedium
	}
}

// helpPrompt picks at most one metacognitive prompt by priority order.
func helpPrompt(p Profile) string {
	switch {
	case p.overconfidence() > 0.4:
		return "Before answering, rate how sure you are - then check whether your confidence matched the result."
	case p.underconfidence() > 0.5:
		return "You know more than you think. Commit to an answer before reaching for support."
	case p.helpSeeking() == HelpAvoidant:
		return "Stuck for more than a couple of minutes? Asking for a hint is part of learning, not a failure."
	case p.helpSeeking() == HelpExcessive:
		return "Try working through the next problem fully on your own before requesting a hint."
	default:
		return ""
	}
}

// adjustedMinutes applies the expertise time multiplier to the skill's
// estimate.
func adjustedMinutes(s skillgraph.Skill, p Profile) int {
	return int(math.Round(float64(s.Minutes()) * p.timeMultiplier()))
}

// framingByExpertise prefixes the justification in terms the learner band
// responds to.
var framingByExpertise = map[ExpertiseLevel]string{
	ExpertiseNovice:       "A solid next step",
	ExpertiseIntermediate: "A good next challenge",
	ExpertiseAdvanced:     "A worthwhile stretch",
	ExpertiseExpert:       "An efficient next target",
}

// justify renders the templated natural-language explanation for one
// recommendation.
func justify(r Recommendation, p Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", framingByExpertise[p.expertise()], r.Skill.Name)
	if len(r.Reasons) > 0 {
		fmt.Fprintf(&b, " - %s", strings.Join(r.Reasons, "; "))
	}
	fmt.Fprintf(&b, ". Estimated %d min at your pace.", r.EstimatedMins)
	return b.String()
}

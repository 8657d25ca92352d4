// Package recommend ranks zone-of-proximal-development skills for a learner
// by combining readiness, cognitive-difficulty match, motivational fit, and
// urgency, and derives per-skill pedagogical adjustments with a templated
// justification.
package recommend

import (
	"sort"

	"github.com/abhisek/tutorkit/internal/skillgraph"
)

// Scoring weights. Readiness dominates; urgency outranks motivational fit
// so threshold concepts and known gaps surface early.
const (
	readinessWeight  = 0.40
	cognitiveWeight  = 0.25
	motivationWeight = 0.15
	urgencyWeight    = 0.20
)

// DefaultTopN is the number of recommendations returned.
const DefaultTopN = 5

// loadFilterMargin is the tolerance above the learner's cognitive load
// threshold before a skill is filtered out entirely.
const loadFilterMargin = 0.1

// highInteractivity is the element-interactivity level considered too
// demanding for low-working-memory learners.
const highInteractivity = 0.7

// Urgency contributions, capped at 1.
const (
	thresholdConceptUrgency = 0.4
	knowledgeGapUrgency     = 0.3
	misconceptionUrgency    = 0.3
)

// Breakdown exposes the weighted score components for explainability.
type Breakdown struct {
	Readiness      float64 `json:"readiness"`
	CognitiveMatch float64 `json:"cognitive_match"`
	MotivationFit  float64 `json:"motivation_fit"`
	Urgency        float64 `json:"urgency"`
}

// Recommendation is one ranked study suggestion.
type Recommendation struct {
	Skill           skillgraph.Skill
	Score           float64
	Breakdown       Breakdown
	Adjustments     Adjustments
	Justification   string
	EstimatedMins   int
	Reasons         []string
}

// Input gathers everything the scorer consumes for one ranking request.
type Input struct {
	// Candidates is the learner's ZPD, typically from Graph.ZPD.
	Candidates []skillgraph.Readiness
	Profile    Profile
	Recent     RecentPerformance
	// KnowledgeGaps and Misconceptions flag skill ids with known problems.
	KnowledgeGaps  map[string]bool
	Misconceptions map[string]bool
	// TopN caps the result count (default DefaultTopN).
	TopN int
}

// Rank filters, scores, and ranks the candidate skills.
func Rank(in Input) []Recommendation {
	topN := in.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	var recs []Recommendation
	for _, cand := range in.Candidates {
		if filtered(cand.Skill, in.Profile) {
			continue
		}

		b := Breakdown{
			Readiness:      cand.Score,
			CognitiveMatch: cognitiveMatch(cand.Skill, in.Profile),
			MotivationFit:  motivationFit(cand.Skill, in.Profile),
			Urgency:        urgency(cand.Skill, in),
		}
		score := readinessWeight*b.Readiness +
			cognitiveWeight*b.CognitiveMatch +
			motivationWeight*b.MotivationFit +
			urgencyWeight*b.Urgency

		recs = append(recs, Recommendation{
			Skill:     cand.Skill,
			Score:     score,
			Breakdown: b,
			Reasons:   reasons(cand, b, in),
		})
	}

	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		if recs[i].Breakdown.Readiness != recs[j].Breakdown.Readiness {
			return recs[i].Breakdown.Readiness > recs[j].Breakdown.Readiness
		}
		return recs[i].Skill.ID < recs[j].Skill.ID
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}

	for i := range recs {
		recs[i].Adjustments = deriveAdjustments(in.Profile, in.Recent)
		recs[i].EstimatedMins = adjustedMinutes(recs[i].Skill, in.Profile)
		recs[i].Justification = justify(recs[i], in.Profile)
	}
	return recs
}

// filtered drops skills beyond the learner's cognitive capacity.
func filtered(s skillgraph.Skill, p Profile) bool {
	if s.CognitiveLoad > p.loadThreshold()+loadFilterMargin {
		return true
	}
	if p.workingMemory() == WorkingMemoryLow && s.ElementInteractivity > highInteractivity {
		return true
	}
	return false
}

// cognitiveMatch scores how well the skill's difficulty sits at the
// learner's optimal complexity, with a smaller component for staying
// inside the load threshold.
func cognitiveMatch(s skillgraph.Skill, p Profile) float64 {
	gap := s.NormalizedDifficulty() - p.optimalComplexity()
	if gap < 0 {
		gap = -gap
	}
	proximity := 1 - 2*gap
	if proximity < 0 {
		proximity = 0
	}

	loadScore := 0.5
	if s.CognitiveLoad <= p.loadThreshold() {
		loadScore = 1.0
	}
	return 0.7*proximity + 0.3*loadScore
}

// motivationFit rewards difficulty bands matching the learner's goal
// orientation: mastery-oriented learners want moderate-high challenge,
// performance-oriented want attainable wins, avoidance-oriented want
// very low risk.
func motivationFit(s skillgraph.Skill, p Profile) float64 {
	d := s.NormalizedDifficulty()
	switch p.goalOrientation() {
	case OrientationMastery:
		if d >= 0.5 && d <= 0.8 {
			return 1.0
		}
	case OrientationPerformance:
		if d <= 0.5 {
			return 1.0
		}
	case OrientationAvoidance:
		if d <= 0.3 {
			return 1.0
		}
	}
	return 0.5
}

// urgency sums priority signals, capped at 1.
func urgency(s skillgraph.Skill, in Input) float64 {
	u := 0.0
	if s.ThresholdConcept {
		u += thresholdConceptUrgency
	}
	if in.KnowledgeGaps[s.ID] {
		u += knowledgeGapUrgency
	}
	if in.Misconceptions[s.ID] {
		u += misconceptionUrgency
	}
	if u > 1 {
		u = 1
	}
	return u
}

// reasons collects the top factors behind a score for the justification.
func reasons(cand skillgraph.Readiness, b Breakdown, in Input) []string {
	var rs []string
	if cand.TotalRequired > 0 {
		rs = append(rs, "all required prerequisites mastered")
	} else {
		rs = append(rs, "no prerequisites blocking")
	}
	if cand.Skill.ThresholdConcept {
		rs = append(rs, "threshold concept that unlocks further understanding")
	}
	if in.KnowledgeGaps[cand.Skill.ID] {
		rs = append(rs, "addresses a known knowledge gap")
	}
	if in.Misconceptions[cand.Skill.ID] {
		rs = append(rs, "targets a detected misconception")
	}
	if b.CognitiveMatch >= 0.8 {
		rs = append(rs, "difficulty well matched to current level")
	}
	return rs
}

package recommend

import (
	"strings"
	"testing"

	"github.com/abhisek/tutorkit/internal/skillgraph"
)

func candidate(id string, difficulty float64, readiness float64) skillgraph.Readiness {
	return skillgraph.Readiness{
		Skill: skillgraph.Skill{
			ID:         id,
			Name:       strings.ToUpper(id[:1]) + id[1:],
			Difficulty: difficulty,
		},
		Score: readiness,
	}
}

func TestRank_ThresholdConceptOutranksTwin(t *testing.T) {
	plain := candidate("fractions", 5, 1.0)
	threshold := candidate("place-value", 5, 1.0)
	threshold.Skill.ThresholdConcept = true

	recs := Rank(Input{Candidates: []skillgraph.Readiness{plain, threshold}})
	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}
	if recs[0].Skill.ID != "place-value" {
		t.Errorf("threshold concept ranked %s first, want place-value", recs[0].Skill.ID)
	}
	if recs[0].Score <= recs[1].Score {
		t.Errorf("threshold concept score %v not above twin %v", recs[0].Score, recs[1].Score)
	}
}

func TestRank_FiltersOverloadingSkills(t *testing.T) {
	heavy := candidate("heavy", 5, 1.0)
	heavy.Skill.CognitiveLoad = 0.85 // above default threshold 0.7 + margin 0.1
	light := candidate("light", 5, 1.0)
	light.Skill.CognitiveLoad = 0.5

	recs := Rank(Input{Candidates: []skillgraph.Readiness{heavy, light}})
	if len(recs) != 1 || recs[0].Skill.ID != "light" {
		t.Fatalf("recs = %v, want only light", recIDs(recs))
	}
}

func TestRank_FiltersHighInteractivityForLowWM(t *testing.T) {
	busy := candidate("busy", 5, 1.0)
	busy.Skill.ElementInteractivity = 0.8

	recs := Rank(Input{
		Candidates: []skillgraph.Readiness{busy},
		Profile:    Profile{WorkingMemory: WorkingMemoryLow},
	})
	if len(recs) != 0 {
		t.Errorf("high-interactivity skill not filtered for low working memory")
	}

	// Same skill passes for a medium-working-memory learner.
	recs = Rank(Input{Candidates: []skillgraph.Readiness{busy}})
	if len(recs) != 1 {
		t.Errorf("skill should pass for default working memory")
	}
}

func TestRank_KnowledgeGapRaisesUrgency(t *testing.T) {
	a := candidate("alpha", 5, 1.0)
	b := candidate("beta", 5, 1.0)

	recs := Rank(Input{
		Candidates:    []skillgraph.Readiness{a, b},
		KnowledgeGaps: map[string]bool{"beta": true},
	})
	if recs[0].Skill.ID != "beta" {
		t.Errorf("gap skill ranked %s first, want beta", recs[0].Skill.ID)
	}
	if recs[0].Breakdown.Urgency != knowledgeGapUrgency {
		t.Errorf("Urgency = %v, want %v", recs[0].Breakdown.Urgency, knowledgeGapUrgency)
	}
}

func TestRank_UrgencyCapped(t *testing.T) {
	s := candidate("everything", 5, 1.0)
	s.Skill.ThresholdConcept = true

	recs := Rank(Input{
		Candidates:     []skillgraph.Readiness{s},
		KnowledgeGaps:  map[string]bool{"everything": true},
		Misconceptions: map[string]bool{"everything": true},
	})
	// 0.4 + 0.3 + 0.3 caps at 1.
	if recs[0].Breakdown.Urgency != 1.0 {
		t.Errorf("Urgency = %v, want capped at 1.0", recs[0].Breakdown.Urgency)
	}
}

func TestRank_TopN(t *testing.T) {
	var cands []skillgraph.Readiness
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		cands = append(cands, candidate(id, 5, 1.0))
	}

	if got := len(Rank(Input{Candidates: cands})); got != DefaultTopN {
		t.Errorf("default cap returned %d, want %d", got, DefaultTopN)
	}
	if got := len(Rank(Input{Candidates: cands, TopN: 2})); got != 2 {
		t.Errorf("TopN=2 returned %d", got)
	}
}

func TestRank_ScoreWeights(t *testing.T) {
	s := candidate("solo", 5, 0.8)
	recs := Rank(Input{Candidates: []skillgraph.Readiness{s}})
	if len(recs) != 1 {
		t.Fatal("expected one recommendation")
	}

	b := recs[0].Breakdown
	want := 0.40*b.Readiness + 0.25*b.CognitiveMatch + 0.15*b.MotivationFit + 0.20*b.Urgency
	if diff := recs[0].Score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Score = %v, want weighted sum %v", recs[0].Score, want)
	}
}

func TestRank_JustificationAndMinutes(t *testing.T) {
	s := candidate("fractions", 5, 1.0)
	s.Skill.EstimatedMins = 40

	recs := Rank(Input{
		Candidates: []skillgraph.Readiness{s},
		Profile:    Profile{Expertise: ExpertiseNovice},
	})
	r := recs[0]
	// Novice multiplier 1.5.
	if r.EstimatedMins != 60 {
		t.Errorf("EstimatedMins = %d, want 60", r.EstimatedMins)
	}
	if !strings.Contains(r.Justification, "Fractions") {
		t.Errorf("justification %q does not name the skill", r.Justification)
	}
	if !strings.Contains(r.Justification, "60 min") {
		t.Errorf("justification %q does not carry the time estimate", r.Justification)
	}
	if len(r.Reasons) == 0 {
		t.Error("expected at least one reason")
	}
}

func recIDs(recs []Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.Skill.ID
	}
	return ids
}

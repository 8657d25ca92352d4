package skillgraph

import "sort"

// Readiness weights per prerequisite strength tier.
const (
	requiredWeight    = 0.6
	recommendedWeight = 0.3
	helpfulWeight     = 0.1
)

// Readiness is a skill in the learner's zone of proximal development with
// its weighted readiness score.
type Readiness struct {
	Skill Skill
	// Score is the weighted fraction of mastered prerequisites across the
	// three strength tiers; 1.0 for a skill with no prerequisites.
	Score float64
	// MasteredRequired and TotalRequired describe the gating tier, kept
	// for recommendation justifications.
	MasteredRequired int
	TotalRequired    int
}

// ZPD computes the learner's zone of proximal development: every
// non-mastered skill whose required-tier prerequisites are all mastered
// (or that has none). Results are sorted by readiness descending, then
// difficulty ascending, then Bloom level ascending, then id.
func (g *Graph) ZPD(mastered map[string]bool) []Readiness {
	var zone []Readiness
	for i := range g.skills {
		s := g.skills[i]
		if mastered[s.ID] {
			continue
		}

		var reqTotal, reqDone, recTotal, recDone, helpTotal, helpDone int
		for _, e := range g.incoming[s.ID] {
			switch e.Strength {
			case StrengthRequired:
				reqTotal++
				if mastered[e.FromID] {
					reqDone++
				}
			case StrengthRecommended:
				recTotal++
				if mastered[e.FromID] {
					recDone++
				}
			case StrengthHelpful:
				helpTotal++
				if mastered[e.FromID] {
					helpDone++
				}
			}
		}

		if reqTotal > 0 && reqDone < reqTotal {
			continue
		}

		score := requiredWeight*tierRatio(reqDone, reqTotal) +
			recommendedWeight*tierRatio(recDone, recTotal) +
			helpfulWeight*tierRatio(helpDone, helpTotal)

		zone = append(zone, Readiness{
			Skill:            s,
			Score:            score,
			MasteredRequired: reqDone,
			TotalRequired:    reqTotal,
		})
	}

	sort.Slice(zone, func(i, j int) bool {
		a, b := zone[i], zone[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Skill.Difficulty != b.Skill.Difficulty {
			return a.Skill.Difficulty < b.Skill.Difficulty
		}
		if a.Skill.BloomLevel != b.Skill.BloomLevel {
			return a.Skill.BloomLevel < b.Skill.BloomLevel
		}
		return a.Skill.ID < b.Skill.ID
	})
	return zone
}

// tierRatio returns the mastered fraction for one strength tier, or 1 when
// the tier has no edges.
func tierRatio(done, total int) float64 {
	if total == 0 {
		return 1
	}
	return float64(done) / float64(total)
}

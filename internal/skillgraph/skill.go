package skillgraph

// Strength classifies how binding a prerequisite relationship is.
type Strength string

const (
	StrengthRequired    Strength = "required"
	StrengthRecommended Strength = "recommended"
	StrengthHelpful     Strength = "helpful"
)

// AllStrengths returns the strength tiers in descending order of weight.
func AllStrengths() []Strength {
	return []Strength{StrengthRequired, StrengthRecommended, StrengthHelpful}
}

// IsValid reports whether s is a known strength tier.
func (s Strength) IsValid() bool {
	switch s {
	case StrengthRequired, StrengthRecommended, StrengthHelpful:
		return true
	}
	return false
}

// DefaultEstimatedMins is assumed for skills without a time estimate.
const DefaultEstimatedMins = 30

// IRTParams is the optional item-response-theory triple for a skill.
type IRTParams struct {
	Difficulty     float64 `json:"difficulty"`
	Discrimination float64 `json:"discrimination"`
	Guessing       float64 `json:"guessing"`
}

// Skill is a node in the prerequisite graph. Read-only input owned by the
// external content store.
type Skill struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Difficulty           float64    `json:"difficulty"` // 0–10 scale
	BloomLevel           int        `json:"bloom_level"`
	EstimatedMins        int        `json:"estimated_mins"`
	ThresholdConcept     bool       `json:"threshold_concept"`
	CognitiveLoad        float64    `json:"cognitive_load"` // 0–1 scale
	ElementInteractivity float64    `json:"element_interactivity"`
	IRT                  *IRTParams `json:"irt,omitempty"`
}

// NormalizedDifficulty maps the 0–10 difficulty onto [0,1].
func (s Skill) NormalizedDifficulty() float64 {
	d := s.Difficulty / 10
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// Minutes returns the skill's time estimate, defaulting when unset.
func (s Skill) Minutes() int {
	if s.EstimatedMins <= 0 {
		return DefaultEstimatedMins
	}
	return s.EstimatedMins
}

// Prerequisite is a directed edge: FromID must be learned before ToID.
type Prerequisite struct {
	FromID     string   `json:"from_id"`
	ToID       string   `json:"to_id"`
	Strength   Strength `json:"strength"`
	Confidence float64  `json:"confidence"`
}

package graphio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "skills": [
    {"id": "counting", "name": "Counting", "difficulty": 1, "bloom_level": 1},
    {"id": "addition", "name": "Addition", "difficulty": 2, "bloom_level": 2,
     "threshold_concept": true, "cognitive_load": 0.4,
     "irt": {"difficulty": -0.5, "discrimination": 1.2, "guessing": 0.25}}
  ],
  "prerequisites": [
    {"from_id": "counting", "to_id": "addition", "strength": "required", "confidence": 0.9}
  ]
}`

func TestLoad_Valid(t *testing.T) {
	g, err := Load(strings.NewReader(validDoc))
	require.NoError(t, err)

	assert.Len(t, g.Skills(), 2)

	s, err := g.Skill("addition")
	require.NoError(t, err)
	assert.True(t, s.ThresholdConcept)
	require.NotNil(t, s.IRT)
	assert.Equal(t, 1.2, s.IRT.Discrimination)

	prereqs := g.Prerequisites("addition")
	require.Len(t, prereqs, 1)
	assert.Equal(t, "counting", prereqs[0].FromID)
}

func TestLoad_RejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"skills": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing skills key", `{"prerequisites": []}`},
		{"skill without name", `{"skills": [{"id": "x"}]}`},
		{"empty id", `{"skills": [{"id": "", "name": "X"}]}`},
		{"difficulty out of range", `{"skills": [{"id": "x", "name": "X", "difficulty": 11}]}`},
		{"bloom out of range", `{"skills": [{"id": "x", "name": "X", "bloom_level": 7}]}`},
		{"bad strength", `{"skills": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}],
			"prerequisites": [{"from_id": "a", "to_id": "b", "strength": "mandatory"}]}`},
		{"confidence above one", `{"skills": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}],
			"prerequisites": [{"from_id": "a", "to_id": "b", "strength": "required", "confidence": 1.5}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_StructuralViolations(t *testing.T) {
	// Passes the schema, fails graph construction.
	cyclic := `{
	  "skills": [{"id": "a", "name": "A"}, {"id": "b", "name": "B"}],
	  "prerequisites": [
	    {"from_id": "a", "to_id": "b", "strength": "required"},
	    {"from_id": "b", "to_id": "a", "strength": "required"}
	  ]
	}`
	_, err := Load(strings.NewReader(cyclic))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

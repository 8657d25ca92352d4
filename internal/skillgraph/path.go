package skillgraph

import (
	"fmt"
	"sort"
)

// Path is an ordered study sequence toward a goal skill.
type Path struct {
	// Skills is a valid topological order of the unmastered transitive
	// prerequisite closure of the goal, goal last among its dependents.
	Skills []Skill
	// TotalMinutes sums per-skill time estimates (default applied).
	TotalMinutes int
	// ThresholdConcepts lists ids of in-path threshold concepts.
	ThresholdConcepts []string
}

// LearningPath linearizes the prerequisites of a goal skill into a study
// sequence. The transitive prerequisite closure of the goal (goal included)
// is computed over all edge strengths, already-mastered skills are dropped,
// and the remainder is topologically sorted with Kahn's algorithm.
//
// Nodes simultaneously ready are ordered by Bloom level ascending, then
// difficulty ascending, then id. The tie-break is applied at every dequeue
// step so newly freed nodes merge into the candidate set in sorted position.
func (g *Graph) LearningPath(goalID string, mastered map[string]bool) (Path, error) {
	if _, ok := g.byID[goalID]; !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrSkillNotFound, goalID)
	}

	// Transitive closure of prerequisites reachable from the goal.
	closure := map[string]bool{goalID: true}
	stack := []string{goalID}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range g.incoming[id] {
			if !closure[e.FromID] {
				closure[e.FromID] = true
				stack = append(stack, e.FromID)
			}
		}
	}

	// Drop mastered skills; count in-degrees within the remaining subgraph.
	inPath := make(map[string]bool, len(closure))
	for id := range closure {
		if !mastered[id] {
			inPath[id] = true
		}
	}
	inDegree := make(map[string]int, len(inPath))
	for id := range inPath {
		for _, e := range g.incoming[id] {
			if inPath[e.FromID] {
				inDegree[id]++
			}
		}
	}

	var ready []string
	for id := range inPath {
		if inDegree[id] == 0 {
			ready = append(ready, id)
		}
	}

	var path Path
	for len(ready) > 0 {
		sort.Slice(ready, func(i, j int) bool {
			a, b := g.byID[ready[i]], g.byID[ready[j]]
			if a.BloomLevel != b.BloomLevel {
				return a.BloomLevel < b.BloomLevel
			}
			if a.Difficulty != b.Difficulty {
				return a.Difficulty < b.Difficulty
			}
			return a.ID < b.ID
		})

		id := ready[0]
		ready = ready[1:]

		s := *g.byID[id]
		path.Skills = append(path.Skills, s)
		path.TotalMinutes += s.Minutes()
		if s.ThresholdConcept {
			path.ThresholdConcepts = append(path.ThresholdConcepts, s.ID)
		}

		for _, depID := range g.dependents[id] {
			if !inPath[depID] {
				continue
			}
			inDegree[depID]--
			if inDegree[depID] == 0 {
				ready = append(ready, depID)
			}
		}
	}

	return path, nil
}

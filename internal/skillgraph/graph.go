// Package skillgraph models the prerequisite DAG over skills and computes
// learner-relative views of it: the zone of proximal development and
// goal-directed learning paths.
package skillgraph

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

// ErrSkillNotFound reports a lookup for an unknown skill id.
var ErrSkillNotFound = errors.New("skill not found")

// Graph holds the skill DAG with precomputed indices. Construct with
// NewGraph; a Graph is immutable afterwards and safe for concurrent reads.
type Graph struct {
	skills     []Skill
	byID       map[string]*Skill
	incoming   map[string][]Prerequisite
	dependents map[string][]string
	topoOrder  []string
	topoIndex  map[string]int
}

// NewGraph constructs a graph from skills and prerequisite edges, building
// all indices including a topological order (Kahn's algorithm). Structural
// problems (duplicate ids, edges referencing unknown skills, invalid
// strength tiers, cycles) are collected and returned as one error.
func NewGraph(skills []Skill, prereqs []Prerequisite) (*Graph, error) {
	g := &Graph{
		skills:     slices.Clone(skills),
		byID:       make(map[string]*Skill, len(skills)),
		incoming:   make(map[string][]Prerequisite),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
	}

	var errs []string

	for i := range g.skills {
		id := g.skills[i].ID
		if id == "" {
			errs = append(errs, "skill with empty id")
			continue
		}
		if _, dup := g.byID[id]; dup {
			errs = append(errs, fmt.Sprintf("duplicate skill id: %q", id))
			continue
		}
		g.byID[id] = &g.skills[i]
	}

	for _, e := range prereqs {
		if _, ok := g.byID[e.FromID]; !ok {
			errs = append(errs, fmt.Sprintf("edge %q -> %q references unknown skill %q", e.FromID, e.ToID, e.FromID))
			continue
		}
		if _, ok := g.byID[e.ToID]; !ok {
			errs = append(errs, fmt.Sprintf("edge %q -> %q references unknown skill %q", e.FromID, e.ToID, e.ToID))
			continue
		}
		if !e.Strength.IsValid() {
			errs = append(errs, fmt.Sprintf("edge %q -> %q has invalid strength %q", e.FromID, e.ToID, e.Strength))
			continue
		}
		g.incoming[e.ToID] = append(g.incoming[e.ToID], e)
		g.dependents[e.FromID] = append(g.dependents[e.FromID], e.ToID)
	}

	if len(errs) == 0 {
		order, ok := g.kahnOrder()
		if !ok {
			errs = append(errs, "prerequisite graph contains a cycle")
		} else {
			g.topoOrder = order
			for i, id := range order {
				g.topoIndex[id] = i
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid skill graph:\n  %s", strings.Join(errs, "\n  "))
	}
	return g, nil
}

// kahnOrder computes a deterministic topological order. Returns false if the
// graph has a cycle (not all nodes drained).
func (g *Graph) kahnOrder() ([]string, bool) {
	inDegree := make(map[string]int, len(g.skills))
	for i := range g.skills {
		inDegree[g.skills[i].ID] = len(g.incoming[g.skills[i].ID])
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.skills))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)

		deps := slices.Clone(g.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	return order, len(order) == len(g.skills)
}

// Skill returns a skill by id.
func (g *Graph) Skill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("%w: %q", ErrSkillNotFound, id)
	}
	return *s, nil
}

// Skills returns all skills.
func (g *Graph) Skills() []Skill {
	return slices.Clone(g.skills)
}

// Prerequisites returns the incoming prerequisite edges for a skill.
func (g *Graph) Prerequisites(id string) []Prerequisite {
	return slices.Clone(g.incoming[id])
}

// Dependents returns the ids of skills that directly depend on the given one.
func (g *Graph) Dependents(id string) []string {
	return slices.Clone(g.dependents[id])
}

// TopologicalOrder returns all skill ids in a valid topological order.
func (g *Graph) TopologicalOrder() []string {
	return slices.Clone(g.topoOrder)
}

package skillgraph

import (
	"math"
	"testing"
)

func zpdIDs(zone []Readiness) []string {
	ids := make([]string, len(zone))
	for i, r := range zone {
		ids[i] = r.Skill.ID
	}
	return ids
}

func TestZPD_NothingMastered(t *testing.T) {
	g := mustGraph(t)

	zone := g.ZPD(map[string]bool{})
	// Only counting has no required prerequisites.
	if len(zone) != 1 || zone[0].Skill.ID != "counting" {
		t.Fatalf("ZPD = %v, want [counting]", zpdIDs(zone))
	}
	if zone[0].Score != 1.0 {
		t.Errorf("prerequisite-free skill readiness = %v, want 1.0", zone[0].Score)
	}
}

func TestZPD_RequiredGate(t *testing.T) {
	g := mustGraph(t)

	// Addition mastered but counting only unlocks addition's dependents;
	// multiplication needs addition (required) and recommends subtraction.
	zone := g.ZPD(map[string]bool{"counting": true, "addition": true})
	ids := zpdIDs(zone)
	want := map[string]bool{"subtraction": true, "multiplication": true}
	if len(ids) != 2 || !want[ids[0]] || !want[ids[1]] {
		t.Fatalf("ZPD = %v, want subtraction and multiplication", ids)
	}

	// Exponents stays gated: its required prerequisite is unmastered.
	for _, id := range ids {
		if id == "exponents" {
			t.Error("exponents should be outside the ZPD")
		}
	}
}

func TestZPD_ScoreWeighting(t *testing.T) {
	g := mustGraph(t)

	// Multiplication with required tier complete and recommended tier not:
	// 0.6*1 + 0.3*0 + 0.1*1 (empty helpful tier counts as complete).
	zone := g.ZPD(map[string]bool{"counting": true, "addition": true})
	var mult *Readiness
	for i := range zone {
		if zone[i].Skill.ID == "multiplication" {
			mult = &zone[i]
		}
	}
	if mult == nil {
		t.Fatal("multiplication not in ZPD")
	}
	if math.Abs(mult.Score-0.7) > 1e-9 {
		t.Errorf("multiplication readiness = %v, want 0.7", mult.Score)
	}
	if mult.MasteredRequired != 1 || mult.TotalRequired != 1 {
		t.Errorf("required tier = %d/%d, want 1/1", mult.MasteredRequired, mult.TotalRequired)
	}

	// With subtraction also mastered the recommended tier completes.
	zone = g.ZPD(map[string]bool{"counting": true, "addition": true, "subtraction": true})
	if len(zone) == 0 || zone[0].Skill.ID != "multiplication" {
		t.Fatalf("ZPD = %v, want multiplication first", zpdIDs(zone))
	}
	if zone[0].Score != 1.0 {
		t.Errorf("readiness = %v, want 1.0", zone[0].Score)
	}
}

func TestZPD_SortOrder(t *testing.T) {
	skills := []Skill{
		{ID: "a", Difficulty: 5, BloomLevel: 2},
		{ID: "b", Difficulty: 2, BloomLevel: 2},
		{ID: "c", Difficulty: 2, BloomLevel: 1},
	}
	g, err := NewGraph(skills, nil)
	if err != nil {
		t.Fatal(err)
	}

	zone := g.ZPD(map[string]bool{})
	got := zpdIDs(zone)
	// Equal scores: difficulty ascending, then Bloom ascending.
	want := []string{"c", "b", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ZPD order = %v, want %v", got, want)
		}
	}
}

func TestZPD_ExcludesMastered(t *testing.T) {
	g := mustGraph(t)
	all := map[string]bool{
		"counting": true, "addition": true, "subtraction": true,
		"multiplication": true, "exponents": true,
	}
	if zone := g.ZPD(all); len(zone) != 0 {
		t.Errorf("ZPD with everything mastered = %v, want empty", zpdIDs(zone))
	}
}

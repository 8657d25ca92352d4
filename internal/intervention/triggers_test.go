package intervention

import "testing"

func triggerIDs(active []ActiveTrigger) []string {
	ids := make([]string, len(active))
	for i, a := range active {
		ids[i] = a.TriggerID
	}
	return ids
}

func TestEvaluate_QuietContext(t *testing.T) {
	if active := Evaluate(Context{}, nil); len(active) != 0 {
		t.Errorf("zero context fired %v, want nothing", triggerIDs(active))
	}
}

func TestEvaluate_SingleTriggers(t *testing.T) {
	tests := []struct {
		name string
		ctx  Context
		want string
	}{
		{"overconfidence", Context{OverconfidenceRate: 0.5}, "overconfidence_high"},
		{"avoidant struggle", Context{HelpAvoidant: true, ConsecutiveFailures: 3}, "help_avoidant_struggling"},
		{"extended struggle", Context{SessionAttempts: 12, SessionAccuracy: 0.25}, "extended_struggle"},
		{"low persistence", Context{PersistenceKnown: true, PersistenceScore: 0.2, ConsecutiveFailures: 2}, "low_persistence_failure"},
		{"all easy", Context{AllMasteredEasy: true}, "mastery_all_easy"},
		{"success streak", Context{ConsecutiveSuccesses: 5}, "success_streak"},
		{"long session", Context{SessionMinutes: 50}, "long_session"},
	}

	for _, tc := range tests {
		active := Evaluate(tc.ctx, nil)
		if len(active) != 1 || active[0].TriggerID != tc.want {
			t.Errorf("%s: fired %v, want [%s]", tc.name, triggerIDs(active), tc.want)
		}
	}
}

func TestEvaluate_BoundaryConditions(t *testing.T) {
	// Exactly at a threshold that requires strict inequality.
	if active := Evaluate(Context{OverconfidenceRate: 0.4}, nil); len(active) != 0 {
		t.Errorf("overconfidence at 0.4 fired %v, want nothing", triggerIDs(active))
	}
	// Unknown persistence must not be read as zero.
	if active := Evaluate(Context{PersistenceScore: 0, ConsecutiveFailures: 2}, nil); len(active) != 0 {
		t.Errorf("unknown persistence fired %v, want nothing", triggerIDs(active))
	}
	// Two failures alone, without avoidance, fires nothing at high priority.
	active := Evaluate(Context{ConsecutiveFailures: 3}, nil)
	if len(active) != 0 {
		t.Errorf("failures without avoidance fired %v", triggerIDs(active))
	}
}

func TestEvaluate_PriorityOrder(t *testing.T) {
	ctx := Context{
		OverconfidenceRate:   0.5, // high
		AllMasteredEasy:      true, // medium
		ConsecutiveSuccesses: 5,   // low
	}
	active := Evaluate(ctx, nil)
	if len(active) != 3 {
		t.Fatalf("fired %v, want 3 triggers", triggerIDs(active))
	}
	if active[0].Priority != PriorityHigh || active[1].Priority != PriorityMedium || active[2].Priority != PriorityLow {
		t.Errorf("priorities out of order: %v", triggerIDs(active))
	}
}

func TestEvaluate_Dismissal(t *testing.T) {
	ctx := Context{AllMasteredEasy: true}

	active := Evaluate(ctx, nil)
	if len(active) != 1 {
		t.Fatal("expected the trigger to fire")
	}

	dismissed := map[string]bool{active[0].DismissKey.String(): true}
	if again := Evaluate(ctx, dismissed); len(again) != 0 {
		t.Errorf("dismissed trigger refired: %v", triggerIDs(again))
	}
}

func TestEvaluate_BucketedRefire(t *testing.T) {
	ctx := Context{ConsecutiveSuccesses: 5}
	first := Evaluate(ctx, nil)
	if len(first) != 1 {
		t.Fatal("streak trigger did not fire")
	}
	if first[0].DismissKey.Bucket != 1 {
		t.Errorf("Bucket = %d, want 1 at streak 5", first[0].DismissKey.Bucket)
	}

	dismissed := map[string]bool{first[0].DismissKey.String(): true}

	// Streak 9 is the same bucket: stays quiet.
	ctx.ConsecutiveSuccesses = 9
	if again := Evaluate(ctx, dismissed); len(again) != 0 {
		t.Errorf("same bucket refired: %v", triggerIDs(again))
	}

	// Streak 10 rolls into the next bucket and legitimately refires.
	ctx.ConsecutiveSuccesses = 10
	again := Evaluate(ctx, dismissed)
	if len(again) != 1 || again[0].DismissKey.Bucket != 2 {
		t.Errorf("next bucket did not refire: %v", triggerIDs(again))
	}
}

func TestEvaluate_SessionBuckets(t *testing.T) {
	ctx := Context{SessionMinutes: 46}
	first := Evaluate(ctx, nil)
	if len(first) != 1 || first[0].DismissKey.Bucket != 3 {
		t.Fatalf("minute 46: fired %v, want long_session bucket 3", triggerIDs(first))
	}

	dismissed := map[string]bool{first[0].DismissKey.String(): true}
	ctx.SessionMinutes = 61
	again := Evaluate(ctx, dismissed)
	if len(again) != 1 || again[0].DismissKey.Bucket != 4 {
		t.Errorf("minute 61 did not roll into bucket 4: %v", triggerIDs(again))
	}
}

func TestKey_String(t *testing.T) {
	k := Key{TriggerID: "long_session", Bucket: 3}
	if got := k.String(); got != "long_session#3" {
		t.Errorf("String = %q, want long_session#3", got)
	}
}

// Package intervention evaluates a fixed, ordered table of trigger rules
// over recent learner signals and emits prioritized metacognitive and
// motivational nudges. Dismiss keys are bucketed so time- and streak-based
// triggers can legitimately refire later in a session.
package intervention

import (
	"fmt"
	"sort"
)

// Dimension groups triggers by the learner facet they address.
type Dimension string

const (
	DimensionMetacognitive  Dimension = "metacognitive"
	DimensionMotivational   Dimension = "motivational"
	DimensionSelfRegulation Dimension = "self-regulation"
)

// Priority orders concurrent triggers; higher fires first.
type Priority int

const (
	PriorityLow Priority = iota + 1
	PriorityMedium
	PriorityHigh
)

// Context carries the profile and session signals the predicates inspect.
// Zero values are safe: absent signals simply never fire their triggers.
type Context struct {
	OverconfidenceRate  float64
	UnderconfidenceRate float64
	HelpAvoidant        bool
	HelpExcessive       bool
	PersistenceScore    float64
	// PersistenceKnown distinguishes a true 0 score from an absent one.
	PersistenceKnown bool

	ConsecutiveFailures  int
	ConsecutiveSuccesses int
	SessionMinutes       int
	SessionAttempts      int
	SessionAccuracy      float64
	// AllMasteredEasy is set when every mastered skill sits in the low
	// difficulty band, suggesting the learner avoids challenge.
	AllMasteredEasy bool
}

// Key is a tagged dismiss key: trigger id plus bucket index. Callers store
// fired keys and pass them back as the dismissed set; bucketed triggers
// produce a new key when the session moves into the next bucket.
type Key struct {
	TriggerID string
	Bucket    int
}

func (k Key) String() string {
	return fmt.Sprintf("%s#%d", k.TriggerID, k.Bucket)
}

// ActiveTrigger is one firing intervention.
type ActiveTrigger struct {
	TriggerID  string
	Dimension  Dimension
	Priority   Priority
	Message    string
	DismissKey Key
}

// trigger is a row of the rule table.
type trigger struct {
	id        string
	dimension Dimension
	priority  Priority
	message   string
	matches   func(Context) bool
	// bucket segments the dismiss key; nil means a single session-wide
	// bucket (fires once until dismissed, never refires).
	bucket func(Context) int
}

// Buckets for refiring triggers.
const (
	sessionBucketMinutes = 15
	streakBucketSize     = 5
)

// triggerTable is the fixed rule set, evaluated in order. Priority decides
// the output order; table order is the tie-break within a priority.
var triggerTable = []trigger{
	{
		id:        "overconfidence_high",
		dimension: DimensionMetacognitive,
		priority:  PriorityHigh,
		message:   "Your confidence is running ahead of your accuracy. Slow down and double-check before submitting.",
		matches: func(c Context) bool {
			return c.OverconfidenceRate > 0.4
		},
	},
	{
		id:        "help_avoidant_struggling",
		dimension: DimensionSelfRegulation,
		priority:  PriorityHigh,
		message:   "You've hit a wall and haven't asked for help. A hint now will save the session.",
		matches: func(c Context) bool {
			return c.HelpAvoidant && c.ConsecutiveFailures >= 3
		},
	},
	{
		id:        "extended_struggle",
		dimension: DimensionMotivational,
		priority:  PriorityHigh,
		message:   "This one is putting up a fight. Consider stepping back to an easier skill and returning later.",
		matches: func(c Context) bool {
			return c.SessionAttempts >= 10 && c.SessionAccuracy < 0.4
		},
	},
	{
		id:        "low_persistence_failure",
		dimension: DimensionMotivational,
		priority:  PriorityMedium,
		message:   "Two misses in a row is normal. One more careful attempt before moving on.",
		matches: func(c Context) bool {
			return c.PersistenceKnown && c.PersistenceScore < 0.3 && c.ConsecutiveFailures >= 2
		},
	},
	{
		id:        "mastery_all_easy",
		dimension: DimensionMotivational,
		priority:  PriorityMedium,
		message:   "Everything you've mastered so far has been on the easy end. Time to pick a harder skill.",
		matches: func(c Context) bool {
			return c.AllMasteredEasy
		},
	},
	{
		id:        "success_streak",
		dimension: DimensionMotivational,
		priority:  PriorityLow,
		message:   "That's a streak. Keep it rolling or bank it on a tougher problem.",
		matches: func(c Context) bool {
			return c.ConsecutiveSuccesses >= 5
		},
		bucket: func(c Context) int {
			return c.ConsecutiveSuccesses / streakBucketSize
		},
	},
	{
		id:        "long_session",
		dimension: DimensionSelfRegulation,
		priority:  PriorityLow,
		message:   "You've been at this a while. A short break improves retention.",
		matches: func(c Context) bool {
			return c.SessionMinutes >= 45
		},
		bucket: func(c Context) int {
			return c.SessionMinutes / sessionBucketMinutes
		},
	},
}

// Evaluate runs every trigger predicate against the context, drops triggers
// whose dismiss key appears in dismissed, and returns the remainder sorted
// by priority descending. Callers typically act on the head of the list.
func Evaluate(c Context, dismissed map[string]bool) []ActiveTrigger {
	var active []ActiveTrigger
	for _, t := range triggerTable {
		if !t.matches(c) {
			continue
		}
		key := Key{TriggerID: t.id}
		if t.bucket != nil {
			key.Bucket = t.bucket(c)
		}
		if dismissed[key.String()] {
			continue
		}
		active = append(active, ActiveTrigger{
			TriggerID:  t.id,
			Dimension:  t.dimension,
			Priority:   t.priority,
			Message:    t.message,
			DismissKey: key,
		})
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records a single practice attempt. The append-only attempt
// log is the authoritative chronological history replayed by the parameter
// fitter.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Bool("correct"),
		field.Int("response_ms").Default(0),
		field.Int("expected_ms").Default(0),
		field.Int("quality"),
		field.Float("p_mastery_after"),
		field.String("session_id").Optional(),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_id"),
	}
}

package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FitEvent records one EM parameter-fitting run, keeping a recalibration
// history per (learner, skill).
type FitEvent struct {
	ent.Schema
}

func (FitEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (FitEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").NotEmpty(),
		field.String("skill_id").NotEmpty(),
		field.Float("p_l0"),
		field.Float("p_t"),
		field.Float("p_s"),
		field.Float("p_g"),
		field.Float("log_likelihood"),
		field.Int("iterations"),
		field.Bool("converged"),
		field.String("quality").NotEmpty(),
		field.Int("sample_size"),
	}
}

func (FitEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id", "skill_id"),
	}
}

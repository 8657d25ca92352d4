// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/masteryevent"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// MasteryEventUpdate is the builder for updating MasteryEvent entities.
type MasteryEventUpdate struct {
	config
	hooks    []Hook
	mutation *MasteryEventMutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meu *MasteryEventUpdate) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdate {
	meu.mutation.Where(ps...)
	return meu
}

// SetLearnerID sets the "learner_id" field.
func (meu *MasteryEventUpdate) SetLearnerID(s string) *MasteryEventUpdate {
	meu.mutation.SetLearnerID(s)
	return meu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableLearnerID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetLearnerID(*s)
	}
	return meu
}

// SetSkillID sets the "skill_id" field.
func (meu *MasteryEventUpdate) SetSkillID(s string) *MasteryEventUpdate {
	meu.mutation.SetSkillID(s)
	return meu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableSkillID(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetSkillID(*s)
	}
	return meu
}

// SetFromStatus sets the "from_status" field.
func (meu *MasteryEventUpdate) SetFromStatus(s string) *MasteryEventUpdate {
	meu.mutation.SetFromStatus(s)
	return meu
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableFromStatus(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetFromStatus(*s)
	}
	return meu
}

// SetToStatus sets the "to_status" field.
func (meu *MasteryEventUpdate) SetToStatus(s string) *MasteryEventUpdate {
	meu.mutation.SetToStatus(s)
	return meu
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableToStatus(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetToStatus(*s)
	}
	return meu
}

// SetTrigger sets the "trigger" field.
func (meu *MasteryEventUpdate) SetTrigger(s string) *MasteryEventUpdate {
	meu.mutation.SetTrigger(s)
	return meu
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillableTrigger(s *string) *MasteryEventUpdate {
	if s != nil {
		meu.SetTrigger(*s)
	}
	return meu
}

// SetPMastery sets the "p_mastery" field.
func (meu *MasteryEventUpdate) SetPMastery(f float64) *MasteryEventUpdate {
	meu.mutation.ResetPMastery()
	meu.mutation.SetPMastery(f)
	return meu
}

// SetNillablePMastery sets the "p_mastery" field if the given value is not nil.
func (meu *MasteryEventUpdate) SetNillablePMastery(f *float64) *MasteryEventUpdate {
	if f != nil {
		meu.SetPMastery(*f)
	}
	return meu
}

// AddPMastery adds f to the "p_mastery" field.
func (meu *MasteryEventUpdate) AddPMastery(f float64) *MasteryEventUpdate {
	meu.mutation.AddPMastery(f)
	return meu
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meu *MasteryEventUpdate) Mutation() *MasteryEventMutation {
	return meu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (meu *MasteryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, meu.sqlSave, meu.mutation, meu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meu *MasteryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := meu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (meu *MasteryEventUpdate) Exec(ctx context.Context) error {
	_, err := meu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meu *MasteryEventUpdate) ExecX(ctx context.Context) {
	if err := meu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meu *MasteryEventUpdate) check() error {
	if v, ok := meu.mutation.LearnerID(); ok {
		if err := masteryevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := meu.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := meu.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := meu.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	if v, ok := meu.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (meu *MasteryEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := meu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	if ps := meu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meu.mutation.LearnerID(); ok {
		_spec.SetField(masteryevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := meu.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := meu.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := meu.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := meu.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := meu.mutation.PMastery(); ok {
		_spec.SetField(masteryevent.FieldPMastery, field.TypeFloat64, value)
	}
	if value, ok := meu.mutation.AddedPMastery(); ok {
		_spec.AddField(masteryevent.FieldPMastery, field.TypeFloat64, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, meu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	meu.mutation.done = true
	return n, nil
}

// MasteryEventUpdateOne is the builder for updating a single MasteryEvent entity.
type MasteryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MasteryEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (meuo *MasteryEventUpdateOne) SetLearnerID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetLearnerID(s)
	return meuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableLearnerID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetLearnerID(*s)
	}
	return meuo
}

// SetSkillID sets the "skill_id" field.
func (meuo *MasteryEventUpdateOne) SetSkillID(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetSkillID(s)
	return meuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableSkillID(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetSkillID(*s)
	}
	return meuo
}

// SetFromStatus sets the "from_status" field.
func (meuo *MasteryEventUpdateOne) SetFromStatus(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetFromStatus(s)
	return meuo
}

// SetNillableFromStatus sets the "from_status" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableFromStatus(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetFromStatus(*s)
	}
	return meuo
}

// SetToStatus sets the "to_status" field.
func (meuo *MasteryEventUpdateOne) SetToStatus(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetToStatus(s)
	return meuo
}

// SetNillableToStatus sets the "to_status" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableToStatus(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetToStatus(*s)
	}
	return meuo
}

// SetTrigger sets the "trigger" field.
func (meuo *MasteryEventUpdateOne) SetTrigger(s string) *MasteryEventUpdateOne {
	meuo.mutation.SetTrigger(s)
	return meuo
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillableTrigger(s *string) *MasteryEventUpdateOne {
	if s != nil {
		meuo.SetTrigger(*s)
	}
	return meuo
}

// SetPMastery sets the "p_mastery" field.
func (meuo *MasteryEventUpdateOne) SetPMastery(f float64) *MasteryEventUpdateOne {
	meuo.mutation.ResetPMastery()
	meuo.mutation.SetPMastery(f)
	return meuo
}

// SetNillablePMastery sets the "p_mastery" field if the given value is not nil.
func (meuo *MasteryEventUpdateOne) SetNillablePMastery(f *float64) *MasteryEventUpdateOne {
	if f != nil {
		meuo.SetPMastery(*f)
	}
	return meuo
}

// AddPMastery adds f to the "p_mastery" field.
func (meuo *MasteryEventUpdateOne) AddPMastery(f float64) *MasteryEventUpdateOne {
	meuo.mutation.AddPMastery(f)
	return meuo
}

// Mutation returns the MasteryEventMutation object of the builder.
func (meuo *MasteryEventUpdateOne) Mutation() *MasteryEventMutation {
	return meuo.mutation
}

// Where appends a list predicates to the MasteryEventUpdate builder.
func (meuo *MasteryEventUpdateOne) Where(ps ...predicate.MasteryEvent) *MasteryEventUpdateOne {
	meuo.mutation.Where(ps...)
	return meuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (meuo *MasteryEventUpdateOne) Select(field string, fields ...string) *MasteryEventUpdateOne {
	meuo.fields = append([]string{field}, fields...)
	return meuo
}

// Save executes the query and returns the updated MasteryEvent entity.
func (meuo *MasteryEventUpdateOne) Save(ctx context.Context) (*MasteryEvent, error) {
	return withHooks(ctx, meuo.sqlSave, meuo.mutation, meuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) SaveX(ctx context.Context) *MasteryEvent {
	node, err := meuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (meuo *MasteryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := meuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (meuo *MasteryEventUpdateOne) ExecX(ctx context.Context) {
	if err := meuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (meuo *MasteryEventUpdateOne) check() error {
	if v, ok := meuo.mutation.LearnerID(); ok {
		if err := masteryevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.SkillID(); ok {
		if err := masteryevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.FromStatus(); ok {
		if err := masteryevent.FromStatusValidator(v); err != nil {
			return &ValidationError{Name: "from_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.from_status": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.ToStatus(); ok {
		if err := masteryevent.ToStatusValidator(v); err != nil {
			return &ValidationError{Name: "to_status", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.to_status": %w`, err)}
		}
	}
	if v, ok := meuo.mutation.Trigger(); ok {
		if err := masteryevent.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "MasteryEvent.trigger": %w`, err)}
		}
	}
	return nil
}

func (meuo *MasteryEventUpdateOne) sqlSave(ctx context.Context) (_node *MasteryEvent, err error) {
	if err := meuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(masteryevent.Table, masteryevent.Columns, sqlgraph.NewFieldSpec(masteryevent.FieldID, field.TypeInt))
	id, ok := meuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MasteryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := meuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, masteryevent.FieldID)
		for _, f := range fields {
			if !masteryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != masteryevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := meuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := meuo.mutation.LearnerID(); ok {
		_spec.SetField(masteryevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.SkillID(); ok {
		_spec.SetField(masteryevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := meuo.mutation.FromStatus(); ok {
		_spec.SetField(masteryevent.FieldFromStatus, field.TypeString, value)
	}
	if value, ok := meuo.mutation.ToStatus(); ok {
		_spec.SetField(masteryevent.FieldToStatus, field.TypeString, value)
	}
	if value, ok := meuo.mutation.Trigger(); ok {
		_spec.SetField(masteryevent.FieldTrigger, field.TypeString, value)
	}
	if value, ok := meuo.mutation.PMastery(); ok {
		_spec.SetField(masteryevent.FieldPMastery, field.TypeFloat64, value)
	}
	if value, ok := meuo.mutation.AddedPMastery(); ok {
		_spec.AddField(masteryevent.FieldPMastery, field.TypeFloat64, value)
	}
	_node = &MasteryEvent{config: meuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, meuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{masteryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	meuo.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/attemptevent"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeu *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	aeu.mutation.Where(ps...)
	return aeu
}

// SetLearnerID sets the "learner_id" field.
func (aeu *AttemptEventUpdate) SetLearnerID(s string) *AttemptEventUpdate {
	aeu.mutation.SetLearnerID(s)
	return aeu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableLearnerID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetLearnerID(*s)
	}
	return aeu
}

// SetSkillID sets the "skill_id" field.
func (aeu *AttemptEventUpdate) SetSkillID(s string) *AttemptEventUpdate {
	aeu.mutation.SetSkillID(s)
	return aeu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSkillID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetSkillID(*s)
	}
	return aeu
}

// SetCorrect sets the "correct" field.
func (aeu *AttemptEventUpdate) SetCorrect(b bool) *AttemptEventUpdate {
	aeu.mutation.SetCorrect(b)
	return aeu
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableCorrect(b *bool) *AttemptEventUpdate {
	if b != nil {
		aeu.SetCorrect(*b)
	}
	return aeu
}

// SetResponseMs sets the "response_ms" field.
func (aeu *AttemptEventUpdate) SetResponseMs(i int) *AttemptEventUpdate {
	aeu.mutation.ResetResponseMs()
	aeu.mutation.SetResponseMs(i)
	return aeu
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableResponseMs(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetResponseMs(*i)
	}
	return aeu
}

// AddResponseMs adds i to the "response_ms" field.
func (aeu *AttemptEventUpdate) AddResponseMs(i int) *AttemptEventUpdate {
	aeu.mutation.AddResponseMs(i)
	return aeu
}

// SetExpectedMs sets the "expected_ms" field.
func (aeu *AttemptEventUpdate) SetExpectedMs(i int) *AttemptEventUpdate {
	aeu.mutation.ResetExpectedMs()
	aeu.mutation.SetExpectedMs(i)
	return aeu
}

// SetNillableExpectedMs sets the "expected_ms" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableExpectedMs(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetExpectedMs(*i)
	}
	return aeu
}

// AddExpectedMs adds i to the "expected_ms" field.
func (aeu *AttemptEventUpdate) AddExpectedMs(i int) *AttemptEventUpdate {
	aeu.mutation.AddExpectedMs(i)
	return aeu
}

// SetQuality sets the "quality" field.
func (aeu *AttemptEventUpdate) SetQuality(i int) *AttemptEventUpdate {
	aeu.mutation.ResetQuality()
	aeu.mutation.SetQuality(i)
	return aeu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableQuality(i *int) *AttemptEventUpdate {
	if i != nil {
		aeu.SetQuality(*i)
	}
	return aeu
}

// AddQuality adds i to the "quality" field.
func (aeu *AttemptEventUpdate) AddQuality(i int) *AttemptEventUpdate {
	aeu.mutation.AddQuality(i)
	return aeu
}

// SetPMasteryAfter sets the "p_mastery_after" field.
func (aeu *AttemptEventUpdate) SetPMasteryAfter(f float64) *AttemptEventUpdate {
	aeu.mutation.ResetPMasteryAfter()
	aeu.mutation.SetPMasteryAfter(f)
	return aeu
}

// SetNillablePMasteryAfter sets the "p_mastery_after" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillablePMasteryAfter(f *float64) *AttemptEventUpdate {
	if f != nil {
		aeu.SetPMasteryAfter(*f)
	}
	return aeu
}

// AddPMasteryAfter adds f to the "p_mastery_after" field.
func (aeu *AttemptEventUpdate) AddPMasteryAfter(f float64) *AttemptEventUpdate {
	aeu.mutation.AddPMasteryAfter(f)
	return aeu
}

// SetSessionID sets the "session_id" field.
func (aeu *AttemptEventUpdate) SetSessionID(s string) *AttemptEventUpdate {
	aeu.mutation.SetSessionID(s)
	return aeu
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeu *AttemptEventUpdate) SetNillableSessionID(s *string) *AttemptEventUpdate {
	if s != nil {
		aeu.SetSessionID(*s)
	}
	return aeu
}

// ClearSessionID clears the value of the "session_id" field.
func (aeu *AttemptEventUpdate) ClearSessionID() *AttemptEventUpdate {
	aeu.mutation.ClearSessionID()
	return aeu
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeu *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return aeu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (aeu *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, aeu.sqlSave, aeu.mutation, aeu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeu *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := aeu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (aeu *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := aeu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeu *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := aeu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeu *AttemptEventUpdate) check() error {
	if v, ok := aeu.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeu.mutation.SkillID(); ok {
		if err := attemptevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (aeu *AttemptEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := aeu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := aeu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeu.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.SkillID(); ok {
		_spec.SetField(attemptevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := aeu.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeu.mutation.ResponseMs(); ok {
		_spec.SetField(attemptevent.FieldResponseMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedResponseMs(); ok {
		_spec.AddField(attemptevent.FieldResponseMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.ExpectedMs(); ok {
		_spec.SetField(attemptevent.FieldExpectedMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedExpectedMs(); ok {
		_spec.AddField(attemptevent.FieldExpectedMs, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeu.mutation.PMasteryAfter(); ok {
		_spec.SetField(attemptevent.FieldPMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.AddedPMasteryAfter(); ok {
		_spec.AddField(attemptevent.FieldPMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := aeu.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if aeu.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, aeu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	aeu.mutation.done = true
	return n, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (aeuo *AttemptEventUpdateOne) SetLearnerID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetLearnerID(s)
	return aeuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableLearnerID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetLearnerID(*s)
	}
	return aeuo
}

// SetSkillID sets the "skill_id" field.
func (aeuo *AttemptEventUpdateOne) SetSkillID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSkillID(s)
	return aeuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSkillID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetSkillID(*s)
	}
	return aeuo
}

// SetCorrect sets the "correct" field.
func (aeuo *AttemptEventUpdateOne) SetCorrect(b bool) *AttemptEventUpdateOne {
	aeuo.mutation.SetCorrect(b)
	return aeuo
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableCorrect(b *bool) *AttemptEventUpdateOne {
	if b != nil {
		aeuo.SetCorrect(*b)
	}
	return aeuo
}

// SetResponseMs sets the "response_ms" field.
func (aeuo *AttemptEventUpdateOne) SetResponseMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetResponseMs()
	aeuo.mutation.SetResponseMs(i)
	return aeuo
}

// SetNillableResponseMs sets the "response_ms" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableResponseMs(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetResponseMs(*i)
	}
	return aeuo
}

// AddResponseMs adds i to the "response_ms" field.
func (aeuo *AttemptEventUpdateOne) AddResponseMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddResponseMs(i)
	return aeuo
}

// SetExpectedMs sets the "expected_ms" field.
func (aeuo *AttemptEventUpdateOne) SetExpectedMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetExpectedMs()
	aeuo.mutation.SetExpectedMs(i)
	return aeuo
}

// SetNillableExpectedMs sets the "expected_ms" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableExpectedMs(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetExpectedMs(*i)
	}
	return aeuo
}

// AddExpectedMs adds i to the "expected_ms" field.
func (aeuo *AttemptEventUpdateOne) AddExpectedMs(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddExpectedMs(i)
	return aeuo
}

// SetQuality sets the "quality" field.
func (aeuo *AttemptEventUpdateOne) SetQuality(i int) *AttemptEventUpdateOne {
	aeuo.mutation.ResetQuality()
	aeuo.mutation.SetQuality(i)
	return aeuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableQuality(i *int) *AttemptEventUpdateOne {
	if i != nil {
		aeuo.SetQuality(*i)
	}
	return aeuo
}

// AddQuality adds i to the "quality" field.
func (aeuo *AttemptEventUpdateOne) AddQuality(i int) *AttemptEventUpdateOne {
	aeuo.mutation.AddQuality(i)
	return aeuo
}

// SetPMasteryAfter sets the "p_mastery_after" field.
func (aeuo *AttemptEventUpdateOne) SetPMasteryAfter(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.ResetPMasteryAfter()
	aeuo.mutation.SetPMasteryAfter(f)
	return aeuo
}

// SetNillablePMasteryAfter sets the "p_mastery_after" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillablePMasteryAfter(f *float64) *AttemptEventUpdateOne {
	if f != nil {
		aeuo.SetPMasteryAfter(*f)
	}
	return aeuo
}

// AddPMasteryAfter adds f to the "p_mastery_after" field.
func (aeuo *AttemptEventUpdateOne) AddPMasteryAfter(f float64) *AttemptEventUpdateOne {
	aeuo.mutation.AddPMasteryAfter(f)
	return aeuo
}

// SetSessionID sets the "session_id" field.
func (aeuo *AttemptEventUpdateOne) SetSessionID(s string) *AttemptEventUpdateOne {
	aeuo.mutation.SetSessionID(s)
	return aeuo
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (aeuo *AttemptEventUpdateOne) SetNillableSessionID(s *string) *AttemptEventUpdateOne {
	if s != nil {
		aeuo.SetSessionID(*s)
	}
	return aeuo
}

// ClearSessionID clears the value of the "session_id" field.
func (aeuo *AttemptEventUpdateOne) ClearSessionID() *AttemptEventUpdateOne {
	aeuo.mutation.ClearSessionID()
	return aeuo
}

// Mutation returns the AttemptEventMutation object of the builder.
func (aeuo *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return aeuo.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (aeuo *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	aeuo.mutation.Where(ps...)
	return aeuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (aeuo *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	aeuo.fields = append([]string{field}, fields...)
	return aeuo
}

// Save executes the query and returns the updated AttemptEvent entity.
func (aeuo *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, aeuo.sqlSave, aeuo.mutation, aeuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := aeuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (aeuo *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := aeuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (aeuo *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := aeuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (aeuo *AttemptEventUpdateOne) check() error {
	if v, ok := aeuo.mutation.LearnerID(); ok {
		if err := attemptevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := aeuo.mutation.SkillID(); ok {
		if err := attemptevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.skill_id": %w`, err)}
		}
	}
	return nil
}

func (aeuo *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := aeuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := aeuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := aeuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := aeuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := aeuo.mutation.LearnerID(); ok {
		_spec.SetField(attemptevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.SkillID(); ok {
		_spec.SetField(attemptevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := aeuo.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := aeuo.mutation.ResponseMs(); ok {
		_spec.SetField(attemptevent.FieldResponseMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedResponseMs(); ok {
		_spec.AddField(attemptevent.FieldResponseMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.ExpectedMs(); ok {
		_spec.SetField(attemptevent.FieldExpectedMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedExpectedMs(); ok {
		_spec.AddField(attemptevent.FieldExpectedMs, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.Quality(); ok {
		_spec.SetField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.AddedQuality(); ok {
		_spec.AddField(attemptevent.FieldQuality, field.TypeInt, value)
	}
	if value, ok := aeuo.mutation.PMasteryAfter(); ok {
		_spec.SetField(attemptevent.FieldPMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.AddedPMasteryAfter(); ok {
		_spec.AddField(attemptevent.FieldPMasteryAfter, field.TypeFloat64, value)
	}
	if value, ok := aeuo.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if aeuo.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	_node = &AttemptEvent{config: aeuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, aeuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	aeuo.mutation.done = true
	return _node, nil
}

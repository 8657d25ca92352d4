// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/fitevent"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// FitEventUpdate is the builder for updating FitEvent entities.
type FitEventUpdate struct {
	config
	hooks    []Hook
	mutation *FitEventMutation
}

// Where appends a list predicates to the FitEventUpdate builder.
func (feu *FitEventUpdate) Where(ps ...predicate.FitEvent) *FitEventUpdate {
	feu.mutation.Where(ps...)
	return feu
}

// SetLearnerID sets the "learner_id" field.
func (feu *FitEventUpdate) SetLearnerID(s string) *FitEventUpdate {
	feu.mutation.SetLearnerID(s)
	return feu
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableLearnerID(s *string) *FitEventUpdate {
	if s != nil {
		feu.SetLearnerID(*s)
	}
	return feu
}

// SetSkillID sets the "skill_id" field.
func (feu *FitEventUpdate) SetSkillID(s string) *FitEventUpdate {
	feu.mutation.SetSkillID(s)
	return feu
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableSkillID(s *string) *FitEventUpdate {
	if s != nil {
		feu.SetSkillID(*s)
	}
	return feu
}

// SetPL0 sets the "p_l0" field.
func (feu *FitEventUpdate) SetPL0(f float64) *FitEventUpdate {
	feu.mutation.ResetPL0()
	feu.mutation.SetPL0(f)
	return feu
}

// SetNillablePL0 sets the "p_l0" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillablePL0(f *float64) *FitEventUpdate {
	if f != nil {
		feu.SetPL0(*f)
	}
	return feu
}

// AddPL0 adds f to the "p_l0" field.
func (feu *FitEventUpdate) AddPL0(f float64) *FitEventUpdate {
	feu.mutation.AddPL0(f)
	return feu
}

// SetPT sets the "p_t" field.
func (feu *FitEventUpdate) SetPT(f float64) *FitEventUpdate {
	feu.mutation.ResetPT()
	feu.mutation.SetPT(f)
	return feu
}

// SetNillablePT sets the "p_t" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillablePT(f *float64) *FitEventUpdate {
	if f != nil {
		feu.SetPT(*f)
	}
	return feu
}

// AddPT adds f to the "p_t" field.
func (feu *FitEventUpdate) AddPT(f float64) *FitEventUpdate {
	feu.mutation.AddPT(f)
	return feu
}

// SetPS sets the "p_s" field.
func (feu *FitEventUpdate) SetPS(f float64) *FitEventUpdate {
	feu.mutation.ResetPS()
	feu.mutation.SetPS(f)
	return feu
}

// SetNillablePS sets the "p_s" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillablePS(f *float64) *FitEventUpdate {
	if f != nil {
		feu.SetPS(*f)
	}
	return feu
}

// AddPS adds f to the "p_s" field.
func (feu *FitEventUpdate) AddPS(f float64) *FitEventUpdate {
	feu.mutation.AddPS(f)
	return feu
}

// SetPG sets the "p_g" field.
func (feu *FitEventUpdate) SetPG(f float64) *FitEventUpdate {
	feu.mutation.ResetPG()
	feu.mutation.SetPG(f)
	return feu
}

// SetNillablePG sets the "p_g" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillablePG(f *float64) *FitEventUpdate {
	if f != nil {
		feu.SetPG(*f)
	}
	return feu
}

// AddPG adds f to the "p_g" field.
func (feu *FitEventUpdate) AddPG(f float64) *FitEventUpdate {
	feu.mutation.AddPG(f)
	return feu
}

// SetLogLikelihood sets the "log_likelihood" field.
func (feu *FitEventUpdate) SetLogLikelihood(f float64) *FitEventUpdate {
	feu.mutation.ResetLogLikelihood()
	feu.mutation.SetLogLikelihood(f)
	return feu
}

// SetNillableLogLikelihood sets the "log_likelihood" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableLogLikelihood(f *float64) *FitEventUpdate {
	if f != nil {
		feu.SetLogLikelihood(*f)
	}
	return feu
}

// AddLogLikelihood adds f to the "log_likelihood" field.
func (feu *FitEventUpdate) AddLogLikelihood(f float64) *FitEventUpdate {
	feu.mutation.AddLogLikelihood(f)
	return feu
}

// SetIterations sets the "iterations" field.
func (feu *FitEventUpdate) SetIterations(i int) *FitEventUpdate {
	feu.mutation.ResetIterations()
	feu.mutation.SetIterations(i)
	return feu
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableIterations(i *int) *FitEventUpdate {
	if i != nil {
		feu.SetIterations(*i)
	}
	return feu
}

// AddIterations adds i to the "iterations" field.
func (feu *FitEventUpdate) AddIterations(i int) *FitEventUpdate {
	feu.mutation.AddIterations(i)
	return feu
}

// SetConverged sets the "converged" field.
func (feu *FitEventUpdate) SetConverged(b bool) *FitEventUpdate {
	feu.mutation.SetConverged(b)
	return feu
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableConverged(b *bool) *FitEventUpdate {
	if b != nil {
		feu.SetConverged(*b)
	}
	return feu
}

// SetQuality sets the "quality" field.
func (feu *FitEventUpdate) SetQuality(s string) *FitEventUpdate {
	feu.mutation.SetQuality(s)
	return feu
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableQuality(s *string) *FitEventUpdate {
	if s != nil {
		feu.SetQuality(*s)
	}
	return feu
}

// SetSampleSize sets the "sample_size" field.
func (feu *FitEventUpdate) SetSampleSize(i int) *FitEventUpdate {
	feu.mutation.ResetSampleSize()
	feu.mutation.SetSampleSize(i)
	return feu
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (feu *FitEventUpdate) SetNillableSampleSize(i *int) *FitEventUpdate {
	if i != nil {
		feu.SetSampleSize(*i)
	}
	return feu
}

// AddSampleSize adds i to the "sample_size" field.
func (feu *FitEventUpdate) AddSampleSize(i int) *FitEventUpdate {
	feu.mutation.AddSampleSize(i)
	return feu
}

// Mutation returns the FitEventMutation object of the builder.
func (feu *FitEventUpdate) Mutation() *FitEventMutation {
	return feu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (feu *FitEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, feu.sqlSave, feu.mutation, feu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (feu *FitEventUpdate) SaveX(ctx context.Context) int {
	affected, err := feu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (feu *FitEventUpdate) Exec(ctx context.Context) error {
	_, err := feu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (feu *FitEventUpdate) ExecX(ctx context.Context) {
	if err := feu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (feu *FitEventUpdate) check() error {
	if v, ok := feu.mutation.LearnerID(); ok {
		if err := fitevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := feu.mutation.SkillID(); ok {
		if err := fitevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := feu.mutation.Quality(); ok {
		if err := fitevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "FitEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (feu *FitEventUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := feu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(fitevent.Table, fitevent.Columns, sqlgraph.NewFieldSpec(fitevent.FieldID, field.TypeInt))
	if ps := feu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := feu.mutation.LearnerID(); ok {
		_spec.SetField(fitevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := feu.mutation.SkillID(); ok {
		_spec.SetField(fitevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := feu.mutation.PL0(); ok {
		_spec.SetField(fitevent.FieldPL0, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.AddedPL0(); ok {
		_spec.AddField(fitevent.FieldPL0, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.PT(); ok {
		_spec.SetField(fitevent.FieldPT, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.AddedPT(); ok {
		_spec.AddField(fitevent.FieldPT, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.PS(); ok {
		_spec.SetField(fitevent.FieldPS, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.AddedPS(); ok {
		_spec.AddField(fitevent.FieldPS, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.PG(); ok {
		_spec.SetField(fitevent.FieldPG, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.AddedPG(); ok {
		_spec.AddField(fitevent.FieldPG, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.LogLikelihood(); ok {
		_spec.SetField(fitevent.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.AddedLogLikelihood(); ok {
		_spec.AddField(fitevent.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := feu.mutation.Iterations(); ok {
		_spec.SetField(fitevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := feu.mutation.AddedIterations(); ok {
		_spec.AddField(fitevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := feu.mutation.Converged(); ok {
		_spec.SetField(fitevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := feu.mutation.Quality(); ok {
		_spec.SetField(fitevent.FieldQuality, field.TypeString, value)
	}
	if value, ok := feu.mutation.SampleSize(); ok {
		_spec.SetField(fitevent.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := feu.mutation.AddedSampleSize(); ok {
		_spec.AddField(fitevent.FieldSampleSize, field.TypeInt, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, feu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fitevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	feu.mutation.done = true
	return n, nil
}

// FitEventUpdateOne is the builder for updating a single FitEvent entity.
type FitEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FitEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (feuo *FitEventUpdateOne) SetLearnerID(s string) *FitEventUpdateOne {
	feuo.mutation.SetLearnerID(s)
	return feuo
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableLearnerID(s *string) *FitEventUpdateOne {
	if s != nil {
		feuo.SetLearnerID(*s)
	}
	return feuo
}

// SetSkillID sets the "skill_id" field.
func (feuo *FitEventUpdateOne) SetSkillID(s string) *FitEventUpdateOne {
	feuo.mutation.SetSkillID(s)
	return feuo
}

// SetNillableSkillID sets the "skill_id" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableSkillID(s *string) *FitEventUpdateOne {
	if s != nil {
		feuo.SetSkillID(*s)
	}
	return feuo
}

// SetPL0 sets the "p_l0" field.
func (feuo *FitEventUpdateOne) SetPL0(f float64) *FitEventUpdateOne {
	feuo.mutation.ResetPL0()
	feuo.mutation.SetPL0(f)
	return feuo
}

// SetNillablePL0 sets the "p_l0" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillablePL0(f *float64) *FitEventUpdateOne {
	if f != nil {
		feuo.SetPL0(*f)
	}
	return feuo
}

// AddPL0 adds f to the "p_l0" field.
func (feuo *FitEventUpdateOne) AddPL0(f float64) *FitEventUpdateOne {
	feuo.mutation.AddPL0(f)
	return feuo
}

// SetPT sets the "p_t" field.
func (feuo *FitEventUpdateOne) SetPT(f float64) *FitEventUpdateOne {
	feuo.mutation.ResetPT()
	feuo.mutation.SetPT(f)
	return feuo
}

// SetNillablePT sets the "p_t" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillablePT(f *float64) *FitEventUpdateOne {
	if f != nil {
		feuo.SetPT(*f)
	}
	return feuo
}

// AddPT adds f to the "p_t" field.
func (feuo *FitEventUpdateOne) AddPT(f float64) *FitEventUpdateOne {
	feuo.mutation.AddPT(f)
	return feuo
}

// SetPS sets the "p_s" field.
func (feuo *FitEventUpdateOne) SetPS(f float64) *FitEventUpdateOne {
	feuo.mutation.ResetPS()
	feuo.mutation.SetPS(f)
	return feuo
}

// SetNillablePS sets the "p_s" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillablePS(f *float64) *FitEventUpdateOne {
	if f != nil {
		feuo.SetPS(*f)
	}
	return feuo
}

// AddPS adds f to the "p_s" field.
func (feuo *FitEventUpdateOne) AddPS(f float64) *FitEventUpdateOne {
	feuo.mutation.AddPS(f)
	return feuo
}

// SetPG sets the "p_g" field.
func (feuo *FitEventUpdateOne) SetPG(f float64) *FitEventUpdateOne {
	feuo.mutation.ResetPG()
	feuo.mutation.SetPG(f)
	return feuo
}

// SetNillablePG sets the "p_g" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillablePG(f *float64) *FitEventUpdateOne {
	if f != nil {
		feuo.SetPG(*f)
	}
	return feuo
}

// AddPG adds f to the "p_g" field.
func (feuo *FitEventUpdateOne) AddPG(f float64) *FitEventUpdateOne {
	feuo.mutation.AddPG(f)
	return feuo
}

// SetLogLikelihood sets the "log_likelihood" field.
func (feuo *FitEventUpdateOne) SetLogLikelihood(f float64) *FitEventUpdateOne {
	feuo.mutation.ResetLogLikelihood()
	feuo.mutation.SetLogLikelihood(f)
	return feuo
}

// SetNillableLogLikelihood sets the "log_likelihood" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableLogLikelihood(f *float64) *FitEventUpdateOne {
	if f != nil {
		feuo.SetLogLikelihood(*f)
	}
	return feuo
}

// AddLogLikelihood adds f to the "log_likelihood" field.
func (feuo *FitEventUpdateOne) AddLogLikelihood(f float64) *FitEventUpdateOne {
	feuo.mutation.AddLogLikelihood(f)
	return feuo
}

// SetIterations sets the "iterations" field.
func (feuo *FitEventUpdateOne) SetIterations(i int) *FitEventUpdateOne {
	feuo.mutation.ResetIterations()
	feuo.mutation.SetIterations(i)
	return feuo
}

// SetNillableIterations sets the "iterations" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableIterations(i *int) *FitEventUpdateOne {
	if i != nil {
		feuo.SetIterations(*i)
	}
	return feuo
}

// AddIterations adds i to the "iterations" field.
func (feuo *FitEventUpdateOne) AddIterations(i int) *FitEventUpdateOne {
	feuo.mutation.AddIterations(i)
	return feuo
}

// SetConverged sets the "converged" field.
func (feuo *FitEventUpdateOne) SetConverged(b bool) *FitEventUpdateOne {
	feuo.mutation.SetConverged(b)
	return feuo
}

// SetNillableConverged sets the "converged" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableConverged(b *bool) *FitEventUpdateOne {
	if b != nil {
		feuo.SetConverged(*b)
	}
	return feuo
}

// SetQuality sets the "quality" field.
func (feuo *FitEventUpdateOne) SetQuality(s string) *FitEventUpdateOne {
	feuo.mutation.SetQuality(s)
	return feuo
}

// SetNillableQuality sets the "quality" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableQuality(s *string) *FitEventUpdateOne {
	if s != nil {
		feuo.SetQuality(*s)
	}
	return feuo
}

// SetSampleSize sets the "sample_size" field.
func (feuo *FitEventUpdateOne) SetSampleSize(i int) *FitEventUpdateOne {
	feuo.mutation.ResetSampleSize()
	feuo.mutation.SetSampleSize(i)
	return feuo
}

// SetNillableSampleSize sets the "sample_size" field if the given value is not nil.
func (feuo *FitEventUpdateOne) SetNillableSampleSize(i *int) *FitEventUpdateOne {
	if i != nil {
		feuo.SetSampleSize(*i)
	}
	return feuo
}

// AddSampleSize adds i to the "sample_size" field.
func (feuo *FitEventUpdateOne) AddSampleSize(i int) *FitEventUpdateOne {
	feuo.mutation.AddSampleSize(i)
	return feuo
}

// Mutation returns the FitEventMutation object of the builder.
func (feuo *FitEventUpdateOne) Mutation() *FitEventMutation {
	return feuo.mutation
}

// Where appends a list predicates to the FitEventUpdate builder.
func (feuo *FitEventUpdateOne) Where(ps ...predicate.FitEvent) *FitEventUpdateOne {
	feuo.mutation.Where(ps...)
	return feuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (feuo *FitEventUpdateOne) Select(field string, fields ...string) *FitEventUpdateOne {
	feuo.fields = append([]string{field}, fields...)
	return feuo
}

// Save executes the query and returns the updated FitEvent entity.
func (feuo *FitEventUpdateOne) Save(ctx context.Context) (*FitEvent, error) {
	return withHooks(ctx, feuo.sqlSave, feuo.mutation, feuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (feuo *FitEventUpdateOne) SaveX(ctx context.Context) *FitEvent {
	node, err := feuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (feuo *FitEventUpdateOne) Exec(ctx context.Context) error {
	_, err := feuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (feuo *FitEventUpdateOne) ExecX(ctx context.Context) {
	if err := feuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (feuo *FitEventUpdateOne) check() error {
	if v, ok := feuo.mutation.LearnerID(); ok {
		if err := fitevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.learner_id": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.SkillID(); ok {
		if err := fitevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.skill_id": %w`, err)}
		}
	}
	if v, ok := feuo.mutation.Quality(); ok {
		if err := fitevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "FitEvent.quality": %w`, err)}
		}
	}
	return nil
}

func (feuo *FitEventUpdateOne) sqlSave(ctx context.Context) (_node *FitEvent, err error) {
	if err := feuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fitevent.Table, fitevent.Columns, sqlgraph.NewFieldSpec(fitevent.FieldID, field.TypeInt))
	id, ok := feuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FitEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := feuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fitevent.FieldID)
		for _, f := range fields {
			if !fitevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fitevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := feuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := feuo.mutation.LearnerID(); ok {
		_spec.SetField(fitevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := feuo.mutation.SkillID(); ok {
		_spec.SetField(fitevent.FieldSkillID, field.TypeString, value)
	}
	if value, ok := feuo.mutation.PL0(); ok {
		_spec.SetField(fitevent.FieldPL0, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.AddedPL0(); ok {
		_spec.AddField(fitevent.FieldPL0, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.PT(); ok {
		_spec.SetField(fitevent.FieldPT, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.AddedPT(); ok {
		_spec.AddField(fitevent.FieldPT, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.PS(); ok {
		_spec.SetField(fitevent.FieldPS, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.AddedPS(); ok {
		_spec.AddField(fitevent.FieldPS, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.PG(); ok {
		_spec.SetField(fitevent.FieldPG, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.AddedPG(); ok {
		_spec.AddField(fitevent.FieldPG, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.LogLikelihood(); ok {
		_spec.SetField(fitevent.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.AddedLogLikelihood(); ok {
		_spec.AddField(fitevent.FieldLogLikelihood, field.TypeFloat64, value)
	}
	if value, ok := feuo.mutation.Iterations(); ok {
		_spec.SetField(fitevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := feuo.mutation.AddedIterations(); ok {
		_spec.AddField(fitevent.FieldIterations, field.TypeInt, value)
	}
	if value, ok := feuo.mutation.Converged(); ok {
		_spec.SetField(fitevent.FieldConverged, field.TypeBool, value)
	}
	if value, ok := feuo.mutation.Quality(); ok {
		_spec.SetField(fitevent.FieldQuality, field.TypeString, value)
	}
	if value, ok := feuo.mutation.SampleSize(); ok {
		_spec.SetField(fitevent.FieldSampleSize, field.TypeInt, value)
	}
	if value, ok := feuo.mutation.AddedSampleSize(); ok {
		_spec.AddField(fitevent.FieldSampleSize, field.TypeInt, value)
	}
	_node = &FitEvent{config: feuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, feuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fitevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	feuo.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/fitevent"
)

// FitEventCreate is the builder for creating a FitEvent entity.
type FitEventCreate struct {
	config
	mutation *FitEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (fec *FitEventCreate) SetSequence(i int64) *FitEventCreate {
	fec.mutation.SetSequence(i)
	return fec
}

// SetTimestamp sets the "timestamp" field.
func (fec *FitEventCreate) SetTimestamp(t time.Time) *FitEventCreate {
	fec.mutation.SetTimestamp(t)
	return fec
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (fec *FitEventCreate) SetNillableTimestamp(t *time.Time) *FitEventCreate {
	if t != nil {
		fec.SetTimestamp(*t)
	}
	return fec
}

// SetLearnerID sets the "learner_id" field.
func (fec *FitEventCreate) SetLearnerID(s string) *FitEventCreate {
	fec.mutation.SetLearnerID(s)
	return fec
}

// SetSkillID sets the "skill_id" field.
func (fec *FitEventCreate) SetSkillID(s string) *FitEventCreate {
	fec.mutation.SetSkillID(s)
	return fec
}

// SetPL0 sets the "p_l0" field.
func (fec *FitEventCreate) SetPL0(f float64) *FitEventCreate {
	fec.mutation.SetPL0(f)
	return fec
}

// SetPT sets the "p_t" field.
func (fec *FitEventCreate) SetPT(f float64) *FitEventCreate {
	fec.mutation.SetPT(f)
	return fec
}

// SetPS sets the "p_s" field.
func (fec *FitEventCreate) SetPS(f float64) *FitEventCreate {
	fec.mutation.SetPS(f)
	return fec
}

// SetPG sets the "p_g" field.
func (fec *FitEventCreate) SetPG(f float64) *FitEventCreate {
	fec.mutation.SetPG(f)
	return fec
}

// SetLogLikelihood sets the "log_likelihood" field.
func (fec *FitEventCreate) SetLogLikelihood(f float64) *FitEventCreate {
	fec.mutation.SetLogLikelihood(f)
	return fec
}

// SetIterations sets the "iterations" field.
func (fec *FitEventCreate) SetIterations(i int) *FitEventCreate {
	fec.mutation.SetIterations(i)
	return fec
}

// SetConverged sets the "converged" field.
func (fec *FitEventCreate) SetConverged(b bool) *FitEventCreate {
	fec.mutation.SetConverged(b)
	return fec
}

// SetQuality sets the "quality" field.
func (fec *FitEventCreate) SetQuality(s string) *FitEventCreate {
	fec.mutation.SetQuality(s)
	return fec
}

// SetSampleSize sets the "sample_size" field.
func (fec *FitEventCreate) SetSampleSize(i int) *FitEventCreate {
	fec.mutation.SetSampleSize(i)
	return fec
}

// Mutation returns the FitEventMutation object of the builder.
func (fec *FitEventCreate) Mutation() *FitEventMutation {
	return fec.mutation
}

// Save creates the FitEvent in the database.
func (fec *FitEventCreate) Save(ctx context.Context) (*FitEvent, error) {
	fec.defaults()
	return withHooks(ctx, fec.sqlSave, fec.mutation, fec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (fec *FitEventCreate) SaveX(ctx context.Context) *FitEvent {
	v, err := fec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fec *FitEventCreate) Exec(ctx context.Context) error {
	_, err := fec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fec *FitEventCreate) ExecX(ctx context.Context) {
	if err := fec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (fec *FitEventCreate) defaults() {
	if _, ok := fec.mutation.Timestamp(); !ok {
		v := fitevent.DefaultTimestamp()
		fec.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (fec *FitEventCreate) check() error {
	if _, ok := fec.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FitEvent.sequence"`)}
	}
	if _, ok := fec.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FitEvent.timestamp"`)}
	}
	if _, ok := fec.mutation.LearnerID(); !ok {
		return &ValidationError{Name: "learner_id", err: errors.New(`ent: missing required field "FitEvent.learner_id"`)}
	}
	if v, ok := fec.mutation.LearnerID(); ok {
		if err := fitevent.LearnerIDValidator(v); err != nil {
			return &ValidationError{Name: "learner_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.learner_id": %w`, err)}
		}
	}
	if _, ok := fec.mutation.SkillID(); !ok {
		return &ValidationError{Name: "skill_id", err: errors.New(`ent: missing required field "FitEvent.skill_id"`)}
	}
	if v, ok := fec.mutation.SkillID(); ok {
		if err := fitevent.SkillIDValidator(v); err != nil {
			return &ValidationError{Name: "skill_id", err: fmt.Errorf(`ent: validator failed for field "FitEvent.skill_id": %w`, err)}
		}
	}
	if _, ok := fec.mutation.PL0(); !ok {
		return &ValidationError{Name: "p_l0", err: errors.New(`ent: missing required field "FitEvent.p_l0"`)}
	}
	if _, ok := fec.mutation.PT(); !ok {
		return &ValidationError{Name: "p_t", err: errors.New(`ent: missing required field "FitEvent.p_t"`)}
	}
	if _, ok := fec.mutation.PS(); !ok {
		return &ValidationError{Name: "p_s", err: errors.New(`ent: missing required field "FitEvent.p_s"`)}
	}
	if _, ok := fec.mutation.PG(); !ok {
		return &ValidationError{Name: "p_g", err: errors.New(`ent: missing required field "FitEvent.p_g"`)}
	}
	if _, ok := fec.mutation.LogLikelihood(); !ok {
		return &ValidationError{Name: "log_likelihood", err: errors.New(`ent: missing required field "FitEvent.log_likelihood"`)}
	}
	if _, ok := fec.mutation.Iterations(); !ok {
		return &ValidationError{Name: "iterations", err: errors.New(`ent: missing required field "FitEvent.iterations"`)}
	}
	if _, ok := fec.mutation.Converged(); !ok {
		return &ValidationError{Name: "converged", err: errors.New(`ent: missing required field "FitEvent.converged"`)}
	}
	if _, ok := fec.mutation.Quality(); !ok {
		return &ValidationError{Name: "quality", err: errors.New(`ent: missing required field "FitEvent.quality"`)}
	}
	if v, ok := fec.mutation.Quality(); ok {
		if err := fitevent.QualityValidator(v); err != nil {
			return &ValidationError{Name: "quality", err: fmt.Errorf(`ent: validator failed for field "FitEvent.quality": %w`, err)}
		}
	}
	if _, ok := fec.mutation.SampleSize(); !ok {
		return &ValidationError{Name: "sample_size", err: errors.New(`ent: missing required field "FitEvent.sample_size"`)}
	}
	return nil
}

func (fec *FitEventCreate) sqlSave(ctx context.Context) (*FitEvent, error) {
	if err := fec.check(); err != nil {
		return nil, err
	}
	_node, _spec := fec.createSpec()
	if err := sqlgraph.CreateNode(ctx, fec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	fec.mutation.id = &_node.ID
	fec.mutation.done = true
	return _node, nil
}

func (fec *FitEventCreate) createSpec() (*FitEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FitEvent{config: fec.config}
		_spec = sqlgraph.NewCreateSpec(fitevent.Table, sqlgraph.NewFieldSpec(fitevent.FieldID, field.TypeInt))
	)
	if value, ok := fec.mutation.Sequence(); ok {
		_spec.SetField(fitevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := fec.mutation.Timestamp(); ok {
		_spec.SetField(fitevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := fec.mutation.LearnerID(); ok {
		_spec.SetField(fitevent.FieldLearnerID, field.TypeString, value)
		_node.LearnerID = value
	}
	if value, ok := fec.mutation.SkillID(); ok {
		_spec.SetField(fitevent.FieldSkillID, field.TypeString, value)
		_node.SkillID = value
	}
	if value, ok := fec.mutation.PL0(); ok {
		_spec.SetField(fitevent.FieldPL0, field.TypeFloat64, value)
		_node.PL0 = value
	}
	if value, ok := fec.mutation.PT(); ok {
		_spec.SetField(fitevent.FieldPT, field.TypeFloat64, value)
		_node.PT = value
	}
	if value, ok := fec.mutation.PS(); ok {
		_spec.SetField(fitevent.FieldPS, field.TypeFloat64, value)
		_node.PS = value
	}
	if value, ok := fec.mutation.PG(); ok {
		_spec.SetField(fitevent.FieldPG, field.TypeFloat64, value)
		_node.PG = value
	}
	if value, ok := fec.mutation.LogLikelihood(); ok {
		_spec.SetField(fitevent.FieldLogLikelihood, field.TypeFloat64, value)
		_node.LogLikelihood = value
	}
	if value, ok := fec.mutation.Iterations(); ok {
		_spec.SetField(fitevent.FieldIterations, field.TypeInt, value)
		_node.Iterations = value
	}
	if value, ok := fec.mutation.Converged(); ok {
		_spec.SetField(fitevent.FieldConverged, field.TypeBool, value)
		_node.Converged = value
	}
	if value, ok := fec.mutation.Quality(); ok {
		_spec.SetField(fitevent.FieldQuality, field.TypeString, value)
		_node.Quality = value
	}
	if value, ok := fec.mutation.SampleSize(); ok {
		_spec.SetField(fitevent.FieldSampleSize, field.TypeInt, value)
		_node.SampleSize = value
	}
	return _node, _spec
}

// FitEventCreateBulk is the builder for creating many FitEvent entities in bulk.
type FitEventCreateBulk struct {
	config
	err      error
	builders []*FitEventCreate
}

// Save creates the FitEvent entities in the database.
func (fecb *FitEventCreateBulk) Save(ctx context.Context) ([]*FitEvent, error) {
	if fecb.err != nil {
		return nil, fecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(fecb.builders))
	nodes := make([]*FitEvent, len(fecb.builders))
	mutators := make([]Mutator, len(fecb.builders))
	for i := range fecb.builders {
		func(i int, root context.Context) {
			builder := fecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FitEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, fecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, fecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, fecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (fecb *FitEventCreateBulk) SaveX(ctx context.Context) []*FitEvent {
	v, err := fecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (fecb *FitEventCreateBulk) Exec(ctx context.Context) error {
	_, err := fecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (fecb *FitEventCreateBulk) ExecX(ctx context.Context) {
	if err := fecb.Exec(ctx); err != nil {
		panic(err)
	}
}

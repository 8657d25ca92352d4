// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/fitevent"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// FitEventDelete is the builder for deleting a FitEvent entity.
type FitEventDelete struct {
	config
	hooks    []Hook
	mutation *FitEventMutation
}

// Where appends a list predicates to the FitEventDelete builder.
func (fed *FitEventDelete) Where(ps ...predicate.FitEvent) *FitEventDelete {
	fed.mutation.Where(ps...)
	return fed
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (fed *FitEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, fed.sqlExec, fed.mutation, fed.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (fed *FitEventDelete) ExecX(ctx context.Context) int {
	n, err := fed.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (fed *FitEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fitevent.Table, sqlgraph.NewFieldSpec(fitevent.FieldID, field.TypeInt))
	if ps := fed.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, fed.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	fed.mutation.done = true
	return affected, err
}

// FitEventDeleteOne is the builder for deleting a single FitEvent entity.
type FitEventDeleteOne struct {
	fed *FitEventDelete
}

// Where appends a list predicates to the FitEventDelete builder.
func (fedo *FitEventDeleteOne) Where(ps ...predicate.FitEvent) *FitEventDeleteOne {
	fedo.fed.mutation.Where(ps...)
	return fedo
}

// Exec executes the deletion query.
func (fedo *FitEventDeleteOne) Exec(ctx context.Context) error {
	n, err := fedo.fed.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fitevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (fedo *FitEventDeleteOne) ExecX(ctx context.Context) {
	if err := fedo.Exec(ctx); err != nil {
		panic(err)
	}
}

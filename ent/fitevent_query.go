// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/tutorkit/ent/fitevent"
	"github.com/abhisek/tutorkit/ent/predicate"
)

// FitEventQuery is the builder for querying FitEvent entities.
type FitEventQuery struct {
	config
	ctx        *QueryContext
	order      []fitevent.OrderOption
	inters     []Interceptor
	predicates []predicate.FitEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the FitEventQuery builder.
func (feq *FitEventQuery) Where(ps ...predicate.FitEvent) *FitEventQuery {
	feq.predicates = append(feq.predicates, ps...)
	return feq
}

// Limit the number of records to be returned by this query.
func (feq *FitEventQuery) Limit(limit int) *FitEventQuery {
	feq.ctx.Limit = &limit
	return feq
}

// Offset to start from.
func (feq *FitEventQuery) Offset(offset int) *FitEventQuery {
	feq.ctx.Offset = &offset
	return feq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (feq *FitEventQuery) Unique(unique bool) *FitEventQuery {
	feq.ctx.Unique = &unique
	return feq
}

// Order specifies how the records should be ordered.
func (feq *FitEventQuery) Order(o ...fitevent.OrderOption) *FitEventQuery {
	feq.order = append(feq.order, o...)
	return feq
}

// First returns the first FitEvent entity from the query.
// Returns a *NotFoundError when no FitEvent was found.
func (feq *FitEventQuery) First(ctx context.Context) (*FitEvent, error) {
	nodes, err := feq.Limit(1).All(setContextOp(ctx, feq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{fitevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (feq *FitEventQuery) FirstX(ctx context.Context) *FitEvent {
	node, err := feq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first FitEvent ID from the query.
// Returns a *NotFoundError when no FitEvent ID was found.
func (feq *FitEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = feq.Limit(1).IDs(setContextOp(ctx, feq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{fitevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (feq *FitEventQuery) FirstIDX(ctx context.Context) int {
	id, err := feq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single FitEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one FitEvent entity is found.
// Returns a *NotFoundError when no FitEvent entities are found.
func (feq *FitEventQuery) Only(ctx context.Context) (*FitEvent, error) {
	nodes, err := feq.Limit(2).All(setContextOp(ctx, feq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{fitevent.Label}
	default:
		return nil, &NotSingularError{fitevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (feq *FitEventQuery) OnlyX(ctx context.Context) *FitEvent {
	node, err := feq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only FitEvent ID in the query.
// Returns a *NotSingularError when more than one FitEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (feq *FitEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = feq.Limit(2).IDs(setContextOp(ctx, feq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{fitevent.Label}
	default:
		err = &NotSingularError{fitevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (feq *FitEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := feq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of FitEvents.
func (feq *FitEventQuery) All(ctx context.Context) ([]*FitEvent, error) {
	ctx = setContextOp(ctx, feq.ctx, ent.OpQueryAll)
	if err := feq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*FitEvent, *FitEventQuery]()
	return withInterceptors[[]*FitEvent](ctx, feq, qr, feq.inters)
}

// AllX is like All, but panics if an error occurs.
func (feq *FitEventQuery) AllX(ctx context.Context) []*FitEvent {
	nodes, err := feq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of FitEvent IDs.
func (feq *FitEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if feq.ctx.Unique == nil && feq.path != nil {
		feq.Unique(true)
	}
	ctx = setContextOp(ctx, feq.ctx, ent.OpQueryIDs)
	if err = feq.Select(fitevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (feq *FitEventQuery) IDsX(ctx context.Context) []int {
	ids, err := feq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (feq *FitEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, feq.ctx, ent.OpQueryCount)
	if err := feq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, feq, querierCount[*FitEventQuery](), feq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (feq *FitEventQuery) CountX(ctx context.Context) int {
	count, err := feq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (feq *FitEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, feq.ctx, ent.OpQueryExist)
	switch _, err := feq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (feq *FitEventQuery) ExistX(ctx context.Context) bool {
	exist, err := feq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the FitEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (feq *FitEventQuery) Clone() *FitEventQuery {
	if feq == nil {
		return nil
	}
	return &FitEventQuery{
		config:     feq.config,
		ctx:        feq.ctx.Clone(),
		order:      append([]fitevent.OrderOption{}, feq.order...),
		inters:     append([]Interceptor{}, feq.inters...),
		predicates: append([]predicate.FitEvent{}, feq.predicates...),
		// clone intermediate query.
		sql:  feq.sql.Clone(),
		path: feq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.FitEvent.Query().
//		GroupBy(fitevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (feq *FitEventQuery) GroupBy(field string, fields ...string) *FitEventGroupBy {
	feq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &FitEventGroupBy{build: feq}
	grbuild.flds = &feq.ctx.Fields
	grbuild.label = fitevent.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.FitEvent.Query().
//		Select(fitevent.FieldSequence).
//		Scan(ctx, &v)
func (feq *FitEventQuery) Select(fields ...string) *FitEventSelect {
	feq.ctx.Fields = append(feq.ctx.Fields, fields...)
	sbuild := &FitEventSelect{FitEventQuery: feq}
	sbuild.label = fitevent.Label
	sbuild.flds, sbuild.scan = &feq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a FitEventSelect configured with the given aggregations.
func (feq *FitEventQuery) Aggregate(fns ...AggregateFunc) *FitEventSelect {
	return feq.Select().Aggregate(fns...)
}

func (feq *FitEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range feq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, feq); err != nil {
				return err
			}
		}
	}
	for _, f := range feq.ctx.Fields {
		if !fitevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if feq.path != nil {
		prev, err := feq.path(ctx)
		if err != nil {
			return err
		}
		feq.sql = prev
	}
	return nil
}

func (feq *FitEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*FitEvent, error) {
	var (
		nodes = []*FitEvent{}
		_spec = feq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*FitEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &FitEvent{config: feq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, feq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (feq *FitEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := feq.querySpec()
	_spec.Node.Columns = feq.ctx.Fields
	if len(feq.ctx.Fields) > 0 {
		_spec.Unique = feq.ctx.Unique != nil && *feq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, feq.driver, _spec)
}

func (feq *FitEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(fitevent.Table, fitevent.Columns, sqlgraph.NewFieldSpec(fitevent.FieldID, field.TypeInt))
	_spec.From = feq.sql
	if unique := feq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if feq.path != nil {
		_spec.Unique = true
	}
	if fields := feq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fitevent.FieldID)
		for i := range fields {
			if fields[i] != fitevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := feq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := feq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := feq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := feq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (feq *FitEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(feq.driver.Dialect())
	t1 := builder.Table(fitevent.Table)
	columns := feq.ctx.Fields
	if len(columns) == 0 {
		columns = fitevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if feq.sql != nil {
		selector = feq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if feq.ctx.Unique != nil && *feq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range feq.predicates {
		p(selector)
	}
	for _, p := range feq.order {
		p(selector)
	}
	if offset := feq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := feq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// FitEventGroupBy is the group-by builder for FitEvent entities.
type FitEventGroupBy struct {
	selector
	build *FitEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (fegb *FitEventGroupBy) Aggregate(fns ...AggregateFunc) *FitEventGroupBy {
	fegb.fns = append(fegb.fns, fns...)
	return fegb
}

// Scan applies the selector query and scans the result into the given value.
func (fegb *FitEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fegb.build.ctx, ent.OpQueryGroupBy)
	if err := fegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FitEventQuery, *FitEventGroupBy](ctx, fegb.build, fegb, fegb.build.inters, v)
}

func (fegb *FitEventGroupBy) sqlScan(ctx context.Context, root *FitEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(fegb.fns))
	for _, fn := range fegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*fegb.flds)+len(fegb.fns))
		for _, f := range *fegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*fegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// FitEventSelect is the builder for selecting fields of FitEvent entities.
type FitEventSelect struct {
	*FitEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (fes *FitEventSelect) Aggregate(fns ...AggregateFunc) *FitEventSelect {
	fes.fns = append(fes.fns, fns...)
	return fes
}

// Scan applies the selector query and scans the result into the given value.
func (fes *FitEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, fes.ctx, ent.OpQuerySelect)
	if err := fes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*FitEventQuery, *FitEventSelect](ctx, fes.FitEventQuery, fes, fes.inters, v)
}

func (fes *FitEventSelect) sqlScan(ctx context.Context, root *FitEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(fes.fns))
	for _, fn := range fes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*fes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := fes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

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
	"github.com/abhisek/docent/ent/predicate"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
)

// SyllabusRevisionEventQuery is the builder for querying SyllabusRevisionEvent entities.
type SyllabusRevisionEventQuery struct {
	config
	ctx        *QueryContext
	order      []syllabusrevisionevent.OrderOption
	inters     []Interceptor
	predicates []predicate.SyllabusRevisionEvent
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SyllabusRevisionEventQuery builder.
func (_q *SyllabusRevisionEventQuery) Where(ps ...predicate.SyllabusRevisionEvent) *SyllabusRevisionEventQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *SyllabusRevisionEventQuery) Limit(limit int) *SyllabusRevisionEventQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *SyllabusRevisionEventQuery) Offset(offset int) *SyllabusRevisionEventQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *SyllabusRevisionEventQuery) Unique(unique bool) *SyllabusRevisionEventQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *SyllabusRevisionEventQuery) Order(o ...syllabusrevisionevent.OrderOption) *SyllabusRevisionEventQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first SyllabusRevisionEvent entity from the query.
// Returns a *NotFoundError when no SyllabusRevisionEvent was found.
func (_q *SyllabusRevisionEventQuery) First(ctx context.Context) (*SyllabusRevisionEvent, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{syllabusrevisionevent.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) FirstX(ctx context.Context) *SyllabusRevisionEvent {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SyllabusRevisionEvent ID from the query.
// Returns a *NotFoundError when no SyllabusRevisionEvent ID was found.
func (_q *SyllabusRevisionEventQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{syllabusrevisionevent.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SyllabusRevisionEvent entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SyllabusRevisionEvent entity is found.
// Returns a *NotFoundError when no SyllabusRevisionEvent entities are found.
func (_q *SyllabusRevisionEventQuery) Only(ctx context.Context) (*SyllabusRevisionEvent, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{syllabusrevisionevent.Label}
	default:
		return nil, &NotSingularError{syllabusrevisionevent.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) OnlyX(ctx context.Context) *SyllabusRevisionEvent {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SyllabusRevisionEvent ID in the query.
// Returns a *NotSingularError when more than one SyllabusRevisionEvent ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *SyllabusRevisionEventQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{syllabusrevisionevent.Label}
	default:
		err = &NotSingularError{syllabusrevisionevent.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SyllabusRevisionEvents.
func (_q *SyllabusRevisionEventQuery) All(ctx context.Context) ([]*SyllabusRevisionEvent, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SyllabusRevisionEvent, *SyllabusRevisionEventQuery]()
	return withInterceptors[[]*SyllabusRevisionEvent](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) AllX(ctx context.Context) []*SyllabusRevisionEvent {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SyllabusRevisionEvent IDs.
func (_q *SyllabusRevisionEventQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(syllabusrevisionevent.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *SyllabusRevisionEventQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*SyllabusRevisionEventQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *SyllabusRevisionEventQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *SyllabusRevisionEventQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SyllabusRevisionEventQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *SyllabusRevisionEventQuery) Clone() *SyllabusRevisionEventQuery {
	if _q == nil {
		return nil
	}
	return &SyllabusRevisionEventQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]syllabusrevisionevent.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.SyllabusRevisionEvent{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
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
//	client.SyllabusRevisionEvent.Query().
//		GroupBy(syllabusrevisionevent.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *SyllabusRevisionEventQuery) GroupBy(field string, fields ...string) *SyllabusRevisionEventGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SyllabusRevisionEventGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = syllabusrevisionevent.Label
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
//	client.SyllabusRevisionEvent.Query().
//		Select(syllabusrevisionevent.FieldSequence).
//		Scan(ctx, &v)
func (_q *SyllabusRevisionEventQuery) Select(fields ...string) *SyllabusRevisionEventSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &SyllabusRevisionEventSelect{SyllabusRevisionEventQuery: _q}
	sbuild.label = syllabusrevisionevent.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SyllabusRevisionEventSelect configured with the given aggregations.
func (_q *SyllabusRevisionEventQuery) Aggregate(fns ...AggregateFunc) *SyllabusRevisionEventSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *SyllabusRevisionEventQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !syllabusrevisionevent.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *SyllabusRevisionEventQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SyllabusRevisionEvent, error) {
	var (
		nodes = []*SyllabusRevisionEvent{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SyllabusRevisionEvent).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SyllabusRevisionEvent{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *SyllabusRevisionEventQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *SyllabusRevisionEventQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(syllabusrevisionevent.Table, syllabusrevisionevent.Columns, sqlgraph.NewFieldSpec(syllabusrevisionevent.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syllabusrevisionevent.FieldID)
		for i := range fields {
			if fields[i] != syllabusrevisionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *SyllabusRevisionEventQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(syllabusrevisionevent.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = syllabusrevisionevent.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SyllabusRevisionEventGroupBy is the group-by builder for SyllabusRevisionEvent entities.
type SyllabusRevisionEventGroupBy struct {
	selector
	build *SyllabusRevisionEventQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *SyllabusRevisionEventGroupBy) Aggregate(fns ...AggregateFunc) *SyllabusRevisionEventGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *SyllabusRevisionEventGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SyllabusRevisionEventQuery, *SyllabusRevisionEventGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *SyllabusRevisionEventGroupBy) sqlScan(ctx context.Context, root *SyllabusRevisionEventQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SyllabusRevisionEventSelect is the builder for selecting fields of SyllabusRevisionEvent entities.
type SyllabusRevisionEventSelect struct {
	*SyllabusRevisionEventQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *SyllabusRevisionEventSelect) Aggregate(fns ...AggregateFunc) *SyllabusRevisionEventSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *SyllabusRevisionEventSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SyllabusRevisionEventQuery, *SyllabusRevisionEventSelect](ctx, _s.SyllabusRevisionEventQuery, _s, _s.inters, v)
}

func (_s *SyllabusRevisionEventSelect) sqlScan(ctx context.Context, root *SyllabusRevisionEventQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

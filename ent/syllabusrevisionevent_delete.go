// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/predicate"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
)

// SyllabusRevisionEventDelete is the builder for deleting a SyllabusRevisionEvent entity.
type SyllabusRevisionEventDelete struct {
	config
	hooks    []Hook
	mutation *SyllabusRevisionEventMutation
}

// Where appends a list predicates to the SyllabusRevisionEventDelete builder.
func (_d *SyllabusRevisionEventDelete) Where(ps ...predicate.SyllabusRevisionEvent) *SyllabusRevisionEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SyllabusRevisionEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SyllabusRevisionEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SyllabusRevisionEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(syllabusrevisionevent.Table, sqlgraph.NewFieldSpec(syllabusrevisionevent.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// SyllabusRevisionEventDeleteOne is the builder for deleting a single SyllabusRevisionEvent entity.
type SyllabusRevisionEventDeleteOne struct {
	_d *SyllabusRevisionEventDelete
}

// Where appends a list predicates to the SyllabusRevisionEventDelete builder.
func (_d *SyllabusRevisionEventDeleteOne) Where(ps ...predicate.SyllabusRevisionEvent) *SyllabusRevisionEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SyllabusRevisionEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{syllabusrevisionevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SyllabusRevisionEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

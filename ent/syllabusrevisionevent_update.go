// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/predicate"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
)

// SyllabusRevisionEventUpdate is the builder for updating SyllabusRevisionEvent entities.
type SyllabusRevisionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SyllabusRevisionEventMutation
}

// Where appends a list predicates to the SyllabusRevisionEventUpdate builder.
func (_u *SyllabusRevisionEventUpdate) Where(ps ...predicate.SyllabusRevisionEvent) *SyllabusRevisionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SyllabusRevisionEventUpdate) SetSessionID(v string) *SyllabusRevisionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdate) SetNillableSessionID(v *string) *SyllabusRevisionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *SyllabusRevisionEventUpdate) SetInstruction(v string) *SyllabusRevisionEventUpdate {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdate) SetNillableInstruction(v *string) *SyllabusRevisionEventUpdate {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetDocumentRef sets the "document_ref" field.
func (_u *SyllabusRevisionEventUpdate) SetDocumentRef(v string) *SyllabusRevisionEventUpdate {
	_u.mutation.SetDocumentRef(v)
	return _u
}

// SetNillableDocumentRef sets the "document_ref" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdate) SetNillableDocumentRef(v *string) *SyllabusRevisionEventUpdate {
	if v != nil {
		_u.SetDocumentRef(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *SyllabusRevisionEventUpdate) SetRevision(v int) *SyllabusRevisionEventUpdate {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdate) SetNillableRevision(v *int) *SyllabusRevisionEventUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *SyllabusRevisionEventUpdate) AddRevision(v int) *SyllabusRevisionEventUpdate {
	_u.mutation.AddRevision(v)
	return _u
}

// SetStageCount sets the "stage_count" field.
func (_u *SyllabusRevisionEventUpdate) SetStageCount(v int) *SyllabusRevisionEventUpdate {
	_u.mutation.ResetStageCount()
	_u.mutation.SetStageCount(v)
	return _u
}

// SetNillableStageCount sets the "stage_count" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdate) SetNillableStageCount(v *int) *SyllabusRevisionEventUpdate {
	if v != nil {
		_u.SetStageCount(*v)
	}
	return _u
}

// AddStageCount adds value to the "stage_count" field.
func (_u *SyllabusRevisionEventUpdate) AddStageCount(v int) *SyllabusRevisionEventUpdate {
	_u.mutation.AddStageCount(v)
	return _u
}

// Mutation returns the SyllabusRevisionEventMutation object of the builder.
func (_u *SyllabusRevisionEventUpdate) Mutation() *SyllabusRevisionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyllabusRevisionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyllabusRevisionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyllabusRevisionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyllabusRevisionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyllabusRevisionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(syllabusrevisionevent.Table, syllabusrevisionevent.Columns, sqlgraph.NewFieldSpec(syllabusrevisionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(syllabusrevisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(syllabusrevisionevent.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentRef(); ok {
		_spec.SetField(syllabusrevisionevent.FieldDocumentRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(syllabusrevisionevent.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(syllabusrevisionevent.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageCount(); ok {
		_spec.SetField(syllabusrevisionevent.FieldStageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageCount(); ok {
		_spec.AddField(syllabusrevisionevent.FieldStageCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syllabusrevisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyllabusRevisionEventUpdateOne is the builder for updating a single SyllabusRevisionEvent entity.
type SyllabusRevisionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyllabusRevisionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SyllabusRevisionEventUpdateOne) SetSessionID(v string) *SyllabusRevisionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdateOne) SetNillableSessionID(v *string) *SyllabusRevisionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetInstruction sets the "instruction" field.
func (_u *SyllabusRevisionEventUpdateOne) SetInstruction(v string) *SyllabusRevisionEventUpdateOne {
	_u.mutation.SetInstruction(v)
	return _u
}

// SetNillableInstruction sets the "instruction" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdateOne) SetNillableInstruction(v *string) *SyllabusRevisionEventUpdateOne {
	if v != nil {
		_u.SetInstruction(*v)
	}
	return _u
}

// SetDocumentRef sets the "document_ref" field.
func (_u *SyllabusRevisionEventUpdateOne) SetDocumentRef(v string) *SyllabusRevisionEventUpdateOne {
	_u.mutation.SetDocumentRef(v)
	return _u
}

// SetNillableDocumentRef sets the "document_ref" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdateOne) SetNillableDocumentRef(v *string) *SyllabusRevisionEventUpdateOne {
	if v != nil {
		_u.SetDocumentRef(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *SyllabusRevisionEventUpdateOne) SetRevision(v int) *SyllabusRevisionEventUpdateOne {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdateOne) SetNillableRevision(v *int) *SyllabusRevisionEventUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *SyllabusRevisionEventUpdateOne) AddRevision(v int) *SyllabusRevisionEventUpdateOne {
	_u.mutation.AddRevision(v)
	return _u
}

// SetStageCount sets the "stage_count" field.
func (_u *SyllabusRevisionEventUpdateOne) SetStageCount(v int) *SyllabusRevisionEventUpdateOne {
	_u.mutation.ResetStageCount()
	_u.mutation.SetStageCount(v)
	return _u
}

// SetNillableStageCount sets the "stage_count" field if the given value is not nil.
func (_u *SyllabusRevisionEventUpdateOne) SetNillableStageCount(v *int) *SyllabusRevisionEventUpdateOne {
	if v != nil {
		_u.SetStageCount(*v)
	}
	return _u
}

// AddStageCount adds value to the "stage_count" field.
func (_u *SyllabusRevisionEventUpdateOne) AddStageCount(v int) *SyllabusRevisionEventUpdateOne {
	_u.mutation.AddStageCount(v)
	return _u
}

// Mutation returns the SyllabusRevisionEventMutation object of the builder.
func (_u *SyllabusRevisionEventUpdateOne) Mutation() *SyllabusRevisionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyllabusRevisionEventUpdate builder.
func (_u *SyllabusRevisionEventUpdateOne) Where(ps ...predicate.SyllabusRevisionEvent) *SyllabusRevisionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyllabusRevisionEventUpdateOne) Select(field string, fields ...string) *SyllabusRevisionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyllabusRevisionEvent entity.
func (_u *SyllabusRevisionEventUpdateOne) Save(ctx context.Context) (*SyllabusRevisionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyllabusRevisionEventUpdateOne) SaveX(ctx context.Context) *SyllabusRevisionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyllabusRevisionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyllabusRevisionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyllabusRevisionEventUpdateOne) sqlSave(ctx context.Context) (_node *SyllabusRevisionEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(syllabusrevisionevent.Table, syllabusrevisionevent.Columns, sqlgraph.NewFieldSpec(syllabusrevisionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyllabusRevisionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syllabusrevisionevent.FieldID)
		for _, f := range fields {
			if !syllabusrevisionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syllabusrevisionevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(syllabusrevisionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Instruction(); ok {
		_spec.SetField(syllabusrevisionevent.FieldInstruction, field.TypeString, value)
	}
	if value, ok := _u.mutation.DocumentRef(); ok {
		_spec.SetField(syllabusrevisionevent.FieldDocumentRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(syllabusrevisionevent.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(syllabusrevisionevent.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StageCount(); ok {
		_spec.SetField(syllabusrevisionevent.FieldStageCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStageCount(); ok {
		_spec.AddField(syllabusrevisionevent.FieldStageCount, field.TypeInt, value)
	}
	_node = &SyllabusRevisionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syllabusrevisionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

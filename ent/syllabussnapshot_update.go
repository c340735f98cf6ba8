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
	"github.com/abhisek/docent/ent/syllabussnapshot"
)

// SyllabusSnapshotUpdate is the builder for updating SyllabusSnapshot entities.
type SyllabusSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *SyllabusSnapshotMutation
}

// Where appends a list predicates to the SyllabusSnapshotUpdate builder.
func (_u *SyllabusSnapshotUpdate) Where(ps ...predicate.SyllabusSnapshot) *SyllabusSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SyllabusSnapshotUpdate) SetSessionID(v string) *SyllabusSnapshotUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdate) SetNillableSessionID(v *string) *SyllabusSnapshotUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSyllabusName sets the "syllabus_name" field.
func (_u *SyllabusSnapshotUpdate) SetSyllabusName(v string) *SyllabusSnapshotUpdate {
	_u.mutation.SetSyllabusName(v)
	return _u
}

// SetNillableSyllabusName sets the "syllabus_name" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdate) SetNillableSyllabusName(v *string) *SyllabusSnapshotUpdate {
	if v != nil {
		_u.SetSyllabusName(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *SyllabusSnapshotUpdate) SetRevision(v int) *SyllabusSnapshotUpdate {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdate) SetNillableRevision(v *int) *SyllabusSnapshotUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *SyllabusSnapshotUpdate) AddRevision(v int) *SyllabusSnapshotUpdate {
	_u.mutation.AddRevision(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SyllabusSnapshotUpdate) SetData(v map[string]interface{}) *SyllabusSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SyllabusSnapshotMutation object of the builder.
func (_u *SyllabusSnapshotUpdate) Mutation() *SyllabusSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyllabusSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyllabusSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyllabusSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyllabusSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyllabusSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(syllabussnapshot.Table, syllabussnapshot.Columns, sqlgraph.NewFieldSpec(syllabussnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(syllabussnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusName(); ok {
		_spec.SetField(syllabussnapshot.FieldSyllabusName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(syllabussnapshot.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(syllabussnapshot.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(syllabussnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syllabussnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyllabusSnapshotUpdateOne is the builder for updating a single SyllabusSnapshot entity.
type SyllabusSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyllabusSnapshotMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SyllabusSnapshotUpdateOne) SetSessionID(v string) *SyllabusSnapshotUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdateOne) SetNillableSessionID(v *string) *SyllabusSnapshotUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetSyllabusName sets the "syllabus_name" field.
func (_u *SyllabusSnapshotUpdateOne) SetSyllabusName(v string) *SyllabusSnapshotUpdateOne {
	_u.mutation.SetSyllabusName(v)
	return _u
}

// SetNillableSyllabusName sets the "syllabus_name" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdateOne) SetNillableSyllabusName(v *string) *SyllabusSnapshotUpdateOne {
	if v != nil {
		_u.SetSyllabusName(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *SyllabusSnapshotUpdateOne) SetRevision(v int) *SyllabusSnapshotUpdateOne {
	_u.mutation.ResetRevision()
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *SyllabusSnapshotUpdateOne) SetNillableRevision(v *int) *SyllabusSnapshotUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// AddRevision adds value to the "revision" field.
func (_u *SyllabusSnapshotUpdateOne) AddRevision(v int) *SyllabusSnapshotUpdateOne {
	_u.mutation.AddRevision(v)
	return _u
}

// SetData sets the "data" field.
func (_u *SyllabusSnapshotUpdateOne) SetData(v map[string]interface{}) *SyllabusSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the SyllabusSnapshotMutation object of the builder.
func (_u *SyllabusSnapshotUpdateOne) Mutation() *SyllabusSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyllabusSnapshotUpdate builder.
func (_u *SyllabusSnapshotUpdateOne) Where(ps ...predicate.SyllabusSnapshot) *SyllabusSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyllabusSnapshotUpdateOne) Select(field string, fields ...string) *SyllabusSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyllabusSnapshot entity.
func (_u *SyllabusSnapshotUpdateOne) Save(ctx context.Context) (*SyllabusSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyllabusSnapshotUpdateOne) SaveX(ctx context.Context) *SyllabusSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyllabusSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyllabusSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SyllabusSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *SyllabusSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(syllabussnapshot.Table, syllabussnapshot.Columns, sqlgraph.NewFieldSpec(syllabussnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyllabusSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syllabussnapshot.FieldID)
		for _, f := range fields {
			if !syllabussnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syllabussnapshot.FieldID {
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
		_spec.SetField(syllabussnapshot.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SyllabusName(); ok {
		_spec.SetField(syllabussnapshot.FieldSyllabusName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(syllabussnapshot.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRevision(); ok {
		_spec.AddField(syllabussnapshot.FieldRevision, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(syllabussnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &SyllabusSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syllabussnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

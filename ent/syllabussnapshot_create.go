// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/syllabussnapshot"
)

// SyllabusSnapshotCreate is the builder for creating a SyllabusSnapshot entity.
type SyllabusSnapshotCreate struct {
	config
	mutation *SyllabusSnapshotMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SyllabusSnapshotCreate) SetSequence(v int64) *SyllabusSnapshotCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SyllabusSnapshotCreate) SetTimestamp(v time.Time) *SyllabusSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SyllabusSnapshotCreate) SetNillableTimestamp(v *time.Time) *SyllabusSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SyllabusSnapshotCreate) SetSessionID(v string) *SyllabusSnapshotCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *SyllabusSnapshotCreate) SetNillableSessionID(v *string) *SyllabusSnapshotCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetSyllabusName sets the "syllabus_name" field.
func (_c *SyllabusSnapshotCreate) SetSyllabusName(v string) *SyllabusSnapshotCreate {
	_c.mutation.SetSyllabusName(v)
	return _c
}

// SetRevision sets the "revision" field.
func (_c *SyllabusSnapshotCreate) SetRevision(v int) *SyllabusSnapshotCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *SyllabusSnapshotCreate) SetNillableRevision(v *int) *SyllabusSnapshotCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *SyllabusSnapshotCreate) SetData(v map[string]interface{}) *SyllabusSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the SyllabusSnapshotMutation object of the builder.
func (_c *SyllabusSnapshotCreate) Mutation() *SyllabusSnapshotMutation {
	return _c.mutation
}

// Save creates the SyllabusSnapshot in the database.
func (_c *SyllabusSnapshotCreate) Save(ctx context.Context) (*SyllabusSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyllabusSnapshotCreate) SaveX(ctx context.Context) *SyllabusSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyllabusSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyllabusSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyllabusSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := syllabussnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := syllabussnapshot.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
	if _, ok := _c.mutation.Revision(); !ok {
		v := syllabussnapshot.DefaultRevision
		_c.mutation.SetRevision(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyllabusSnapshotCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SyllabusSnapshot.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyllabusSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SyllabusSnapshot.session_id"`)}
	}
	if _, ok := _c.mutation.SyllabusName(); !ok {
		return &ValidationError{Name: "syllabus_name", err: errors.New(`ent: missing required field "SyllabusSnapshot.syllabus_name"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "SyllabusSnapshot.revision"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "SyllabusSnapshot.data"`)}
	}
	return nil
}

func (_c *SyllabusSnapshotCreate) sqlSave(ctx context.Context) (*SyllabusSnapshot, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SyllabusSnapshotCreate) createSpec() (*SyllabusSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &SyllabusSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syllabussnapshot.Table, sqlgraph.NewFieldSpec(syllabussnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(syllabussnapshot.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(syllabussnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(syllabussnapshot.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.SyllabusName(); ok {
		_spec.SetField(syllabussnapshot.FieldSyllabusName, field.TypeString, value)
		_node.SyllabusName = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(syllabussnapshot.FieldRevision, field.TypeInt, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(syllabussnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// SyllabusSnapshotCreateBulk is the builder for creating many SyllabusSnapshot entities in bulk.
type SyllabusSnapshotCreateBulk struct {
	config
	err      error
	builders []*SyllabusSnapshotCreate
}

// Save creates the SyllabusSnapshot entities in the database.
func (_c *SyllabusSnapshotCreateBulk) Save(ctx context.Context) ([]*SyllabusSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyllabusSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyllabusSnapshotMutation)
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
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SyllabusSnapshotCreateBulk) SaveX(ctx context.Context) []*SyllabusSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyllabusSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyllabusSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/docent/ent/syllabusrevisionevent"
)

// SyllabusRevisionEventCreate is the builder for creating a SyllabusRevisionEvent entity.
type SyllabusRevisionEventCreate struct {
	config
	mutation *SyllabusRevisionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *SyllabusRevisionEventCreate) SetSequence(v int64) *SyllabusRevisionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *SyllabusRevisionEventCreate) SetTimestamp(v time.Time) *SyllabusRevisionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *SyllabusRevisionEventCreate) SetNillableTimestamp(v *time.Time) *SyllabusRevisionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SyllabusRevisionEventCreate) SetSessionID(v string) *SyllabusRevisionEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetInstruction sets the "instruction" field.
func (_c *SyllabusRevisionEventCreate) SetInstruction(v string) *SyllabusRevisionEventCreate {
	_c.mutation.SetInstruction(v)
	return _c
}

// SetDocumentRef sets the "document_ref" field.
func (_c *SyllabusRevisionEventCreate) SetDocumentRef(v string) *SyllabusRevisionEventCreate {
	_c.mutation.SetDocumentRef(v)
	return _c
}

// SetNillableDocumentRef sets the "document_ref" field if the given value is not nil.
func (_c *SyllabusRevisionEventCreate) SetNillableDocumentRef(v *string) *SyllabusRevisionEventCreate {
	if v != nil {
		_c.SetDocumentRef(*v)
	}
	return _c
}

// SetRevision sets the "revision" field.
func (_c *SyllabusRevisionEventCreate) SetRevision(v int) *SyllabusRevisionEventCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetStageCount sets the "stage_count" field.
func (_c *SyllabusRevisionEventCreate) SetStageCount(v int) *SyllabusRevisionEventCreate {
	_c.mutation.SetStageCount(v)
	return _c
}

// SetNillableStageCount sets the "stage_count" field if the given value is not nil.
func (_c *SyllabusRevisionEventCreate) SetNillableStageCount(v *int) *SyllabusRevisionEventCreate {
	if v != nil {
		_c.SetStageCount(*v)
	}
	return _c
}

// Mutation returns the SyllabusRevisionEventMutation object of the builder.
func (_c *SyllabusRevisionEventCreate) Mutation() *SyllabusRevisionEventMutation {
	return _c.mutation
}

// Save creates the SyllabusRevisionEvent in the database.
func (_c *SyllabusRevisionEventCreate) Save(ctx context.Context) (*SyllabusRevisionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyllabusRevisionEventCreate) SaveX(ctx context.Context) *SyllabusRevisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyllabusRevisionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyllabusRevisionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyllabusRevisionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := syllabusrevisionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.DocumentRef(); !ok {
		v := syllabusrevisionevent.DefaultDocumentRef
		_c.mutation.SetDocumentRef(v)
	}
	if _, ok := _c.mutation.StageCount(); !ok {
		v := syllabusrevisionevent.DefaultStageCount
		_c.mutation.SetStageCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyllabusRevisionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Instruction(); !ok {
		return &ValidationError{Name: "instruction", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.instruction"`)}
	}
	if _, ok := _c.mutation.DocumentRef(); !ok {
		return &ValidationError{Name: "document_ref", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.document_ref"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.revision"`)}
	}
	if _, ok := _c.mutation.StageCount(); !ok {
		return &ValidationError{Name: "stage_count", err: errors.New(`ent: missing required field "SyllabusRevisionEvent.stage_count"`)}
	}
	return nil
}

func (_c *SyllabusRevisionEventCreate) sqlSave(ctx context.Context) (*SyllabusRevisionEvent, error) {
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

func (_c *SyllabusRevisionEventCreate) createSpec() (*SyllabusRevisionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &SyllabusRevisionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syllabusrevisionevent.Table, sqlgraph.NewFieldSpec(syllabusrevisionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(syllabusrevisionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(syllabusrevisionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(syllabusrevisionevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Instruction(); ok {
		_spec.SetField(syllabusrevisionevent.FieldInstruction, field.TypeString, value)
		_node.Instruction = value
	}
	if value, ok := _c.mutation.DocumentRef(); ok {
		_spec.SetField(syllabusrevisionevent.FieldDocumentRef, field.TypeString, value)
		_node.DocumentRef = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(syllabusrevisionevent.FieldRevision, field.TypeInt, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.StageCount(); ok {
		_spec.SetField(syllabusrevisionevent.FieldStageCount, field.TypeInt, value)
		_node.StageCount = value
	}
	return _node, _spec
}

// SyllabusRevisionEventCreateBulk is the builder for creating many SyllabusRevisionEvent entities in bulk.
type SyllabusRevisionEventCreateBulk struct {
	config
	err      error
	builders []*SyllabusRevisionEventCreate
}

// Save creates the SyllabusRevisionEvent entities in the database.
func (_c *SyllabusRevisionEventCreateBulk) Save(ctx context.Context) ([]*SyllabusRevisionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyllabusRevisionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyllabusRevisionEventMutation)
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
func (_c *SyllabusRevisionEventCreateBulk) SaveX(ctx context.Context) []*SyllabusRevisionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyllabusRevisionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyllabusRevisionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/quizdeck/ent/examsnapshot"
)

// ExamSnapshotCreate is the builder for creating a ExamSnapshot entity.
type ExamSnapshotCreate struct {
	config
	mutation *ExamSnapshotMutation
	hooks    []Hook
}

// SetExamID sets the "exam_id" field.
func (_c *ExamSnapshotCreate) SetExamID(v string) *ExamSnapshotCreate {
	_c.mutation.SetExamID(v)
	return _c
}

// SetRemainingSeconds sets the "remaining_seconds" field.
func (_c *ExamSnapshotCreate) SetRemainingSeconds(v int) *ExamSnapshotCreate {
	_c.mutation.SetRemainingSeconds(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *ExamSnapshotCreate) SetTimestamp(v time.Time) *ExamSnapshotCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *ExamSnapshotCreate) SetNillableTimestamp(v *time.Time) *ExamSnapshotCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *ExamSnapshotCreate) SetData(v map[string]interface{}) *ExamSnapshotCreate {
	_c.mutation.SetData(v)
	return _c
}

// Mutation returns the ExamSnapshotMutation object of the builder.
func (_c *ExamSnapshotCreate) Mutation() *ExamSnapshotMutation {
	return _c.mutation
}

// Save creates the ExamSnapshot in the database.
func (_c *ExamSnapshotCreate) Save(ctx context.Context) (*ExamSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamSnapshotCreate) SaveX(ctx context.Context) *ExamSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := examsnapshot.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamSnapshotCreate) check() error {
	if _, ok := _c.mutation.ExamID(); !ok {
		return &ValidationError{Name: "exam_id", err: errors.New(`ent: missing required field "ExamSnapshot.exam_id"`)}
	}
	if v, ok := _c.mutation.ExamID(); ok {
		if err := examsnapshot.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamSnapshot.exam_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RemainingSeconds(); !ok {
		return &ValidationError{Name: "remaining_seconds", err: errors.New(`ent: missing required field "ExamSnapshot.remaining_seconds"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "ExamSnapshot.timestamp"`)}
	}
	if _, ok := _c.mutation.Data(); !ok {
		return &ValidationError{Name: "data", err: errors.New(`ent: missing required field "ExamSnapshot.data"`)}
	}
	return nil
}

func (_c *ExamSnapshotCreate) sqlSave(ctx context.Context) (*ExamSnapshot, error) {
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

func (_c *ExamSnapshotCreate) createSpec() (*ExamSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examsnapshot.Table, sqlgraph.NewFieldSpec(examsnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ExamID(); ok {
		_spec.SetField(examsnapshot.FieldExamID, field.TypeString, value)
		_node.ExamID = value
	}
	if value, ok := _c.mutation.RemainingSeconds(); ok {
		_spec.SetField(examsnapshot.FieldRemainingSeconds, field.TypeInt, value)
		_node.RemainingSeconds = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(examsnapshot.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(examsnapshot.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// ExamSnapshotCreateBulk is the builder for creating many ExamSnapshot entities in bulk.
type ExamSnapshotCreateBulk struct {
	config
	err      error
	builders []*ExamSnapshotCreate
}

// Save creates the ExamSnapshot entities in the database.
func (_c *ExamSnapshotCreateBulk) Save(ctx context.Context) ([]*ExamSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamSnapshotMutation)
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
func (_c *ExamSnapshotCreateBulk) SaveX(ctx context.Context) []*ExamSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

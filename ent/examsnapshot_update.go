// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/asengupta/quizdeck/ent/examsnapshot"
	"github.com/asengupta/quizdeck/ent/predicate"
)

// ExamSnapshotUpdate is the builder for updating ExamSnapshot entities.
type ExamSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *ExamSnapshotMutation
}

// Where appends a list predicates to the ExamSnapshotUpdate builder.
func (_u *ExamSnapshotUpdate) Where(ps ...predicate.ExamSnapshot) *ExamSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetExamID sets the "exam_id" field.
func (_u *ExamSnapshotUpdate) SetExamID(v string) *ExamSnapshotUpdate {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamSnapshotUpdate) SetNillableExamID(v *string) *ExamSnapshotUpdate {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetRemainingSeconds sets the "remaining_seconds" field.
func (_u *ExamSnapshotUpdate) SetRemainingSeconds(v int) *ExamSnapshotUpdate {
	_u.mutation.ResetRemainingSeconds()
	_u.mutation.SetRemainingSeconds(v)
	return _u
}

// SetNillableRemainingSeconds sets the "remaining_seconds" field if the given value is not nil.
func (_u *ExamSnapshotUpdate) SetNillableRemainingSeconds(v *int) *ExamSnapshotUpdate {
	if v != nil {
		_u.SetRemainingSeconds(*v)
	}
	return _u
}

// AddRemainingSeconds adds value to the "remaining_seconds" field.
func (_u *ExamSnapshotUpdate) AddRemainingSeconds(v int) *ExamSnapshotUpdate {
	_u.mutation.AddRemainingSeconds(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ExamSnapshotUpdate) SetTimestamp(v time.Time) *ExamSnapshotUpdate {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ExamSnapshotUpdate) SetNillableTimestamp(v *time.Time) *ExamSnapshotUpdate {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExamSnapshotUpdate) SetData(v map[string]interface{}) *ExamSnapshotUpdate {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ExamSnapshotMutation object of the builder.
func (_u *ExamSnapshotUpdate) Mutation() *ExamSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSnapshotUpdate) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examsnapshot.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamSnapshot.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsnapshot.Table, examsnapshot.Columns, sqlgraph.NewFieldSpec(examsnapshot.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examsnapshot.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemainingSeconds(); ok {
		_spec.SetField(examsnapshot.FieldRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSeconds(); ok {
		_spec.AddField(examsnapshot.FieldRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(examsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(examsnapshot.FieldData, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamSnapshotUpdateOne is the builder for updating a single ExamSnapshot entity.
type ExamSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamSnapshotMutation
}

// SetExamID sets the "exam_id" field.
func (_u *ExamSnapshotUpdateOne) SetExamID(v string) *ExamSnapshotUpdateOne {
	_u.mutation.SetExamID(v)
	return _u
}

// SetNillableExamID sets the "exam_id" field if the given value is not nil.
func (_u *ExamSnapshotUpdateOne) SetNillableExamID(v *string) *ExamSnapshotUpdateOne {
	if v != nil {
		_u.SetExamID(*v)
	}
	return _u
}

// SetRemainingSeconds sets the "remaining_seconds" field.
func (_u *ExamSnapshotUpdateOne) SetRemainingSeconds(v int) *ExamSnapshotUpdateOne {
	_u.mutation.ResetRemainingSeconds()
	_u.mutation.SetRemainingSeconds(v)
	return _u
}

// SetNillableRemainingSeconds sets the "remaining_seconds" field if the given value is not nil.
func (_u *ExamSnapshotUpdateOne) SetNillableRemainingSeconds(v *int) *ExamSnapshotUpdateOne {
	if v != nil {
		_u.SetRemainingSeconds(*v)
	}
	return _u
}

// AddRemainingSeconds adds value to the "remaining_seconds" field.
func (_u *ExamSnapshotUpdateOne) AddRemainingSeconds(v int) *ExamSnapshotUpdateOne {
	_u.mutation.AddRemainingSeconds(v)
	return _u
}

// SetTimestamp sets the "timestamp" field.
func (_u *ExamSnapshotUpdateOne) SetTimestamp(v time.Time) *ExamSnapshotUpdateOne {
	_u.mutation.SetTimestamp(v)
	return _u
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_u *ExamSnapshotUpdateOne) SetNillableTimestamp(v *time.Time) *ExamSnapshotUpdateOne {
	if v != nil {
		_u.SetTimestamp(*v)
	}
	return _u
}

// SetData sets the "data" field.
func (_u *ExamSnapshotUpdateOne) SetData(v map[string]interface{}) *ExamSnapshotUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// Mutation returns the ExamSnapshotMutation object of the builder.
func (_u *ExamSnapshotUpdateOne) Mutation() *ExamSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamSnapshotUpdate builder.
func (_u *ExamSnapshotUpdateOne) Where(ps ...predicate.ExamSnapshot) *ExamSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamSnapshotUpdateOne) Select(field string, fields ...string) *ExamSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamSnapshot entity.
func (_u *ExamSnapshotUpdateOne) Save(ctx context.Context) (*ExamSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSnapshotUpdateOne) SaveX(ctx context.Context) *ExamSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.ExamID(); ok {
		if err := examsnapshot.ExamIDValidator(v); err != nil {
			return &ValidationError{Name: "exam_id", err: fmt.Errorf(`ent: validator failed for field "ExamSnapshot.exam_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *ExamSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsnapshot.Table, examsnapshot.Columns, sqlgraph.NewFieldSpec(examsnapshot.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examsnapshot.FieldID)
		for _, f := range fields {
			if !examsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examsnapshot.FieldID {
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
	if value, ok := _u.mutation.ExamID(); ok {
		_spec.SetField(examsnapshot.FieldExamID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RemainingSeconds(); ok {
		_spec.SetField(examsnapshot.FieldRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRemainingSeconds(); ok {
		_spec.AddField(examsnapshot.FieldRemainingSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Timestamp(); ok {
		_spec.SetField(examsnapshot.FieldTimestamp, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(examsnapshot.FieldData, field.TypeJSON, value)
	}
	_node = &ExamSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

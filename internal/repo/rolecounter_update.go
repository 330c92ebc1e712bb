// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	"github.com/proflink/proflink_backend/internal/repo/rolecounter"
)

// RoleCounterUpdate is the builder for updating RoleCounter entities.
type RoleCounterUpdate struct {
	config
	hooks    []Hook
	mutation *RoleCounterMutation
}

// Where appends a list predicates to the RoleCounterUpdate builder.
func (_u *RoleCounterUpdate) Where(ps ...predicate.RoleCounter) *RoleCounterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoleCounterUpdate) SetUpdatedAt(v time.Time) *RoleCounterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *RoleCounterUpdate) SetRole(v string) *RoleCounterUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RoleCounterUpdate) SetNillableRole(v *string) *RoleCounterUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetNextSeq sets the "next_seq" field.
func (_u *RoleCounterUpdate) SetNextSeq(v int64) *RoleCounterUpdate {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *RoleCounterUpdate) SetNillableNextSeq(v *int64) *RoleCounterUpdate {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *RoleCounterUpdate) AddNextSeq(v int64) *RoleCounterUpdate {
	_u.mutation.AddNextSeq(v)
	return _u
}

// Mutation returns the RoleCounterMutation object of the builder.
func (_u *RoleCounterUpdate) Mutation() *RoleCounterMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoleCounterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoleCounterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoleCounterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoleCounterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoleCounterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rolecounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoleCounterUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := rolecounter.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextSeq(); ok {
		if err := rolecounter.NextSeqValidator(v); err != nil {
			return &ValidationError{Name: "next_seq", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.next_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *RoleCounterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rolecounter.Table, rolecounter.Columns, sqlgraph.NewFieldSpec(rolecounter.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rolecounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rolecounter.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(rolecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(rolecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rolecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoleCounterUpdateOne is the builder for updating a single RoleCounter entity.
type RoleCounterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoleCounterMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RoleCounterUpdateOne) SetUpdatedAt(v time.Time) *RoleCounterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetRole sets the "role" field.
func (_u *RoleCounterUpdateOne) SetRole(v string) *RoleCounterUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RoleCounterUpdateOne) SetNillableRole(v *string) *RoleCounterUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetNextSeq sets the "next_seq" field.
func (_u *RoleCounterUpdateOne) SetNextSeq(v int64) *RoleCounterUpdateOne {
	_u.mutation.ResetNextSeq()
	_u.mutation.SetNextSeq(v)
	return _u
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_u *RoleCounterUpdateOne) SetNillableNextSeq(v *int64) *RoleCounterUpdateOne {
	if v != nil {
		_u.SetNextSeq(*v)
	}
	return _u
}

// AddNextSeq adds value to the "next_seq" field.
func (_u *RoleCounterUpdateOne) AddNextSeq(v int64) *RoleCounterUpdateOne {
	_u.mutation.AddNextSeq(v)
	return _u
}

// Mutation returns the RoleCounterMutation object of the builder.
func (_u *RoleCounterUpdateOne) Mutation() *RoleCounterMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoleCounterUpdate builder.
func (_u *RoleCounterUpdateOne) Where(ps ...predicate.RoleCounter) *RoleCounterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoleCounterUpdateOne) Select(field string, fields ...string) *RoleCounterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoleCounter entity.
func (_u *RoleCounterUpdateOne) Save(ctx context.Context) (*RoleCounter, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoleCounterUpdateOne) SaveX(ctx context.Context) *RoleCounter {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoleCounterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoleCounterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RoleCounterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := rolecounter.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoleCounterUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := rolecounter.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NextSeq(); ok {
		if err := rolecounter.NextSeqValidator(v); err != nil {
			return &ValidationError{Name: "next_seq", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.next_seq": %w`, err)}
		}
	}
	return nil
}

func (_u *RoleCounterUpdateOne) sqlSave(ctx context.Context) (_node *RoleCounter, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rolecounter.Table, rolecounter.Columns, sqlgraph.NewFieldSpec(rolecounter.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RoleCounter.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rolecounter.FieldID)
		for _, f := range fields {
			if !rolecounter.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != rolecounter.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(rolecounter.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rolecounter.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.NextSeq(); ok {
		_spec.SetField(rolecounter.FieldNextSeq, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedNextSeq(); ok {
		_spec.AddField(rolecounter.FieldNextSeq, field.TypeInt64, value)
	}
	_node = &RoleCounter{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rolecounter.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

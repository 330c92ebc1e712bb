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
	"github.com/proflink/proflink_backend/internal/repo/directoryentry"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// DirectoryEntryUpdate is the builder for updating DirectoryEntry entities.
type DirectoryEntryUpdate struct {
	config
	hooks    []Hook
	mutation *DirectoryEntryMutation
}

// Where appends a list predicates to the DirectoryEntryUpdate builder.
func (_u *DirectoryEntryUpdate) Where(ps ...predicate.DirectoryEntry) *DirectoryEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DirectoryEntryUpdate) SetUpdatedAt(v time.Time) *DirectoryEntryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DirectoryEntryUpdate) SetName(v string) *DirectoryEntryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DirectoryEntryUpdate) SetNillableName(v *string) *DirectoryEntryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DirectoryEntryUpdate) SetEmail(v string) *DirectoryEntryUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DirectoryEntryUpdate) SetNillableEmail(v *string) *DirectoryEntryUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *DirectoryEntryUpdate) SetRole(v string) *DirectoryEntryUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DirectoryEntryUpdate) SetNillableRole(v *string) *DirectoryEntryUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DirectoryEntryUpdate) SetTitle(v string) *DirectoryEntryUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DirectoryEntryUpdate) SetNillableTitle(v *string) *DirectoryEntryUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DirectoryEntryUpdate) ClearTitle() *DirectoryEntryUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DirectoryEntryUpdate) SetDepartment(v string) *DirectoryEntryUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DirectoryEntryUpdate) SetNillableDepartment(v *string) *DirectoryEntryUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *DirectoryEntryUpdate) ClearDepartment() *DirectoryEntryUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// Mutation returns the DirectoryEntryMutation object of the builder.
func (_u *DirectoryEntryUpdate) Mutation() *DirectoryEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DirectoryEntryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DirectoryEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DirectoryEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DirectoryEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DirectoryEntryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := directoryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DirectoryEntryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := directoryentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := directoryentry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := directoryentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := directoryentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := directoryentry.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.department": %w`, err)}
		}
	}
	return nil
}

func (_u *DirectoryEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(directoryentry.Table, directoryentry.Columns, sqlgraph.NewFieldSpec(directoryentry.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(directoryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(directoryentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(directoryentry.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(directoryentry.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(directoryentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(directoryentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(directoryentry.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(directoryentry.FieldDepartment, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{directoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DirectoryEntryUpdateOne is the builder for updating a single DirectoryEntry entity.
type DirectoryEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DirectoryEntryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DirectoryEntryUpdateOne) SetUpdatedAt(v time.Time) *DirectoryEntryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DirectoryEntryUpdateOne) SetName(v string) *DirectoryEntryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DirectoryEntryUpdateOne) SetNillableName(v *string) *DirectoryEntryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *DirectoryEntryUpdateOne) SetEmail(v string) *DirectoryEntryUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *DirectoryEntryUpdateOne) SetNillableEmail(v *string) *DirectoryEntryUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *DirectoryEntryUpdateOne) SetRole(v string) *DirectoryEntryUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *DirectoryEntryUpdateOne) SetNillableRole(v *string) *DirectoryEntryUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *DirectoryEntryUpdateOne) SetTitle(v string) *DirectoryEntryUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *DirectoryEntryUpdateOne) SetNillableTitle(v *string) *DirectoryEntryUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *DirectoryEntryUpdateOne) ClearTitle() *DirectoryEntryUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *DirectoryEntryUpdateOne) SetDepartment(v string) *DirectoryEntryUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *DirectoryEntryUpdateOne) SetNillableDepartment(v *string) *DirectoryEntryUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *DirectoryEntryUpdateOne) ClearDepartment() *DirectoryEntryUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// Mutation returns the DirectoryEntryMutation object of the builder.
func (_u *DirectoryEntryUpdateOne) Mutation() *DirectoryEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the DirectoryEntryUpdate builder.
func (_u *DirectoryEntryUpdateOne) Where(ps ...predicate.DirectoryEntry) *DirectoryEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DirectoryEntryUpdateOne) Select(field string, fields ...string) *DirectoryEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DirectoryEntry entity.
func (_u *DirectoryEntryUpdateOne) Save(ctx context.Context) (*DirectoryEntry, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DirectoryEntryUpdateOne) SaveX(ctx context.Context) *DirectoryEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DirectoryEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DirectoryEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DirectoryEntryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := directoryentry.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DirectoryEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := directoryentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := directoryentry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := directoryentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := directoryentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := directoryentry.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.department": %w`, err)}
		}
	}
	return nil
}

func (_u *DirectoryEntryUpdateOne) sqlSave(ctx context.Context) (_node *DirectoryEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(directoryentry.Table, directoryentry.Columns, sqlgraph.NewFieldSpec(directoryentry.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DirectoryEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, directoryentry.FieldID)
		for _, f := range fields {
			if !directoryentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != directoryentry.FieldID {
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
		_spec.SetField(directoryentry.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(directoryentry.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(directoryentry.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(directoryentry.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(directoryentry.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(directoryentry.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(directoryentry.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(directoryentry.FieldDepartment, field.TypeString)
	}
	_node = &DirectoryEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{directoryentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

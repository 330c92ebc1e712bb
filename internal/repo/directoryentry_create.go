// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/directoryentry"
)

// DirectoryEntryCreate is the builder for creating a DirectoryEntry entity.
type DirectoryEntryCreate struct {
	config
	mutation *DirectoryEntryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DirectoryEntryCreate) SetCreatedAt(v time.Time) *DirectoryEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DirectoryEntryCreate) SetNillableCreatedAt(v *time.Time) *DirectoryEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DirectoryEntryCreate) SetUpdatedAt(v time.Time) *DirectoryEntryCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DirectoryEntryCreate) SetNillableUpdatedAt(v *time.Time) *DirectoryEntryCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DirectoryEntryCreate) SetName(v string) *DirectoryEntryCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *DirectoryEntryCreate) SetEmail(v string) *DirectoryEntryCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *DirectoryEntryCreate) SetRole(v string) *DirectoryEntryCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *DirectoryEntryCreate) SetNillableRole(v *string) *DirectoryEntryCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *DirectoryEntryCreate) SetTitle(v string) *DirectoryEntryCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *DirectoryEntryCreate) SetNillableTitle(v *string) *DirectoryEntryCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *DirectoryEntryCreate) SetDepartment(v string) *DirectoryEntryCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *DirectoryEntryCreate) SetNillableDepartment(v *string) *DirectoryEntryCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DirectoryEntryCreate) SetID(v uuid.UUID) *DirectoryEntryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DirectoryEntryMutation object of the builder.
func (_c *DirectoryEntryCreate) Mutation() *DirectoryEntryMutation {
	return _c.mutation
}

// Save creates the DirectoryEntry in the database.
func (_c *DirectoryEntryCreate) Save(ctx context.Context) (*DirectoryEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DirectoryEntryCreate) SaveX(ctx context.Context) *DirectoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DirectoryEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DirectoryEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DirectoryEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := directoryentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := directoryentry.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := directoryentry.DefaultRole
		_c.mutation.SetRole(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DirectoryEntryCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "DirectoryEntry.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "DirectoryEntry.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "DirectoryEntry.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := directoryentry.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "DirectoryEntry.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := directoryentry.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "DirectoryEntry.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := directoryentry.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.role": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := directoryentry.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := directoryentry.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "DirectoryEntry.department": %w`, err)}
		}
	}
	return nil
}

func (_c *DirectoryEntryCreate) sqlSave(ctx context.Context) (*DirectoryEntry, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DirectoryEntryCreate) createSpec() (*DirectoryEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &DirectoryEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(directoryentry.Table, sqlgraph.NewFieldSpec(directoryentry.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(directoryentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(directoryentry.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(directoryentry.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(directoryentry.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(directoryentry.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(directoryentry.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(directoryentry.FieldDepartment, field.TypeString, value)
		_node.Department = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DirectoryEntry.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DirectoryEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DirectoryEntryCreate) OnConflict(opts ...sql.ConflictOption) *DirectoryEntryUpsertOne {
	_c.conflict = opts
	return &DirectoryEntryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DirectoryEntryCreate) OnConflictColumns(columns ...string) *DirectoryEntryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DirectoryEntryUpsertOne{
		create: _c,
	}
}

type (
	// DirectoryEntryUpsertOne is the builder for "upsert"-ing
	//  one DirectoryEntry node.
	DirectoryEntryUpsertOne struct {
		create *DirectoryEntryCreate
	}

	// DirectoryEntryUpsert is the "OnConflict" setter.
	DirectoryEntryUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DirectoryEntryUpsert) SetUpdatedAt(v time.Time) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateUpdatedAt() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *DirectoryEntryUpsert) SetName(v string) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateName() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldName)
	return u
}

// SetEmail sets the "email" field.
func (u *DirectoryEntryUpsert) SetEmail(v string) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateEmail() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldEmail)
	return u
}

// SetRole sets the "role" field.
func (u *DirectoryEntryUpsert) SetRole(v string) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateRole() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldRole)
	return u
}

// SetTitle sets the "title" field.
func (u *DirectoryEntryUpsert) SetTitle(v string) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateTitle() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *DirectoryEntryUpsert) ClearTitle() *DirectoryEntryUpsert {
	u.SetNull(directoryentry.FieldTitle)
	return u
}

// SetDepartment sets the "department" field.
func (u *DirectoryEntryUpsert) SetDepartment(v string) *DirectoryEntryUpsert {
	u.Set(directoryentry.FieldDepartment, v)
	return u
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *DirectoryEntryUpsert) UpdateDepartment() *DirectoryEntryUpsert {
	u.SetExcluded(directoryentry.FieldDepartment)
	return u
}

// ClearDepartment clears the value of the "department" field.
func (u *DirectoryEntryUpsert) ClearDepartment() *DirectoryEntryUpsert {
	u.SetNull(directoryentry.FieldDepartment)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(directoryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DirectoryEntryUpsertOne) UpdateNewValues() *DirectoryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(directoryentry.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(directoryentry.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DirectoryEntryUpsertOne) Ignore() *DirectoryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DirectoryEntryUpsertOne) DoNothing() *DirectoryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DirectoryEntryCreate.OnConflict
// documentation for more info.
func (u *DirectoryEntryUpsertOne) Update(set func(*DirectoryEntryUpsert)) *DirectoryEntryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DirectoryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DirectoryEntryUpsertOne) SetUpdatedAt(v time.Time) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateUpdatedAt() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DirectoryEntryUpsertOne) SetName(v string) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateName() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *DirectoryEntryUpsertOne) SetEmail(v string) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateEmail() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateEmail()
	})
}

// SetRole sets the "role" field.
func (u *DirectoryEntryUpsertOne) SetRole(v string) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateRole() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateRole()
	})
}

// SetTitle sets the "title" field.
func (u *DirectoryEntryUpsertOne) SetTitle(v string) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateTitle() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DirectoryEntryUpsertOne) ClearTitle() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.ClearTitle()
	})
}

// SetDepartment sets the "department" field.
func (u *DirectoryEntryUpsertOne) SetDepartment(v string) *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *DirectoryEntryUpsertOne) UpdateDepartment() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *DirectoryEntryUpsertOne) ClearDepartment() *DirectoryEntryUpsertOne {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.ClearDepartment()
	})
}

// Exec executes the query.
func (u *DirectoryEntryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DirectoryEntryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DirectoryEntryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DirectoryEntryUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: DirectoryEntryUpsertOne.ID is not supported by MySQL driver. Use DirectoryEntryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DirectoryEntryUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DirectoryEntryCreateBulk is the builder for creating many DirectoryEntry entities in bulk.
type DirectoryEntryCreateBulk struct {
	config
	err      error
	builders []*DirectoryEntryCreate
	conflict []sql.ConflictOption
}

// Save creates the DirectoryEntry entities in the database.
func (_c *DirectoryEntryCreateBulk) Save(ctx context.Context) ([]*DirectoryEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DirectoryEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DirectoryEntryMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *DirectoryEntryCreateBulk) SaveX(ctx context.Context) []*DirectoryEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DirectoryEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DirectoryEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DirectoryEntry.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DirectoryEntryUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DirectoryEntryCreateBulk) OnConflict(opts ...sql.ConflictOption) *DirectoryEntryUpsertBulk {
	_c.conflict = opts
	return &DirectoryEntryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DirectoryEntryCreateBulk) OnConflictColumns(columns ...string) *DirectoryEntryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DirectoryEntryUpsertBulk{
		create: _c,
	}
}

// DirectoryEntryUpsertBulk is the builder for "upsert"-ing
// a bulk of DirectoryEntry nodes.
type DirectoryEntryUpsertBulk struct {
	create *DirectoryEntryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(directoryentry.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DirectoryEntryUpsertBulk) UpdateNewValues() *DirectoryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(directoryentry.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(directoryentry.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DirectoryEntry.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DirectoryEntryUpsertBulk) Ignore() *DirectoryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DirectoryEntryUpsertBulk) DoNothing() *DirectoryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DirectoryEntryCreateBulk.OnConflict
// documentation for more info.
func (u *DirectoryEntryUpsertBulk) Update(set func(*DirectoryEntryUpsert)) *DirectoryEntryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DirectoryEntryUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DirectoryEntryUpsertBulk) SetUpdatedAt(v time.Time) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateUpdatedAt() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DirectoryEntryUpsertBulk) SetName(v string) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateName() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateName()
	})
}

// SetEmail sets the "email" field.
func (u *DirectoryEntryUpsertBulk) SetEmail(v string) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateEmail() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateEmail()
	})
}

// SetRole sets the "role" field.
func (u *DirectoryEntryUpsertBulk) SetRole(v string) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateRole() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateRole()
	})
}

// SetTitle sets the "title" field.
func (u *DirectoryEntryUpsertBulk) SetTitle(v string) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateTitle() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *DirectoryEntryUpsertBulk) ClearTitle() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.ClearTitle()
	})
}

// SetDepartment sets the "department" field.
func (u *DirectoryEntryUpsertBulk) SetDepartment(v string) *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *DirectoryEntryUpsertBulk) UpdateDepartment() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *DirectoryEntryUpsertBulk) ClearDepartment() *DirectoryEntryUpsertBulk {
	return u.Update(func(s *DirectoryEntryUpsert) {
		s.ClearDepartment()
	})
}

// Exec executes the query.
func (u *DirectoryEntryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the DirectoryEntryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for DirectoryEntryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DirectoryEntryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

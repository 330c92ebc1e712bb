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
	"github.com/proflink/proflink_backend/internal/repo/rolecounter"
)

// RoleCounterCreate is the builder for creating a RoleCounter entity.
type RoleCounterCreate struct {
	config
	mutation *RoleCounterMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoleCounterCreate) SetCreatedAt(v time.Time) *RoleCounterCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoleCounterCreate) SetNillableCreatedAt(v *time.Time) *RoleCounterCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RoleCounterCreate) SetUpdatedAt(v time.Time) *RoleCounterCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RoleCounterCreate) SetNillableUpdatedAt(v *time.Time) *RoleCounterCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *RoleCounterCreate) SetRole(v string) *RoleCounterCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNextSeq sets the "next_seq" field.
func (_c *RoleCounterCreate) SetNextSeq(v int64) *RoleCounterCreate {
	_c.mutation.SetNextSeq(v)
	return _c
}

// SetNillableNextSeq sets the "next_seq" field if the given value is not nil.
func (_c *RoleCounterCreate) SetNillableNextSeq(v *int64) *RoleCounterCreate {
	if v != nil {
		_c.SetNextSeq(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoleCounterCreate) SetID(v uuid.UUID) *RoleCounterCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RoleCounterCreate) SetNillableID(v *uuid.UUID) *RoleCounterCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the RoleCounterMutation object of the builder.
func (_c *RoleCounterCreate) Mutation() *RoleCounterMutation {
	return _c.mutation
}

// Save creates the RoleCounter in the database.
func (_c *RoleCounterCreate) Save(ctx context.Context) (*RoleCounter, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoleCounterCreate) SaveX(ctx context.Context) *RoleCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleCounterCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleCounterCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoleCounterCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rolecounter.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := rolecounter.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.NextSeq(); !ok {
		v := rolecounter.DefaultNextSeq
		_c.mutation.SetNextSeq(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := rolecounter.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoleCounterCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RoleCounter.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "RoleCounter.updated_at"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "RoleCounter.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := rolecounter.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NextSeq(); !ok {
		return &ValidationError{Name: "next_seq", err: errors.New(`repo: missing required field "RoleCounter.next_seq"`)}
	}
	if v, ok := _c.mutation.NextSeq(); ok {
		if err := rolecounter.NextSeqValidator(v); err != nil {
			return &ValidationError{Name: "next_seq", err: fmt.Errorf(`repo: validator failed for field "RoleCounter.next_seq": %w`, err)}
		}
	}
	return nil
}

func (_c *RoleCounterCreate) sqlSave(ctx context.Context) (*RoleCounter, error) {
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

func (_c *RoleCounterCreate) createSpec() (*RoleCounter, *sqlgraph.CreateSpec) {
	var (
		_node = &RoleCounter{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rolecounter.Table, sqlgraph.NewFieldSpec(rolecounter.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rolecounter.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(rolecounter.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(rolecounter.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.NextSeq(); ok {
		_spec.SetField(rolecounter.FieldNextSeq, field.TypeInt64, value)
		_node.NextSeq = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleCounter.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleCounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleCounterCreate) OnConflict(opts ...sql.ConflictOption) *RoleCounterUpsertOne {
	_c.conflict = opts
	return &RoleCounterUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleCounterCreate) OnConflictColumns(columns ...string) *RoleCounterUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleCounterUpsertOne{
		create: _c,
	}
}

type (
	// RoleCounterUpsertOne is the builder for "upsert"-ing
	//  one RoleCounter node.
	RoleCounterUpsertOne struct {
		create *RoleCounterCreate
	}

	// RoleCounterUpsert is the "OnConflict" setter.
	RoleCounterUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *RoleCounterUpsert) SetUpdatedAt(v time.Time) *RoleCounterUpsert {
	u.Set(rolecounter.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoleCounterUpsert) UpdateUpdatedAt() *RoleCounterUpsert {
	u.SetExcluded(rolecounter.FieldUpdatedAt)
	return u
}

// SetRole sets the "role" field.
func (u *RoleCounterUpsert) SetRole(v string) *RoleCounterUpsert {
	u.Set(rolecounter.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleCounterUpsert) UpdateRole() *RoleCounterUpsert {
	u.SetExcluded(rolecounter.FieldRole)
	return u
}

// SetNextSeq sets the "next_seq" field.
func (u *RoleCounterUpsert) SetNextSeq(v int64) *RoleCounterUpsert {
	u.Set(rolecounter.FieldNextSeq, v)
	return u
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *RoleCounterUpsert) UpdateNextSeq() *RoleCounterUpsert {
	u.SetExcluded(rolecounter.FieldNextSeq)
	return u
}

// AddNextSeq adds v to the "next_seq" field.
func (u *RoleCounterUpsert) AddNextSeq(v int64) *RoleCounterUpsert {
	u.Add(rolecounter.FieldNextSeq, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rolecounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleCounterUpsertOne) UpdateNewValues() *RoleCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(rolecounter.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(rolecounter.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoleCounterUpsertOne) Ignore() *RoleCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleCounterUpsertOne) DoNothing() *RoleCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleCounterCreate.OnConflict
// documentation for more info.
func (u *RoleCounterUpsertOne) Update(set func(*RoleCounterUpsert)) *RoleCounterUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoleCounterUpsertOne) SetUpdatedAt(v time.Time) *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoleCounterUpsertOne) UpdateUpdatedAt() *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRole sets the "role" field.
func (u *RoleCounterUpsertOne) SetRole(v string) *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleCounterUpsertOne) UpdateRole() *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateRole()
	})
}

// SetNextSeq sets the "next_seq" field.
func (u *RoleCounterUpsertOne) SetNextSeq(v int64) *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetNextSeq(v)
	})
}

// AddNextSeq adds v to the "next_seq" field.
func (u *RoleCounterUpsertOne) AddNextSeq(v int64) *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.AddNextSeq(v)
	})
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *RoleCounterUpsertOne) UpdateNextSeq() *RoleCounterUpsertOne {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateNextSeq()
	})
}

// Exec executes the query.
func (u *RoleCounterUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoleCounterCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleCounterUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoleCounterUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RoleCounterUpsertOne.ID is not supported by MySQL driver. Use RoleCounterUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoleCounterUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoleCounterCreateBulk is the builder for creating many RoleCounter entities in bulk.
type RoleCounterCreateBulk struct {
	config
	err      error
	builders []*RoleCounterCreate
	conflict []sql.ConflictOption
}

// Save creates the RoleCounter entities in the database.
func (_c *RoleCounterCreateBulk) Save(ctx context.Context) ([]*RoleCounter, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoleCounter, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoleCounterMutation)
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
func (_c *RoleCounterCreateBulk) SaveX(ctx context.Context) []*RoleCounter {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleCounterCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleCounterCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleCounter.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleCounterUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleCounterCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoleCounterUpsertBulk {
	_c.conflict = opts
	return &RoleCounterUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleCounterCreateBulk) OnConflictColumns(columns ...string) *RoleCounterUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleCounterUpsertBulk{
		create: _c,
	}
}

// RoleCounterUpsertBulk is the builder for "upsert"-ing
// a bulk of RoleCounter nodes.
type RoleCounterUpsertBulk struct {
	create *RoleCounterCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(rolecounter.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleCounterUpsertBulk) UpdateNewValues() *RoleCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(rolecounter.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(rolecounter.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleCounter.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoleCounterUpsertBulk) Ignore() *RoleCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleCounterUpsertBulk) DoNothing() *RoleCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleCounterCreateBulk.OnConflict
// documentation for more info.
func (u *RoleCounterUpsertBulk) Update(set func(*RoleCounterUpsert)) *RoleCounterUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleCounterUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RoleCounterUpsertBulk) SetUpdatedAt(v time.Time) *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RoleCounterUpsertBulk) UpdateUpdatedAt() *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetRole sets the "role" field.
func (u *RoleCounterUpsertBulk) SetRole(v string) *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleCounterUpsertBulk) UpdateRole() *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateRole()
	})
}

// SetNextSeq sets the "next_seq" field.
func (u *RoleCounterUpsertBulk) SetNextSeq(v int64) *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.SetNextSeq(v)
	})
}

// AddNextSeq adds v to the "next_seq" field.
func (u *RoleCounterUpsertBulk) AddNextSeq(v int64) *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.AddNextSeq(v)
	})
}

// UpdateNextSeq sets the "next_seq" field to the value that was provided on create.
func (u *RoleCounterUpsertBulk) UpdateNextSeq() *RoleCounterUpsertBulk {
	return u.Update(func(s *RoleCounterUpsert) {
		s.UpdateNextSeq()
	})
}

// Exec executes the query.
func (u *RoleCounterUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RoleCounterCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoleCounterCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleCounterUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proflink/proflink_backend/internal/repo/directoryentry"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// DirectoryEntryDelete is the builder for deleting a DirectoryEntry entity.
type DirectoryEntryDelete struct {
	config
	hooks    []Hook
	mutation *DirectoryEntryMutation
}

// Where appends a list predicates to the DirectoryEntryDelete builder.
func (_d *DirectoryEntryDelete) Where(ps ...predicate.DirectoryEntry) *DirectoryEntryDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DirectoryEntryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DirectoryEntryDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DirectoryEntryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(directoryentry.Table, sqlgraph.NewFieldSpec(directoryentry.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DirectoryEntryDeleteOne is the builder for deleting a single DirectoryEntry entity.
type DirectoryEntryDeleteOne struct {
	_d *DirectoryEntryDelete
}

// Where appends a list predicates to the DirectoryEntryDelete builder.
func (_d *DirectoryEntryDeleteOne) Where(ps ...predicate.DirectoryEntry) *DirectoryEntryDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DirectoryEntryDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{directoryentry.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DirectoryEntryDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

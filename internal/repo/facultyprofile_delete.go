// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
)

// FacultyProfileDelete is the builder for deleting a FacultyProfile entity.
type FacultyProfileDelete struct {
	config
	hooks    []Hook
	mutation *FacultyProfileMutation
}

// Where appends a list predicates to the FacultyProfileDelete builder.
func (_d *FacultyProfileDelete) Where(ps ...predicate.FacultyProfile) *FacultyProfileDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FacultyProfileDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FacultyProfileDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FacultyProfileDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(facultyprofile.Table, sqlgraph.NewFieldSpec(facultyprofile.FieldID, field.TypeUUID))
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

// FacultyProfileDeleteOne is the builder for deleting a single FacultyProfile entity.
type FacultyProfileDeleteOne struct {
	_d *FacultyProfileDelete
}

// Where appends a list predicates to the FacultyProfileDelete builder.
func (_d *FacultyProfileDeleteOne) Where(ps ...predicate.FacultyProfile) *FacultyProfileDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FacultyProfileDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{facultyprofile.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FacultyProfileDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}

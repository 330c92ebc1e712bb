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
	"github.com/proflink/proflink_backend/internal/repo/studentprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// StudentProfileCreate is the builder for creating a StudentProfile entity.
type StudentProfileCreate struct {
	config
	mutation *StudentProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *StudentProfileCreate) SetCreatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCreatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StudentProfileCreate) SetUpdatedAt(v time.Time) *StudentProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableUpdatedAt(v *time.Time) *StudentProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *StudentProfileCreate) SetUserID(v uuid.UUID) *StudentProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *StudentProfileCreate) SetProfileID(v string) *StudentProfileCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableProfileID(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetProfileID(*v)
	}
	return _c
}

// SetStudentNumber sets the "student_number" field.
func (_c *StudentProfileCreate) SetStudentNumber(v string) *StudentProfileCreate {
	_c.mutation.SetStudentNumber(v)
	return _c
}

// SetNillableStudentNumber sets the "student_number" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableStudentNumber(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetStudentNumber(*v)
	}
	return _c
}

// SetYear sets the "year" field.
func (_c *StudentProfileCreate) SetYear(v string) *StudentProfileCreate {
	_c.mutation.SetYear(v)
	return _c
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableYear(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetYear(*v)
	}
	return _c
}

// SetMajor sets the "major" field.
func (_c *StudentProfileCreate) SetMajor(v string) *StudentProfileCreate {
	_c.mutation.SetMajor(v)
	return _c
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableMajor(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetMajor(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *StudentProfileCreate) SetDepartment(v string) *StudentProfileCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableDepartment(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetGpa sets the "gpa" field.
func (_c *StudentProfileCreate) SetGpa(v float64) *StudentProfileCreate {
	_c.mutation.SetGpa(v)
	return _c
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableGpa(v *float64) *StudentProfileCreate {
	if v != nil {
		_c.SetGpa(*v)
	}
	return _c
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (_c *StudentProfileCreate) SetExpectedGraduation(v string) *StudentProfileCreate {
	_c.mutation.SetExpectedGraduation(v)
	return _c
}

// SetNillableExpectedGraduation sets the "expected_graduation" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableExpectedGraduation(v *string) *StudentProfileCreate {
	if v != nil {
		_c.SetExpectedGraduation(*v)
	}
	return _c
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (_c *StudentProfileCreate) SetPreferredDepartments(v []string) *StudentProfileCreate {
	_c.mutation.SetPreferredDepartments(v)
	return _c
}

// SetConsultationTypes sets the "consultation_types" field.
func (_c *StudentProfileCreate) SetConsultationTypes(v []string) *StudentProfileCreate {
	_c.mutation.SetConsultationTypes(v)
	return _c
}

// SetTotalAppointments sets the "total_appointments" field.
func (_c *StudentProfileCreate) SetTotalAppointments(v int) *StudentProfileCreate {
	_c.mutation.SetTotalAppointments(v)
	return _c
}

// SetNillableTotalAppointments sets the "total_appointments" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableTotalAppointments(v *int) *StudentProfileCreate {
	if v != nil {
		_c.SetTotalAppointments(*v)
	}
	return _c
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (_c *StudentProfileCreate) SetCompletedAppointments(v int) *StudentProfileCreate {
	_c.mutation.SetCompletedAppointments(v)
	return _c
}

// SetNillableCompletedAppointments sets the "completed_appointments" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCompletedAppointments(v *int) *StudentProfileCreate {
	if v != nil {
		_c.SetCompletedAppointments(*v)
	}
	return _c
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (_c *StudentProfileCreate) SetCancelledAppointments(v int) *StudentProfileCreate {
	_c.mutation.SetCancelledAppointments(v)
	return _c
}

// SetNillableCancelledAppointments sets the "cancelled_appointments" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableCancelledAppointments(v *int) *StudentProfileCreate {
	if v != nil {
		_c.SetCancelledAppointments(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StudentProfileCreate) SetID(v uuid.UUID) *StudentProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *StudentProfileCreate) SetNillableID(v *uuid.UUID) *StudentProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *StudentProfileCreate) SetUser(v *User) *StudentProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_c *StudentProfileCreate) Mutation() *StudentProfileMutation {
	return _c.mutation
}

// Save creates the StudentProfile in the database.
func (_c *StudentProfileCreate) Save(ctx context.Context) (*StudentProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentProfileCreate) SaveX(ctx context.Context) *StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := studentprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := studentprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		v := studentprofile.DefaultProfileID
		_c.mutation.SetProfileID(v)
	}
	if _, ok := _c.mutation.TotalAppointments(); !ok {
		v := studentprofile.DefaultTotalAppointments
		_c.mutation.SetTotalAppointments(v)
	}
	if _, ok := _c.mutation.CompletedAppointments(); !ok {
		v := studentprofile.DefaultCompletedAppointments
		_c.mutation.SetCompletedAppointments(v)
	}
	if _, ok := _c.mutation.CancelledAppointments(); !ok {
		v := studentprofile.DefaultCancelledAppointments
		_c.mutation.SetCancelledAppointments(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := studentprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "StudentProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "StudentProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "StudentProfile.user_id"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`repo: missing required field "StudentProfile.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := studentprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StudentNumber(); ok {
		if err := studentprofile.StudentNumberValidator(v); err != nil {
			return &ValidationError{Name: "student_number", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.student_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Year(); ok {
		if err := studentprofile.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.year": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Major(); ok {
		if err := studentprofile.MajorValidator(v); err != nil {
			return &ValidationError{Name: "major", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.major": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := studentprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.department": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Gpa(); ok {
		if err := studentprofile.GpaValidator(v); err != nil {
			return &ValidationError{Name: "gpa", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.gpa": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExpectedGraduation(); ok {
		if err := studentprofile.ExpectedGraduationValidator(v); err != nil {
			return &ValidationError{Name: "expected_graduation", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.expected_graduation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalAppointments(); !ok {
		return &ValidationError{Name: "total_appointments", err: errors.New(`repo: missing required field "StudentProfile.total_appointments"`)}
	}
	if v, ok := _c.mutation.TotalAppointments(); ok {
		if err := studentprofile.TotalAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "total_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.total_appointments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletedAppointments(); !ok {
		return &ValidationError{Name: "completed_appointments", err: errors.New(`repo: missing required field "StudentProfile.completed_appointments"`)}
	}
	if v, ok := _c.mutation.CompletedAppointments(); ok {
		if err := studentprofile.CompletedAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "completed_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.completed_appointments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelledAppointments(); !ok {
		return &ValidationError{Name: "cancelled_appointments", err: errors.New(`repo: missing required field "StudentProfile.cancelled_appointments"`)}
	}
	if v, ok := _c.mutation.CancelledAppointments(); ok {
		if err := studentprofile.CancelledAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "cancelled_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.cancelled_appointments": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "StudentProfile.user"`)}
	}
	return nil
}

func (_c *StudentProfileCreate) sqlSave(ctx context.Context) (*StudentProfile, error) {
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

func (_c *StudentProfileCreate) createSpec() (*StudentProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentprofile.Table, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(studentprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(studentprofile.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.StudentNumber(); ok {
		_spec.SetField(studentprofile.FieldStudentNumber, field.TypeString, value)
		_node.StudentNumber = &value
	}
	if value, ok := _c.mutation.Year(); ok {
		_spec.SetField(studentprofile.FieldYear, field.TypeString, value)
		_node.Year = &value
	}
	if value, ok := _c.mutation.Major(); ok {
		_spec.SetField(studentprofile.FieldMajor, field.TypeString, value)
		_node.Major = &value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(studentprofile.FieldDepartment, field.TypeString, value)
		_node.Department = &value
	}
	if value, ok := _c.mutation.Gpa(); ok {
		_spec.SetField(studentprofile.FieldGpa, field.TypeFloat64, value)
		_node.Gpa = &value
	}
	if value, ok := _c.mutation.ExpectedGraduation(); ok {
		_spec.SetField(studentprofile.FieldExpectedGraduation, field.TypeString, value)
		_node.ExpectedGraduation = &value
	}
	if value, ok := _c.mutation.PreferredDepartments(); ok {
		_spec.SetField(studentprofile.FieldPreferredDepartments, field.TypeJSON, value)
		_node.PreferredDepartments = value
	}
	if value, ok := _c.mutation.ConsultationTypes(); ok {
		_spec.SetField(studentprofile.FieldConsultationTypes, field.TypeJSON, value)
		_node.ConsultationTypes = value
	}
	if value, ok := _c.mutation.TotalAppointments(); ok {
		_spec.SetField(studentprofile.FieldTotalAppointments, field.TypeInt, value)
		_node.TotalAppointments = value
	}
	if value, ok := _c.mutation.CompletedAppointments(); ok {
		_spec.SetField(studentprofile.FieldCompletedAppointments, field.TypeInt, value)
		_node.CompletedAppointments = value
	}
	if value, ok := _c.mutation.CancelledAppointments(); ok {
		_spec.SetField(studentprofile.FieldCancelledAppointments, field.TypeInt, value)
		_node.CancelledAppointments = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   studentprofile.UserTable,
			Columns: []string{studentprofile.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentProfileCreate) OnConflict(opts ...sql.ConflictOption) *StudentProfileUpsertOne {
	_c.conflict = opts
	return &StudentProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentProfileCreate) OnConflictColumns(columns ...string) *StudentProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentProfileUpsertOne{
		create: _c,
	}
}

type (
	// StudentProfileUpsertOne is the builder for "upsert"-ing
	//  one StudentProfile node.
	StudentProfileUpsertOne struct {
		create *StudentProfileCreate
	}

	// StudentProfileUpsert is the "OnConflict" setter.
	StudentProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsert) SetUpdatedAt(v time.Time) *StudentProfileUpsert {
	u.Set(studentprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateUpdatedAt() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsert) SetUserID(v uuid.UUID) *StudentProfileUpsert {
	u.Set(studentprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateUserID() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldUserID)
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *StudentProfileUpsert) SetProfileID(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateProfileID() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldProfileID)
	return u
}

// SetStudentNumber sets the "student_number" field.
func (u *StudentProfileUpsert) SetStudentNumber(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldStudentNumber, v)
	return u
}

// UpdateStudentNumber sets the "student_number" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateStudentNumber() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldStudentNumber)
	return u
}

// ClearStudentNumber clears the value of the "student_number" field.
func (u *StudentProfileUpsert) ClearStudentNumber() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldStudentNumber)
	return u
}

// SetYear sets the "year" field.
func (u *StudentProfileUpsert) SetYear(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldYear, v)
	return u
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateYear() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldYear)
	return u
}

// ClearYear clears the value of the "year" field.
func (u *StudentProfileUpsert) ClearYear() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldYear)
	return u
}

// SetMajor sets the "major" field.
func (u *StudentProfileUpsert) SetMajor(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldMajor, v)
	return u
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateMajor() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldMajor)
	return u
}

// ClearMajor clears the value of the "major" field.
func (u *StudentProfileUpsert) ClearMajor() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldMajor)
	return u
}

// SetDepartment sets the "department" field.
func (u *StudentProfileUpsert) SetDepartment(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldDepartment, v)
	return u
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateDepartment() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldDepartment)
	return u
}

// ClearDepartment clears the value of the "department" field.
func (u *StudentProfileUpsert) ClearDepartment() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldDepartment)
	return u
}

// SetGpa sets the "gpa" field.
func (u *StudentProfileUpsert) SetGpa(v float64) *StudentProfileUpsert {
	u.Set(studentprofile.FieldGpa, v)
	return u
}

// UpdateGpa sets the "gpa" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateGpa() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldGpa)
	return u
}

// AddGpa adds v to the "gpa" field.
func (u *StudentProfileUpsert) AddGpa(v float64) *StudentProfileUpsert {
	u.Add(studentprofile.FieldGpa, v)
	return u
}

// ClearGpa clears the value of the "gpa" field.
func (u *StudentProfileUpsert) ClearGpa() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldGpa)
	return u
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (u *StudentProfileUpsert) SetExpectedGraduation(v string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldExpectedGraduation, v)
	return u
}

// UpdateExpectedGraduation sets the "expected_graduation" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateExpectedGraduation() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldExpectedGraduation)
	return u
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (u *StudentProfileUpsert) ClearExpectedGraduation() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldExpectedGraduation)
	return u
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (u *StudentProfileUpsert) SetPreferredDepartments(v []string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldPreferredDepartments, v)
	return u
}

// UpdatePreferredDepartments sets the "preferred_departments" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdatePreferredDepartments() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldPreferredDepartments)
	return u
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (u *StudentProfileUpsert) ClearPreferredDepartments() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldPreferredDepartments)
	return u
}

// SetConsultationTypes sets the "consultation_types" field.
func (u *StudentProfileUpsert) SetConsultationTypes(v []string) *StudentProfileUpsert {
	u.Set(studentprofile.FieldConsultationTypes, v)
	return u
}

// UpdateConsultationTypes sets the "consultation_types" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateConsultationTypes() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldConsultationTypes)
	return u
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (u *StudentProfileUpsert) ClearConsultationTypes() *StudentProfileUpsert {
	u.SetNull(studentprofile.FieldConsultationTypes)
	return u
}

// SetTotalAppointments sets the "total_appointments" field.
func (u *StudentProfileUpsert) SetTotalAppointments(v int) *StudentProfileUpsert {
	u.Set(studentprofile.FieldTotalAppointments, v)
	return u
}

// UpdateTotalAppointments sets the "total_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateTotalAppointments() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldTotalAppointments)
	return u
}

// AddTotalAppointments adds v to the "total_appointments" field.
func (u *StudentProfileUpsert) AddTotalAppointments(v int) *StudentProfileUpsert {
	u.Add(studentprofile.FieldTotalAppointments, v)
	return u
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (u *StudentProfileUpsert) SetCompletedAppointments(v int) *StudentProfileUpsert {
	u.Set(studentprofile.FieldCompletedAppointments, v)
	return u
}

// UpdateCompletedAppointments sets the "completed_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateCompletedAppointments() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldCompletedAppointments)
	return u
}

// AddCompletedAppointments adds v to the "completed_appointments" field.
func (u *StudentProfileUpsert) AddCompletedAppointments(v int) *StudentProfileUpsert {
	u.Add(studentprofile.FieldCompletedAppointments, v)
	return u
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (u *StudentProfileUpsert) SetCancelledAppointments(v int) *StudentProfileUpsert {
	u.Set(studentprofile.FieldCancelledAppointments, v)
	return u
}

// UpdateCancelledAppointments sets the "cancelled_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsert) UpdateCancelledAppointments() *StudentProfileUpsert {
	u.SetExcluded(studentprofile.FieldCancelledAppointments)
	return u
}

// AddCancelledAppointments adds v to the "cancelled_appointments" field.
func (u *StudentProfileUpsert) AddCancelledAppointments(v int) *StudentProfileUpsert {
	u.Add(studentprofile.FieldCancelledAppointments, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentProfileUpsertOne) UpdateNewValues() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(studentprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(studentprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StudentProfileUpsertOne) Ignore() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentProfileUpsertOne) DoNothing() *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentProfileCreate.OnConflict
// documentation for more info.
func (u *StudentProfileUpsertOne) Update(set func(*StudentProfileUpsert)) *StudentProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsertOne) SetUpdatedAt(v time.Time) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateUpdatedAt() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsertOne) SetUserID(v uuid.UUID) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateUserID() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *StudentProfileUpsertOne) SetProfileID(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateProfileID() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateProfileID()
	})
}

// SetStudentNumber sets the "student_number" field.
func (u *StudentProfileUpsertOne) SetStudentNumber(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetStudentNumber(v)
	})
}

// UpdateStudentNumber sets the "student_number" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateStudentNumber() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateStudentNumber()
	})
}

// ClearStudentNumber clears the value of the "student_number" field.
func (u *StudentProfileUpsertOne) ClearStudentNumber() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearStudentNumber()
	})
}

// SetYear sets the "year" field.
func (u *StudentProfileUpsertOne) SetYear(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateYear() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *StudentProfileUpsertOne) ClearYear() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearYear()
	})
}

// SetMajor sets the "major" field.
func (u *StudentProfileUpsertOne) SetMajor(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetMajor(v)
	})
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateMajor() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateMajor()
	})
}

// ClearMajor clears the value of the "major" field.
func (u *StudentProfileUpsertOne) ClearMajor() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearMajor()
	})
}

// SetDepartment sets the "department" field.
func (u *StudentProfileUpsertOne) SetDepartment(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateDepartment() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *StudentProfileUpsertOne) ClearDepartment() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearDepartment()
	})
}

// SetGpa sets the "gpa" field.
func (u *StudentProfileUpsertOne) SetGpa(v float64) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetGpa(v)
	})
}

// AddGpa adds v to the "gpa" field.
func (u *StudentProfileUpsertOne) AddGpa(v float64) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddGpa(v)
	})
}

// UpdateGpa sets the "gpa" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateGpa() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateGpa()
	})
}

// ClearGpa clears the value of the "gpa" field.
func (u *StudentProfileUpsertOne) ClearGpa() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearGpa()
	})
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (u *StudentProfileUpsertOne) SetExpectedGraduation(v string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetExpectedGraduation(v)
	})
}

// UpdateExpectedGraduation sets the "expected_graduation" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateExpectedGraduation() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateExpectedGraduation()
	})
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (u *StudentProfileUpsertOne) ClearExpectedGraduation() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearExpectedGraduation()
	})
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (u *StudentProfileUpsertOne) SetPreferredDepartments(v []string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetPreferredDepartments(v)
	})
}

// UpdatePreferredDepartments sets the "preferred_departments" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdatePreferredDepartments() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdatePreferredDepartments()
	})
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (u *StudentProfileUpsertOne) ClearPreferredDepartments() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearPreferredDepartments()
	})
}

// SetConsultationTypes sets the "consultation_types" field.
func (u *StudentProfileUpsertOne) SetConsultationTypes(v []string) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetConsultationTypes(v)
	})
}

// UpdateConsultationTypes sets the "consultation_types" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateConsultationTypes() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateConsultationTypes()
	})
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (u *StudentProfileUpsertOne) ClearConsultationTypes() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearConsultationTypes()
	})
}

// SetTotalAppointments sets the "total_appointments" field.
func (u *StudentProfileUpsertOne) SetTotalAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetTotalAppointments(v)
	})
}

// AddTotalAppointments adds v to the "total_appointments" field.
func (u *StudentProfileUpsertOne) AddTotalAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddTotalAppointments(v)
	})
}

// UpdateTotalAppointments sets the "total_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateTotalAppointments() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateTotalAppointments()
	})
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (u *StudentProfileUpsertOne) SetCompletedAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCompletedAppointments(v)
	})
}

// AddCompletedAppointments adds v to the "completed_appointments" field.
func (u *StudentProfileUpsertOne) AddCompletedAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddCompletedAppointments(v)
	})
}

// UpdateCompletedAppointments sets the "completed_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateCompletedAppointments() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCompletedAppointments()
	})
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (u *StudentProfileUpsertOne) SetCancelledAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCancelledAppointments(v)
	})
}

// AddCancelledAppointments adds v to the "cancelled_appointments" field.
func (u *StudentProfileUpsertOne) AddCancelledAppointments(v int) *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddCancelledAppointments(v)
	})
}

// UpdateCancelledAppointments sets the "cancelled_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertOne) UpdateCancelledAppointments() *StudentProfileUpsertOne {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCancelledAppointments()
	})
}

// Exec executes the query.
func (u *StudentProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudentProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StudentProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: StudentProfileUpsertOne.ID is not supported by MySQL driver. Use StudentProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StudentProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StudentProfileCreateBulk is the builder for creating many StudentProfile entities in bulk.
type StudentProfileCreateBulk struct {
	config
	err      error
	builders []*StudentProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the StudentProfile entities in the database.
func (_c *StudentProfileCreateBulk) Save(ctx context.Context) ([]*StudentProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentProfileMutation)
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
func (_c *StudentProfileCreateBulk) SaveX(ctx context.Context) []*StudentProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StudentProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StudentProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *StudentProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *StudentProfileUpsertBulk {
	_c.conflict = opts
	return &StudentProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StudentProfileCreateBulk) OnConflictColumns(columns ...string) *StudentProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StudentProfileUpsertBulk{
		create: _c,
	}
}

// StudentProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of StudentProfile nodes.
type StudentProfileUpsertBulk struct {
	create *StudentProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(studentprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StudentProfileUpsertBulk) UpdateNewValues() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(studentprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(studentprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StudentProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StudentProfileUpsertBulk) Ignore() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StudentProfileUpsertBulk) DoNothing() *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StudentProfileCreateBulk.OnConflict
// documentation for more info.
func (u *StudentProfileUpsertBulk) Update(set func(*StudentProfileUpsert)) *StudentProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StudentProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StudentProfileUpsertBulk) SetUpdatedAt(v time.Time) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateUpdatedAt() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *StudentProfileUpsertBulk) SetUserID(v uuid.UUID) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateUserID() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *StudentProfileUpsertBulk) SetProfileID(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateProfileID() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateProfileID()
	})
}

// SetStudentNumber sets the "student_number" field.
func (u *StudentProfileUpsertBulk) SetStudentNumber(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetStudentNumber(v)
	})
}

// UpdateStudentNumber sets the "student_number" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateStudentNumber() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateStudentNumber()
	})
}

// ClearStudentNumber clears the value of the "student_number" field.
func (u *StudentProfileUpsertBulk) ClearStudentNumber() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearStudentNumber()
	})
}

// SetYear sets the "year" field.
func (u *StudentProfileUpsertBulk) SetYear(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetYear(v)
	})
}

// UpdateYear sets the "year" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateYear() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateYear()
	})
}

// ClearYear clears the value of the "year" field.
func (u *StudentProfileUpsertBulk) ClearYear() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearYear()
	})
}

// SetMajor sets the "major" field.
func (u *StudentProfileUpsertBulk) SetMajor(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetMajor(v)
	})
}

// UpdateMajor sets the "major" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateMajor() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateMajor()
	})
}

// ClearMajor clears the value of the "major" field.
func (u *StudentProfileUpsertBulk) ClearMajor() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearMajor()
	})
}

// SetDepartment sets the "department" field.
func (u *StudentProfileUpsertBulk) SetDepartment(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateDepartment() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *StudentProfileUpsertBulk) ClearDepartment() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearDepartment()
	})
}

// SetGpa sets the "gpa" field.
func (u *StudentProfileUpsertBulk) SetGpa(v float64) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetGpa(v)
	})
}

// AddGpa adds v to the "gpa" field.
func (u *StudentProfileUpsertBulk) AddGpa(v float64) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddGpa(v)
	})
}

// UpdateGpa sets the "gpa" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateGpa() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateGpa()
	})
}

// ClearGpa clears the value of the "gpa" field.
func (u *StudentProfileUpsertBulk) ClearGpa() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearGpa()
	})
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (u *StudentProfileUpsertBulk) SetExpectedGraduation(v string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetExpectedGraduation(v)
	})
}

// UpdateExpectedGraduation sets the "expected_graduation" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateExpectedGraduation() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateExpectedGraduation()
	})
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (u *StudentProfileUpsertBulk) ClearExpectedGraduation() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearExpectedGraduation()
	})
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (u *StudentProfileUpsertBulk) SetPreferredDepartments(v []string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetPreferredDepartments(v)
	})
}

// UpdatePreferredDepartments sets the "preferred_departments" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdatePreferredDepartments() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdatePreferredDepartments()
	})
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (u *StudentProfileUpsertBulk) ClearPreferredDepartments() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearPreferredDepartments()
	})
}

// SetConsultationTypes sets the "consultation_types" field.
func (u *StudentProfileUpsertBulk) SetConsultationTypes(v []string) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetConsultationTypes(v)
	})
}

// UpdateConsultationTypes sets the "consultation_types" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateConsultationTypes() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateConsultationTypes()
	})
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (u *StudentProfileUpsertBulk) ClearConsultationTypes() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.ClearConsultationTypes()
	})
}

// SetTotalAppointments sets the "total_appointments" field.
func (u *StudentProfileUpsertBulk) SetTotalAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetTotalAppointments(v)
	})
}

// AddTotalAppointments adds v to the "total_appointments" field.
func (u *StudentProfileUpsertBulk) AddTotalAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddTotalAppointments(v)
	})
}

// UpdateTotalAppointments sets the "total_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateTotalAppointments() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateTotalAppointments()
	})
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (u *StudentProfileUpsertBulk) SetCompletedAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCompletedAppointments(v)
	})
}

// AddCompletedAppointments adds v to the "completed_appointments" field.
func (u *StudentProfileUpsertBulk) AddCompletedAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddCompletedAppointments(v)
	})
}

// UpdateCompletedAppointments sets the "completed_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateCompletedAppointments() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCompletedAppointments()
	})
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (u *StudentProfileUpsertBulk) SetCancelledAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.SetCancelledAppointments(v)
	})
}

// AddCancelledAppointments adds v to the "cancelled_appointments" field.
func (u *StudentProfileUpsertBulk) AddCancelledAppointments(v int) *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.AddCancelledAppointments(v)
	})
}

// UpdateCancelledAppointments sets the "cancelled_appointments" field to the value that was provided on create.
func (u *StudentProfileUpsertBulk) UpdateCancelledAppointments() *StudentProfileUpsertBulk {
	return u.Update(func(s *StudentProfileUpsert) {
		s.UpdateCancelledAppointments()
	})
}

// Exec executes the query.
func (u *StudentProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the StudentProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for StudentProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StudentProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

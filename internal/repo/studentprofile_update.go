// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	"github.com/proflink/proflink_backend/internal/repo/studentprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// StudentProfileUpdate is the builder for updating StudentProfile entities.
type StudentProfileUpdate struct {
	config
	hooks    []Hook
	mutation *StudentProfileMutation
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdate) Where(ps ...predicate.StudentProfile) *StudentProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdate) SetUpdatedAt(v time.Time) *StudentProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentProfileUpdate) SetUserID(v uuid.UUID) *StudentProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableUserID(v *uuid.UUID) *StudentProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *StudentProfileUpdate) SetProfileID(v string) *StudentProfileUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableProfileID(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetStudentNumber sets the "student_number" field.
func (_u *StudentProfileUpdate) SetStudentNumber(v string) *StudentProfileUpdate {
	_u.mutation.SetStudentNumber(v)
	return _u
}

// SetNillableStudentNumber sets the "student_number" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableStudentNumber(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetStudentNumber(*v)
	}
	return _u
}

// ClearStudentNumber clears the value of the "student_number" field.
func (_u *StudentProfileUpdate) ClearStudentNumber() *StudentProfileUpdate {
	_u.mutation.ClearStudentNumber()
	return _u
}

// SetYear sets the "year" field.
func (_u *StudentProfileUpdate) SetYear(v string) *StudentProfileUpdate {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableYear(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *StudentProfileUpdate) ClearYear() *StudentProfileUpdate {
	_u.mutation.ClearYear()
	return _u
}

// SetMajor sets the "major" field.
func (_u *StudentProfileUpdate) SetMajor(v string) *StudentProfileUpdate {
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableMajor(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// ClearMajor clears the value of the "major" field.
func (_u *StudentProfileUpdate) ClearMajor() *StudentProfileUpdate {
	_u.mutation.ClearMajor()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *StudentProfileUpdate) SetDepartment(v string) *StudentProfileUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableDepartment(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *StudentProfileUpdate) ClearDepartment() *StudentProfileUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *StudentProfileUpdate) SetGpa(v float64) *StudentProfileUpdate {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableGpa(v *float64) *StudentProfileUpdate {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *StudentProfileUpdate) AddGpa(v float64) *StudentProfileUpdate {
	_u.mutation.AddGpa(v)
	return _u
}

// ClearGpa clears the value of the "gpa" field.
func (_u *StudentProfileUpdate) ClearGpa() *StudentProfileUpdate {
	_u.mutation.ClearGpa()
	return _u
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (_u *StudentProfileUpdate) SetExpectedGraduation(v string) *StudentProfileUpdate {
	_u.mutation.SetExpectedGraduation(v)
	return _u
}

// SetNillableExpectedGraduation sets the "expected_graduation" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableExpectedGraduation(v *string) *StudentProfileUpdate {
	if v != nil {
		_u.SetExpectedGraduation(*v)
	}
	return _u
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (_u *StudentProfileUpdate) ClearExpectedGraduation() *StudentProfileUpdate {
	_u.mutation.ClearExpectedGraduation()
	return _u
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (_u *StudentProfileUpdate) SetPreferredDepartments(v []string) *StudentProfileUpdate {
	_u.mutation.SetPreferredDepartments(v)
	return _u
}

// AppendPreferredDepartments appends value to the "preferred_departments" field.
func (_u *StudentProfileUpdate) AppendPreferredDepartments(v []string) *StudentProfileUpdate {
	_u.mutation.AppendPreferredDepartments(v)
	return _u
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (_u *StudentProfileUpdate) ClearPreferredDepartments() *StudentProfileUpdate {
	_u.mutation.ClearPreferredDepartments()
	return _u
}

// SetConsultationTypes sets the "consultation_types" field.
func (_u *StudentProfileUpdate) SetConsultationTypes(v []string) *StudentProfileUpdate {
	_u.mutation.SetConsultationTypes(v)
	return _u
}

// AppendConsultationTypes appends value to the "consultation_types" field.
func (_u *StudentProfileUpdate) AppendConsultationTypes(v []string) *StudentProfileUpdate {
	_u.mutation.AppendConsultationTypes(v)
	return _u
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (_u *StudentProfileUpdate) ClearConsultationTypes() *StudentProfileUpdate {
	_u.mutation.ClearConsultationTypes()
	return _u
}

// SetTotalAppointments sets the "total_appointments" field.
func (_u *StudentProfileUpdate) SetTotalAppointments(v int) *StudentProfileUpdate {
	_u.mutation.ResetTotalAppointments()
	_u.mutation.SetTotalAppointments(v)
	return _u
}

// SetNillableTotalAppointments sets the "total_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableTotalAppointments(v *int) *StudentProfileUpdate {
	if v != nil {
		_u.SetTotalAppointments(*v)
	}
	return _u
}

// AddTotalAppointments adds value to the "total_appointments" field.
func (_u *StudentProfileUpdate) AddTotalAppointments(v int) *StudentProfileUpdate {
	_u.mutation.AddTotalAppointments(v)
	return _u
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (_u *StudentProfileUpdate) SetCompletedAppointments(v int) *StudentProfileUpdate {
	_u.mutation.ResetCompletedAppointments()
	_u.mutation.SetCompletedAppointments(v)
	return _u
}

// SetNillableCompletedAppointments sets the "completed_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableCompletedAppointments(v *int) *StudentProfileUpdate {
	if v != nil {
		_u.SetCompletedAppointments(*v)
	}
	return _u
}

// AddCompletedAppointments adds value to the "completed_appointments" field.
func (_u *StudentProfileUpdate) AddCompletedAppointments(v int) *StudentProfileUpdate {
	_u.mutation.AddCompletedAppointments(v)
	return _u
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (_u *StudentProfileUpdate) SetCancelledAppointments(v int) *StudentProfileUpdate {
	_u.mutation.ResetCancelledAppointments()
	_u.mutation.SetCancelledAppointments(v)
	return _u
}

// SetNillableCancelledAppointments sets the "cancelled_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdate) SetNillableCancelledAppointments(v *int) *StudentProfileUpdate {
	if v != nil {
		_u.SetCancelledAppointments(*v)
	}
	return _u
}

// AddCancelledAppointments adds value to the "cancelled_appointments" field.
func (_u *StudentProfileUpdate) AddCancelledAppointments(v int) *StudentProfileUpdate {
	_u.mutation.AddCancelledAppointments(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *StudentProfileUpdate) SetUser(v *User) *StudentProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdate) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *StudentProfileUpdate) ClearUser() *StudentProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := studentprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentNumber(); ok {
		if err := studentprofile.StudentNumberValidator(v); err != nil {
			return &ValidationError{Name: "student_number", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.student_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := studentprofile.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Major(); ok {
		if err := studentprofile.MajorValidator(v); err != nil {
			return &ValidationError{Name: "major", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.major": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := studentprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gpa(); ok {
		if err := studentprofile.GpaValidator(v); err != nil {
			return &ValidationError{Name: "gpa", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.gpa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedGraduation(); ok {
		if err := studentprofile.ExpectedGraduationValidator(v); err != nil {
			return &ValidationError{Name: "expected_graduation", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.expected_graduation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAppointments(); ok {
		if err := studentprofile.TotalAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "total_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.total_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedAppointments(); ok {
		if err := studentprofile.CompletedAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "completed_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.completed_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelledAppointments(); ok {
		if err := studentprofile.CancelledAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "cancelled_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.cancelled_appointments": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudentProfile.user"`)
	}
	return nil
}

func (_u *StudentProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(studentprofile.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentNumber(); ok {
		_spec.SetField(studentprofile.FieldStudentNumber, field.TypeString, value)
	}
	if _u.mutation.StudentNumberCleared() {
		_spec.ClearField(studentprofile.FieldStudentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(studentprofile.FieldYear, field.TypeString, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(studentprofile.FieldYear, field.TypeString)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(studentprofile.FieldMajor, field.TypeString, value)
	}
	if _u.mutation.MajorCleared() {
		_spec.ClearField(studentprofile.FieldMajor, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(studentprofile.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(studentprofile.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(studentprofile.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(studentprofile.FieldGpa, field.TypeFloat64, value)
	}
	if _u.mutation.GpaCleared() {
		_spec.ClearField(studentprofile.FieldGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpectedGraduation(); ok {
		_spec.SetField(studentprofile.FieldExpectedGraduation, field.TypeString, value)
	}
	if _u.mutation.ExpectedGraduationCleared() {
		_spec.ClearField(studentprofile.FieldExpectedGraduation, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredDepartments(); ok {
		_spec.SetField(studentprofile.FieldPreferredDepartments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredDepartments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprofile.FieldPreferredDepartments, value)
		})
	}
	if _u.mutation.PreferredDepartmentsCleared() {
		_spec.ClearField(studentprofile.FieldPreferredDepartments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsultationTypes(); ok {
		_spec.SetField(studentprofile.FieldConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprofile.FieldConsultationTypes, value)
		})
	}
	if _u.mutation.ConsultationTypesCleared() {
		_spec.ClearField(studentprofile.FieldConsultationTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalAppointments(); ok {
		_spec.SetField(studentprofile.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAppointments(); ok {
		_spec.AddField(studentprofile.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAppointments(); ok {
		_spec.SetField(studentprofile.FieldCompletedAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedAppointments(); ok {
		_spec.AddField(studentprofile.FieldCompletedAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelledAppointments(); ok {
		_spec.SetField(studentprofile.FieldCancelledAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelledAppointments(); ok {
		_spec.AddField(studentprofile.FieldCancelledAppointments, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentProfileUpdateOne is the builder for updating a single StudentProfile entity.
type StudentProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *StudentProfileUpdateOne) SetUpdatedAt(v time.Time) *StudentProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentProfileUpdateOne) SetUserID(v uuid.UUID) *StudentProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *StudentProfileUpdateOne) SetProfileID(v string) *StudentProfileUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableProfileID(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetStudentNumber sets the "student_number" field.
func (_u *StudentProfileUpdateOne) SetStudentNumber(v string) *StudentProfileUpdateOne {
	_u.mutation.SetStudentNumber(v)
	return _u
}

// SetNillableStudentNumber sets the "student_number" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableStudentNumber(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetStudentNumber(*v)
	}
	return _u
}

// ClearStudentNumber clears the value of the "student_number" field.
func (_u *StudentProfileUpdateOne) ClearStudentNumber() *StudentProfileUpdateOne {
	_u.mutation.ClearStudentNumber()
	return _u
}

// SetYear sets the "year" field.
func (_u *StudentProfileUpdateOne) SetYear(v string) *StudentProfileUpdateOne {
	_u.mutation.SetYear(v)
	return _u
}

// SetNillableYear sets the "year" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableYear(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetYear(*v)
	}
	return _u
}

// ClearYear clears the value of the "year" field.
func (_u *StudentProfileUpdateOne) ClearYear() *StudentProfileUpdateOne {
	_u.mutation.ClearYear()
	return _u
}

// SetMajor sets the "major" field.
func (_u *StudentProfileUpdateOne) SetMajor(v string) *StudentProfileUpdateOne {
	_u.mutation.SetMajor(v)
	return _u
}

// SetNillableMajor sets the "major" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableMajor(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetMajor(*v)
	}
	return _u
}

// ClearMajor clears the value of the "major" field.
func (_u *StudentProfileUpdateOne) ClearMajor() *StudentProfileUpdateOne {
	_u.mutation.ClearMajor()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *StudentProfileUpdateOne) SetDepartment(v string) *StudentProfileUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableDepartment(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *StudentProfileUpdateOne) ClearDepartment() *StudentProfileUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetGpa sets the "gpa" field.
func (_u *StudentProfileUpdateOne) SetGpa(v float64) *StudentProfileUpdateOne {
	_u.mutation.ResetGpa()
	_u.mutation.SetGpa(v)
	return _u
}

// SetNillableGpa sets the "gpa" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableGpa(v *float64) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetGpa(*v)
	}
	return _u
}

// AddGpa adds value to the "gpa" field.
func (_u *StudentProfileUpdateOne) AddGpa(v float64) *StudentProfileUpdateOne {
	_u.mutation.AddGpa(v)
	return _u
}

// ClearGpa clears the value of the "gpa" field.
func (_u *StudentProfileUpdateOne) ClearGpa() *StudentProfileUpdateOne {
	_u.mutation.ClearGpa()
	return _u
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (_u *StudentProfileUpdateOne) SetExpectedGraduation(v string) *StudentProfileUpdateOne {
	_u.mutation.SetExpectedGraduation(v)
	return _u
}

// SetNillableExpectedGraduation sets the "expected_graduation" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableExpectedGraduation(v *string) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetExpectedGraduation(*v)
	}
	return _u
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (_u *StudentProfileUpdateOne) ClearExpectedGraduation() *StudentProfileUpdateOne {
	_u.mutation.ClearExpectedGraduation()
	return _u
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (_u *StudentProfileUpdateOne) SetPreferredDepartments(v []string) *StudentProfileUpdateOne {
	_u.mutation.SetPreferredDepartments(v)
	return _u
}

// AppendPreferredDepartments appends value to the "preferred_departments" field.
func (_u *StudentProfileUpdateOne) AppendPreferredDepartments(v []string) *StudentProfileUpdateOne {
	_u.mutation.AppendPreferredDepartments(v)
	return _u
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (_u *StudentProfileUpdateOne) ClearPreferredDepartments() *StudentProfileUpdateOne {
	_u.mutation.ClearPreferredDepartments()
	return _u
}

// SetConsultationTypes sets the "consultation_types" field.
func (_u *StudentProfileUpdateOne) SetConsultationTypes(v []string) *StudentProfileUpdateOne {
	_u.mutation.SetConsultationTypes(v)
	return _u
}

// AppendConsultationTypes appends value to the "consultation_types" field.
func (_u *StudentProfileUpdateOne) AppendConsultationTypes(v []string) *StudentProfileUpdateOne {
	_u.mutation.AppendConsultationTypes(v)
	return _u
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (_u *StudentProfileUpdateOne) ClearConsultationTypes() *StudentProfileUpdateOne {
	_u.mutation.ClearConsultationTypes()
	return _u
}

// SetTotalAppointments sets the "total_appointments" field.
func (_u *StudentProfileUpdateOne) SetTotalAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.ResetTotalAppointments()
	_u.mutation.SetTotalAppointments(v)
	return _u
}

// SetNillableTotalAppointments sets the "total_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableTotalAppointments(v *int) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetTotalAppointments(*v)
	}
	return _u
}

// AddTotalAppointments adds value to the "total_appointments" field.
func (_u *StudentProfileUpdateOne) AddTotalAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.AddTotalAppointments(v)
	return _u
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (_u *StudentProfileUpdateOne) SetCompletedAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.ResetCompletedAppointments()
	_u.mutation.SetCompletedAppointments(v)
	return _u
}

// SetNillableCompletedAppointments sets the "completed_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableCompletedAppointments(v *int) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetCompletedAppointments(*v)
	}
	return _u
}

// AddCompletedAppointments adds value to the "completed_appointments" field.
func (_u *StudentProfileUpdateOne) AddCompletedAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.AddCompletedAppointments(v)
	return _u
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (_u *StudentProfileUpdateOne) SetCancelledAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.ResetCancelledAppointments()
	_u.mutation.SetCancelledAppointments(v)
	return _u
}

// SetNillableCancelledAppointments sets the "cancelled_appointments" field if the given value is not nil.
func (_u *StudentProfileUpdateOne) SetNillableCancelledAppointments(v *int) *StudentProfileUpdateOne {
	if v != nil {
		_u.SetCancelledAppointments(*v)
	}
	return _u
}

// AddCancelledAppointments adds value to the "cancelled_appointments" field.
func (_u *StudentProfileUpdateOne) AddCancelledAppointments(v int) *StudentProfileUpdateOne {
	_u.mutation.AddCancelledAppointments(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *StudentProfileUpdateOne) SetUser(v *User) *StudentProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the StudentProfileMutation object of the builder.
func (_u *StudentProfileUpdateOne) Mutation() *StudentProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *StudentProfileUpdateOne) ClearUser() *StudentProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the StudentProfileUpdate builder.
func (_u *StudentProfileUpdateOne) Where(ps ...predicate.StudentProfile) *StudentProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentProfileUpdateOne) Select(field string, fields ...string) *StudentProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentProfile entity.
func (_u *StudentProfileUpdateOne) Save(ctx context.Context) (*StudentProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) SaveX(ctx context.Context) *StudentProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *StudentProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := studentprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := studentprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentNumber(); ok {
		if err := studentprofile.StudentNumberValidator(v); err != nil {
			return &ValidationError{Name: "student_number", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.student_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Year(); ok {
		if err := studentprofile.YearValidator(v); err != nil {
			return &ValidationError{Name: "year", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.year": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Major(); ok {
		if err := studentprofile.MajorValidator(v); err != nil {
			return &ValidationError{Name: "major", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.major": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := studentprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Gpa(); ok {
		if err := studentprofile.GpaValidator(v); err != nil {
			return &ValidationError{Name: "gpa", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.gpa": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExpectedGraduation(); ok {
		if err := studentprofile.ExpectedGraduationValidator(v); err != nil {
			return &ValidationError{Name: "expected_graduation", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.expected_graduation": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalAppointments(); ok {
		if err := studentprofile.TotalAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "total_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.total_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CompletedAppointments(); ok {
		if err := studentprofile.CompletedAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "completed_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.completed_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CancelledAppointments(); ok {
		if err := studentprofile.CancelledAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "cancelled_appointments", err: fmt.Errorf(`repo: validator failed for field "StudentProfile.cancelled_appointments": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "StudentProfile.user"`)
	}
	return nil
}

func (_u *StudentProfileUpdateOne) sqlSave(ctx context.Context) (_node *StudentProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentprofile.Table, studentprofile.Columns, sqlgraph.NewFieldSpec(studentprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "StudentProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentprofile.FieldID)
		for _, f := range fields {
			if !studentprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != studentprofile.FieldID {
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
		_spec.SetField(studentprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(studentprofile.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentNumber(); ok {
		_spec.SetField(studentprofile.FieldStudentNumber, field.TypeString, value)
	}
	if _u.mutation.StudentNumberCleared() {
		_spec.ClearField(studentprofile.FieldStudentNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Year(); ok {
		_spec.SetField(studentprofile.FieldYear, field.TypeString, value)
	}
	if _u.mutation.YearCleared() {
		_spec.ClearField(studentprofile.FieldYear, field.TypeString)
	}
	if value, ok := _u.mutation.Major(); ok {
		_spec.SetField(studentprofile.FieldMajor, field.TypeString, value)
	}
	if _u.mutation.MajorCleared() {
		_spec.ClearField(studentprofile.FieldMajor, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(studentprofile.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(studentprofile.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Gpa(); ok {
		_spec.SetField(studentprofile.FieldGpa, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedGpa(); ok {
		_spec.AddField(studentprofile.FieldGpa, field.TypeFloat64, value)
	}
	if _u.mutation.GpaCleared() {
		_spec.ClearField(studentprofile.FieldGpa, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ExpectedGraduation(); ok {
		_spec.SetField(studentprofile.FieldExpectedGraduation, field.TypeString, value)
	}
	if _u.mutation.ExpectedGraduationCleared() {
		_spec.ClearField(studentprofile.FieldExpectedGraduation, field.TypeString)
	}
	if value, ok := _u.mutation.PreferredDepartments(); ok {
		_spec.SetField(studentprofile.FieldPreferredDepartments, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPreferredDepartments(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprofile.FieldPreferredDepartments, value)
		})
	}
	if _u.mutation.PreferredDepartmentsCleared() {
		_spec.ClearField(studentprofile.FieldPreferredDepartments, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConsultationTypes(); ok {
		_spec.SetField(studentprofile.FieldConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, studentprofile.FieldConsultationTypes, value)
		})
	}
	if _u.mutation.ConsultationTypesCleared() {
		_spec.ClearField(studentprofile.FieldConsultationTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalAppointments(); ok {
		_spec.SetField(studentprofile.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalAppointments(); ok {
		_spec.AddField(studentprofile.FieldTotalAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAppointments(); ok {
		_spec.SetField(studentprofile.FieldCompletedAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCompletedAppointments(); ok {
		_spec.AddField(studentprofile.FieldCompletedAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CancelledAppointments(); ok {
		_spec.SetField(studentprofile.FieldCancelledAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCancelledAppointments(); ok {
		_spec.AddField(studentprofile.FieldCancelledAppointments, field.TypeInt, value)
	}
	if _u.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &StudentProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

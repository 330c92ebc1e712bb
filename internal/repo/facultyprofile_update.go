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
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// FacultyProfileUpdate is the builder for updating FacultyProfile entities.
type FacultyProfileUpdate struct {
	config
	hooks    []Hook
	mutation *FacultyProfileMutation
}

// Where appends a list predicates to the FacultyProfileUpdate builder.
func (_u *FacultyProfileUpdate) Where(ps ...predicate.FacultyProfile) *FacultyProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacultyProfileUpdate) SetUpdatedAt(v time.Time) *FacultyProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FacultyProfileUpdate) SetUserID(v uuid.UUID) *FacultyProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableUserID(v *uuid.UUID) *FacultyProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FacultyProfileUpdate) SetProfileID(v string) *FacultyProfileUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableProfileID(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetEmployeeNumber sets the "employee_number" field.
func (_u *FacultyProfileUpdate) SetEmployeeNumber(v string) *FacultyProfileUpdate {
	_u.mutation.SetEmployeeNumber(v)
	return _u
}

// SetNillableEmployeeNumber sets the "employee_number" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableEmployeeNumber(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetEmployeeNumber(*v)
	}
	return _u
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (_u *FacultyProfileUpdate) ClearEmployeeNumber() *FacultyProfileUpdate {
	_u.mutation.ClearEmployeeNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FacultyProfileUpdate) SetTitle(v string) *FacultyProfileUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableTitle(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FacultyProfileUpdate) ClearTitle() *FacultyProfileUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *FacultyProfileUpdate) SetDepartment(v string) *FacultyProfileUpdate {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableDepartment(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *FacultyProfileUpdate) ClearDepartment() *FacultyProfileUpdate {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOffice sets the "office" field.
func (_u *FacultyProfileUpdate) SetOffice(v string) *FacultyProfileUpdate {
	_u.mutation.SetOffice(v)
	return _u
}

// SetNillableOffice sets the "office" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableOffice(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetOffice(*v)
	}
	return _u
}

// ClearOffice clears the value of the "office" field.
func (_u *FacultyProfileUpdate) ClearOffice() *FacultyProfileUpdate {
	_u.mutation.ClearOffice()
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *FacultyProfileUpdate) SetExpertise(v []string) *FacultyProfileUpdate {
	_u.mutation.SetExpertise(v)
	return _u
}

// AppendExpertise appends value to the "expertise" field.
func (_u *FacultyProfileUpdate) AppendExpertise(v []string) *FacultyProfileUpdate {
	_u.mutation.AppendExpertise(v)
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *FacultyProfileUpdate) ClearExpertise() *FacultyProfileUpdate {
	_u.mutation.ClearExpertise()
	return _u
}

// SetEducation sets the "education" field.
func (_u *FacultyProfileUpdate) SetEducation(v []string) *FacultyProfileUpdate {
	_u.mutation.SetEducation(v)
	return _u
}

// AppendEducation appends value to the "education" field.
func (_u *FacultyProfileUpdate) AppendEducation(v []string) *FacultyProfileUpdate {
	_u.mutation.AppendEducation(v)
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *FacultyProfileUpdate) ClearEducation() *FacultyProfileUpdate {
	_u.mutation.ClearEducation()
	return _u
}

// SetPublicationCount sets the "publication_count" field.
func (_u *FacultyProfileUpdate) SetPublicationCount(v int) *FacultyProfileUpdate {
	_u.mutation.ResetPublicationCount()
	_u.mutation.SetPublicationCount(v)
	return _u
}

// SetNillablePublicationCount sets the "publication_count" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillablePublicationCount(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetPublicationCount(*v)
	}
	return _u
}

// AddPublicationCount adds value to the "publication_count" field.
func (_u *FacultyProfileUpdate) AddPublicationCount(v int) *FacultyProfileUpdate {
	_u.mutation.AddPublicationCount(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *FacultyProfileUpdate) SetYearsExperience(v int) *FacultyProfileUpdate {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableYearsExperience(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *FacultyProfileUpdate) AddYearsExperience(v int) *FacultyProfileUpdate {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *FacultyProfileUpdate) SetDefaultDurationMin(v int) *FacultyProfileUpdate {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableDefaultDurationMin(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *FacultyProfileUpdate) AddDefaultDurationMin(v int) *FacultyProfileUpdate {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_u *FacultyProfileUpdate) SetMaxDailyAppointments(v int) *FacultyProfileUpdate {
	_u.mutation.ResetMaxDailyAppointments()
	_u.mutation.SetMaxDailyAppointments(v)
	return _u
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableMaxDailyAppointments(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetMaxDailyAppointments(*v)
	}
	return _u
}

// AddMaxDailyAppointments adds value to the "max_daily_appointments" field.
func (_u *FacultyProfileUpdate) AddMaxDailyAppointments(v int) *FacultyProfileUpdate {
	_u.mutation.AddMaxDailyAppointments(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *FacultyProfileUpdate) SetBufferMinutes(v int) *FacultyProfileUpdate {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableBufferMinutes(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *FacultyProfileUpdate) AddBufferMinutes(v int) *FacultyProfileUpdate {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (_u *FacultyProfileUpdate) SetAdvanceBookingDays(v int) *FacultyProfileUpdate {
	_u.mutation.ResetAdvanceBookingDays()
	_u.mutation.SetAdvanceBookingDays(v)
	return _u
}

// SetNillableAdvanceBookingDays sets the "advance_booking_days" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableAdvanceBookingDays(v *int) *FacultyProfileUpdate {
	if v != nil {
		_u.SetAdvanceBookingDays(*v)
	}
	return _u
}

// AddAdvanceBookingDays adds value to the "advance_booking_days" field.
func (_u *FacultyProfileUpdate) AddAdvanceBookingDays(v int) *FacultyProfileUpdate {
	_u.mutation.AddAdvanceBookingDays(v)
	return _u
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdate) SetAllowedConsultationTypes(v []string) *FacultyProfileUpdate {
	_u.mutation.SetAllowedConsultationTypes(v)
	return _u
}

// AppendAllowedConsultationTypes appends value to the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdate) AppendAllowedConsultationTypes(v []string) *FacultyProfileUpdate {
	_u.mutation.AppendAllowedConsultationTypes(v)
	return _u
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdate) ClearAllowedConsultationTypes() *FacultyProfileUpdate {
	_u.mutation.ClearAllowedConsultationTypes()
	return _u
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (_u *FacultyProfileUpdate) SetWeeklySchedule(v map[string][]string) *FacultyProfileUpdate {
	_u.mutation.SetWeeklySchedule(v)
	return _u
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (_u *FacultyProfileUpdate) ClearWeeklySchedule() *FacultyProfileUpdate {
	_u.mutation.ClearWeeklySchedule()
	return _u
}

// SetTimeZone sets the "time_zone" field.
func (_u *FacultyProfileUpdate) SetTimeZone(v string) *FacultyProfileUpdate {
	_u.mutation.SetTimeZone(v)
	return _u
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_u *FacultyProfileUpdate) SetNillableTimeZone(v *string) *FacultyProfileUpdate {
	if v != nil {
		_u.SetTimeZone(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FacultyProfileUpdate) SetUser(v *User) *FacultyProfileUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FacultyProfileMutation object of the builder.
func (_u *FacultyProfileUpdate) Mutation() *FacultyProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FacultyProfileUpdate) ClearUser() *FacultyProfileUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FacultyProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacultyProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FacultyProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacultyProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacultyProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := facultyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacultyProfileUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := facultyprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmployeeNumber(); ok {
		if err := facultyprofile.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.employee_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := facultyprofile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := facultyprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Office(); ok {
		if err := facultyprofile.OfficeValidator(v); err != nil {
			return &ValidationError{Name: "office", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.office": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublicationCount(); ok {
		if err := facultyprofile.PublicationCountValidator(v); err != nil {
			return &ValidationError{Name: "publication_count", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.publication_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := facultyprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultDurationMin(); ok {
		if err := facultyprofile.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.default_duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDailyAppointments(); ok {
		if err := facultyprofile.MaxDailyAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "max_daily_appointments", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.max_daily_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BufferMinutes(); ok {
		if err := facultyprofile.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.buffer_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdvanceBookingDays(); ok {
		if err := facultyprofile.AdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.advance_booking_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeZone(); ok {
		if err := facultyprofile.TimeZoneValidator(v); err != nil {
			return &ValidationError{Name: "time_zone", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.time_zone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacultyProfile.user"`)
	}
	return nil
}

func (_u *FacultyProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facultyprofile.Table, facultyprofile.Columns, sqlgraph.NewFieldSpec(facultyprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(facultyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(facultyprofile.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeNumber(); ok {
		_spec.SetField(facultyprofile.FieldEmployeeNumber, field.TypeString, value)
	}
	if _u.mutation.EmployeeNumberCleared() {
		_spec.ClearField(facultyprofile.FieldEmployeeNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(facultyprofile.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(facultyprofile.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(facultyprofile.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(facultyprofile.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Office(); ok {
		_spec.SetField(facultyprofile.FieldOffice, field.TypeString, value)
	}
	if _u.mutation.OfficeCleared() {
		_spec.ClearField(facultyprofile.FieldOffice, field.TypeString)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(facultyprofile.FieldExpertise, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpertise(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldExpertise, value)
		})
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(facultyprofile.FieldExpertise, field.TypeJSON)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(facultyprofile.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldEducation, value)
		})
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(facultyprofile.FieldEducation, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublicationCount(); ok {
		_spec.SetField(facultyprofile.FieldPublicationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationCount(); ok {
		_spec.AddField(facultyprofile.FieldPublicationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(facultyprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(facultyprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(facultyprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(facultyprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(facultyprofile.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyAppointments(); ok {
		_spec.AddField(facultyprofile.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(facultyprofile.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(facultyprofile.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdvanceBookingDays(); ok {
		_spec.SetField(facultyprofile.FieldAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdvanceBookingDays(); ok {
		_spec.AddField(facultyprofile.FieldAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowedConsultationTypes(); ok {
		_spec.SetField(facultyprofile.FieldAllowedConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldAllowedConsultationTypes, value)
		})
	}
	if _u.mutation.AllowedConsultationTypesCleared() {
		_spec.ClearField(facultyprofile.FieldAllowedConsultationTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeeklySchedule(); ok {
		_spec.SetField(facultyprofile.FieldWeeklySchedule, field.TypeJSON, value)
	}
	if _u.mutation.WeeklyScheduleCleared() {
		_spec.ClearField(facultyprofile.FieldWeeklySchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeZone(); ok {
		_spec.SetField(facultyprofile.FieldTimeZone, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   facultyprofile.UserTable,
			Columns: []string{facultyprofile.UserColumn},
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
			Table:   facultyprofile.UserTable,
			Columns: []string{facultyprofile.UserColumn},
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
			err = &NotFoundError{facultyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FacultyProfileUpdateOne is the builder for updating a single FacultyProfile entity.
type FacultyProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FacultyProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FacultyProfileUpdateOne) SetUpdatedAt(v time.Time) *FacultyProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FacultyProfileUpdateOne) SetUserID(v uuid.UUID) *FacultyProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *FacultyProfileUpdateOne) SetProfileID(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableProfileID(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetEmployeeNumber sets the "employee_number" field.
func (_u *FacultyProfileUpdateOne) SetEmployeeNumber(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetEmployeeNumber(v)
	return _u
}

// SetNillableEmployeeNumber sets the "employee_number" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableEmployeeNumber(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetEmployeeNumber(*v)
	}
	return _u
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (_u *FacultyProfileUpdateOne) ClearEmployeeNumber() *FacultyProfileUpdateOne {
	_u.mutation.ClearEmployeeNumber()
	return _u
}

// SetTitle sets the "title" field.
func (_u *FacultyProfileUpdateOne) SetTitle(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableTitle(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *FacultyProfileUpdateOne) ClearTitle() *FacultyProfileUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetDepartment sets the "department" field.
func (_u *FacultyProfileUpdateOne) SetDepartment(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetDepartment(v)
	return _u
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableDepartment(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetDepartment(*v)
	}
	return _u
}

// ClearDepartment clears the value of the "department" field.
func (_u *FacultyProfileUpdateOne) ClearDepartment() *FacultyProfileUpdateOne {
	_u.mutation.ClearDepartment()
	return _u
}

// SetOffice sets the "office" field.
func (_u *FacultyProfileUpdateOne) SetOffice(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetOffice(v)
	return _u
}

// SetNillableOffice sets the "office" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableOffice(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetOffice(*v)
	}
	return _u
}

// ClearOffice clears the value of the "office" field.
func (_u *FacultyProfileUpdateOne) ClearOffice() *FacultyProfileUpdateOne {
	_u.mutation.ClearOffice()
	return _u
}

// SetExpertise sets the "expertise" field.
func (_u *FacultyProfileUpdateOne) SetExpertise(v []string) *FacultyProfileUpdateOne {
	_u.mutation.SetExpertise(v)
	return _u
}

// AppendExpertise appends value to the "expertise" field.
func (_u *FacultyProfileUpdateOne) AppendExpertise(v []string) *FacultyProfileUpdateOne {
	_u.mutation.AppendExpertise(v)
	return _u
}

// ClearExpertise clears the value of the "expertise" field.
func (_u *FacultyProfileUpdateOne) ClearExpertise() *FacultyProfileUpdateOne {
	_u.mutation.ClearExpertise()
	return _u
}

// SetEducation sets the "education" field.
func (_u *FacultyProfileUpdateOne) SetEducation(v []string) *FacultyProfileUpdateOne {
	_u.mutation.SetEducation(v)
	return _u
}

// AppendEducation appends value to the "education" field.
func (_u *FacultyProfileUpdateOne) AppendEducation(v []string) *FacultyProfileUpdateOne {
	_u.mutation.AppendEducation(v)
	return _u
}

// ClearEducation clears the value of the "education" field.
func (_u *FacultyProfileUpdateOne) ClearEducation() *FacultyProfileUpdateOne {
	_u.mutation.ClearEducation()
	return _u
}

// SetPublicationCount sets the "publication_count" field.
func (_u *FacultyProfileUpdateOne) SetPublicationCount(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetPublicationCount()
	_u.mutation.SetPublicationCount(v)
	return _u
}

// SetNillablePublicationCount sets the "publication_count" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillablePublicationCount(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetPublicationCount(*v)
	}
	return _u
}

// AddPublicationCount adds value to the "publication_count" field.
func (_u *FacultyProfileUpdateOne) AddPublicationCount(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddPublicationCount(v)
	return _u
}

// SetYearsExperience sets the "years_experience" field.
func (_u *FacultyProfileUpdateOne) SetYearsExperience(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetYearsExperience()
	_u.mutation.SetYearsExperience(v)
	return _u
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableYearsExperience(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetYearsExperience(*v)
	}
	return _u
}

// AddYearsExperience adds value to the "years_experience" field.
func (_u *FacultyProfileUpdateOne) AddYearsExperience(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddYearsExperience(v)
	return _u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_u *FacultyProfileUpdateOne) SetDefaultDurationMin(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetDefaultDurationMin()
	_u.mutation.SetDefaultDurationMin(v)
	return _u
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableDefaultDurationMin(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetDefaultDurationMin(*v)
	}
	return _u
}

// AddDefaultDurationMin adds value to the "default_duration_min" field.
func (_u *FacultyProfileUpdateOne) AddDefaultDurationMin(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddDefaultDurationMin(v)
	return _u
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_u *FacultyProfileUpdateOne) SetMaxDailyAppointments(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetMaxDailyAppointments()
	_u.mutation.SetMaxDailyAppointments(v)
	return _u
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableMaxDailyAppointments(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetMaxDailyAppointments(*v)
	}
	return _u
}

// AddMaxDailyAppointments adds value to the "max_daily_appointments" field.
func (_u *FacultyProfileUpdateOne) AddMaxDailyAppointments(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddMaxDailyAppointments(v)
	return _u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_u *FacultyProfileUpdateOne) SetBufferMinutes(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetBufferMinutes()
	_u.mutation.SetBufferMinutes(v)
	return _u
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableBufferMinutes(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetBufferMinutes(*v)
	}
	return _u
}

// AddBufferMinutes adds value to the "buffer_minutes" field.
func (_u *FacultyProfileUpdateOne) AddBufferMinutes(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddBufferMinutes(v)
	return _u
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (_u *FacultyProfileUpdateOne) SetAdvanceBookingDays(v int) *FacultyProfileUpdateOne {
	_u.mutation.ResetAdvanceBookingDays()
	_u.mutation.SetAdvanceBookingDays(v)
	return _u
}

// SetNillableAdvanceBookingDays sets the "advance_booking_days" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableAdvanceBookingDays(v *int) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetAdvanceBookingDays(*v)
	}
	return _u
}

// AddAdvanceBookingDays adds value to the "advance_booking_days" field.
func (_u *FacultyProfileUpdateOne) AddAdvanceBookingDays(v int) *FacultyProfileUpdateOne {
	_u.mutation.AddAdvanceBookingDays(v)
	return _u
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdateOne) SetAllowedConsultationTypes(v []string) *FacultyProfileUpdateOne {
	_u.mutation.SetAllowedConsultationTypes(v)
	return _u
}

// AppendAllowedConsultationTypes appends value to the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdateOne) AppendAllowedConsultationTypes(v []string) *FacultyProfileUpdateOne {
	_u.mutation.AppendAllowedConsultationTypes(v)
	return _u
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (_u *FacultyProfileUpdateOne) ClearAllowedConsultationTypes() *FacultyProfileUpdateOne {
	_u.mutation.ClearAllowedConsultationTypes()
	return _u
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (_u *FacultyProfileUpdateOne) SetWeeklySchedule(v map[string][]string) *FacultyProfileUpdateOne {
	_u.mutation.SetWeeklySchedule(v)
	return _u
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (_u *FacultyProfileUpdateOne) ClearWeeklySchedule() *FacultyProfileUpdateOne {
	_u.mutation.ClearWeeklySchedule()
	return _u
}

// SetTimeZone sets the "time_zone" field.
func (_u *FacultyProfileUpdateOne) SetTimeZone(v string) *FacultyProfileUpdateOne {
	_u.mutation.SetTimeZone(v)
	return _u
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_u *FacultyProfileUpdateOne) SetNillableTimeZone(v *string) *FacultyProfileUpdateOne {
	if v != nil {
		_u.SetTimeZone(*v)
	}
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *FacultyProfileUpdateOne) SetUser(v *User) *FacultyProfileUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the FacultyProfileMutation object of the builder.
func (_u *FacultyProfileUpdateOne) Mutation() *FacultyProfileMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *FacultyProfileUpdateOne) ClearUser() *FacultyProfileUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the FacultyProfileUpdate builder.
func (_u *FacultyProfileUpdateOne) Where(ps ...predicate.FacultyProfile) *FacultyProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FacultyProfileUpdateOne) Select(field string, fields ...string) *FacultyProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FacultyProfile entity.
func (_u *FacultyProfileUpdateOne) Save(ctx context.Context) (*FacultyProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FacultyProfileUpdateOne) SaveX(ctx context.Context) *FacultyProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FacultyProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FacultyProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FacultyProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := facultyprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FacultyProfileUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := facultyprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmployeeNumber(); ok {
		if err := facultyprofile.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.employee_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := facultyprofile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Department(); ok {
		if err := facultyprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.department": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Office(); ok {
		if err := facultyprofile.OfficeValidator(v); err != nil {
			return &ValidationError{Name: "office", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.office": %w`, err)}
		}
	}
	if v, ok := _u.mutation.PublicationCount(); ok {
		if err := facultyprofile.PublicationCountValidator(v); err != nil {
			return &ValidationError{Name: "publication_count", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.publication_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.YearsExperience(); ok {
		if err := facultyprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.years_experience": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DefaultDurationMin(); ok {
		if err := facultyprofile.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.default_duration_min": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MaxDailyAppointments(); ok {
		if err := facultyprofile.MaxDailyAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "max_daily_appointments", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.max_daily_appointments": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BufferMinutes(); ok {
		if err := facultyprofile.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.buffer_minutes": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AdvanceBookingDays(); ok {
		if err := facultyprofile.AdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.advance_booking_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TimeZone(); ok {
		if err := facultyprofile.TimeZoneValidator(v); err != nil {
			return &ValidationError{Name: "time_zone", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.time_zone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "FacultyProfile.user"`)
	}
	return nil
}

func (_u *FacultyProfileUpdateOne) sqlSave(ctx context.Context) (_node *FacultyProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(facultyprofile.Table, facultyprofile.Columns, sqlgraph.NewFieldSpec(facultyprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "FacultyProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, facultyprofile.FieldID)
		for _, f := range fields {
			if !facultyprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != facultyprofile.FieldID {
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
		_spec.SetField(facultyprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(facultyprofile.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeNumber(); ok {
		_spec.SetField(facultyprofile.FieldEmployeeNumber, field.TypeString, value)
	}
	if _u.mutation.EmployeeNumberCleared() {
		_spec.ClearField(facultyprofile.FieldEmployeeNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(facultyprofile.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(facultyprofile.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Department(); ok {
		_spec.SetField(facultyprofile.FieldDepartment, field.TypeString, value)
	}
	if _u.mutation.DepartmentCleared() {
		_spec.ClearField(facultyprofile.FieldDepartment, field.TypeString)
	}
	if value, ok := _u.mutation.Office(); ok {
		_spec.SetField(facultyprofile.FieldOffice, field.TypeString, value)
	}
	if _u.mutation.OfficeCleared() {
		_spec.ClearField(facultyprofile.FieldOffice, field.TypeString)
	}
	if value, ok := _u.mutation.Expertise(); ok {
		_spec.SetField(facultyprofile.FieldExpertise, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExpertise(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldExpertise, value)
		})
	}
	if _u.mutation.ExpertiseCleared() {
		_spec.ClearField(facultyprofile.FieldExpertise, field.TypeJSON)
	}
	if value, ok := _u.mutation.Education(); ok {
		_spec.SetField(facultyprofile.FieldEducation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEducation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldEducation, value)
		})
	}
	if _u.mutation.EducationCleared() {
		_spec.ClearField(facultyprofile.FieldEducation, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublicationCount(); ok {
		_spec.SetField(facultyprofile.FieldPublicationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationCount(); ok {
		_spec.AddField(facultyprofile.FieldPublicationCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.YearsExperience(); ok {
		_spec.SetField(facultyprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedYearsExperience(); ok {
		_spec.AddField(facultyprofile.FieldYearsExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DefaultDurationMin(); ok {
		_spec.SetField(facultyprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDefaultDurationMin(); ok {
		_spec.AddField(facultyprofile.FieldDefaultDurationMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(facultyprofile.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxDailyAppointments(); ok {
		_spec.AddField(facultyprofile.FieldMaxDailyAppointments, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BufferMinutes(); ok {
		_spec.SetField(facultyprofile.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBufferMinutes(); ok {
		_spec.AddField(facultyprofile.FieldBufferMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AdvanceBookingDays(); ok {
		_spec.SetField(facultyprofile.FieldAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAdvanceBookingDays(); ok {
		_spec.AddField(facultyprofile.FieldAdvanceBookingDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AllowedConsultationTypes(); ok {
		_spec.SetField(facultyprofile.FieldAllowedConsultationTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllowedConsultationTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, facultyprofile.FieldAllowedConsultationTypes, value)
		})
	}
	if _u.mutation.AllowedConsultationTypesCleared() {
		_spec.ClearField(facultyprofile.FieldAllowedConsultationTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.WeeklySchedule(); ok {
		_spec.SetField(facultyprofile.FieldWeeklySchedule, field.TypeJSON, value)
	}
	if _u.mutation.WeeklyScheduleCleared() {
		_spec.ClearField(facultyprofile.FieldWeeklySchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.TimeZone(); ok {
		_spec.SetField(facultyprofile.FieldTimeZone, field.TypeString, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   facultyprofile.UserTable,
			Columns: []string{facultyprofile.UserColumn},
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
			Table:   facultyprofile.UserTable,
			Columns: []string{facultyprofile.UserColumn},
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
	_node = &FacultyProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{facultyprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

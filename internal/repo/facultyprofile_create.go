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
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// FacultyProfileCreate is the builder for creating a FacultyProfile entity.
type FacultyProfileCreate struct {
	config
	mutation *FacultyProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FacultyProfileCreate) SetCreatedAt(v time.Time) *FacultyProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableCreatedAt(v *time.Time) *FacultyProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FacultyProfileCreate) SetUpdatedAt(v time.Time) *FacultyProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableUpdatedAt(v *time.Time) *FacultyProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FacultyProfileCreate) SetUserID(v uuid.UUID) *FacultyProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *FacultyProfileCreate) SetProfileID(v string) *FacultyProfileCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableProfileID(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetProfileID(*v)
	}
	return _c
}

// SetEmployeeNumber sets the "employee_number" field.
func (_c *FacultyProfileCreate) SetEmployeeNumber(v string) *FacultyProfileCreate {
	_c.mutation.SetEmployeeNumber(v)
	return _c
}

// SetNillableEmployeeNumber sets the "employee_number" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableEmployeeNumber(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetEmployeeNumber(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *FacultyProfileCreate) SetTitle(v string) *FacultyProfileCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableTitle(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetDepartment sets the "department" field.
func (_c *FacultyProfileCreate) SetDepartment(v string) *FacultyProfileCreate {
	_c.mutation.SetDepartment(v)
	return _c
}

// SetNillableDepartment sets the "department" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableDepartment(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetDepartment(*v)
	}
	return _c
}

// SetOffice sets the "office" field.
func (_c *FacultyProfileCreate) SetOffice(v string) *FacultyProfileCreate {
	_c.mutation.SetOffice(v)
	return _c
}

// SetNillableOffice sets the "office" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableOffice(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetOffice(*v)
	}
	return _c
}

// SetExpertise sets the "expertise" field.
func (_c *FacultyProfileCreate) SetExpertise(v []string) *FacultyProfileCreate {
	_c.mutation.SetExpertise(v)
	return _c
}

// SetEducation sets the "education" field.
func (_c *FacultyProfileCreate) SetEducation(v []string) *FacultyProfileCreate {
	_c.mutation.SetEducation(v)
	return _c
}

// SetPublicationCount sets the "publication_count" field.
func (_c *FacultyProfileCreate) SetPublicationCount(v int) *FacultyProfileCreate {
	_c.mutation.SetPublicationCount(v)
	return _c
}

// SetNillablePublicationCount sets the "publication_count" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillablePublicationCount(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetPublicationCount(*v)
	}
	return _c
}

// SetYearsExperience sets the "years_experience" field.
func (_c *FacultyProfileCreate) SetYearsExperience(v int) *FacultyProfileCreate {
	_c.mutation.SetYearsExperience(v)
	return _c
}

// SetNillableYearsExperience sets the "years_experience" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableYearsExperience(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetYearsExperience(*v)
	}
	return _c
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (_c *FacultyProfileCreate) SetDefaultDurationMin(v int) *FacultyProfileCreate {
	_c.mutation.SetDefaultDurationMin(v)
	return _c
}

// SetNillableDefaultDurationMin sets the "default_duration_min" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableDefaultDurationMin(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetDefaultDurationMin(*v)
	}
	return _c
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (_c *FacultyProfileCreate) SetMaxDailyAppointments(v int) *FacultyProfileCreate {
	_c.mutation.SetMaxDailyAppointments(v)
	return _c
}

// SetNillableMaxDailyAppointments sets the "max_daily_appointments" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableMaxDailyAppointments(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetMaxDailyAppointments(*v)
	}
	return _c
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (_c *FacultyProfileCreate) SetBufferMinutes(v int) *FacultyProfileCreate {
	_c.mutation.SetBufferMinutes(v)
	return _c
}

// SetNillableBufferMinutes sets the "buffer_minutes" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableBufferMinutes(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetBufferMinutes(*v)
	}
	return _c
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (_c *FacultyProfileCreate) SetAdvanceBookingDays(v int) *FacultyProfileCreate {
	_c.mutation.SetAdvanceBookingDays(v)
	return _c
}

// SetNillableAdvanceBookingDays sets the "advance_booking_days" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableAdvanceBookingDays(v *int) *FacultyProfileCreate {
	if v != nil {
		_c.SetAdvanceBookingDays(*v)
	}
	return _c
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (_c *FacultyProfileCreate) SetAllowedConsultationTypes(v []string) *FacultyProfileCreate {
	_c.mutation.SetAllowedConsultationTypes(v)
	return _c
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (_c *FacultyProfileCreate) SetWeeklySchedule(v map[string][]string) *FacultyProfileCreate {
	_c.mutation.SetWeeklySchedule(v)
	return _c
}

// SetTimeZone sets the "time_zone" field.
func (_c *FacultyProfileCreate) SetTimeZone(v string) *FacultyProfileCreate {
	_c.mutation.SetTimeZone(v)
	return _c
}

// SetNillableTimeZone sets the "time_zone" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableTimeZone(v *string) *FacultyProfileCreate {
	if v != nil {
		_c.SetTimeZone(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FacultyProfileCreate) SetID(v uuid.UUID) *FacultyProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FacultyProfileCreate) SetNillableID(v *uuid.UUID) *FacultyProfileCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *FacultyProfileCreate) SetUser(v *User) *FacultyProfileCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the FacultyProfileMutation object of the builder.
func (_c *FacultyProfileCreate) Mutation() *FacultyProfileMutation {
	return _c.mutation
}

// Save creates the FacultyProfile in the database.
func (_c *FacultyProfileCreate) Save(ctx context.Context) (*FacultyProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FacultyProfileCreate) SaveX(ctx context.Context) *FacultyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacultyProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacultyProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FacultyProfileCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := facultyprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := facultyprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		v := facultyprofile.DefaultProfileID
		_c.mutation.SetProfileID(v)
	}
	if _, ok := _c.mutation.PublicationCount(); !ok {
		v := facultyprofile.DefaultPublicationCount
		_c.mutation.SetPublicationCount(v)
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		v := facultyprofile.DefaultYearsExperience
		_c.mutation.SetYearsExperience(v)
	}
	if _, ok := _c.mutation.DefaultDurationMin(); !ok {
		v := facultyprofile.DefaultDefaultDurationMin
		_c.mutation.SetDefaultDurationMin(v)
	}
	if _, ok := _c.mutation.MaxDailyAppointments(); !ok {
		v := facultyprofile.DefaultMaxDailyAppointments
		_c.mutation.SetMaxDailyAppointments(v)
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		v := facultyprofile.DefaultBufferMinutes
		_c.mutation.SetBufferMinutes(v)
	}
	if _, ok := _c.mutation.AdvanceBookingDays(); !ok {
		v := facultyprofile.DefaultAdvanceBookingDays
		_c.mutation.SetAdvanceBookingDays(v)
	}
	if _, ok := _c.mutation.TimeZone(); !ok {
		v := facultyprofile.DefaultTimeZone
		_c.mutation.SetTimeZone(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := facultyprofile.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FacultyProfileCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "FacultyProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "FacultyProfile.updated_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "FacultyProfile.user_id"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`repo: missing required field "FacultyProfile.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := facultyprofile.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.profile_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.EmployeeNumber(); ok {
		if err := facultyprofile.EmployeeNumberValidator(v); err != nil {
			return &ValidationError{Name: "employee_number", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.employee_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := facultyprofile.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.title": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Department(); ok {
		if err := facultyprofile.DepartmentValidator(v); err != nil {
			return &ValidationError{Name: "department", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.department": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Office(); ok {
		if err := facultyprofile.OfficeValidator(v); err != nil {
			return &ValidationError{Name: "office", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.office": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PublicationCount(); !ok {
		return &ValidationError{Name: "publication_count", err: errors.New(`repo: missing required field "FacultyProfile.publication_count"`)}
	}
	if v, ok := _c.mutation.PublicationCount(); ok {
		if err := facultyprofile.PublicationCountValidator(v); err != nil {
			return &ValidationError{Name: "publication_count", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.publication_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.YearsExperience(); !ok {
		return &ValidationError{Name: "years_experience", err: errors.New(`repo: missing required field "FacultyProfile.years_experience"`)}
	}
	if v, ok := _c.mutation.YearsExperience(); ok {
		if err := facultyprofile.YearsExperienceValidator(v); err != nil {
			return &ValidationError{Name: "years_experience", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.years_experience": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DefaultDurationMin(); !ok {
		return &ValidationError{Name: "default_duration_min", err: errors.New(`repo: missing required field "FacultyProfile.default_duration_min"`)}
	}
	if v, ok := _c.mutation.DefaultDurationMin(); ok {
		if err := facultyprofile.DefaultDurationMinValidator(v); err != nil {
			return &ValidationError{Name: "default_duration_min", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.default_duration_min": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MaxDailyAppointments(); !ok {
		return &ValidationError{Name: "max_daily_appointments", err: errors.New(`repo: missing required field "FacultyProfile.max_daily_appointments"`)}
	}
	if v, ok := _c.mutation.MaxDailyAppointments(); ok {
		if err := facultyprofile.MaxDailyAppointmentsValidator(v); err != nil {
			return &ValidationError{Name: "max_daily_appointments", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.max_daily_appointments": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BufferMinutes(); !ok {
		return &ValidationError{Name: "buffer_minutes", err: errors.New(`repo: missing required field "FacultyProfile.buffer_minutes"`)}
	}
	if v, ok := _c.mutation.BufferMinutes(); ok {
		if err := facultyprofile.BufferMinutesValidator(v); err != nil {
			return &ValidationError{Name: "buffer_minutes", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.buffer_minutes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AdvanceBookingDays(); !ok {
		return &ValidationError{Name: "advance_booking_days", err: errors.New(`repo: missing required field "FacultyProfile.advance_booking_days"`)}
	}
	if v, ok := _c.mutation.AdvanceBookingDays(); ok {
		if err := facultyprofile.AdvanceBookingDaysValidator(v); err != nil {
			return &ValidationError{Name: "advance_booking_days", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.advance_booking_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeZone(); !ok {
		return &ValidationError{Name: "time_zone", err: errors.New(`repo: missing required field "FacultyProfile.time_zone"`)}
	}
	if v, ok := _c.mutation.TimeZone(); ok {
		if err := facultyprofile.TimeZoneValidator(v); err != nil {
			return &ValidationError{Name: "time_zone", err: fmt.Errorf(`repo: validator failed for field "FacultyProfile.time_zone": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "FacultyProfile.user"`)}
	}
	return nil
}

func (_c *FacultyProfileCreate) sqlSave(ctx context.Context) (*FacultyProfile, error) {
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

func (_c *FacultyProfileCreate) createSpec() (*FacultyProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &FacultyProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(facultyprofile.Table, sqlgraph.NewFieldSpec(facultyprofile.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(facultyprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(facultyprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(facultyprofile.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.EmployeeNumber(); ok {
		_spec.SetField(facultyprofile.FieldEmployeeNumber, field.TypeString, value)
		_node.EmployeeNumber = &value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(facultyprofile.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Department(); ok {
		_spec.SetField(facultyprofile.FieldDepartment, field.TypeString, value)
		_node.Department = &value
	}
	if value, ok := _c.mutation.Office(); ok {
		_spec.SetField(facultyprofile.FieldOffice, field.TypeString, value)
		_node.Office = &value
	}
	if value, ok := _c.mutation.Expertise(); ok {
		_spec.SetField(facultyprofile.FieldExpertise, field.TypeJSON, value)
		_node.Expertise = value
	}
	if value, ok := _c.mutation.Education(); ok {
		_spec.SetField(facultyprofile.FieldEducation, field.TypeJSON, value)
		_node.Education = value
	}
	if value, ok := _c.mutation.PublicationCount(); ok {
		_spec.SetField(facultyprofile.FieldPublicationCount, field.TypeInt, value)
		_node.PublicationCount = value
	}
	if value, ok := _c.mutation.YearsExperience(); ok {
		_spec.SetField(facultyprofile.FieldYearsExperience, field.TypeInt, value)
		_node.YearsExperience = value
	}
	if value, ok := _c.mutation.DefaultDurationMin(); ok {
		_spec.SetField(facultyprofile.FieldDefaultDurationMin, field.TypeInt, value)
		_node.DefaultDurationMin = value
	}
	if value, ok := _c.mutation.MaxDailyAppointments(); ok {
		_spec.SetField(facultyprofile.FieldMaxDailyAppointments, field.TypeInt, value)
		_node.MaxDailyAppointments = value
	}
	if value, ok := _c.mutation.BufferMinutes(); ok {
		_spec.SetField(facultyprofile.FieldBufferMinutes, field.TypeInt, value)
		_node.BufferMinutes = value
	}
	if value, ok := _c.mutation.AdvanceBookingDays(); ok {
		_spec.SetField(facultyprofile.FieldAdvanceBookingDays, field.TypeInt, value)
		_node.AdvanceBookingDays = value
	}
	if value, ok := _c.mutation.AllowedConsultationTypes(); ok {
		_spec.SetField(facultyprofile.FieldAllowedConsultationTypes, field.TypeJSON, value)
		_node.AllowedConsultationTypes = value
	}
	if value, ok := _c.mutation.WeeklySchedule(); ok {
		_spec.SetField(facultyprofile.FieldWeeklySchedule, field.TypeJSON, value)
		_node.WeeklySchedule = value
	}
	if value, ok := _c.mutation.TimeZone(); ok {
		_spec.SetField(facultyprofile.FieldTimeZone, field.TypeString, value)
		_node.TimeZone = value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FacultyProfile.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacultyProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacultyProfileCreate) OnConflict(opts ...sql.ConflictOption) *FacultyProfileUpsertOne {
	_c.conflict = opts
	return &FacultyProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacultyProfileCreate) OnConflictColumns(columns ...string) *FacultyProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacultyProfileUpsertOne{
		create: _c,
	}
}

type (
	// FacultyProfileUpsertOne is the builder for "upsert"-ing
	//  one FacultyProfile node.
	FacultyProfileUpsertOne struct {
		create *FacultyProfileCreate
	}

	// FacultyProfileUpsert is the "OnConflict" setter.
	FacultyProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FacultyProfileUpsert) SetUpdatedAt(v time.Time) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateUpdatedAt() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldUpdatedAt)
	return u
}

// SetUserID sets the "user_id" field.
func (u *FacultyProfileUpsert) SetUserID(v uuid.UUID) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateUserID() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldUserID)
	return u
}

// SetProfileID sets the "profile_id" field.
func (u *FacultyProfileUpsert) SetProfileID(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldProfileID, v)
	return u
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateProfileID() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldProfileID)
	return u
}

// SetEmployeeNumber sets the "employee_number" field.
func (u *FacultyProfileUpsert) SetEmployeeNumber(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldEmployeeNumber, v)
	return u
}

// UpdateEmployeeNumber sets the "employee_number" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateEmployeeNumber() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldEmployeeNumber)
	return u
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (u *FacultyProfileUpsert) ClearEmployeeNumber() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldEmployeeNumber)
	return u
}

// SetTitle sets the "title" field.
func (u *FacultyProfileUpsert) SetTitle(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateTitle() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldTitle)
	return u
}

// ClearTitle clears the value of the "title" field.
func (u *FacultyProfileUpsert) ClearTitle() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldTitle)
	return u
}

// SetDepartment sets the "department" field.
func (u *FacultyProfileUpsert) SetDepartment(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldDepartment, v)
	return u
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateDepartment() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldDepartment)
	return u
}

// ClearDepartment clears the value of the "department" field.
func (u *FacultyProfileUpsert) ClearDepartment() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldDepartment)
	return u
}

// SetOffice sets the "office" field.
func (u *FacultyProfileUpsert) SetOffice(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldOffice, v)
	return u
}

// UpdateOffice sets the "office" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateOffice() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldOffice)
	return u
}

// ClearOffice clears the value of the "office" field.
func (u *FacultyProfileUpsert) ClearOffice() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldOffice)
	return u
}

// SetExpertise sets the "expertise" field.
func (u *FacultyProfileUpsert) SetExpertise(v []string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldExpertise, v)
	return u
}

// UpdateExpertise sets the "expertise" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateExpertise() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldExpertise)
	return u
}

// ClearExpertise clears the value of the "expertise" field.
func (u *FacultyProfileUpsert) ClearExpertise() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldExpertise)
	return u
}

// SetEducation sets the "education" field.
func (u *FacultyProfileUpsert) SetEducation(v []string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldEducation, v)
	return u
}

// UpdateEducation sets the "education" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateEducation() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldEducation)
	return u
}

// ClearEducation clears the value of the "education" field.
func (u *FacultyProfileUpsert) ClearEducation() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldEducation)
	return u
}

// SetPublicationCount sets the "publication_count" field.
func (u *FacultyProfileUpsert) SetPublicationCount(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldPublicationCount, v)
	return u
}

// UpdatePublicationCount sets the "publication_count" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdatePublicationCount() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldPublicationCount)
	return u
}

// AddPublicationCount adds v to the "publication_count" field.
func (u *FacultyProfileUpsert) AddPublicationCount(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldPublicationCount, v)
	return u
}

// SetYearsExperience sets the "years_experience" field.
func (u *FacultyProfileUpsert) SetYearsExperience(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldYearsExperience, v)
	return u
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateYearsExperience() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldYearsExperience)
	return u
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *FacultyProfileUpsert) AddYearsExperience(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldYearsExperience, v)
	return u
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (u *FacultyProfileUpsert) SetDefaultDurationMin(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldDefaultDurationMin, v)
	return u
}

// UpdateDefaultDurationMin sets the "default_duration_min" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateDefaultDurationMin() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldDefaultDurationMin)
	return u
}

// AddDefaultDurationMin adds v to the "default_duration_min" field.
func (u *FacultyProfileUpsert) AddDefaultDurationMin(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldDefaultDurationMin, v)
	return u
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (u *FacultyProfileUpsert) SetMaxDailyAppointments(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldMaxDailyAppointments, v)
	return u
}

// UpdateMaxDailyAppointments sets the "max_daily_appointments" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateMaxDailyAppointments() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldMaxDailyAppointments)
	return u
}

// AddMaxDailyAppointments adds v to the "max_daily_appointments" field.
func (u *FacultyProfileUpsert) AddMaxDailyAppointments(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldMaxDailyAppointments, v)
	return u
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *FacultyProfileUpsert) SetBufferMinutes(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldBufferMinutes, v)
	return u
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateBufferMinutes() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldBufferMinutes)
	return u
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *FacultyProfileUpsert) AddBufferMinutes(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldBufferMinutes, v)
	return u
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (u *FacultyProfileUpsert) SetAdvanceBookingDays(v int) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldAdvanceBookingDays, v)
	return u
}

// UpdateAdvanceBookingDays sets the "advance_booking_days" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateAdvanceBookingDays() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldAdvanceBookingDays)
	return u
}

// AddAdvanceBookingDays adds v to the "advance_booking_days" field.
func (u *FacultyProfileUpsert) AddAdvanceBookingDays(v int) *FacultyProfileUpsert {
	u.Add(facultyprofile.FieldAdvanceBookingDays, v)
	return u
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (u *FacultyProfileUpsert) SetAllowedConsultationTypes(v []string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldAllowedConsultationTypes, v)
	return u
}

// UpdateAllowedConsultationTypes sets the "allowed_consultation_types" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateAllowedConsultationTypes() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldAllowedConsultationTypes)
	return u
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (u *FacultyProfileUpsert) ClearAllowedConsultationTypes() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldAllowedConsultationTypes)
	return u
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (u *FacultyProfileUpsert) SetWeeklySchedule(v map[string][]string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldWeeklySchedule, v)
	return u
}

// UpdateWeeklySchedule sets the "weekly_schedule" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateWeeklySchedule() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldWeeklySchedule)
	return u
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (u *FacultyProfileUpsert) ClearWeeklySchedule() *FacultyProfileUpsert {
	u.SetNull(facultyprofile.FieldWeeklySchedule)
	return u
}

// SetTimeZone sets the "time_zone" field.
func (u *FacultyProfileUpsert) SetTimeZone(v string) *FacultyProfileUpsert {
	u.Set(facultyprofile.FieldTimeZone, v)
	return u
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *FacultyProfileUpsert) UpdateTimeZone() *FacultyProfileUpsert {
	u.SetExcluded(facultyprofile.FieldTimeZone)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facultyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacultyProfileUpsertOne) UpdateNewValues() *FacultyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(facultyprofile.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(facultyprofile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FacultyProfileUpsertOne) Ignore() *FacultyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacultyProfileUpsertOne) DoNothing() *FacultyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacultyProfileCreate.OnConflict
// documentation for more info.
func (u *FacultyProfileUpsertOne) Update(set func(*FacultyProfileUpsert)) *FacultyProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacultyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FacultyProfileUpsertOne) SetUpdatedAt(v time.Time) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateUpdatedAt() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *FacultyProfileUpsertOne) SetUserID(v uuid.UUID) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateUserID() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *FacultyProfileUpsertOne) SetProfileID(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateProfileID() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateProfileID()
	})
}

// SetEmployeeNumber sets the "employee_number" field.
func (u *FacultyProfileUpsertOne) SetEmployeeNumber(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetEmployeeNumber(v)
	})
}

// UpdateEmployeeNumber sets the "employee_number" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateEmployeeNumber() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateEmployeeNumber()
	})
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (u *FacultyProfileUpsertOne) ClearEmployeeNumber() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearEmployeeNumber()
	})
}

// SetTitle sets the "title" field.
func (u *FacultyProfileUpsertOne) SetTitle(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateTitle() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *FacultyProfileUpsertOne) ClearTitle() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearTitle()
	})
}

// SetDepartment sets the "department" field.
func (u *FacultyProfileUpsertOne) SetDepartment(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateDepartment() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *FacultyProfileUpsertOne) ClearDepartment() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearDepartment()
	})
}

// SetOffice sets the "office" field.
func (u *FacultyProfileUpsertOne) SetOffice(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetOffice(v)
	})
}

// UpdateOffice sets the "office" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateOffice() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateOffice()
	})
}

// ClearOffice clears the value of the "office" field.
func (u *FacultyProfileUpsertOne) ClearOffice() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearOffice()
	})
}

// SetExpertise sets the "expertise" field.
func (u *FacultyProfileUpsertOne) SetExpertise(v []string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetExpertise(v)
	})
}

// UpdateExpertise sets the "expertise" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateExpertise() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateExpertise()
	})
}

// ClearExpertise clears the value of the "expertise" field.
func (u *FacultyProfileUpsertOne) ClearExpertise() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearExpertise()
	})
}

// SetEducation sets the "education" field.
func (u *FacultyProfileUpsertOne) SetEducation(v []string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetEducation(v)
	})
}

// UpdateEducation sets the "education" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateEducation() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateEducation()
	})
}

// ClearEducation clears the value of the "education" field.
func (u *FacultyProfileUpsertOne) ClearEducation() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearEducation()
	})
}

// SetPublicationCount sets the "publication_count" field.
func (u *FacultyProfileUpsertOne) SetPublicationCount(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetPublicationCount(v)
	})
}

// AddPublicationCount adds v to the "publication_count" field.
func (u *FacultyProfileUpsertOne) AddPublicationCount(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddPublicationCount(v)
	})
}

// UpdatePublicationCount sets the "publication_count" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdatePublicationCount() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdatePublicationCount()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *FacultyProfileUpsertOne) SetYearsExperience(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *FacultyProfileUpsertOne) AddYearsExperience(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateYearsExperience() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (u *FacultyProfileUpsertOne) SetDefaultDurationMin(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetDefaultDurationMin(v)
	})
}

// AddDefaultDurationMin adds v to the "default_duration_min" field.
func (u *FacultyProfileUpsertOne) AddDefaultDurationMin(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddDefaultDurationMin(v)
	})
}

// UpdateDefaultDurationMin sets the "default_duration_min" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateDefaultDurationMin() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateDefaultDurationMin()
	})
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (u *FacultyProfileUpsertOne) SetMaxDailyAppointments(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetMaxDailyAppointments(v)
	})
}

// AddMaxDailyAppointments adds v to the "max_daily_appointments" field.
func (u *FacultyProfileUpsertOne) AddMaxDailyAppointments(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddMaxDailyAppointments(v)
	})
}

// UpdateMaxDailyAppointments sets the "max_daily_appointments" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateMaxDailyAppointments() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateMaxDailyAppointments()
	})
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *FacultyProfileUpsertOne) SetBufferMinutes(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetBufferMinutes(v)
	})
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *FacultyProfileUpsertOne) AddBufferMinutes(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddBufferMinutes(v)
	})
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateBufferMinutes() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateBufferMinutes()
	})
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (u *FacultyProfileUpsertOne) SetAdvanceBookingDays(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetAdvanceBookingDays(v)
	})
}

// AddAdvanceBookingDays adds v to the "advance_booking_days" field.
func (u *FacultyProfileUpsertOne) AddAdvanceBookingDays(v int) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddAdvanceBookingDays(v)
	})
}

// UpdateAdvanceBookingDays sets the "advance_booking_days" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateAdvanceBookingDays() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateAdvanceBookingDays()
	})
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (u *FacultyProfileUpsertOne) SetAllowedConsultationTypes(v []string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetAllowedConsultationTypes(v)
	})
}

// UpdateAllowedConsultationTypes sets the "allowed_consultation_types" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateAllowedConsultationTypes() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateAllowedConsultationTypes()
	})
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (u *FacultyProfileUpsertOne) ClearAllowedConsultationTypes() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearAllowedConsultationTypes()
	})
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (u *FacultyProfileUpsertOne) SetWeeklySchedule(v map[string][]string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetWeeklySchedule(v)
	})
}

// UpdateWeeklySchedule sets the "weekly_schedule" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateWeeklySchedule() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateWeeklySchedule()
	})
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (u *FacultyProfileUpsertOne) ClearWeeklySchedule() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearWeeklySchedule()
	})
}

// SetTimeZone sets the "time_zone" field.
func (u *FacultyProfileUpsertOne) SetTimeZone(v string) *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetTimeZone(v)
	})
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *FacultyProfileUpsertOne) UpdateTimeZone() *FacultyProfileUpsertOne {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateTimeZone()
	})
}

// Exec executes the query.
func (u *FacultyProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacultyProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacultyProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FacultyProfileUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: FacultyProfileUpsertOne.ID is not supported by MySQL driver. Use FacultyProfileUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FacultyProfileUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FacultyProfileCreateBulk is the builder for creating many FacultyProfile entities in bulk.
type FacultyProfileCreateBulk struct {
	config
	err      error
	builders []*FacultyProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the FacultyProfile entities in the database.
func (_c *FacultyProfileCreateBulk) Save(ctx context.Context) ([]*FacultyProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FacultyProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FacultyProfileMutation)
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
func (_c *FacultyProfileCreateBulk) SaveX(ctx context.Context) []*FacultyProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FacultyProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FacultyProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FacultyProfile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FacultyProfileUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FacultyProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *FacultyProfileUpsertBulk {
	_c.conflict = opts
	return &FacultyProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FacultyProfileCreateBulk) OnConflictColumns(columns ...string) *FacultyProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FacultyProfileUpsertBulk{
		create: _c,
	}
}

// FacultyProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of FacultyProfile nodes.
type FacultyProfileUpsertBulk struct {
	create *FacultyProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(facultyprofile.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FacultyProfileUpsertBulk) UpdateNewValues() *FacultyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(facultyprofile.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(facultyprofile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FacultyProfile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FacultyProfileUpsertBulk) Ignore() *FacultyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FacultyProfileUpsertBulk) DoNothing() *FacultyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FacultyProfileCreateBulk.OnConflict
// documentation for more info.
func (u *FacultyProfileUpsertBulk) Update(set func(*FacultyProfileUpsert)) *FacultyProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FacultyProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FacultyProfileUpsertBulk) SetUpdatedAt(v time.Time) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateUpdatedAt() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetUserID sets the "user_id" field.
func (u *FacultyProfileUpsertBulk) SetUserID(v uuid.UUID) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateUserID() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateUserID()
	})
}

// SetProfileID sets the "profile_id" field.
func (u *FacultyProfileUpsertBulk) SetProfileID(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetProfileID(v)
	})
}

// UpdateProfileID sets the "profile_id" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateProfileID() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateProfileID()
	})
}

// SetEmployeeNumber sets the "employee_number" field.
func (u *FacultyProfileUpsertBulk) SetEmployeeNumber(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetEmployeeNumber(v)
	})
}

// UpdateEmployeeNumber sets the "employee_number" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateEmployeeNumber() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateEmployeeNumber()
	})
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (u *FacultyProfileUpsertBulk) ClearEmployeeNumber() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearEmployeeNumber()
	})
}

// SetTitle sets the "title" field.
func (u *FacultyProfileUpsertBulk) SetTitle(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateTitle() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateTitle()
	})
}

// ClearTitle clears the value of the "title" field.
func (u *FacultyProfileUpsertBulk) ClearTitle() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearTitle()
	})
}

// SetDepartment sets the "department" field.
func (u *FacultyProfileUpsertBulk) SetDepartment(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetDepartment(v)
	})
}

// UpdateDepartment sets the "department" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateDepartment() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateDepartment()
	})
}

// ClearDepartment clears the value of the "department" field.
func (u *FacultyProfileUpsertBulk) ClearDepartment() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearDepartment()
	})
}

// SetOffice sets the "office" field.
func (u *FacultyProfileUpsertBulk) SetOffice(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetOffice(v)
	})
}

// UpdateOffice sets the "office" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateOffice() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateOffice()
	})
}

// ClearOffice clears the value of the "office" field.
func (u *FacultyProfileUpsertBulk) ClearOffice() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearOffice()
	})
}

// SetExpertise sets the "expertise" field.
func (u *FacultyProfileUpsertBulk) SetExpertise(v []string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetExpertise(v)
	})
}

// UpdateExpertise sets the "expertise" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateExpertise() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateExpertise()
	})
}

// ClearExpertise clears the value of the "expertise" field.
func (u *FacultyProfileUpsertBulk) ClearExpertise() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearExpertise()
	})
}

// SetEducation sets the "education" field.
func (u *FacultyProfileUpsertBulk) SetEducation(v []string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetEducation(v)
	})
}

// UpdateEducation sets the "education" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateEducation() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateEducation()
	})
}

// ClearEducation clears the value of the "education" field.
func (u *FacultyProfileUpsertBulk) ClearEducation() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearEducation()
	})
}

// SetPublicationCount sets the "publication_count" field.
func (u *FacultyProfileUpsertBulk) SetPublicationCount(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetPublicationCount(v)
	})
}

// AddPublicationCount adds v to the "publication_count" field.
func (u *FacultyProfileUpsertBulk) AddPublicationCount(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddPublicationCount(v)
	})
}

// UpdatePublicationCount sets the "publication_count" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdatePublicationCount() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdatePublicationCount()
	})
}

// SetYearsExperience sets the "years_experience" field.
func (u *FacultyProfileUpsertBulk) SetYearsExperience(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetYearsExperience(v)
	})
}

// AddYearsExperience adds v to the "years_experience" field.
func (u *FacultyProfileUpsertBulk) AddYearsExperience(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddYearsExperience(v)
	})
}

// UpdateYearsExperience sets the "years_experience" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateYearsExperience() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateYearsExperience()
	})
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (u *FacultyProfileUpsertBulk) SetDefaultDurationMin(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetDefaultDurationMin(v)
	})
}

// AddDefaultDurationMin adds v to the "default_duration_min" field.
func (u *FacultyProfileUpsertBulk) AddDefaultDurationMin(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddDefaultDurationMin(v)
	})
}

// UpdateDefaultDurationMin sets the "default_duration_min" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateDefaultDurationMin() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateDefaultDurationMin()
	})
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (u *FacultyProfileUpsertBulk) SetMaxDailyAppointments(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetMaxDailyAppointments(v)
	})
}

// AddMaxDailyAppointments adds v to the "max_daily_appointments" field.
func (u *FacultyProfileUpsertBulk) AddMaxDailyAppointments(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddMaxDailyAppointments(v)
	})
}

// UpdateMaxDailyAppointments sets the "max_daily_appointments" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateMaxDailyAppointments() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateMaxDailyAppointments()
	})
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (u *FacultyProfileUpsertBulk) SetBufferMinutes(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetBufferMinutes(v)
	})
}

// AddBufferMinutes adds v to the "buffer_minutes" field.
func (u *FacultyProfileUpsertBulk) AddBufferMinutes(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddBufferMinutes(v)
	})
}

// UpdateBufferMinutes sets the "buffer_minutes" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateBufferMinutes() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateBufferMinutes()
	})
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (u *FacultyProfileUpsertBulk) SetAdvanceBookingDays(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetAdvanceBookingDays(v)
	})
}

// AddAdvanceBookingDays adds v to the "advance_booking_days" field.
func (u *FacultyProfileUpsertBulk) AddAdvanceBookingDays(v int) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.AddAdvanceBookingDays(v)
	})
}

// UpdateAdvanceBookingDays sets the "advance_booking_days" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateAdvanceBookingDays() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateAdvanceBookingDays()
	})
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (u *FacultyProfileUpsertBulk) SetAllowedConsultationTypes(v []string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetAllowedConsultationTypes(v)
	})
}

// UpdateAllowedConsultationTypes sets the "allowed_consultation_types" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateAllowedConsultationTypes() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateAllowedConsultationTypes()
	})
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (u *FacultyProfileUpsertBulk) ClearAllowedConsultationTypes() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearAllowedConsultationTypes()
	})
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (u *FacultyProfileUpsertBulk) SetWeeklySchedule(v map[string][]string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetWeeklySchedule(v)
	})
}

// UpdateWeeklySchedule sets the "weekly_schedule" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateWeeklySchedule() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateWeeklySchedule()
	})
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (u *FacultyProfileUpsertBulk) ClearWeeklySchedule() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.ClearWeeklySchedule()
	})
}

// SetTimeZone sets the "time_zone" field.
func (u *FacultyProfileUpsertBulk) SetTimeZone(v string) *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.SetTimeZone(v)
	})
}

// UpdateTimeZone sets the "time_zone" field to the value that was provided on create.
func (u *FacultyProfileUpsertBulk) UpdateTimeZone() *FacultyProfileUpsertBulk {
	return u.Update(func(s *FacultyProfileUpsert) {
		s.UpdateTimeZone()
	})
}

// Exec executes the query.
func (u *FacultyProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the FacultyProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for FacultyProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FacultyProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

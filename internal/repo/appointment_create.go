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
	"github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// AppointmentCreate is the builder for creating a Appointment entity.
type AppointmentCreate struct {
	config
	mutation *AppointmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *AppointmentCreate) SetCreatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableCreatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AppointmentCreate) SetUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AppointmentCreate) SetStudentID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetFacultyID sets the "faculty_id" field.
func (_c *AppointmentCreate) SetFacultyID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetFacultyID(v)
	return _c
}

// SetStudentName sets the "student_name" field.
func (_c *AppointmentCreate) SetStudentName(v string) *AppointmentCreate {
	_c.mutation.SetStudentName(v)
	return _c
}

// SetStudentEmail sets the "student_email" field.
func (_c *AppointmentCreate) SetStudentEmail(v string) *AppointmentCreate {
	_c.mutation.SetStudentEmail(v)
	return _c
}

// SetFacultyName sets the "faculty_name" field.
func (_c *AppointmentCreate) SetFacultyName(v string) *AppointmentCreate {
	_c.mutation.SetFacultyName(v)
	return _c
}

// SetFacultyEmail sets the "faculty_email" field.
func (_c *AppointmentCreate) SetFacultyEmail(v string) *AppointmentCreate {
	_c.mutation.SetFacultyEmail(v)
	return _c
}

// SetRequestedTime sets the "requested_time" field.
func (_c *AppointmentCreate) SetRequestedTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetRequestedTime(v)
	return _c
}

// SetRescheduleTime sets the "reschedule_time" field.
func (_c *AppointmentCreate) SetRescheduleTime(v time.Time) *AppointmentCreate {
	_c.mutation.SetRescheduleTime(v)
	return _c
}

// SetNillableRescheduleTime sets the "reschedule_time" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableRescheduleTime(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetRescheduleTime(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *AppointmentCreate) SetReason(v string) *AppointmentCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AppointmentCreate) SetStatus(v appointment.Status) *AppointmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStatus(v *appointment.Status) *AppointmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetMeetingLink sets the "meeting_link" field.
func (_c *AppointmentCreate) SetMeetingLink(v string) *AppointmentCreate {
	_c.mutation.SetMeetingLink(v)
	return _c
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableMeetingLink(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetMeetingLink(*v)
	}
	return _c
}

// SetFacultyNotes sets the "faculty_notes" field.
func (_c *AppointmentCreate) SetFacultyNotes(v string) *AppointmentCreate {
	_c.mutation.SetFacultyNotes(v)
	return _c
}

// SetNillableFacultyNotes sets the "faculty_notes" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableFacultyNotes(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetFacultyNotes(*v)
	}
	return _c
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (_c *AppointmentCreate) SetNotesUpdatedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetNotesUpdatedAt(v)
	return _c
}

// SetNillableNotesUpdatedAt sets the "notes_updated_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableNotesUpdatedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetNotesUpdatedAt(*v)
	}
	return _c
}

// SetStudentFeedback sets the "student_feedback" field.
func (_c *AppointmentCreate) SetStudentFeedback(v string) *AppointmentCreate {
	_c.mutation.SetStudentFeedback(v)
	return _c
}

// SetNillableStudentFeedback sets the "student_feedback" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStudentFeedback(v *string) *AppointmentCreate {
	if v != nil {
		_c.SetStudentFeedback(*v)
	}
	return _c
}

// SetStudentRating sets the "student_rating" field.
func (_c *AppointmentCreate) SetStudentRating(v int) *AppointmentCreate {
	_c.mutation.SetStudentRating(v)
	return _c
}

// SetNillableStudentRating sets the "student_rating" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableStudentRating(v *int) *AppointmentCreate {
	if v != nil {
		_c.SetStudentRating(*v)
	}
	return _c
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (_c *AppointmentCreate) SetFeedbackSubmittedAt(v time.Time) *AppointmentCreate {
	_c.mutation.SetFeedbackSubmittedAt(v)
	return _c
}

// SetNillableFeedbackSubmittedAt sets the "feedback_submitted_at" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableFeedbackSubmittedAt(v *time.Time) *AppointmentCreate {
	if v != nil {
		_c.SetFeedbackSubmittedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AppointmentCreate) SetID(v uuid.UUID) *AppointmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *AppointmentCreate) SetNillableID(v *uuid.UUID) *AppointmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetStudent sets the "student" edge to the User entity.
func (_c *AppointmentCreate) SetStudent(v *User) *AppointmentCreate {
	return _c.SetStudentID(v.ID)
}

// SetFaculty sets the "faculty" edge to the User entity.
func (_c *AppointmentCreate) SetFaculty(v *User) *AppointmentCreate {
	return _c.SetFacultyID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_c *AppointmentCreate) Mutation() *AppointmentMutation {
	return _c.mutation
}

// Save creates the Appointment in the database.
func (_c *AppointmentCreate) Save(ctx context.Context) (*Appointment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AppointmentCreate) SaveX(ctx context.Context) *Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AppointmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := appointment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := appointment.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := appointment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := appointment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AppointmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Appointment.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Appointment.updated_at"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`repo: missing required field "Appointment.student_id"`)}
	}
	if _, ok := _c.mutation.FacultyID(); !ok {
		return &ValidationError{Name: "faculty_id", err: errors.New(`repo: missing required field "Appointment.faculty_id"`)}
	}
	if _, ok := _c.mutation.StudentName(); !ok {
		return &ValidationError{Name: "student_name", err: errors.New(`repo: missing required field "Appointment.student_name"`)}
	}
	if v, ok := _c.mutation.StudentName(); ok {
		if err := appointment.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StudentEmail(); !ok {
		return &ValidationError{Name: "student_email", err: errors.New(`repo: missing required field "Appointment.student_email"`)}
	}
	if v, ok := _c.mutation.StudentEmail(); ok {
		if err := appointment.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FacultyName(); !ok {
		return &ValidationError{Name: "faculty_name", err: errors.New(`repo: missing required field "Appointment.faculty_name"`)}
	}
	if v, ok := _c.mutation.FacultyName(); ok {
		if err := appointment.FacultyNameValidator(v); err != nil {
			return &ValidationError{Name: "faculty_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FacultyEmail(); !ok {
		return &ValidationError{Name: "faculty_email", err: errors.New(`repo: missing required field "Appointment.faculty_email"`)}
	}
	if v, ok := _c.mutation.FacultyEmail(); ok {
		if err := appointment.FacultyEmailValidator(v); err != nil {
			return &ValidationError{Name: "faculty_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequestedTime(); !ok {
		return &ValidationError{Name: "requested_time", err: errors.New(`repo: missing required field "Appointment.requested_time"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`repo: missing required field "Appointment.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := appointment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Appointment.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Appointment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _c.mutation.StudentRating(); ok {
		if err := appointment.StudentRatingValidator(v); err != nil {
			return &ValidationError{Name: "student_rating", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_rating": %w`, err)}
		}
	}
	if len(_c.mutation.StudentIDs()) == 0 {
		return &ValidationError{Name: "student", err: errors.New(`repo: missing required edge "Appointment.student"`)}
	}
	if len(_c.mutation.FacultyIDs()) == 0 {
		return &ValidationError{Name: "faculty", err: errors.New(`repo: missing required edge "Appointment.faculty"`)}
	}
	return nil
}

func (_c *AppointmentCreate) sqlSave(ctx context.Context) (*Appointment, error) {
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

func (_c *AppointmentCreate) createSpec() (*Appointment, *sqlgraph.CreateSpec) {
	var (
		_node = &Appointment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(appointment.Table, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(appointment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StudentName(); ok {
		_spec.SetField(appointment.FieldStudentName, field.TypeString, value)
		_node.StudentName = value
	}
	if value, ok := _c.mutation.StudentEmail(); ok {
		_spec.SetField(appointment.FieldStudentEmail, field.TypeString, value)
		_node.StudentEmail = value
	}
	if value, ok := _c.mutation.FacultyName(); ok {
		_spec.SetField(appointment.FieldFacultyName, field.TypeString, value)
		_node.FacultyName = value
	}
	if value, ok := _c.mutation.FacultyEmail(); ok {
		_spec.SetField(appointment.FieldFacultyEmail, field.TypeString, value)
		_node.FacultyEmail = value
	}
	if value, ok := _c.mutation.RequestedTime(); ok {
		_spec.SetField(appointment.FieldRequestedTime, field.TypeTime, value)
		_node.RequestedTime = value
	}
	if value, ok := _c.mutation.RescheduleTime(); ok {
		_spec.SetField(appointment.FieldRescheduleTime, field.TypeTime, value)
		_node.RescheduleTime = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
		_node.MeetingLink = &value
	}
	if value, ok := _c.mutation.FacultyNotes(); ok {
		_spec.SetField(appointment.FieldFacultyNotes, field.TypeString, value)
		_node.FacultyNotes = &value
	}
	if value, ok := _c.mutation.NotesUpdatedAt(); ok {
		_spec.SetField(appointment.FieldNotesUpdatedAt, field.TypeTime, value)
		_node.NotesUpdatedAt = &value
	}
	if value, ok := _c.mutation.StudentFeedback(); ok {
		_spec.SetField(appointment.FieldStudentFeedback, field.TypeString, value)
		_node.StudentFeedback = &value
	}
	if value, ok := _c.mutation.StudentRating(); ok {
		_spec.SetField(appointment.FieldStudentRating, field.TypeInt, value)
		_node.StudentRating = &value
	}
	if value, ok := _c.mutation.FeedbackSubmittedAt(); ok {
		_spec.SetField(appointment.FieldFeedbackSubmittedAt, field.TypeTime, value)
		_node.FeedbackSubmittedAt = &value
	}
	if nodes := _c.mutation.StudentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.StudentTable,
			Columns: []string{appointment.StudentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.StudentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FacultyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   appointment.FacultyTable,
			Columns: []string{appointment.FacultyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.FacultyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertOne {
	_c.conflict = opts
	return &AppointmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreate) OnConflictColumns(columns ...string) *AppointmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertOne{
		create: _c,
	}
}

type (
	// AppointmentUpsertOne is the builder for "upsert"-ing
	//  one Appointment node.
	AppointmentUpsertOne struct {
		create *AppointmentCreate
	}

	// AppointmentUpsert is the "OnConflict" setter.
	AppointmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsert) SetUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldUpdatedAt)
	return u
}

// SetStudentID sets the "student_id" field.
func (u *AppointmentUpsert) SetStudentID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldStudentID, v)
	return u
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStudentID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStudentID)
	return u
}

// SetFacultyID sets the "faculty_id" field.
func (u *AppointmentUpsert) SetFacultyID(v uuid.UUID) *AppointmentUpsert {
	u.Set(appointment.FieldFacultyID, v)
	return u
}

// UpdateFacultyID sets the "faculty_id" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateFacultyID() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldFacultyID)
	return u
}

// SetStudentName sets the "student_name" field.
func (u *AppointmentUpsert) SetStudentName(v string) *AppointmentUpsert {
	u.Set(appointment.FieldStudentName, v)
	return u
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStudentName() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStudentName)
	return u
}

// SetStudentEmail sets the "student_email" field.
func (u *AppointmentUpsert) SetStudentEmail(v string) *AppointmentUpsert {
	u.Set(appointment.FieldStudentEmail, v)
	return u
}

// UpdateStudentEmail sets the "student_email" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStudentEmail() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStudentEmail)
	return u
}

// SetFacultyName sets the "faculty_name" field.
func (u *AppointmentUpsert) SetFacultyName(v string) *AppointmentUpsert {
	u.Set(appointment.FieldFacultyName, v)
	return u
}

// UpdateFacultyName sets the "faculty_name" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateFacultyName() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldFacultyName)
	return u
}

// SetFacultyEmail sets the "faculty_email" field.
func (u *AppointmentUpsert) SetFacultyEmail(v string) *AppointmentUpsert {
	u.Set(appointment.FieldFacultyEmail, v)
	return u
}

// UpdateFacultyEmail sets the "faculty_email" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateFacultyEmail() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldFacultyEmail)
	return u
}

// SetRescheduleTime sets the "reschedule_time" field.
func (u *AppointmentUpsert) SetRescheduleTime(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldRescheduleTime, v)
	return u
}

// UpdateRescheduleTime sets the "reschedule_time" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateRescheduleTime() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldRescheduleTime)
	return u
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (u *AppointmentUpsert) ClearRescheduleTime() *AppointmentUpsert {
	u.SetNull(appointment.FieldRescheduleTime)
	return u
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsert) SetReason(v string) *AppointmentUpsert {
	u.Set(appointment.FieldReason, v)
	return u
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateReason() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldReason)
	return u
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsert) SetStatus(v appointment.Status) *AppointmentUpsert {
	u.Set(appointment.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStatus() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStatus)
	return u
}

// SetMeetingLink sets the "meeting_link" field.
func (u *AppointmentUpsert) SetMeetingLink(v string) *AppointmentUpsert {
	u.Set(appointment.FieldMeetingLink, v)
	return u
}

// UpdateMeetingLink sets the "meeting_link" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateMeetingLink() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldMeetingLink)
	return u
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (u *AppointmentUpsert) ClearMeetingLink() *AppointmentUpsert {
	u.SetNull(appointment.FieldMeetingLink)
	return u
}

// SetFacultyNotes sets the "faculty_notes" field.
func (u *AppointmentUpsert) SetFacultyNotes(v string) *AppointmentUpsert {
	u.Set(appointment.FieldFacultyNotes, v)
	return u
}

// UpdateFacultyNotes sets the "faculty_notes" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateFacultyNotes() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldFacultyNotes)
	return u
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (u *AppointmentUpsert) ClearFacultyNotes() *AppointmentUpsert {
	u.SetNull(appointment.FieldFacultyNotes)
	return u
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (u *AppointmentUpsert) SetNotesUpdatedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldNotesUpdatedAt, v)
	return u
}

// UpdateNotesUpdatedAt sets the "notes_updated_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateNotesUpdatedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldNotesUpdatedAt)
	return u
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (u *AppointmentUpsert) ClearNotesUpdatedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldNotesUpdatedAt)
	return u
}

// SetStudentFeedback sets the "student_feedback" field.
func (u *AppointmentUpsert) SetStudentFeedback(v string) *AppointmentUpsert {
	u.Set(appointment.FieldStudentFeedback, v)
	return u
}

// UpdateStudentFeedback sets the "student_feedback" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStudentFeedback() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStudentFeedback)
	return u
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (u *AppointmentUpsert) ClearStudentFeedback() *AppointmentUpsert {
	u.SetNull(appointment.FieldStudentFeedback)
	return u
}

// SetStudentRating sets the "student_rating" field.
func (u *AppointmentUpsert) SetStudentRating(v int) *AppointmentUpsert {
	u.Set(appointment.FieldStudentRating, v)
	return u
}

// UpdateStudentRating sets the "student_rating" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateStudentRating() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldStudentRating)
	return u
}

// AddStudentRating adds v to the "student_rating" field.
func (u *AppointmentUpsert) AddStudentRating(v int) *AppointmentUpsert {
	u.Add(appointment.FieldStudentRating, v)
	return u
}

// ClearStudentRating clears the value of the "student_rating" field.
func (u *AppointmentUpsert) ClearStudentRating() *AppointmentUpsert {
	u.SetNull(appointment.FieldStudentRating)
	return u
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (u *AppointmentUpsert) SetFeedbackSubmittedAt(v time.Time) *AppointmentUpsert {
	u.Set(appointment.FieldFeedbackSubmittedAt, v)
	return u
}

// UpdateFeedbackSubmittedAt sets the "feedback_submitted_at" field to the value that was provided on create.
func (u *AppointmentUpsert) UpdateFeedbackSubmittedAt() *AppointmentUpsert {
	u.SetExcluded(appointment.FieldFeedbackSubmittedAt)
	return u
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (u *AppointmentUpsert) ClearFeedbackSubmittedAt() *AppointmentUpsert {
	u.SetNull(appointment.FieldFeedbackSubmittedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertOne) UpdateNewValues() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(appointment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(appointment.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.RequestedTime(); exists {
			s.SetIgnore(appointment.FieldRequestedTime)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AppointmentUpsertOne) Ignore() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertOne) DoNothing() *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreate.OnConflict
// documentation for more info.
func (u *AppointmentUpsertOne) Update(set func(*AppointmentUpsert)) *AppointmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertOne) SetUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStudentID sets the "student_id" field.
func (u *AppointmentUpsertOne) SetStudentID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStudentID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentID()
	})
}

// SetFacultyID sets the "faculty_id" field.
func (u *AppointmentUpsertOne) SetFacultyID(v uuid.UUID) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyID(v)
	})
}

// UpdateFacultyID sets the "faculty_id" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateFacultyID() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyID()
	})
}

// SetStudentName sets the "student_name" field.
func (u *AppointmentUpsertOne) SetStudentName(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStudentName() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentName()
	})
}

// SetStudentEmail sets the "student_email" field.
func (u *AppointmentUpsertOne) SetStudentEmail(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentEmail(v)
	})
}

// UpdateStudentEmail sets the "student_email" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStudentEmail() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentEmail()
	})
}

// SetFacultyName sets the "faculty_name" field.
func (u *AppointmentUpsertOne) SetFacultyName(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyName(v)
	})
}

// UpdateFacultyName sets the "faculty_name" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateFacultyName() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyName()
	})
}

// SetFacultyEmail sets the "faculty_email" field.
func (u *AppointmentUpsertOne) SetFacultyEmail(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyEmail(v)
	})
}

// UpdateFacultyEmail sets the "faculty_email" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateFacultyEmail() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyEmail()
	})
}

// SetRescheduleTime sets the "reschedule_time" field.
func (u *AppointmentUpsertOne) SetRescheduleTime(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetRescheduleTime(v)
	})
}

// UpdateRescheduleTime sets the "reschedule_time" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateRescheduleTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateRescheduleTime()
	})
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (u *AppointmentUpsertOne) ClearRescheduleTime() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearRescheduleTime()
	})
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsertOne) SetReason(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateReason() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateReason()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertOne) SetStatus(v appointment.Status) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStatus() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetMeetingLink sets the "meeting_link" field.
func (u *AppointmentUpsertOne) SetMeetingLink(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetMeetingLink(v)
	})
}

// UpdateMeetingLink sets the "meeting_link" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateMeetingLink() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateMeetingLink()
	})
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (u *AppointmentUpsertOne) ClearMeetingLink() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearMeetingLink()
	})
}

// SetFacultyNotes sets the "faculty_notes" field.
func (u *AppointmentUpsertOne) SetFacultyNotes(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyNotes(v)
	})
}

// UpdateFacultyNotes sets the "faculty_notes" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateFacultyNotes() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyNotes()
	})
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (u *AppointmentUpsertOne) ClearFacultyNotes() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearFacultyNotes()
	})
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (u *AppointmentUpsertOne) SetNotesUpdatedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNotesUpdatedAt(v)
	})
}

// UpdateNotesUpdatedAt sets the "notes_updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateNotesUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNotesUpdatedAt()
	})
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (u *AppointmentUpsertOne) ClearNotesUpdatedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearNotesUpdatedAt()
	})
}

// SetStudentFeedback sets the "student_feedback" field.
func (u *AppointmentUpsertOne) SetStudentFeedback(v string) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentFeedback(v)
	})
}

// UpdateStudentFeedback sets the "student_feedback" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStudentFeedback() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentFeedback()
	})
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (u *AppointmentUpsertOne) ClearStudentFeedback() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearStudentFeedback()
	})
}

// SetStudentRating sets the "student_rating" field.
func (u *AppointmentUpsertOne) SetStudentRating(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentRating(v)
	})
}

// AddStudentRating adds v to the "student_rating" field.
func (u *AppointmentUpsertOne) AddStudentRating(v int) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddStudentRating(v)
	})
}

// UpdateStudentRating sets the "student_rating" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateStudentRating() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentRating()
	})
}

// ClearStudentRating clears the value of the "student_rating" field.
func (u *AppointmentUpsertOne) ClearStudentRating() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearStudentRating()
	})
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (u *AppointmentUpsertOne) SetFeedbackSubmittedAt(v time.Time) *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFeedbackSubmittedAt(v)
	})
}

// UpdateFeedbackSubmittedAt sets the "feedback_submitted_at" field to the value that was provided on create.
func (u *AppointmentUpsertOne) UpdateFeedbackSubmittedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFeedbackSubmittedAt()
	})
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (u *AppointmentUpsertOne) ClearFeedbackSubmittedAt() *AppointmentUpsertOne {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearFeedbackSubmittedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AppointmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: AppointmentUpsertOne.ID is not supported by MySQL driver. Use AppointmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AppointmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AppointmentCreateBulk is the builder for creating many Appointment entities in bulk.
type AppointmentCreateBulk struct {
	config
	err      error
	builders []*AppointmentCreate
	conflict []sql.ConflictOption
}

// Save creates the Appointment entities in the database.
func (_c *AppointmentCreateBulk) Save(ctx context.Context) ([]*Appointment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Appointment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AppointmentMutation)
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
func (_c *AppointmentCreateBulk) SaveX(ctx context.Context) []*Appointment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AppointmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AppointmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Appointment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AppointmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AppointmentUpsertBulk {
	_c.conflict = opts
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AppointmentCreateBulk) OnConflictColumns(columns ...string) *AppointmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AppointmentUpsertBulk{
		create: _c,
	}
}

// AppointmentUpsertBulk is the builder for "upsert"-ing
// a bulk of Appointment nodes.
type AppointmentUpsertBulk struct {
	create *AppointmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(appointment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) UpdateNewValues() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(appointment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(appointment.FieldCreatedAt)
			}
			if _, exists := b.mutation.RequestedTime(); exists {
				s.SetIgnore(appointment.FieldRequestedTime)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Appointment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AppointmentUpsertBulk) Ignore() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AppointmentUpsertBulk) DoNothing() *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AppointmentCreateBulk.OnConflict
// documentation for more info.
func (u *AppointmentUpsertBulk) Update(set func(*AppointmentUpsert)) *AppointmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AppointmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AppointmentUpsertBulk) SetUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetStudentID sets the "student_id" field.
func (u *AppointmentUpsertBulk) SetStudentID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentID(v)
	})
}

// UpdateStudentID sets the "student_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStudentID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentID()
	})
}

// SetFacultyID sets the "faculty_id" field.
func (u *AppointmentUpsertBulk) SetFacultyID(v uuid.UUID) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyID(v)
	})
}

// UpdateFacultyID sets the "faculty_id" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateFacultyID() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyID()
	})
}

// SetStudentName sets the "student_name" field.
func (u *AppointmentUpsertBulk) SetStudentName(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentName(v)
	})
}

// UpdateStudentName sets the "student_name" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStudentName() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentName()
	})
}

// SetStudentEmail sets the "student_email" field.
func (u *AppointmentUpsertBulk) SetStudentEmail(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentEmail(v)
	})
}

// UpdateStudentEmail sets the "student_email" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStudentEmail() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentEmail()
	})
}

// SetFacultyName sets the "faculty_name" field.
func (u *AppointmentUpsertBulk) SetFacultyName(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyName(v)
	})
}

// UpdateFacultyName sets the "faculty_name" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateFacultyName() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyName()
	})
}

// SetFacultyEmail sets the "faculty_email" field.
func (u *AppointmentUpsertBulk) SetFacultyEmail(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyEmail(v)
	})
}

// UpdateFacultyEmail sets the "faculty_email" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateFacultyEmail() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyEmail()
	})
}

// SetRescheduleTime sets the "reschedule_time" field.
func (u *AppointmentUpsertBulk) SetRescheduleTime(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetRescheduleTime(v)
	})
}

// UpdateRescheduleTime sets the "reschedule_time" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateRescheduleTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateRescheduleTime()
	})
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (u *AppointmentUpsertBulk) ClearRescheduleTime() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearRescheduleTime()
	})
}

// SetReason sets the "reason" field.
func (u *AppointmentUpsertBulk) SetReason(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetReason(v)
	})
}

// UpdateReason sets the "reason" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateReason() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateReason()
	})
}

// SetStatus sets the "status" field.
func (u *AppointmentUpsertBulk) SetStatus(v appointment.Status) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStatus() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStatus()
	})
}

// SetMeetingLink sets the "meeting_link" field.
func (u *AppointmentUpsertBulk) SetMeetingLink(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetMeetingLink(v)
	})
}

// UpdateMeetingLink sets the "meeting_link" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateMeetingLink() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateMeetingLink()
	})
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (u *AppointmentUpsertBulk) ClearMeetingLink() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearMeetingLink()
	})
}

// SetFacultyNotes sets the "faculty_notes" field.
func (u *AppointmentUpsertBulk) SetFacultyNotes(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFacultyNotes(v)
	})
}

// UpdateFacultyNotes sets the "faculty_notes" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateFacultyNotes() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFacultyNotes()
	})
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (u *AppointmentUpsertBulk) ClearFacultyNotes() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearFacultyNotes()
	})
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (u *AppointmentUpsertBulk) SetNotesUpdatedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetNotesUpdatedAt(v)
	})
}

// UpdateNotesUpdatedAt sets the "notes_updated_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateNotesUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateNotesUpdatedAt()
	})
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (u *AppointmentUpsertBulk) ClearNotesUpdatedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearNotesUpdatedAt()
	})
}

// SetStudentFeedback sets the "student_feedback" field.
func (u *AppointmentUpsertBulk) SetStudentFeedback(v string) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentFeedback(v)
	})
}

// UpdateStudentFeedback sets the "student_feedback" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStudentFeedback() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentFeedback()
	})
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (u *AppointmentUpsertBulk) ClearStudentFeedback() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearStudentFeedback()
	})
}

// SetStudentRating sets the "student_rating" field.
func (u *AppointmentUpsertBulk) SetStudentRating(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetStudentRating(v)
	})
}

// AddStudentRating adds v to the "student_rating" field.
func (u *AppointmentUpsertBulk) AddStudentRating(v int) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.AddStudentRating(v)
	})
}

// UpdateStudentRating sets the "student_rating" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateStudentRating() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateStudentRating()
	})
}

// ClearStudentRating clears the value of the "student_rating" field.
func (u *AppointmentUpsertBulk) ClearStudentRating() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearStudentRating()
	})
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (u *AppointmentUpsertBulk) SetFeedbackSubmittedAt(v time.Time) *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.SetFeedbackSubmittedAt(v)
	})
}

// UpdateFeedbackSubmittedAt sets the "feedback_submitted_at" field to the value that was provided on create.
func (u *AppointmentUpsertBulk) UpdateFeedbackSubmittedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.UpdateFeedbackSubmittedAt()
	})
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (u *AppointmentUpsertBulk) ClearFeedbackSubmittedAt() *AppointmentUpsertBulk {
	return u.Update(func(s *AppointmentUpsert) {
		s.ClearFeedbackSubmittedAt()
	})
}

// Exec executes the query.
func (u *AppointmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the AppointmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for AppointmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AppointmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	"github.com/proflink/proflink_backend/internal/repo/user"
)

// AppointmentUpdate is the builder for updating Appointment entities.
type AppointmentUpdate struct {
	config
	hooks    []Hook
	mutation *AppointmentMutation
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdate) Where(ps ...predicate.Appointment) *AppointmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdate) SetUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AppointmentUpdate) SetStudentID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStudentID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetFacultyID sets the "faculty_id" field.
func (_u *AppointmentUpdate) SetFacultyID(v uuid.UUID) *AppointmentUpdate {
	_u.mutation.SetFacultyID(v)
	return _u
}

// SetNillableFacultyID sets the "faculty_id" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFacultyID(v *uuid.UUID) *AppointmentUpdate {
	if v != nil {
		_u.SetFacultyID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AppointmentUpdate) SetStudentName(v string) *AppointmentUpdate {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStudentName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentEmail sets the "student_email" field.
func (_u *AppointmentUpdate) SetStudentEmail(v string) *AppointmentUpdate {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStudentEmail(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetFacultyName sets the "faculty_name" field.
func (_u *AppointmentUpdate) SetFacultyName(v string) *AppointmentUpdate {
	_u.mutation.SetFacultyName(v)
	return _u
}

// SetNillableFacultyName sets the "faculty_name" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFacultyName(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetFacultyName(*v)
	}
	return _u
}

// SetFacultyEmail sets the "faculty_email" field.
func (_u *AppointmentUpdate) SetFacultyEmail(v string) *AppointmentUpdate {
	_u.mutation.SetFacultyEmail(v)
	return _u
}

// SetNillableFacultyEmail sets the "faculty_email" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFacultyEmail(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetFacultyEmail(*v)
	}
	return _u
}

// SetRescheduleTime sets the "reschedule_time" field.
func (_u *AppointmentUpdate) SetRescheduleTime(v time.Time) *AppointmentUpdate {
	_u.mutation.SetRescheduleTime(v)
	return _u
}

// SetNillableRescheduleTime sets the "reschedule_time" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableRescheduleTime(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetRescheduleTime(*v)
	}
	return _u
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (_u *AppointmentUpdate) ClearRescheduleTime() *AppointmentUpdate {
	_u.mutation.ClearRescheduleTime()
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdate) SetReason(v string) *AppointmentUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableReason(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdate) SetStatus(v appointment.Status) *AppointmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStatus(v *appointment.Status) *AppointmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMeetingLink sets the "meeting_link" field.
func (_u *AppointmentUpdate) SetMeetingLink(v string) *AppointmentUpdate {
	_u.mutation.SetMeetingLink(v)
	return _u
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableMeetingLink(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetMeetingLink(*v)
	}
	return _u
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (_u *AppointmentUpdate) ClearMeetingLink() *AppointmentUpdate {
	_u.mutation.ClearMeetingLink()
	return _u
}

// SetFacultyNotes sets the "faculty_notes" field.
func (_u *AppointmentUpdate) SetFacultyNotes(v string) *AppointmentUpdate {
	_u.mutation.SetFacultyNotes(v)
	return _u
}

// SetNillableFacultyNotes sets the "faculty_notes" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFacultyNotes(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetFacultyNotes(*v)
	}
	return _u
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (_u *AppointmentUpdate) ClearFacultyNotes() *AppointmentUpdate {
	_u.mutation.ClearFacultyNotes()
	return _u
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (_u *AppointmentUpdate) SetNotesUpdatedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetNotesUpdatedAt(v)
	return _u
}

// SetNillableNotesUpdatedAt sets the "notes_updated_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableNotesUpdatedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetNotesUpdatedAt(*v)
	}
	return _u
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (_u *AppointmentUpdate) ClearNotesUpdatedAt() *AppointmentUpdate {
	_u.mutation.ClearNotesUpdatedAt()
	return _u
}

// SetStudentFeedback sets the "student_feedback" field.
func (_u *AppointmentUpdate) SetStudentFeedback(v string) *AppointmentUpdate {
	_u.mutation.SetStudentFeedback(v)
	return _u
}

// SetNillableStudentFeedback sets the "student_feedback" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStudentFeedback(v *string) *AppointmentUpdate {
	if v != nil {
		_u.SetStudentFeedback(*v)
	}
	return _u
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (_u *AppointmentUpdate) ClearStudentFeedback() *AppointmentUpdate {
	_u.mutation.ClearStudentFeedback()
	return _u
}

// SetStudentRating sets the "student_rating" field.
func (_u *AppointmentUpdate) SetStudentRating(v int) *AppointmentUpdate {
	_u.mutation.ResetStudentRating()
	_u.mutation.SetStudentRating(v)
	return _u
}

// SetNillableStudentRating sets the "student_rating" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableStudentRating(v *int) *AppointmentUpdate {
	if v != nil {
		_u.SetStudentRating(*v)
	}
	return _u
}

// AddStudentRating adds value to the "student_rating" field.
func (_u *AppointmentUpdate) AddStudentRating(v int) *AppointmentUpdate {
	_u.mutation.AddStudentRating(v)
	return _u
}

// ClearStudentRating clears the value of the "student_rating" field.
func (_u *AppointmentUpdate) ClearStudentRating() *AppointmentUpdate {
	_u.mutation.ClearStudentRating()
	return _u
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (_u *AppointmentUpdate) SetFeedbackSubmittedAt(v time.Time) *AppointmentUpdate {
	_u.mutation.SetFeedbackSubmittedAt(v)
	return _u
}

// SetNillableFeedbackSubmittedAt sets the "feedback_submitted_at" field if the given value is not nil.
func (_u *AppointmentUpdate) SetNillableFeedbackSubmittedAt(v *time.Time) *AppointmentUpdate {
	if v != nil {
		_u.SetFeedbackSubmittedAt(*v)
	}
	return _u
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (_u *AppointmentUpdate) ClearFeedbackSubmittedAt() *AppointmentUpdate {
	_u.mutation.ClearFeedbackSubmittedAt()
	return _u
}

// SetStudent sets the "student" edge to the User entity.
func (_u *AppointmentUpdate) SetStudent(v *User) *AppointmentUpdate {
	return _u.SetStudentID(v.ID)
}

// SetFaculty sets the "faculty" edge to the User entity.
func (_u *AppointmentUpdate) SetFaculty(v *User) *AppointmentUpdate {
	return _u.SetFacultyID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdate) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *AppointmentUpdate) ClearStudent() *AppointmentUpdate {
	_u.mutation.ClearStudent()
	return _u
}

// ClearFaculty clears the "faculty" edge to the User entity.
func (_u *AppointmentUpdate) ClearFaculty() *AppointmentUpdate {
	_u.mutation.ClearFaculty()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AppointmentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AppointmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdate) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := appointment.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := appointment.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacultyName(); ok {
		if err := appointment.FacultyNameValidator(v); err != nil {
			return &ValidationError{Name: "faculty_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacultyEmail(); ok {
		if err := appointment.FacultyEmailValidator(v); err != nil {
			return &ValidationError{Name: "faculty_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := appointment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Appointment.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentRating(); ok {
		if err := appointment.StudentRatingValidator(v); err != nil {
			return &ValidationError{Name: "student_rating", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_rating": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.student"`)
	}
	if _u.mutation.FacultyCleared() && len(_u.mutation.FacultyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.faculty"`)
	}
	return nil
}

func (_u *AppointmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(appointment.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(appointment.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacultyName(); ok {
		_spec.SetField(appointment.FieldFacultyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacultyEmail(); ok {
		_spec.SetField(appointment.FieldFacultyEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RescheduleTime(); ok {
		_spec.SetField(appointment.FieldRescheduleTime, field.TypeTime, value)
	}
	if _u.mutation.RescheduleTimeCleared() {
		_spec.ClearField(appointment.FieldRescheduleTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
	}
	if _u.mutation.MeetingLinkCleared() {
		_spec.ClearField(appointment.FieldMeetingLink, field.TypeString)
	}
	if value, ok := _u.mutation.FacultyNotes(); ok {
		_spec.SetField(appointment.FieldFacultyNotes, field.TypeString, value)
	}
	if _u.mutation.FacultyNotesCleared() {
		_spec.ClearField(appointment.FieldFacultyNotes, field.TypeString)
	}
	if value, ok := _u.mutation.NotesUpdatedAt(); ok {
		_spec.SetField(appointment.FieldNotesUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NotesUpdatedAtCleared() {
		_spec.ClearField(appointment.FieldNotesUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StudentFeedback(); ok {
		_spec.SetField(appointment.FieldStudentFeedback, field.TypeString, value)
	}
	if _u.mutation.StudentFeedbackCleared() {
		_spec.ClearField(appointment.FieldStudentFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.StudentRating(); ok {
		_spec.SetField(appointment.FieldStudentRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentRating(); ok {
		_spec.AddField(appointment.FieldStudentRating, field.TypeInt, value)
	}
	if _u.mutation.StudentRatingCleared() {
		_spec.ClearField(appointment.FieldStudentRating, field.TypeInt)
	}
	if value, ok := _u.mutation.FeedbackSubmittedAt(); ok {
		_spec.SetField(appointment.FieldFeedbackSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.FeedbackSubmittedAtCleared() {
		_spec.ClearField(appointment.FieldFeedbackSubmittedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacultyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacultyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AppointmentUpdateOne is the builder for updating a single Appointment entity.
type AppointmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AppointmentMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AppointmentUpdateOne) SetUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AppointmentUpdateOne) SetStudentID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStudentID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetFacultyID sets the "faculty_id" field.
func (_u *AppointmentUpdateOne) SetFacultyID(v uuid.UUID) *AppointmentUpdateOne {
	_u.mutation.SetFacultyID(v)
	return _u
}

// SetNillableFacultyID sets the "faculty_id" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFacultyID(v *uuid.UUID) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFacultyID(*v)
	}
	return _u
}

// SetStudentName sets the "student_name" field.
func (_u *AppointmentUpdateOne) SetStudentName(v string) *AppointmentUpdateOne {
	_u.mutation.SetStudentName(v)
	return _u
}

// SetNillableStudentName sets the "student_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStudentName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStudentName(*v)
	}
	return _u
}

// SetStudentEmail sets the "student_email" field.
func (_u *AppointmentUpdateOne) SetStudentEmail(v string) *AppointmentUpdateOne {
	_u.mutation.SetStudentEmail(v)
	return _u
}

// SetNillableStudentEmail sets the "student_email" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStudentEmail(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStudentEmail(*v)
	}
	return _u
}

// SetFacultyName sets the "faculty_name" field.
func (_u *AppointmentUpdateOne) SetFacultyName(v string) *AppointmentUpdateOne {
	_u.mutation.SetFacultyName(v)
	return _u
}

// SetNillableFacultyName sets the "faculty_name" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFacultyName(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFacultyName(*v)
	}
	return _u
}

// SetFacultyEmail sets the "faculty_email" field.
func (_u *AppointmentUpdateOne) SetFacultyEmail(v string) *AppointmentUpdateOne {
	_u.mutation.SetFacultyEmail(v)
	return _u
}

// SetNillableFacultyEmail sets the "faculty_email" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFacultyEmail(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFacultyEmail(*v)
	}
	return _u
}

// SetRescheduleTime sets the "reschedule_time" field.
func (_u *AppointmentUpdateOne) SetRescheduleTime(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetRescheduleTime(v)
	return _u
}

// SetNillableRescheduleTime sets the "reschedule_time" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableRescheduleTime(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetRescheduleTime(*v)
	}
	return _u
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (_u *AppointmentUpdateOne) ClearRescheduleTime() *AppointmentUpdateOne {
	_u.mutation.ClearRescheduleTime()
	return _u
}

// SetReason sets the "reason" field.
func (_u *AppointmentUpdateOne) SetReason(v string) *AppointmentUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableReason(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AppointmentUpdateOne) SetStatus(v appointment.Status) *AppointmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStatus(v *appointment.Status) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetMeetingLink sets the "meeting_link" field.
func (_u *AppointmentUpdateOne) SetMeetingLink(v string) *AppointmentUpdateOne {
	_u.mutation.SetMeetingLink(v)
	return _u
}

// SetNillableMeetingLink sets the "meeting_link" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableMeetingLink(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetMeetingLink(*v)
	}
	return _u
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (_u *AppointmentUpdateOne) ClearMeetingLink() *AppointmentUpdateOne {
	_u.mutation.ClearMeetingLink()
	return _u
}

// SetFacultyNotes sets the "faculty_notes" field.
func (_u *AppointmentUpdateOne) SetFacultyNotes(v string) *AppointmentUpdateOne {
	_u.mutation.SetFacultyNotes(v)
	return _u
}

// SetNillableFacultyNotes sets the "faculty_notes" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFacultyNotes(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFacultyNotes(*v)
	}
	return _u
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (_u *AppointmentUpdateOne) ClearFacultyNotes() *AppointmentUpdateOne {
	_u.mutation.ClearFacultyNotes()
	return _u
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (_u *AppointmentUpdateOne) SetNotesUpdatedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetNotesUpdatedAt(v)
	return _u
}

// SetNillableNotesUpdatedAt sets the "notes_updated_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableNotesUpdatedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetNotesUpdatedAt(*v)
	}
	return _u
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (_u *AppointmentUpdateOne) ClearNotesUpdatedAt() *AppointmentUpdateOne {
	_u.mutation.ClearNotesUpdatedAt()
	return _u
}

// SetStudentFeedback sets the "student_feedback" field.
func (_u *AppointmentUpdateOne) SetStudentFeedback(v string) *AppointmentUpdateOne {
	_u.mutation.SetStudentFeedback(v)
	return _u
}

// SetNillableStudentFeedback sets the "student_feedback" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStudentFeedback(v *string) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStudentFeedback(*v)
	}
	return _u
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (_u *AppointmentUpdateOne) ClearStudentFeedback() *AppointmentUpdateOne {
	_u.mutation.ClearStudentFeedback()
	return _u
}

// SetStudentRating sets the "student_rating" field.
func (_u *AppointmentUpdateOne) SetStudentRating(v int) *AppointmentUpdateOne {
	_u.mutation.ResetStudentRating()
	_u.mutation.SetStudentRating(v)
	return _u
}

// SetNillableStudentRating sets the "student_rating" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableStudentRating(v *int) *AppointmentUpdateOne {
	if v != nil {
		_u.SetStudentRating(*v)
	}
	return _u
}

// AddStudentRating adds value to the "student_rating" field.
func (_u *AppointmentUpdateOne) AddStudentRating(v int) *AppointmentUpdateOne {
	_u.mutation.AddStudentRating(v)
	return _u
}

// ClearStudentRating clears the value of the "student_rating" field.
func (_u *AppointmentUpdateOne) ClearStudentRating() *AppointmentUpdateOne {
	_u.mutation.ClearStudentRating()
	return _u
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (_u *AppointmentUpdateOne) SetFeedbackSubmittedAt(v time.Time) *AppointmentUpdateOne {
	_u.mutation.SetFeedbackSubmittedAt(v)
	return _u
}

// SetNillableFeedbackSubmittedAt sets the "feedback_submitted_at" field if the given value is not nil.
func (_u *AppointmentUpdateOne) SetNillableFeedbackSubmittedAt(v *time.Time) *AppointmentUpdateOne {
	if v != nil {
		_u.SetFeedbackSubmittedAt(*v)
	}
	return _u
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (_u *AppointmentUpdateOne) ClearFeedbackSubmittedAt() *AppointmentUpdateOne {
	_u.mutation.ClearFeedbackSubmittedAt()
	return _u
}

// SetStudent sets the "student" edge to the User entity.
func (_u *AppointmentUpdateOne) SetStudent(v *User) *AppointmentUpdateOne {
	return _u.SetStudentID(v.ID)
}

// SetFaculty sets the "faculty" edge to the User entity.
func (_u *AppointmentUpdateOne) SetFaculty(v *User) *AppointmentUpdateOne {
	return _u.SetFacultyID(v.ID)
}

// Mutation returns the AppointmentMutation object of the builder.
func (_u *AppointmentUpdateOne) Mutation() *AppointmentMutation {
	return _u.mutation
}

// ClearStudent clears the "student" edge to the User entity.
func (_u *AppointmentUpdateOne) ClearStudent() *AppointmentUpdateOne {
	_u.mutation.ClearStudent()
	return _u
}

// ClearFaculty clears the "faculty" edge to the User entity.
func (_u *AppointmentUpdateOne) ClearFaculty() *AppointmentUpdateOne {
	_u.mutation.ClearFaculty()
	return _u
}

// Where appends a list predicates to the AppointmentUpdate builder.
func (_u *AppointmentUpdateOne) Where(ps ...predicate.Appointment) *AppointmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AppointmentUpdateOne) Select(field string, fields ...string) *AppointmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Appointment entity.
func (_u *AppointmentUpdateOne) Save(ctx context.Context) (*Appointment, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AppointmentUpdateOne) SaveX(ctx context.Context) *Appointment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AppointmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AppointmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AppointmentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := appointment.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AppointmentUpdateOne) check() error {
	if v, ok := _u.mutation.StudentName(); ok {
		if err := appointment.StudentNameValidator(v); err != nil {
			return &ValidationError{Name: "student_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentEmail(); ok {
		if err := appointment.StudentEmailValidator(v); err != nil {
			return &ValidationError{Name: "student_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacultyName(); ok {
		if err := appointment.FacultyNameValidator(v); err != nil {
			return &ValidationError{Name: "faculty_name", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FacultyEmail(); ok {
		if err := appointment.FacultyEmailValidator(v); err != nil {
			return &ValidationError{Name: "faculty_email", err: fmt.Errorf(`repo: validator failed for field "Appointment.faculty_email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := appointment.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "Appointment.reason": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := appointment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Appointment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MeetingLink(); ok {
		if err := appointment.MeetingLinkValidator(v); err != nil {
			return &ValidationError{Name: "meeting_link", err: fmt.Errorf(`repo: validator failed for field "Appointment.meeting_link": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StudentRating(); ok {
		if err := appointment.StudentRatingValidator(v); err != nil {
			return &ValidationError{Name: "student_rating", err: fmt.Errorf(`repo: validator failed for field "Appointment.student_rating": %w`, err)}
		}
	}
	if _u.mutation.StudentCleared() && len(_u.mutation.StudentIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.student"`)
	}
	if _u.mutation.FacultyCleared() && len(_u.mutation.FacultyIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Appointment.faculty"`)
	}
	return nil
}

func (_u *AppointmentUpdateOne) sqlSave(ctx context.Context) (_node *Appointment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(appointment.Table, appointment.Columns, sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Appointment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, appointment.FieldID)
		for _, f := range fields {
			if !appointment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != appointment.FieldID {
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
		_spec.SetField(appointment.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StudentName(); ok {
		_spec.SetField(appointment.FieldStudentName, field.TypeString, value)
	}
	if value, ok := _u.mutation.StudentEmail(); ok {
		_spec.SetField(appointment.FieldStudentEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacultyName(); ok {
		_spec.SetField(appointment.FieldFacultyName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FacultyEmail(); ok {
		_spec.SetField(appointment.FieldFacultyEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.RescheduleTime(); ok {
		_spec.SetField(appointment.FieldRescheduleTime, field.TypeTime, value)
	}
	if _u.mutation.RescheduleTimeCleared() {
		_spec.ClearField(appointment.FieldRescheduleTime, field.TypeTime)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(appointment.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(appointment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.MeetingLink(); ok {
		_spec.SetField(appointment.FieldMeetingLink, field.TypeString, value)
	}
	if _u.mutation.MeetingLinkCleared() {
		_spec.ClearField(appointment.FieldMeetingLink, field.TypeString)
	}
	if value, ok := _u.mutation.FacultyNotes(); ok {
		_spec.SetField(appointment.FieldFacultyNotes, field.TypeString, value)
	}
	if _u.mutation.FacultyNotesCleared() {
		_spec.ClearField(appointment.FieldFacultyNotes, field.TypeString)
	}
	if value, ok := _u.mutation.NotesUpdatedAt(); ok {
		_spec.SetField(appointment.FieldNotesUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.NotesUpdatedAtCleared() {
		_spec.ClearField(appointment.FieldNotesUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StudentFeedback(); ok {
		_spec.SetField(appointment.FieldStudentFeedback, field.TypeString, value)
	}
	if _u.mutation.StudentFeedbackCleared() {
		_spec.ClearField(appointment.FieldStudentFeedback, field.TypeString)
	}
	if value, ok := _u.mutation.StudentRating(); ok {
		_spec.SetField(appointment.FieldStudentRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStudentRating(); ok {
		_spec.AddField(appointment.FieldStudentRating, field.TypeInt, value)
	}
	if _u.mutation.StudentRatingCleared() {
		_spec.ClearField(appointment.FieldStudentRating, field.TypeInt)
	}
	if value, ok := _u.mutation.FeedbackSubmittedAt(); ok {
		_spec.SetField(appointment.FieldFeedbackSubmittedAt, field.TypeTime, value)
	}
	if _u.mutation.FeedbackSubmittedAtCleared() {
		_spec.ClearField(appointment.FieldFeedbackSubmittedAt, field.TypeTime)
	}
	if _u.mutation.StudentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StudentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FacultyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FacultyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Appointment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{appointment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

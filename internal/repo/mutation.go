// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/directoryentry"
	"github.com/proflink/proflink_backend/internal/repo/facultyprofile"
	"github.com/proflink/proflink_backend/internal/repo/notification"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	"github.com/proflink/proflink_backend/internal/repo/rolecounter"
	"github.com/proflink/proflink_backend/internal/repo/studentprofile"
	"github.com/proflink/proflink_backend/internal/repo/user"
	"github.com/proflink/proflink_backend/internal/repo/usersession"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAppointment    = "Appointment"
	TypeDirectoryEntry = "DirectoryEntry"
	TypeFacultyProfile = "FacultyProfile"
	TypeNotification   = "Notification"
	TypeRoleCounter    = "RoleCounter"
	TypeStudentProfile = "StudentProfile"
	TypeUser           = "User"
	TypeUserSession    = "UserSession"
)

// AppointmentMutation represents an operation that mutates the Appointment nodes in the graph.
type AppointmentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	created_at            *time.Time
	updated_at            *time.Time
	student_name          *string
	student_email         *string
	faculty_name          *string
	faculty_email         *string
	requested_time        *time.Time
	reschedule_time       *time.Time
	reason                *string
	status                *appointment.Status
	meeting_link          *string
	faculty_notes         *string
	notes_updated_at      *time.Time
	student_feedback      *string
	student_rating        *int
	addstudent_rating     *int
	feedback_submitted_at *time.Time
	clearedFields         map[string]struct{}
	student               *uuid.UUID
	clearedstudent        bool
	faculty               *uuid.UUID
	clearedfaculty        bool
	done                  bool
	oldValue              func(context.Context) (*Appointment, error)
	predicates            []predicate.Appointment
}

var _ ent.Mutation = (*AppointmentMutation)(nil)

// appointmentOption allows management of the mutation configuration using functional options.
type appointmentOption func(*AppointmentMutation)

// newAppointmentMutation creates new mutation for the Appointment entity.
func newAppointmentMutation(c config, op Op, opts ...appointmentOption) *AppointmentMutation {
	m := &AppointmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAppointment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAppointmentID sets the ID field of the mutation.
func withAppointmentID(id uuid.UUID) appointmentOption {
	return func(m *AppointmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Appointment
		)
		m.oldValue = func(ctx context.Context) (*Appointment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Appointment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAppointment sets the old Appointment of the mutation.
func withAppointment(node *Appointment) appointmentOption {
	return func(m *AppointmentMutation) {
		m.oldValue = func(context.Context) (*Appointment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AppointmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AppointmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Appointment entities.
func (m *AppointmentMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AppointmentMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AppointmentMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Appointment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *AppointmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AppointmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AppointmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AppointmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AppointmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AppointmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetStudentID sets the "student_id" field.
func (m *AppointmentMutation) SetStudentID(u uuid.UUID) {
	m.student = &u
}

// StudentID returns the value of the "student_id" field in the mutation.
func (m *AppointmentMutation) StudentID() (r uuid.UUID, exists bool) {
	v := m.student
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentID returns the old "student_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStudentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentID: %w", err)
	}
	return oldValue.StudentID, nil
}

// ResetStudentID resets all changes to the "student_id" field.
func (m *AppointmentMutation) ResetStudentID() {
	m.student = nil
}

// SetFacultyID sets the "faculty_id" field.
func (m *AppointmentMutation) SetFacultyID(u uuid.UUID) {
	m.faculty = &u
}

// FacultyID returns the value of the "faculty_id" field in the mutation.
func (m *AppointmentMutation) FacultyID() (r uuid.UUID, exists bool) {
	v := m.faculty
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyID returns the old "faculty_id" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldFacultyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyID: %w", err)
	}
	return oldValue.FacultyID, nil
}

// ResetFacultyID resets all changes to the "faculty_id" field.
func (m *AppointmentMutation) ResetFacultyID() {
	m.faculty = nil
}

// SetStudentName sets the "student_name" field.
func (m *AppointmentMutation) SetStudentName(s string) {
	m.student_name = &s
}

// StudentName returns the value of the "student_name" field in the mutation.
func (m *AppointmentMutation) StudentName() (r string, exists bool) {
	v := m.student_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentName returns the old "student_name" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStudentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentName: %w", err)
	}
	return oldValue.StudentName, nil
}

// ResetStudentName resets all changes to the "student_name" field.
func (m *AppointmentMutation) ResetStudentName() {
	m.student_name = nil
}

// SetStudentEmail sets the "student_email" field.
func (m *AppointmentMutation) SetStudentEmail(s string) {
	m.student_email = &s
}

// StudentEmail returns the value of the "student_email" field in the mutation.
func (m *AppointmentMutation) StudentEmail() (r string, exists bool) {
	v := m.student_email
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentEmail returns the old "student_email" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStudentEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentEmail: %w", err)
	}
	return oldValue.StudentEmail, nil
}

// ResetStudentEmail resets all changes to the "student_email" field.
func (m *AppointmentMutation) ResetStudentEmail() {
	m.student_email = nil
}

// SetFacultyName sets the "faculty_name" field.
func (m *AppointmentMutation) SetFacultyName(s string) {
	m.faculty_name = &s
}

// FacultyName returns the value of the "faculty_name" field in the mutation.
func (m *AppointmentMutation) FacultyName() (r string, exists bool) {
	v := m.faculty_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyName returns the old "faculty_name" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldFacultyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyName: %w", err)
	}
	return oldValue.FacultyName, nil
}

// ResetFacultyName resets all changes to the "faculty_name" field.
func (m *AppointmentMutation) ResetFacultyName() {
	m.faculty_name = nil
}

// SetFacultyEmail sets the "faculty_email" field.
func (m *AppointmentMutation) SetFacultyEmail(s string) {
	m.faculty_email = &s
}

// FacultyEmail returns the value of the "faculty_email" field in the mutation.
func (m *AppointmentMutation) FacultyEmail() (r string, exists bool) {
	v := m.faculty_email
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyEmail returns the old "faculty_email" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldFacultyEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyEmail: %w", err)
	}
	return oldValue.FacultyEmail, nil
}

// ResetFacultyEmail resets all changes to the "faculty_email" field.
func (m *AppointmentMutation) ResetFacultyEmail() {
	m.faculty_email = nil
}

// SetRequestedTime sets the "requested_time" field.
func (m *AppointmentMutation) SetRequestedTime(t time.Time) {
	m.requested_time = &t
}

// RequestedTime returns the value of the "requested_time" field in the mutation.
func (m *AppointmentMutation) RequestedTime() (r time.Time, exists bool) {
	v := m.requested_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestedTime returns the old "requested_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldRequestedTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestedTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestedTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestedTime: %w", err)
	}
	return oldValue.RequestedTime, nil
}

// ResetRequestedTime resets all changes to the "requested_time" field.
func (m *AppointmentMutation) ResetRequestedTime() {
	m.requested_time = nil
}

// SetRescheduleTime sets the "reschedule_time" field.
func (m *AppointmentMutation) SetRescheduleTime(t time.Time) {
	m.reschedule_time = &t
}

// RescheduleTime returns the value of the "reschedule_time" field in the mutation.
func (m *AppointmentMutation) RescheduleTime() (r time.Time, exists bool) {
	v := m.reschedule_time
	if v == nil {
		return
	}
	return *v, true
}

// OldRescheduleTime returns the old "reschedule_time" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldRescheduleTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRescheduleTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRescheduleTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRescheduleTime: %w", err)
	}
	return oldValue.RescheduleTime, nil
}

// ClearRescheduleTime clears the value of the "reschedule_time" field.
func (m *AppointmentMutation) ClearRescheduleTime() {
	m.reschedule_time = nil
	m.clearedFields[appointment.FieldRescheduleTime] = struct{}{}
}

// RescheduleTimeCleared returns if the "reschedule_time" field was cleared in this mutation.
func (m *AppointmentMutation) RescheduleTimeCleared() bool {
	_, ok := m.clearedFields[appointment.FieldRescheduleTime]
	return ok
}

// ResetRescheduleTime resets all changes to the "reschedule_time" field.
func (m *AppointmentMutation) ResetRescheduleTime() {
	m.reschedule_time = nil
	delete(m.clearedFields, appointment.FieldRescheduleTime)
}

// SetReason sets the "reason" field.
func (m *AppointmentMutation) SetReason(s string) {
	m.reason = &s
}

// Reason returns the value of the "reason" field in the mutation.
func (m *AppointmentMutation) Reason() (r string, exists bool) {
	v := m.reason
	if v == nil {
		return
	}
	return *v, true
}

// OldReason returns the old "reason" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReason: %w", err)
	}
	return oldValue.Reason, nil
}

// ResetReason resets all changes to the "reason" field.
func (m *AppointmentMutation) ResetReason() {
	m.reason = nil
}

// SetStatus sets the "status" field.
func (m *AppointmentMutation) SetStatus(a appointment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AppointmentMutation) Status() (r appointment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStatus(ctx context.Context) (v appointment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AppointmentMutation) ResetStatus() {
	m.status = nil
}

// SetMeetingLink sets the "meeting_link" field.
func (m *AppointmentMutation) SetMeetingLink(s string) {
	m.meeting_link = &s
}

// MeetingLink returns the value of the "meeting_link" field in the mutation.
func (m *AppointmentMutation) MeetingLink() (r string, exists bool) {
	v := m.meeting_link
	if v == nil {
		return
	}
	return *v, true
}

// OldMeetingLink returns the old "meeting_link" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldMeetingLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeetingLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeetingLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeetingLink: %w", err)
	}
	return oldValue.MeetingLink, nil
}

// ClearMeetingLink clears the value of the "meeting_link" field.
func (m *AppointmentMutation) ClearMeetingLink() {
	m.meeting_link = nil
	m.clearedFields[appointment.FieldMeetingLink] = struct{}{}
}

// MeetingLinkCleared returns if the "meeting_link" field was cleared in this mutation.
func (m *AppointmentMutation) MeetingLinkCleared() bool {
	_, ok := m.clearedFields[appointment.FieldMeetingLink]
	return ok
}

// ResetMeetingLink resets all changes to the "meeting_link" field.
func (m *AppointmentMutation) ResetMeetingLink() {
	m.meeting_link = nil
	delete(m.clearedFields, appointment.FieldMeetingLink)
}

// SetFacultyNotes sets the "faculty_notes" field.
func (m *AppointmentMutation) SetFacultyNotes(s string) {
	m.faculty_notes = &s
}

// FacultyNotes returns the value of the "faculty_notes" field in the mutation.
func (m *AppointmentMutation) FacultyNotes() (r string, exists bool) {
	v := m.faculty_notes
	if v == nil {
		return
	}
	return *v, true
}

// OldFacultyNotes returns the old "faculty_notes" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldFacultyNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacultyNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacultyNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacultyNotes: %w", err)
	}
	return oldValue.FacultyNotes, nil
}

// ClearFacultyNotes clears the value of the "faculty_notes" field.
func (m *AppointmentMutation) ClearFacultyNotes() {
	m.faculty_notes = nil
	m.clearedFields[appointment.FieldFacultyNotes] = struct{}{}
}

// FacultyNotesCleared returns if the "faculty_notes" field was cleared in this mutation.
func (m *AppointmentMutation) FacultyNotesCleared() bool {
	_, ok := m.clearedFields[appointment.FieldFacultyNotes]
	return ok
}

// ResetFacultyNotes resets all changes to the "faculty_notes" field.
func (m *AppointmentMutation) ResetFacultyNotes() {
	m.faculty_notes = nil
	delete(m.clearedFields, appointment.FieldFacultyNotes)
}

// SetNotesUpdatedAt sets the "notes_updated_at" field.
func (m *AppointmentMutation) SetNotesUpdatedAt(t time.Time) {
	m.notes_updated_at = &t
}

// NotesUpdatedAt returns the value of the "notes_updated_at" field in the mutation.
func (m *AppointmentMutation) NotesUpdatedAt() (r time.Time, exists bool) {
	v := m.notes_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNotesUpdatedAt returns the old "notes_updated_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldNotesUpdatedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotesUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotesUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotesUpdatedAt: %w", err)
	}
	return oldValue.NotesUpdatedAt, nil
}

// ClearNotesUpdatedAt clears the value of the "notes_updated_at" field.
func (m *AppointmentMutation) ClearNotesUpdatedAt() {
	m.notes_updated_at = nil
	m.clearedFields[appointment.FieldNotesUpdatedAt] = struct{}{}
}

// NotesUpdatedAtCleared returns if the "notes_updated_at" field was cleared in this mutation.
func (m *AppointmentMutation) NotesUpdatedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldNotesUpdatedAt]
	return ok
}

// ResetNotesUpdatedAt resets all changes to the "notes_updated_at" field.
func (m *AppointmentMutation) ResetNotesUpdatedAt() {
	m.notes_updated_at = nil
	delete(m.clearedFields, appointment.FieldNotesUpdatedAt)
}

// SetStudentFeedback sets the "student_feedback" field.
func (m *AppointmentMutation) SetStudentFeedback(s string) {
	m.student_feedback = &s
}

// StudentFeedback returns the value of the "student_feedback" field in the mutation.
func (m *AppointmentMutation) StudentFeedback() (r string, exists bool) {
	v := m.student_feedback
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentFeedback returns the old "student_feedback" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStudentFeedback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentFeedback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentFeedback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentFeedback: %w", err)
	}
	return oldValue.StudentFeedback, nil
}

// ClearStudentFeedback clears the value of the "student_feedback" field.
func (m *AppointmentMutation) ClearStudentFeedback() {
	m.student_feedback = nil
	m.clearedFields[appointment.FieldStudentFeedback] = struct{}{}
}

// StudentFeedbackCleared returns if the "student_feedback" field was cleared in this mutation.
func (m *AppointmentMutation) StudentFeedbackCleared() bool {
	_, ok := m.clearedFields[appointment.FieldStudentFeedback]
	return ok
}

// ResetStudentFeedback resets all changes to the "student_feedback" field.
func (m *AppointmentMutation) ResetStudentFeedback() {
	m.student_feedback = nil
	delete(m.clearedFields, appointment.FieldStudentFeedback)
}

// SetStudentRating sets the "student_rating" field.
func (m *AppointmentMutation) SetStudentRating(i int) {
	m.student_rating = &i
	m.addstudent_rating = nil
}

// StudentRating returns the value of the "student_rating" field in the mutation.
func (m *AppointmentMutation) StudentRating() (r int, exists bool) {
	v := m.student_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentRating returns the old "student_rating" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldStudentRating(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentRating: %w", err)
	}
	return oldValue.StudentRating, nil
}

// AddStudentRating adds i to the "student_rating" field.
func (m *AppointmentMutation) AddStudentRating(i int) {
	if m.addstudent_rating != nil {
		*m.addstudent_rating += i
	} else {
		m.addstudent_rating = &i
	}
}

// AddedStudentRating returns the value that was added to the "student_rating" field in this mutation.
func (m *AppointmentMutation) AddedStudentRating() (r int, exists bool) {
	v := m.addstudent_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearStudentRating clears the value of the "student_rating" field.
func (m *AppointmentMutation) ClearStudentRating() {
	m.student_rating = nil
	m.addstudent_rating = nil
	m.clearedFields[appointment.FieldStudentRating] = struct{}{}
}

// StudentRatingCleared returns if the "student_rating" field was cleared in this mutation.
func (m *AppointmentMutation) StudentRatingCleared() bool {
	_, ok := m.clearedFields[appointment.FieldStudentRating]
	return ok
}

// ResetStudentRating resets all changes to the "student_rating" field.
func (m *AppointmentMutation) ResetStudentRating() {
	m.student_rating = nil
	m.addstudent_rating = nil
	delete(m.clearedFields, appointment.FieldStudentRating)
}

// SetFeedbackSubmittedAt sets the "feedback_submitted_at" field.
func (m *AppointmentMutation) SetFeedbackSubmittedAt(t time.Time) {
	m.feedback_submitted_at = &t
}

// FeedbackSubmittedAt returns the value of the "feedback_submitted_at" field in the mutation.
func (m *AppointmentMutation) FeedbackSubmittedAt() (r time.Time, exists bool) {
	v := m.feedback_submitted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFeedbackSubmittedAt returns the old "feedback_submitted_at" field's value of the Appointment entity.
// If the Appointment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AppointmentMutation) OldFeedbackSubmittedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeedbackSubmittedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeedbackSubmittedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeedbackSubmittedAt: %w", err)
	}
	return oldValue.FeedbackSubmittedAt, nil
}

// ClearFeedbackSubmittedAt clears the value of the "feedback_submitted_at" field.
func (m *AppointmentMutation) ClearFeedbackSubmittedAt() {
	m.feedback_submitted_at = nil
	m.clearedFields[appointment.FieldFeedbackSubmittedAt] = struct{}{}
}

// FeedbackSubmittedAtCleared returns if the "feedback_submitted_at" field was cleared in this mutation.
func (m *AppointmentMutation) FeedbackSubmittedAtCleared() bool {
	_, ok := m.clearedFields[appointment.FieldFeedbackSubmittedAt]
	return ok
}

// ResetFeedbackSubmittedAt resets all changes to the "feedback_submitted_at" field.
func (m *AppointmentMutation) ResetFeedbackSubmittedAt() {
	m.feedback_submitted_at = nil
	delete(m.clearedFields, appointment.FieldFeedbackSubmittedAt)
}

// ClearStudent clears the "student" edge to the User entity.
func (m *AppointmentMutation) ClearStudent() {
	m.clearedstudent = true
	m.clearedFields[appointment.FieldStudentID] = struct{}{}
}

// StudentCleared reports if the "student" edge to the User entity was cleared.
func (m *AppointmentMutation) StudentCleared() bool {
	return m.clearedstudent
}

// StudentIDs returns the "student" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// StudentID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) StudentIDs() (ids []uuid.UUID) {
	if id := m.student; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetStudent resets all changes to the "student" edge.
func (m *AppointmentMutation) ResetStudent() {
	m.student = nil
	m.clearedstudent = false
}

// ClearFaculty clears the "faculty" edge to the User entity.
func (m *AppointmentMutation) ClearFaculty() {
	m.clearedfaculty = true
	m.clearedFields[appointment.FieldFacultyID] = struct{}{}
}

// FacultyCleared reports if the "faculty" edge to the User entity was cleared.
func (m *AppointmentMutation) FacultyCleared() bool {
	return m.clearedfaculty
}

// FacultyIDs returns the "faculty" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FacultyID instead. It exists only for internal usage by the builders.
func (m *AppointmentMutation) FacultyIDs() (ids []uuid.UUID) {
	if id := m.faculty; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFaculty resets all changes to the "faculty" edge.
func (m *AppointmentMutation) ResetFaculty() {
	m.faculty = nil
	m.clearedfaculty = false
}

// Where appends a list predicates to the AppointmentMutation builder.
func (m *AppointmentMutation) Where(ps ...predicate.Appointment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AppointmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AppointmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Appointment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AppointmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AppointmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Appointment).
func (m *AppointmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AppointmentMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.created_at != nil {
		fields = append(fields, appointment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, appointment.FieldUpdatedAt)
	}
	if m.student != nil {
		fields = append(fields, appointment.FieldStudentID)
	}
	if m.faculty != nil {
		fields = append(fields, appointment.FieldFacultyID)
	}
	if m.student_name != nil {
		fields = append(fields, appointment.FieldStudentName)
	}
	if m.student_email != nil {
		fields = append(fields, appointment.FieldStudentEmail)
	}
	if m.faculty_name != nil {
		fields = append(fields, appointment.FieldFacultyName)
	}
	if m.faculty_email != nil {
		fields = append(fields, appointment.FieldFacultyEmail)
	}
	if m.requested_time != nil {
		fields = append(fields, appointment.FieldRequestedTime)
	}
	if m.reschedule_time != nil {
		fields = append(fields, appointment.FieldRescheduleTime)
	}
	if m.reason != nil {
		fields = append(fields, appointment.FieldReason)
	}
	if m.status != nil {
		fields = append(fields, appointment.FieldStatus)
	}
	if m.meeting_link != nil {
		fields = append(fields, appointment.FieldMeetingLink)
	}
	if m.faculty_notes != nil {
		fields = append(fields, appointment.FieldFacultyNotes)
	}
	if m.notes_updated_at != nil {
		fields = append(fields, appointment.FieldNotesUpdatedAt)
	}
	if m.student_feedback != nil {
		fields = append(fields, appointment.FieldStudentFeedback)
	}
	if m.student_rating != nil {
		fields = append(fields, appointment.FieldStudentRating)
	}
	if m.feedback_submitted_at != nil {
		fields = append(fields, appointment.FieldFeedbackSubmittedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AppointmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.CreatedAt()
	case appointment.FieldUpdatedAt:
		return m.UpdatedAt()
	case appointment.FieldStudentID:
		return m.StudentID()
	case appointment.FieldFacultyID:
		return m.FacultyID()
	case appointment.FieldStudentName:
		return m.StudentName()
	case appointment.FieldStudentEmail:
		return m.StudentEmail()
	case appointment.FieldFacultyName:
		return m.FacultyName()
	case appointment.FieldFacultyEmail:
		return m.FacultyEmail()
	case appointment.FieldRequestedTime:
		return m.RequestedTime()
	case appointment.FieldRescheduleTime:
		return m.RescheduleTime()
	case appointment.FieldReason:
		return m.Reason()
	case appointment.FieldStatus:
		return m.Status()
	case appointment.FieldMeetingLink:
		return m.MeetingLink()
	case appointment.FieldFacultyNotes:
		return m.FacultyNotes()
	case appointment.FieldNotesUpdatedAt:
		return m.NotesUpdatedAt()
	case appointment.FieldStudentFeedback:
		return m.StudentFeedback()
	case appointment.FieldStudentRating:
		return m.StudentRating()
	case appointment.FieldFeedbackSubmittedAt:
		return m.FeedbackSubmittedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AppointmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case appointment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case appointment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case appointment.FieldStudentID:
		return m.OldStudentID(ctx)
	case appointment.FieldFacultyID:
		return m.OldFacultyID(ctx)
	case appointment.FieldStudentName:
		return m.OldStudentName(ctx)
	case appointment.FieldStudentEmail:
		return m.OldStudentEmail(ctx)
	case appointment.FieldFacultyName:
		return m.OldFacultyName(ctx)
	case appointment.FieldFacultyEmail:
		return m.OldFacultyEmail(ctx)
	case appointment.FieldRequestedTime:
		return m.OldRequestedTime(ctx)
	case appointment.FieldRescheduleTime:
		return m.OldRescheduleTime(ctx)
	case appointment.FieldReason:
		return m.OldReason(ctx)
	case appointment.FieldStatus:
		return m.OldStatus(ctx)
	case appointment.FieldMeetingLink:
		return m.OldMeetingLink(ctx)
	case appointment.FieldFacultyNotes:
		return m.OldFacultyNotes(ctx)
	case appointment.FieldNotesUpdatedAt:
		return m.OldNotesUpdatedAt(ctx)
	case appointment.FieldStudentFeedback:
		return m.OldStudentFeedback(ctx)
	case appointment.FieldStudentRating:
		return m.OldStudentRating(ctx)
	case appointment.FieldFeedbackSubmittedAt:
		return m.OldFeedbackSubmittedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Appointment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case appointment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case appointment.FieldStudentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentID(v)
		return nil
	case appointment.FieldFacultyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyID(v)
		return nil
	case appointment.FieldStudentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentName(v)
		return nil
	case appointment.FieldStudentEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentEmail(v)
		return nil
	case appointment.FieldFacultyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyName(v)
		return nil
	case appointment.FieldFacultyEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyEmail(v)
		return nil
	case appointment.FieldRequestedTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestedTime(v)
		return nil
	case appointment.FieldRescheduleTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRescheduleTime(v)
		return nil
	case appointment.FieldReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReason(v)
		return nil
	case appointment.FieldStatus:
		v, ok := value.(appointment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case appointment.FieldMeetingLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeetingLink(v)
		return nil
	case appointment.FieldFacultyNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacultyNotes(v)
		return nil
	case appointment.FieldNotesUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotesUpdatedAt(v)
		return nil
	case appointment.FieldStudentFeedback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentFeedback(v)
		return nil
	case appointment.FieldStudentRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentRating(v)
		return nil
	case appointment.FieldFeedbackSubmittedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeedbackSubmittedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AppointmentMutation) AddedFields() []string {
	var fields []string
	if m.addstudent_rating != nil {
		fields = append(fields, appointment.FieldStudentRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AppointmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case appointment.FieldStudentRating:
		return m.AddedStudentRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AppointmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case appointment.FieldStudentRating:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStudentRating(v)
		return nil
	}
	return fmt.Errorf("unknown Appointment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AppointmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(appointment.FieldRescheduleTime) {
		fields = append(fields, appointment.FieldRescheduleTime)
	}
	if m.FieldCleared(appointment.FieldMeetingLink) {
		fields = append(fields, appointment.FieldMeetingLink)
	}
	if m.FieldCleared(appointment.FieldFacultyNotes) {
		fields = append(fields, appointment.FieldFacultyNotes)
	}
	if m.FieldCleared(appointment.FieldNotesUpdatedAt) {
		fields = append(fields, appointment.FieldNotesUpdatedAt)
	}
	if m.FieldCleared(appointment.FieldStudentFeedback) {
		fields = append(fields, appointment.FieldStudentFeedback)
	}
	if m.FieldCleared(appointment.FieldStudentRating) {
		fields = append(fields, appointment.FieldStudentRating)
	}
	if m.FieldCleared(appointment.FieldFeedbackSubmittedAt) {
		fields = append(fields, appointment.FieldFeedbackSubmittedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AppointmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AppointmentMutation) ClearField(name string) error {
	switch name {
	case appointment.FieldRescheduleTime:
		m.ClearRescheduleTime()
		return nil
	case appointment.FieldMeetingLink:
		m.ClearMeetingLink()
		return nil
	case appointment.FieldFacultyNotes:
		m.ClearFacultyNotes()
		return nil
	case appointment.FieldNotesUpdatedAt:
		m.ClearNotesUpdatedAt()
		return nil
	case appointment.FieldStudentFeedback:
		m.ClearStudentFeedback()
		return nil
	case appointment.FieldStudentRating:
		m.ClearStudentRating()
		return nil
	case appointment.FieldFeedbackSubmittedAt:
		m.ClearFeedbackSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AppointmentMutation) ResetField(name string) error {
	switch name {
	case appointment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case appointment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case appointment.FieldStudentID:
		m.ResetStudentID()
		return nil
	case appointment.FieldFacultyID:
		m.ResetFacultyID()
		return nil
	case appointment.FieldStudentName:
		m.ResetStudentName()
		return nil
	case appointment.FieldStudentEmail:
		m.ResetStudentEmail()
		return nil
	case appointment.FieldFacultyName:
		m.ResetFacultyName()
		return nil
	case appointment.FieldFacultyEmail:
		m.ResetFacultyEmail()
		return nil
	case appointment.FieldRequestedTime:
		m.ResetRequestedTime()
		return nil
	case appointment.FieldRescheduleTime:
		m.ResetRescheduleTime()
		return nil
	case appointment.FieldReason:
		m.ResetReason()
		return nil
	case appointment.FieldStatus:
		m.ResetStatus()
		return nil
	case appointment.FieldMeetingLink:
		m.ResetMeetingLink()
		return nil
	case appointment.FieldFacultyNotes:
		m.ResetFacultyNotes()
		return nil
	case appointment.FieldNotesUpdatedAt:
		m.ResetNotesUpdatedAt()
		return nil
	case appointment.FieldStudentFeedback:
		m.ResetStudentFeedback()
		return nil
	case appointment.FieldStudentRating:
		m.ResetStudentRating()
		return nil
	case appointment.FieldFeedbackSubmittedAt:
		m.ResetFeedbackSubmittedAt()
		return nil
	}
	return fmt.Errorf("unknown Appointment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AppointmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.student != nil {
		edges = append(edges, appointment.EdgeStudent)
	}
	if m.faculty != nil {
		edges = append(edges, appointment.EdgeFaculty)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AppointmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case appointment.EdgeStudent:
		if id := m.student; id != nil {
			return []ent.Value{*id}
		}
	case appointment.EdgeFaculty:
		if id := m.faculty; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AppointmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AppointmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AppointmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedstudent {
		edges = append(edges, appointment.EdgeStudent)
	}
	if m.clearedfaculty {
		edges = append(edges, appointment.EdgeFaculty)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AppointmentMutation) EdgeCleared(name string) bool {
	switch name {
	case appointment.EdgeStudent:
		return m.clearedstudent
	case appointment.EdgeFaculty:
		return m.clearedfaculty
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AppointmentMutation) ClearEdge(name string) error {
	switch name {
	case appointment.EdgeStudent:
		m.ClearStudent()
		return nil
	case appointment.EdgeFaculty:
		m.ClearFaculty()
		return nil
	}
	return fmt.Errorf("unknown Appointment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AppointmentMutation) ResetEdge(name string) error {
	switch name {
	case appointment.EdgeStudent:
		m.ResetStudent()
		return nil
	case appointment.EdgeFaculty:
		m.ResetFaculty()
		return nil
	}
	return fmt.Errorf("unknown Appointment edge %s", name)
}

// DirectoryEntryMutation represents an operation that mutates the DirectoryEntry nodes in the graph.
type DirectoryEntryMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	name          *string
	email         *string
	role          *string
	title         *string
	department    *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*DirectoryEntry, error)
	predicates    []predicate.DirectoryEntry
}

var _ ent.Mutation = (*DirectoryEntryMutation)(nil)

// directoryentryOption allows management of the mutation configuration using functional options.
type directoryentryOption func(*DirectoryEntryMutation)

// newDirectoryEntryMutation creates new mutation for the DirectoryEntry entity.
func newDirectoryEntryMutation(c config, op Op, opts ...directoryentryOption) *DirectoryEntryMutation {
	m := &DirectoryEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeDirectoryEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDirectoryEntryID sets the ID field of the mutation.
func withDirectoryEntryID(id uuid.UUID) directoryentryOption {
	return func(m *DirectoryEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *DirectoryEntry
		)
		m.oldValue = func(ctx context.Context) (*DirectoryEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DirectoryEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDirectoryEntry sets the old DirectoryEntry of the mutation.
func withDirectoryEntry(node *DirectoryEntry) directoryentryOption {
	return func(m *DirectoryEntryMutation) {
		m.oldValue = func(context.Context) (*DirectoryEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DirectoryEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DirectoryEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DirectoryEntry entities.
func (m *DirectoryEntryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DirectoryEntryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DirectoryEntryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DirectoryEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DirectoryEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DirectoryEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DirectoryEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DirectoryEntryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DirectoryEntryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DirectoryEntryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DirectoryEntryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DirectoryEntryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DirectoryEntryMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *DirectoryEntryMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *DirectoryEntryMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *DirectoryEntryMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *DirectoryEntryMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *DirectoryEntryMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *DirectoryEntryMutation) ResetRole() {
	m.role = nil
}

// SetTitle sets the "title" field.
func (m *DirectoryEntryMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *DirectoryEntryMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *DirectoryEntryMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[directoryentry.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *DirectoryEntryMutation) TitleCleared() bool {
	_, ok := m.clearedFields[directoryentry.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *DirectoryEntryMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, directoryentry.FieldTitle)
}

// SetDepartment sets the "department" field.
func (m *DirectoryEntryMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *DirectoryEntryMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the DirectoryEntry entity.
// If the DirectoryEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DirectoryEntryMutation) OldDepartment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *DirectoryEntryMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[directoryentry.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *DirectoryEntryMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[directoryentry.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *DirectoryEntryMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, directoryentry.FieldDepartment)
}

// Where appends a list predicates to the DirectoryEntryMutation builder.
func (m *DirectoryEntryMutation) Where(ps ...predicate.DirectoryEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DirectoryEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DirectoryEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DirectoryEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DirectoryEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DirectoryEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DirectoryEntry).
func (m *DirectoryEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DirectoryEntryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, directoryentry.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, directoryentry.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, directoryentry.FieldName)
	}
	if m.email != nil {
		fields = append(fields, directoryentry.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, directoryentry.FieldRole)
	}
	if m.title != nil {
		fields = append(fields, directoryentry.FieldTitle)
	}
	if m.department != nil {
		fields = append(fields, directoryentry.FieldDepartment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DirectoryEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case directoryentry.FieldCreatedAt:
		return m.CreatedAt()
	case directoryentry.FieldUpdatedAt:
		return m.UpdatedAt()
	case directoryentry.FieldName:
		return m.Name()
	case directoryentry.FieldEmail:
		return m.Email()
	case directoryentry.FieldRole:
		return m.Role()
	case directoryentry.FieldTitle:
		return m.Title()
	case directoryentry.FieldDepartment:
		return m.Department()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DirectoryEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case directoryentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case directoryentry.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case directoryentry.FieldName:
		return m.OldName(ctx)
	case directoryentry.FieldEmail:
		return m.OldEmail(ctx)
	case directoryentry.FieldRole:
		return m.OldRole(ctx)
	case directoryentry.FieldTitle:
		return m.OldTitle(ctx)
	case directoryentry.FieldDepartment:
		return m.OldDepartment(ctx)
	}
	return nil, fmt.Errorf("unknown DirectoryEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DirectoryEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case directoryentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case directoryentry.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case directoryentry.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case directoryentry.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case directoryentry.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case directoryentry.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case directoryentry.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	}
	return fmt.Errorf("unknown DirectoryEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DirectoryEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DirectoryEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DirectoryEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DirectoryEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DirectoryEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(directoryentry.FieldTitle) {
		fields = append(fields, directoryentry.FieldTitle)
	}
	if m.FieldCleared(directoryentry.FieldDepartment) {
		fields = append(fields, directoryentry.FieldDepartment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DirectoryEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DirectoryEntryMutation) ClearField(name string) error {
	switch name {
	case directoryentry.FieldTitle:
		m.ClearTitle()
		return nil
	case directoryentry.FieldDepartment:
		m.ClearDepartment()
		return nil
	}
	return fmt.Errorf("unknown DirectoryEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DirectoryEntryMutation) ResetField(name string) error {
	switch name {
	case directoryentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case directoryentry.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case directoryentry.FieldName:
		m.ResetName()
		return nil
	case directoryentry.FieldEmail:
		m.ResetEmail()
		return nil
	case directoryentry.FieldRole:
		m.ResetRole()
		return nil
	case directoryentry.FieldTitle:
		m.ResetTitle()
		return nil
	case directoryentry.FieldDepartment:
		m.ResetDepartment()
		return nil
	}
	return fmt.Errorf("unknown DirectoryEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DirectoryEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DirectoryEntryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DirectoryEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DirectoryEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DirectoryEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DirectoryEntryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DirectoryEntryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DirectoryEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DirectoryEntryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DirectoryEntry edge %s", name)
}

// FacultyProfileMutation represents an operation that mutates the FacultyProfile nodes in the graph.
type FacultyProfileMutation struct {
	config
	op                               Op
	typ                              string
	id                               *uuid.UUID
	created_at                       *time.Time
	updated_at                       *time.Time
	profile_id                       *string
	employee_number                  *string
	title                            *string
	department                       *string
	office                           *string
	expertise                        *[]string
	appendexpertise                  []string
	education                        *[]string
	appendeducation                  []string
	publication_count                *int
	addpublication_count             *int
	years_experience                 *int
	addyears_experience              *int
	default_duration_min             *int
	adddefault_duration_min          *int
	max_daily_appointments           *int
	addmax_daily_appointments        *int
	buffer_minutes                   *int
	addbuffer_minutes                *int
	advance_booking_days             *int
	addadvance_booking_days          *int
	allowed_consultation_types       *[]string
	appendallowed_consultation_types []string
	weekly_schedule                  *map[string][]string
	time_zone                        *string
	clearedFields                    map[string]struct{}
	user                             *uuid.UUID
	cleareduser                      bool
	done                             bool
	oldValue                         func(context.Context) (*FacultyProfile, error)
	predicates                       []predicate.FacultyProfile
}

var _ ent.Mutation = (*FacultyProfileMutation)(nil)

// facultyprofileOption allows management of the mutation configuration using functional options.
type facultyprofileOption func(*FacultyProfileMutation)

// newFacultyProfileMutation creates new mutation for the FacultyProfile entity.
func newFacultyProfileMutation(c config, op Op, opts ...facultyprofileOption) *FacultyProfileMutation {
	m := &FacultyProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeFacultyProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFacultyProfileID sets the ID field of the mutation.
func withFacultyProfileID(id uuid.UUID) facultyprofileOption {
	return func(m *FacultyProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *FacultyProfile
		)
		m.oldValue = func(ctx context.Context) (*FacultyProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FacultyProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFacultyProfile sets the old FacultyProfile of the mutation.
func withFacultyProfile(node *FacultyProfile) facultyprofileOption {
	return func(m *FacultyProfileMutation) {
		m.oldValue = func(context.Context) (*FacultyProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FacultyProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FacultyProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FacultyProfile entities.
func (m *FacultyProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FacultyProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FacultyProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FacultyProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FacultyProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FacultyProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FacultyProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FacultyProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FacultyProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FacultyProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *FacultyProfileMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *FacultyProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *FacultyProfileMutation) ResetUserID() {
	m.user = nil
}

// SetProfileID sets the "profile_id" field.
func (m *FacultyProfileMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *FacultyProfileMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *FacultyProfileMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetEmployeeNumber sets the "employee_number" field.
func (m *FacultyProfileMutation) SetEmployeeNumber(s string) {
	m.employee_number = &s
}

// EmployeeNumber returns the value of the "employee_number" field in the mutation.
func (m *FacultyProfileMutation) EmployeeNumber() (r string, exists bool) {
	v := m.employee_number
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeNumber returns the old "employee_number" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldEmployeeNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeNumber: %w", err)
	}
	return oldValue.EmployeeNumber, nil
}

// ClearEmployeeNumber clears the value of the "employee_number" field.
func (m *FacultyProfileMutation) ClearEmployeeNumber() {
	m.employee_number = nil
	m.clearedFields[facultyprofile.FieldEmployeeNumber] = struct{}{}
}

// EmployeeNumberCleared returns if the "employee_number" field was cleared in this mutation.
func (m *FacultyProfileMutation) EmployeeNumberCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldEmployeeNumber]
	return ok
}

// ResetEmployeeNumber resets all changes to the "employee_number" field.
func (m *FacultyProfileMutation) ResetEmployeeNumber() {
	m.employee_number = nil
	delete(m.clearedFields, facultyprofile.FieldEmployeeNumber)
}

// SetTitle sets the "title" field.
func (m *FacultyProfileMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *FacultyProfileMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *FacultyProfileMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[facultyprofile.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *FacultyProfileMutation) TitleCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *FacultyProfileMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, facultyprofile.FieldTitle)
}

// SetDepartment sets the "department" field.
func (m *FacultyProfileMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *FacultyProfileMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldDepartment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *FacultyProfileMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[facultyprofile.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *FacultyProfileMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *FacultyProfileMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, facultyprofile.FieldDepartment)
}

// SetOffice sets the "office" field.
func (m *FacultyProfileMutation) SetOffice(s string) {
	m.office = &s
}

// Office returns the value of the "office" field in the mutation.
func (m *FacultyProfileMutation) Office() (r string, exists bool) {
	v := m.office
	if v == nil {
		return
	}
	return *v, true
}

// OldOffice returns the old "office" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldOffice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOffice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOffice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOffice: %w", err)
	}
	return oldValue.Office, nil
}

// ClearOffice clears the value of the "office" field.
func (m *FacultyProfileMutation) ClearOffice() {
	m.office = nil
	m.clearedFields[facultyprofile.FieldOffice] = struct{}{}
}

// OfficeCleared returns if the "office" field was cleared in this mutation.
func (m *FacultyProfileMutation) OfficeCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldOffice]
	return ok
}

// ResetOffice resets all changes to the "office" field.
func (m *FacultyProfileMutation) ResetOffice() {
	m.office = nil
	delete(m.clearedFields, facultyprofile.FieldOffice)
}

// SetExpertise sets the "expertise" field.
func (m *FacultyProfileMutation) SetExpertise(s []string) {
	m.expertise = &s
	m.appendexpertise = nil
}

// Expertise returns the value of the "expertise" field in the mutation.
func (m *FacultyProfileMutation) Expertise() (r []string, exists bool) {
	v := m.expertise
	if v == nil {
		return
	}
	return *v, true
}

// OldExpertise returns the old "expertise" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldExpertise(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpertise is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpertise requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpertise: %w", err)
	}
	return oldValue.Expertise, nil
}

// AppendExpertise adds s to the "expertise" field.
func (m *FacultyProfileMutation) AppendExpertise(s []string) {
	m.appendexpertise = append(m.appendexpertise, s...)
}

// AppendedExpertise returns the list of values that were appended to the "expertise" field in this mutation.
func (m *FacultyProfileMutation) AppendedExpertise() ([]string, bool) {
	if len(m.appendexpertise) == 0 {
		return nil, false
	}
	return m.appendexpertise, true
}

// ClearExpertise clears the value of the "expertise" field.
func (m *FacultyProfileMutation) ClearExpertise() {
	m.expertise = nil
	m.appendexpertise = nil
	m.clearedFields[facultyprofile.FieldExpertise] = struct{}{}
}

// ExpertiseCleared returns if the "expertise" field was cleared in this mutation.
func (m *FacultyProfileMutation) ExpertiseCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldExpertise]
	return ok
}

// ResetExpertise resets all changes to the "expertise" field.
func (m *FacultyProfileMutation) ResetExpertise() {
	m.expertise = nil
	m.appendexpertise = nil
	delete(m.clearedFields, facultyprofile.FieldExpertise)
}

// SetEducation sets the "education" field.
func (m *FacultyProfileMutation) SetEducation(s []string) {
	m.education = &s
	m.appendeducation = nil
}

// Education returns the value of the "education" field in the mutation.
func (m *FacultyProfileMutation) Education() (r []string, exists bool) {
	v := m.education
	if v == nil {
		return
	}
	return *v, true
}

// OldEducation returns the old "education" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldEducation(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEducation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEducation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEducation: %w", err)
	}
	return oldValue.Education, nil
}

// AppendEducation adds s to the "education" field.
func (m *FacultyProfileMutation) AppendEducation(s []string) {
	m.appendeducation = append(m.appendeducation, s...)
}

// AppendedEducation returns the list of values that were appended to the "education" field in this mutation.
func (m *FacultyProfileMutation) AppendedEducation() ([]string, bool) {
	if len(m.appendeducation) == 0 {
		return nil, false
	}
	return m.appendeducation, true
}

// ClearEducation clears the value of the "education" field.
func (m *FacultyProfileMutation) ClearEducation() {
	m.education = nil
	m.appendeducation = nil
	m.clearedFields[facultyprofile.FieldEducation] = struct{}{}
}

// EducationCleared returns if the "education" field was cleared in this mutation.
func (m *FacultyProfileMutation) EducationCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldEducation]
	return ok
}

// ResetEducation resets all changes to the "education" field.
func (m *FacultyProfileMutation) ResetEducation() {
	m.education = nil
	m.appendeducation = nil
	delete(m.clearedFields, facultyprofile.FieldEducation)
}

// SetPublicationCount sets the "publication_count" field.
func (m *FacultyProfileMutation) SetPublicationCount(i int) {
	m.publication_count = &i
	m.addpublication_count = nil
}

// PublicationCount returns the value of the "publication_count" field in the mutation.
func (m *FacultyProfileMutation) PublicationCount() (r int, exists bool) {
	v := m.publication_count
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationCount returns the old "publication_count" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldPublicationCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationCount: %w", err)
	}
	return oldValue.PublicationCount, nil
}

// AddPublicationCount adds i to the "publication_count" field.
func (m *FacultyProfileMutation) AddPublicationCount(i int) {
	if m.addpublication_count != nil {
		*m.addpublication_count += i
	} else {
		m.addpublication_count = &i
	}
}

// AddedPublicationCount returns the value that was added to the "publication_count" field in this mutation.
func (m *FacultyProfileMutation) AddedPublicationCount() (r int, exists bool) {
	v := m.addpublication_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetPublicationCount resets all changes to the "publication_count" field.
func (m *FacultyProfileMutation) ResetPublicationCount() {
	m.publication_count = nil
	m.addpublication_count = nil
}

// SetYearsExperience sets the "years_experience" field.
func (m *FacultyProfileMutation) SetYearsExperience(i int) {
	m.years_experience = &i
	m.addyears_experience = nil
}

// YearsExperience returns the value of the "years_experience" field in the mutation.
func (m *FacultyProfileMutation) YearsExperience() (r int, exists bool) {
	v := m.years_experience
	if v == nil {
		return
	}
	return *v, true
}

// OldYearsExperience returns the old "years_experience" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldYearsExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYearsExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYearsExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYearsExperience: %w", err)
	}
	return oldValue.YearsExperience, nil
}

// AddYearsExperience adds i to the "years_experience" field.
func (m *FacultyProfileMutation) AddYearsExperience(i int) {
	if m.addyears_experience != nil {
		*m.addyears_experience += i
	} else {
		m.addyears_experience = &i
	}
}

// AddedYearsExperience returns the value that was added to the "years_experience" field in this mutation.
func (m *FacultyProfileMutation) AddedYearsExperience() (r int, exists bool) {
	v := m.addyears_experience
	if v == nil {
		return
	}
	return *v, true
}

// ResetYearsExperience resets all changes to the "years_experience" field.
func (m *FacultyProfileMutation) ResetYearsExperience() {
	m.years_experience = nil
	m.addyears_experience = nil
}

// SetDefaultDurationMin sets the "default_duration_min" field.
func (m *FacultyProfileMutation) SetDefaultDurationMin(i int) {
	m.default_duration_min = &i
	m.adddefault_duration_min = nil
}

// DefaultDurationMin returns the value of the "default_duration_min" field in the mutation.
func (m *FacultyProfileMutation) DefaultDurationMin() (r int, exists bool) {
	v := m.default_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// OldDefaultDurationMin returns the old "default_duration_min" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldDefaultDurationMin(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDefaultDurationMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDefaultDurationMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDefaultDurationMin: %w", err)
	}
	return oldValue.DefaultDurationMin, nil
}

// AddDefaultDurationMin adds i to the "default_duration_min" field.
func (m *FacultyProfileMutation) AddDefaultDurationMin(i int) {
	if m.adddefault_duration_min != nil {
		*m.adddefault_duration_min += i
	} else {
		m.adddefault_duration_min = &i
	}
}

// AddedDefaultDurationMin returns the value that was added to the "default_duration_min" field in this mutation.
func (m *FacultyProfileMutation) AddedDefaultDurationMin() (r int, exists bool) {
	v := m.adddefault_duration_min
	if v == nil {
		return
	}
	return *v, true
}

// ResetDefaultDurationMin resets all changes to the "default_duration_min" field.
func (m *FacultyProfileMutation) ResetDefaultDurationMin() {
	m.default_duration_min = nil
	m.adddefault_duration_min = nil
}

// SetMaxDailyAppointments sets the "max_daily_appointments" field.
func (m *FacultyProfileMutation) SetMaxDailyAppointments(i int) {
	m.max_daily_appointments = &i
	m.addmax_daily_appointments = nil
}

// MaxDailyAppointments returns the value of the "max_daily_appointments" field in the mutation.
func (m *FacultyProfileMutation) MaxDailyAppointments() (r int, exists bool) {
	v := m.max_daily_appointments
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDailyAppointments returns the old "max_daily_appointments" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldMaxDailyAppointments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDailyAppointments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDailyAppointments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDailyAppointments: %w", err)
	}
	return oldValue.MaxDailyAppointments, nil
}

// AddMaxDailyAppointments adds i to the "max_daily_appointments" field.
func (m *FacultyProfileMutation) AddMaxDailyAppointments(i int) {
	if m.addmax_daily_appointments != nil {
		*m.addmax_daily_appointments += i
	} else {
		m.addmax_daily_appointments = &i
	}
}

// AddedMaxDailyAppointments returns the value that was added to the "max_daily_appointments" field in this mutation.
func (m *FacultyProfileMutation) AddedMaxDailyAppointments() (r int, exists bool) {
	v := m.addmax_daily_appointments
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxDailyAppointments resets all changes to the "max_daily_appointments" field.
func (m *FacultyProfileMutation) ResetMaxDailyAppointments() {
	m.max_daily_appointments = nil
	m.addmax_daily_appointments = nil
}

// SetBufferMinutes sets the "buffer_minutes" field.
func (m *FacultyProfileMutation) SetBufferMinutes(i int) {
	m.buffer_minutes = &i
	m.addbuffer_minutes = nil
}

// BufferMinutes returns the value of the "buffer_minutes" field in the mutation.
func (m *FacultyProfileMutation) BufferMinutes() (r int, exists bool) {
	v := m.buffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// OldBufferMinutes returns the old "buffer_minutes" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldBufferMinutes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBufferMinutes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBufferMinutes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBufferMinutes: %w", err)
	}
	return oldValue.BufferMinutes, nil
}

// AddBufferMinutes adds i to the "buffer_minutes" field.
func (m *FacultyProfileMutation) AddBufferMinutes(i int) {
	if m.addbuffer_minutes != nil {
		*m.addbuffer_minutes += i
	} else {
		m.addbuffer_minutes = &i
	}
}

// AddedBufferMinutes returns the value that was added to the "buffer_minutes" field in this mutation.
func (m *FacultyProfileMutation) AddedBufferMinutes() (r int, exists bool) {
	v := m.addbuffer_minutes
	if v == nil {
		return
	}
	return *v, true
}

// ResetBufferMinutes resets all changes to the "buffer_minutes" field.
func (m *FacultyProfileMutation) ResetBufferMinutes() {
	m.buffer_minutes = nil
	m.addbuffer_minutes = nil
}

// SetAdvanceBookingDays sets the "advance_booking_days" field.
func (m *FacultyProfileMutation) SetAdvanceBookingDays(i int) {
	m.advance_booking_days = &i
	m.addadvance_booking_days = nil
}

// AdvanceBookingDays returns the value of the "advance_booking_days" field in the mutation.
func (m *FacultyProfileMutation) AdvanceBookingDays() (r int, exists bool) {
	v := m.advance_booking_days
	if v == nil {
		return
	}
	return *v, true
}

// OldAdvanceBookingDays returns the old "advance_booking_days" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldAdvanceBookingDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdvanceBookingDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdvanceBookingDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdvanceBookingDays: %w", err)
	}
	return oldValue.AdvanceBookingDays, nil
}

// AddAdvanceBookingDays adds i to the "advance_booking_days" field.
func (m *FacultyProfileMutation) AddAdvanceBookingDays(i int) {
	if m.addadvance_booking_days != nil {
		*m.addadvance_booking_days += i
	} else {
		m.addadvance_booking_days = &i
	}
}

// AddedAdvanceBookingDays returns the value that was added to the "advance_booking_days" field in this mutation.
func (m *FacultyProfileMutation) AddedAdvanceBookingDays() (r int, exists bool) {
	v := m.addadvance_booking_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdvanceBookingDays resets all changes to the "advance_booking_days" field.
func (m *FacultyProfileMutation) ResetAdvanceBookingDays() {
	m.advance_booking_days = nil
	m.addadvance_booking_days = nil
}

// SetAllowedConsultationTypes sets the "allowed_consultation_types" field.
func (m *FacultyProfileMutation) SetAllowedConsultationTypes(s []string) {
	m.allowed_consultation_types = &s
	m.appendallowed_consultation_types = nil
}

// AllowedConsultationTypes returns the value of the "allowed_consultation_types" field in the mutation.
func (m *FacultyProfileMutation) AllowedConsultationTypes() (r []string, exists bool) {
	v := m.allowed_consultation_types
	if v == nil {
		return
	}
	return *v, true
}

// OldAllowedConsultationTypes returns the old "allowed_consultation_types" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldAllowedConsultationTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAllowedConsultationTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAllowedConsultationTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAllowedConsultationTypes: %w", err)
	}
	return oldValue.AllowedConsultationTypes, nil
}

// AppendAllowedConsultationTypes adds s to the "allowed_consultation_types" field.
func (m *FacultyProfileMutation) AppendAllowedConsultationTypes(s []string) {
	m.appendallowed_consultation_types = append(m.appendallowed_consultation_types, s...)
}

// AppendedAllowedConsultationTypes returns the list of values that were appended to the "allowed_consultation_types" field in this mutation.
func (m *FacultyProfileMutation) AppendedAllowedConsultationTypes() ([]string, bool) {
	if len(m.appendallowed_consultation_types) == 0 {
		return nil, false
	}
	return m.appendallowed_consultation_types, true
}

// ClearAllowedConsultationTypes clears the value of the "allowed_consultation_types" field.
func (m *FacultyProfileMutation) ClearAllowedConsultationTypes() {
	m.allowed_consultation_types = nil
	m.appendallowed_consultation_types = nil
	m.clearedFields[facultyprofile.FieldAllowedConsultationTypes] = struct{}{}
}

// AllowedConsultationTypesCleared returns if the "allowed_consultation_types" field was cleared in this mutation.
func (m *FacultyProfileMutation) AllowedConsultationTypesCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldAllowedConsultationTypes]
	return ok
}

// ResetAllowedConsultationTypes resets all changes to the "allowed_consultation_types" field.
func (m *FacultyProfileMutation) ResetAllowedConsultationTypes() {
	m.allowed_consultation_types = nil
	m.appendallowed_consultation_types = nil
	delete(m.clearedFields, facultyprofile.FieldAllowedConsultationTypes)
}

// SetWeeklySchedule sets the "weekly_schedule" field.
func (m *FacultyProfileMutation) SetWeeklySchedule(value map[string][]string) {
	m.weekly_schedule = &value
}

// WeeklySchedule returns the value of the "weekly_schedule" field in the mutation.
func (m *FacultyProfileMutation) WeeklySchedule() (r map[string][]string, exists bool) {
	v := m.weekly_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldWeeklySchedule returns the old "weekly_schedule" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldWeeklySchedule(ctx context.Context) (v map[string][]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeeklySchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeeklySchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeeklySchedule: %w", err)
	}
	return oldValue.WeeklySchedule, nil
}

// ClearWeeklySchedule clears the value of the "weekly_schedule" field.
func (m *FacultyProfileMutation) ClearWeeklySchedule() {
	m.weekly_schedule = nil
	m.clearedFields[facultyprofile.FieldWeeklySchedule] = struct{}{}
}

// WeeklyScheduleCleared returns if the "weekly_schedule" field was cleared in this mutation.
func (m *FacultyProfileMutation) WeeklyScheduleCleared() bool {
	_, ok := m.clearedFields[facultyprofile.FieldWeeklySchedule]
	return ok
}

// ResetWeeklySchedule resets all changes to the "weekly_schedule" field.
func (m *FacultyProfileMutation) ResetWeeklySchedule() {
	m.weekly_schedule = nil
	delete(m.clearedFields, facultyprofile.FieldWeeklySchedule)
}

// SetTimeZone sets the "time_zone" field.
func (m *FacultyProfileMutation) SetTimeZone(s string) {
	m.time_zone = &s
}

// TimeZone returns the value of the "time_zone" field in the mutation.
func (m *FacultyProfileMutation) TimeZone() (r string, exists bool) {
	v := m.time_zone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeZone returns the old "time_zone" field's value of the FacultyProfile entity.
// If the FacultyProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FacultyProfileMutation) OldTimeZone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeZone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeZone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeZone: %w", err)
	}
	return oldValue.TimeZone, nil
}

// ResetTimeZone resets all changes to the "time_zone" field.
func (m *FacultyProfileMutation) ResetTimeZone() {
	m.time_zone = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *FacultyProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[facultyprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *FacultyProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *FacultyProfileMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *FacultyProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the FacultyProfileMutation builder.
func (m *FacultyProfileMutation) Where(ps ...predicate.FacultyProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FacultyProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FacultyProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FacultyProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FacultyProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FacultyProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FacultyProfile).
func (m *FacultyProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FacultyProfileMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.created_at != nil {
		fields = append(fields, facultyprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, facultyprofile.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, facultyprofile.FieldUserID)
	}
	if m.profile_id != nil {
		fields = append(fields, facultyprofile.FieldProfileID)
	}
	if m.employee_number != nil {
		fields = append(fields, facultyprofile.FieldEmployeeNumber)
	}
	if m.title != nil {
		fields = append(fields, facultyprofile.FieldTitle)
	}
	if m.department != nil {
		fields = append(fields, facultyprofile.FieldDepartment)
	}
	if m.office != nil {
		fields = append(fields, facultyprofile.FieldOffice)
	}
	if m.expertise != nil {
		fields = append(fields, facultyprofile.FieldExpertise)
	}
	if m.education != nil {
		fields = append(fields, facultyprofile.FieldEducation)
	}
	if m.publication_count != nil {
		fields = append(fields, facultyprofile.FieldPublicationCount)
	}
	if m.years_experience != nil {
		fields = append(fields, facultyprofile.FieldYearsExperience)
	}
	if m.default_duration_min != nil {
		fields = append(fields, facultyprofile.FieldDefaultDurationMin)
	}
	if m.max_daily_appointments != nil {
		fields = append(fields, facultyprofile.FieldMaxDailyAppointments)
	}
	if m.buffer_minutes != nil {
		fields = append(fields, facultyprofile.FieldBufferMinutes)
	}
	if m.advance_booking_days != nil {
		fields = append(fields, facultyprofile.FieldAdvanceBookingDays)
	}
	if m.allowed_consultation_types != nil {
		fields = append(fields, facultyprofile.FieldAllowedConsultationTypes)
	}
	if m.weekly_schedule != nil {
		fields = append(fields, facultyprofile.FieldWeeklySchedule)
	}
	if m.time_zone != nil {
		fields = append(fields, facultyprofile.FieldTimeZone)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FacultyProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case facultyprofile.FieldCreatedAt:
		return m.CreatedAt()
	case facultyprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case facultyprofile.FieldUserID:
		return m.UserID()
	case facultyprofile.FieldProfileID:
		return m.ProfileID()
	case facultyprofile.FieldEmployeeNumber:
		return m.EmployeeNumber()
	case facultyprofile.FieldTitle:
		return m.Title()
	case facultyprofile.FieldDepartment:
		return m.Department()
	case facultyprofile.FieldOffice:
		return m.Office()
	case facultyprofile.FieldExpertise:
		return m.Expertise()
	case facultyprofile.FieldEducation:
		return m.Education()
	case facultyprofile.FieldPublicationCount:
		return m.PublicationCount()
	case facultyprofile.FieldYearsExperience:
		return m.YearsExperience()
	case facultyprofile.FieldDefaultDurationMin:
		return m.DefaultDurationMin()
	case facultyprofile.FieldMaxDailyAppointments:
		return m.MaxDailyAppointments()
	case facultyprofile.FieldBufferMinutes:
		return m.BufferMinutes()
	case facultyprofile.FieldAdvanceBookingDays:
		return m.AdvanceBookingDays()
	case facultyprofile.FieldAllowedConsultationTypes:
		return m.AllowedConsultationTypes()
	case facultyprofile.FieldWeeklySchedule:
		return m.WeeklySchedule()
	case facultyprofile.FieldTimeZone:
		return m.TimeZone()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FacultyProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case facultyprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case facultyprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case facultyprofile.FieldUserID:
		return m.OldUserID(ctx)
	case facultyprofile.FieldProfileID:
		return m.OldProfileID(ctx)
	case facultyprofile.FieldEmployeeNumber:
		return m.OldEmployeeNumber(ctx)
	case facultyprofile.FieldTitle:
		return m.OldTitle(ctx)
	case facultyprofile.FieldDepartment:
		return m.OldDepartment(ctx)
	case facultyprofile.FieldOffice:
		return m.OldOffice(ctx)
	case facultyprofile.FieldExpertise:
		return m.OldExpertise(ctx)
	case facultyprofile.FieldEducation:
		return m.OldEducation(ctx)
	case facultyprofile.FieldPublicationCount:
		return m.OldPublicationCount(ctx)
	case facultyprofile.FieldYearsExperience:
		return m.OldYearsExperience(ctx)
	case facultyprofile.FieldDefaultDurationMin:
		return m.OldDefaultDurationMin(ctx)
	case facultyprofile.FieldMaxDailyAppointments:
		return m.OldMaxDailyAppointments(ctx)
	case facultyprofile.FieldBufferMinutes:
		return m.OldBufferMinutes(ctx)
	case facultyprofile.FieldAdvanceBookingDays:
		return m.OldAdvanceBookingDays(ctx)
	case facultyprofile.FieldAllowedConsultationTypes:
		return m.OldAllowedConsultationTypes(ctx)
	case facultyprofile.FieldWeeklySchedule:
		return m.OldWeeklySchedule(ctx)
	case facultyprofile.FieldTimeZone:
		return m.OldTimeZone(ctx)
	}
	return nil, fmt.Errorf("unknown FacultyProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacultyProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case facultyprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case facultyprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case facultyprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case facultyprofile.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case facultyprofile.FieldEmployeeNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeNumber(v)
		return nil
	case facultyprofile.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case facultyprofile.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case facultyprofile.FieldOffice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOffice(v)
		return nil
	case facultyprofile.FieldExpertise:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpertise(v)
		return nil
	case facultyprofile.FieldEducation:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEducation(v)
		return nil
	case facultyprofile.FieldPublicationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationCount(v)
		return nil
	case facultyprofile.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYearsExperience(v)
		return nil
	case facultyprofile.FieldDefaultDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDefaultDurationMin(v)
		return nil
	case facultyprofile.FieldMaxDailyAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDailyAppointments(v)
		return nil
	case facultyprofile.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBufferMinutes(v)
		return nil
	case facultyprofile.FieldAdvanceBookingDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdvanceBookingDays(v)
		return nil
	case facultyprofile.FieldAllowedConsultationTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAllowedConsultationTypes(v)
		return nil
	case facultyprofile.FieldWeeklySchedule:
		v, ok := value.(map[string][]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeeklySchedule(v)
		return nil
	case facultyprofile.FieldTimeZone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeZone(v)
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FacultyProfileMutation) AddedFields() []string {
	var fields []string
	if m.addpublication_count != nil {
		fields = append(fields, facultyprofile.FieldPublicationCount)
	}
	if m.addyears_experience != nil {
		fields = append(fields, facultyprofile.FieldYearsExperience)
	}
	if m.adddefault_duration_min != nil {
		fields = append(fields, facultyprofile.FieldDefaultDurationMin)
	}
	if m.addmax_daily_appointments != nil {
		fields = append(fields, facultyprofile.FieldMaxDailyAppointments)
	}
	if m.addbuffer_minutes != nil {
		fields = append(fields, facultyprofile.FieldBufferMinutes)
	}
	if m.addadvance_booking_days != nil {
		fields = append(fields, facultyprofile.FieldAdvanceBookingDays)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FacultyProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case facultyprofile.FieldPublicationCount:
		return m.AddedPublicationCount()
	case facultyprofile.FieldYearsExperience:
		return m.AddedYearsExperience()
	case facultyprofile.FieldDefaultDurationMin:
		return m.AddedDefaultDurationMin()
	case facultyprofile.FieldMaxDailyAppointments:
		return m.AddedMaxDailyAppointments()
	case facultyprofile.FieldBufferMinutes:
		return m.AddedBufferMinutes()
	case facultyprofile.FieldAdvanceBookingDays:
		return m.AddedAdvanceBookingDays()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FacultyProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case facultyprofile.FieldPublicationCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPublicationCount(v)
		return nil
	case facultyprofile.FieldYearsExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYearsExperience(v)
		return nil
	case facultyprofile.FieldDefaultDurationMin:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDefaultDurationMin(v)
		return nil
	case facultyprofile.FieldMaxDailyAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDailyAppointments(v)
		return nil
	case facultyprofile.FieldBufferMinutes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBufferMinutes(v)
		return nil
	case facultyprofile.FieldAdvanceBookingDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdvanceBookingDays(v)
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FacultyProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(facultyprofile.FieldEmployeeNumber) {
		fields = append(fields, facultyprofile.FieldEmployeeNumber)
	}
	if m.FieldCleared(facultyprofile.FieldTitle) {
		fields = append(fields, facultyprofile.FieldTitle)
	}
	if m.FieldCleared(facultyprofile.FieldDepartment) {
		fields = append(fields, facultyprofile.FieldDepartment)
	}
	if m.FieldCleared(facultyprofile.FieldOffice) {
		fields = append(fields, facultyprofile.FieldOffice)
	}
	if m.FieldCleared(facultyprofile.FieldExpertise) {
		fields = append(fields, facultyprofile.FieldExpertise)
	}
	if m.FieldCleared(facultyprofile.FieldEducation) {
		fields = append(fields, facultyprofile.FieldEducation)
	}
	if m.FieldCleared(facultyprofile.FieldAllowedConsultationTypes) {
		fields = append(fields, facultyprofile.FieldAllowedConsultationTypes)
	}
	if m.FieldCleared(facultyprofile.FieldWeeklySchedule) {
		fields = append(fields, facultyprofile.FieldWeeklySchedule)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FacultyProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FacultyProfileMutation) ClearField(name string) error {
	switch name {
	case facultyprofile.FieldEmployeeNumber:
		m.ClearEmployeeNumber()
		return nil
	case facultyprofile.FieldTitle:
		m.ClearTitle()
		return nil
	case facultyprofile.FieldDepartment:
		m.ClearDepartment()
		return nil
	case facultyprofile.FieldOffice:
		m.ClearOffice()
		return nil
	case facultyprofile.FieldExpertise:
		m.ClearExpertise()
		return nil
	case facultyprofile.FieldEducation:
		m.ClearEducation()
		return nil
	case facultyprofile.FieldAllowedConsultationTypes:
		m.ClearAllowedConsultationTypes()
		return nil
	case facultyprofile.FieldWeeklySchedule:
		m.ClearWeeklySchedule()
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FacultyProfileMutation) ResetField(name string) error {
	switch name {
	case facultyprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case facultyprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case facultyprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case facultyprofile.FieldProfileID:
		m.ResetProfileID()
		return nil
	case facultyprofile.FieldEmployeeNumber:
		m.ResetEmployeeNumber()
		return nil
	case facultyprofile.FieldTitle:
		m.ResetTitle()
		return nil
	case facultyprofile.FieldDepartment:
		m.ResetDepartment()
		return nil
	case facultyprofile.FieldOffice:
		m.ResetOffice()
		return nil
	case facultyprofile.FieldExpertise:
		m.ResetExpertise()
		return nil
	case facultyprofile.FieldEducation:
		m.ResetEducation()
		return nil
	case facultyprofile.FieldPublicationCount:
		m.ResetPublicationCount()
		return nil
	case facultyprofile.FieldYearsExperience:
		m.ResetYearsExperience()
		return nil
	case facultyprofile.FieldDefaultDurationMin:
		m.ResetDefaultDurationMin()
		return nil
	case facultyprofile.FieldMaxDailyAppointments:
		m.ResetMaxDailyAppointments()
		return nil
	case facultyprofile.FieldBufferMinutes:
		m.ResetBufferMinutes()
		return nil
	case facultyprofile.FieldAdvanceBookingDays:
		m.ResetAdvanceBookingDays()
		return nil
	case facultyprofile.FieldAllowedConsultationTypes:
		m.ResetAllowedConsultationTypes()
		return nil
	case facultyprofile.FieldWeeklySchedule:
		m.ResetWeeklySchedule()
		return nil
	case facultyprofile.FieldTimeZone:
		m.ResetTimeZone()
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FacultyProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, facultyprofile.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FacultyProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case facultyprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FacultyProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FacultyProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FacultyProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, facultyprofile.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FacultyProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case facultyprofile.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FacultyProfileMutation) ClearEdge(name string) error {
	switch name {
	case facultyprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FacultyProfileMutation) ResetEdge(name string) error {
	switch name {
	case facultyprofile.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown FacultyProfile edge %s", name)
}

// NotificationMutation represents an operation that mutates the Notification nodes in the graph.
type NotificationMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	created_at       *time.Time
	sender_id        *uuid.UUID
	_type            *notification.Type
	title            *string
	body             *string
	appointment_id   *uuid.UUID
	is_read          *bool
	clearedFields    map[string]struct{}
	recipient        *uuid.UUID
	clearedrecipient bool
	done             bool
	oldValue         func(context.Context) (*Notification, error)
	predicates       []predicate.Notification
}

var _ ent.Mutation = (*NotificationMutation)(nil)

// notificationOption allows management of the mutation configuration using functional options.
type notificationOption func(*NotificationMutation)

// newNotificationMutation creates new mutation for the Notification entity.
func newNotificationMutation(c config, op Op, opts ...notificationOption) *NotificationMutation {
	m := &NotificationMutation{
		config:        c,
		op:            op,
		typ:           TypeNotification,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withNotificationID sets the ID field of the mutation.
func withNotificationID(id uuid.UUID) notificationOption {
	return func(m *NotificationMutation) {
		var (
			err   error
			once  sync.Once
			value *Notification
		)
		m.oldValue = func(ctx context.Context) (*Notification, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Notification.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withNotification sets the old Notification of the mutation.
func withNotification(node *Notification) notificationOption {
	return func(m *NotificationMutation) {
		m.oldValue = func(context.Context) (*Notification, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m NotificationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m NotificationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Notification entities.
func (m *NotificationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *NotificationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *NotificationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Notification.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *NotificationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *NotificationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *NotificationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetRecipientID sets the "recipient_id" field.
func (m *NotificationMutation) SetRecipientID(u uuid.UUID) {
	m.recipient = &u
}

// RecipientID returns the value of the "recipient_id" field in the mutation.
func (m *NotificationMutation) RecipientID() (r uuid.UUID, exists bool) {
	v := m.recipient
	if v == nil {
		return
	}
	return *v, true
}

// OldRecipientID returns the old "recipient_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldRecipientID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecipientID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecipientID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecipientID: %w", err)
	}
	return oldValue.RecipientID, nil
}

// ResetRecipientID resets all changes to the "recipient_id" field.
func (m *NotificationMutation) ResetRecipientID() {
	m.recipient = nil
}

// SetSenderID sets the "sender_id" field.
func (m *NotificationMutation) SetSenderID(u uuid.UUID) {
	m.sender_id = &u
}

// SenderID returns the value of the "sender_id" field in the mutation.
func (m *NotificationMutation) SenderID() (r uuid.UUID, exists bool) {
	v := m.sender_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSenderID returns the old "sender_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldSenderID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSenderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSenderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSenderID: %w", err)
	}
	return oldValue.SenderID, nil
}

// ResetSenderID resets all changes to the "sender_id" field.
func (m *NotificationMutation) ResetSenderID() {
	m.sender_id = nil
}

// SetType sets the "type" field.
func (m *NotificationMutation) SetType(n notification.Type) {
	m._type = &n
}

// GetType returns the value of the "type" field in the mutation.
func (m *NotificationMutation) GetType() (r notification.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldType(ctx context.Context) (v notification.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *NotificationMutation) ResetType() {
	m._type = nil
}

// SetTitle sets the "title" field.
func (m *NotificationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *NotificationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *NotificationMutation) ResetTitle() {
	m.title = nil
}

// SetBody sets the "body" field.
func (m *NotificationMutation) SetBody(s string) {
	m.body = &s
}

// Body returns the value of the "body" field in the mutation.
func (m *NotificationMutation) Body() (r string, exists bool) {
	v := m.body
	if v == nil {
		return
	}
	return *v, true
}

// OldBody returns the old "body" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldBody(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBody is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBody requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBody: %w", err)
	}
	return oldValue.Body, nil
}

// ClearBody clears the value of the "body" field.
func (m *NotificationMutation) ClearBody() {
	m.body = nil
	m.clearedFields[notification.FieldBody] = struct{}{}
}

// BodyCleared returns if the "body" field was cleared in this mutation.
func (m *NotificationMutation) BodyCleared() bool {
	_, ok := m.clearedFields[notification.FieldBody]
	return ok
}

// ResetBody resets all changes to the "body" field.
func (m *NotificationMutation) ResetBody() {
	m.body = nil
	delete(m.clearedFields, notification.FieldBody)
}

// SetAppointmentID sets the "appointment_id" field.
func (m *NotificationMutation) SetAppointmentID(u uuid.UUID) {
	m.appointment_id = &u
}

// AppointmentID returns the value of the "appointment_id" field in the mutation.
func (m *NotificationMutation) AppointmentID() (r uuid.UUID, exists bool) {
	v := m.appointment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAppointmentID returns the old "appointment_id" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldAppointmentID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppointmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppointmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppointmentID: %w", err)
	}
	return oldValue.AppointmentID, nil
}

// ResetAppointmentID resets all changes to the "appointment_id" field.
func (m *NotificationMutation) ResetAppointmentID() {
	m.appointment_id = nil
}

// SetIsRead sets the "is_read" field.
func (m *NotificationMutation) SetIsRead(b bool) {
	m.is_read = &b
}

// IsRead returns the value of the "is_read" field in the mutation.
func (m *NotificationMutation) IsRead() (r bool, exists bool) {
	v := m.is_read
	if v == nil {
		return
	}
	return *v, true
}

// OldIsRead returns the old "is_read" field's value of the Notification entity.
// If the Notification object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *NotificationMutation) OldIsRead(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsRead is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsRead requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsRead: %w", err)
	}
	return oldValue.IsRead, nil
}

// ResetIsRead resets all changes to the "is_read" field.
func (m *NotificationMutation) ResetIsRead() {
	m.is_read = nil
}

// ClearRecipient clears the "recipient" edge to the User entity.
func (m *NotificationMutation) ClearRecipient() {
	m.clearedrecipient = true
	m.clearedFields[notification.FieldRecipientID] = struct{}{}
}

// RecipientCleared reports if the "recipient" edge to the User entity was cleared.
func (m *NotificationMutation) RecipientCleared() bool {
	return m.clearedrecipient
}

// RecipientIDs returns the "recipient" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecipientID instead. It exists only for internal usage by the builders.
func (m *NotificationMutation) RecipientIDs() (ids []uuid.UUID) {
	if id := m.recipient; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecipient resets all changes to the "recipient" edge.
func (m *NotificationMutation) ResetRecipient() {
	m.recipient = nil
	m.clearedrecipient = false
}

// Where appends a list predicates to the NotificationMutation builder.
func (m *NotificationMutation) Where(ps ...predicate.Notification) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the NotificationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *NotificationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Notification, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *NotificationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *NotificationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Notification).
func (m *NotificationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *NotificationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, notification.FieldCreatedAt)
	}
	if m.recipient != nil {
		fields = append(fields, notification.FieldRecipientID)
	}
	if m.sender_id != nil {
		fields = append(fields, notification.FieldSenderID)
	}
	if m._type != nil {
		fields = append(fields, notification.FieldType)
	}
	if m.title != nil {
		fields = append(fields, notification.FieldTitle)
	}
	if m.body != nil {
		fields = append(fields, notification.FieldBody)
	}
	if m.appointment_id != nil {
		fields = append(fields, notification.FieldAppointmentID)
	}
	if m.is_read != nil {
		fields = append(fields, notification.FieldIsRead)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *NotificationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case notification.FieldCreatedAt:
		return m.CreatedAt()
	case notification.FieldRecipientID:
		return m.RecipientID()
	case notification.FieldSenderID:
		return m.SenderID()
	case notification.FieldType:
		return m.GetType()
	case notification.FieldTitle:
		return m.Title()
	case notification.FieldBody:
		return m.Body()
	case notification.FieldAppointmentID:
		return m.AppointmentID()
	case notification.FieldIsRead:
		return m.IsRead()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *NotificationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case notification.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case notification.FieldRecipientID:
		return m.OldRecipientID(ctx)
	case notification.FieldSenderID:
		return m.OldSenderID(ctx)
	case notification.FieldType:
		return m.OldType(ctx)
	case notification.FieldTitle:
		return m.OldTitle(ctx)
	case notification.FieldBody:
		return m.OldBody(ctx)
	case notification.FieldAppointmentID:
		return m.OldAppointmentID(ctx)
	case notification.FieldIsRead:
		return m.OldIsRead(ctx)
	}
	return nil, fmt.Errorf("unknown Notification field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case notification.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case notification.FieldRecipientID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecipientID(v)
		return nil
	case notification.FieldSenderID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSenderID(v)
		return nil
	case notification.FieldType:
		v, ok := value.(notification.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case notification.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case notification.FieldBody:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBody(v)
		return nil
	case notification.FieldAppointmentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppointmentID(v)
		return nil
	case notification.FieldIsRead:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsRead(v)
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *NotificationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *NotificationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *NotificationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Notification numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *NotificationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(notification.FieldBody) {
		fields = append(fields, notification.FieldBody)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *NotificationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *NotificationMutation) ClearField(name string) error {
	switch name {
	case notification.FieldBody:
		m.ClearBody()
		return nil
	}
	return fmt.Errorf("unknown Notification nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *NotificationMutation) ResetField(name string) error {
	switch name {
	case notification.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case notification.FieldRecipientID:
		m.ResetRecipientID()
		return nil
	case notification.FieldSenderID:
		m.ResetSenderID()
		return nil
	case notification.FieldType:
		m.ResetType()
		return nil
	case notification.FieldTitle:
		m.ResetTitle()
		return nil
	case notification.FieldBody:
		m.ResetBody()
		return nil
	case notification.FieldAppointmentID:
		m.ResetAppointmentID()
		return nil
	case notification.FieldIsRead:
		m.ResetIsRead()
		return nil
	}
	return fmt.Errorf("unknown Notification field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *NotificationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.recipient != nil {
		edges = append(edges, notification.EdgeRecipient)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *NotificationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case notification.EdgeRecipient:
		if id := m.recipient; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *NotificationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *NotificationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *NotificationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedrecipient {
		edges = append(edges, notification.EdgeRecipient)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *NotificationMutation) EdgeCleared(name string) bool {
	switch name {
	case notification.EdgeRecipient:
		return m.clearedrecipient
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *NotificationMutation) ClearEdge(name string) error {
	switch name {
	case notification.EdgeRecipient:
		m.ClearRecipient()
		return nil
	}
	return fmt.Errorf("unknown Notification unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *NotificationMutation) ResetEdge(name string) error {
	switch name {
	case notification.EdgeRecipient:
		m.ResetRecipient()
		return nil
	}
	return fmt.Errorf("unknown Notification edge %s", name)
}

// RoleCounterMutation represents an operation that mutates the RoleCounter nodes in the graph.
type RoleCounterMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	updated_at    *time.Time
	role          *string
	next_seq      *int64
	addnext_seq   *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*RoleCounter, error)
	predicates    []predicate.RoleCounter
}

var _ ent.Mutation = (*RoleCounterMutation)(nil)

// rolecounterOption allows management of the mutation configuration using functional options.
type rolecounterOption func(*RoleCounterMutation)

// newRoleCounterMutation creates new mutation for the RoleCounter entity.
func newRoleCounterMutation(c config, op Op, opts ...rolecounterOption) *RoleCounterMutation {
	m := &RoleCounterMutation{
		config:        c,
		op:            op,
		typ:           TypeRoleCounter,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRoleCounterID sets the ID field of the mutation.
func withRoleCounterID(id uuid.UUID) rolecounterOption {
	return func(m *RoleCounterMutation) {
		var (
			err   error
			once  sync.Once
			value *RoleCounter
		)
		m.oldValue = func(ctx context.Context) (*RoleCounter, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RoleCounter.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRoleCounter sets the old RoleCounter of the mutation.
func withRoleCounter(node *RoleCounter) rolecounterOption {
	return func(m *RoleCounterMutation) {
		m.oldValue = func(context.Context) (*RoleCounter, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RoleCounterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RoleCounterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RoleCounter entities.
func (m *RoleCounterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RoleCounterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RoleCounterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RoleCounter.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RoleCounterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RoleCounterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RoleCounter entity.
// If the RoleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCounterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RoleCounterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RoleCounterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RoleCounterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the RoleCounter entity.
// If the RoleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCounterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RoleCounterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetRole sets the "role" field.
func (m *RoleCounterMutation) SetRole(s string) {
	m.role = &s
}

// Role returns the value of the "role" field in the mutation.
func (m *RoleCounterMutation) Role() (r string, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the RoleCounter entity.
// If the RoleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCounterMutation) OldRole(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *RoleCounterMutation) ResetRole() {
	m.role = nil
}

// SetNextSeq sets the "next_seq" field.
func (m *RoleCounterMutation) SetNextSeq(i int64) {
	m.next_seq = &i
	m.addnext_seq = nil
}

// NextSeq returns the value of the "next_seq" field in the mutation.
func (m *RoleCounterMutation) NextSeq() (r int64, exists bool) {
	v := m.next_seq
	if v == nil {
		return
	}
	return *v, true
}

// OldNextSeq returns the old "next_seq" field's value of the RoleCounter entity.
// If the RoleCounter object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RoleCounterMutation) OldNextSeq(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextSeq: %w", err)
	}
	return oldValue.NextSeq, nil
}

// AddNextSeq adds i to the "next_seq" field.
func (m *RoleCounterMutation) AddNextSeq(i int64) {
	if m.addnext_seq != nil {
		*m.addnext_seq += i
	} else {
		m.addnext_seq = &i
	}
}

// AddedNextSeq returns the value that was added to the "next_seq" field in this mutation.
func (m *RoleCounterMutation) AddedNextSeq() (r int64, exists bool) {
	v := m.addnext_seq
	if v == nil {
		return
	}
	return *v, true
}

// ResetNextSeq resets all changes to the "next_seq" field.
func (m *RoleCounterMutation) ResetNextSeq() {
	m.next_seq = nil
	m.addnext_seq = nil
}

// Where appends a list predicates to the RoleCounterMutation builder.
func (m *RoleCounterMutation) Where(ps ...predicate.RoleCounter) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RoleCounterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RoleCounterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RoleCounter, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RoleCounterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RoleCounterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RoleCounter).
func (m *RoleCounterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RoleCounterMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.created_at != nil {
		fields = append(fields, rolecounter.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, rolecounter.FieldUpdatedAt)
	}
	if m.role != nil {
		fields = append(fields, rolecounter.FieldRole)
	}
	if m.next_seq != nil {
		fields = append(fields, rolecounter.FieldNextSeq)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RoleCounterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rolecounter.FieldCreatedAt:
		return m.CreatedAt()
	case rolecounter.FieldUpdatedAt:
		return m.UpdatedAt()
	case rolecounter.FieldRole:
		return m.Role()
	case rolecounter.FieldNextSeq:
		return m.NextSeq()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RoleCounterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rolecounter.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rolecounter.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case rolecounter.FieldRole:
		return m.OldRole(ctx)
	case rolecounter.FieldNextSeq:
		return m.OldNextSeq(ctx)
	}
	return nil, fmt.Errorf("unknown RoleCounter field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleCounterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rolecounter.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rolecounter.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case rolecounter.FieldRole:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case rolecounter.FieldNextSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RoleCounter field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RoleCounterMutation) AddedFields() []string {
	var fields []string
	if m.addnext_seq != nil {
		fields = append(fields, rolecounter.FieldNextSeq)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RoleCounterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rolecounter.FieldNextSeq:
		return m.AddedNextSeq()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RoleCounterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rolecounter.FieldNextSeq:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNextSeq(v)
		return nil
	}
	return fmt.Errorf("unknown RoleCounter numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RoleCounterMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RoleCounterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RoleCounterMutation) ClearField(name string) error {
	return fmt.Errorf("unknown RoleCounter nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RoleCounterMutation) ResetField(name string) error {
	switch name {
	case rolecounter.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rolecounter.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case rolecounter.FieldRole:
		m.ResetRole()
		return nil
	case rolecounter.FieldNextSeq:
		m.ResetNextSeq()
		return nil
	}
	return fmt.Errorf("unknown RoleCounter field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RoleCounterMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RoleCounterMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RoleCounterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RoleCounterMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RoleCounterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RoleCounterMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RoleCounterMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown RoleCounter unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RoleCounterMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown RoleCounter edge %s", name)
}

// StudentProfileMutation represents an operation that mutates the StudentProfile nodes in the graph.
type StudentProfileMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	created_at                  *time.Time
	updated_at                  *time.Time
	profile_id                  *string
	student_number              *string
	year                        *string
	major                       *string
	department                  *string
	gpa                         *float64
	addgpa                      *float64
	expected_graduation         *string
	preferred_departments       *[]string
	appendpreferred_departments []string
	consultation_types          *[]string
	appendconsultation_types    []string
	total_appointments          *int
	addtotal_appointments       *int
	completed_appointments      *int
	addcompleted_appointments   *int
	cancelled_appointments      *int
	addcancelled_appointments   *int
	clearedFields               map[string]struct{}
	user                        *uuid.UUID
	cleareduser                 bool
	done                        bool
	oldValue                    func(context.Context) (*StudentProfile, error)
	predicates                  []predicate.StudentProfile
}

var _ ent.Mutation = (*StudentProfileMutation)(nil)

// studentprofileOption allows management of the mutation configuration using functional options.
type studentprofileOption func(*StudentProfileMutation)

// newStudentProfileMutation creates new mutation for the StudentProfile entity.
func newStudentProfileMutation(c config, op Op, opts ...studentprofileOption) *StudentProfileMutation {
	m := &StudentProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeStudentProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStudentProfileID sets the ID field of the mutation.
func withStudentProfileID(id uuid.UUID) studentprofileOption {
	return func(m *StudentProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *StudentProfile
		)
		m.oldValue = func(ctx context.Context) (*StudentProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StudentProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStudentProfile sets the old StudentProfile of the mutation.
func withStudentProfile(node *StudentProfile) studentprofileOption {
	return func(m *StudentProfileMutation) {
		m.oldValue = func(context.Context) (*StudentProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StudentProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StudentProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StudentProfile entities.
func (m *StudentProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StudentProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StudentProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StudentProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *StudentProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StudentProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StudentProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StudentProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StudentProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StudentProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *StudentProfileMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *StudentProfileMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *StudentProfileMutation) ResetUserID() {
	m.user = nil
}

// SetProfileID sets the "profile_id" field.
func (m *StudentProfileMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *StudentProfileMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *StudentProfileMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetStudentNumber sets the "student_number" field.
func (m *StudentProfileMutation) SetStudentNumber(s string) {
	m.student_number = &s
}

// StudentNumber returns the value of the "student_number" field in the mutation.
func (m *StudentProfileMutation) StudentNumber() (r string, exists bool) {
	v := m.student_number
	if v == nil {
		return
	}
	return *v, true
}

// OldStudentNumber returns the old "student_number" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldStudentNumber(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStudentNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStudentNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStudentNumber: %w", err)
	}
	return oldValue.StudentNumber, nil
}

// ClearStudentNumber clears the value of the "student_number" field.
func (m *StudentProfileMutation) ClearStudentNumber() {
	m.student_number = nil
	m.clearedFields[studentprofile.FieldStudentNumber] = struct{}{}
}

// StudentNumberCleared returns if the "student_number" field was cleared in this mutation.
func (m *StudentProfileMutation) StudentNumberCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldStudentNumber]
	return ok
}

// ResetStudentNumber resets all changes to the "student_number" field.
func (m *StudentProfileMutation) ResetStudentNumber() {
	m.student_number = nil
	delete(m.clearedFields, studentprofile.FieldStudentNumber)
}

// SetYear sets the "year" field.
func (m *StudentProfileMutation) SetYear(s string) {
	m.year = &s
}

// Year returns the value of the "year" field in the mutation.
func (m *StudentProfileMutation) Year() (r string, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldYear(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// ClearYear clears the value of the "year" field.
func (m *StudentProfileMutation) ClearYear() {
	m.year = nil
	m.clearedFields[studentprofile.FieldYear] = struct{}{}
}

// YearCleared returns if the "year" field was cleared in this mutation.
func (m *StudentProfileMutation) YearCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldYear]
	return ok
}

// ResetYear resets all changes to the "year" field.
func (m *StudentProfileMutation) ResetYear() {
	m.year = nil
	delete(m.clearedFields, studentprofile.FieldYear)
}

// SetMajor sets the "major" field.
func (m *StudentProfileMutation) SetMajor(s string) {
	m.major = &s
}

// Major returns the value of the "major" field in the mutation.
func (m *StudentProfileMutation) Major() (r string, exists bool) {
	v := m.major
	if v == nil {
		return
	}
	return *v, true
}

// OldMajor returns the old "major" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldMajor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMajor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMajor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMajor: %w", err)
	}
	return oldValue.Major, nil
}

// ClearMajor clears the value of the "major" field.
func (m *StudentProfileMutation) ClearMajor() {
	m.major = nil
	m.clearedFields[studentprofile.FieldMajor] = struct{}{}
}

// MajorCleared returns if the "major" field was cleared in this mutation.
func (m *StudentProfileMutation) MajorCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldMajor]
	return ok
}

// ResetMajor resets all changes to the "major" field.
func (m *StudentProfileMutation) ResetMajor() {
	m.major = nil
	delete(m.clearedFields, studentprofile.FieldMajor)
}

// SetDepartment sets the "department" field.
func (m *StudentProfileMutation) SetDepartment(s string) {
	m.department = &s
}

// Department returns the value of the "department" field in the mutation.
func (m *StudentProfileMutation) Department() (r string, exists bool) {
	v := m.department
	if v == nil {
		return
	}
	return *v, true
}

// OldDepartment returns the old "department" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldDepartment(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDepartment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDepartment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDepartment: %w", err)
	}
	return oldValue.Department, nil
}

// ClearDepartment clears the value of the "department" field.
func (m *StudentProfileMutation) ClearDepartment() {
	m.department = nil
	m.clearedFields[studentprofile.FieldDepartment] = struct{}{}
}

// DepartmentCleared returns if the "department" field was cleared in this mutation.
func (m *StudentProfileMutation) DepartmentCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldDepartment]
	return ok
}

// ResetDepartment resets all changes to the "department" field.
func (m *StudentProfileMutation) ResetDepartment() {
	m.department = nil
	delete(m.clearedFields, studentprofile.FieldDepartment)
}

// SetGpa sets the "gpa" field.
func (m *StudentProfileMutation) SetGpa(f float64) {
	m.gpa = &f
	m.addgpa = nil
}

// Gpa returns the value of the "gpa" field in the mutation.
func (m *StudentProfileMutation) Gpa() (r float64, exists bool) {
	v := m.gpa
	if v == nil {
		return
	}
	return *v, true
}

// OldGpa returns the old "gpa" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldGpa(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGpa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGpa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGpa: %w", err)
	}
	return oldValue.Gpa, nil
}

// AddGpa adds f to the "gpa" field.
func (m *StudentProfileMutation) AddGpa(f float64) {
	if m.addgpa != nil {
		*m.addgpa += f
	} else {
		m.addgpa = &f
	}
}

// AddedGpa returns the value that was added to the "gpa" field in this mutation.
func (m *StudentProfileMutation) AddedGpa() (r float64, exists bool) {
	v := m.addgpa
	if v == nil {
		return
	}
	return *v, true
}

// ClearGpa clears the value of the "gpa" field.
func (m *StudentProfileMutation) ClearGpa() {
	m.gpa = nil
	m.addgpa = nil
	m.clearedFields[studentprofile.FieldGpa] = struct{}{}
}

// GpaCleared returns if the "gpa" field was cleared in this mutation.
func (m *StudentProfileMutation) GpaCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldGpa]
	return ok
}

// ResetGpa resets all changes to the "gpa" field.
func (m *StudentProfileMutation) ResetGpa() {
	m.gpa = nil
	m.addgpa = nil
	delete(m.clearedFields, studentprofile.FieldGpa)
}

// SetExpectedGraduation sets the "expected_graduation" field.
func (m *StudentProfileMutation) SetExpectedGraduation(s string) {
	m.expected_graduation = &s
}

// ExpectedGraduation returns the value of the "expected_graduation" field in the mutation.
func (m *StudentProfileMutation) ExpectedGraduation() (r string, exists bool) {
	v := m.expected_graduation
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedGraduation returns the old "expected_graduation" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldExpectedGraduation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedGraduation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedGraduation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedGraduation: %w", err)
	}
	return oldValue.ExpectedGraduation, nil
}

// ClearExpectedGraduation clears the value of the "expected_graduation" field.
func (m *StudentProfileMutation) ClearExpectedGraduation() {
	m.expected_graduation = nil
	m.clearedFields[studentprofile.FieldExpectedGraduation] = struct{}{}
}

// ExpectedGraduationCleared returns if the "expected_graduation" field was cleared in this mutation.
func (m *StudentProfileMutation) ExpectedGraduationCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldExpectedGraduation]
	return ok
}

// ResetExpectedGraduation resets all changes to the "expected_graduation" field.
func (m *StudentProfileMutation) ResetExpectedGraduation() {
	m.expected_graduation = nil
	delete(m.clearedFields, studentprofile.FieldExpectedGraduation)
}

// SetPreferredDepartments sets the "preferred_departments" field.
func (m *StudentProfileMutation) SetPreferredDepartments(s []string) {
	m.preferred_departments = &s
	m.appendpreferred_departments = nil
}

// PreferredDepartments returns the value of the "preferred_departments" field in the mutation.
func (m *StudentProfileMutation) PreferredDepartments() (r []string, exists bool) {
	v := m.preferred_departments
	if v == nil {
		return
	}
	return *v, true
}

// OldPreferredDepartments returns the old "preferred_departments" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldPreferredDepartments(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPreferredDepartments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPreferredDepartments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPreferredDepartments: %w", err)
	}
	return oldValue.PreferredDepartments, nil
}

// AppendPreferredDepartments adds s to the "preferred_departments" field.
func (m *StudentProfileMutation) AppendPreferredDepartments(s []string) {
	m.appendpreferred_departments = append(m.appendpreferred_departments, s...)
}

// AppendedPreferredDepartments returns the list of values that were appended to the "preferred_departments" field in this mutation.
func (m *StudentProfileMutation) AppendedPreferredDepartments() ([]string, bool) {
	if len(m.appendpreferred_departments) == 0 {
		return nil, false
	}
	return m.appendpreferred_departments, true
}

// ClearPreferredDepartments clears the value of the "preferred_departments" field.
func (m *StudentProfileMutation) ClearPreferredDepartments() {
	m.preferred_departments = nil
	m.appendpreferred_departments = nil
	m.clearedFields[studentprofile.FieldPreferredDepartments] = struct{}{}
}

// PreferredDepartmentsCleared returns if the "preferred_departments" field was cleared in this mutation.
func (m *StudentProfileMutation) PreferredDepartmentsCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldPreferredDepartments]
	return ok
}

// ResetPreferredDepartments resets all changes to the "preferred_departments" field.
func (m *StudentProfileMutation) ResetPreferredDepartments() {
	m.preferred_departments = nil
	m.appendpreferred_departments = nil
	delete(m.clearedFields, studentprofile.FieldPreferredDepartments)
}

// SetConsultationTypes sets the "consultation_types" field.
func (m *StudentProfileMutation) SetConsultationTypes(s []string) {
	m.consultation_types = &s
	m.appendconsultation_types = nil
}

// ConsultationTypes returns the value of the "consultation_types" field in the mutation.
func (m *StudentProfileMutation) ConsultationTypes() (r []string, exists bool) {
	v := m.consultation_types
	if v == nil {
		return
	}
	return *v, true
}

// OldConsultationTypes returns the old "consultation_types" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldConsultationTypes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConsultationTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConsultationTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConsultationTypes: %w", err)
	}
	return oldValue.ConsultationTypes, nil
}

// AppendConsultationTypes adds s to the "consultation_types" field.
func (m *StudentProfileMutation) AppendConsultationTypes(s []string) {
	m.appendconsultation_types = append(m.appendconsultation_types, s...)
}

// AppendedConsultationTypes returns the list of values that were appended to the "consultation_types" field in this mutation.
func (m *StudentProfileMutation) AppendedConsultationTypes() ([]string, bool) {
	if len(m.appendconsultation_types) == 0 {
		return nil, false
	}
	return m.appendconsultation_types, true
}

// ClearConsultationTypes clears the value of the "consultation_types" field.
func (m *StudentProfileMutation) ClearConsultationTypes() {
	m.consultation_types = nil
	m.appendconsultation_types = nil
	m.clearedFields[studentprofile.FieldConsultationTypes] = struct{}{}
}

// ConsultationTypesCleared returns if the "consultation_types" field was cleared in this mutation.
func (m *StudentProfileMutation) ConsultationTypesCleared() bool {
	_, ok := m.clearedFields[studentprofile.FieldConsultationTypes]
	return ok
}

// ResetConsultationTypes resets all changes to the "consultation_types" field.
func (m *StudentProfileMutation) ResetConsultationTypes() {
	m.consultation_types = nil
	m.appendconsultation_types = nil
	delete(m.clearedFields, studentprofile.FieldConsultationTypes)
}

// SetTotalAppointments sets the "total_appointments" field.
func (m *StudentProfileMutation) SetTotalAppointments(i int) {
	m.total_appointments = &i
	m.addtotal_appointments = nil
}

// TotalAppointments returns the value of the "total_appointments" field in the mutation.
func (m *StudentProfileMutation) TotalAppointments() (r int, exists bool) {
	v := m.total_appointments
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalAppointments returns the old "total_appointments" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldTotalAppointments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalAppointments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalAppointments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalAppointments: %w", err)
	}
	return oldValue.TotalAppointments, nil
}

// AddTotalAppointments adds i to the "total_appointments" field.
func (m *StudentProfileMutation) AddTotalAppointments(i int) {
	if m.addtotal_appointments != nil {
		*m.addtotal_appointments += i
	} else {
		m.addtotal_appointments = &i
	}
}

// AddedTotalAppointments returns the value that was added to the "total_appointments" field in this mutation.
func (m *StudentProfileMutation) AddedTotalAppointments() (r int, exists bool) {
	v := m.addtotal_appointments
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalAppointments resets all changes to the "total_appointments" field.
func (m *StudentProfileMutation) ResetTotalAppointments() {
	m.total_appointments = nil
	m.addtotal_appointments = nil
}

// SetCompletedAppointments sets the "completed_appointments" field.
func (m *StudentProfileMutation) SetCompletedAppointments(i int) {
	m.completed_appointments = &i
	m.addcompleted_appointments = nil
}

// CompletedAppointments returns the value of the "completed_appointments" field in the mutation.
func (m *StudentProfileMutation) CompletedAppointments() (r int, exists bool) {
	v := m.completed_appointments
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAppointments returns the old "completed_appointments" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldCompletedAppointments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAppointments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAppointments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAppointments: %w", err)
	}
	return oldValue.CompletedAppointments, nil
}

// AddCompletedAppointments adds i to the "completed_appointments" field.
func (m *StudentProfileMutation) AddCompletedAppointments(i int) {
	if m.addcompleted_appointments != nil {
		*m.addcompleted_appointments += i
	} else {
		m.addcompleted_appointments = &i
	}
}

// AddedCompletedAppointments returns the value that was added to the "completed_appointments" field in this mutation.
func (m *StudentProfileMutation) AddedCompletedAppointments() (r int, exists bool) {
	v := m.addcompleted_appointments
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletedAppointments resets all changes to the "completed_appointments" field.
func (m *StudentProfileMutation) ResetCompletedAppointments() {
	m.completed_appointments = nil
	m.addcompleted_appointments = nil
}

// SetCancelledAppointments sets the "cancelled_appointments" field.
func (m *StudentProfileMutation) SetCancelledAppointments(i int) {
	m.cancelled_appointments = &i
	m.addcancelled_appointments = nil
}

// CancelledAppointments returns the value of the "cancelled_appointments" field in the mutation.
func (m *StudentProfileMutation) CancelledAppointments() (r int, exists bool) {
	v := m.cancelled_appointments
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelledAppointments returns the old "cancelled_appointments" field's value of the StudentProfile entity.
// If the StudentProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StudentProfileMutation) OldCancelledAppointments(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelledAppointments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelledAppointments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelledAppointments: %w", err)
	}
	return oldValue.CancelledAppointments, nil
}

// AddCancelledAppointments adds i to the "cancelled_appointments" field.
func (m *StudentProfileMutation) AddCancelledAppointments(i int) {
	if m.addcancelled_appointments != nil {
		*m.addcancelled_appointments += i
	} else {
		m.addcancelled_appointments = &i
	}
}

// AddedCancelledAppointments returns the value that was added to the "cancelled_appointments" field in this mutation.
func (m *StudentProfileMutation) AddedCancelledAppointments() (r int, exists bool) {
	v := m.addcancelled_appointments
	if v == nil {
		return
	}
	return *v, true
}

// ResetCancelledAppointments resets all changes to the "cancelled_appointments" field.
func (m *StudentProfileMutation) ResetCancelledAppointments() {
	m.cancelled_appointments = nil
	m.addcancelled_appointments = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *StudentProfileMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[studentprofile.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *StudentProfileMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *StudentProfileMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *StudentProfileMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the StudentProfileMutation builder.
func (m *StudentProfileMutation) Where(ps ...predicate.StudentProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StudentProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StudentProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StudentProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StudentProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StudentProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StudentProfile).
func (m *StudentProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StudentProfileMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.created_at != nil {
		fields = append(fields, studentprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, studentprofile.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, studentprofile.FieldUserID)
	}
	if m.profile_id != nil {
		fields = append(fields, studentprofile.FieldProfileID)
	}
	if m.student_number != nil {
		fields = append(fields, studentprofile.FieldStudentNumber)
	}
	if m.year != nil {
		fields = append(fields, studentprofile.FieldYear)
	}
	if m.major != nil {
		fields = append(fields, studentprofile.FieldMajor)
	}
	if m.department != nil {
		fields = append(fields, studentprofile.FieldDepartment)
	}
	if m.gpa != nil {
		fields = append(fields, studentprofile.FieldGpa)
	}
	if m.expected_graduation != nil {
		fields = append(fields, studentprofile.FieldExpectedGraduation)
	}
	if m.preferred_departments != nil {
		fields = append(fields, studentprofile.FieldPreferredDepartments)
	}
	if m.consultation_types != nil {
		fields = append(fields, studentprofile.FieldConsultationTypes)
	}
	if m.total_appointments != nil {
		fields = append(fields, studentprofile.FieldTotalAppointments)
	}
	if m.completed_appointments != nil {
		fields = append(fields, studentprofile.FieldCompletedAppointments)
	}
	if m.cancelled_appointments != nil {
		fields = append(fields, studentprofile.FieldCancelledAppointments)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StudentProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case studentprofile.FieldCreatedAt:
		return m.CreatedAt()
	case studentprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	case studentprofile.FieldUserID:
		return m.UserID()
	case studentprofile.FieldProfileID:
		return m.ProfileID()
	case studentprofile.FieldStudentNumber:
		return m.StudentNumber()
	case studentprofile.FieldYear:
		return m.Year()
	case studentprofile.FieldMajor:
		return m.Major()
	case studentprofile.FieldDepartment:
		return m.Department()
	case studentprofile.FieldGpa:
		return m.Gpa()
	case studentprofile.FieldExpectedGraduation:
		return m.ExpectedGraduation()
	case studentprofile.FieldPreferredDepartments:
		return m.PreferredDepartments()
	case studentprofile.FieldConsultationTypes:
		return m.ConsultationTypes()
	case studentprofile.FieldTotalAppointments:
		return m.TotalAppointments()
	case studentprofile.FieldCompletedAppointments:
		return m.CompletedAppointments()
	case studentprofile.FieldCancelledAppointments:
		return m.CancelledAppointments()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StudentProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case studentprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case studentprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case studentprofile.FieldUserID:
		return m.OldUserID(ctx)
	case studentprofile.FieldProfileID:
		return m.OldProfileID(ctx)
	case studentprofile.FieldStudentNumber:
		return m.OldStudentNumber(ctx)
	case studentprofile.FieldYear:
		return m.OldYear(ctx)
	case studentprofile.FieldMajor:
		return m.OldMajor(ctx)
	case studentprofile.FieldDepartment:
		return m.OldDepartment(ctx)
	case studentprofile.FieldGpa:
		return m.OldGpa(ctx)
	case studentprofile.FieldExpectedGraduation:
		return m.OldExpectedGraduation(ctx)
	case studentprofile.FieldPreferredDepartments:
		return m.OldPreferredDepartments(ctx)
	case studentprofile.FieldConsultationTypes:
		return m.OldConsultationTypes(ctx)
	case studentprofile.FieldTotalAppointments:
		return m.OldTotalAppointments(ctx)
	case studentprofile.FieldCompletedAppointments:
		return m.OldCompletedAppointments(ctx)
	case studentprofile.FieldCancelledAppointments:
		return m.OldCancelledAppointments(ctx)
	}
	return nil, fmt.Errorf("unknown StudentProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case studentprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case studentprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case studentprofile.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case studentprofile.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case studentprofile.FieldStudentNumber:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStudentNumber(v)
		return nil
	case studentprofile.FieldYear:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case studentprofile.FieldMajor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMajor(v)
		return nil
	case studentprofile.FieldDepartment:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDepartment(v)
		return nil
	case studentprofile.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGpa(v)
		return nil
	case studentprofile.FieldExpectedGraduation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedGraduation(v)
		return nil
	case studentprofile.FieldPreferredDepartments:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPreferredDepartments(v)
		return nil
	case studentprofile.FieldConsultationTypes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConsultationTypes(v)
		return nil
	case studentprofile.FieldTotalAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalAppointments(v)
		return nil
	case studentprofile.FieldCompletedAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAppointments(v)
		return nil
	case studentprofile.FieldCancelledAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelledAppointments(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StudentProfileMutation) AddedFields() []string {
	var fields []string
	if m.addgpa != nil {
		fields = append(fields, studentprofile.FieldGpa)
	}
	if m.addtotal_appointments != nil {
		fields = append(fields, studentprofile.FieldTotalAppointments)
	}
	if m.addcompleted_appointments != nil {
		fields = append(fields, studentprofile.FieldCompletedAppointments)
	}
	if m.addcancelled_appointments != nil {
		fields = append(fields, studentprofile.FieldCancelledAppointments)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StudentProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case studentprofile.FieldGpa:
		return m.AddedGpa()
	case studentprofile.FieldTotalAppointments:
		return m.AddedTotalAppointments()
	case studentprofile.FieldCompletedAppointments:
		return m.AddedCompletedAppointments()
	case studentprofile.FieldCancelledAppointments:
		return m.AddedCancelledAppointments()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StudentProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case studentprofile.FieldGpa:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGpa(v)
		return nil
	case studentprofile.FieldTotalAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalAppointments(v)
		return nil
	case studentprofile.FieldCompletedAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAppointments(v)
		return nil
	case studentprofile.FieldCancelledAppointments:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCancelledAppointments(v)
		return nil
	}
	return fmt.Errorf("unknown StudentProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StudentProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(studentprofile.FieldStudentNumber) {
		fields = append(fields, studentprofile.FieldStudentNumber)
	}
	if m.FieldCleared(studentprofile.FieldYear) {
		fields = append(fields, studentprofile.FieldYear)
	}
	if m.FieldCleared(studentprofile.FieldMajor) {
		fields = append(fields, studentprofile.FieldMajor)
	}
	if m.FieldCleared(studentprofile.FieldDepartment) {
		fields = append(fields, studentprofile.FieldDepartment)
	}
	if m.FieldCleared(studentprofile.FieldGpa) {
		fields = append(fields, studentprofile.FieldGpa)
	}
	if m.FieldCleared(studentprofile.FieldExpectedGraduation) {
		fields = append(fields, studentprofile.FieldExpectedGraduation)
	}
	if m.FieldCleared(studentprofile.FieldPreferredDepartments) {
		fields = append(fields, studentprofile.FieldPreferredDepartments)
	}
	if m.FieldCleared(studentprofile.FieldConsultationTypes) {
		fields = append(fields, studentprofile.FieldConsultationTypes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StudentProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StudentProfileMutation) ClearField(name string) error {
	switch name {
	case studentprofile.FieldStudentNumber:
		m.ClearStudentNumber()
		return nil
	case studentprofile.FieldYear:
		m.ClearYear()
		return nil
	case studentprofile.FieldMajor:
		m.ClearMajor()
		return nil
	case studentprofile.FieldDepartment:
		m.ClearDepartment()
		return nil
	case studentprofile.FieldGpa:
		m.ClearGpa()
		return nil
	case studentprofile.FieldExpectedGraduation:
		m.ClearExpectedGraduation()
		return nil
	case studentprofile.FieldPreferredDepartments:
		m.ClearPreferredDepartments()
		return nil
	case studentprofile.FieldConsultationTypes:
		m.ClearConsultationTypes()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StudentProfileMutation) ResetField(name string) error {
	switch name {
	case studentprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case studentprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case studentprofile.FieldUserID:
		m.ResetUserID()
		return nil
	case studentprofile.FieldProfileID:
		m.ResetProfileID()
		return nil
	case studentprofile.FieldStudentNumber:
		m.ResetStudentNumber()
		return nil
	case studentprofile.FieldYear:
		m.ResetYear()
		return nil
	case studentprofile.FieldMajor:
		m.ResetMajor()
		return nil
	case studentprofile.FieldDepartment:
		m.ResetDepartment()
		return nil
	case studentprofile.FieldGpa:
		m.ResetGpa()
		return nil
	case studentprofile.FieldExpectedGraduation:
		m.ResetExpectedGraduation()
		return nil
	case studentprofile.FieldPreferredDepartments:
		m.ResetPreferredDepartments()
		return nil
	case studentprofile.FieldConsultationTypes:
		m.ResetConsultationTypes()
		return nil
	case studentprofile.FieldTotalAppointments:
		m.ResetTotalAppointments()
		return nil
	case studentprofile.FieldCompletedAppointments:
		m.ResetCompletedAppointments()
		return nil
	case studentprofile.FieldCancelledAppointments:
		m.ResetCancelledAppointments()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StudentProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, studentprofile.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StudentProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case studentprofile.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StudentProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StudentProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StudentProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, studentprofile.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StudentProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case studentprofile.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StudentProfileMutation) ClearEdge(name string) error {
	switch name {
	case studentprofile.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StudentProfileMutation) ResetEdge(name string) error {
	switch name {
	case studentprofile.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown StudentProfile edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	created_at               *time.Time
	updated_at               *time.Time
	deleted_at               *time.Time
	first_name               *string
	last_name                *string
	email                    *string
	role                     *user.Role
	registration_code        *string
	password_hash            *string
	email_verified           *bool
	email_verified_at        *time.Time
	profile_complete         *bool
	profile_id               *string
	last_login_at            *time.Time
	failed_login_attempts    *int
	addfailed_login_attempts *int
	locked_until             *time.Time
	last_failed_login_at     *time.Time
	clearedFields            map[string]struct{}
	done                     bool
	oldValue                 func(context.Context) (*User, error)
	predicates               []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *UserMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *UserMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *UserMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[user.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *UserMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *UserMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, user.FieldDeletedAt)
}

// SetFirstName sets the "first_name" field.
func (m *UserMutation) SetFirstName(s string) {
	m.first_name = &s
}

// FirstName returns the value of the "first_name" field in the mutation.
func (m *UserMutation) FirstName() (r string, exists bool) {
	v := m.first_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstName returns the old "first_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFirstName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstName: %w", err)
	}
	return oldValue.FirstName, nil
}

// ResetFirstName resets all changes to the "first_name" field.
func (m *UserMutation) ResetFirstName() {
	m.first_name = nil
}

// SetLastName sets the "last_name" field.
func (m *UserMutation) SetLastName(s string) {
	m.last_name = &s
}

// LastName returns the value of the "last_name" field in the mutation.
func (m *UserMutation) LastName() (r string, exists bool) {
	v := m.last_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLastName returns the old "last_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastName: %w", err)
	}
	return oldValue.LastName, nil
}

// ResetLastName resets all changes to the "last_name" field.
func (m *UserMutation) ResetLastName() {
	m.last_name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetRegistrationCode sets the "registration_code" field.
func (m *UserMutation) SetRegistrationCode(s string) {
	m.registration_code = &s
}

// RegistrationCode returns the value of the "registration_code" field in the mutation.
func (m *UserMutation) RegistrationCode() (r string, exists bool) {
	v := m.registration_code
	if v == nil {
		return
	}
	return *v, true
}

// OldRegistrationCode returns the old "registration_code" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRegistrationCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegistrationCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegistrationCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegistrationCode: %w", err)
	}
	return oldValue.RegistrationCode, nil
}

// ResetRegistrationCode resets all changes to the "registration_code" field.
func (m *UserMutation) ResetRegistrationCode() {
	m.registration_code = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetEmailVerified sets the "email_verified" field.
func (m *UserMutation) SetEmailVerified(b bool) {
	m.email_verified = &b
}

// EmailVerified returns the value of the "email_verified" field in the mutation.
func (m *UserMutation) EmailVerified() (r bool, exists bool) {
	v := m.email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerified returns the old "email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerified: %w", err)
	}
	return oldValue.EmailVerified, nil
}

// ResetEmailVerified resets all changes to the "email_verified" field.
func (m *UserMutation) ResetEmailVerified() {
	m.email_verified = nil
}

// SetEmailVerifiedAt sets the "email_verified_at" field.
func (m *UserMutation) SetEmailVerifiedAt(t time.Time) {
	m.email_verified_at = &t
}

// EmailVerifiedAt returns the value of the "email_verified_at" field in the mutation.
func (m *UserMutation) EmailVerifiedAt() (r time.Time, exists bool) {
	v := m.email_verified_at
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerifiedAt returns the old "email_verified_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerifiedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerifiedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerifiedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerifiedAt: %w", err)
	}
	return oldValue.EmailVerifiedAt, nil
}

// ClearEmailVerifiedAt clears the value of the "email_verified_at" field.
func (m *UserMutation) ClearEmailVerifiedAt() {
	m.email_verified_at = nil
	m.clearedFields[user.FieldEmailVerifiedAt] = struct{}{}
}

// EmailVerifiedAtCleared returns if the "email_verified_at" field was cleared in this mutation.
func (m *UserMutation) EmailVerifiedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldEmailVerifiedAt]
	return ok
}

// ResetEmailVerifiedAt resets all changes to the "email_verified_at" field.
func (m *UserMutation) ResetEmailVerifiedAt() {
	m.email_verified_at = nil
	delete(m.clearedFields, user.FieldEmailVerifiedAt)
}

// SetProfileComplete sets the "profile_complete" field.
func (m *UserMutation) SetProfileComplete(b bool) {
	m.profile_complete = &b
}

// ProfileComplete returns the value of the "profile_complete" field in the mutation.
func (m *UserMutation) ProfileComplete() (r bool, exists bool) {
	v := m.profile_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileComplete returns the old "profile_complete" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfileComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileComplete: %w", err)
	}
	return oldValue.ProfileComplete, nil
}

// ResetProfileComplete resets all changes to the "profile_complete" field.
func (m *UserMutation) ResetProfileComplete() {
	m.profile_complete = nil
}

// SetProfileID sets the "profile_id" field.
func (m *UserMutation) SetProfileID(s string) {
	m.profile_id = &s
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *UserMutation) ProfileID() (r string, exists bool) {
	v := m.profile_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldProfileID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *UserMutation) ResetProfileID() {
	m.profile_id = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (m *UserMutation) SetFailedLoginAttempts(i int) {
	m.failed_login_attempts = &i
	m.addfailed_login_attempts = nil
}

// FailedLoginAttempts returns the value of the "failed_login_attempts" field in the mutation.
func (m *UserMutation) FailedLoginAttempts() (r int, exists bool) {
	v := m.failed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldFailedLoginAttempts returns the old "failed_login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFailedLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailedLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailedLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailedLoginAttempts: %w", err)
	}
	return oldValue.FailedLoginAttempts, nil
}

// AddFailedLoginAttempts adds i to the "failed_login_attempts" field.
func (m *UserMutation) AddFailedLoginAttempts(i int) {
	if m.addfailed_login_attempts != nil {
		*m.addfailed_login_attempts += i
	} else {
		m.addfailed_login_attempts = &i
	}
}

// AddedFailedLoginAttempts returns the value that was added to the "failed_login_attempts" field in this mutation.
func (m *UserMutation) AddedFailedLoginAttempts() (r int, exists bool) {
	v := m.addfailed_login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailedLoginAttempts resets all changes to the "failed_login_attempts" field.
func (m *UserMutation) ResetFailedLoginAttempts() {
	m.failed_login_attempts = nil
	m.addfailed_login_attempts = nil
}

// SetLockedUntil sets the "locked_until" field.
func (m *UserMutation) SetLockedUntil(t time.Time) {
	m.locked_until = &t
}

// LockedUntil returns the value of the "locked_until" field in the mutation.
func (m *UserMutation) LockedUntil() (r time.Time, exists bool) {
	v := m.locked_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockedUntil returns the old "locked_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockedUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockedUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockedUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockedUntil: %w", err)
	}
	return oldValue.LockedUntil, nil
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (m *UserMutation) ClearLockedUntil() {
	m.locked_until = nil
	m.clearedFields[user.FieldLockedUntil] = struct{}{}
}

// LockedUntilCleared returns if the "locked_until" field was cleared in this mutation.
func (m *UserMutation) LockedUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockedUntil]
	return ok
}

// ResetLockedUntil resets all changes to the "locked_until" field.
func (m *UserMutation) ResetLockedUntil() {
	m.locked_until = nil
	delete(m.clearedFields, user.FieldLockedUntil)
}

// SetLastFailedLoginAt sets the "last_failed_login_at" field.
func (m *UserMutation) SetLastFailedLoginAt(t time.Time) {
	m.last_failed_login_at = &t
}

// LastFailedLoginAt returns the value of the "last_failed_login_at" field in the mutation.
func (m *UserMutation) LastFailedLoginAt() (r time.Time, exists bool) {
	v := m.last_failed_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastFailedLoginAt returns the old "last_failed_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastFailedLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastFailedLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastFailedLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastFailedLoginAt: %w", err)
	}
	return oldValue.LastFailedLoginAt, nil
}

// ClearLastFailedLoginAt clears the value of the "last_failed_login_at" field.
func (m *UserMutation) ClearLastFailedLoginAt() {
	m.last_failed_login_at = nil
	m.clearedFields[user.FieldLastFailedLoginAt] = struct{}{}
}

// LastFailedLoginAtCleared returns if the "last_failed_login_at" field was cleared in this mutation.
func (m *UserMutation) LastFailedLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastFailedLoginAt]
	return ok
}

// ResetLastFailedLoginAt resets all changes to the "last_failed_login_at" field.
func (m *UserMutation) ResetLastFailedLoginAt() {
	m.last_failed_login_at = nil
	delete(m.clearedFields, user.FieldLastFailedLoginAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.first_name != nil {
		fields = append(fields, user.FieldFirstName)
	}
	if m.last_name != nil {
		fields = append(fields, user.FieldLastName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.registration_code != nil {
		fields = append(fields, user.FieldRegistrationCode)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.email_verified != nil {
		fields = append(fields, user.FieldEmailVerified)
	}
	if m.email_verified_at != nil {
		fields = append(fields, user.FieldEmailVerifiedAt)
	}
	if m.profile_complete != nil {
		fields = append(fields, user.FieldProfileComplete)
	}
	if m.profile_id != nil {
		fields = append(fields, user.FieldProfileID)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.failed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	if m.locked_until != nil {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.last_failed_login_at != nil {
		fields = append(fields, user.FieldLastFailedLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldDeletedAt:
		return m.DeletedAt()
	case user.FieldFirstName:
		return m.FirstName()
	case user.FieldLastName:
		return m.LastName()
	case user.FieldEmail:
		return m.Email()
	case user.FieldRole:
		return m.Role()
	case user.FieldRegistrationCode:
		return m.RegistrationCode()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldEmailVerified:
		return m.EmailVerified()
	case user.FieldEmailVerifiedAt:
		return m.EmailVerifiedAt()
	case user.FieldProfileComplete:
		return m.ProfileComplete()
	case user.FieldProfileID:
		return m.ProfileID()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldFailedLoginAttempts:
		return m.FailedLoginAttempts()
	case user.FieldLockedUntil:
		return m.LockedUntil()
	case user.FieldLastFailedLoginAt:
		return m.LastFailedLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case user.FieldFirstName:
		return m.OldFirstName(ctx)
	case user.FieldLastName:
		return m.OldLastName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldRegistrationCode:
		return m.OldRegistrationCode(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldEmailVerified:
		return m.OldEmailVerified(ctx)
	case user.FieldEmailVerifiedAt:
		return m.OldEmailVerifiedAt(ctx)
	case user.FieldProfileComplete:
		return m.OldProfileComplete(ctx)
	case user.FieldProfileID:
		return m.OldProfileID(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldFailedLoginAttempts:
		return m.OldFailedLoginAttempts(ctx)
	case user.FieldLockedUntil:
		return m.OldLockedUntil(ctx)
	case user.FieldLastFailedLoginAt:
		return m.OldLastFailedLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case user.FieldFirstName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstName(v)
		return nil
	case user.FieldLastName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldRegistrationCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegistrationCode(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerified(v)
		return nil
	case user.FieldEmailVerifiedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerifiedAt(v)
		return nil
	case user.FieldProfileComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileComplete(v)
		return nil
	case user.FieldProfileID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailedLoginAttempts(v)
		return nil
	case user.FieldLockedUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockedUntil(v)
		return nil
	case user.FieldLastFailedLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastFailedLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addfailed_login_attempts != nil {
		fields = append(fields, user.FieldFailedLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldFailedLoginAttempts:
		return m.AddedFailedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldFailedLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailedLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldDeletedAt) {
		fields = append(fields, user.FieldDeletedAt)
	}
	if m.FieldCleared(user.FieldEmailVerifiedAt) {
		fields = append(fields, user.FieldEmailVerifiedAt)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.FieldCleared(user.FieldLockedUntil) {
		fields = append(fields, user.FieldLockedUntil)
	}
	if m.FieldCleared(user.FieldLastFailedLoginAt) {
		fields = append(fields, user.FieldLastFailedLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case user.FieldEmailVerifiedAt:
		m.ClearEmailVerifiedAt()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	case user.FieldLockedUntil:
		m.ClearLockedUntil()
		return nil
	case user.FieldLastFailedLoginAt:
		m.ClearLastFailedLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case user.FieldFirstName:
		m.ResetFirstName()
		return nil
	case user.FieldLastName:
		m.ResetLastName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldRegistrationCode:
		m.ResetRegistrationCode()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldEmailVerified:
		m.ResetEmailVerified()
		return nil
	case user.FieldEmailVerifiedAt:
		m.ResetEmailVerifiedAt()
		return nil
	case user.FieldProfileComplete:
		m.ResetProfileComplete()
		return nil
	case user.FieldProfileID:
		m.ResetProfileID()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldFailedLoginAttempts:
		m.ResetFailedLoginAttempts()
		return nil
	case user.FieldLockedUntil:
		m.ResetLockedUntil()
		return nil
	case user.FieldLastFailedLoginAt:
		m.ResetLastFailedLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// UserSessionMutation represents an operation that mutates the UserSession nodes in the graph.
type UserSessionMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	created_at         *time.Time
	updated_at         *time.Time
	session_id         *string
	refresh_token_hash *string
	user_agent         *string
	ip_address         *string
	expires_at         *time.Time
	last_used_at       *time.Time
	revoked_at         *time.Time
	clearedFields      map[string]struct{}
	user               *uuid.UUID
	cleareduser        bool
	done               bool
	oldValue           func(context.Context) (*UserSession, error)
	predicates         []predicate.UserSession
}

var _ ent.Mutation = (*UserSessionMutation)(nil)

// usersessionOption allows management of the mutation configuration using functional options.
type usersessionOption func(*UserSessionMutation)

// newUserSessionMutation creates new mutation for the UserSession entity.
func newUserSessionMutation(c config, op Op, opts ...usersessionOption) *UserSessionMutation {
	m := &UserSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeUserSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserSessionID sets the ID field of the mutation.
func withUserSessionID(id uuid.UUID) usersessionOption {
	return func(m *UserSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *UserSession
		)
		m.oldValue = func(ctx context.Context) (*UserSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().UserSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUserSession sets the old UserSession of the mutation.
func withUserSession(node *UserSession) usersessionOption {
	return func(m *UserSessionMutation) {
		m.oldValue = func(context.Context) (*UserSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of UserSession entities.
func (m *UserSessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserSessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserSessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().UserSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserSessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserSessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserSessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserSessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserSessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserSessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUserID sets the "user_id" field.
func (m *UserSessionMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *UserSessionMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *UserSessionMutation) ResetUserID() {
	m.user = nil
}

// SetSessionID sets the "session_id" field.
func (m *UserSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *UserSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *UserSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetRefreshTokenHash sets the "refresh_token_hash" field.
func (m *UserSessionMutation) SetRefreshTokenHash(s string) {
	m.refresh_token_hash = &s
}

// RefreshTokenHash returns the value of the "refresh_token_hash" field in the mutation.
func (m *UserSessionMutation) RefreshTokenHash() (r string, exists bool) {
	v := m.refresh_token_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshTokenHash returns the old "refresh_token_hash" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRefreshTokenHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshTokenHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshTokenHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshTokenHash: %w", err)
	}
	return oldValue.RefreshTokenHash, nil
}

// ClearRefreshTokenHash clears the value of the "refresh_token_hash" field.
func (m *UserSessionMutation) ClearRefreshTokenHash() {
	m.refresh_token_hash = nil
	m.clearedFields[usersession.FieldRefreshTokenHash] = struct{}{}
}

// RefreshTokenHashCleared returns if the "refresh_token_hash" field was cleared in this mutation.
func (m *UserSessionMutation) RefreshTokenHashCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRefreshTokenHash]
	return ok
}

// ResetRefreshTokenHash resets all changes to the "refresh_token_hash" field.
func (m *UserSessionMutation) ResetRefreshTokenHash() {
	m.refresh_token_hash = nil
	delete(m.clearedFields, usersession.FieldRefreshTokenHash)
}

// SetUserAgent sets the "user_agent" field.
func (m *UserSessionMutation) SetUserAgent(s string) {
	m.user_agent = &s
}

// UserAgent returns the value of the "user_agent" field in the mutation.
func (m *UserSessionMutation) UserAgent() (r string, exists bool) {
	v := m.user_agent
	if v == nil {
		return
	}
	return *v, true
}

// OldUserAgent returns the old "user_agent" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldUserAgent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserAgent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserAgent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserAgent: %w", err)
	}
	return oldValue.UserAgent, nil
}

// ClearUserAgent clears the value of the "user_agent" field.
func (m *UserSessionMutation) ClearUserAgent() {
	m.user_agent = nil
	m.clearedFields[usersession.FieldUserAgent] = struct{}{}
}

// UserAgentCleared returns if the "user_agent" field was cleared in this mutation.
func (m *UserSessionMutation) UserAgentCleared() bool {
	_, ok := m.clearedFields[usersession.FieldUserAgent]
	return ok
}

// ResetUserAgent resets all changes to the "user_agent" field.
func (m *UserSessionMutation) ResetUserAgent() {
	m.user_agent = nil
	delete(m.clearedFields, usersession.FieldUserAgent)
}

// SetIPAddress sets the "ip_address" field.
func (m *UserSessionMutation) SetIPAddress(s string) {
	m.ip_address = &s
}

// IPAddress returns the value of the "ip_address" field in the mutation.
func (m *UserSessionMutation) IPAddress() (r string, exists bool) {
	v := m.ip_address
	if v == nil {
		return
	}
	return *v, true
}

// OldIPAddress returns the old "ip_address" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldIPAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIPAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIPAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIPAddress: %w", err)
	}
	return oldValue.IPAddress, nil
}

// ClearIPAddress clears the value of the "ip_address" field.
func (m *UserSessionMutation) ClearIPAddress() {
	m.ip_address = nil
	m.clearedFields[usersession.FieldIPAddress] = struct{}{}
}

// IPAddressCleared returns if the "ip_address" field was cleared in this mutation.
func (m *UserSessionMutation) IPAddressCleared() bool {
	_, ok := m.clearedFields[usersession.FieldIPAddress]
	return ok
}

// ResetIPAddress resets all changes to the "ip_address" field.
func (m *UserSessionMutation) ResetIPAddress() {
	m.ip_address = nil
	delete(m.clearedFields, usersession.FieldIPAddress)
}

// SetExpiresAt sets the "expires_at" field.
func (m *UserSessionMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *UserSessionMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *UserSessionMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetLastUsedAt sets the "last_used_at" field.
func (m *UserSessionMutation) SetLastUsedAt(t time.Time) {
	m.last_used_at = &t
}

// LastUsedAt returns the value of the "last_used_at" field in the mutation.
func (m *UserSessionMutation) LastUsedAt() (r time.Time, exists bool) {
	v := m.last_used_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUsedAt returns the old "last_used_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldLastUsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUsedAt: %w", err)
	}
	return oldValue.LastUsedAt, nil
}

// ClearLastUsedAt clears the value of the "last_used_at" field.
func (m *UserSessionMutation) ClearLastUsedAt() {
	m.last_used_at = nil
	m.clearedFields[usersession.FieldLastUsedAt] = struct{}{}
}

// LastUsedAtCleared returns if the "last_used_at" field was cleared in this mutation.
func (m *UserSessionMutation) LastUsedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldLastUsedAt]
	return ok
}

// ResetLastUsedAt resets all changes to the "last_used_at" field.
func (m *UserSessionMutation) ResetLastUsedAt() {
	m.last_used_at = nil
	delete(m.clearedFields, usersession.FieldLastUsedAt)
}

// SetRevokedAt sets the "revoked_at" field.
func (m *UserSessionMutation) SetRevokedAt(t time.Time) {
	m.revoked_at = &t
}

// RevokedAt returns the value of the "revoked_at" field in the mutation.
func (m *UserSessionMutation) RevokedAt() (r time.Time, exists bool) {
	v := m.revoked_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRevokedAt returns the old "revoked_at" field's value of the UserSession entity.
// If the UserSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserSessionMutation) OldRevokedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevokedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevokedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevokedAt: %w", err)
	}
	return oldValue.RevokedAt, nil
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (m *UserSessionMutation) ClearRevokedAt() {
	m.revoked_at = nil
	m.clearedFields[usersession.FieldRevokedAt] = struct{}{}
}

// RevokedAtCleared returns if the "revoked_at" field was cleared in this mutation.
func (m *UserSessionMutation) RevokedAtCleared() bool {
	_, ok := m.clearedFields[usersession.FieldRevokedAt]
	return ok
}

// ResetRevokedAt resets all changes to the "revoked_at" field.
func (m *UserSessionMutation) ResetRevokedAt() {
	m.revoked_at = nil
	delete(m.clearedFields, usersession.FieldRevokedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *UserSessionMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[usersession.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *UserSessionMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *UserSessionMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *UserSessionMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the UserSessionMutation builder.
func (m *UserSessionMutation) Where(ps ...predicate.UserSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.UserSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (UserSession).
func (m *UserSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, usersession.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, usersession.FieldUpdatedAt)
	}
	if m.user != nil {
		fields = append(fields, usersession.FieldUserID)
	}
	if m.session_id != nil {
		fields = append(fields, usersession.FieldSessionID)
	}
	if m.refresh_token_hash != nil {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.user_agent != nil {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.ip_address != nil {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.expires_at != nil {
		fields = append(fields, usersession.FieldExpiresAt)
	}
	if m.last_used_at != nil {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.revoked_at != nil {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.CreatedAt()
	case usersession.FieldUpdatedAt:
		return m.UpdatedAt()
	case usersession.FieldUserID:
		return m.UserID()
	case usersession.FieldSessionID:
		return m.SessionID()
	case usersession.FieldRefreshTokenHash:
		return m.RefreshTokenHash()
	case usersession.FieldUserAgent:
		return m.UserAgent()
	case usersession.FieldIPAddress:
		return m.IPAddress()
	case usersession.FieldExpiresAt:
		return m.ExpiresAt()
	case usersession.FieldLastUsedAt:
		return m.LastUsedAt()
	case usersession.FieldRevokedAt:
		return m.RevokedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case usersession.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case usersession.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case usersession.FieldUserID:
		return m.OldUserID(ctx)
	case usersession.FieldSessionID:
		return m.OldSessionID(ctx)
	case usersession.FieldRefreshTokenHash:
		return m.OldRefreshTokenHash(ctx)
	case usersession.FieldUserAgent:
		return m.OldUserAgent(ctx)
	case usersession.FieldIPAddress:
		return m.OldIPAddress(ctx)
	case usersession.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case usersession.FieldLastUsedAt:
		return m.OldLastUsedAt(ctx)
	case usersession.FieldRevokedAt:
		return m.OldRevokedAt(ctx)
	}
	return nil, fmt.Errorf("unknown UserSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case usersession.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case usersession.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case usersession.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case usersession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case usersession.FieldRefreshTokenHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshTokenHash(v)
		return nil
	case usersession.FieldUserAgent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserAgent(v)
		return nil
	case usersession.FieldIPAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIPAddress(v)
		return nil
	case usersession.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case usersession.FieldLastUsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUsedAt(v)
		return nil
	case usersession.FieldRevokedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevokedAt(v)
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserSessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserSessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown UserSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(usersession.FieldRefreshTokenHash) {
		fields = append(fields, usersession.FieldRefreshTokenHash)
	}
	if m.FieldCleared(usersession.FieldUserAgent) {
		fields = append(fields, usersession.FieldUserAgent)
	}
	if m.FieldCleared(usersession.FieldIPAddress) {
		fields = append(fields, usersession.FieldIPAddress)
	}
	if m.FieldCleared(usersession.FieldLastUsedAt) {
		fields = append(fields, usersession.FieldLastUsedAt)
	}
	if m.FieldCleared(usersession.FieldRevokedAt) {
		fields = append(fields, usersession.FieldRevokedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserSessionMutation) ClearField(name string) error {
	switch name {
	case usersession.FieldRefreshTokenHash:
		m.ClearRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ClearUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ClearIPAddress()
		return nil
	case usersession.FieldLastUsedAt:
		m.ClearLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ClearRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserSessionMutation) ResetField(name string) error {
	switch name {
	case usersession.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case usersession.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case usersession.FieldUserID:
		m.ResetUserID()
		return nil
	case usersession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case usersession.FieldRefreshTokenHash:
		m.ResetRefreshTokenHash()
		return nil
	case usersession.FieldUserAgent:
		m.ResetUserAgent()
		return nil
	case usersession.FieldIPAddress:
		m.ResetIPAddress()
		return nil
	case usersession.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case usersession.FieldLastUsedAt:
		m.ResetLastUsedAt()
		return nil
	case usersession.FieldRevokedAt:
		m.ResetRevokedAt()
		return nil
	}
	return fmt.Errorf("unknown UserSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserSessionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case usersession.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, usersession.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserSessionMutation) EdgeCleared(name string) bool {
	switch name {
	case usersession.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserSessionMutation) ClearEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserSessionMutation) ResetEdge(name string) error {
	switch name {
	case usersession.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown UserSession edge %s", name)
}

// Package appointment implements the booking workflow between students and
// faculty members: request, decide, reschedule, cancel, plus the two
// annotation paths (faculty notes, student feedback).
//
// Every state transition is a conditional update guarded by the current
// status, so two concurrent decisions on the same appointment cannot both
// win. Transitions publish a NATS event consumed by the notification worker.
package appointment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	entappt "github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/predicate"
	entsprofile "github.com/proflink/proflink_backend/internal/repo/studentprofile"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type RequestInput struct {
	StudentID     uuid.UUID
	FacultyID     uuid.UUID
	RequestedTime time.Time
	Reason        string
}

type ListRequest struct {
	Status  *string
	From    *time.Time
	To      *time.Time
	Page    int
	PerPage int
}

const (
	DecisionAccept  = "accepted"
	DecisionDecline = "declined"
)

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Request(ctx context.Context, in RequestInput) (*repo.Appointment, error)
	Decide(ctx context.Context, facultyID, apptID uuid.UUID, decision string) (*repo.Appointment, error)
	Reschedule(ctx context.Context, facultyID, apptID uuid.UUID, newTime time.Time) (*repo.Appointment, error)
	Cancel(ctx context.Context, studentID, apptID uuid.UUID) error
	AddFacultyNotes(ctx context.Context, facultyID, apptID uuid.UUID, notes string) (*repo.Appointment, error)
	SubmitFeedback(ctx context.Context, studentID, apptID uuid.UUID, rating int, feedback string) error
	ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	ListForFaculty(ctx context.Context, facultyID uuid.UUID, req ListRequest) ([]*repo.Appointment, error)
	GetByID(ctx context.Context, actorID, apptID uuid.UUID) (*repo.Appointment, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type appointmentService struct {
	db  *repo.Client
	nc  *nats.Conn
	cfg *config.Config
}

func New(db *repo.Client, nc *nats.Conn, cfg *config.Config) Service {
	return &appointmentService{db: db, nc: nc, cfg: cfg}
}

func (s *appointmentService) Request(ctx context.Context, in RequestInput) (*repo.Appointment, error) {
	if strings.TrimSpace(in.Reason) == "" {
		return nil, ErrReasonRequired
	}
	if in.RequestedTime.IsZero() {
		return nil, ErrRequestedTimeRequired
	}

	student, err := s.db.User.Query().
		Where(entuser.ID(in.StudentID), entuser.RoleEQ(entuser.RoleStudent)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("load student: %w", err)
	}

	faculty, err := s.db.User.Query().
		Where(entuser.ID(in.FacultyID), entuser.RoleEQ(entuser.RoleFaculty)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrFacultyNotFound
		}
		return nil, fmt.Errorf("load faculty: %w", err)
	}

	appt, err := s.db.Appointment.Create().
		SetStudentID(student.ID).
		SetFacultyID(faculty.ID).
		SetStudentName(student.FirstName + " " + student.LastName).
		SetStudentEmail(student.Email).
		SetFacultyName(faculty.FirstName + " " + faculty.LastName).
		SetFacultyEmail(faculty.Email).
		SetRequestedTime(in.RequestedTime).
		SetReason(strings.TrimSpace(in.Reason)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.bumpStudentStat(ctx, student.ID, statTotal)
	s.publish("requested", appt.ID)

	return appt, nil
}

func (s *appointmentService) Decide(ctx context.Context, facultyID, apptID uuid.UUID, decision string) (*repo.Appointment, error) {
	if decision != DecisionAccept && decision != DecisionDecline {
		return nil, ErrInvalidDecision
	}

	appt, err := s.ownedByFaculty(ctx, facultyID, apptID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusEQ(entappt.StatusPending),
		)

	event := "declined"
	if decision == DecisionAccept {
		upd = upd.
			SetStatus(entappt.StatusAccepted).
			SetMeetingLink(s.meetingLink(appt.ID))
		event = "accepted"
	} else {
		upd = upd.SetStatus(entappt.StatusDeclined)
	}

	n, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("decide appointment: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	s.publish(event, appt.ID)

	return s.db.Appointment.Get(ctx, appt.ID)
}

func (s *appointmentService) Reschedule(ctx context.Context, facultyID, apptID uuid.UUID, newTime time.Time) (*repo.Appointment, error) {
	if newTime.IsZero() {
		return nil, ErrRescheduleTimeRequired
	}

	appt, err := s.ownedByFaculty(ctx, facultyID, apptID)
	if err != nil {
		return nil, err
	}

	n, err := s.db.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusAccepted),
		).
		SetStatus(entappt.StatusRescheduled).
		SetRescheduleTime(newTime).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}
	if n == 0 {
		return nil, ErrInvalidTransition
	}

	s.publish("rescheduled", appt.ID)

	return s.db.Appointment.Get(ctx, appt.ID)
}

func (s *appointmentService) Cancel(ctx context.Context, studentID, apptID uuid.UUID) error {
	appt, err := s.ownedByStudent(ctx, studentID, apptID)
	if err != nil {
		return err
	}

	n, err := s.db.Appointment.Update().
		Where(
			entappt.ID(appt.ID),
			entappt.StatusIn(entappt.StatusPending, entappt.StatusRescheduled),
		).
		SetStatus(entappt.StatusCancelled).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("cancel appointment: %w", err)
	}
	if n == 0 {
		return ErrInvalidTransition
	}

	s.bumpStudentStat(ctx, studentID, statCancelled)
	s.publish("cancelled", appt.ID)

	return nil
}

func (s *appointmentService) AddFacultyNotes(ctx context.Context, facultyID, apptID uuid.UUID, notes string) (*repo.Appointment, error) {
	appt, err := s.ownedByFaculty(ctx, facultyID, apptID)
	if err != nil {
		return nil, err
	}
	if appt.Status != entappt.StatusAccepted {
		return nil, ErrInvalidTransition
	}

	appt, err = s.db.Appointment.UpdateOne(appt).
		SetFacultyNotes(notes).
		SetNotesUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save faculty notes: %w", err)
	}

	s.publish("notes", appt.ID)

	return appt, nil
}

func (s *appointmentService) SubmitFeedback(ctx context.Context, studentID, apptID uuid.UUID, rating int, feedback string) error {
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}

	appt, err := s.ownedByStudent(ctx, studentID, apptID)
	if err != nil {
		return err
	}
	if appt.Status != entappt.StatusAccepted {
		return ErrInvalidTransition
	}

	err = s.db.Appointment.UpdateOne(appt).
		SetStudentRating(rating).
		SetStudentFeedback(feedback).
		SetFeedbackSubmittedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("save feedback: %w", err)
	}

	// Feedback is the signal that the meeting actually happened.
	s.bumpStudentStat(ctx, studentID, statCompleted)

	return nil
}

func (s *appointmentService) ListForStudent(ctx context.Context, studentID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	return s.list(ctx, entappt.StudentID(studentID), req)
}

func (s *appointmentService) ListForFaculty(ctx context.Context, facultyID uuid.UUID, req ListRequest) ([]*repo.Appointment, error) {
	return s.list(ctx, entappt.FacultyID(facultyID), req)
}

func (s *appointmentService) list(ctx context.Context, owner predicate.Appointment, req ListRequest) ([]*repo.Appointment, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Appointment.Query().Where(owner)

	if req.Status != nil {
		q = q.Where(entappt.StatusEQ(entappt.Status(*req.Status)))
	}
	if req.From != nil {
		q = q.Where(entappt.RequestedTimeGTE(*req.From))
	}
	if req.To != nil {
		q = q.Where(entappt.RequestedTimeLT(*req.To))
	}

	q = q.Order(entappt.ByRequestedTime(sql.OrderDesc()))

	appts, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return appts, nil
}

// GetByID returns the appointment only if the actor is one of its parties.
func (s *appointmentService) GetByID(ctx context.Context, actorID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Query().
		Where(
			entappt.ID(apptID),
			entappt.Or(
				entappt.StudentID(actorID),
				entappt.FacultyID(actorID),
			),
		).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	return appt, nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func (s *appointmentService) ownedByFaculty(ctx context.Context, facultyID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt.FacultyID != facultyID {
		return nil, ErrNotYours
	}
	return appt, nil
}

func (s *appointmentService) ownedByStudent(ctx context.Context, studentID, apptID uuid.UUID) (*repo.Appointment, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt.StudentID != studentID {
		return nil, ErrNotYours
	}
	return appt, nil
}

// meetingLink derives a stable room URL from the appointment id.
func (s *appointmentService) meetingLink(id uuid.UUID) string {
	base := s.cfg.App.MeetingLinkBase
	if base == "" {
		base = "https://meet.jit.si/ProfLink-"
	}
	raw := strings.ReplaceAll(id.String(), "-", "")
	return base + raw[len(raw)-8:]
}

type studentStat string

const (
	statTotal     studentStat = "total"
	statCompleted studentStat = "completed"
	statCancelled studentStat = "cancelled"
)

// bumpStudentStat increments one of the advisory counters on the student
// profile. The counters back a dashboard widget, so failures only warn.
func (s *appointmentService) bumpStudentStat(ctx context.Context, studentID uuid.UUID, stat studentStat) {
	upd := s.db.StudentProfile.Update().
		Where(entsprofile.UserID(studentID))

	switch stat {
	case statTotal:
		upd = upd.AddTotalAppointments(1)
	case statCompleted:
		upd = upd.AddCompletedAppointments(1)
	case statCancelled:
		upd = upd.AddCancelledAppointments(1)
	}

	if err := upd.Exec(ctx); err != nil {
		slog.Warn("failed to update student appointment stats",
			"student_id", studentID,
			"stat", string(stat),
			"error", err,
		)
	}
}

// publish emits an appointment event to NATS. The notification worker turns
// these into Notification rows, SSE pushes, and emails.
func (s *appointmentService) publish(event string, apptID uuid.UUID) {
	if s.nc == nil {
		return
	}
	subject := fmt.Sprintf("proflink.appointment.%s.%s", event, apptID.String())
	if err := s.nc.Publish(subject, []byte(apptID.String())); err != nil {
		slog.Warn("failed to publish appointment event",
			"subject", subject,
			"error", err,
		)
	}
}

package appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/google/uuid"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	entappt "github.com/proflink/proflink_backend/internal/repo/appointment"
	"github.com/proflink/proflink_backend/internal/repo/enttest"
	entuser "github.com/proflink/proflink_backend/internal/repo/user"
)

func newTestService(t *testing.T) (*appointmentService, *repo.Client) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", strings.ReplaceAll(t.Name(), "/", "_"))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })
	return &appointmentService{db: client, cfg: &config.Config{}}, client
}

func seedUser(t *testing.T, client *repo.Client, role entuser.Role, code string) *repo.User {
	t.Helper()
	u, err := client.User.Create().
		SetFirstName("Test").
		SetLastName(code).
		SetEmail(strings.ToLower(code) + "@example.edu").
		SetRole(role).
		SetRegistrationCode(code).
		SetPasswordHash("irrelevant").
		Save(context.Background())
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedAppointment(t *testing.T, svc *appointmentService, student, faculty *repo.User) *repo.Appointment {
	t.Helper()
	appt, err := svc.Request(context.Background(), RequestInput{
		StudentID:     student.ID,
		FacultyID:     faculty.ID,
		RequestedTime: time.Now().Add(48 * time.Hour),
		Reason:        "Thesis proposal review",
	})
	if err != nil {
		t.Fatalf("seed appointment: %v", err)
	}
	return appt
}

func TestRequestCreatesPendingAppointment(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")

	appt := seedAppointment(t, svc, student, faculty)

	if appt.Status != entappt.StatusPending {
		t.Errorf("status = %s, want pending", appt.Status)
	}
	if appt.StudentName != "Test STU-000001" || appt.FacultyName != "Test FAC-000001" {
		t.Errorf("denormalized names = %q / %q", appt.StudentName, appt.FacultyName)
	}
	if appt.MeetingLink != nil {
		t.Error("meeting link set before acceptance")
	}
}

func TestRequestValidation(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	ctx := context.Background()

	_, err := svc.Request(ctx, RequestInput{
		StudentID: student.ID, FacultyID: faculty.ID,
		RequestedTime: time.Now().Add(time.Hour), Reason: "   ",
	})
	if !errors.Is(err, ErrReasonRequired) {
		t.Errorf("blank reason: err = %v, want ErrReasonRequired", err)
	}

	_, err = svc.Request(ctx, RequestInput{
		StudentID: student.ID, FacultyID: faculty.ID, Reason: "hello",
	})
	if !errors.Is(err, ErrRequestedTimeRequired) {
		t.Errorf("zero time: err = %v, want ErrRequestedTimeRequired", err)
	}

	// A student id in the faculty slot must not pass the role predicate.
	_, err = svc.Request(ctx, RequestInput{
		StudentID: student.ID, FacultyID: student.ID,
		RequestedTime: time.Now().Add(time.Hour), Reason: "hello",
	})
	if !errors.Is(err, ErrFacultyNotFound) {
		t.Errorf("student as faculty: err = %v, want ErrFacultyNotFound", err)
	}
}

func TestDecideAcceptSetsMeetingLink(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)

	got, err := svc.Decide(context.Background(), faculty.ID, appt.ID, DecisionAccept)
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if got.Status != entappt.StatusAccepted {
		t.Errorf("status = %s, want accepted", got.Status)
	}

	raw := strings.ReplaceAll(appt.ID.String(), "-", "")
	want := "https://meet.jit.si/ProfLink-" + raw[len(raw)-8:]
	if got.MeetingLink == nil || *got.MeetingLink != want {
		t.Errorf("meeting link = %v, want %q", got.MeetingLink, want)
	}
}

func TestDecideOnlyFromPending(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	if _, err := svc.Decide(ctx, faculty.ID, appt.ID, DecisionAccept); err != nil {
		t.Fatalf("first Decide() error = %v", err)
	}

	// A second decision, either way, must not overwrite the first.
	if _, err := svc.Decide(ctx, faculty.ID, appt.ID, DecisionDecline); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second Decide: err = %v, want ErrInvalidTransition", err)
	}

	got, err := client.Appointment.Get(ctx, appt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != entappt.StatusAccepted {
		t.Errorf("status = %s, want accepted to stand", got.Status)
	}
}

func TestDecideOwnershipAndDecisionChecks(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	other := seedUser(t, client, entuser.RoleFaculty, "FAC-000002")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	if _, err := svc.Decide(ctx, faculty.ID, appt.ID, "maybe"); !errors.Is(err, ErrInvalidDecision) {
		t.Errorf("bad decision: err = %v, want ErrInvalidDecision", err)
	}
	if _, err := svc.Decide(ctx, other.ID, appt.ID, DecisionAccept); !errors.Is(err, ErrNotYours) {
		t.Errorf("wrong faculty: err = %v, want ErrNotYours", err)
	}
	if _, err := svc.Decide(ctx, faculty.ID, uuid.New(), DecisionAccept); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
}

func TestRescheduleRequiresNewTime(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)

	_, err := svc.Reschedule(context.Background(), faculty.ID, appt.ID, time.Time{})
	if !errors.Is(err, ErrRescheduleTimeRequired) {
		t.Errorf("err = %v, want ErrRescheduleTimeRequired", err)
	}
}

func TestRescheduleKeepsRequestedTime(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	newTime := time.Now().Add(96 * time.Hour)
	got, err := svc.Reschedule(ctx, faculty.ID, appt.ID, newTime)
	if err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}

	if got.Status != entappt.StatusRescheduled {
		t.Errorf("status = %s, want rescheduled", got.Status)
	}
	// The original slot stays on record; the proposal lands in its own field.
	if got.RequestedTime.Unix() != appt.RequestedTime.Unix() {
		t.Errorf("requested_time changed: %v -> %v", appt.RequestedTime, got.RequestedTime)
	}
	if got.RescheduleTime == nil || got.RescheduleTime.Unix() != newTime.Unix() {
		t.Errorf("reschedule_time = %v, want %v", got.RescheduleTime, newTime)
	}
}

func TestRescheduleOnlyFromPendingOrAccepted(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	if _, err := svc.Decide(ctx, faculty.ID, appt.ID, DecisionDecline); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	_, err := svc.Reschedule(ctx, faculty.ID, appt.ID, time.Now().Add(time.Hour))
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("reschedule declined: err = %v, want ErrInvalidTransition", err)
	}
}

func TestCancelGatedToPendingAndRescheduled(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	ctx := context.Background()

	// pending -> cancelled
	a1 := seedAppointment(t, svc, student, faculty)
	if err := svc.Cancel(ctx, student.ID, a1.ID); err != nil {
		t.Errorf("cancel pending: %v", err)
	}

	// rescheduled -> cancelled
	a2 := seedAppointment(t, svc, student, faculty)
	if _, err := svc.Reschedule(ctx, faculty.ID, a2.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Reschedule() error = %v", err)
	}
	if err := svc.Cancel(ctx, student.ID, a2.ID); err != nil {
		t.Errorf("cancel rescheduled: %v", err)
	}

	// accepted appointments are locked in
	a3 := seedAppointment(t, svc, student, faculty)
	if _, err := svc.Decide(ctx, faculty.ID, a3.ID, DecisionAccept); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if err := svc.Cancel(ctx, student.ID, a3.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel accepted: err = %v, want ErrInvalidTransition", err)
	}

	// only the requesting student may cancel
	a4 := seedAppointment(t, svc, student, faculty)
	stranger := seedUser(t, client, entuser.RoleStudent, "STU-000002")
	if err := svc.Cancel(ctx, stranger.ID, a4.ID); !errors.Is(err, ErrNotYours) {
		t.Errorf("cancel by stranger: err = %v, want ErrNotYours", err)
	}
}

func TestAnnotationsRequireAcceptedStatus(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	if _, err := svc.AddFacultyNotes(ctx, faculty.ID, appt.ID, "bring the draft"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("notes on pending: err = %v, want ErrInvalidTransition", err)
	}
	if err := svc.SubmitFeedback(ctx, student.ID, appt.ID, 5, "great"); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("feedback on pending: err = %v, want ErrInvalidTransition", err)
	}

	if _, err := svc.Decide(ctx, faculty.ID, appt.ID, DecisionAccept); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	got, err := svc.AddFacultyNotes(ctx, faculty.ID, appt.ID, "bring the draft")
	if err != nil {
		t.Fatalf("AddFacultyNotes() error = %v", err)
	}
	if got.FacultyNotes == nil || *got.FacultyNotes != "bring the draft" {
		t.Errorf("notes = %v", got.FacultyNotes)
	}

	if err := svc.SubmitFeedback(ctx, student.ID, appt.ID, 5, "great"); err != nil {
		t.Errorf("SubmitFeedback() error = %v", err)
	}
}

func TestSubmitFeedbackRatingBounds(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, rating := range []int{0, 6, -1} {
		if err := svc.SubmitFeedback(ctx, uuid.New(), uuid.New(), rating, "x"); !errors.Is(err, ErrInvalidRating) {
			t.Errorf("rating %d: err = %v, want ErrInvalidRating", rating, err)
		}
	}
}

func TestGetByIDRestrictedToParties(t *testing.T) {
	svc, client := newTestService(t)
	student := seedUser(t, client, entuser.RoleStudent, "STU-000001")
	faculty := seedUser(t, client, entuser.RoleFaculty, "FAC-000001")
	stranger := seedUser(t, client, entuser.RoleStudent, "STU-000002")
	appt := seedAppointment(t, svc, student, faculty)
	ctx := context.Background()

	if _, err := svc.GetByID(ctx, student.ID, appt.ID); err != nil {
		t.Errorf("student party: %v", err)
	}
	if _, err := svc.GetByID(ctx, faculty.ID, appt.ID); err != nil {
		t.Errorf("faculty party: %v", err)
	}
	if _, err := svc.GetByID(ctx, stranger.ID, appt.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger: err = %v, want ErrNotFound", err)
	}
}

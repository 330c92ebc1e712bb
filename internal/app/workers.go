package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/proflink/proflink_backend/config"
	"github.com/proflink/proflink_backend/internal/repo"
	"github.com/proflink/proflink_backend/internal/service/directory"
	"github.com/proflink/proflink_backend/internal/service/notification"
	"github.com/proflink/proflink_backend/internal/sse"
	"github.com/proflink/proflink_backend/pkg/email"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	DB       *repo.Client
	NotifSvc notification.Service
	DirSvc   directory.Service
	Broker   *sse.Broker
	Mailer   *email.Client
	Cfg      *config.Config
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startAppointmentWorker(p.NC, p.DB, p.NotifSvc, p.Broker, p.Mailer, p.Cfg)
			startDirectoryWorker(p.NC, p.DirSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// appointment_worker
// ---------------------------------------------------------------------------

// startAppointmentWorker fans appointment events out to the other party:
// a notification row, an SSE push, and a best-effort email. All failures are
// logged and swallowed; the appointment transition already committed.
func startAppointmentWorker(
	nc *nats.Conn,
	db *repo.Client,
	notifSvc notification.Service,
	broker *sse.Broker,
	mailer *email.Client,
	cfg *config.Config,
) {
	_, err := nc.Subscribe("proflink.appointment.*.*", func(msg *nats.Msg) {
		parts := strings.Split(msg.Subject, ".")
		if len(parts) < 4 {
			return
		}
		event := parts[2]

		apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		ctx := context.Background()

		appt, err := db.Appointment.Get(ctx, apptID)
		if err != nil {
			slog.Warn("appointment_worker: appointment not found", "id", apptID, "err", err)
			return
		}

		plan, ok := buildFanout(event, appt, cfg.App.Name)
		if !ok {
			slog.Debug("appointment_worker: no fan-out for event", "event", event, "appointment_id", apptID)
			return
		}

		n, err := notifSvc.Create(ctx, notification.CreateRequest{
			RecipientID:   plan.recipientID,
			SenderID:      plan.senderID,
			Type:          plan.notifType,
			Title:         plan.title,
			Body:          &plan.body,
			AppointmentID: appt.ID,
		})
		if err != nil {
			slog.Warn("appointment_worker: create notification failed", "event", event, "err", err)
			return
		}

		broker.Publish(plan.recipientID, "notification", map[string]any{
			"id":            n.ID.String(),
			"type":          plan.notifType,
			"to":            plan.recipientID.String(),
			"from":          plan.senderID.String(),
			"title":         plan.title,
			"body":          plan.body,
			"appointmentId": appt.ID.String(),
			"createdAt":     n.CreatedAt.Format(time.RFC3339),
			"read":          false,
		})

		if plan.email != nil {
			if err := mailer.Send(ctx, *plan.email); err != nil {
				slog.Warn("appointment_worker: email send failed",
					"event", event,
					"appointment_id", apptID,
					"err", err,
				)
			}
		}
	})
	if err != nil {
		slog.Error("appointment_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("appointment_worker: started")
}

// fanout describes who gets told what for one appointment event.
type fanout struct {
	recipientID uuid.UUID
	senderID    uuid.UUID
	notifType   string
	title       string
	body        string
	email       *email.Message
}

func buildFanout(event string, appt *repo.Appointment, appName string) (fanout, bool) {
	toStudent := email.AppointmentEmailData{
		RecipientName: appt.StudentName,
		RecipientMail: appt.StudentEmail,
		OtherParty:    appt.FacultyName,
		Time:          appt.RequestedTime,
		Reason:        appt.Reason,
		AppName:       appName,
	}
	toFaculty := email.AppointmentEmailData{
		RecipientName: appt.FacultyName,
		RecipientMail: appt.FacultyEmail,
		OtherParty:    appt.StudentName,
		Time:          appt.RequestedTime,
		Reason:        appt.Reason,
		AppName:       appName,
	}

	switch event {
	case "requested":
		m := email.BuildAppointmentRequestedEmail(toFaculty)
		return fanout{
			recipientID: appt.FacultyID,
			senderID:    appt.StudentID,
			notifType:   "appointment_request",
			title:       "New appointment request",
			body:        fmt.Sprintf("%s requested an appointment for %s.", appt.StudentName, appt.RequestedTime.Format(time.RFC1123)),
			email:       &m,
		}, true

	case "accepted":
		if appt.MeetingLink != nil {
			toStudent.MeetingLink = *appt.MeetingLink
		}
		m := email.BuildAppointmentAcceptedEmail(toStudent)
		return fanout{
			recipientID: appt.StudentID,
			senderID:    appt.FacultyID,
			notifType:   "appointment_accepted",
			title:       "Appointment accepted",
			body:        fmt.Sprintf("%s accepted your appointment. Meeting link: %s", appt.FacultyName, toStudent.MeetingLink),
			email:       &m,
		}, true

	case "declined":
		m := email.BuildAppointmentDeclinedEmail(toStudent)
		return fanout{
			recipientID: appt.StudentID,
			senderID:    appt.FacultyID,
			notifType:   "appointment_declined",
			title:       "Appointment declined",
			body:        fmt.Sprintf("%s declined your appointment request.", appt.FacultyName),
			email:       &m,
		}, true

	case "rescheduled":
		if appt.RescheduleTime != nil {
			toStudent.Time = *appt.RescheduleTime
		}
		m := email.BuildAppointmentRescheduledEmail(toStudent)
		return fanout{
			recipientID: appt.StudentID,
			senderID:    appt.FacultyID,
			notifType:   "appointment_rescheduled",
			title:       "New time proposed",
			body:        fmt.Sprintf("%s proposed a new time: %s.", appt.FacultyName, toStudent.Time.Format(time.RFC1123)),
			email:       &m,
		}, true

	case "notes":
		return fanout{
			recipientID: appt.StudentID,
			senderID:    appt.FacultyID,
			notifType:   "faculty_notes",
			title:       "Notes from " + appt.FacultyName,
			body:        fmt.Sprintf("%s added notes to your appointment.", appt.FacultyName),
		}, true
	}

	// Cancellations stop the workflow; the other party sees the status change
	// in their listing, no notification row is written.
	return fanout{}, false
}

// ---------------------------------------------------------------------------
// directory_worker
// ---------------------------------------------------------------------------

func startDirectoryWorker(nc *nats.Conn, dirSvc directory.Service) {
	_, err := nc.Subscribe("proflink.directory.sync.*", func(msg *nats.Msg) {
		facultyID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
		if err != nil {
			return
		}

		if err := dirSvc.Sync(context.Background(), facultyID); err != nil {
			slog.Warn("directory_worker: sync failed", "faculty_id", facultyID, "err", err)
		}
	})
	if err != nil {
		slog.Error("directory_worker: subscribe failed", "err", err)
		return
	}

	slog.Info("directory_worker: started")
}

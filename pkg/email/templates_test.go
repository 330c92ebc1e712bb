package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildVerificationEmail(t *testing.T) {
	msg := BuildVerificationEmail(VerificationEmailData{
		FirstName:     "Sara",
		Email:         "sara@example.edu",
		Code:          "482913",
		ExpiryMinutes: 15,
		AppName:       "ProfLink",
	})

	if len(msg.To) != 1 || msg.To[0] != "sara@example.edu" {
		t.Errorf("To = %v", msg.To)
	}
	if msg.Subject != "Verify your email for ProfLink" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "482913") {
		t.Error("text body missing verification code")
	}
	if !strings.Contains(msg.TextBody, "15 minutes") {
		t.Error("text body missing expiry window")
	}
	if !strings.Contains(msg.HTMLBody, "482913") {
		t.Error("html body missing verification code")
	}
}

func TestBuildVerificationEmailDefaults(t *testing.T) {
	msg := BuildVerificationEmail(VerificationEmailData{
		Email:         "anon@example.edu",
		Code:          "000000",
		ExpiryMinutes: 15,
	})

	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Error("missing fallback greeting")
	}
	if !strings.Contains(msg.Subject, "ProfLink") {
		t.Errorf("Subject = %q, want default app name", msg.Subject)
	}
}

func TestBuildAppointmentEmails(t *testing.T) {
	when := time.Date(2026, time.September, 14, 10, 30, 0, 0, time.UTC)
	data := AppointmentEmailData{
		RecipientName: "Dr. Chen",
		RecipientMail: "chen@example.edu",
		OtherParty:    "Sara Ahmadi",
		Time:          when,
		Reason:        "Thesis proposal review",
		MeetingLink:   "https://meet.jit.si/ProfLink-a1b2c3d4",
	}

	t.Run("requested", func(t *testing.T) {
		msg := BuildAppointmentRequestedEmail(data)
		if msg.Subject != "New appointment request from Sara Ahmadi" {
			t.Errorf("Subject = %q", msg.Subject)
		}
		if !strings.Contains(msg.TextBody, "Thesis proposal review") {
			t.Error("text body missing reason")
		}
		if !strings.Contains(msg.TextBody, "Monday, 14 Sep 2026 at 10:30 UTC") {
			t.Errorf("text body missing formatted time:\n%s", msg.TextBody)
		}
	})

	t.Run("accepted includes meeting link", func(t *testing.T) {
		msg := BuildAppointmentAcceptedEmail(data)
		if !strings.Contains(msg.TextBody, data.MeetingLink) {
			t.Error("text body missing meeting link")
		}
	})

	t.Run("declined", func(t *testing.T) {
		msg := BuildAppointmentDeclinedEmail(data)
		if !strings.Contains(msg.Subject, "declined") {
			t.Errorf("Subject = %q", msg.Subject)
		}
	})

	t.Run("rescheduled", func(t *testing.T) {
		msg := BuildAppointmentRescheduledEmail(data)
		if !strings.Contains(msg.TextBody, "New time:") {
			t.Error("text body missing proposed time")
		}
	})
}

package email

import (
	"fmt"
	"time"
)

// VerificationEmailData contains the data needed for account verification emails.
type VerificationEmailData struct {
	FirstName     string
	Email         string
	Code          string
	ExpiryMinutes int
	AppName       string
}

// BuildVerificationEmail creates the email-verification message sent after
// registration. The account cannot log in until the code is confirmed.
func BuildVerificationEmail(data VerificationEmailData) Message {
	appName := data.AppName
	if appName == "" {
		appName = "ProfLink"
	}

	firstName := data.FirstName
	if firstName == "" {
		firstName = "there"
	}

	subject := fmt.Sprintf("Verify your email for %s", appName)

	textBody := fmt.Sprintf(`Hi %s,

Thanks for creating a %s account!

Your verification code is:

%s

Enter it on the verification page to activate your account. The code is valid
for %d minutes.

If you did not create this account, please ignore this email.

Thanks,
The %s Team`,
		firstName, appName, data.Code, data.ExpiryMinutes, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Thanks for creating a %s account!</p>
    <p>Your verification code is:</p>
    <p style="background-color: #f3f4f6; padding: 14px 20px; border-radius: 6px; font-family: monospace; font-size: 24px; letter-spacing: 4px; text-align: center;">%s</p>
    <p>Enter it on the verification page to activate your account. The code is valid for <strong>%d minutes</strong>.</p>
    <p style="color: #6b7280; font-size: 14px;">If you did not create this account, please ignore this email.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, appName, data.Code, data.ExpiryMinutes, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// AppointmentEmailData carries the fields shared by all appointment emails.
type AppointmentEmailData struct {
	RecipientName string
	RecipientMail string
	OtherParty    string
	Time          time.Time
	Reason        string
	MeetingLink   string
	AppName       string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "ProfLink"
	}
	return d.AppName
}

func (d AppointmentEmailData) timeString() string {
	return d.Time.Format("Monday, 2 Jan 2006 at 15:04 MST")
}

// BuildAppointmentRequestedEmail notifies a faculty member of a new request.
func BuildAppointmentRequestedEmail(d AppointmentEmailData) Message {
	subject := fmt.Sprintf("New appointment request from %s", d.OtherParty)

	textBody := fmt.Sprintf(`Hi %s,

%s has requested an appointment with you.

Requested time: %s
Reason: %s

Sign in to %s to accept, decline, or propose a new time.

Thanks,
The %s Team`,
		d.RecipientName, d.OtherParty, d.timeString(), d.Reason, d.appName(), d.appName())

	return Message{
		To:       []string{d.RecipientMail},
		Subject:  subject,
		TextBody: textBody,
	}
}

// BuildAppointmentAcceptedEmail notifies a student that their request was
// accepted, including the generated meeting link.
func BuildAppointmentAcceptedEmail(d AppointmentEmailData) Message {
	subject := fmt.Sprintf("%s accepted your appointment", d.OtherParty)

	textBody := fmt.Sprintf(`Hi %s,

Good news! %s has accepted your appointment request.

Time: %s
Meeting link: %s

Thanks,
The %s Team`,
		d.RecipientName, d.OtherParty, d.timeString(), d.MeetingLink, d.appName())

	return Message{
		To:       []string{d.RecipientMail},
		Subject:  subject,
		TextBody: textBody,
	}
}

// BuildAppointmentDeclinedEmail notifies a student that their request was declined.
func BuildAppointmentDeclinedEmail(d AppointmentEmailData) Message {
	subject := fmt.Sprintf("%s declined your appointment", d.OtherParty)

	textBody := fmt.Sprintf(`Hi %s,

Unfortunately %s has declined your appointment request for %s.

You can request another time from the %s faculty directory.

Thanks,
The %s Team`,
		d.RecipientName, d.OtherParty, d.timeString(), d.appName(), d.appName())

	return Message{
		To:       []string{d.RecipientMail},
		Subject:  subject,
		TextBody: textBody,
	}
}

// BuildAppointmentRescheduledEmail notifies a student of a proposed new time.
func BuildAppointmentRescheduledEmail(d AppointmentEmailData) Message {
	subject := fmt.Sprintf("%s proposed a new time for your appointment", d.OtherParty)

	textBody := fmt.Sprintf(`Hi %s,

%s has proposed a new time for your appointment:

New time: %s

Sign in to %s to confirm or cancel the request.

Thanks,
The %s Team`,
		d.RecipientName, d.OtherParty, d.timeString(), d.appName(), d.appName())

	return Message{
		To:       []string{d.RecipientMail},
		Subject:  subject,
		TextBody: textBody,
	}
}

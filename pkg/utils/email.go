package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/config"
	"go.uber.org/zap"
)

const companyName = "Aurora Events"

// Mailer sends plain-text notification emails over SMTP. When the SMTP
// settings are not configured it logs the message locally instead of
// sending, and never returns an error for that case.
type Mailer struct {
	cfg config.SMTPConfig
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) configured() bool {
	return m.cfg.Host != "" && m.cfg.Port != "" && m.cfg.From != "" && m.cfg.Password != ""
}

// SendSimpleMessage sends a single plain-text email.
func (m *Mailer) SendSimpleMessage(to, subject, body string) error {
	if !m.configured() {
		GetLogger().Warn("email not sent, SMTP not configured",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.String("body", body),
		)
		return nil
	}

	headers := map[string]string{
		"From":         fmt.Sprintf("%s <%s>", companyName, m.cfg.From),
		"To":           to,
		"Subject":      subject,
		"MIME-Version": "1.0",
		"Content-Type": "text/plain; charset=UTF-8",
	}

	var message strings.Builder
	for key, value := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", key, value))
	}
	message.WriteString("\r\n" + body)

	auth := smtp.PlainAuth("", m.cfg.From, m.cfg.Password, m.cfg.Host)

	err := smtp.SendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.From, []string{to}, []byte(message.String()))
	if err != nil {
		GetLogger().Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}

	GetLogger().Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendBookingReminder emails a reminder for an upcoming booked event.
func (m *Mailer) SendBookingReminder(to, name, eventName, eventType, date, venue string) error {
	subject := "Reminder: Upcoming Event - " + eventName
	return m.SendSimpleMessage(to, subject, formatReminderBody(name, eventName, eventType, date, venue))
}

// SendBookingDetailsToPlanner forwards a booking summary to the assigned planner.
func (m *Mailer) SendBookingDetailsToPlanner(plannerEmail, bookingDetails string) error {
	subject := "New Booking Assignment"
	body := "Hello Planner,\n\nYou have been assigned a new booking. Here are the details:\n\n" +
		bookingDetails + "\n\nPlease review and prepare accordingly.\n\nBest Regards,\nAurora Events Admin"
	return m.SendSimpleMessage(plannerEmail, subject, body)
}

func formatReminderBody(name, eventName, eventType, date, venue string) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"This is a friendly reminder for your upcoming event:\n\n"+
			"Event Name: %s\n"+
			"Event Type: %s\n"+
			"Date: %s\n"+
			"Venue: %s\n\n"+
			"We look forward to making your event memorable!\n\n"+
			"Best Regards,\n"+
			"Aurora Events Team",
		name, eventName, eventType, date, venue)
}

package utils

import (
	"testing"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatReminderBody(t *testing.T) {
	body := formatReminderBody("Priya", "Spring Wedding", "Wedding", "2026-04-12", "Grand Hall")

	assert.Contains(t, body, "Dear Priya,")
	assert.Contains(t, body, "Event Name: Spring Wedding")
	assert.Contains(t, body, "Event Type: Wedding")
	assert.Contains(t, body, "Date: 2026-04-12")
	assert.Contains(t, body, "Venue: Grand Hall")
	assert.Contains(t, body, "Aurora Events Team")
}

func TestMailerUnconfiguredLogsInsteadOfFailing(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{})

	// Without SMTP settings the mailer logs the message locally and never
	// raises to the caller
	err := mailer.SendSimpleMessage("someone@example.com", "Hello", "Body")
	require.NoError(t, err)

	err = mailer.SendBookingReminder("someone@example.com", "A", "B", "C", "2026-01-01", "D")
	require.NoError(t, err)
}

func TestMailerConfigured(t *testing.T) {
	mailer := NewMailer(config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     "587",
		From:     "noreply@auroraevents.com",
		Password: "secret",
	})
	assert.True(t, mailer.configured())

	partial := NewMailer(config.SMTPConfig{Host: "smtp.example.com"})
	assert.False(t, partial.configured())
}

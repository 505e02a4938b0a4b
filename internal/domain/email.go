package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventSubmittedEmailData holds data for the listing-received confirmation email.
type EventSubmittedEmailData struct {
	Email         string
	OrganizerName string
	EventTitle    string
	StartDate     time.Time
	Location      string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventSubmitted(ctx context.Context, data *EventSubmittedEmailData) error
}

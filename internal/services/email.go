package services

import (
	"context"
	"fmt"
	"log"

	"autoevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendEventSubmitted sends the submission confirmation using the "event_submitted" template.
func (s *emailService) SendEventSubmitted(ctx context.Context, data *domain.EventSubmittedEmailData) error {
	if data == nil {
		return fmt.Errorf("event submitted email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_submitted", data)
	if err != nil {
		return fmt.Errorf("failed to render event_submitted template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send event submitted email: %w", err)
	}
	log.Printf("[EMAIL] Event submitted confirmation sent to %s", data.Email)
	return nil
}

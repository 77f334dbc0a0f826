package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

const (
	emailSubject = "Notification"
	emailBody    = "You have a new notification."
)

// SendGridMailer delivers mail through the SendGrid HTTP API.
type SendGridMailer struct {
	client *sendgrid.Client
	sender string
	logger logger.Logger
}

// NewSendGridMailer creates a new SendGrid-backed Mailer implementation
func NewSendGridMailer(apiKey, sender string, logger logger.Logger) tasks.Mailer {
	return &SendGridMailer{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
		logger: logger,
	}
}

func (m *SendGridMailer) Send(ctx context.Context, recipient string) error {
	from := mail.NewEmail("", m.sender)
	to := mail.NewEmail("", recipient)
	message := mail.NewSingleEmail(from, emailSubject, to, emailBody, emailBody)

	response, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected the email with status %d", response.StatusCode)
	}

	m.logger.Info("Email sent to ", recipient)
	return nil
}

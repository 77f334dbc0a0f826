package mailer

import (
	"context"
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// LogMailer pretends to deliver mail. It logs the send, waits the
// configured delay the way a provider round-trip would, and logs the
// completion. Used in development and tests.
type LogMailer struct {
	delay  time.Duration
	logger logger.Logger
}

// NewLogMailer creates a new log-only Mailer implementation
func NewLogMailer(delay time.Duration, logger logger.Logger) tasks.Mailer {
	return &LogMailer{
		delay:  delay,
		logger: logger,
	}
}

func (m *LogMailer) Send(ctx context.Context, recipient string) error {
	m.logger.Info("Sending email to ", recipient)

	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	m.logger.Info("Email sent to ", recipient)
	return nil
}

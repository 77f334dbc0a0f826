package mailer

import (
	"fmt"
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/tasks"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// NewMailer selects the outbound mail implementation configured in settings
func NewMailer(settings *config.MailSettings, logger logger.Logger) (tasks.Mailer, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mail settings: %w", err)
	}

	switch settings.Provider {
	case config.MailProviderLog:
		delay := time.Duration(settings.SendDelaySeconds) * time.Second
		return NewLogMailer(delay, logger), nil
	case config.MailProviderSendGrid:
		return NewSendGridMailer(settings.APIKey, settings.Sender, logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", settings.Provider)
	}
}

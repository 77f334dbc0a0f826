package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// MailSettings selects and configures the outbound mail implementation
type MailSettings struct {
	Provider         string `mapstructure:"provider" validate:"required,oneof=log sendgrid"`
	APIKey           string `mapstructure:"api_key"`
	Sender           string `mapstructure:"sender" validate:"omitempty,email"`
	SendDelaySeconds int    `mapstructure:"send_delay_seconds" validate:"min=0,max=60"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}

	if s.Provider == MailProviderSendGrid {
		if s.APIKey == "" {
			return fmt.Errorf("api_key is required for the sendgrid provider")
		}
		if s.Sender == "" {
			return fmt.Errorf("sender is required for the sendgrid provider")
		}
	}

	return nil
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// RedisSettings holds the broker and result backend connection URLs.
// Both point at the same server in development, on separate databases.
type RedisSettings struct {
	BrokerURL string `mapstructure:"broker_url" validate:"required,uri"`
	ResultURL string `mapstructure:"result_url" validate:"required,uri"`
}

// Validate checks that all fields in RedisSettings are valid
func (s *RedisSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RedisSettings: %w", err)
	}

	return nil
}

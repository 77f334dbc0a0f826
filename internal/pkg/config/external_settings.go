package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ExternalSettings configures the upstream posts service client
type ExternalSettings struct {
	PostsBaseURL   string `mapstructure:"posts_base_url" validate:"required,url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,min=1,max=120"`
}

// Validate checks that all fields in ExternalSettings are valid
func (s *ExternalSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ExternalSettings: %w", err)
	}

	return nil
}

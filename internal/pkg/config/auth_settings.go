package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds token signing, lifetime and login protection settings
type AuthSettings struct {
	SecretKey       string `mapstructure:"secret_key" validate:"required"`
	Algorithm       string `mapstructure:"algorithm" validate:"required,oneof=HS256"`
	AccessTTLMin    int    `mapstructure:"access_ttl_min" validate:"required,min=1"`
	RefreshTTLDays  int    `mapstructure:"refresh_ttl_days" validate:"required,min=1"`
	RevocationStore string `mapstructure:"revocation_store" validate:"required,oneof=memory redis"`
	LoginRatePerMin int    `mapstructure:"login_rate_per_min" validate:"required,min=1"`
	LoginBurst      int    `mapstructure:"login_burst" validate:"required,min=1"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	return nil
}

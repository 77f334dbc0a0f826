package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/validators"
)

// User entity
type User struct {
	ID           int64   `validate:"omitempty,min=1"`
	Username     string  `validate:"required,min=3,max=30"`
	Email        string  `validate:"required,email,max=320"`
	FullName     *string `validate:"omitnil,min=1,max=255"`
	Disabled     bool
	PasswordHash string `validate:"required"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// NewUser carries the attributes required to create a user. Password holds
// the plaintext value and is hashed before it reaches storage.
type NewUser struct {
	Username string  `validate:"required,min=3,max=30,username_chars"`
	Email    string  `validate:"required,email,max=320"`
	FullName *string `validate:"omitnil,min=1,max=255"`
	Password string  `validate:"required,max=128,password_chars"`
}

// Normalize lowercases and trims the login fields and trims the full name.
// The password is left untouched since edge whitespace there is an error,
// not noise.
func (u *NewUser) Normalize() {
	u.Username = NormalizeLogin(u.Username)
	u.Email = NormalizeLogin(u.Email)
	if u.FullName != nil {
		trimmed := strings.TrimSpace(*u.FullName)
		u.FullName = &trimmed
	}
}

// Validate normalizes the login fields in place and checks all constraints.
func (u *NewUser) Validate() error {
	u.Normalize()

	validate := validator.New()

	if err := validate.RegisterValidation("username_chars", validators.UsernameChars); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("password_chars", validators.PasswordChars); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserUpdate carries optional fields for a partial update. At least one
// field must be set. Password holds the plaintext value.
type UserUpdate struct {
	Username *string `validate:"omitnil,min=3,max=30,username_chars"`
	Email    *string `validate:"omitnil,email,max=320"`
	FullName *string `validate:"omitnil,min=1,max=255"`
	Password *string `validate:"omitnil,max=128,password_chars"`
}

// Normalize lowercases and trims the login fields and trims the full name.
func (u *UserUpdate) Normalize() {
	if u.Username != nil {
		normalized := NormalizeLogin(*u.Username)
		u.Username = &normalized
	}
	if u.Email != nil {
		normalized := NormalizeLogin(*u.Email)
		u.Email = &normalized
	}
	if u.FullName != nil {
		trimmed := strings.TrimSpace(*u.FullName)
		u.FullName = &trimmed
	}
}

// Validate normalizes the set fields in place and checks all constraints.
// An update with no fields set is rejected.
func (u *UserUpdate) Validate() error {
	if u.Username == nil && u.Email == nil && u.FullName == nil && u.Password == nil {
		return errors.New("validation failed: at least one field must be set")
	}

	u.Normalize()

	validate := validator.New()

	if err := validate.RegisterValidation("username_chars", validators.UsernameChars); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}
	if err := validate.RegisterValidation("password_chars", validators.PasswordChars); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserPatch carries the storage-level changes of a partial update. The
// password arrives already hashed.
type UserPatch struct {
	Username     *string
	Email        *string
	FullName     *string
	PasswordHash *string
}

// NormalizeLogin lowercases and trims a username or email for comparison
// and storage.
func NormalizeLogin(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/validators"
)

// TokenType discriminates access tokens from refresh tokens.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenPair bundles a freshly issued access and refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// NewTokenPair constructs a TokenPair with the bearer token type.
func NewTokenPair(accessToken, refreshToken string) *TokenPair {
	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}
}

// TokenPayload carries the decoded claims of a signed token.
type TokenPayload struct {
	Subject   string
	Type      TokenType
	JTI       string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Validate checks the structural claims of a decoded token.
func (p *TokenPayload) Validate() error {
	if strings.TrimSpace(p.Subject) == "" {
		return errors.New("validation failed: sub is required")
	}
	if strings.TrimSpace(p.JTI) == "" {
		return errors.New("validation failed: jti is required")
	}
	if p.Type != TokenTypeAccess && p.Type != TokenTypeRefresh {
		return fmt.Errorf("validation failed: unknown token type %q", p.Type)
	}
	if p.IssuedAt.IsZero() || p.ExpiresAt.IsZero() {
		return errors.New("validation failed: iat and exp are required")
	}
	if !p.ExpiresAt.After(p.IssuedAt) {
		return errors.New("validation failed: exp must be after iat")
	}
	return nil
}

// TTL returns how long the token stays valid counting from now. The result
// is negative for expired tokens.
func (p *TokenPayload) TTL() time.Duration {
	return time.Until(p.ExpiresAt)
}

// Credentials carries a login (username or email) and a plaintext password.
// The login bound matches the email limit since either form is accepted.
type Credentials struct {
	Login    string `validate:"required,min=3,max=320"`
	Password string `validate:"required,max=128,password_chars"`
}

// Normalize lowercases and trims the login.
func (c *Credentials) Normalize() {
	c.Login = strings.ToLower(strings.TrimSpace(c.Login))
}

// IsEmailLogin reports whether the login should be matched against emails
// rather than usernames.
func (c *Credentials) IsEmailLogin() bool {
	return strings.Contains(c.Login, "@")
}

// Validate normalizes the login in place and checks that it is either a
// username or a well-formed email address.
func (c *Credentials) Validate() error {
	c.Normalize()

	validate := validator.New()

	if err := validate.RegisterValidation("password_chars", validators.PasswordChars); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(c)
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

	if c.IsEmailLogin() {
		if err := validate.Var(c.Login, "email"); err != nil {
			return errors.New("validation failed: login must be a username or a valid e-mail")
		}
	} else if !validators.ValidUsername(c.Login) {
		return errors.New("validation failed: login must be a username or a valid e-mail")
	}

	return nil
}

package auth

import (
	"context"
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// AuthService defines authentication and token lifecycle operations.
type AuthService interface {
	// Register creates a new user account.
	// It returns the created User and any error encountered during the registration process.
	Register(ctx context.Context, newUser *users.NewUser) (*users.User, error)

	// Login authenticates a user by username or email plus password.
	// It returns the authenticated User, a fresh TokenPair and any error
	// encountered during the authentication process.
	Login(ctx context.Context, credentials *Credentials) (*users.User, *TokenPair, error)

	// Refresh exchanges a valid refresh token for a fresh TokenPair.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)

	// Logout revokes a refresh token so it can no longer be exchanged.
	Logout(ctx context.Context, refreshToken string) error

	// VerifyAccess decodes an access token and returns its payload.
	VerifyAccess(ctx context.Context, accessToken string) (*TokenPayload, error)
}

// TokenManager issues and decodes signed tokens.
type TokenManager interface {
	// IssuePair signs a fresh access and refresh token for the subject.
	IssuePair(subject string) (*TokenPair, error)

	// Decode verifies a token's signature and expiry and returns its payload.
	Decode(token string) (*TokenPayload, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// RevocationStore tracks revoked token IDs until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

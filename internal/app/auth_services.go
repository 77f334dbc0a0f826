package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// authService implements the AuthService interface for login and the token lifecycle
type authService struct {
	userService     users.UserService
	userRepo        users.UserRepository
	tokenManager    auth.TokenManager
	hasher          auth.PasswordHasher
	revocationStore auth.RevocationStore
	logger          logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userService users.UserService,
	userRepo users.UserRepository,
	tokenManager auth.TokenManager,
	hasher auth.PasswordHasher,
	revocationStore auth.RevocationStore,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userService:     userService,
		userRepo:        userRepo,
		tokenManager:    tokenManager,
		hasher:          hasher,
		revocationStore: revocationStore,
		logger:          logger,
	}, nil
}

// Register creates a new user account.
// It returns the created User and any error encountered during the registration process.
func (s *authService) Register(ctx context.Context, newUser *users.NewUser) (*users.User, error) {
	return s.userService.Create(ctx, newUser)
}

// Login authenticates a user by username or email plus password.
// It returns the authenticated User, a fresh TokenPair and any error
// encountered during the authentication process.
func (s *authService) Login(ctx context.Context, credentials *auth.Credentials) (*users.User, *auth.TokenPair, error) {
	// A malformed login can never match an account, so it fails the same
	// way a wrong password does
	if err := credentials.Validate(); err != nil {
		return nil, nil, auth.ErrInvalidCredentials
	}

	user, err := s.lookupByLogin(ctx, credentials)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, nil, auth.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !s.hasher.Verify(credentials.Password, user.PasswordHash) {
		return nil, nil, auth.ErrInvalidCredentials
	}

	pair, err := s.tokenManager.IssuePair(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	s.logger.Info("User ", user.Username, " logged in")
	return user, pair, nil
}

// Refresh exchanges a valid refresh token for a fresh TokenPair. The old
// refresh token stays usable until it expires or is revoked via Logout.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	payload, err := s.decodeRefresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokenManager.IssuePair(payload.Subject)
	if err != nil {
		return nil, fmt.Errorf("failed to issue tokens: %w", err)
	}

	return pair, nil
}

// Logout revokes a refresh token so it can no longer be exchanged.
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	payload, err := s.decodeRefresh(ctx, refreshToken)
	if err != nil {
		return err
	}

	if err := s.revocationStore.Revoke(ctx, payload.JTI, payload.TTL()); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.logger.Info("Revoked refresh token for subject ", payload.Subject)
	return nil
}

// VerifyAccess decodes an access token and returns its payload.
func (s *authService) VerifyAccess(_ context.Context, accessToken string) (*auth.TokenPayload, error) {
	payload, err := s.tokenManager.Decode(accessToken)
	if err != nil {
		return nil, err
	}
	if payload.Type != auth.TokenTypeAccess {
		return nil, auth.ErrAccessTokenExpected
	}

	return payload, nil
}

// decodeRefresh verifies a refresh token's signature, type and revocation state
func (s *authService) decodeRefresh(ctx context.Context, refreshToken string) (*auth.TokenPayload, error) {
	payload, err := s.tokenManager.Decode(refreshToken)
	if err != nil {
		return nil, err
	}
	if payload.Type != auth.TokenTypeRefresh {
		return nil, auth.ErrRefreshTokenExpected
	}

	revoked, err := s.revocationStore.IsRevoked(ctx, payload.JTI)
	if err != nil {
		return nil, fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return nil, auth.ErrTokenRevoked
	}

	return payload, nil
}

// lookupByLogin resolves the account behind a username or e-mail login
func (s *authService) lookupByLogin(ctx context.Context, credentials *auth.Credentials) (*users.User, error) {
	if credentials.IsEmailLogin() {
		return s.userRepo.GetByEmail(ctx, credentials.Login)
	}
	return s.userRepo.GetByUsername(ctx, credentials.Login)
}

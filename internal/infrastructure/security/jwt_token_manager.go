package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/logger"
)

// tokenClaims is the wire format of issued tokens. The type claim tells
// access and refresh tokens apart.
type tokenClaims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// JWTTokenManager signs and verifies HS256 tokens.
type JWTTokenManager struct {
	secretKey  []byte
	algorithm  string
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     logger.Logger
}

// NewJWTTokenManager creates a new JWT-based TokenManager implementation
func NewJWTTokenManager(settings *config.AuthSettings, logger logger.Logger) (auth.TokenManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid auth settings: %w", err)
	}

	return &JWTTokenManager{
		secretKey:  []byte(settings.SecretKey),
		algorithm:  settings.Algorithm,
		accessTTL:  time.Duration(settings.AccessTTLMin) * time.Minute,
		refreshTTL: time.Duration(settings.RefreshTTLDays) * 24 * time.Hour,
		logger:     logger,
	}, nil
}

func (m *JWTTokenManager) IssuePair(subject string) (*auth.TokenPair, error) {
	accessToken, err := m.issue(subject, auth.TokenTypeAccess, m.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := m.issue(subject, auth.TokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	m.logger.Debug("Issued token pair for subject ", subject)
	return auth.NewTokenPair(accessToken, refreshToken), nil
}

func (m *JWTTokenManager) issue(subject string, tokenType auth.TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	jti := strings.ReplaceAll(uuid.NewString(), "-", "")

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString(m.secretKey)
}

func (m *JWTTokenManager) Decode(token string) (*auth.TokenPayload, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, jwt.WithValidMethods([]string{m.algorithm}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, auth.ErrTokenInvalid
	}

	payload := &auth.TokenPayload{
		Subject:   claims.Subject,
		Type:      auth.TokenType(claims.Type),
		JTI:       claims.ID,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if err := payload.Validate(); err != nil {
		return nil, auth.ErrTokenInvalid
	}

	return payload, nil
}

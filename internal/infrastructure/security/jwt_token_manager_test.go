//go:build unit
// +build unit

package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

const testSecretKey = "unit-test-secret"

func testAuthSettings(secret string) *config.AuthSettings {
	return &config.AuthSettings{
		SecretKey:       secret,
		Algorithm:       "HS256",
		AccessTTLMin:    15,
		RefreshTTLDays:  7,
		RevocationStore: config.RevocationStoreMemory,
		LoginRatePerMin: 5,
		LoginBurst:      5,
	}
}

func setupTokenManager(t *testing.T, secret string) *JWTTokenManager {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	manager, err := NewJWTTokenManager(testAuthSettings(secret), logger)
	require.NoError(t, err)
	return manager.(*JWTTokenManager)
}

func TestJWTTokenManager_IssuePair(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)

	pair, err := manager.IssuePair("42")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	access, err := manager.Decode(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "42", access.Subject)
	assert.Equal(t, auth.TokenTypeAccess, access.Type)
	assert.Len(t, access.JTI, 32)
	assert.NotContains(t, access.JTI, "-")

	refresh, err := manager.Decode(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "42", refresh.Subject)
	assert.Equal(t, auth.TokenTypeRefresh, refresh.Type)

	// Each token gets its own id
	assert.NotEqual(t, access.JTI, refresh.JTI)

	// Lifetimes follow the configured TTLs
	assert.InDelta(t, 15*time.Minute, access.TTL(), float64(time.Minute))
	assert.InDelta(t, 7*24*time.Hour, refresh.TTL(), float64(time.Minute))
}

func TestJWTTokenManager_Decode_Expired(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)

	token, err := manager.issue("42", auth.TokenTypeAccess, -time.Minute)
	require.NoError(t, err)

	_, err = manager.Decode(token)
	assert.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestJWTTokenManager_Decode_WrongSecret(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)
	other := setupTokenManager(t, "another-secret")

	pair, err := manager.IssuePair("42")
	require.NoError(t, err)

	_, err = other.Decode(pair.AccessToken)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestJWTTokenManager_Decode_Garbage(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)

	_, err := manager.Decode("not.a.token")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)

	_, err = manager.Decode("")
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestJWTTokenManager_Decode_WrongAlgorithm(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, tokenClaims{
		Type: string(auth.TokenTypeAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ID:        "abc123",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(testSecretKey))
	require.NoError(t, err)

	_, err = manager.Decode(signed)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestJWTTokenManager_Decode_MissingExpiry(t *testing.T) {
	manager := setupTokenManager(t, testSecretKey)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Type: string(auth.TokenTypeAccess),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "42",
			ID:       "abc123",
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	})
	signed, err := token.SignedString([]byte(testSecretKey))
	require.NoError(t, err)

	_, err = manager.Decode(signed)
	assert.ErrorIs(t, err, auth.ErrTokenInvalid)
}

func TestNewJWTTokenManager_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	settings := testAuthSettings(testSecretKey)
	settings.Algorithm = "RS256"

	_, err := NewJWTTokenManager(settings, logger)
	assert.Error(t, err)
}

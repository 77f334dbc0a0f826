//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
)

func setupGuardedRouter(mockAuthService *MockAuthService) *gin.Engine {
	r := gin.New()
	r.Use(JWTAuthMiddleware(mockAuthService))
	r.GET("/probe", func(ctx *gin.Context) {
		subject := ctx.GetString(SubjectContextKey)
		ctx.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	r.OPTIONS("/probe", func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})
	return r
}

func TestJWTAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := setupGuardedRouter(mockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.Contains(t, w.Body.String(), "Not authenticated")
	mockAuthService.AssertNotCalled(t, "VerifyAccess", mock.Anything, mock.Anything)
}

func TestJWTAuthMiddleware_MalformedHeader(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := setupGuardedRouter(mockAuthService)

	for _, header := range []string{"Token abc", "Bearer", "Bearer   "} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/probe", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "Not authenticated")
	}
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	mockAuthService := new(MockAuthService)

	payload := &auth.TokenPayload{
		Subject:   "42",
		Type:      auth.TokenTypeAccess,
		JTI:       "3d0f7f4c6aab4f0f9a2a9e4f1b8b6c5d",
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	mockAuthService.
		On("VerifyAccess", mock.Anything, "access.jwt").
		Return(payload, nil)

	r := setupGuardedRouter(mockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer access.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subject":"42"`)
	mockAuthService.AssertExpectations(t)
}

func TestJWTAuthMiddleware_ExpiredToken(t *testing.T) {
	mockAuthService := new(MockAuthService)

	mockAuthService.
		On("VerifyAccess", mock.Anything, "stale.jwt").
		Return(nil, auth.ErrTokenExpired)

	r := setupGuardedRouter(mockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer stale.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Bearer error="invalid_token", error_description="expired"`, w.Header().Get("WWW-Authenticate"))
}

func TestJWTAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	mockAuthService := new(MockAuthService)

	mockAuthService.
		On("VerifyAccess", mock.Anything, "refresh.jwt").
		Return(nil, auth.ErrAccessTokenExpected)

	r := setupGuardedRouter(mockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer refresh.jwt")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, `Bearer error="invalid_token"`, w.Header().Get("WWW-Authenticate"))
}

// Preflight requests pass through so CORS can answer them.
func TestJWTAuthMiddleware_OptionsPassthrough(t *testing.T) {
	mockAuthService := new(MockAuthService)
	r := setupGuardedRouter(mockAuthService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/probe", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockAuthService.AssertNotCalled(t, "VerifyAccess", mock.Anything, mock.Anything)
}

func TestBearerToken(t *testing.T) {
	token, ok := bearerToken("Bearer access.jwt")
	assert.True(t, ok)
	assert.Equal(t, "access.jwt", token)

	token, ok = bearerToken("bearer access.jwt")
	assert.True(t, ok)
	assert.Equal(t, "access.jwt", token)

	_, ok = bearerToken("")
	assert.False(t, ok)

	_, ok = bearerToken("Basic dXNlcjpwYXNz")
	assert.False(t, ok)
}

//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/auth"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/security"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/tokenstore"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

// Test constants
const (
	TestSecretKey = "integration-test-secret"
	TestPassword  = "secret-pass1"
)

// TestServices holds application services wired to a test database
type TestServices struct {
	UserService    users.UserService
	ProjectService projects.ProjectService
	AuthService    auth.AuthService

	TokenManager    auth.TokenManager
	RevocationStore auth.RevocationStore
	Hasher          auth.PasswordHasher

	DBContext *persistence.TestContext
}

// SetupTestServices initializes the user, project and auth services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	hasher := security.NewBcryptHasher()

	authSettings := &config.AuthSettings{
		SecretKey:       TestSecretKey,
		Algorithm:       "HS256",
		AccessTTLMin:    15,
		RefreshTTLDays:  7,
		RevocationStore: config.RevocationStoreMemory,
		LoginRatePerMin: 5,
		LoginBurst:      5,
	}
	tokenManager, err := security.NewJWTTokenManager(authSettings, logger)
	require.NoError(t, err, "Failed to create token manager")

	revocationStore := tokenstore.NewMemoryStore()

	userService, err := NewUserService(dbContext.UserRepo, hasher, logger)
	require.NoError(t, err, "Failed to create UserService")

	projectService, err := NewProjectService(dbContext.ProjectRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create ProjectService")

	authService, err := NewAuthService(userService, dbContext.UserRepo, tokenManager, hasher, revocationStore, logger)
	require.NoError(t, err, "Failed to create AuthService")

	return &TestServices{
		UserService:     userService,
		ProjectService:  projectService,
		AuthService:     authService,
		TokenManager:    tokenManager,
		RevocationStore: revocationStore,
		Hasher:          hasher,
		DBContext:       dbContext,
	}
}

// RegisterTestUser creates an account through the auth service with default values
func RegisterTestUser(t *testing.T, services *TestServices, username string) *users.User {
	t.Helper()

	user, err := services.AuthService.Register(context.Background(), &users.NewUser{
		Username: username,
		Email:    username + "@example.com",
		Password: TestPassword,
	})
	require.NoError(t, err, "Failed to register test user")
	return user
}

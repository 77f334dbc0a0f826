//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/projects"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/testutil"
)

// Test constants
const (
	TestPasswordHash = "hashed-password"
	TestEmailDomain  = "@example.com"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	UserRepo    users.UserRepository
	ProjectRepo projects.ProjectRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	// Create connection
	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	// Register cleanup
	t.Cleanup(func() {
		CloseDB(db)
		cleanupFunc()
	})

	// Migrate schema
	err = MigrateDB(db)
	require.NoError(t, err, "Failed to migrate schema")

	// Create repositories
	logger := testutil.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	projectRepo, err := NewGormProjectRepository(db, logger)
	require.NoError(t, err, "Failed to create project repository")

	return &TestContext{
		DB:          db,
		UserRepo:    userRepo,
		ProjectRepo: projectRepo,
	}
}

// CreateTestUser builds a user entity with default values
func CreateTestUser(t *testing.T, username string) *users.User {
	t.Helper()

	return &users.User{
		Username:     username,
		Email:        username + TestEmailDomain,
		PasswordHash: TestPasswordHash,
	}
}

// CreateTestUserWithEmail builds a user entity with a custom e-mail address
func CreateTestUserWithEmail(t *testing.T, username, email string) *users.User {
	t.Helper()

	return &users.User{
		Username:     username,
		Email:        email,
		PasswordHash: TestPasswordHash,
	}
}

// CreateTestProject builds a project creation request with default values
func CreateTestProject(t *testing.T, name string) *projects.NewProject {
	t.Helper()

	return &projects.NewProject{
		Name: name,
	}
}

// CreateTestProjectWithOptions builds a project creation request with custom options
func CreateTestProjectWithOptions(t *testing.T, name string, status projects.ProjectStatus, personID *int64) *projects.NewProject {
	t.Helper()

	return &projects.NewProject{
		Name:           name,
		Status:         status,
		PersonInCharge: personID,
	}
}

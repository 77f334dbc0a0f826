//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/infrastructure/persistence/models"
	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/pkg/config"
)

func TestUserService_Create(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	fullName := "Alice Liddell"
	created, err := services.UserService.Create(context.Background(), &users.NewUser{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: &fullName,
		Password: TestPassword,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)

	// The plaintext never reaches storage
	assert.NotEqual(t, TestPassword, created.PasswordHash)
	assert.True(t, services.Hasher.Verify(TestPassword, created.PasswordHash))
}

func TestUserService_Create_NormalizesLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	created, err := services.UserService.Create(context.Background(), &users.NewUser{
		Username: "  Alice  ",
		Email:    " Alice@Example.COM ",
		Password: TestPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "alice@example.com", created.Email)
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	RegisterTestUser(t, services, "alice")

	_, err := services.UserService.Create(context.Background(), &users.NewUser{
		Username: "ALICE",
		Email:    "other@example.com",
		Password: TestPassword,
	})
	require.Error(t, err)

	var dupErr *users.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "username", dupErr.Field)
	assert.Equal(t, "user with this username already exists", err.Error())
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	RegisterTestUser(t, services, "alice")

	_, err := services.UserService.Create(context.Background(), &users.NewUser{
		Username: "bob",
		Email:    "Alice@example.com",
		Password: TestPassword,
	})
	require.Error(t, err)

	var dupErr *users.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "email", dupErr.Field)
}

func TestUserService_Create_InvalidPayload(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.UserService.Create(context.Background(), &users.NewUser{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "letters-only",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUserService_CreateBatch(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	created, err := services.UserService.CreateBatch(context.Background(), []*users.NewUser{
		{Username: "alice", Email: "alice@example.com", Password: TestPassword},
		{Username: "bob", Email: "bob@example.com", Password: TestPassword},
	})
	require.NoError(t, err)
	require.Len(t, created, 2)
	assert.Equal(t, "alice", created[0].Username)
	assert.Equal(t, "bob", created[1].Username)
}

func TestUserService_CreateBatch_StopsOnTakenLogin(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	RegisterTestUser(t, services, "alice")

	_, err := services.UserService.CreateBatch(context.Background(), []*users.NewUser{
		{Username: "bob", Email: "bob@example.com", Password: TestPassword},
		{Username: "alice", Email: "second@example.com", Password: TestPassword},
	})
	require.Error(t, err)

	var dupErr *users.DuplicateError
	assert.ErrorAs(t, err, &dupErr)

	// The batch failed before touching storage, so bob was not created
	var count int64
	require.NoError(t, services.DBContext.DB.Model(&models.UserModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	created := RegisterTestUser(t, services, "alice")

	newPassword := "fresh-pass2"
	updated, err := services.UserService.Update(context.Background(), created.ID, &users.UserUpdate{
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.True(t, services.Hasher.Verify(newPassword, updated.PasswordHash))
	assert.False(t, services.Hasher.Verify(TestPassword, updated.PasswordHash))
}

func TestUserService_Update_RequiresAField(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	created := RegisterTestUser(t, services, "alice")

	_, err := services.UserService.Update(context.Background(), created.ID, &users.UserUpdate{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field")
}

func TestUserService_Update_TakenUsername(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	RegisterTestUser(t, services, "alice")
	bob := RegisterTestUser(t, services, "bob")

	taken := "alice"
	_, err := services.UserService.Update(context.Background(), bob.ID, &users.UserUpdate{
		Username: &taken,
	})
	require.Error(t, err)

	var dupErr *users.DuplicateError
	assert.ErrorAs(t, err, &dupErr)
}

func TestUserService_Delete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	created := RegisterTestUser(t, services, "alice")

	deleted, err := services.UserService.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = services.UserService.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, users.ErrNotFound)
}

func TestUserService_ListByIDs(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	alice := RegisterTestUser(t, services, "alice")
	RegisterTestUser(t, services, "bob")

	list, err := services.UserService.ListByIDs(context.Background(), []int64{alice.ID, 999})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice.ID, list[0].ID)
}

//go:build unit
// +build unit

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

func TestUserModel_ToDomain(t *testing.T) {
	fullName := "Alice Liddell"
	userModel := &UserModel{
		ID:             1,
		Username:       "alice",
		Email:          "alice@example.com",
		FullName:       &fullName,
		Disabled:       false,
		HashedPassword: "$2a$10$hash",
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	user := userModel.ToDomain()

	assert.Equal(t, userModel.ID, user.ID)
	assert.Equal(t, userModel.Username, user.Username)
	assert.Equal(t, userModel.Email, user.Email)
	assert.Equal(t, userModel.FullName, user.FullName)
	assert.Equal(t, userModel.Disabled, user.Disabled)
	assert.Equal(t, userModel.HashedPassword, user.PasswordHash)
	assert.Equal(t, userModel.CreatedAt, user.CreatedAt)
	assert.Equal(t, userModel.UpdatedAt, user.UpdatedAt)
}

func TestUserModel_FromDomain(t *testing.T) {
	user := &users.User{
		ID:           2,
		Username:     "bob",
		Email:        "bob@example.com",
		FullName:     nil,
		Disabled:     true,
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	userModel := &UserModel{}
	userModel.FromDomain(user)

	assert.Equal(t, user.ID, userModel.ID)
	assert.Equal(t, user.Username, userModel.Username)
	assert.Equal(t, user.Email, userModel.Email)
	assert.Nil(t, userModel.FullName)
	assert.True(t, userModel.Disabled)
	assert.Equal(t, user.PasswordHash, userModel.HashedPassword)
}

package models

import (
	"time"

	"github.com/SlavaKlkv/fastapi-2-alchemy/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	Username       string    `gorm:"not null;uniqueIndex;type:varchar(50)"`
	Email          string    `gorm:"not null;uniqueIndex;type:varchar(320)"`
	FullName       *string   `gorm:"type:varchar(255)"`
	Disabled       bool      `gorm:"not null;default:false"`
	HashedPassword string    `gorm:"not null;type:varchar(255)"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		FullName:     m.FullName,
		Disabled:     m.Disabled,
		PasswordHash: m.HashedPassword,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.FullName = u.FullName
	m.Disabled = u.Disabled
	m.HashedPassword = u.PasswordHash
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}

// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email              string    `gorm:"type:varchar(255)"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	IsActive           bool      `gorm:"default:false"`
	IsMaster           bool      `gorm:"default:false"`
	RecoveryQuestion   string    `gorm:"type:varchar(255)"`
	RecoveryAnswerHash string    `gorm:"type:varchar(255)"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Username:           m.Username,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		IsActive:           m.IsActive,
		IsMaster:           m.IsMaster,
		RecoveryQuestion:   m.RecoveryQuestion,
		RecoveryAnswerHash: m.RecoveryAnswerHash,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                 user.ID,
		Username:           user.Username,
		Email:              user.Email,
		PasswordHash:       user.PasswordHash,
		IsActive:           user.IsActive,
		IsMaster:           user.IsMaster,
		RecoveryQuestion:   user.RecoveryQuestion,
		RecoveryAnswerHash: user.RecoveryAnswerHash,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

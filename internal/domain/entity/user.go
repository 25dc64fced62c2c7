// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account holder. New accounts start inactive and must be
// approved by the master user before they can log in. Password recovery uses
// a user-chosen question/answer pair instead of emailed reset links.
type User struct {
	ID                 uuid.UUID
	Username           string
	Email              string
	PasswordHash       string
	IsActive           bool
	IsMaster           bool
	RecoveryQuestion   string
	RecoveryAnswerHash string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates a new User entity. The account starts inactive.
func NewUser(username, email, passwordHash, recoveryQuestion, recoveryAnswerHash string) *User {
	now := time.Now().UTC()

	return &User{
		ID:                 uuid.New(),
		Username:           username,
		Email:              email,
		PasswordHash:       passwordHash,
		IsActive:           false,
		IsMaster:           false,
		RecoveryQuestion:   recoveryQuestion,
		RecoveryAnswerHash: recoveryAnswerHash,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

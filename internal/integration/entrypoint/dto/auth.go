// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Username         string `json:"username" binding:"required,min=3,max=64"`
	Email            string `json:"email" binding:"omitempty,email"`
	Password         string `json:"password" binding:"required,min=8"`
	RecoveryQuestion string `json:"recovery_question" binding:"required,min=1,max=255"`
	RecoveryAnswer   string `json:"recovery_answer" binding:"required,min=1,max=255"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RecoveryQuestionRequest represents the request body for the recovery
// question lookup.
type RecoveryQuestionRequest struct {
	Username string `json:"username" binding:"required"`
}

// RecoverPasswordRequest represents the request body for recovery-question
// password reset.
type RecoverPasswordRequest struct {
	Username       string `json:"username" binding:"required"`
	RecoveryAnswer string `json:"recovery_answer" binding:"required"`
	NewPassword    string `json:"new_password" binding:"required,min=8"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// RecoveryQuestionResponse represents the recovery question for a username.
type RecoveryQuestionResponse struct {
	RecoveryQuestion string `json:"recovery_question"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	IsMaster  bool      `json:"is_master"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		IsActive:  user.IsActive,
		IsMaster:  user.IsMaster,
		CreatedAt: user.CreatedAt,
	}
}

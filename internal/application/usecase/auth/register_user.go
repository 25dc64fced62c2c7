// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// MinUsernameLength is the minimum allowed username length.
const MinUsernameLength = 3

// RegisterUserInput represents the input for user registration.
type RegisterUserInput struct {
	Username         string
	Email            string
	Password         string
	RecoveryQuestion string
	RecoveryAnswer   string
}

// RegisterUserOutput represents the output of user registration. No tokens
// are issued: the account stays inactive until the master user approves it.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles user registration logic.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the user registration.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	username := strings.TrimSpace(input.Username)
	if len(username) < MinUsernameLength {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			fmt.Sprintf("username must have at least %d characters", MinUsernameLength),
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	if strings.TrimSpace(input.RecoveryQuestion) == "" || strings.TrimSpace(input.RecoveryAnswer) == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoRecoveryQuestion,
			"recovery question and answer are required",
			domainerror.ErrNoRecoveryQuestion,
		)
	}

	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserAlreadyExists,
			"username already taken",
			domainerror.ErrUserAlreadyExists,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Recovery answers are compared case-insensitively, so normalize before
	// hashing.
	answerHash, err := uc.passwordService.HashPassword(normalizeRecoveryAnswer(input.RecoveryAnswer))
	if err != nil {
		return nil, fmt.Errorf("failed to hash recovery answer: %w", err)
	}

	user := entity.NewUser(username, input.Email, passwordHash, input.RecoveryQuestion, answerHash)

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}

func normalizeRecoveryAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

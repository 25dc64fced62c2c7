// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/finance-planner/backend/internal/application/adapter"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// GetRecoveryQuestionInput represents the input for the recovery question lookup.
type GetRecoveryQuestionInput struct {
	Username string
}

// GetRecoveryQuestionOutput represents the recovery question for a username.
type GetRecoveryQuestionOutput struct {
	RecoveryQuestion string
}

// GetRecoveryQuestionUseCase looks up the recovery question shown on the
// password recovery form.
type GetRecoveryQuestionUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetRecoveryQuestionUseCase creates a new GetRecoveryQuestionUseCase instance.
func NewGetRecoveryQuestionUseCase(userRepo adapter.UserRepository) *GetRecoveryQuestionUseCase {
	return &GetRecoveryQuestionUseCase{userRepo: userRepo}
}

// Execute returns the user's recovery question.
func (uc *GetRecoveryQuestionUseCase) Execute(ctx context.Context, input GetRecoveryQuestionInput) (*GetRecoveryQuestionOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if user.RecoveryQuestion == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoRecoveryQuestion,
			"no recovery question configured",
			domainerror.ErrNoRecoveryQuestion,
		)
	}

	return &GetRecoveryQuestionOutput{RecoveryQuestion: user.RecoveryQuestion}, nil
}

// RecoverPasswordInput represents the input for recovery-question password reset.
type RecoverPasswordInput struct {
	Username       string
	RecoveryAnswer string
	NewPassword    string
}

// RecoverPasswordOutput represents the output of a password recovery.
type RecoverPasswordOutput struct {
	Message string
}

// RecoverPasswordUseCase resets a password after checking the recovery
// answer. No email round trip is involved.
type RecoverPasswordUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRecoverPasswordUseCase creates a new RecoverPasswordUseCase instance.
func NewRecoverPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *RecoverPasswordUseCase {
	return &RecoverPasswordUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the password recovery.
func (uc *RecoverPasswordUseCase) Execute(ctx context.Context, input RecoverPasswordInput) (*RecoverPasswordOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if user.RecoveryAnswerHash == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNoRecoveryQuestion,
			"no recovery question configured",
			domainerror.ErrNoRecoveryQuestion,
		)
	}

	answer := normalizeRecoveryAnswer(input.RecoveryAnswer)
	if err := uc.passwordService.VerifyPassword(user.RecoveryAnswerHash, answer); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWrongRecoveryAnswer,
			"wrong recovery answer",
			domainerror.ErrWrongRecoveryAnswer,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &RecoverPasswordOutput{Message: "Password has been reset"}, nil
}

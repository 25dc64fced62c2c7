// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// ApproveUserInput represents the input for user approval.
type ApproveUserInput struct {
	RequestingUserID uuid.UUID
	TargetUserID     uuid.UUID
}

// ApproveUserOutput represents the output of user approval.
type ApproveUserOutput struct {
	User *entity.User
}

// ApproveUserUseCase activates a pending account. Only the master user may
// approve registrations.
type ApproveUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewApproveUserUseCase creates a new ApproveUserUseCase instance.
func NewApproveUserUseCase(userRepo adapter.UserRepository) *ApproveUserUseCase {
	return &ApproveUserUseCase{userRepo: userRepo}
}

// Execute performs the user approval.
func (uc *ApproveUserUseCase) Execute(ctx context.Context, input ApproveUserInput) (*ApproveUserOutput, error) {
	requester, err := uc.userRepo.FindByID(ctx, input.RequestingUserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"requesting user not found",
			domainerror.ErrUserNotFound,
		)
	}
	if !requester.IsMaster {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeNotMasterUser,
			"only the master user can approve registrations",
			domainerror.ErrNotMasterUser,
		)
	}

	target, err := uc.userRepo.FindByID(ctx, input.TargetUserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"target user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if target.IsActive {
		return &ApproveUserOutput{User: target}, nil
	}

	target.IsActive = true
	if err := uc.userRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &ApproveUserOutput{User: target}, nil
}

// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// PlannerRepository defines the interface for planner persistence operations.
type PlannerRepository interface {
	// Create creates a new planner in the database.
	Create(ctx context.Context, planner *entity.Planner) error

	// FindByID retrieves a planner by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Planner, error)

	// FindByOwner retrieves all planners owned by a user, newest first.
	FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Planner, error)

	// Update updates an existing planner in the database.
	Update(ctx context.Context, planner *entity.Planner) error

	// Delete removes a planner from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

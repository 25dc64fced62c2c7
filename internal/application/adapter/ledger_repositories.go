// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// IncomeRepository defines the interface for income entry persistence operations.
type IncomeRepository interface {
	// Create creates a new income entry in the database.
	Create(ctx context.Context, entry *entity.IncomeEntry) error

	// FindByID retrieves an income entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeEntry, error)

	// FindByPlanner retrieves the full set of income entries owned by a planner.
	FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.IncomeEntry, error)

	// Delete removes an income entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExpenseRepository defines the interface for expense entry persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense entry in the database.
	Create(ctx context.Context, entry *entity.ExpenseEntry) error

	// FindByID retrieves an expense entry by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseEntry, error)

	// FindByPlanner retrieves the full set of expense entries owned by a planner.
	FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.ExpenseEntry, error)

	// SetPaid updates the paid flag of an expense entry.
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) error

	// Delete removes an expense entry from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CardRepository defines the interface for credit card and bill persistence operations.
type CardRepository interface {
	// CreateCard creates a new credit card in the database.
	CreateCard(ctx context.Context, card *entity.CreditCard) error

	// FindCardByID retrieves a credit card by its ID.
	FindCardByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error)

	// FindCardsByPlanner retrieves all credit cards owned by a planner.
	FindCardsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CreditCard, error)

	// CreateBill creates a new card bill in the database.
	CreateBill(ctx context.Context, bill *entity.CardBill) error

	// FindBillByID retrieves a card bill by its ID.
	FindBillByID(ctx context.Context, id uuid.UUID) (*entity.CardBill, error)

	// FindBillsByPlanner retrieves the full set of card bills owned by a planner.
	FindBillsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CardBill, error)

	// SetBillPaid updates the paid flag of a card bill.
	SetBillPaid(ctx context.Context, id uuid.UUID, paid bool) error

	// DeleteBill removes a card bill from the database.
	DeleteBill(ctx context.Context, id uuid.UUID) error
}

// AdjustmentRepository defines the interface for savings adjustment persistence operations.
type AdjustmentRepository interface {
	// Create creates a new savings adjustment in the database.
	Create(ctx context.Context, adjustment *entity.SavingsAdjustment) error

	// FindByPlanner retrieves all savings adjustments owned by a planner.
	FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.SavingsAdjustment, error)

	// Delete removes a savings adjustment from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

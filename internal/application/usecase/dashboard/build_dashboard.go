// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// BuildDashboardInput represents the input for a dashboard build. Today and
// CommitmentLimit are caller-supplied so the computation stays deterministic;
// a nil limit falls back to the planner's configured alert threshold.
type BuildDashboardInput struct {
	UserID          uuid.UUID
	PlannerID       uuid.UUID
	Today           time.Time
	CommitmentLimit *decimal.Decimal
}

// BuildDashboardOutput represents the fully derived dashboard.
type BuildDashboardOutput struct {
	Planner  *entity.Planner
	Kpis     *entity.KpiSet
	Alerts   []entity.Alert
	Balances *entity.Balances
}

// BuildDashboardUseCase composes KPIs, alerts and accumulated balances from
// one planner's full ledger snapshot.
type BuildDashboardUseCase struct {
	plannerRepo    adapter.PlannerRepository
	incomeRepo     adapter.IncomeRepository
	expenseRepo    adapter.ExpenseRepository
	cardRepo       adapter.CardRepository
	adjustmentRepo adapter.AdjustmentRepository
}

// NewBuildDashboardUseCase creates a new BuildDashboardUseCase instance.
func NewBuildDashboardUseCase(
	plannerRepo adapter.PlannerRepository,
	incomeRepo adapter.IncomeRepository,
	expenseRepo adapter.ExpenseRepository,
	cardRepo adapter.CardRepository,
	adjustmentRepo adapter.AdjustmentRepository,
) *BuildDashboardUseCase {
	return &BuildDashboardUseCase{
		plannerRepo:    plannerRepo,
		incomeRepo:     incomeRepo,
		expenseRepo:    expenseRepo,
		cardRepo:       cardRepo,
		adjustmentRepo: adjustmentRepo,
	}
}

// Execute loads the planner's snapshot and derives the dashboard.
func (uc *BuildDashboardUseCase) Execute(ctx context.Context, input BuildDashboardInput) (*BuildDashboardOutput, error) {
	if input.Today.IsZero() {
		return nil, domainerror.NewDashboardError(
			domainerror.ErrCodeMissingReferenceDate,
			"reference date is required",
			domainerror.ErrMissingReferenceDate,
		)
	}

	planner, err := uc.plannerRepo.FindByID(ctx, input.PlannerID)
	if err != nil {
		return nil, err
	}
	if planner.OwnerUserID != input.UserID {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeUnauthorizedPlannerAccess,
			"planner does not belong to user",
			domainerror.ErrUnauthorizedPlannerAccess,
		)
	}

	limit := planner.AlertThreshold
	if input.CommitmentLimit != nil {
		if input.CommitmentLimit.IsNegative() {
			return nil, domainerror.NewDashboardError(
				domainerror.ErrCodeInvalidCommitmentLimit,
				"commitment limit must not be negative",
				domainerror.ErrInvalidCommitmentLimit,
			)
		}
		limit = *input.CommitmentLimit
	}

	snapshot, err := uc.loadSnapshot(ctx, planner.ID)
	if err != nil {
		return nil, err
	}

	kpis, err := ComputeKpis(snapshot, entity.MonthOf(input.Today), limit)
	if err != nil {
		return nil, err
	}
	alerts, err := ComputeAlerts(snapshot, input.Today, limit)
	if err != nil {
		return nil, err
	}
	balances, err := ComputeBalances(snapshot, input.Today)
	if err != nil {
		return nil, err
	}

	return &BuildDashboardOutput{
		Planner:  planner,
		Kpis:     kpis,
		Alerts:   alerts,
		Balances: balances,
	}, nil
}

func (uc *BuildDashboardUseCase) loadSnapshot(ctx context.Context, plannerID uuid.UUID) (*LedgerSnapshot, error) {
	incomes, err := uc.incomeRepo.FindByPlanner(ctx, plannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load income entries: %w", err)
	}
	expenses, err := uc.expenseRepo.FindByPlanner(ctx, plannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense entries: %w", err)
	}
	cards, err := uc.cardRepo.FindCardsByPlanner(ctx, plannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load credit cards: %w", err)
	}
	bills, err := uc.cardRepo.FindBillsByPlanner(ctx, plannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load card bills: %w", err)
	}
	adjustments, err := uc.adjustmentRepo.FindByPlanner(ctx, plannerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load savings adjustments: %w", err)
	}

	return &LedgerSnapshot{
		Incomes:     incomes,
		Expenses:    expenses,
		Cards:       cards,
		Bills:       bills,
		Adjustments: adjustments,
	}, nil
}

// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

type fakePlannerRepo struct {
	planners map[uuid.UUID]*entity.Planner
}

func (r *fakePlannerRepo) Create(ctx context.Context, planner *entity.Planner) error { return nil }
func (r *fakePlannerRepo) Update(ctx context.Context, planner *entity.Planner) error { return nil }
func (r *fakePlannerRepo) Delete(ctx context.Context, id uuid.UUID) error            { return nil }

func (r *fakePlannerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Planner, error) {
	planner, ok := r.planners[id]
	if !ok {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodePlannerNotFound,
			"planner not found",
			domainerror.ErrPlannerNotFound,
		)
	}
	return planner, nil
}

func (r *fakePlannerRepo) FindByOwner(ctx context.Context, ownerUserID uuid.UUID) ([]*entity.Planner, error) {
	var result []*entity.Planner
	for _, p := range r.planners {
		if p.OwnerUserID == ownerUserID {
			result = append(result, p)
		}
	}
	return result, nil
}

type fakeIncomeRepo struct{ entries []*entity.IncomeEntry }

func (r *fakeIncomeRepo) Create(ctx context.Context, entry *entity.IncomeEntry) error { return nil }
func (r *fakeIncomeRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (r *fakeIncomeRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.IncomeEntry, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeIncomeRepo) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.IncomeEntry, error) {
	return r.entries, nil
}

type fakeExpenseRepo struct{ entries []*entity.ExpenseEntry }

func (r *fakeExpenseRepo) Create(ctx context.Context, entry *entity.ExpenseEntry) error { return nil }
func (r *fakeExpenseRepo) Delete(ctx context.Context, id uuid.UUID) error               { return nil }
func (r *fakeExpenseRepo) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error   { return nil }

func (r *fakeExpenseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseEntry, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeExpenseRepo) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.ExpenseEntry, error) {
	return r.entries, nil
}

type fakeCardRepo struct {
	cards []*entity.CreditCard
	bills []*entity.CardBill
}

func (r *fakeCardRepo) CreateCard(ctx context.Context, card *entity.CreditCard) error { return nil }
func (r *fakeCardRepo) CreateBill(ctx context.Context, bill *entity.CardBill) error   { return nil }
func (r *fakeCardRepo) DeleteBill(ctx context.Context, id uuid.UUID) error            { return nil }

func (r *fakeCardRepo) SetBillPaid(ctx context.Context, id uuid.UUID, paid bool) error { return nil }

func (r *fakeCardRepo) FindCardByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	return nil, domainerror.ErrCardNotFound
}

func (r *fakeCardRepo) FindCardsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CreditCard, error) {
	return r.cards, nil
}

func (r *fakeCardRepo) FindBillByID(ctx context.Context, id uuid.UUID) (*entity.CardBill, error) {
	return nil, domainerror.ErrEntryNotFound
}

func (r *fakeCardRepo) FindBillsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CardBill, error) {
	return r.bills, nil
}

type fakeAdjustmentRepo struct{ adjustments []*entity.SavingsAdjustment }

func (r *fakeAdjustmentRepo) Create(ctx context.Context, adjustment *entity.SavingsAdjustment) error {
	return nil
}
func (r *fakeAdjustmentRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeAdjustmentRepo) FindByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.SavingsAdjustment, error) {
	return r.adjustments, nil
}

func TestBuildDashboardUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	today := utcDate(2026, 3, 28)
	march := entity.NewMonth(2026, 3)

	planner, err := entity.NewPlanner("household", ownerID, entity.PlannerProfilePersonal, decimal.Decimal{}, "")
	if err != nil {
		t.Fatalf("failed to build planner: %v", err)
	}

	newUseCase := func(incomes []*entity.IncomeEntry, expenses []*entity.ExpenseEntry) *BuildDashboardUseCase {
		return NewBuildDashboardUseCase(
			&fakePlannerRepo{planners: map[uuid.UUID]*entity.Planner{planner.ID: planner}},
			&fakeIncomeRepo{entries: incomes},
			&fakeExpenseRepo{entries: expenses},
			&fakeCardRepo{},
			&fakeAdjustmentRepo{},
		)
	}

	t.Run("composes kpis, alerts and balances", func(t *testing.T) {
		uc := newUseCase(
			[]*entity.IncomeEntry{testIncome(t, 1000, march, entity.EveryMonth())},
			[]*entity.ExpenseEntry{testExpense(t, "rent", 900, 30, march, entity.EveryMonth())},
		)

		output, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:    ownerID,
			PlannerID: planner.ID,
			Today:     today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Planner.ID != planner.ID {
			t.Error("expected the resolved planner in the output")
		}
		if output.Kpis == nil || output.Kpis.Current.Month != march {
			t.Fatal("expected KPIs for the reference month")
		}
		// Ratio 0.9 exceeds the planner's default 0.8 threshold.
		if !output.Kpis.CommitmentExceeded {
			t.Error("expected the planner default threshold to apply")
		}
		if len(output.Alerts) == 0 {
			t.Fatal("expected alerts")
		}
		if last := output.Alerts[len(output.Alerts)-1]; last.Kind != entity.AlertCommitmentExceeded {
			t.Errorf("expected commitment alert last, got %s", last.Kind)
		}
		if output.Balances == nil {
			t.Fatal("expected balances")
		}
		// Entries start in the reference month, so only the projection moves.
		assertDecimal(t, "Balances.Current", output.Balances.Current, 0)
		assertDecimal(t, "Balances.Projected", output.Balances.Projected, 1300)
	})

	t.Run("explicit commitment limit overrides the planner threshold", func(t *testing.T) {
		uc := newUseCase(
			[]*entity.IncomeEntry{testIncome(t, 1000, march, entity.EveryMonth())},
			[]*entity.ExpenseEntry{testExpense(t, "rent", 900, 2, march, entity.EveryMonth())},
		)

		limit := decimal.NewFromFloat(0.95)
		output, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:          ownerID,
			PlannerID:       planner.ID,
			Today:           today,
			CommitmentLimit: &limit,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Kpis.CommitmentExceeded {
			t.Error("expected no breach at ratio 0.9 against limit 0.95")
		}
	})

	t.Run("rejects a negative commitment limit", func(t *testing.T) {
		uc := newUseCase(nil, nil)
		limit := decimal.NewFromFloat(-0.1)

		_, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:          ownerID,
			PlannerID:       planner.ID,
			Today:           today,
			CommitmentLimit: &limit,
		})
		if !errors.Is(err, domainerror.ErrInvalidCommitmentLimit) {
			t.Errorf("expected ErrInvalidCommitmentLimit, got %v", err)
		}
	})

	t.Run("rejects a zero reference date", func(t *testing.T) {
		uc := newUseCase(nil, nil)

		_, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:    ownerID,
			PlannerID: planner.ID,
		})
		if !errors.Is(err, domainerror.ErrMissingReferenceDate) {
			t.Errorf("expected ErrMissingReferenceDate, got %v", err)
		}
	})

	t.Run("rejects a planner owned by someone else", func(t *testing.T) {
		uc := newUseCase(nil, nil)

		_, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:    uuid.New(),
			PlannerID: planner.ID,
			Today:     today,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedPlannerAccess) {
			t.Errorf("expected ErrUnauthorizedPlannerAccess, got %v", err)
		}
	})

	t.Run("propagates planner not found", func(t *testing.T) {
		uc := newUseCase(nil, nil)

		_, err := uc.Execute(ctx, BuildDashboardInput{
			UserID:    ownerID,
			PlannerID: uuid.New(),
			Today:     today,
		})
		if !errors.Is(err, domainerror.ErrPlannerNotFound) {
			t.Errorf("expected ErrPlannerNotFound, got %v", err)
		}
	})
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// PlannerProfile represents the profile a planner is scoped to.
type PlannerProfile string

const (
	PlannerProfilePersonal PlannerProfile = "personal"
	PlannerProfileBusiness PlannerProfile = "business"
)

// DefaultAlertThreshold is the commitment-ratio threshold assigned to new
// planners when none is given.
var DefaultAlertThreshold = decimal.NewFromFloat(0.8)

// DefaultCurrency is the currency code assigned to new planners.
const DefaultCurrency = "BRL"

// Planner is the logical container owning disjoint sets of incomes, expenses,
// cards and bills, scoped to one user and one profile. Planners never share
// entries.
type Planner struct {
	ID             uuid.UUID
	Name           string
	OwnerUserID    uuid.UUID
	Profile        PlannerProfile
	AlertThreshold decimal.Decimal
	Currency       string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewPlanner creates a new Planner entity.
func NewPlanner(name string, ownerUserID uuid.UUID, profile PlannerProfile, alertThreshold decimal.Decimal, currency string) (*Planner, error) {
	if name == "" {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeMissingPlannerName,
			"planner name is required",
			domainerror.ErrMissingPlannerName,
		)
	}
	if profile != PlannerProfilePersonal && profile != PlannerProfileBusiness {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidPlannerProfile,
			"planner profile must be 'personal' or 'business'",
			domainerror.ErrInvalidPlannerProfile,
		)
	}
	if alertThreshold.IsZero() {
		alertThreshold = DefaultAlertThreshold
	}
	if alertThreshold.IsNegative() {
		return nil, domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidAlertThreshold,
			"alert threshold must not be negative",
			domainerror.ErrInvalidAlertThreshold,
		)
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	now := time.Now().UTC()
	return &Planner{
		ID:             uuid.New(),
		Name:           name,
		OwnerUserID:    ownerUserID,
		Profile:        profile,
		AlertThreshold: alertThreshold,
		Currency:       currency,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

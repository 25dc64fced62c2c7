// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// AdjustmentModel represents the savings_adjustments table in the database.
type AdjustmentModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlannerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Kind        string          `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time       `gorm:"not null"`

	Planner *PlannerModel `gorm:"foreignKey:PlannerID;references:ID"`
}

// TableName returns the table name for the AdjustmentModel.
func (AdjustmentModel) TableName() string {
	return "savings_adjustments"
}

// ToEntity converts an AdjustmentModel to a domain SavingsAdjustment entity.
func (m *AdjustmentModel) ToEntity() *entity.SavingsAdjustment {
	return &entity.SavingsAdjustment{
		ID:          m.ID,
		PlannerID:   m.PlannerID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		Kind:        entity.AdjustmentKind(m.Kind),
		CreatedAt:   m.CreatedAt,
	}
}

// AdjustmentFromEntity creates an AdjustmentModel from a domain SavingsAdjustment entity.
func AdjustmentFromEntity(adjustment *entity.SavingsAdjustment) *AdjustmentModel {
	return &AdjustmentModel{
		ID:          adjustment.ID,
		PlannerID:   adjustment.PlannerID,
		Description: adjustment.Description,
		Amount:      adjustment.Amount,
		Date:        adjustment.Date,
		Kind:        string(adjustment.Kind),
		CreatedAt:   adjustment.CreatedAt,
	}
}

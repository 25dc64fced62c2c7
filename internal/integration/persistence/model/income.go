// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// IncomeModel represents the income_entries table in the database.
// Months are stored in "YYYY-MM" form.
type IncomeModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlannerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Type             string          `gorm:"type:varchar(16);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	StartMonth       string          `gorm:"type:varchar(7);not null;index"`
	RecurrenceKind   string          `gorm:"type:varchar(16);not null"`
	RecurrenceMonths int             `gorm:"default:0"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Planner *PlannerModel `gorm:"foreignKey:PlannerID;references:ID"`
}

// TableName returns the table name for the IncomeModel.
func (IncomeModel) TableName() string {
	return "income_entries"
}

// ToEntity converts an IncomeModel to a domain IncomeEntry entity.
func (m *IncomeModel) ToEntity() *entity.IncomeEntry {
	return &entity.IncomeEntry{
		ID:          m.ID,
		PlannerID:   m.PlannerID,
		Description: m.Description,
		Type:        entity.IncomeType(m.Type),
		Amount:      m.Amount,
		StartMonth:  monthFromColumn(m.StartMonth),
		Recurrence: entity.Recurrence{
			Kind:   entity.RecurrenceKind(m.RecurrenceKind),
			Months: m.RecurrenceMonths,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// IncomeFromEntity creates an IncomeModel from a domain IncomeEntry entity.
func IncomeFromEntity(entry *entity.IncomeEntry) *IncomeModel {
	return &IncomeModel{
		ID:               entry.ID,
		PlannerID:        entry.PlannerID,
		Description:      entry.Description,
		Type:             string(entry.Type),
		Amount:           entry.Amount,
		StartMonth:       entry.StartMonth.String(),
		RecurrenceKind:   string(entry.Recurrence.Kind),
		RecurrenceMonths: entry.Recurrence.Months,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
}

// monthFromColumn parses a stored "YYYY-MM" value. A malformed value maps to
// the zero Month, which entity validation rejects downstream.
func monthFromColumn(s string) entity.Month {
	month, err := entity.ParseMonth(s)
	if err != nil {
		return entity.Month{}
	}
	return month
}

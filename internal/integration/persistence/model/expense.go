// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// ExpenseModel represents the expense_entries table in the database.
type ExpenseModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PlannerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Category         string          `gorm:"type:varchar(16);not null"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDay           int             `gorm:"not null"`
	StartMonth       string          `gorm:"type:varchar(7);not null;index"`
	RecurrenceKind   string          `gorm:"type:varchar(16);not null"`
	RecurrenceMonths int             `gorm:"default:0"`
	IsPaid           bool            `gorm:"default:false"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`

	Planner *PlannerModel `gorm:"foreignKey:PlannerID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expense_entries"
}

// ToEntity converts an ExpenseModel to a domain ExpenseEntry entity.
func (m *ExpenseModel) ToEntity() *entity.ExpenseEntry {
	return &entity.ExpenseEntry{
		ID:          m.ID,
		PlannerID:   m.PlannerID,
		Description: m.Description,
		Category:    entity.ExpenseCategory(m.Category),
		Amount:      m.Amount,
		DueDay:      m.DueDay,
		StartMonth:  monthFromColumn(m.StartMonth),
		Recurrence: entity.Recurrence{
			Kind:   entity.RecurrenceKind(m.RecurrenceKind),
			Months: m.RecurrenceMonths,
		},
		IsPaid:    m.IsPaid,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain ExpenseEntry entity.
func ExpenseFromEntity(entry *entity.ExpenseEntry) *ExpenseModel {
	return &ExpenseModel{
		ID:               entry.ID,
		PlannerID:        entry.PlannerID,
		Description:      entry.Description,
		Category:         string(entry.Category),
		Amount:           entry.Amount,
		DueDay:           entry.DueDay,
		StartMonth:       entry.StartMonth.String(),
		RecurrenceKind:   string(entry.Recurrence.Kind),
		RecurrenceMonths: entry.Recurrence.Months,
		IsPaid:           entry.IsPaid,
		CreatedAt:        entry.CreatedAt,
		UpdatedAt:        entry.UpdatedAt,
	}
}

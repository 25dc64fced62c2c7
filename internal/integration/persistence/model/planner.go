// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// PlannerModel represents the planners table in the database.
type PlannerModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name           string          `gorm:"type:varchar(128);not null"`
	OwnerUserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Profile        string          `gorm:"type:varchar(16);not null"`
	AlertThreshold decimal.Decimal `gorm:"type:decimal(5,4);not null"`
	Currency       string          `gorm:"type:varchar(8);not null"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Owner *UserModel `gorm:"foreignKey:OwnerUserID;references:ID"`
}

// TableName returns the table name for the PlannerModel.
func (PlannerModel) TableName() string {
	return "planners"
}

// ToEntity converts a PlannerModel to a domain Planner entity.
func (m *PlannerModel) ToEntity() *entity.Planner {
	return &entity.Planner{
		ID:             m.ID,
		Name:           m.Name,
		OwnerUserID:    m.OwnerUserID,
		Profile:        entity.PlannerProfile(m.Profile),
		AlertThreshold: m.AlertThreshold,
		Currency:       m.Currency,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// PlannerFromEntity creates a PlannerModel from a domain Planner entity.
func PlannerFromEntity(planner *entity.Planner) *PlannerModel {
	return &PlannerModel{
		ID:             planner.ID,
		Name:           planner.Name,
		OwnerUserID:    planner.OwnerUserID,
		Profile:        string(planner.Profile),
		AlertThreshold: planner.AlertThreshold,
		Currency:       planner.Currency,
		CreatedAt:      planner.CreatedAt,
		UpdatedAt:      planner.UpdatedAt,
	}
}

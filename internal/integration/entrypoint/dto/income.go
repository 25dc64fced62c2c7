// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// RecurrenceRequest represents a recurrence rule in request bodies.
type RecurrenceRequest struct {
	Kind   string `json:"kind" binding:"required,oneof=single_month every_month for_months"`
	Months int    `json:"months,omitempty" binding:"omitempty,min=1"`
}

// ToRecurrence converts the request shape to a domain Recurrence.
func (r RecurrenceRequest) ToRecurrence() entity.Recurrence {
	return entity.Recurrence{
		Kind:   entity.RecurrenceKind(r.Kind),
		Months: r.Months,
	}
}

// RecurrenceResponse represents a recurrence rule in API responses.
type RecurrenceResponse struct {
	Kind   string `json:"kind"`
	Months int    `json:"months,omitempty"`
}

// CreateIncomeRequest represents the request body for income entry creation.
type CreateIncomeRequest struct {
	Description string            `json:"description" binding:"required,min=1,max=255"`
	Type        string            `json:"type" binding:"required,oneof=fixed commission bonus extra other"`
	Amount      float64           `json:"amount" binding:"required,min=0"`
	StartMonth  string            `json:"start_month" binding:"required"`
	Recurrence  RecurrenceRequest `json:"recurrence" binding:"required"`
}

// IncomeResponse represents a single income entry in API responses.
type IncomeResponse struct {
	ID          string             `json:"id"`
	PlannerID   string             `json:"planner_id"`
	Description string             `json:"description"`
	Type        string             `json:"type"`
	Amount      string             `json:"amount"`
	StartMonth  string             `json:"start_month"`
	Recurrence  RecurrenceResponse `json:"recurrence"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// IncomeListResponse represents the response for listing income entries.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain IncomeEntry to an IncomeResponse DTO.
func ToIncomeResponse(entry *entity.IncomeEntry) IncomeResponse {
	return IncomeResponse{
		ID:          entry.ID.String(),
		PlannerID:   entry.PlannerID.String(),
		Description: entry.Description,
		Type:        string(entry.Type),
		Amount:      entry.Amount.String(),
		StartMonth:  entry.StartMonth.String(),
		Recurrence: RecurrenceResponse{
			Kind:   string(entry.Recurrence.Kind),
			Months: entry.Recurrence.Months,
		},
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToIncomeListResponse converts an income entry slice to an IncomeListResponse DTO.
func ToIncomeListResponse(entries []*entity.IncomeEntry) IncomeListResponse {
	response := IncomeListResponse{
		Incomes: make([]IncomeResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Incomes = append(response.Incomes, ToIncomeResponse(entry))
	}
	return response
}

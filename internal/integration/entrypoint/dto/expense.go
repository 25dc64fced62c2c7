// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense entry creation.
type CreateExpenseRequest struct {
	Description string            `json:"description" binding:"required,min=1,max=255"`
	Category    string            `json:"category" binding:"required,oneof=financing electric water internet phone rent tax other"`
	Amount      float64           `json:"amount" binding:"required,min=0"`
	DueDay      int               `json:"due_day" binding:"required,min=1,max=31"`
	StartMonth  string            `json:"start_month" binding:"required"`
	Recurrence  RecurrenceRequest `json:"recurrence" binding:"required"`
}

// SetPaidRequest represents the request body for toggling a paid flag.
type SetPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

// ExpenseResponse represents a single expense entry in API responses.
type ExpenseResponse struct {
	ID          string             `json:"id"`
	PlannerID   string             `json:"planner_id"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Amount      string             `json:"amount"`
	DueDay      int                `json:"due_day"`
	StartMonth  string             `json:"start_month"`
	Recurrence  RecurrenceResponse `json:"recurrence"`
	IsPaid      bool               `json:"is_paid"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expense entries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain ExpenseEntry to an ExpenseResponse DTO.
func ToExpenseResponse(entry *entity.ExpenseEntry) ExpenseResponse {
	return ExpenseResponse{
		ID:          entry.ID.String(),
		PlannerID:   entry.PlannerID.String(),
		Description: entry.Description,
		Category:    string(entry.Category),
		Amount:      entry.Amount.String(),
		DueDay:      entry.DueDay,
		StartMonth:  entry.StartMonth.String(),
		Recurrence: RecurrenceResponse{
			Kind:   string(entry.Recurrence.Kind),
			Months: entry.Recurrence.Months,
		},
		IsPaid:    entry.IsPaid,
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
	}
}

// ToExpenseListResponse converts an expense entry slice to an ExpenseListResponse DTO.
func ToExpenseListResponse(entries []*entity.ExpenseEntry) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Expenses = append(response.Expenses, ToExpenseResponse(entry))
	}
	return response
}

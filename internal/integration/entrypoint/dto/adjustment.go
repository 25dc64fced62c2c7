// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateAdjustmentRequest represents the request body for savings adjustment creation.
type CreateAdjustmentRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,min=0"`
	Date        string  `json:"date" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=deposit withdrawal"`
}

// AdjustmentResponse represents a single savings adjustment in API responses.
type AdjustmentResponse struct {
	ID          string    `json:"id"`
	PlannerID   string    `json:"planner_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        string    `json:"date"`
	Kind        string    `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`
}

// AdjustmentListResponse represents the response for listing savings adjustments.
type AdjustmentListResponse struct {
	Adjustments []AdjustmentResponse `json:"adjustments"`
}

// ToAdjustmentResponse converts a domain SavingsAdjustment to an AdjustmentResponse DTO.
func ToAdjustmentResponse(adjustment *entity.SavingsAdjustment) AdjustmentResponse {
	return AdjustmentResponse{
		ID:          adjustment.ID.String(),
		PlannerID:   adjustment.PlannerID.String(),
		Description: adjustment.Description,
		Amount:      adjustment.Amount.String(),
		Date:        adjustment.Date.Format("2006-01-02"),
		Kind:        string(adjustment.Kind),
		CreatedAt:   adjustment.CreatedAt,
	}
}

// ToAdjustmentListResponse converts an adjustment slice to an AdjustmentListResponse DTO.
func ToAdjustmentListResponse(adjustments []*entity.SavingsAdjustment) AdjustmentListResponse {
	response := AdjustmentListResponse{
		Adjustments: make([]AdjustmentResponse, 0, len(adjustments)),
	}
	for _, adjustment := range adjustments {
		response.Adjustments = append(response.Adjustments, ToAdjustmentResponse(adjustment))
	}
	return response
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreatePlannerRequest represents the request body for planner creation.
type CreatePlannerRequest struct {
	Name           string   `json:"name" binding:"required,min=1,max=100"`
	Profile        string   `json:"profile" binding:"required,oneof=personal business"`
	AlertThreshold *float64 `json:"alert_threshold,omitempty"`
	Currency       string   `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// PlannerResponse represents a single planner in API responses.
type PlannerResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Profile        string    `json:"profile"`
	AlertThreshold string    `json:"alert_threshold"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PlannerListResponse represents the response for listing planners.
type PlannerListResponse struct {
	Planners []PlannerResponse `json:"planners"`
}

// ToPlannerResponse converts a domain Planner entity to a PlannerResponse DTO.
func ToPlannerResponse(planner *entity.Planner) PlannerResponse {
	return PlannerResponse{
		ID:             planner.ID.String(),
		Name:           planner.Name,
		Profile:        string(planner.Profile),
		AlertThreshold: planner.AlertThreshold.String(),
		Currency:       planner.Currency,
		CreatedAt:      planner.CreatedAt,
		UpdatedAt:      planner.UpdatedAt,
	}
}

// ToPlannerListResponse converts a planner slice to a PlannerListResponse DTO.
func ToPlannerListResponse(planners []*entity.Planner) PlannerListResponse {
	response := PlannerListResponse{
		Planners: make([]PlannerResponse, 0, len(planners)),
	}
	for _, planner := range planners {
		response.Planners = append(response.Planners, ToPlannerResponse(planner))
	}
	return response
}

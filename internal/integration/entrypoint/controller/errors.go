// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps planner, ledger entry and dashboard errors to HTTP
// responses. Auth errors have their own handler on the auth controller.
func handleDomainError(ctx *gin.Context, err error) {
	var plannerErr *domainerror.PlannerError
	if errors.As(err, &plannerErr) {
		ctx.JSON(statusForPlannerError(plannerErr.Code), dto.ErrorResponse{
			Error: plannerErr.Message,
			Code:  string(plannerErr.Code),
		})
		return
	}

	var entryErr *domainerror.EntryError
	if errors.As(err, &entryErr) {
		ctx.JSON(statusForEntryError(entryErr.Code), dto.ErrorResponse{
			Error: entryErr.Message,
			Code:  string(entryErr.Code),
		})
		return
	}

	var dashboardErr *domainerror.DashboardError
	if errors.As(err, &dashboardErr) {
		ctx.JSON(statusForDashboardError(dashboardErr.Code), dto.ErrorResponse{
			Error: dashboardErr.Message,
			Code:  string(dashboardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForPlannerError maps planner error codes to HTTP status codes.
func statusForPlannerError(code domainerror.PlannerErrorCode) int {
	switch code {
	case domainerror.ErrCodePlannerNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedPlannerAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingPlannerName,
		domainerror.ErrCodeInvalidPlannerProfile,
		domainerror.ErrCodeInvalidAlertThreshold:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusForEntryError maps ledger entry error codes to HTTP status codes.
func statusForEntryError(code domainerror.EntryErrorCode) int {
	switch code {
	case domainerror.ErrCodeEntryNotFound,
		domainerror.ErrCodeCardNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// statusForDashboardError maps dashboard error codes to HTTP status codes.
func statusForDashboardError(code domainerror.DashboardErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingReferenceDate,
		domainerror.ErrCodeInvalidCommitmentLimit,
		domainerror.ErrCodeInvalidDateFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

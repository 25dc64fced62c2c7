// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/adjustment"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// AdjustmentController handles savings adjustment endpoints.
type AdjustmentController struct {
	createUseCase *adjustment.CreateAdjustmentUseCase
	listUseCase   *adjustment.ListAdjustmentsUseCase
	deleteUseCase *adjustment.DeleteAdjustmentUseCase
}

// NewAdjustmentController creates a new adjustment controller instance.
func NewAdjustmentController(
	createUseCase *adjustment.CreateAdjustmentUseCase,
	listUseCase *adjustment.ListAdjustmentsUseCase,
	deleteUseCase *adjustment.DeleteAdjustmentUseCase,
) *AdjustmentController {
	return &AdjustmentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /planners/:id/adjustments requests.
func (c *AdjustmentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	plannerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid planner ID format",
		})
		return
	}

	var req dto.CreateAdjustmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidAdjustmentKind),
		})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDateFormat),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), adjustment.CreateAdjustmentInput{
		UserID:      userID,
		PlannerID:   plannerID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Date:        date,
		Kind:        entity.AdjustmentKind(req.Kind),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAdjustmentResponse(output.Adjustment))
}

// List handles GET /planners/:id/adjustments requests.
func (c *AdjustmentController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	plannerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid planner ID format",
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), adjustment.ListAdjustmentsInput{
		UserID:    userID,
		PlannerID: plannerID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAdjustmentListResponse(output.Adjustments))
}

// Delete handles DELETE /planners/:id/adjustments/:adjustmentId requests.
func (c *AdjustmentController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	plannerID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid planner ID format",
		})
		return
	}

	adjustmentID, err := uuid.Parse(ctx.Param("adjustmentId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid adjustment ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), adjustment.DeleteAdjustmentInput{
		UserID:       userID,
		PlannerID:    plannerID,
		AdjustmentID: adjustmentID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

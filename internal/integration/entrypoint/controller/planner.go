// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/planner"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// PlannerController handles planner endpoints.
type PlannerController struct {
	createUseCase *planner.CreatePlannerUseCase
	listUseCase   *planner.ListPlannersUseCase
	getUseCase    *planner.GetPlannerUseCase
}

// NewPlannerController creates a new planner controller instance.
func NewPlannerController(
	createUseCase *planner.CreatePlannerUseCase,
	listUseCase *planner.ListPlannersUseCase,
	getUseCase *planner.GetPlannerUseCase,
) *PlannerController {
	return &PlannerController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
	}
}

// Create handles POST /planners requests.
func (c *PlannerController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreatePlannerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingPlannerName),
		})
		return
	}

	input := planner.CreatePlannerInput{
		UserID:   userID,
		Name:     req.Name,
		Profile:  entity.PlannerProfile(req.Profile),
		Currency: req.Currency,
	}
	if req.AlertThreshold != nil {
		input.AlertThreshold = decimal.NewFromFloat(*req.AlertThreshold)
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPlannerResponse(output.Planner))
}

// List handles GET /planners requests.
func (c *PlannerController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), planner.ListPlannersInput{
		UserID: userID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlannerListResponse(output.Planners))
}

// Get handles GET /planners/:id requests.
func (c *PlannerController) Get(ctx *gin.Context) {
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

	output, err := c.getUseCase.Execute(ctx.Request.Context(), planner.GetPlannerInput{
		UserID:    userID,
		PlannerID: plannerID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPlannerResponse(output.Planner))
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/dashboard"
	"github.com/finance-planner/backend/internal/application/usecase/notification"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard and alert digest endpoints.
type DashboardController struct {
	buildUseCase  *dashboard.BuildDashboardUseCase
	digestUseCase *notification.EnqueueAlertDigestUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	buildUseCase *dashboard.BuildDashboardUseCase,
	digestUseCase *notification.EnqueueAlertDigestUseCase,
) *DashboardController {
	return &DashboardController{
		buildUseCase:  buildUseCase,
		digestUseCase: digestUseCase,
	}
}

// Get handles GET /planners/:id/dashboard requests. The optional "date"
// query parameter sets the reference date (defaults to today); the optional
// "commitment_limit" parameter overrides the planner's alert threshold for
// this build only.
func (c *DashboardController) Get(ctx *gin.Context) {
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

	today := time.Now().UTC()
	if dateStr := ctx.Query("date"); dateStr != "" {
		today, err = time.Parse("2006-01-02", dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateFormat),
			})
			return
		}
	}

	input := dashboard.BuildDashboardInput{
		UserID:    userID,
		PlannerID: plannerID,
		Today:     today,
	}

	if limitStr := ctx.Query("commitment_limit"); limitStr != "" {
		limit, err := decimal.NewFromString(limitStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid commitment limit",
				Code:  string(domainerror.ErrCodeInvalidCommitmentLimit),
			})
			return
		}
		input.CommitmentLimit = &limit
	}

	output, err := c.buildUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardResponse(output))
}

// EnqueueDigest handles POST /planners/:id/digest requests. It queues an
// email summarizing the planner's current alerts; nothing is queued when
// there are no alerts or the user has no email address.
func (c *DashboardController) EnqueueDigest(ctx *gin.Context) {
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

	output, err := c.digestUseCase.Execute(ctx.Request.Context(), notification.EnqueueAlertDigestInput{
		UserID:    userID,
		PlannerID: plannerID,
		Today:     time.Now().UTC(),
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.DigestResponse{
		Queued:     output.Queued,
		AlertCount: output.AlertCount,
	})
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/card"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// CardController handles credit card and card bill endpoints.
type CardController struct {
	createCardUseCase  *card.CreateCardUseCase
	listCardsUseCase   *card.ListCardsUseCase
	createBillUseCase  *card.CreateBillUseCase
	listBillsUseCase   *card.ListBillsUseCase
	setBillPaidUseCase *card.SetBillPaidUseCase
	deleteBillUseCase  *card.DeleteBillUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createCardUseCase *card.CreateCardUseCase,
	listCardsUseCase *card.ListCardsUseCase,
	createBillUseCase *card.CreateBillUseCase,
	listBillsUseCase *card.ListBillsUseCase,
	setBillPaidUseCase *card.SetBillPaidUseCase,
	deleteBillUseCase *card.DeleteBillUseCase,
) *CardController {
	return &CardController{
		createCardUseCase:  createCardUseCase,
		listCardsUseCase:   listCardsUseCase,
		createBillUseCase:  createBillUseCase,
		listBillsUseCase:   listBillsUseCase,
		setBillPaidUseCase: setBillPaidUseCase,
		deleteBillUseCase:  deleteBillUseCase,
	}
}

// CreateCard handles POST /planners/:id/cards requests.
func (c *CardController) CreateCard(ctx *gin.Context) {
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

	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBankName),
		})
		return
	}

	output, err := c.createCardUseCase.Execute(ctx.Request.Context(), card.CreateCardInput{
		UserID:    userID,
		PlannerID: plannerID,
		BankName:  req.BankName,
		CardLabel: req.CardLabel,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// ListCards handles GET /planners/:id/cards requests.
func (c *CardController) ListCards(ctx *gin.Context) {
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

	output, err := c.listCardsUseCase.Execute(ctx.Request.Context(), card.ListCardsInput{
		UserID:    userID,
		PlannerID: plannerID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardListResponse(output.Cards))
}

// CreateBill handles POST /bills requests. The bill's planner is inherited
// from its card.
func (c *CardController) CreateBill(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidDueDate),
		})
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID format",
		})
		return
	}

	referenceMonth, err := entity.ParseMonth(req.ReferenceMonth)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reference month. Use YYYY-MM",
			Code:  string(domainerror.ErrCodeMissingStartMonth),
		})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidDueDate),
		})
		return
	}

	output, err := c.createBillUseCase.Execute(ctx.Request.Context(), card.CreateBillInput{
		UserID:         userID,
		CardID:         cardID,
		ReferenceMonth: referenceMonth,
		Amount:         decimal.NewFromFloat(req.Amount),
		DueDate:        dueDate,
		IsPaid:         req.IsPaid,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// ListBills handles GET /planners/:id/bills requests.
func (c *CardController) ListBills(ctx *gin.Context) {
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

	output, err := c.listBillsUseCase.Execute(ctx.Request.Context(), card.ListBillsInput{
		UserID:    userID,
		PlannerID: plannerID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output.Bills))
}

// SetBillPaid handles PATCH /bills/:id/paid requests.
func (c *CardController) SetBillPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	var req dto.SetPaidRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.setBillPaidUseCase.Execute(ctx.Request.Context(), card.SetBillPaidInput{
		UserID: userID,
		BillID: billID,
		Paid:   *req.Paid,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// DeleteBill handles DELETE /bills/:id requests.
func (c *CardController) DeleteBill(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid bill ID format",
		})
		return
	}

	output, err := c.deleteBillUseCase.Execute(ctx.Request.Context(), card.DeleteBillInput{
		UserID: userID,
		BillID: billID,
	})
	if err != nil {
		handleDomainError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

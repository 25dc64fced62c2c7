// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CreateCardRequest represents the request body for credit card registration.
type CreateCardRequest struct {
	BankName  string `json:"bank_name" binding:"required,min=1,max=100"`
	CardLabel string `json:"card_label,omitempty" binding:"omitempty,max=100"`
}

// CreateBillRequest represents the request body for card bill creation.
type CreateBillRequest struct {
	CardID         string  `json:"card_id" binding:"required"`
	ReferenceMonth string  `json:"reference_month" binding:"required"`
	Amount         float64 `json:"amount" binding:"required,min=0"`
	DueDate        string  `json:"due_date" binding:"required"`
	IsPaid         bool    `json:"is_paid,omitempty"`
}

// CardResponse represents a single credit card in API responses.
type CardResponse struct {
	ID        string    `json:"id"`
	PlannerID string    `json:"planner_id"`
	BankName  string    `json:"bank_name"`
	CardLabel string    `json:"card_label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CardListResponse represents the response for listing credit cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// BillResponse represents a single card bill in API responses.
type BillResponse struct {
	ID             string    `json:"id"`
	CardID         string    `json:"card_id"`
	PlannerID      string    `json:"planner_id"`
	ReferenceMonth string    `json:"reference_month"`
	Amount         string    `json:"amount"`
	DueDate        string    `json:"due_date"`
	IsPaid         bool      `json:"is_paid"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BillListResponse represents the response for listing card bills.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// ToCardResponse converts a domain CreditCard to a CardResponse DTO.
func ToCardResponse(card *entity.CreditCard) CardResponse {
	return CardResponse{
		ID:        card.ID.String(),
		PlannerID: card.PlannerID.String(),
		BankName:  card.BankName,
		CardLabel: card.CardLabel,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

// ToCardListResponse converts a card slice to a CardListResponse DTO.
func ToCardListResponse(cards []*entity.CreditCard) CardListResponse {
	response := CardListResponse{
		Cards: make([]CardResponse, 0, len(cards)),
	}
	for _, card := range cards {
		response.Cards = append(response.Cards, ToCardResponse(card))
	}
	return response
}

// ToBillResponse converts a domain CardBill to a BillResponse DTO.
func ToBillResponse(bill *entity.CardBill) BillResponse {
	return BillResponse{
		ID:             bill.ID.String(),
		CardID:         bill.CardID.String(),
		PlannerID:      bill.PlannerID.String(),
		ReferenceMonth: bill.ReferenceMonth.String(),
		Amount:         bill.Amount.String(),
		DueDate:        bill.DueDate.Format("2006-01-02"),
		IsPaid:         bill.IsPaid,
		CreatedAt:      bill.CreatedAt,
		UpdatedAt:      bill.UpdatedAt,
	}
}

// ToBillListResponse converts a bill slice to a BillListResponse DTO.
func ToBillListResponse(bills []*entity.CardBill) BillListResponse {
	response := BillListResponse{
		Bills: make([]BillResponse, 0, len(bills)),
	}
	for _, bill := range bills {
		response.Bills = append(response.Bills, ToBillResponse(bill))
	}
	return response
}

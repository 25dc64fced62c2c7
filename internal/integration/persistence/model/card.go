// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// CardModel represents the credit_cards table in the database.
type CardModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlannerID uuid.UUID `gorm:"type:uuid;not null;index"`
	BankName  string    `gorm:"type:varchar(128);not null"`
	CardLabel string    `gorm:"type:varchar(128)"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	Planner *PlannerModel `gorm:"foreignKey:PlannerID;references:ID"`
}

// TableName returns the table name for the CardModel.
func (CardModel) TableName() string {
	return "credit_cards"
}

// ToEntity converts a CardModel to a domain CreditCard entity.
func (m *CardModel) ToEntity() *entity.CreditCard {
	return &entity.CreditCard{
		ID:        m.ID,
		PlannerID: m.PlannerID,
		BankName:  m.BankName,
		CardLabel: m.CardLabel,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CardFromEntity creates a CardModel from a domain CreditCard entity.
func CardFromEntity(card *entity.CreditCard) *CardModel {
	return &CardModel{
		ID:        card.ID,
		PlannerID: card.PlannerID,
		BankName:  card.BankName,
		CardLabel: card.CardLabel,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}

// BillModel represents the card_bills table in the database. One bill per
// (card, reference month) is enforced with a composite unique index.
type BillModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CardID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_card_reference_month"`
	PlannerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReferenceMonth string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_card_reference_month"`
	Amount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate        time.Time       `gorm:"type:date;not null;index"`
	IsPaid         bool            `gorm:"default:false"`
	CreatedAt      time.Time       `gorm:"not null"`
	UpdatedAt      time.Time       `gorm:"not null"`

	Card *CardModel `gorm:"foreignKey:CardID;references:ID"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "card_bills"
}

// ToEntity converts a BillModel to a domain CardBill entity.
func (m *BillModel) ToEntity() *entity.CardBill {
	return &entity.CardBill{
		ID:             m.ID,
		CardID:         m.CardID,
		PlannerID:      m.PlannerID,
		ReferenceMonth: monthFromColumn(m.ReferenceMonth),
		Amount:         m.Amount,
		DueDate:        m.DueDate,
		IsPaid:         m.IsPaid,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// BillFromEntity creates a BillModel from a domain CardBill entity.
func BillFromEntity(bill *entity.CardBill) *BillModel {
	return &BillModel{
		ID:             bill.ID,
		CardID:         bill.CardID,
		PlannerID:      bill.PlannerID,
		ReferenceMonth: bill.ReferenceMonth.String(),
		Amount:         bill.Amount,
		DueDate:        bill.DueDate,
		IsPaid:         bill.IsPaid,
		CreatedAt:      bill.CreatedAt,
		UpdatedAt:      bill.UpdatedAt,
	}
}

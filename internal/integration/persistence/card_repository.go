// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// cardRepository implements the adapter.CardRepository interface.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository instance.
func NewCardRepository(db *gorm.DB) adapter.CardRepository {
	return &cardRepository{
		db: db,
	}
}

// CreateCard creates a new credit card in the database.
func (r *cardRepository) CreateCard(ctx context.Context, card *entity.CreditCard) error {
	cardModel := model.CardFromEntity(card)
	result := r.db.WithContext(ctx).Create(cardModel)
	return result.Error
}

// FindCardByID retrieves a credit card by its ID.
func (r *cardRepository) FindCardByID(ctx context.Context, id uuid.UUID) (*entity.CreditCard, error) {
	var cardModel model.CardModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&cardModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCardNotFound
		}
		return nil, result.Error
	}
	return cardModel.ToEntity(), nil
}

// FindCardsByPlanner retrieves all credit cards owned by a planner.
func (r *cardRepository) FindCardsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CreditCard, error) {
	var cardModels []model.CardModel
	result := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("bank_name ASC, card_label ASC").
		Find(&cardModels)
	if result.Error != nil {
		return nil, result.Error
	}

	cards := make([]*entity.CreditCard, len(cardModels))
	for i, cm := range cardModels {
		cards[i] = cm.ToEntity()
	}
	return cards, nil
}

// CreateBill creates a new card bill in the database.
func (r *cardRepository) CreateBill(ctx context.Context, bill *entity.CardBill) error {
	billModel := model.BillFromEntity(bill)
	result := r.db.WithContext(ctx).Create(billModel)
	return result.Error
}

// FindBillByID retrieves a card bill by its ID.
func (r *cardRepository) FindBillByID(ctx context.Context, id uuid.UUID) (*entity.CardBill, error) {
	var billModel model.BillModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&billModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEntryNotFound
		}
		return nil, result.Error
	}
	return billModel.ToEntity(), nil
}

// FindBillsByPlanner retrieves the full set of card bills owned by a planner.
func (r *cardRepository) FindBillsByPlanner(ctx context.Context, plannerID uuid.UUID) ([]*entity.CardBill, error) {
	var billModels []model.BillModel
	result := r.db.WithContext(ctx).
		Where("planner_id = ?", plannerID).
		Order("reference_month ASC, due_date ASC").
		Find(&billModels)
	if result.Error != nil {
		return nil, result.Error
	}

	bills := make([]*entity.CardBill, len(billModels))
	for i, bm := range billModels {
		bills[i] = bm.ToEntity()
	}
	return bills, nil
}

// SetBillPaid updates the paid flag of a card bill.
func (r *cardRepository) SetBillPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	result := r.db.WithContext(ctx).
		Model(&model.BillModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_paid":    paid,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrEntryNotFound
	}
	return nil
}

// DeleteBill removes a card bill from the database.
func (r *cardRepository) DeleteBill(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.BillModel{}, "id = ?", id)
	return result.Error
}

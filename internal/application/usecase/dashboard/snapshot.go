// Package dashboard contains the projection, aggregation and alerting engine.
package dashboard

import (
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// LedgerSnapshot is the full, already-consistent set of a planner's ledger
// records the engine computes over. It is read-only from the engine's point
// of view: no component mutates the records it is given. Consistency of the
// snapshot (e.g. under concurrent edits) is the storage layer's concern.
type LedgerSnapshot struct {
	Incomes  []*entity.IncomeEntry
	Expenses []*entity.ExpenseEntry
	Cards    []*entity.CreditCard
	Bills    []*entity.CardBill

	// Adjustments only affect accumulated balances, never month summaries.
	Adjustments []*entity.SavingsAdjustment
}

// CardByID resolves a card from the snapshot, or nil when absent.
func (s *LedgerSnapshot) CardByID(id uuid.UUID) *entity.CreditCard {
	for _, card := range s.Cards {
		if card.ID == id {
			return card
		}
	}
	return nil
}

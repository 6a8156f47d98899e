package ledger

import (
	"context"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

// UpdateCardInput carries the fields to merge into an existing card.
// Nil fields are left untouched; ClearPaymentDay unsets the due day.
type UpdateCardInput struct {
	Name            *string
	CreditLimit     *decimal.Decimal
	CutoffDay       *int
	PaymentDay      *int
	ClearPaymentDay bool
}

func validDayOfMonth(day int) bool {
	return day >= 1 && day <= 31
}

// CreateCard appends a new card with zero debt. A zero cutoff day falls back
// to the default; a nil payment day means the card has no fixed due day.
func (e *Engine) CreateCard(ctx context.Context, name string, creditLimit decimal.Decimal, cutoffDay int, paymentDay *int) (*entity.Card, error) {
	if cutoffDay != 0 && !validDayOfMonth(cutoffDay) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"cutoff day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	if paymentDay != nil && !validDayOfMonth(*paymentDay) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"payment day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	card := entity.NewCard(e.ids.NewID(), name, creditLimit, cutoffDay, paymentDay)
	e.state.Cards = append(e.state.Cards, card)

	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return card, nil
}

// UpdateCard merges the given fields into the card. A missing id is a silent
// no-op, reported through the found flag.
func (e *Engine) UpdateCard(ctx context.Context, id string, input UpdateCardInput) (*entity.Card, bool, error) {
	if input.CutoffDay != nil && !validDayOfMonth(*input.CutoffDay) {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"cutoff day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	if input.PaymentDay != nil && !validDayOfMonth(*input.PaymentDay) {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"payment day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	card := e.findCard(id)
	if card == nil {
		return nil, false, nil
	}

	if input.Name != nil {
		card.Name = *input.Name
	}
	if input.CreditLimit != nil {
		card.CreditLimit = *input.CreditLimit
	}
	if input.CutoffDay != nil {
		card.CutoffDay = *input.CutoffDay
	}
	if input.ClearPaymentDay {
		card.PaymentDay = nil
	} else if input.PaymentDay != nil {
		day := *input.PaymentDay
		card.PaymentDay = &day
	}

	if err := e.persist(ctx); err != nil {
		return nil, true, err
	}
	return card, true, nil
}

// DeleteCard removes the card. Expense rows referencing it keep their
// dangling reference; deleting them later skips the debt reversal.
func (e *Engine) DeleteCard(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, c := range e.state.Cards {
		if c.ID == id {
			e.state.Cards = append(e.state.Cards[:i], e.state.Cards[i+1:]...)
			if err := e.persist(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

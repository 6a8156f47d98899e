package ledger

import (
	"context"
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

// CreateIncome posts an income and increases the referenced account's balance
// by the same amount. A dangling account reference skips the balance effect
// but keeps the record.
func (e *Engine) CreateIncome(ctx context.Context, accountID string, amount decimal.Decimal, description string, date time.Time) (*entity.Income, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	income := e.applyIncome(accountID, amount, description, dateOnly(date))
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return income, nil
}

// applyIncome appends the record and moves the account balance without
// persisting. It is the single income-creation path: interest accrual routes
// through it too, so both entry points share the exact same balance effect.
// Callers hold the engine lock.
func (e *Engine) applyIncome(accountID string, amount decimal.Decimal, description string, date time.Time) *entity.Income {
	income := entity.NewIncome(e.ids.NewID(), accountID, amount, description, date)
	e.state.Incomes = append(e.state.Incomes, income)

	if account := e.findAccount(accountID); account != nil {
		account.Balance = account.Balance.Add(amount)
	}
	return income
}

// DeleteIncome removes the income and decreases the referenced account's
// balance by the stored amount, exactly reversing the creation. A missing id
// is a silent no-op.
func (e *Engine) DeleteIncome(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	found, err := e.deleteIncomeLocked(ctx, id)
	return found, err
}

func (e *Engine) deleteIncomeLocked(ctx context.Context, id string) (bool, error) {
	for i, income := range e.state.Incomes {
		if income.ID != id {
			continue
		}
		// Reverse with the stored amount, never a recomputed one, so the
		// delete is a bit-exact inverse of the create.
		if account := e.findAccount(income.AccountID); account != nil {
			account.Balance = account.Balance.Sub(income.Amount)
		}
		e.state.Incomes = append(e.state.Incomes[:i], e.state.Incomes[i+1:]...)
		if err := e.persist(ctx); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// UpdateIncome is delete-then-create: the old record's balance effect is
// removed, then the new record is posted under the new parameters. The two
// steps are not atomic with respect to each other, but the engine lock keeps
// any other writer out of the gap.
func (e *Engine) UpdateIncome(ctx context.Context, id, accountID string, amount decimal.Decimal, description string, date time.Time) (*entity.Income, error) {
	if !amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"income amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.deleteIncomeLocked(ctx, id); err != nil {
		return nil, err
	}

	income := e.applyIncome(accountID, amount, description, dateOnly(date))
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return income, nil
}

package ledger

import (
	"context"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

// UpdateAccountInput carries the fields to merge into an existing account.
// Nil fields are left untouched.
type UpdateAccountInput struct {
	Name         *string
	Balance      *decimal.Decimal
	InterestRate *decimal.Decimal
}

// CreateAccount appends a new account. The interest accrual clock starts at
// the current calendar day.
func (e *Engine) CreateAccount(ctx context.Context, name string, balance, interestRate decimal.Decimal) (*entity.Account, error) {
	if interestRate.IsNegative() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRate,
			"interest rate must not be negative",
			domainerror.ErrInvalidRate,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	account := entity.NewAccount(e.ids.NewID(), name, balance, interestRate, e.today())
	e.state.Accounts = append(e.state.Accounts, account)

	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return account, nil
}

// UpdateAccount merges the given fields into the account. A missing id is a
// silent no-op, reported through the found flag.
func (e *Engine) UpdateAccount(ctx context.Context, id string, input UpdateAccountInput) (*entity.Account, bool, error) {
	if input.InterestRate != nil && input.InterestRate.IsNegative() {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidRate,
			"interest rate must not be negative",
			domainerror.ErrInvalidRate,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	account := e.findAccount(id)
	if account == nil {
		return nil, false, nil
	}

	if input.Name != nil {
		account.Name = *input.Name
	}
	if input.Balance != nil {
		account.Balance = *input.Balance
	}
	if input.InterestRate != nil {
		account.InterestRate = *input.InterestRate
	}

	if err := e.persist(ctx); err != nil {
		return nil, true, err
	}
	return account, true, nil
}

// DeleteAccount removes the account. Incomes referencing it are left in place
// with a dangling reference; there is no cascade.
func (e *Engine) DeleteAccount(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i, a := range e.state.Accounts {
		if a.ID == id {
			e.state.Accounts = append(e.state.Accounts[:i], e.state.Accounts[i+1:]...)
			if err := e.persist(ctx); err != nil {
				return true, err
			}
			return true, nil
		}
	}
	return false, nil
}

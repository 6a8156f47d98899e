package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

// CreateExpenseInput represents the input for expense creation. An
// InstallmentCount of zero means a single payment; InstallmentType defaults
// to total.
type CreateExpenseInput struct {
	Type             entity.ExpenseType
	CardID           string
	Amount           decimal.Decimal
	Description      string
	Date             time.Time
	InstallmentCount int
	InstallmentType  entity.InstallmentType
}

func (in *CreateExpenseInput) validate() error {
	if in.Type != entity.ExpenseTypeCreditCard && in.Type != entity.ExpenseTypeCash {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be 'credit_card' or 'cash'",
			domainerror.ErrInvalidExpenseType,
		)
	}
	if !in.Amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if in.InstallmentCount < 0 {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallments,
			"installment count must be at least 1",
			domainerror.ErrInvalidInstallments,
		)
	}
	if in.InstallmentType != "" &&
		in.InstallmentType != entity.InstallmentTypeTotal &&
		in.InstallmentType != entity.InstallmentTypeMonthly {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidInstallments,
			"installment type must be 'total' or 'monthly'",
			domainerror.ErrInvalidInstallments,
		)
	}
	return nil
}

// CreateExpense posts an expense. Credit-card expenses are first shifted to
// the billing cycle they belong to, then either posted as one row or fanned
// out into one row per installment month. The card's debt rises by the full
// purchase total exactly once.
func (e *Engine) CreateExpense(ctx context.Context, input CreateExpenseInput) ([]*entity.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	count := input.InstallmentCount
	if count == 0 {
		count = 1
	}
	installmentType := input.InstallmentType
	if installmentType == "" {
		installmentType = entity.InstallmentTypeTotal
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	rows, err := e.createExpenseLocked(input, count, installmentType)
	if err != nil {
		return nil, err
	}
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

func (e *Engine) createExpenseLocked(input CreateExpenseInput, count int, installmentType entity.InstallmentType) ([]*entity.Expense, error) {
	effective := e.effectiveDate(input.Type, input.CardID, dateOnly(input.Date))

	if count > 1 {
		var total, monthly decimal.Decimal
		if installmentType == entity.InstallmentTypeTotal {
			total = input.Amount
			monthly = total.DivRound(decimal.NewFromInt(int64(count)), 2)
		} else {
			monthly = input.Amount
			total = monthly.Mul(decimal.NewFromInt(int64(count)))
		}

		// Debt moves by the purchase total once, not per row.
		if input.Type == entity.ExpenseTypeCreditCard {
			if card := e.findCard(input.CardID); card != nil {
				card.CurrentDebt = card.CurrentDebt.Add(total)
			}
		}

		rows := make([]*entity.Expense, 0, count)
		for i := 0; i < count; i++ {
			rows = append(rows, entity.NewExpense(
				e.ids.NewID(),
				input.Type,
				input.CardID,
				monthly,
				fmt.Sprintf("%s (%d/%d)", input.Description, i+1, count),
				effective.AddDate(0, i, 0),
				entity.Installments{Count: count, Current: i + 1, Type: installmentType},
			))
		}
		e.state.Expenses = append(e.state.Expenses, rows...)
		return rows, nil
	}

	expense := entity.NewExpense(
		e.ids.NewID(),
		input.Type,
		input.CardID,
		input.Amount,
		input.Description,
		effective,
		entity.Installments{Count: 1, Current: 1, Type: installmentType},
	)
	e.state.Expenses = append(e.state.Expenses, expense)

	if input.Type == entity.ExpenseTypeCreditCard {
		if card := e.findCard(input.CardID); card != nil {
			card.CurrentDebt = card.CurrentDebt.Add(input.Amount)
		}
	}
	return []*entity.Expense{expense}, nil
}

// effectiveDate applies the two-stage billing-cycle shift for credit-card
// expenses. A purchase after the statement cutoff belongs to the next cycle,
// and a payment day earlier in the month than the cutoff means the cycle is
// settled one calendar month later still. Non-card expenses pass through
// unchanged, as do expenses whose card no longer resolves.
func (e *Engine) effectiveDate(expenseType entity.ExpenseType, cardID string, date time.Time) time.Time {
	if expenseType != entity.ExpenseTypeCreditCard || cardID == "" {
		return date
	}
	card := e.findCard(cardID)
	if card == nil || card.CutoffDay == 0 {
		return date
	}

	expenseDay := date.Day()
	if expenseDay > card.CutoffDay {
		date = date.AddDate(0, 1, 0)
	}

	if card.PaymentDay != nil {
		if *card.PaymentDay < card.CutoffDay {
			date = date.AddDate(0, 1, 0)
		}
		return time.Date(date.Year(), date.Month(), *card.PaymentDay, 0, 0, 0, 0, time.UTC)
	}

	// No payment day configured: a shifted expense lands on the 1st of the
	// next cycle's month, an unshifted one keeps its original day.
	if expenseDay > card.CutoffDay {
		return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
	return date
}

// DeleteExpense removes one expense row and, when the card still resolves,
// decreases its debt by this row's own amount. Sibling installment rows of
// the same purchase are untouched; rows are independent after creation.
func (e *Engine) DeleteExpense(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.deleteExpenseLocked(ctx, id)
}

func (e *Engine) deleteExpenseLocked(ctx context.Context, id string) (bool, error) {
	for i, expense := range e.state.Expenses {
		if expense.ID != id {
			continue
		}
		if expense.Type == entity.ExpenseTypeCreditCard && expense.CardID != "" {
			if card := e.findCard(expense.CardID); card != nil {
				card.CurrentDebt = card.CurrentDebt.Sub(expense.Amount)
			}
		}
		e.state.Expenses = append(e.state.Expenses[:i], e.state.Expenses[i+1:]...)
		if err := e.persist(ctx); err != nil {
			return true, err
		}
		return true, nil
	}
	return false, nil
}

// UpdateExpense is delete-then-create over a single row: the row's debt
// effect is reversed and the input is posted as a fresh expense, including a
// full installment fan-out when the caller resubmits installment parameters.
// The engine has no notion of the purchase's other rows, so the caller is
// responsible for supplying those parameters consistently.
func (e *Engine) UpdateExpense(ctx context.Context, id string, input CreateExpenseInput) ([]*entity.Expense, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	count := input.InstallmentCount
	if count == 0 {
		count = 1
	}
	installmentType := input.InstallmentType
	if installmentType == "" {
		installmentType = entity.InstallmentTypeTotal
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.deleteExpenseLocked(ctx, id); err != nil {
		return nil, err
	}

	rows, err := e.createExpenseLocked(input, count, installmentType)
	if err != nil {
		return nil, err
	}
	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return rows, nil
}

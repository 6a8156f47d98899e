package ledger

import (
	"context"
	"regexp"

	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/shopspring/decimal"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// UpdateBudgetInput carries the fields to merge into an existing budget item.
type UpdateBudgetInput struct {
	Type        *entity.BudgetType
	Amount      *decimal.Decimal
	Description *string
	Day         *int
}

func validBudgetType(t entity.BudgetType) bool {
	return t == entity.BudgetTypeIncome || t == entity.BudgetTypeExpense
}

// CreateBudget appends a recurring budget item. A zero day falls back to the
// 1st of the month.
func (e *Engine) CreateBudget(ctx context.Context, budgetType entity.BudgetType, amount decimal.Decimal, description string, day int) (*entity.Budget, error) {
	if !validBudgetType(budgetType) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'income' or 'expense'",
			domainerror.ErrInvalidBudgetType,
		)
	}
	if !amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if day != 0 && !validDayOfMonth(day) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"budget day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	budget := entity.NewBudget(e.ids.NewID(), budgetType, amount, description, day)
	e.state.Budgets = append(e.state.Budgets, budget)

	if err := e.persist(ctx); err != nil {
		return nil, err
	}
	return budget, nil
}

// UpdateBudget merges the given fields into the budget item. A missing id is
// a silent no-op, reported through the found flag.
func (e *Engine) UpdateBudget(ctx context.Context, id string, input UpdateBudgetInput) (*entity.Budget, bool, error) {
	if input.Type != nil && !validBudgetType(*input.Type) {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidBudgetType,
			"budget type must be 'income' or 'expense'",
			domainerror.ErrInvalidBudgetType,
		)
	}
	if input.Amount != nil && !input.Amount.IsPositive() {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidAmount,
			"budget amount must be positive",
			domainerror.ErrInvalidAmount,
		)
	}
	if input.Day != nil && !validDayOfMonth(*input.Day) {
		return nil, false, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDayOfMonth,
			"budget day must be between 1 and 31",
			domainerror.ErrInvalidDayOfMonth,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var budget *entity.Budget
	for _, b := range e.state.Budgets {
		if b.ID == id {
			budget = b
			break
		}
	}
	if budget == nil {
		return nil, false, nil
	}

	if input.Type != nil {
		budget.Type = *input.Type
	}
	if input.Amount != nil {
		budget.Amount = *input.Amount
	}
	if input.Description != nil {
		budget.Description = *input.Description
	}
	if input.Day != nil {
		budget.Day = *input.Day
	}

	if err := e.persist(ctx); err != nil {
		return nil, true, err
	}
	return budget, true, nil
}

// DeleteBudget removes the budget item and cascades removal of all its
// payment records. This is the only cascading delete in the ledger.
func (e *Engine) DeleteBudget(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	found := false
	for i, b := range e.state.Budgets {
		if b.ID == id {
			e.state.Budgets = append(e.state.Budgets[:i], e.state.Budgets[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return false, nil
	}

	kept := e.state.BudgetPayments[:0]
	for _, bp := range e.state.BudgetPayments {
		if bp.BudgetID != id {
			kept = append(kept, bp)
		}
	}
	e.state.BudgetPayments = kept

	if err := e.persist(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// ToggleBudgetPayment marks a budget item paid or unpaid for one calendar
// month. Paying refreshes or inserts the record with the current time;
// unpaying removes the record entirely, so there is no tombstone state.
// Unpaying an absent record is a no-op that persists nothing.
func (e *Engine) ToggleBudgetPayment(ctx context.Context, budgetID, monthStr string, isPaid bool) error {
	if !monthKeyPattern.MatchString(monthStr) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			"month must be in YYYY-MM form",
			domainerror.ErrInvalidMonth,
		)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for i, bp := range e.state.BudgetPayments {
		if bp.BudgetID != budgetID || bp.MonthStr != monthStr {
			continue
		}
		if isPaid {
			bp.IsPaid = true
			bp.PaidDate = e.clock.Now().UTC()
		} else {
			e.state.BudgetPayments = append(e.state.BudgetPayments[:i], e.state.BudgetPayments[i+1:]...)
		}
		return e.persist(ctx)
	}

	if !isPaid {
		return nil
	}

	e.state.BudgetPayments = append(e.state.BudgetPayments, &entity.BudgetPayment{
		BudgetID: budgetID,
		MonthStr: monthStr,
		IsPaid:   true,
		PaidDate: e.clock.Now().UTC(),
	})
	return e.persist(ctx)
}

// GetBudgetPaymentStatus looks up the payment record for one budget and
// month. It returns nil when the month is unpaid.
func (e *Engine) GetBudgetPaymentStatus(budgetID, monthStr string) *entity.BudgetPayment {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, bp := range e.state.BudgetPayments {
		if bp.BudgetID == budgetID && bp.MonthStr == monthStr {
			return bp
		}
	}
	return nil
}

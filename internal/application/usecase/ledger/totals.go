package ledger

import (
	"time"

	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// GetMonthlyTotals sums posted incomes and expense rows whose date falls
// within the given calendar month, both boundary days inclusive.
func (e *Engine) GetMonthlyTotals(year int, month time.Month) entity.MonthlyTotals {
	e.mu.Lock()
	defer e.mu.Unlock()

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := start.AddDate(0, 1, 0)

	totals := entity.MonthlyTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, income := range e.state.Incomes {
		if inWindow(income.Date, start, next) {
			totals.Income = totals.Income.Add(income.Amount)
		}
	}
	for _, expense := range e.state.Expenses {
		if inWindow(expense.Date, start, next) {
			totals.Expense = totals.Expense.Add(expense.Amount)
		}
	}
	return totals
}

func inWindow(d, start, next time.Time) bool {
	return !d.Before(start) && d.Before(next)
}

// GetTotalAssets sums all account balances.
func (e *Engine) GetTotalAssets() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalAssetsLocked()
}

func (e *Engine) totalAssetsLocked() decimal.Decimal {
	total := decimal.Zero
	for _, a := range e.state.Accounts {
		total = total.Add(a.Balance)
	}
	return total
}

// GetTotalDebt sums all card running debts.
func (e *Engine) GetTotalDebt() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalDebtLocked()
}

func (e *Engine) totalDebtLocked() decimal.Decimal {
	total := decimal.Zero
	for _, c := range e.state.Cards {
		total = total.Add(c.CurrentDebt)
	}
	return total
}

// GetNetWorth returns assets minus debt together with both components.
func (e *Engine) GetNetWorth() entity.NetWorthSummary {
	e.mu.Lock()
	defer e.mu.Unlock()

	assets := e.totalAssetsLocked()
	debt := e.totalDebtLocked()
	return entity.NetWorthSummary{
		TotalAssets: assets,
		TotalDebt:   debt,
		NetWorth:    assets.Sub(debt),
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetType represents the direction of a recurring budget item.
type BudgetType string

const (
	BudgetTypeIncome  BudgetType = "income"
	BudgetTypeExpense BudgetType = "expense"
)

// Budget represents a recurring planned item (rent, salary), not an actual
// posted transaction.
type Budget struct {
	ID          string          `json:"id"`
	Type        BudgetType      `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Day         int             `json:"day"` // Day of month, 1-31
}

// NewBudget creates a new Budget entity.
func NewBudget(id string, budgetType BudgetType, amount decimal.Decimal, description string, day int) *Budget {
	if day == 0 {
		day = 1
	}
	return &Budget{
		ID:          id,
		Type:        budgetType,
		Amount:      amount,
		Description: description,
		Day:         day,
	}
}

// BudgetPayment records that a budget item was settled for one calendar month.
// It is keyed by (BudgetID, MonthStr); a month with no record is unpaid.
type BudgetPayment struct {
	BudgetID string    `json:"budgetId"`
	MonthStr string    `json:"monthStr"` // "YYYY-MM"
	IsPaid   bool      `json:"isPaid"`
	PaidDate time.Time `json:"paidDate"`
}

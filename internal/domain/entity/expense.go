// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType represents how an expense was paid.
type ExpenseType string

const (
	ExpenseTypeCreditCard ExpenseType = "credit_card"
	ExpenseTypeCash       ExpenseType = "cash"
)

// InstallmentType says whether the submitted amount is the purchase total or
// the monthly share.
type InstallmentType string

const (
	InstallmentTypeTotal   InstallmentType = "total"
	InstallmentTypeMonthly InstallmentType = "monthly"
)

// Installments describes one row's position in an installment plan.
// A purchase split over N months fans out into N independent Expense rows;
// there is no group identifier linking them after creation.
type Installments struct {
	Count   int             `json:"count"`
	Current int             `json:"current"` // 1-based
	Type    InstallmentType `json:"type,omitempty"`
}

// Expense represents one posted expense row. For installment purchases Amount
// is the per-month share and Date the row's billing month, already shifted by
// the card's billing cycle.
type Expense struct {
	ID           string          `json:"id"`
	Type         ExpenseType     `json:"type"`
	CardID       string          `json:"cardId,omitempty"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Installments Installments    `json:"installments"`
}

// NewExpense creates a new Expense entity.
func NewExpense(id string, expenseType ExpenseType, cardID string, amount decimal.Decimal, description string, date time.Time, installments Installments) *Expense {
	return &Expense{
		ID:           id,
		Type:         expenseType,
		CardID:       cardID,
		Amount:       amount,
		Description:  description,
		Date:         date,
		Installments: installments,
	}
}

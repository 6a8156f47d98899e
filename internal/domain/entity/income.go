// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents money posted to an account.
//
// AccountID is a reference, not ownership: deleting the account leaves the
// income in place with a dangling reference, and resolving that reference
// later is a no-op.
type Income struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"accountId"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
}

// NewIncome creates a new Income entity.
func NewIncome(id, accountID string, amount decimal.Decimal, description string, date time.Time) *Income {
	return &Income{
		ID:          id,
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}
}

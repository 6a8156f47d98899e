// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a money account (cash, checking, savings) in the ledger.
type Account struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	InterestRate     decimal.Decimal `json:"interestRate"` // Percent per day
	LastInterestDate time.Time       `json:"lastInterestDate"`
}

// NewAccount creates a new Account entity. The interest clock starts at the
// given day, so freshly created accounts never accrue retroactively.
func NewAccount(id, name string, balance, interestRate decimal.Decimal, today time.Time) *Account {
	return &Account{
		ID:               id,
		Name:             name,
		Balance:          balance,
		InterestRate:     interestRate,
		LastInterestDate: today,
	}
}

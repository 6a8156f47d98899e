// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// DefaultCutoffDay is used when a card is created without a billing cutoff day.
const DefaultCutoffDay = 1

// Card represents a credit card with a billing cycle.
//
// CurrentDebt is a stored running total: expense postings move it
// incrementally and it is never recomputed from the expense history.
type Card struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	CreditLimit decimal.Decimal `json:"limit"`
	CurrentDebt decimal.Decimal `json:"currentDebt"`
	CutoffDay   int             `json:"cutoffDay"`
	PaymentDay  *int            `json:"paymentDay,omitempty"` // Unset when the card has no fixed due day
}

// NewCard creates a new Card entity with zero debt.
func NewCard(id, name string, creditLimit decimal.Decimal, cutoffDay int, paymentDay *int) *Card {
	if cutoffDay == 0 {
		cutoffDay = DefaultCutoffDay
	}
	return &Card{
		ID:          id,
		Name:        name,
		CreditLimit: creditLimit,
		CurrentDebt: decimal.Zero,
		CutoffDay:   cutoffDay,
		PaymentDay:  paymentDay,
	}
}

// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Snapshot is the full ledger state. It is persisted wholesale after every
// mutation; the store never sees anything finer-grained than this.
type Snapshot struct {
	Accounts       []*Account       `json:"accounts"`
	Cards          []*Card          `json:"cards"`
	Incomes        []*Income        `json:"incomes"`
	Expenses       []*Expense       `json:"expenses"`
	Budgets        []*Budget        `json:"budgets"`
	BudgetPayments []*BudgetPayment `json:"budgetPayments"`
}

// NewSnapshot creates an empty ledger snapshot.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Accounts:       []*Account{},
		Cards:          []*Card{},
		Incomes:        []*Income{},
		Expenses:       []*Expense{},
		Budgets:        []*Budget{},
		BudgetPayments: []*BudgetPayment{},
	}
}

// Normalize backfills fields that older snapshots may lack: missing
// collections become empty and cards without a cutoff day get the default.
func (s *Snapshot) Normalize() {
	if s.Accounts == nil {
		s.Accounts = []*Account{}
	}
	if s.Cards == nil {
		s.Cards = []*Card{}
	}
	if s.Incomes == nil {
		s.Incomes = []*Income{}
	}
	if s.Expenses == nil {
		s.Expenses = []*Expense{}
	}
	if s.Budgets == nil {
		s.Budgets = []*Budget{}
	}
	if s.BudgetPayments == nil {
		s.BudgetPayments = []*BudgetPayment{}
	}
	for _, c := range s.Cards {
		if c.CutoffDay == 0 {
			c.CutoffDay = DefaultCutoffDay
		}
	}
}

// MonthlyTotals holds the posted income and expense sums of one calendar month.
type MonthlyTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// NetWorthSummary holds the derived wealth aggregates.
type NetWorthSummary struct {
	TotalAssets decimal.Decimal
	TotalDebt   decimal.Decimal
	NetWorth    decimal.Decimal
}

// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// MonthlyTotalsResponse represents one calendar month's posted totals.
type MonthlyTotalsResponse struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// NetWorthResponse represents the derived wealth aggregates.
type NetWorthResponse struct {
	TotalAssets string `json:"total_assets"`
	TotalDebt   string `json:"total_debt"`
	NetWorth    string `json:"net_worth"`
}

// ToMonthlyTotalsResponse converts monthly totals to a response DTO.
func ToMonthlyTotalsResponse(year, month int, totals entity.MonthlyTotals) MonthlyTotalsResponse {
	return MonthlyTotalsResponse{
		Year:    year,
		Month:   month,
		Income:  totals.Income.String(),
		Expense: totals.Expense.String(),
	}
}

// ToNetWorthResponse converts a net worth summary to a response DTO.
func ToNetWorthResponse(summary entity.NetWorthSummary) NetWorthResponse {
	return NetWorthResponse{
		TotalAssets: summary.TotalAssets.String(),
		TotalDebt:   summary.TotalDebt.String(),
		NetWorth:    summary.NetWorth.String(),
	}
}

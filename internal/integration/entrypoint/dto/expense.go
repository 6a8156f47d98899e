// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// CreateExpenseRequest represents the request body for expense creation.
// For installment purchases the amount is interpreted per installment_type:
// the purchase total or the monthly share.
type CreateExpenseRequest struct {
	Type             string `json:"type" binding:"required,oneof=credit_card cash"`
	CardID           string `json:"card_id,omitempty"`
	Amount           string `json:"amount" binding:"required"`
	Description      string `json:"description" binding:"required,min=1,max=255"`
	Date             string `json:"date" binding:"required"`
	InstallmentCount int    `json:"installment_count,omitempty"`
	InstallmentType  string `json:"installment_type,omitempty" binding:"omitempty,oneof=total monthly"`
}

// UpdateExpenseRequest represents the request body for expense update.
// Updating is delete-then-create over one row; installment parameters must be
// resubmitted if the purchase should fan out again.
type UpdateExpenseRequest = CreateExpenseRequest

// InstallmentsResponse represents a row's installment position.
type InstallmentsResponse struct {
	Count   int    `json:"count"`
	Current int    `json:"current"`
	Type    string `json:"type,omitempty"`
}

// ExpenseResponse represents a single expense row in API responses.
type ExpenseResponse struct {
	ID           string               `json:"id"`
	Type         string               `json:"type"`
	CardID       string               `json:"card_id,omitempty"`
	Amount       string               `json:"amount"`
	Description  string               `json:"description"`
	Date         string               `json:"date"`
	Installments InstallmentsResponse `json:"installments"`
}

// ExpenseListResponse represents the response for listing expense rows.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts an Expense entity to its response DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Type:        string(e.Type),
		CardID:      e.CardID,
		Amount:      e.Amount.String(),
		Description: e.Description,
		Date:        e.Date.Format("2006-01-02"),
		Installments: InstallmentsResponse{
			Count:   e.Installments.Count,
			Current: e.Installments.Current,
			Type:    string(e.Installments.Type),
		},
	}
}

// ToExpenseListResponse converts expense entities to a list response.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	response := ExpenseListResponse{
		Expenses: make([]ExpenseResponse, 0, len(expenses)),
	}
	for _, e := range expenses {
		response.Expenses = append(response.Expenses, ToExpenseResponse(e))
	}
	return response
}

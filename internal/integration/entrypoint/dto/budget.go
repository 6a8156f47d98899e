// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Type        string `json:"type" binding:"required,oneof=income expense"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Day         int    `json:"day,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=income expense"`
	Amount      *string `json:"amount,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Day         *int    `json:"day,omitempty"`
}

// ToggleBudgetPaymentRequest represents the request body for marking a budget
// month paid or unpaid.
type ToggleBudgetPaymentRequest struct {
	IsPaid bool `json:"is_paid"`
}

// BudgetResponse represents a single budget item in API responses.
type BudgetResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Day         int    `json:"day"`
}

// BudgetListResponse represents the response for listing budget items.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetPaymentResponse represents a budget payment record in API responses.
type BudgetPaymentResponse struct {
	BudgetID string `json:"budget_id"`
	Month    string `json:"month"`
	IsPaid   bool   `json:"is_paid"`
	PaidDate string `json:"paid_date,omitempty"`
}

// ToBudgetResponse converts a Budget entity to its response DTO.
func ToBudgetResponse(b *entity.Budget) BudgetResponse {
	return BudgetResponse{
		ID:          b.ID,
		Type:        string(b.Type),
		Amount:      b.Amount.String(),
		Description: b.Description,
		Day:         b.Day,
	}
}

// ToBudgetListResponse converts budget entities to a list response.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	response := BudgetListResponse{
		Budgets: make([]BudgetResponse, 0, len(budgets)),
	}
	for _, b := range budgets {
		response.Budgets = append(response.Budgets, ToBudgetResponse(b))
	}
	return response
}

// ToBudgetPaymentResponse converts a BudgetPayment entity to its response DTO.
func ToBudgetPaymentResponse(bp *entity.BudgetPayment) BudgetPaymentResponse {
	return BudgetPaymentResponse{
		BudgetID: bp.BudgetID,
		Month:    bp.MonthStr,
		IsPaid:   bp.IsPaid,
		PaidDate: bp.PaidDate.Format("2006-01-02T15:04:05Z07:00"),
	}
}

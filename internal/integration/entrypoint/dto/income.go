// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// CreateIncomeRequest represents the request body for income creation.
type CreateIncomeRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Date        string `json:"date" binding:"required"`
}

// UpdateIncomeRequest represents the request body for income update. Updates
// replace the whole record (delete-then-create), so all fields are required.
type UpdateIncomeRequest struct {
	AccountID   string `json:"account_id" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,min=1,max=255"`
	Date        string `json:"date" binding:"required"`
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts an Income entity to its response DTO.
func ToIncomeResponse(i *entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID,
		AccountID:   i.AccountID,
		Amount:      i.Amount.String(),
		Description: i.Description,
		Date:        i.Date.Format("2006-01-02"),
	}
}

// ToIncomeListResponse converts income entities to a list response.
func ToIncomeListResponse(incomes []*entity.Income) IncomeListResponse {
	response := IncomeListResponse{
		Incomes: make([]IncomeResponse, 0, len(incomes)),
	}
	for _, i := range incomes {
		response.Incomes = append(response.Incomes, ToIncomeResponse(i))
	}
	return response
}

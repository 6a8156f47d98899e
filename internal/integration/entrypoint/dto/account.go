// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// CreateAccountRequest represents the request body for account creation.
// Amounts travel as strings and are parsed as validated decimals.
type CreateAccountRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=255"`
	Balance      string `json:"balance" binding:"required"`
	InterestRate string `json:"interest_rate,omitempty"`
}

// UpdateAccountRequest represents the request body for account update.
type UpdateAccountRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Balance      *string `json:"balance,omitempty"`
	InterestRate *string `json:"interest_rate,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Balance          string `json:"balance"`
	InterestRate     string `json:"interest_rate"`
	LastInterestDate string `json:"last_interest_date"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts an Account entity to its response DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Balance:          a.Balance.String(),
		InterestRate:     a.InterestRate.String(),
		LastInterestDate: a.LastInterestDate.Format("2006-01-02"),
	}
}

// ToAccountListResponse converts account entities to a list response.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	response := AccountListResponse{
		Accounts: make([]AccountResponse, 0, len(accounts)),
	}
	for _, a := range accounts {
		response.Accounts = append(response.Accounts, ToAccountResponse(a))
	}
	return response
}

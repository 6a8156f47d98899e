// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-ledger/backend/internal/domain/entity"

// CreateCardRequest represents the request body for card creation.
// A missing cutoff day falls back to the 1st; a missing payment day leaves
// the card without a fixed due day.
type CreateCardRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=255"`
	CreditLimit string `json:"credit_limit" binding:"required"`
	CutoffDay   int    `json:"cutoff_day,omitempty"`
	PaymentDay  *int   `json:"payment_day,omitempty"`
}

// UpdateCardRequest represents the request body for card update.
type UpdateCardRequest struct {
	Name            *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	CreditLimit     *string `json:"credit_limit,omitempty"`
	CutoffDay       *int    `json:"cutoff_day,omitempty"`
	PaymentDay      *int    `json:"payment_day,omitempty"`
	ClearPaymentDay bool    `json:"clear_payment_day,omitempty"`
}

// CardResponse represents a single card in API responses.
type CardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreditLimit string `json:"credit_limit"`
	CurrentDebt string `json:"current_debt"`
	CutoffDay   int    `json:"cutoff_day"`
	PaymentDay  *int   `json:"payment_day,omitempty"`
}

// CardListResponse represents the response for listing cards.
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
}

// ToCardResponse converts a Card entity to its response DTO.
func ToCardResponse(c *entity.Card) CardResponse {
	return CardResponse{
		ID:          c.ID,
		Name:        c.Name,
		CreditLimit: c.CreditLimit.String(),
		CurrentDebt: c.CurrentDebt.String(),
		CutoffDay:   c.CutoffDay,
		PaymentDay:  c.PaymentDay,
	}
}

// ToCardListResponse converts card entities to a list response.
func ToCardListResponse(cards []*entity.Card) CardListResponse {
	response := CardListResponse{
		Cards: make([]CardResponse, 0, len(cards)),
	}
	for _, c := range cards {
		response.Cards = append(response.Cards, ToCardResponse(c))
	}
	return response
}

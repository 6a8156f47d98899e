// Package dto defines data transfer objects for API requests and responses.
package dto

// FactoryResetRequest represents the request body for a factory reset.
// The destructive operation is refused unless Confirm is true.
type FactoryResetRequest struct {
	Confirm bool `json:"confirm"`
}

// FactoryResetResponse represents the response after a factory reset.
type FactoryResetResponse struct {
	Reset bool `json:"reset"`
}

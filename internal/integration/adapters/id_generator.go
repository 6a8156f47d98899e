// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"github.com/google/uuid"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// uuidGenerator implements the adapter.IDGenerator interface with random UUIDs.
type uuidGenerator struct{}

// NewUUIDGenerator creates a new UUID-backed identifier generator.
func NewUUIDGenerator() adapter.IDGenerator {
	return &uuidGenerator{}
}

// NewID returns a new random UUID string.
func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"time"

	"github.com/finance-ledger/backend/internal/application/adapter"
)

// systemClock implements the adapter.Clock interface with wall-clock time.
type systemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() adapter.Clock {
	return &systemClock{}
}

// Now returns the current UTC time.
func (c *systemClock) Now() time.Time {
	return time.Now().UTC()
}

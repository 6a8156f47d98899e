// Package error defines domain-specific errors for the finance ledger.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrSnapshotNotFound is returned by a snapshot store when no snapshot has
	// ever been saved under the configured namespace.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotPersist is returned when saving the snapshot fails. The
	// in-memory state has already been mutated at that point and diverges from
	// the persisted copy until a retry succeeds.
	ErrSnapshotPersist = errors.New("failed to persist snapshot")

	// ErrInvalidAmount is returned when a monetary amount is not a valid
	// positive decimal.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidRate is returned when an interest rate is negative.
	ErrInvalidRate = errors.New("invalid interest rate")

	// ErrInvalidDayOfMonth is returned when a day-of-month field is outside 1-31.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrInvalidExpenseType is returned when the expense type is unknown.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrInvalidInstallments is returned when the installment parameters are
	// inconsistent (count < 1 or unknown installment type).
	ErrInvalidInstallments = errors.New("invalid installment parameters")

	// ErrInvalidBudgetType is returned when the budget type is unknown.
	ErrInvalidBudgetType = errors.New("invalid budget type")

	// ErrInvalidMonth is returned when a month key is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LDG-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAmount       LedgerErrorCode = "LDG-010001"
	ErrCodeInvalidRate         LedgerErrorCode = "LDG-010002"
	ErrCodeInvalidDayOfMonth   LedgerErrorCode = "LDG-010003"
	ErrCodeInvalidExpenseType  LedgerErrorCode = "LDG-010004"
	ErrCodeInvalidInstallments LedgerErrorCode = "LDG-010005"
	ErrCodeInvalidBudgetType   LedgerErrorCode = "LDG-010006"
	ErrCodeInvalidMonth        LedgerErrorCode = "LDG-010007"

	// Persistence errors (02XXXX)
	ErrCodeSnapshotNotFound LedgerErrorCode = "LDG-020001"
	ErrCodeSnapshotPersist  LedgerErrorCode = "LDG-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

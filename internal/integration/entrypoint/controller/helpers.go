// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-ledger/backend/internal/domain/error"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// parseAmount parses a decimal field, rejecting anything that is not a valid
// number. Permissive coercion is deliberately absent: a bad amount fails the
// request instead of poisoning the ledger sums.
func parseAmount(field, value string) (decimal.Decimal, *dto.ErrorResponse) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, &dto.ErrorResponse{
			Error: field + " must be a valid decimal number",
			Code:  string(domainerror.ErrCodeInvalidAmount),
		}
	}
	return d, nil
}

// parseDate parses a YYYY-MM-DD date field.
func parseDate(field, value string) (time.Time, *dto.ErrorResponse) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &dto.ErrorResponse{
			Error: field + " must be a date in YYYY-MM-DD form",
		}
	}
	return d, nil
}

// respondEngineError maps engine errors to HTTP responses: validation errors
// become 400s with their code, persistence failures and everything else 500s.
func respondEngineError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusInternalServerError
		if strings.HasPrefix(string(ledgerErr.Code), "LDG-01") {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "internal error",
	})
}

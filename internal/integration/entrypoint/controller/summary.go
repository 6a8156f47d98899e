// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles aggregate endpoints.
type SummaryController struct {
	engine *ledger.Engine
	clock  adapter.Clock
}

// NewSummaryController creates a new summary controller instance. The clock
// is the same one driving the engine, so month defaulting stays consistent
// with accrual and payment stamping.
func NewSummaryController(engine *ledger.Engine, clock adapter.Clock) *SummaryController {
	return &SummaryController{engine: engine, clock: clock}
}

// MonthlyTotals handles GET /summary/monthly?year=&month= requests.
// Missing parameters default to the current month.
func (c *SummaryController) MonthlyTotals(ctx *gin.Context) {
	now := c.clock.Now().UTC()
	year := now.Year()
	month := int(now.Month())

	if yearStr := ctx.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "year must be an integer"})
			return
		}
		year = parsed
	}
	if monthStr := ctx.Query("month"); monthStr != "" {
		parsed, err := strconv.Atoi(monthStr)
		if err != nil || parsed < 1 || parsed > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "month must be between 1 and 12"})
			return
		}
		month = parsed
	}

	totals := c.engine.GetMonthlyTotals(year, time.Month(month))
	ctx.JSON(http.StatusOK, dto.ToMonthlyTotalsResponse(year, month, totals))
}

// NetWorth handles GET /summary/net-worth requests.
func (c *SummaryController) NetWorth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToNetWorthResponse(c.engine.GetNetWorth()))
}

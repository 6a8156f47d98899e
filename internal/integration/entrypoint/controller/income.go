// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	engine *ledger.Engine
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(engine *ledger.Engine) *IncomeController {
	return &IncomeController{engine: engine}
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToIncomeListResponse(c.engine.Incomes()))
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	var req dto.CreateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, derr := parseAmount("amount", req.Amount)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}
	date, derr := parseDate("date", req.Date)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	income, err := c.engine.CreateIncome(ctx.Request.Context(), req.AccountID, amount, req.Description, date)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	var req dto.UpdateIncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, derr := parseAmount("amount", req.Amount)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}
	date, derr := parseDate("date", req.Date)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	income, err := c.engine.UpdateIncome(ctx.Request.Context(), ctx.Param("id"), req.AccountID, amount, req.Description, date)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	if _, err := c.engine.DeleteIncome(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	engine *ledger.Engine
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(engine *ledger.Engine) *ExpenseController {
	return &ExpenseController{engine: engine}
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(c.engine.Expenses()))
}

func expenseInputFromRequest(req dto.CreateExpenseRequest) (ledger.CreateExpenseInput, *dto.ErrorResponse) {
	amount, derr := parseAmount("amount", req.Amount)
	if derr != nil {
		return ledger.CreateExpenseInput{}, derr
	}
	date, derr := parseDate("date", req.Date)
	if derr != nil {
		return ledger.CreateExpenseInput{}, derr
	}

	return ledger.CreateExpenseInput{
		Type:             entity.ExpenseType(req.Type),
		CardID:           req.CardID,
		Amount:           amount,
		Description:      req.Description,
		Date:             date,
		InstallmentCount: req.InstallmentCount,
		InstallmentType:  entity.InstallmentType(req.InstallmentType),
	}, nil
}

// Create handles POST /expenses requests. Installment purchases return one
// row per month.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, derr := expenseInputFromRequest(req)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	rows, err := c.engine.CreateExpense(ctx.Request.Context(), input)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToExpenseListResponse(rows))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, derr := expenseInputFromRequest(req)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	rows, err := c.engine.UpdateExpense(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToExpenseListResponse(rows))
}

// Delete handles DELETE /expenses/:id requests. Only the addressed row is
// removed; sibling installment rows stay.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	if _, err := c.engine.DeleteExpense(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

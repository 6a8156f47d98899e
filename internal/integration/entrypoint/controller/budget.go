// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/domain/entity"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget and budget payment endpoints.
type BudgetController struct {
	engine *ledger.Engine
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(engine *ledger.Engine) *BudgetController {
	return &BudgetController{engine: engine}
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(c.engine.Budgets()))
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	amount, derr := parseAmount("amount", req.Amount)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	budget, err := c.engine.CreateBudget(ctx.Request.Context(), entity.BudgetType(req.Type), amount, req.Description, req.Day)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(budget))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := ledger.UpdateBudgetInput{
		Description: req.Description,
		Day:         req.Day,
	}
	if req.Type != nil {
		budgetType := entity.BudgetType(*req.Type)
		input.Type = &budgetType
	}
	if req.Amount != nil {
		amount, derr := parseAmount("amount", *req.Amount)
		if derr != nil {
			ctx.JSON(http.StatusBadRequest, *derr)
			return
		}
		input.Amount = &amount
	}

	budget, found, err := c.engine.UpdateBudget(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "budget not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// Delete handles DELETE /budgets/:id requests. Payment records of the budget
// are removed with it.
func (c *BudgetController) Delete(ctx *gin.Context) {
	if _, err := c.engine.DeleteBudget(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// TogglePayment handles PUT /budgets/:id/payments/:month requests.
func (c *BudgetController) TogglePayment(ctx *gin.Context) {
	var req dto.ToggleBudgetPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	budgetID := ctx.Param("id")
	month := ctx.Param("month")

	if err := c.engine.ToggleBudgetPayment(ctx.Request.Context(), budgetID, month, req.IsPaid); err != nil {
		respondEngineError(ctx, err)
		return
	}

	if payment := c.engine.GetBudgetPaymentStatus(budgetID, month); payment != nil {
		ctx.JSON(http.StatusOK, dto.ToBudgetPaymentResponse(payment))
		return
	}
	ctx.JSON(http.StatusOK, dto.BudgetPaymentResponse{
		BudgetID: budgetID,
		Month:    month,
		IsPaid:   false,
	})
}

// GetPaymentStatus handles GET /budgets/:id/payments/:month requests.
func (c *BudgetController) GetPaymentStatus(ctx *gin.Context) {
	budgetID := ctx.Param("id")
	month := ctx.Param("month")

	payment := c.engine.GetBudgetPaymentStatus(budgetID, month)
	if payment == nil {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "budget payment not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToBudgetPaymentResponse(payment))
}

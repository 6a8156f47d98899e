// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account endpoints.
type AccountController struct {
	engine *ledger.Engine
}

// NewAccountController creates a new account controller instance.
func NewAccountController(engine *ledger.Engine) *AccountController {
	return &AccountController{engine: engine}
}

// List handles GET /accounts requests.
func (c *AccountController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(c.engine.Accounts()))
}

// Create handles POST /accounts requests.
func (c *AccountController) Create(ctx *gin.Context) {
	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	balance, derr := parseAmount("balance", req.Balance)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	rate := decimal.Zero
	if req.InterestRate != "" {
		rate, derr = parseAmount("interest_rate", req.InterestRate)
		if derr != nil {
			ctx.JSON(http.StatusBadRequest, *derr)
			return
		}
	}

	account, err := c.engine.CreateAccount(ctx.Request.Context(), req.Name, balance, rate)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// Update handles PATCH /accounts/:id requests.
func (c *AccountController) Update(ctx *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := ledger.UpdateAccountInput{Name: req.Name}
	if req.Balance != nil {
		balance, derr := parseAmount("balance", *req.Balance)
		if derr != nil {
			ctx.JSON(http.StatusBadRequest, *derr)
			return
		}
		input.Balance = &balance
	}
	if req.InterestRate != nil {
		rate, derr := parseAmount("interest_rate", *req.InterestRate)
		if derr != nil {
			ctx.JSON(http.StatusBadRequest, *derr)
			return
		}
		input.InterestRate = &rate
	}

	account, found, err := c.engine.UpdateAccount(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "account not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// Delete handles DELETE /accounts/:id requests.
func (c *AccountController) Delete(ctx *gin.Context) {
	if _, err := c.engine.DeleteAccount(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

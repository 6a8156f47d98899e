// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// CardController handles credit card endpoints.
type CardController struct {
	engine *ledger.Engine
}

// NewCardController creates a new card controller instance.
func NewCardController(engine *ledger.Engine) *CardController {
	return &CardController{engine: engine}
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCardListResponse(c.engine.Cards()))
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	var req dto.CreateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	limit, derr := parseAmount("credit_limit", req.CreditLimit)
	if derr != nil {
		ctx.JSON(http.StatusBadRequest, *derr)
		return
	}

	card, err := c.engine.CreateCard(ctx.Request.Context(), req.Name, limit, req.CutoffDay, req.PaymentDay)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// Update handles PATCH /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	var req dto.UpdateCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := ledger.UpdateCardInput{
		Name:            req.Name,
		CutoffDay:       req.CutoffDay,
		PaymentDay:      req.PaymentDay,
		ClearPaymentDay: req.ClearPaymentDay,
	}
	if req.CreditLimit != nil {
		limit, derr := parseAmount("credit_limit", *req.CreditLimit)
		if derr != nil {
			ctx.JSON(http.StatusBadRequest, *derr)
			return
		}
		input.CreditLimit = &limit
	}

	card, found, err := c.engine.UpdateCard(ctx.Request.Context(), ctx.Param("id"), input)
	if err != nil {
		respondEngineError(ctx, err)
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "card not found"})
		return
	}
	ctx.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	if _, err := c.engine.DeleteCard(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-ledger/backend/internal/application/usecase/ledger"
	"github.com/finance-ledger/backend/internal/integration/entrypoint/dto"
)

// AdminController handles destructive administrative endpoints.
type AdminController struct {
	engine *ledger.Engine
}

// NewAdminController creates a new admin controller instance.
func NewAdminController(engine *ledger.Engine) *AdminController {
	return &AdminController{engine: engine}
}

// FactoryReset handles POST /admin/reset requests. The persisted snapshot is
// wiped and the process must be restarted to bootstrap a fresh ledger;
// requests without explicit confirmation are refused.
func (c *AdminController) FactoryReset(ctx *gin.Context) {
	var req dto.FactoryResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if !req.Confirm {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "factory reset requires explicit confirmation",
		})
		return
	}

	if err := c.engine.FactoryReset(ctx.Request.Context()); err != nil {
		respondEngineError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.FactoryResetResponse{Reset: true})
}

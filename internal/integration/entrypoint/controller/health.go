// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController handles health check endpoints.
type HealthController struct {
	storeHealthChecker func() bool
}

// NewHealthController creates a new health controller instance.
func NewHealthController(storeHealthChecker func() bool) *HealthController {
	return &HealthController{
		storeHealthChecker: storeHealthChecker,
	}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	storeHealthy := c.storeHealthChecker != nil && c.storeHealthChecker()

	status := http.StatusOK
	overall := "healthy"
	if !storeHealthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	ctx.JSON(status, gin.H{
		"status": overall,
		"store":  storeHealthy,
	})
}

package handlers

import (
	"net/http"

	"pv-econ/internal/api/models"
	"pv-econ/internal/sizing"

	"github.com/gin-gonic/gin"
)

// CapacityHandler handles capacity estimation requests
type CapacityHandler struct{}

// NewCapacityHandler creates a new capacity handler
func NewCapacityHandler() *CapacityHandler {
	return &CapacityHandler{}
}

// Estimate handles POST /api/v1/capacity
func (h *CapacityHandler) Estimate(c *gin.Context) {
	var req models.CapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	watts := sizing.Capacity(req.AreaKm2, req.ModuleEfficiency, req.AvailableFraction, req.TiltDeg)
	c.JSON(http.StatusOK, models.CapacityResponse{
		CapacityW:  watts,
		CapacityMW: watts / 1e6,
	})
}

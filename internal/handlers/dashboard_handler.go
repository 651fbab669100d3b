package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard figures
type DashboardHandler struct {
	analytics AnalyticsService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(analytics AnalyticsService) *DashboardHandler {
	return &DashboardHandler{analytics: analytics}
}

// GetStats handles GET /dashboard/stats
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.analytics.DashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

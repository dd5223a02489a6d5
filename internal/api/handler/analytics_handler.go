package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// AnalyticsHandler serves the projection endpoints.
type AnalyticsHandler struct {
	analyticsSvc service.AnalyticsService
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(analyticsSvc service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsSvc: analyticsSvc}
}

// SubjectStats
// GET /api/v1/subjects/:code/stats
func (h *AnalyticsHandler) SubjectStats(c *gin.Context) {
	stats, err := h.analyticsSvc.SubjectStats(c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, stats)
}

// Overview
// GET /api/v1/analytics/overview
func (h *AnalyticsHandler) Overview(c *gin.Context) {
	overview, err := h.analyticsSvc.Overview()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, overview)
}

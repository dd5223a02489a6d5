package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// SettingsHandler serves the tracker settings endpoints.
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler creates a SettingsHandler.
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetSettings
// GET /api/v1/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsSvc.Get()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, settings)
}

// UpdateSettings
// PUT /api/v1/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	settings, err := h.settingsSvc.Update(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, settings)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// HolidayHandler serves the holiday calendar endpoints.
type HolidayHandler struct {
	holidaySvc service.HolidayService
}

// NewHolidayHandler creates a HolidayHandler.
func NewHolidayHandler(holidaySvc service.HolidayService) *HolidayHandler {
	return &HolidayHandler{holidaySvc: holidaySvc}
}

// ListHolidays
// GET /api/v1/holidays
func (h *HolidayHandler) ListHolidays(c *gin.Context) {
	dates, err := h.holidaySvc.List()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"dates": dates})
}

// AddHoliday
// POST /api/v1/holidays
func (h *HolidayHandler) AddHoliday(c *gin.Context) {
	var req dto.AddHolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	if err := h.holidaySvc.Add(&req); err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, nil)
}

// RemoveHoliday
// DELETE /api/v1/holidays/:date
func (h *HolidayHandler) RemoveHoliday(c *gin.Context) {
	if err := h.holidaySvc.Remove(c.Param("date")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

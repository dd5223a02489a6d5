package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// TimetableHandler serves timetable and schedule endpoints.
type TimetableHandler struct {
	timetableSvc service.TimetableService
}

// NewTimetableHandler creates a TimetableHandler.
func NewTimetableHandler(timetableSvc service.TimetableService) *TimetableHandler {
	return &TimetableHandler{timetableSvc: timetableSvc}
}

// GetTimetable
// GET /api/v1/timetable
func (h *TimetableHandler) GetTimetable(c *gin.Context) {
	days, err := h.timetableSvc.View()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"days": days})
}

// AddEntry
// POST /api/v1/timetable/entries
func (h *TimetableHandler) AddEntry(c *gin.Context) {
	var req dto.AddTimetableEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	day, err := h.timetableSvc.AddEntry(&req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, day)
}

// RemoveEntry
// DELETE /api/v1/timetable/entries?day=&period=&subject=
func (h *TimetableHandler) RemoveEntry(c *gin.Context) {
	var req dto.RemoveTimetableEntryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "day, period and subject are required")
		return
	}

	if err := h.timetableSvc.RemoveEntry(&req); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListPeriods
// GET /api/v1/timetable/periods
func (h *TimetableHandler) ListPeriods(c *gin.Context) {
	response.OK(c, gin.H{"periods": h.timetableSvc.Periods()})
}

// WeeklySchedule
// GET /api/v1/timetable/week?start=YYYY-MM-DD
func (h *TimetableHandler) WeeklySchedule(c *gin.Context) {
	var req dto.WeeklyScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 40001, "invalid query")
		return
	}

	days, err := h.timetableSvc.WeeklySchedule(req.Start)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"days": days})
}

// ClassesOn
// GET /api/v1/timetable/day/:date
func (h *TimetableHandler) ClassesOn(c *gin.Context) {
	day, err := h.timetableSvc.ClassesOn(c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, day)
}

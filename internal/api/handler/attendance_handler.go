package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/service"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// AttendanceHandler serves ledger and absence-note endpoints.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates an AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// MarkAttendance
// POST /api/v1/attendance
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	if err := h.attendanceSvc.Mark(&req); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// MarkDayAttendance
// POST /api/v1/attendance/day
func (h *AttendanceHandler) MarkDayAttendance(c *gin.Context) {
	var req dto.MarkDayAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	if err := h.attendanceSvc.MarkDay(&req); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

// SubjectRecords
// GET /api/v1/attendance/:code
func (h *AttendanceHandler) SubjectRecords(c *gin.Context) {
	records, err := h.attendanceSvc.Records(c.Param("code"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"records": records})
}

// ListAbsenceReasons
// GET /api/v1/absences
func (h *AttendanceHandler) ListAbsenceReasons(c *gin.Context) {
	reasons, err := h.attendanceSvc.AbsenceReasons()
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": reasons})
}

// AddAbsenceReason
// POST /api/v1/absences
func (h *AttendanceHandler) AddAbsenceReason(c *gin.Context) {
	var req dto.AddAbsenceReasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 40001, "invalid request body")
		return
	}

	if err := h.attendanceSvc.AddAbsenceReason(&req); err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, nil)
}

// DeleteAbsenceReason
// DELETE /api/v1/absences/:date
func (h *AttendanceHandler) DeleteAbsenceReason(c *gin.Context) {
	if err := h.attendanceSvc.DeleteAbsenceReason(c.Param("date")); err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, nil)
}

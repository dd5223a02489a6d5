package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/service"
)

// ExportHandler streams generated report files.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates an ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// AttendanceReport
// GET /api/v1/export/attendance.xlsx
func (h *ExportHandler) AttendanceReport(c *gin.Context) {
	buf, filename, err := h.exportSvc.AttendanceReport()
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// ScheduleICS
// GET /api/v1/export/schedule.ics
func (h *ExportHandler) ScheduleICS(c *gin.Context) {
	buf, filename, err := h.exportSvc.ScheduleICS()
	if err != nil {
		handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}

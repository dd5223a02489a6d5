package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Arnav-791/Attendence-calculator/internal/service"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
	"github.com/Arnav-791/Attendence-calculator/pkg/response"
)

// Handler aggregates all HTTP handlers.
type Handler struct {
	Subject    *SubjectHandler
	Timetable  *TimetableHandler
	Attendance *AttendanceHandler
	Holiday    *HolidayHandler
	Settings   *SettingsHandler
	Analytics  *AnalyticsHandler
	Export     *ExportHandler
}

// NewHandler creates the Handler aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Subject:    NewSubjectHandler(svc.Subject),
		Timetable:  NewTimetableHandler(svc.Timetable),
		Attendance: NewAttendanceHandler(svc.Attendance),
		Holiday:    NewHolidayHandler(svc.Holiday),
		Settings:   NewSettingsHandler(svc.Settings),
		Analytics:  NewAnalyticsHandler(svc.Analytics),
		Export:     NewExportHandler(svc.Export),
	}
}

// handleError maps a business error onto the HTTP response by its base kind.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		response.NotFound(c, 40400, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		response.Conflict(c, 40900, err.Error())
	case errors.Is(err, apperr.ErrValidation):
		response.BadRequest(c, 40000, err.Error())
	default:
		response.InternalError(c)
	}
}

package service

import (
	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
)

// Service aggregates all business services. Every service shares the one
// tracker aggregate; no service keeps state of its own.
type Service struct {
	Subject    SubjectService
	Timetable  TimetableService
	Attendance AttendanceService
	Holiday    HolidayService
	Settings   SettingsService
	Analytics  AnalyticsService
	Export     ExportService
}

// NewService wires all services around the tracker.
func NewService(trk *tracker.Tracker, logger *zap.Logger) *Service {
	return &Service{
		Subject:    NewSubjectService(trk, logger),
		Timetable:  NewTimetableService(trk, logger),
		Attendance: NewAttendanceService(trk, logger),
		Holiday:    NewHolidayService(trk, logger),
		Settings:   NewSettingsService(trk, logger),
		Analytics:  NewAnalyticsService(trk, logger),
		Export:     NewExportService(trk, logger),
	}
}

package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/config"
	"github.com/Arnav-791/Attendence-calculator/internal/api/handler"
	"github.com/Arnav-791/Attendence-calculator/internal/api/middleware"
)

// Setup builds the Gin engine with all middleware and routes.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		subjects := v1.Group("/subjects")
		{
			subjects.GET("", h.Subject.ListSubjects)
			subjects.POST("", h.Subject.CreateSubject)
			subjects.GET("/:code", h.Subject.GetSubject)
			subjects.DELETE("/:code", h.Subject.DeleteSubject)
			subjects.PUT("/:code/initial-attendance", h.Subject.SetInitialAttendance)
			subjects.GET("/:code/stats", h.Analytics.SubjectStats)
		}

		timetable := v1.Group("/timetable")
		{
			timetable.GET("", h.Timetable.GetTimetable)
			timetable.POST("/entries", h.Timetable.AddEntry)
			timetable.DELETE("/entries", h.Timetable.RemoveEntry)
			timetable.GET("/periods", h.Timetable.ListPeriods)
			timetable.GET("/week", h.Timetable.WeeklySchedule)
			timetable.GET("/day/:date", h.Timetable.ClassesOn)
		}

		attendance := v1.Group("/attendance")
		{
			attendance.POST("", h.Attendance.MarkAttendance)
			attendance.POST("/day", h.Attendance.MarkDayAttendance)
			attendance.GET("/:code", h.Attendance.SubjectRecords)
		}

		absences := v1.Group("/absences")
		{
			absences.GET("", h.Attendance.ListAbsenceReasons)
			absences.POST("", h.Attendance.AddAbsenceReason)
			absences.DELETE("/:date", h.Attendance.DeleteAbsenceReason)
		}

		holidays := v1.Group("/holidays")
		{
			holidays.GET("", h.Holiday.ListHolidays)
			holidays.POST("", h.Holiday.AddHoliday)
			holidays.DELETE("/:date", h.Holiday.RemoveHoliday)
		}

		settings := v1.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}

		analytics := v1.Group("/analytics")
		{
			analytics.GET("/overview", h.Analytics.Overview)
		}

		export := v1.Group("/export")
		{
			export.GET("/attendance.xlsx", h.Export.AttendanceReport)
			export.GET("/schedule.ics", h.Export.ScheduleICS)
		}
	}

	return r
}

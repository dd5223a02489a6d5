package service

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/calendar"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
)

// ErrExportGenerate means assembling the export file failed.
var ErrExportGenerate = errors.New("generating export file failed")

// ExportService renders tracker state into downloadable files. Results come
// back as a buffer plus a suggested filename; the handler sets the HTTP
// headers and streams the bytes.
type ExportService interface {
	// AttendanceReport exports per-subject statistics as an Excel workbook.
	AttendanceReport() (*bytes.Buffer, string, error)
	// ScheduleICS exports every upcoming class between today and semester
	// end as an iCalendar feed.
	ScheduleICS() (*bytes.Buffer, string, error)
}

type exportService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
	now    func() time.Time
}

// NewExportService creates an ExportService.
func NewExportService(trk *tracker.Tracker, logger *zap.Logger) ExportService {
	return &exportService{trk: trk, logger: logger, now: time.Now}
}

var reportColumns = []string{
	"Code", "Subject", "Held", "Present", "Absent", "Attendance %",
	"Yet to Go", "Remaining", "Needed", "Bunkable", "Status",
}

func (s *exportService) AttendanceReport() (*bytes.Buffer, string, error) {
	today := calendar.DateOf(s.now())

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", ErrExportGenerate
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheet, "A", "A", 12)
	f.SetColWidth(sheet, "B", "B", 28)
	f.SetColWidth(sheet, "C", "K", 12)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	readErr := s.trk.Read(func(snap *model.Snapshot) error {
		title := fmt.Sprintf("Attendance Report — %s (minimum %.0f%%)",
			today.Format(model.DateLayout), snap.MinimumAttendance)
		f.SetCellValue(sheet, "A1", title)
		f.MergeCell(sheet, "A1", "K1")
		f.SetCellStyle(sheet, "A1", "A1", headerStyle)

		for i, col := range reportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 2)
			f.SetCellValue(sheet, cell, col)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
		}

		row := 3
		for _, code := range sortedSubjectCodes(snap) {
			stats, err := computeSubjectStats(snap, code, today)
			if err != nil {
				return err
			}
			values := []interface{}{
				stats.SubjectCode, stats.SubjectName, stats.Held,
				stats.Present, stats.Absent, stats.Percentage,
				stats.YetToGo, stats.Remaining, stats.ClassesNeeded,
				stats.Bunkable, string(stats.Status),
			}
			for i, v := range values {
				cell, _ := excelize.CoordinatesToCellName(i+1, row)
				f.SetCellValue(sheet, cell, v)
			}
			row++
		}
		return nil
	})
	if readErr != nil {
		return nil, "", readErr
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("writing xlsx failed", zap.Error(err))
		return nil, "", ErrExportGenerate
	}

	filename := fmt.Sprintf("attendance_report_%s.xlsx", today.Format(model.DateLayout))
	return buf, filename, nil
}

func (s *exportService) ScheduleICS() (*bytes.Buffer, string, error) {
	today := calendar.DateOf(s.now())

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	err := s.trk.Read(func(snap *model.Snapshot) error {
		end, err := time.Parse(model.DateLayout, snap.SemesterEndDate)
		if err != nil {
			return ErrBadSemesterEnd
		}
		resolver := calendar.New(snap.Timetable, snap.Holidays)

		for d := range calendar.Days(today, end) {
			if !resolver.IsInstructionalDay(d) {
				continue
			}
			for _, entry := range snap.EntriesFor(model.WeekdayOf(d)) {
				addClassEvent(cal, snap, d, entry)
			}
		}
		return nil
	})
	if err != nil {
		return nil, "", err
	}

	buf := bytes.NewBufferString(cal.Serialize())
	return buf, "class_schedule.ics", nil
}

func addClassEvent(cal *ics.Calendar, snap *model.Snapshot, date time.Time, entry model.TimetableEntry) {
	uid := fmt.Sprintf("%s-p%d-%s@attendance-calculator",
		entry.SubjectCode, int(entry.Period), date.Format(model.DateLayout))

	event := cal.AddEvent(uid)
	event.SetStartAt(clockOn(date, entry.Period.Start()))
	event.SetEndAt(clockOn(date, entry.Period.End()))

	summary := entry.SubjectCode
	if name := snap.Subjects[entry.SubjectCode].Name; name != "" {
		summary = fmt.Sprintf("%s — %s", entry.SubjectCode, name)
	}
	event.SetSummary(summary)
	event.SetDescription(entry.Period.Label())
}

// clockOn combines a calendar date with an "HH:MM" bell time.
func clockOn(date time.Time, clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location())
}

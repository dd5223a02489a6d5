package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/calendar"
	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

// ── timetable module business errors ──

var (
	ErrLabPlacement   = fmt.Errorf("%w: lab subject needs two consecutive free periods", apperr.ErrConflict)
	ErrEntryNotFound  = fmt.Errorf("%w: timetable entry", apperr.ErrNotFound)
	ErrInvalidWeekday = fmt.Errorf("%w: unknown weekday", apperr.ErrValidation)
	ErrInvalidPeriod  = fmt.Errorf("%w: period out of range", apperr.ErrValidation)
	ErrInvalidDate    = fmt.Errorf("%w: date must be YYYY-MM-DD", apperr.ErrValidation)
)

// TimetableService manages weekly slot assignments and renders the resolved
// schedule for concrete dates.
type TimetableService interface {
	// AddEntry places a subject into (day, period). A lab subject claims the
	// following period too; placement fails when the lab would run past the
	// last period or the following period is occupied. Non-conflicting
	// occupants of the claimed periods are overwritten, lab pairs as a whole.
	AddEntry(req *dto.AddTimetableEntryRequest) (*dto.TimetableDayResponse, error)
	// RemoveEntry deletes the entry; removing either half of a lab pair
	// removes its partner as well.
	RemoveEntry(req *dto.RemoveTimetableEntryRequest) error
	View() ([]dto.TimetableDayResponse, error)
	Periods() []dto.PeriodResponse
	// WeeklySchedule resolves seven calendar days starting at start
	// (default today) against the timetable and holiday set.
	WeeklySchedule(start string) ([]dto.ScheduleDayResponse, error)
	// ClassesOn resolves a single calendar date.
	ClassesOn(date string) (*dto.ScheduleDayResponse, error)
}

type timetableService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
	now    func() time.Time
}

// NewTimetableService creates a TimetableService.
func NewTimetableService(trk *tracker.Tracker, logger *zap.Logger) TimetableService {
	return &timetableService{trk: trk, logger: logger, now: time.Now}
}

func (s *timetableService) AddEntry(req *dto.AddTimetableEntryRequest) (*dto.TimetableDayResponse, error) {
	day, err := model.ParseWeekday(req.Day)
	if err != nil {
		return nil, ErrInvalidWeekday
	}
	period := model.Period(req.Period)
	if !period.Valid() {
		return nil, ErrInvalidPeriod
	}

	var resp *dto.TimetableDayResponse
	err = s.trk.Update(func(snap *model.Snapshot) error {
		sub, ok := snap.Subjects[req.SubjectCode]
		if !ok {
			return ErrSubjectNotFound
		}

		entries := snap.EntriesFor(day)
		if sub.IsLab {
			if period == model.LastPeriod {
				return ErrLabPlacement
			}
			if _, taken := occupantAt(entries, period+1); taken {
				return ErrLabPlacement
			}
		}

		entries = clearPeriod(snap, entries, period)
		entries = append(entries, model.TimetableEntry{Period: period, SubjectCode: req.SubjectCode})
		if sub.IsLab {
			entries = append(entries, model.TimetableEntry{Period: period + 1, SubjectCode: req.SubjectCode})
		}
		snap.SetEntries(day, entries)

		resp = timetableDayResponse(snap, day)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("timetable entry added",
		zap.String("day", string(day)),
		zap.Int("period", int(period)),
		zap.String("subject", req.SubjectCode),
	)
	return resp, nil
}

func (s *timetableService) RemoveEntry(req *dto.RemoveTimetableEntryRequest) error {
	day, err := model.ParseWeekday(req.Day)
	if err != nil {
		return ErrInvalidWeekday
	}
	period := model.Period(req.Period)
	if !period.Valid() {
		return ErrInvalidPeriod
	}

	err = s.trk.Update(func(snap *model.Snapshot) error {
		entries := snap.EntriesFor(day)
		i, ok := occupantAt(entries, period)
		if !ok || entries[i].SubjectCode != req.SubjectCode {
			return ErrEntryNotFound
		}
		snap.SetEntries(day, clearPeriod(snap, entries, period))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("timetable entry removed",
		zap.String("day", string(day)),
		zap.Int("period", int(period)),
		zap.String("subject", req.SubjectCode),
	)
	return nil
}

func (s *timetableService) View() ([]dto.TimetableDayResponse, error) {
	var out []dto.TimetableDayResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		out = make([]dto.TimetableDayResponse, 0, len(snap.Timetable))
		for _, day := range model.Weekdays {
			if len(snap.EntriesFor(day)) == 0 {
				continue
			}
			out = append(out, *timetableDayResponse(snap, day))
		}
		return nil
	})
	return out, err
}

func (s *timetableService) Periods() []dto.PeriodResponse {
	out := make([]dto.PeriodResponse, 0, int(model.LastPeriod))
	for p := model.FirstPeriod; p <= model.LastPeriod; p++ {
		out = append(out, dto.PeriodResponse{
			Period: int(p),
			Label:  p.Label(),
			Start:  p.Start(),
			End:    p.End(),
		})
	}
	return out
}

func (s *timetableService) WeeklySchedule(start string) ([]dto.ScheduleDayResponse, error) {
	from := calendar.DateOf(s.now())
	if start != "" {
		parsed, err := time.Parse(model.DateLayout, start)
		if err != nil {
			return nil, ErrInvalidDate
		}
		from = parsed
	}

	var out []dto.ScheduleDayResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		out = make([]dto.ScheduleDayResponse, 0, 7)
		for d := range calendar.Days(from, from.AddDate(0, 0, 6)) {
			out = append(out, *scheduleDayResponse(snap, d))
		}
		return nil
	})
	return out, err
}

func (s *timetableService) ClassesOn(date string) (*dto.ScheduleDayResponse, error) {
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	var resp *dto.ScheduleDayResponse
	err = s.trk.Read(func(snap *model.Snapshot) error {
		resp = scheduleDayResponse(snap, parsed)
		return nil
	})
	return resp, err
}

// ── helpers ──

func occupantAt(entries []model.TimetableEntry, p model.Period) (int, bool) {
	for i, e := range entries {
		if e.Period == p {
			return i, true
		}
	}
	return -1, false
}

// clearPeriod removes the occupant of period p. When the occupant is a lab
// subject, the paired adjacent entry goes with it so no half-lab survives.
func clearPeriod(snap *model.Snapshot, entries []model.TimetableEntry, p model.Period) []model.TimetableEntry {
	i, ok := occupantAt(entries, p)
	if !ok {
		return entries
	}
	code := entries[i].SubjectCode
	entries = append(entries[:i], entries[i+1:]...)

	if snap.Subjects[code].IsLab {
		for _, q := range []model.Period{p + 1, p - 1} {
			if j, ok := occupantAt(entries, q); ok && entries[j].SubjectCode == code {
				entries = append(entries[:j], entries[j+1:]...)
				break
			}
		}
	}
	return entries
}

func timetableDayResponse(snap *model.Snapshot, day model.Weekday) *dto.TimetableDayResponse {
	entries := snap.EntriesFor(day)
	resp := &dto.TimetableDayResponse{
		Day:     string(day),
		Entries: make([]dto.TimetableEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, entryResponse(snap, e))
	}
	return resp
}

func entryResponse(snap *model.Snapshot, e model.TimetableEntry) dto.TimetableEntryResponse {
	return dto.TimetableEntryResponse{
		Period:      int(e.Period),
		Label:       e.Period.Label(),
		Start:       e.Period.Start(),
		End:         e.Period.End(),
		SubjectCode: e.SubjectCode,
		SubjectName: snap.Subjects[e.SubjectCode].Name,
	}
}

func scheduleDayResponse(snap *model.Snapshot, date time.Time) *dto.ScheduleDayResponse {
	day := model.WeekdayOf(date)
	resp := &dto.ScheduleDayResponse{
		Date:    date.Format(model.DateLayout),
		Day:     string(day),
		Holiday: snap.IsHoliday(date.Format(model.DateLayout)),
		Classes: []dto.TimetableEntryResponse{},
	}
	if resp.Holiday {
		return resp
	}
	for _, e := range snap.EntriesFor(day) {
		resp.Classes = append(resp.Classes, entryResponse(snap, e))
	}
	return resp
}

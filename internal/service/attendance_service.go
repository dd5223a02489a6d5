package service

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

// ── attendance module business errors ──

var (
	ErrInvalidStatus         = fmt.Errorf("%w: status must be present or absent", apperr.ErrValidation)
	ErrInvalidAbsenceType    = fmt.Errorf("%w: absence type must be Medical, Event, Personal or Other", apperr.ErrValidation)
	ErrAbsenceReasonNotFound = fmt.Errorf("%w: absence reason", apperr.ErrNotFound)
)

// AttendanceService maintains the per-subject attendance ledger and the
// dated absence notes.
type AttendanceService interface {
	// Mark upserts the record for (subject, date): an existing record gets
	// its status replaced, otherwise a record is appended.
	Mark(req *dto.MarkAttendanceRequest) error
	// MarkDay upserts several subjects for one date in a single mutation.
	MarkDay(req *dto.MarkDayAttendanceRequest) error
	// Records returns a subject's ledger in insertion order.
	Records(code string) ([]dto.AttendanceRecordResponse, error)

	AddAbsenceReason(req *dto.AddAbsenceReasonRequest) error
	DeleteAbsenceReason(date string) error
	AbsenceReasons() ([]dto.AbsenceReasonResponse, error)
}

type attendanceService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
}

// NewAttendanceService creates an AttendanceService.
func NewAttendanceService(trk *tracker.Tracker, logger *zap.Logger) AttendanceService {
	return &attendanceService{trk: trk, logger: logger}
}

func (s *attendanceService) Mark(req *dto.MarkAttendanceRequest) error {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return ErrInvalidDate
	}
	status := model.AttendanceStatus(req.Status)
	if !status.Valid() {
		return ErrInvalidStatus
	}

	err := s.trk.Update(func(snap *model.Snapshot) error {
		return upsertRecord(snap, req.SubjectCode, req.Date, status)
	})
	if err != nil {
		return err
	}

	s.logger.Info("attendance marked",
		zap.String("subject", req.SubjectCode),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return nil
}

func (s *attendanceService) MarkDay(req *dto.MarkDayAttendanceRequest) error {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return ErrInvalidDate
	}
	for _, m := range req.Marks {
		if !model.AttendanceStatus(m.Status).Valid() {
			return ErrInvalidStatus
		}
	}

	err := s.trk.Update(func(snap *model.Snapshot) error {
		// Validate every subject first so a bad mark leaves nothing behind.
		for _, m := range req.Marks {
			if !snap.HasSubject(m.SubjectCode) {
				return ErrSubjectNotFound
			}
		}
		for _, m := range req.Marks {
			if err := upsertRecord(snap, m.SubjectCode, req.Date, model.AttendanceStatus(m.Status)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("day attendance marked",
		zap.String("date", req.Date),
		zap.Int("subjects", len(req.Marks)),
	)
	return nil
}

func (s *attendanceService) Records(code string) ([]dto.AttendanceRecordResponse, error) {
	var out []dto.AttendanceRecordResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		if !snap.HasSubject(code) {
			return ErrSubjectNotFound
		}
		records := snap.RecordsFor(code)
		out = make([]dto.AttendanceRecordResponse, 0, len(records))
		for _, r := range records {
			out = append(out, dto.AttendanceRecordResponse{Date: r.Date, Status: string(r.Status)})
		}
		return nil
	})
	return out, err
}

func (s *attendanceService) AddAbsenceReason(req *dto.AddAbsenceReasonRequest) error {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return ErrInvalidDate
	}
	absenceType := model.AbsenceType(req.Type)
	if !absenceType.Valid() {
		return ErrInvalidAbsenceType
	}

	return s.trk.Update(func(snap *model.Snapshot) error {
		snap.AbsenceReasons[req.Date] = model.AbsenceReason{
			Type:   absenceType,
			Reason: req.Reason,
		}
		return nil
	})
}

func (s *attendanceService) DeleteAbsenceReason(date string) error {
	return s.trk.Update(func(snap *model.Snapshot) error {
		if _, ok := snap.AbsenceReasons[date]; !ok {
			return ErrAbsenceReasonNotFound
		}
		delete(snap.AbsenceReasons, date)
		return nil
	})
}

func (s *attendanceService) AbsenceReasons() ([]dto.AbsenceReasonResponse, error) {
	var out []dto.AbsenceReasonResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		dates := make([]string, 0, len(snap.AbsenceReasons))
		for date := range snap.AbsenceReasons {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		out = make([]dto.AbsenceReasonResponse, 0, len(dates))
		for _, date := range dates {
			reason := snap.AbsenceReasons[date]
			out = append(out, dto.AbsenceReasonResponse{
				Date:   date,
				Type:   string(reason.Type),
				Reason: reason.Reason,
			})
		}
		return nil
	})
	return out, err
}

// upsertRecord enforces the one-record-per-(subject, date) invariant:
// a later write replaces the status instead of appending a duplicate.
func upsertRecord(snap *model.Snapshot, code, date string, status model.AttendanceStatus) error {
	if !snap.HasSubject(code) {
		return ErrSubjectNotFound
	}
	records := snap.AttendanceRecords[code]
	for i, r := range records {
		if r.Date == date {
			records[i].Status = status
			return nil
		}
	}
	snap.AttendanceRecords[code] = append(records, model.AttendanceRecord{Date: date, Status: status})
	return nil
}

package service

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

// ── subject module business errors ──

var (
	ErrSubjectExists   = fmt.Errorf("%w: subject code already registered", apperr.ErrConflict)
	ErrSubjectNotFound = fmt.Errorf("%w: subject", apperr.ErrNotFound)
	ErrNegativeCount   = fmt.Errorf("%w: attendance counts must not be negative", apperr.ErrValidation)
)

// SubjectService manages the subject catalogue and per-subject seeds.
type SubjectService interface {
	Create(req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error)
	List() ([]dto.SubjectResponse, error)
	Get(code string) (*dto.SubjectResponse, error)
	// Delete removes the subject and cascades into its ledger records, its
	// initial seed and every timetable occurrence.
	Delete(code string) error
	SetInitialAttendance(code string, req *dto.SetInitialAttendanceRequest) (*dto.SubjectResponse, error)
}

type subjectService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
}

// NewSubjectService creates a SubjectService.
func NewSubjectService(trk *tracker.Tracker, logger *zap.Logger) SubjectService {
	return &subjectService{trk: trk, logger: logger}
}

func (s *subjectService) Create(req *dto.CreateSubjectRequest) (*dto.SubjectResponse, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, fmt.Errorf("%w: subject code must not be empty", apperr.ErrValidation)
	}
	credits := req.Credits
	if credits == 0 {
		credits = 1
	}

	var resp *dto.SubjectResponse
	err := s.trk.Update(func(snap *model.Snapshot) error {
		if snap.HasSubject(code) {
			return ErrSubjectExists
		}
		snap.Subjects[code] = model.Subject{
			Name:    strings.TrimSpace(req.Name),
			Credits: credits,
			IsLab:   req.IsLab,
		}
		resp = subjectResponse(snap, code)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("subject added", zap.String("code", code), zap.Bool("is_lab", req.IsLab))
	return resp, nil
}

func (s *subjectService) List() ([]dto.SubjectResponse, error) {
	var out []dto.SubjectResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		out = make([]dto.SubjectResponse, 0, len(snap.Subjects))
		for _, code := range sortedSubjectCodes(snap) {
			out = append(out, *subjectResponse(snap, code))
		}
		return nil
	})
	return out, err
}

func (s *subjectService) Get(code string) (*dto.SubjectResponse, error) {
	var resp *dto.SubjectResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		if !snap.HasSubject(code) {
			return ErrSubjectNotFound
		}
		resp = subjectResponse(snap, code)
		return nil
	})
	return resp, err
}

func (s *subjectService) Delete(code string) error {
	err := s.trk.Update(func(snap *model.Snapshot) error {
		if !snap.HasSubject(code) {
			return ErrSubjectNotFound
		}
		delete(snap.Subjects, code)
		delete(snap.AttendanceRecords, code)
		delete(snap.InitialAttendance, code)

		for day, entries := range snap.Timetable {
			kept := entries[:0]
			for _, e := range entries {
				if e.SubjectCode != code {
					kept = append(kept, e)
				}
			}
			snap.SetEntries(day, kept)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("subject deleted", zap.String("code", code))
	return nil
}

func (s *subjectService) SetInitialAttendance(code string, req *dto.SetInitialAttendanceRequest) (*dto.SubjectResponse, error) {
	if req.Present < 0 || req.Absent < 0 || req.YetToGo < 0 {
		return nil, ErrNegativeCount
	}

	var resp *dto.SubjectResponse
	err := s.trk.Update(func(snap *model.Snapshot) error {
		if !snap.HasSubject(code) {
			return ErrSubjectNotFound
		}
		snap.InitialAttendance[code] = model.InitialAttendance{
			Present: req.Present,
			Absent:  req.Absent,
			YetToGo: req.YetToGo,
		}
		resp = subjectResponse(snap, code)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("initial attendance set",
		zap.String("code", code),
		zap.Int("present", req.Present),
		zap.Int("absent", req.Absent),
		zap.Int("yet_to_go", req.YetToGo),
	)
	return resp, nil
}

// ── helpers ──

func sortedSubjectCodes(snap *model.Snapshot) []string {
	codes := make([]string, 0, len(snap.Subjects))
	for code := range snap.Subjects {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func subjectResponse(snap *model.Snapshot, code string) *dto.SubjectResponse {
	sub := snap.Subjects[code]
	resp := &dto.SubjectResponse{
		Code:    code,
		Name:    sub.Name,
		Credits: sub.Credits,
		IsLab:   sub.IsLab,
	}
	if seed, ok := snap.InitialAttendance[code]; ok {
		resp.InitialAttendance = &dto.InitialAttendanceResponse{
			Present: seed.Present,
			Absent:  seed.Absent,
			YetToGo: seed.YetToGo,
		}
	}
	return resp
}

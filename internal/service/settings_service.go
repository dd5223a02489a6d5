package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

// ErrPercentOutOfRange rejects a minimum attendance outside 0..100.
var ErrPercentOutOfRange = fmt.Errorf("%w: percentage must be between 0 and 100", apperr.ErrValidation)

// SettingsService reads and updates the tracker configuration. Changes apply
// to future projection computations only; stored records are untouched.
type SettingsService interface {
	Get() (*dto.SettingsResponse, error)
	Update(req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
}

// NewSettingsService creates a SettingsService.
func NewSettingsService(trk *tracker.Tracker, logger *zap.Logger) SettingsService {
	return &settingsService{trk: trk, logger: logger}
}

func (s *settingsService) Get() (*dto.SettingsResponse, error) {
	var resp *dto.SettingsResponse
	err := s.trk.Read(func(snap *model.Snapshot) error {
		resp = &dto.SettingsResponse{
			MinimumAttendance: snap.MinimumAttendance,
			SemesterEnd:       snap.SemesterEndDate,
		}
		return nil
	})
	return resp, err
}

func (s *settingsService) Update(req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if req.MinimumAttendance != nil {
		if *req.MinimumAttendance < 0 || *req.MinimumAttendance > 100 {
			return nil, ErrPercentOutOfRange
		}
	}
	if req.SemesterEnd != nil {
		if _, err := time.Parse(model.DateLayout, *req.SemesterEnd); err != nil {
			return nil, ErrInvalidDate
		}
	}

	var resp *dto.SettingsResponse
	err := s.trk.Update(func(snap *model.Snapshot) error {
		if req.MinimumAttendance != nil {
			snap.MinimumAttendance = *req.MinimumAttendance
		}
		if req.SemesterEnd != nil {
			snap.SemesterEndDate = *req.SemesterEnd
		}
		resp = &dto.SettingsResponse{
			MinimumAttendance: snap.MinimumAttendance,
			SemesterEnd:       snap.SemesterEndDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("settings updated",
		zap.Float64("minimum_attendance", resp.MinimumAttendance),
		zap.String("semester_end", resp.SemesterEnd),
	)
	return resp, nil
}

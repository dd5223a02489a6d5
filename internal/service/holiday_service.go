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

// ErrHolidayNotFound means removal referenced a date not in the holiday set.
var ErrHolidayNotFound = fmt.Errorf("%w: holiday", apperr.ErrNotFound)

// HolidayService manages the explicit holiday set. Weekends are seeded by the
// tracker at startup; this service handles everything after that.
type HolidayService interface {
	// Add inserts a holiday; adding an existing date is a no-op.
	Add(req *dto.AddHolidayRequest) error
	Remove(date string) error
	List() ([]string, error)
}

type holidayService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
}

// NewHolidayService creates a HolidayService.
func NewHolidayService(trk *tracker.Tracker, logger *zap.Logger) HolidayService {
	return &holidayService{trk: trk, logger: logger}
}

func (s *holidayService) Add(req *dto.AddHolidayRequest) error {
	if _, err := time.Parse(model.DateLayout, req.Date); err != nil {
		return ErrInvalidDate
	}

	err := s.trk.Update(func(snap *model.Snapshot) error {
		snap.AddHoliday(req.Date)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("holiday added", zap.String("date", req.Date))
	return nil
}

func (s *holidayService) Remove(date string) error {
	err := s.trk.Update(func(snap *model.Snapshot) error {
		if !snap.RemoveHoliday(date) {
			return ErrHolidayNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("holiday removed", zap.String("date", date))
	return nil
}

func (s *holidayService) List() ([]string, error) {
	var out []string
	err := s.trk.Read(func(snap *model.Snapshot) error {
		out = make([]string, len(snap.Holidays))
		copy(out, snap.Holidays)
		return nil
	})
	return out, err
}

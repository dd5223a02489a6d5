package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/calendar"
	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

// ErrBadSemesterEnd reports that the stored semester end date failed to parse. Can only
// happen with a hand-edited snapshot; writes validate the date.
var ErrBadSemesterEnd = fmt.Errorf("%w: semester end date", apperr.ErrValidation)

// AnalyticsService runs the attendance projection: live per-subject
// statistics and the bunk/attend recommendation.
type AnalyticsService interface {
	SubjectStats(code string) (*dto.SubjectStats, error)
	Overview() (*dto.AnalyticsOverview, error)
}

type analyticsService struct {
	trk    *tracker.Tracker
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(trk *tracker.Tracker, logger *zap.Logger) AnalyticsService {
	return &analyticsService{trk: trk, logger: logger, now: time.Now}
}

func (s *analyticsService) SubjectStats(code string) (*dto.SubjectStats, error) {
	var stats *dto.SubjectStats
	err := s.trk.Read(func(snap *model.Snapshot) error {
		var err error
		stats, err = computeSubjectStats(snap, code, calendar.DateOf(s.now()))
		return err
	})
	return stats, err
}

func (s *analyticsService) Overview() (*dto.AnalyticsOverview, error) {
	var overview *dto.AnalyticsOverview
	err := s.trk.Read(func(snap *model.Snapshot) error {
		today := calendar.DateOf(s.now())
		overview = &dto.AnalyticsOverview{
			MinimumAttendance: snap.MinimumAttendance,
			Subjects:          []dto.SubjectStats{},
			BunkableSubjects:  []dto.BunkableSubject{},
			CriticalSubjects:  []dto.CriticalSubject{},
		}

		for _, code := range sortedSubjectCodes(snap) {
			stats, err := computeSubjectStats(snap, code, today)
			if err != nil {
				return err
			}
			overview.Subjects = append(overview.Subjects, *stats)

			switch stats.Status {
			case model.BunkSafe:
				if stats.Bunkable > 0 {
					overview.BunkableSubjects = append(overview.BunkableSubjects, dto.BunkableSubject{
						SubjectCode: code,
						SubjectName: stats.SubjectName,
						Bunkable:    stats.Bunkable,
					})
				}
			case model.BunkAttention, model.BunkCritical, model.BunkBlocking, model.BunkUnrecoverable:
				overview.CriticalSubjects = append(overview.CriticalSubjects, dto.CriticalSubject{
					SubjectCode:   code,
					SubjectName:   stats.SubjectName,
					ClassesNeeded: stats.ClassesNeeded,
				})
			}
		}

		// Most spare classes first, matching the bunkability summary view.
		sort.SliceStable(overview.BunkableSubjects, func(i, j int) bool {
			return overview.BunkableSubjects[i].Bunkable > overview.BunkableSubjects[j].Bunkable
		})
		return nil
	})
	return overview, err
}

// computeSubjectStats is the projection arithmetic. Deterministic in the
// snapshot, the subject and today's date; guards every zero denominator.
func computeSubjectStats(snap *model.Snapshot, code string, today time.Time) (*dto.SubjectStats, error) {
	sub, ok := snap.Subjects[code]
	if !ok {
		return nil, ErrSubjectNotFound
	}

	seed := snap.SeedFor(code)
	present, absent := seed.Present, seed.Absent
	for _, r := range snap.RecordsFor(code) {
		switch r.Status {
		case model.StatusPresent:
			present++
		case model.StatusAbsent:
			absent++
		}
	}
	held := present + absent

	pct := 0.0
	if held > 0 {
		pct = math.Round(float64(present)/float64(held)*10000) / 100
	}

	end, err := time.Parse(model.DateLayout, snap.SemesterEndDate)
	if err != nil {
		return nil, ErrBadSemesterEnd
	}
	remaining := calendar.New(snap.Timetable, snap.Holidays).
		RemainingOccurrences(code, today, end)

	// Yet-to-go is a manually seeded count; the calendar forecast is reported
	// separately and stays out of the eligibility denominator.
	totalPossible := held + seed.YetToGo

	needed := 0
	if totalPossible > 0 {
		minRequired := int(math.Ceil(snap.MinimumAttendance * float64(totalPossible) / 100))
		needed = minRequired - present
		if needed < 0 {
			needed = 0
		}
		if available := seed.YetToGo + remaining; needed > available {
			needed = available
		}
	}

	bunkable := 0
	if held > 0 {
		maxBunkable := float64(totalPossible) * (1 - snap.MinimumAttendance/100)
		bunkable = int(math.Floor(maxBunkable - float64(absent)))
		if bunkable < 0 {
			bunkable = 0
		}
	}

	return &dto.SubjectStats{
		SubjectCode:   code,
		SubjectName:   sub.Name,
		IsLab:         sub.IsLab,
		Present:       present,
		Absent:        absent,
		Held:          held,
		Percentage:    pct,
		YetToGo:       seed.YetToGo,
		Remaining:     remaining,
		TotalPossible: totalPossible,
		ClassesNeeded: needed,
		Bunkable:      bunkable,
		Status:        bunkStatusFor(held, needed, seed.YetToGo),
	}, nil
}

// bunkStatusFor buckets the projection into the recommendation tiers, ordered
// by how much of the seeded future the needed classes consume.
func bunkStatusFor(held, needed, yetToGo int) model.BunkStatus {
	switch {
	case held == 0:
		return model.BunkNoData
	case needed == 0:
		return model.BunkSafe
	case yetToGo == 0:
		return model.BunkUnrecoverable
	}

	ratio := 100 * float64(needed) / float64(yetToGo)
	switch {
	case ratio >= 100:
		return model.BunkUnrecoverable
	case ratio >= 90:
		return model.BunkBlocking
	case ratio >= 80:
		return model.BunkCritical
	case ratio >= 70:
		return model.BunkAttention
	case ratio >= 60:
		return model.BunkMedium
	default:
		return model.BunkMustAttend
	}
}

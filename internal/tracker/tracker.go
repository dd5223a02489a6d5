// Package tracker owns the process-wide attendance state as one explicit
// aggregate: loaded from the snapshot store at startup, mutated only through
// Update, and persisted in full before any mutation returns.
package tracker

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/calendar"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/store"
)

// Defaults seed a fresh snapshot when the store holds nothing yet.
type Defaults struct {
	MinimumAttendance float64
	SemesterEnd       string
}

// Tracker serializes all access to the snapshot. The tool is single-user, but
// the HTTP surface can issue overlapping requests; the mutex guarantees that
// readers never observe a half-applied or unpersisted mutation.
type Tracker struct {
	mu     sync.RWMutex
	store  store.SnapshotStore
	logger *zap.Logger
	state  *model.Snapshot
}

// New loads the persisted snapshot, or starts a fresh one from defaults when
// none exists.
func New(st store.SnapshotStore, def Defaults, logger *zap.Logger) (*Tracker, error) {
	snap, err := st.Load()
	switch {
	case errors.Is(err, store.ErrNoSnapshot):
		snap = model.NewSnapshot(def.MinimumAttendance, def.SemesterEnd)
		logger.Info("no snapshot found, starting fresh",
			zap.Float64("minimum_attendance", def.MinimumAttendance),
			zap.String("semester_end", def.SemesterEnd),
		)
	case err != nil:
		return nil, fmt.Errorf("loading snapshot: %w", err)
	default:
		logger.Info("snapshot loaded",
			zap.Int("subjects", len(snap.Subjects)),
			zap.Int("holidays", len(snap.Holidays)),
		)
	}

	return &Tracker{store: st, logger: logger, state: snap}, nil
}

// Update runs fn against the state and, when fn succeeds, persists the full
// snapshot before returning. When fn fails nothing is persisted; fn must not
// leave partial changes behind on error.
func (t *Tracker) Update(fn func(s *model.Snapshot) error) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := fn(t.state); err != nil {
		return err
	}
	if err := t.store.Save(t.state); err != nil {
		t.logger.Error("persisting snapshot failed", zap.Error(err))
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

// Read runs fn against the state under a shared lock. fn must not mutate the
// snapshot and must not retain references past its return.
func (t *Tracker) Read(fn func(s *model.Snapshot) error) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fn(t.state)
}

// SeedWeekendHolidays marks every Saturday and Sunday from today through the
// semester end as a holiday. Called once at startup; persists only when a new
// date was actually added.
func (t *Tracker) SeedWeekendHolidays(today time.Time) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	end, err := time.Parse(model.DateLayout, t.state.SemesterEndDate)
	if err != nil {
		return fmt.Errorf("invalid semester end date %q: %w", t.state.SemesterEndDate, err)
	}

	added := 0
	for d := range calendar.Days(today, end) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			if t.state.AddHoliday(d.Format(model.DateLayout)) {
				added++
			}
		}
	}
	if added == 0 {
		return nil
	}

	t.logger.Info("weekend holidays seeded", zap.Int("added", added))
	if err := t.store.Save(t.state); err != nil {
		return fmt.Errorf("persisting snapshot: %w", err)
	}
	return nil
}

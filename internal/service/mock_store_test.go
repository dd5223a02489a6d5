package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/model"
	"github.com/Arnav-791/Attendence-calculator/internal/store"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
)

// ── Mock SnapshotStore ──

type mockStore struct {
	snap     *model.Snapshot
	saves    int
	failSave bool
}

func (m *mockStore) Load() (*model.Snapshot, error) {
	if m.snap == nil {
		return nil, store.ErrNoSnapshot
	}
	return m.snap, nil
}

func (m *mockStore) Save(snap *model.Snapshot) error {
	if m.failSave {
		return errors.New("save failed")
	}
	m.saves++
	m.snap = snap
	return nil
}

// ── Test helpers ──

const testSemesterEnd = "2025-12-13"

func newTestTracker(t *testing.T) (*tracker.Tracker, *mockStore) {
	t.Helper()
	st := &mockStore{}
	trk, err := tracker.New(st, tracker.Defaults{
		MinimumAttendance: 75,
		SemesterEnd:       testSemesterEnd,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("tracker.New failed: %v", err)
	}
	return trk, st
}

func addSubject(t *testing.T, trk *tracker.Tracker, code, name string, isLab bool) {
	t.Helper()
	err := trk.Update(func(snap *model.Snapshot) error {
		snap.Subjects[code] = model.Subject{Name: name, Credits: 1, IsLab: isLab}
		return nil
	})
	if err != nil {
		t.Fatalf("seeding subject %s failed: %v", code, err)
	}
}

func setSeed(t *testing.T, trk *tracker.Tracker, code string, present, absent, yetToGo int) {
	t.Helper()
	err := trk.Update(func(snap *model.Snapshot) error {
		snap.InitialAttendance[code] = model.InitialAttendance{
			Present: present,
			Absent:  absent,
			YetToGo: yetToGo,
		}
		return nil
	})
	if err != nil {
		t.Fatalf("seeding initial attendance for %s failed: %v", code, err)
	}
}

// fixedDate returns a clock pinned to an ISO date for deterministic
// projections.
func fixedDate(t *testing.T, date string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse(model.DateLayout, date)
	if err != nil {
		t.Fatalf("bad fixed date %q: %v", date, err)
	}
	return func() time.Time { return parsed }
}

package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/model"
	apperr "github.com/Arnav-791/Attendence-calculator/pkg/errors"
)

func setupSubjectService(t *testing.T) (SubjectService, *mockStore) {
	t.Helper()
	trk, st := newTestTracker(t)
	return NewSubjectService(trk, zap.NewNop()), st
}

// ── Create ──

func TestSubjectService_Create_Success(t *testing.T) {
	svc, st := setupSubjectService(t)

	resp, err := svc.Create(&dto.CreateSubjectRequest{Code: "CS101", Name: "Data Structures"})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if resp.Code != "CS101" {
		t.Errorf("expected code CS101, got %s", resp.Code)
	}
	if resp.Credits != 1 {
		t.Errorf("expected credits to default to 1, got %d", resp.Credits)
	}
	if st.saves != 1 {
		t.Errorf("expected 1 persisted save, got %d", st.saves)
	}
}

func TestSubjectService_Create_TrimsWhitespace(t *testing.T) {
	svc, _ := setupSubjectService(t)

	resp, err := svc.Create(&dto.CreateSubjectRequest{Code: "  CS101  ", Name: "  Data Structures "})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}
	if resp.Code != "CS101" {
		t.Errorf("expected trimmed code CS101, got %q", resp.Code)
	}
	if resp.Name != "Data Structures" {
		t.Errorf("expected trimmed name, got %q", resp.Name)
	}
}

func TestSubjectService_Create_Duplicate(t *testing.T) {
	svc, st := setupSubjectService(t)

	if _, err := svc.Create(&dto.CreateSubjectRequest{Code: "CS101", Name: "Data Structures"}); err != nil {
		t.Fatalf("first Create should succeed: %v", err)
	}
	saves := st.saves

	_, err := svc.Create(&dto.CreateSubjectRequest{Code: "CS101", Name: "Other Name"})
	if !errors.Is(err, ErrSubjectExists) {
		t.Errorf("expected ErrSubjectExists, got: %v", err)
	}
	if st.saves != saves {
		t.Errorf("failed Create must not persist, saves went %d -> %d", saves, st.saves)
	}
}

func TestSubjectService_Create_EmptyCode(t *testing.T) {
	svc, _ := setupSubjectService(t)

	_, err := svc.Create(&dto.CreateSubjectRequest{Code: "   ", Name: "Nameless"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

// ── Get / List ──

func TestSubjectService_Get_NotFound(t *testing.T) {
	svc, _ := setupSubjectService(t)

	_, err := svc.Get("NOPE")
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got: %v", err)
	}
}

func TestSubjectService_List_SortedByCode(t *testing.T) {
	svc, _ := setupSubjectService(t)

	for _, code := range []string{"PHY102", "CS101", "MATH201"} {
		if _, err := svc.Create(&dto.CreateSubjectRequest{Code: code, Name: code}); err != nil {
			t.Fatalf("Create %s failed: %v", code, err)
		}
	}

	list, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"CS101", "MATH201", "PHY102"}
	if len(list) != len(want) {
		t.Fatalf("expected %d subjects, got %d", len(want), len(list))
	}
	for i, code := range want {
		if list[i].Code != code {
			t.Errorf("position %d: expected %s, got %s", i, code, list[i].Code)
		}
	}
}

// ── Delete ──

func TestSubjectService_Delete_Cascades(t *testing.T) {
	trk, _ := newTestTracker(t)
	svc := NewSubjectService(trk, zap.NewNop())

	addSubject(t, trk, "CS101", "Data Structures", false)
	setSeed(t, trk, "CS101", 10, 2, 5)
	err := trk.Update(func(snap *model.Snapshot) error {
		snap.AttendanceRecords["CS101"] = []model.AttendanceRecord{
			{Date: "2025-11-03", Status: model.StatusPresent},
		}
		snap.SetEntries(model.Monday, []model.TimetableEntry{
			{Period: 1, SubjectCode: "CS101"},
			{Period: 2, SubjectCode: "MATH201"},
		})
		snap.Subjects["MATH201"] = model.Subject{Name: "Calculus", Credits: 1}
		return nil
	})
	if err != nil {
		t.Fatalf("seeding state failed: %v", err)
	}

	if err := svc.Delete("CS101"); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}

	trk.Read(func(snap *model.Snapshot) error {
		if snap.HasSubject("CS101") {
			t.Error("subject should be gone")
		}
		if _, ok := snap.AttendanceRecords["CS101"]; ok {
			t.Error("attendance records should be gone")
		}
		if _, ok := snap.InitialAttendance["CS101"]; ok {
			t.Error("initial attendance seed should be gone")
		}
		entries := snap.EntriesFor(model.Monday)
		if len(entries) != 1 || entries[0].SubjectCode != "MATH201" {
			t.Errorf("timetable should keep only MATH201, got %+v", entries)
		}
		return nil
	})
}

func TestSubjectService_Delete_DropsEmptyTimetableDay(t *testing.T) {
	trk, _ := newTestTracker(t)
	svc := NewSubjectService(trk, zap.NewNop())

	addSubject(t, trk, "CS101", "Data Structures", false)
	trk.Update(func(snap *model.Snapshot) error {
		snap.SetEntries(model.Friday, []model.TimetableEntry{{Period: 3, SubjectCode: "CS101"}})
		return nil
	})

	if err := svc.Delete("CS101"); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}

	trk.Read(func(snap *model.Snapshot) error {
		if _, ok := snap.Timetable[model.Friday]; ok {
			t.Error("emptied weekday should be dropped from the timetable")
		}
		return nil
	})
}

func TestSubjectService_Delete_NotFound(t *testing.T) {
	svc, _ := setupSubjectService(t)

	if err := svc.Delete("NOPE"); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got: %v", err)
	}
}

// ── SetInitialAttendance ──

func TestSubjectService_SetInitialAttendance_Success(t *testing.T) {
	trk, _ := newTestTracker(t)
	svc := NewSubjectService(trk, zap.NewNop())
	addSubject(t, trk, "CS101", "Data Structures", false)

	resp, err := svc.SetInitialAttendance("CS101", &dto.SetInitialAttendanceRequest{
		Present: 30, Absent: 5, YetToGo: 10,
	})
	if err != nil {
		t.Fatalf("SetInitialAttendance should succeed: %v", err)
	}
	if resp.InitialAttendance == nil {
		t.Fatal("expected seed in response")
	}
	if resp.InitialAttendance.Present != 30 || resp.InitialAttendance.Absent != 5 || resp.InitialAttendance.YetToGo != 10 {
		t.Errorf("unexpected seed: %+v", resp.InitialAttendance)
	}
}

func TestSubjectService_SetInitialAttendance_Negative(t *testing.T) {
	trk, _ := newTestTracker(t)
	svc := NewSubjectService(trk, zap.NewNop())
	addSubject(t, trk, "CS101", "Data Structures", false)

	_, err := svc.SetInitialAttendance("CS101", &dto.SetInitialAttendanceRequest{Present: -1})
	if !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got: %v", err)
	}
}

func TestSubjectService_SetInitialAttendance_UnknownSubject(t *testing.T) {
	svc, _ := setupSubjectService(t)

	_, err := svc.SetInitialAttendance("NOPE", &dto.SetInitialAttendanceRequest{Present: 1})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got: %v", err)
	}
}

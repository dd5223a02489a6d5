package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
	"github.com/Arnav-791/Attendence-calculator/internal/tracker"
)

func setupAttendanceService(t *testing.T) (AttendanceService, *tracker.Tracker, *mockStore) {
	t.Helper()
	trk, st := newTestTracker(t)
	addSubject(t, trk, "CS101", "Data Structures", false)
	addSubject(t, trk, "MATH201", "Calculus", false)
	return NewAttendanceService(trk, zap.NewNop()), trk, st
}

// ── Mark ──

func TestAttendanceService_Mark_Success(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "CS101", Date: "2025-11-03", Status: "present"})
	if err != nil {
		t.Fatalf("Mark should succeed: %v", err)
	}

	records, err := svc.Records("CS101")
	if err != nil {
		t.Fatalf("Records failed: %v", err)
	}
	if len(records) != 1 || records[0].Status != "present" {
		t.Errorf("unexpected ledger: %+v", records)
	}
}

func TestAttendanceService_Mark_UpsertReplacesStatus(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	if err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "CS101", Date: "2025-11-03", Status: "present"}); err != nil {
		t.Fatalf("Mark failed: %v", err)
	}
	if err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "CS101", Date: "2025-11-03", Status: "absent"}); err != nil {
		t.Fatalf("re-Mark failed: %v", err)
	}

	records, _ := svc.Records("CS101")
	if len(records) != 1 {
		t.Fatalf("re-marking the same date must not append, got %d records", len(records))
	}
	if records[0].Status != "absent" {
		t.Errorf("expected status flipped to absent, got %s", records[0].Status)
	}
}

func TestAttendanceService_Mark_UnknownSubject(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "NOPE", Date: "2025-11-03", Status: "present"})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("expected ErrSubjectNotFound, got: %v", err)
	}
}

func TestAttendanceService_Mark_InvalidStatus(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "CS101", Date: "2025-11-03", Status: "late"})
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus, got: %v", err)
	}
}

func TestAttendanceService_Mark_InvalidDate(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.Mark(&dto.MarkAttendanceRequest{SubjectCode: "CS101", Date: "03/11/2025", Status: "present"})
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got: %v", err)
	}
}

// ── MarkDay ──

func TestAttendanceService_MarkDay_Success(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.MarkDay(&dto.MarkDayAttendanceRequest{
		Date: "2025-11-03",
		Marks: []dto.DayAttendanceMark{
			{SubjectCode: "CS101", Status: "present"},
			{SubjectCode: "MATH201", Status: "absent"},
		},
	})
	if err != nil {
		t.Fatalf("MarkDay should succeed: %v", err)
	}

	cs, _ := svc.Records("CS101")
	math, _ := svc.Records("MATH201")
	if len(cs) != 1 || cs[0].Status != "present" {
		t.Errorf("unexpected CS101 ledger: %+v", cs)
	}
	if len(math) != 1 || math[0].Status != "absent" {
		t.Errorf("unexpected MATH201 ledger: %+v", math)
	}
}

func TestAttendanceService_MarkDay_UnknownSubjectLeavesNothing(t *testing.T) {
	svc, _, st := setupAttendanceService(t)
	saves := st.saves

	err := svc.MarkDay(&dto.MarkDayAttendanceRequest{
		Date: "2025-11-03",
		Marks: []dto.DayAttendanceMark{
			{SubjectCode: "CS101", Status: "present"},
			{SubjectCode: "NOPE", Status: "absent"},
		},
	})
	if !errors.Is(err, ErrSubjectNotFound) {
		t.Fatalf("expected ErrSubjectNotFound, got: %v", err)
	}
	if st.saves != saves {
		t.Errorf("failed MarkDay must not persist, saves went %d -> %d", saves, st.saves)
	}

	records, _ := svc.Records("CS101")
	if len(records) != 0 {
		t.Errorf("partial marks must not survive a failed MarkDay: %+v", records)
	}
}

// ── Absence reasons ──

func TestAttendanceService_AbsenceReasons_Lifecycle(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	add := func(date, typ, reason string) {
		t.Helper()
		if err := svc.AddAbsenceReason(&dto.AddAbsenceReasonRequest{Date: date, Type: typ, Reason: reason}); err != nil {
			t.Fatalf("AddAbsenceReason(%s) failed: %v", date, err)
		}
	}
	add("2025-11-10", "Medical", "fever")
	add("2025-11-03", "Personal", "family function")

	reasons, err := svc.AbsenceReasons()
	if err != nil {
		t.Fatalf("AbsenceReasons failed: %v", err)
	}
	if len(reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %d", len(reasons))
	}
	if reasons[0].Date != "2025-11-03" || reasons[1].Date != "2025-11-10" {
		t.Errorf("expected date-sorted reasons, got %+v", reasons)
	}

	// Re-adding the same date replaces the note.
	add("2025-11-03", "Event", "sports day")
	reasons, _ = svc.AbsenceReasons()
	if len(reasons) != 2 || reasons[0].Type != "Event" {
		t.Errorf("expected replaced note for 2025-11-03, got %+v", reasons)
	}

	if err := svc.DeleteAbsenceReason("2025-11-03"); err != nil {
		t.Fatalf("DeleteAbsenceReason failed: %v", err)
	}
	reasons, _ = svc.AbsenceReasons()
	if len(reasons) != 1 || reasons[0].Date != "2025-11-10" {
		t.Errorf("unexpected reasons after delete: %+v", reasons)
	}
}

func TestAttendanceService_AddAbsenceReason_InvalidType(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.AddAbsenceReason(&dto.AddAbsenceReasonRequest{Date: "2025-11-03", Type: "Vacation", Reason: "trip"})
	if !errors.Is(err, ErrInvalidAbsenceType) {
		t.Errorf("expected ErrInvalidAbsenceType, got: %v", err)
	}
}

func TestAttendanceService_DeleteAbsenceReason_NotFound(t *testing.T) {
	svc, _, _ := setupAttendanceService(t)

	err := svc.DeleteAbsenceReason("2025-11-03")
	if !errors.Is(err, ErrAbsenceReasonNotFound) {
		t.Errorf("expected ErrAbsenceReasonNotFound, got: %v", err)
	}
}

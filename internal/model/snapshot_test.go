package model

import "testing"

func TestNormalize_InitializesNilCollections(t *testing.T) {
	var s Snapshot
	s.Normalize()

	if s.Subjects == nil || s.Timetable == nil || s.AttendanceRecords == nil ||
		s.AbsenceReasons == nil || s.InitialAttendance == nil || s.Holidays == nil {
		t.Errorf("expected all collections initialized, got %+v", s)
	}
}

func TestNormalize_SortsAndDedupsHolidays(t *testing.T) {
	s := Snapshot{Holidays: []string{"2025-11-27", "2025-11-14", "2025-11-14"}}
	s.Normalize()

	want := []string{"2025-11-14", "2025-11-27"}
	if len(s.Holidays) != len(want) {
		t.Fatalf("expected %v, got %v", want, s.Holidays)
	}
	for i := range want {
		if s.Holidays[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], s.Holidays[i])
		}
	}
}

func TestHolidaySet_AddRemoveLookup(t *testing.T) {
	s := NewSnapshot(75, "2025-12-13")

	if !s.AddHoliday("2025-11-14") {
		t.Error("first add should report insertion")
	}
	if s.AddHoliday("2025-11-14") {
		t.Error("second add should report the date as already present")
	}
	s.AddHoliday("2025-11-03")
	s.AddHoliday("2025-11-27")

	if s.Holidays[0] != "2025-11-03" || s.Holidays[2] != "2025-11-27" {
		t.Errorf("expected sorted holidays, got %v", s.Holidays)
	}
	if !s.IsHoliday("2025-11-14") {
		t.Error("expected 2025-11-14 to be a holiday")
	}
	if s.IsHoliday("2025-11-15") {
		t.Error("2025-11-15 was never added")
	}

	if !s.RemoveHoliday("2025-11-14") {
		t.Error("removal of a present date should succeed")
	}
	if s.RemoveHoliday("2025-11-14") {
		t.Error("removal of a missing date should report false")
	}
	if s.IsHoliday("2025-11-14") {
		t.Error("removed date must not remain a holiday")
	}
}

func TestSetEntries_SortsByPeriod(t *testing.T) {
	s := NewSnapshot(75, "2025-12-13")
	s.SetEntries(Monday, []TimetableEntry{
		{Period: 5, SubjectCode: "B"},
		{Period: 2, SubjectCode: "A"},
	})

	got := s.EntriesFor(Monday)
	if len(got) != 2 || got[0].Period != 2 || got[1].Period != 5 {
		t.Errorf("expected period-sorted entries, got %+v", got)
	}
}

func TestSetEntries_DropsEmptyDay(t *testing.T) {
	s := NewSnapshot(75, "2025-12-13")
	s.SetEntries(Monday, []TimetableEntry{{Period: 1, SubjectCode: "A"}})
	s.SetEntries(Monday, nil)

	if _, ok := s.Timetable[Monday]; ok {
		t.Error("expected the emptied weekday key to be dropped")
	}
}

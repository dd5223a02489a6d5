package model

import (
	"testing"
	"time"
)

func TestParseWeekday(t *testing.T) {
	for _, input := range []string{"Monday", "monday", "MONDAY"} {
		day, err := ParseWeekday(input)
		if err != nil {
			t.Errorf("ParseWeekday(%q) failed: %v", input, err)
		}
		if day != Monday {
			t.Errorf("ParseWeekday(%q) = %s, want Monday", input, day)
		}
	}

	if _, err := ParseWeekday("Funday"); err == nil {
		t.Error("expected an error for an unknown weekday")
	}
}

func TestWeekdayOf(t *testing.T) {
	d := time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC)
	if got := WeekdayOf(d); got != Monday {
		t.Errorf("2025-11-03 should be Monday, got %s", got)
	}
}

func TestPeriod_Valid(t *testing.T) {
	for p := FirstPeriod; p <= LastPeriod; p++ {
		if !p.Valid() {
			t.Errorf("period %d should be valid", p)
		}
	}
	for _, p := range []Period{0, 8, -1} {
		if p.Valid() {
			t.Errorf("period %d should be invalid", p)
		}
	}
}

func TestPeriod_BellSchedule(t *testing.T) {
	tests := []struct {
		period Period
		start  string
		end    string
	}{
		{1, "08:30", "09:25"},
		{2, "09:25", "10:20"},
		{3, "10:40", "11:35"}, // after the tea break
		{4, "11:35", "12:30"},
		{5, "13:25", "14:20"}, // after lunch
		{6, "14:20", "15:15"},
		{7, "15:15", "16:10"},
	}
	for _, tt := range tests {
		if tt.period.Start() != tt.start || tt.period.End() != tt.end {
			t.Errorf("period %d: expected %s-%s, got %s-%s",
				tt.period, tt.start, tt.end, tt.period.Start(), tt.period.End())
		}
	}
}

func TestPeriod_Label(t *testing.T) {
	if got := Period(3).Label(); got != "Period 3 (10:40-11:35)" {
		t.Errorf("unexpected label: %q", got)
	}
}

func TestAttendanceStatus_Valid(t *testing.T) {
	if !StatusPresent.Valid() || !StatusAbsent.Valid() {
		t.Error("present and absent must be valid statuses")
	}
	if AttendanceStatus("late").Valid() {
		t.Error("late is not a valid status")
	}
}

func TestAbsenceType_Valid(t *testing.T) {
	for _, typ := range []AbsenceType{AbsenceMedical, AbsenceEvent, AbsencePersonal, AbsenceOther} {
		if !typ.Valid() {
			t.Errorf("%s should be a valid absence type", typ)
		}
	}
	if AbsenceType("Vacation").Valid() {
		t.Error("Vacation is not a valid absence type")
	}
}

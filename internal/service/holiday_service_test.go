package service

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Arnav-791/Attendence-calculator/internal/dto"
)

func setupHolidayService(t *testing.T) (HolidayService, *mockStore) {
	t.Helper()
	trk, st := newTestTracker(t)
	return NewHolidayService(trk, zap.NewNop()), st
}

func TestHolidayService_Add_Idempotent(t *testing.T) {
	svc, _ := setupHolidayService(t)

	for i := 0; i < 2; i++ {
		if err := svc.Add(&dto.AddHolidayRequest{Date: "2025-11-14"}); err != nil {
			t.Fatalf("Add attempt %d should succeed: %v", i+1, err)
		}
	}

	dates, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(dates) != 1 || dates[0] != "2025-11-14" {
		t.Errorf("expected single holiday 2025-11-14, got %v", dates)
	}
}

func TestHolidayService_Add_BadDate(t *testing.T) {
	svc, _ := setupHolidayService(t)

	if err := svc.Add(&dto.AddHolidayRequest{Date: "14/11/2025"}); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("expected ErrInvalidDate, got: %v", err)
	}
}

func TestHolidayService_List_Sorted(t *testing.T) {
	svc, _ := setupHolidayService(t)

	for _, d := range []string{"2025-12-25", "2025-11-14", "2025-11-27"} {
		if err := svc.Add(&dto.AddHolidayRequest{Date: d}); err != nil {
			t.Fatalf("Add(%s) failed: %v", d, err)
		}
	}

	dates, _ := svc.List()
	want := []string{"2025-11-14", "2025-11-27", "2025-12-25"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d holidays, got %d", len(want), len(dates))
	}
	for i, d := range want {
		if dates[i] != d {
			t.Errorf("position %d: expected %s, got %s", i, d, dates[i])
		}
	}
}

func TestHolidayService_Remove_Success(t *testing.T) {
	svc, _ := setupHolidayService(t)

	if err := svc.Add(&dto.AddHolidayRequest{Date: "2025-11-14"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := svc.Remove("2025-11-14"); err != nil {
		t.Fatalf("Remove should succeed: %v", err)
	}

	dates, _ := svc.List()
	if len(dates) != 0 {
		t.Errorf("expected empty holiday set, got %v", dates)
	}
}

func TestHolidayService_Remove_NotFound(t *testing.T) {
	svc, st := setupHolidayService(t)
	saves := st.saves

	if err := svc.Remove("2025-11-14"); !errors.Is(err, ErrHolidayNotFound) {
		t.Errorf("expected ErrHolidayNotFound, got: %v", err)
	}
	if st.saves != saves {
		t.Errorf("failed Remove must not persist, saves went %d -> %d", saves, st.saves)
	}
}

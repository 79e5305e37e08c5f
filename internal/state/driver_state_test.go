package state

import (
	"testing"
	"time"

	"github.com/draymaster/trip-planner/internal/rules"
)

func TestNewPlacesCycleUsedInOldestSlot(t *testing.T) {
	ds := New(69.0)
	if ds.DutyHoursLast8Days[7] != 69.0 {
		t.Fatalf("expected slot 7 = 69.0, got %f", ds.DutyHoursLast8Days[7])
	}
	for i := 0; i < 7; i++ {
		if ds.DutyHoursLast8Days[i] != 0 {
			t.Fatalf("expected slot %d = 0, got %f", i, ds.DutyHoursLast8Days[i])
		}
	}
}

func TestAddDrivingHours(t *testing.T) {
	ds := New(0)
	ds.AddDrivingHours(2.5)

	if ds.CurrentDayDrivingHours != 2.5 {
		t.Fatalf("expected CurrentDayDrivingHours 2.5, got %f", ds.CurrentDayDrivingHours)
	}
	if ds.AccumulativeDrivingHours != 2.5 {
		t.Fatalf("expected AccumulativeDrivingHours 2.5, got %f", ds.AccumulativeDrivingHours)
	}
	if ds.DutyHoursLast8Days[0] != 2.5 {
		t.Fatalf("expected slot 0 = 2.5, got %f", ds.DutyHoursLast8Days[0])
	}
}

func TestAddDrivingHoursNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative input")
		}
	}()
	New(0).AddDrivingHours(-1)
}

func TestAddOnDutyHoursDoesNotTouchDriving(t *testing.T) {
	ds := New(0)
	ds.AddOnDutyHours(1.0)

	if ds.CurrentDayDrivingHours != 0 {
		t.Fatalf("expected driving hours untouched, got %f", ds.CurrentDayDrivingHours)
	}
	if ds.DutyHoursLast8Days[0] != 1.0 {
		t.Fatalf("expected slot 0 = 1.0, got %f", ds.DutyHoursLast8Days[0])
	}
}

func TestTakeDailyRestDoesNotShiftWindow(t *testing.T) {
	ds := New(0)
	ds.DutyHoursLast8Days[1] = 5.0
	ds.AddDrivingHours(3.0)
	now := time.Now()
	ds.OpenWindow(now)

	ds.TakeDailyRest()

	if ds.CurrentDayDrivingHours != 0 || ds.AccumulativeDrivingHours != 0 {
		t.Fatal("expected daily counters reset")
	}
	if ds.CurrentOnDutyWindowStart != nil {
		t.Fatal("expected window cleared")
	}
	if ds.DutyHoursLast8Days[1] != 5.0 {
		t.Fatal("expected 8-day window untouched by TakeDailyRest")
	}
	if ds.DutyHoursLast8Days[0] != 3.0 {
		t.Fatal("expected today's slot to retain accrued driving hours")
	}
}

func TestApply34hRestartZeroesEverything(t *testing.T) {
	ds := New(69.0)
	ds.AddDrivingHours(2.0)
	now := time.Now()
	ds.OpenWindow(now)

	ds.Apply34hRestart()

	for i, h := range ds.DutyHoursLast8Days {
		if h != 0 {
			t.Fatalf("expected slot %d = 0 after restart, got %f", i, h)
		}
	}
	if ds.CurrentDayDrivingHours != 0 || ds.AccumulativeDrivingHours != 0 {
		t.Fatal("expected daily counters zeroed")
	}
	if ds.CurrentOnDutyWindowStart != nil {
		t.Fatal("expected window cleared")
	}
}

func TestCheckDayChangeShiftsOncePerElapsedDay(t *testing.T) {
	ds := New(0)
	base := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	ds.CheckDayChange(base)
	ds.AddDrivingHours(5.0)

	// Three calendar days elapse in one jump.
	ds.CheckDayChange(base.AddDate(0, 0, 3))

	if ds.DutyHoursLast8Days[3] != 5.0 {
		t.Fatalf("expected the 5.0 hours to have shifted 3 slots, got window %v", ds.DutyHoursLast8Days)
	}
	if ds.DutyHoursLast8Days[0] != 0 {
		t.Fatalf("expected slot 0 reset to zero, got %f", ds.DutyHoursLast8Days[0])
	}
}

func TestAvailableDrivingHoursFloorsAtZero(t *testing.T) {
	ds := New(70.0)
	rs := rules.USInterstate()

	available := ds.AvailableDrivingHours(time.Now(), rs)
	if available != 0 {
		t.Fatalf("expected 0 available hours at cycle cap, got %f", available)
	}
}

func TestNeedsShortBreak(t *testing.T) {
	ds := New(0)
	rs := rules.USInterstate()

	if ds.NeedsShortBreak(rs) {
		t.Fatal("expected no break needed initially")
	}
	ds.AddDrivingHours(8.0)
	if !ds.NeedsShortBreak(rs) {
		t.Fatal("expected break needed at 8.0 accumulative driving hours")
	}
}

func TestNeedsRefueling(t *testing.T) {
	ds := New(0)
	rs := rules.USInterstate()

	ds.AddMiles(999)
	if ds.NeedsRefueling(rs) {
		t.Fatal("expected no refuel needed below threshold")
	}
	ds.AddMiles(1)
	if !ds.NeedsRefueling(rs) {
		t.Fatal("expected refuel needed at threshold")
	}
}

func TestNeedsRestart34h(t *testing.T) {
	rs := rules.USInterstate()
	ds := New(60.0)
	if ds.NeedsRestart34h(rs) {
		t.Fatal("expected no restart needed below 61")
	}
	ds.DutyHoursLast8Days[6] = 1.0
	if !ds.NeedsRestart34h(rs) {
		t.Fatal("expected restart needed at 61")
	}
}

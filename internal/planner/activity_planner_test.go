package planner

import (
	"testing"
	"time"

	"github.com/draymaster/trip-planner/internal/domain"
	"github.com/draymaster/trip-planner/internal/rules"
	"github.com/draymaster/trip-planner/internal/state"
)

func TestHandleActivityEmitsFixedDurationSegment(t *testing.T) {
	rs := rules.USInterstate()
	ds := state.New(0)
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	ap := NewActivityPlanner()
	seg, end := ap.HandleActivity(start, ds, rs, domain.SegmentPickup)

	if !approxEqual(seg.DurationHours, rs.PickupDropOffHours) {
		t.Fatalf("expected duration %f, got %f", rs.PickupDropOffHours, seg.DurationHours)
	}
	if seg.Status != domain.DutyOnDutyNotDriving {
		t.Fatalf("expected OnDutyNotDriving status, got %s", seg.Status)
	}
	if seg.Type != domain.SegmentPickup {
		t.Fatalf("expected SegmentPickup, got %s", seg.Type)
	}
	if !end.Equal(start.Add(time.Hour)) {
		t.Fatalf("expected end time %v, got %v", start.Add(time.Hour), end)
	}
}

func TestHandleActivityAccruesOnDutyHoursOnly(t *testing.T) {
	rs := rules.USInterstate()
	ds := state.New(0)
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)

	ap := NewActivityPlanner()
	ap.HandleActivity(start, ds, rs, domain.SegmentDropOff)

	if ds.CurrentDayDrivingHours != 0 {
		t.Fatalf("expected no driving hours accrued, got %f", ds.CurrentDayDrivingHours)
	}
	if ds.DutyHoursLast8Days[0] != rs.PickupDropOffHours {
		t.Fatalf("expected %f on-duty hours accrued to today's slot, got %f", rs.PickupDropOffHours, ds.DutyHoursLast8Days[0])
	}
}

func TestHandleActivityIgnoresWindowAndCycleLimits(t *testing.T) {
	rs := rules.USInterstate()
	ds := state.New(rs.MaxCycleHours) // already at the cycle cap
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	ds.OpenWindow(start.Add(-time.Duration(rs.MaxDutyHours+1) * time.Hour)) // window already past 14h

	ap := NewActivityPlanner()
	seg, _ := ap.HandleActivity(start, ds, rs, domain.SegmentPickup)

	if !approxEqual(seg.DurationHours, rs.PickupDropOffHours) {
		t.Fatalf("expected activity planner to proceed regardless of window/cycle limits, got duration %f", seg.DurationHours)
	}
}

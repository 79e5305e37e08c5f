// Package state implements the DriverState accumulator: every counter
// the HOS rule set constrains, mutated only by the segment and
// activity planners.
package state

import (
	"fmt"
	"time"

	"github.com/draymaster/trip-planner/internal/rules"
)

// DriverState tracks cumulative duty/driving/distance counters across
// a rolling eight-day window. Owned exclusively by one planning call;
// no concurrent access is permitted within a single plan.
type DriverState struct {
	// DutyHoursLast8Days is an ordered 8-slot buffer, index 0 = today.
	DutyHoursLast8Days [8]float64

	CurrentDayDrivingHours   float64
	AccumulativeDrivingHours float64

	// CurrentOnDutyWindowStart marks the start of the current 14-hour
	// window, or nil if none is open.
	CurrentOnDutyWindowStart *time.Time

	MilesSinceRefueling float64

	// LastDayCheck is the calendar date CheckDayChange last observed,
	// or nil before the first call.
	LastDayCheck *time.Time
}

// New constructs a DriverState with the driver's prior accumulated
// cycle load placed in the oldest of the 8 rolling-window slots, as
// the orchestrator's contract requires (spec.md §4.5 step 2).
func New(currentCycleUsed float64) *DriverState {
	ds := &DriverState{}
	ds.DutyHoursLast8Days[7] = currentCycleUsed
	return ds
}

func requireNonNegative(op string, h float64) {
	if h < 0 {
		panic(fmt.Sprintf("state: %s: negative input %f", op, h))
	}
}

// AddDrivingHours adds h to CurrentDayDrivingHours,
// AccumulativeDrivingHours, and today's slot of the 8-day window.
func (d *DriverState) AddDrivingHours(h float64) {
	requireNonNegative("AddDrivingHours", h)
	d.CurrentDayDrivingHours += h
	d.AccumulativeDrivingHours += h
	d.DutyHoursLast8Days[0] += h
}

// AddOnDutyHours adds h only to the on-duty-non-driving counters —
// today's slot of the 8-day window. Driving counters are untouched.
func (d *DriverState) AddOnDutyHours(h float64) {
	requireNonNegative("AddOnDutyHours", h)
	d.DutyHoursLast8Days[0] += h
}

// AddMiles adds m to MilesSinceRefueling.
func (d *DriverState) AddMiles(m float64) {
	requireNonNegative("AddMiles", m)
	d.MilesSinceRefueling += m
}

// Refuel zeroes MilesSinceRefueling.
func (d *DriverState) Refuel() {
	d.MilesSinceRefueling = 0
}

// ResetAccumulativeDriving zeroes AccumulativeDrivingHours — the
// consequence of either a 30-minute break or a one-hour refueling
// stop with a break attached.
func (d *DriverState) ResetAccumulativeDriving() {
	d.AccumulativeDrivingHours = 0
}

// TakeDailyRest clears the open duty window and zeroes the daily
// driving/accumulative counters. It does not shift the 8-day window —
// that is CheckDayChange's job, driven by wall-clock time, not rest.
func (d *DriverState) TakeDailyRest() {
	d.CurrentOnDutyWindowStart = nil
	d.CurrentDayDrivingHours = 0
	d.AccumulativeDrivingHours = 0
}

// Apply34hRestart zeroes all 8 slots of the rolling window plus the
// daily counters and the open duty window.
func (d *DriverState) Apply34hRestart() {
	d.DutyHoursLast8Days = [8]float64{}
	d.CurrentDayDrivingHours = 0
	d.AccumulativeDrivingHours = 0
	d.CurrentOnDutyWindowStart = nil
}

func calendarDate(ts time.Time) time.Time {
	y, m, day := ts.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, ts.Location())
}

// CheckDayChange advances the rolling 8-day window by one position
// for every calendar day that has elapsed since the last call,
// dropping the oldest slot and inserting a zero at index 0 each time.
func (d *DriverState) CheckDayChange(ts time.Time) {
	today := calendarDate(ts)

	if d.LastDayCheck == nil {
		d.LastDayCheck = &today
		return
	}

	elapsedDays := int(today.Sub(*d.LastDayCheck).Hours() / 24)
	for i := 0; i < elapsedDays; i++ {
		for slot := 7; slot > 0; slot-- {
			d.DutyHoursLast8Days[slot] = d.DutyHoursLast8Days[slot-1]
		}
		d.DutyHoursLast8Days[0] = 0
	}
	d.LastDayCheck = &today
}

func (d *DriverState) cycleHoursUsed() float64 {
	var sum float64
	for _, h := range d.DutyHoursLast8Days {
		sum += h
	}
	return sum
}

func elapsedInWindow(windowStart *time.Time, now time.Time) float64 {
	if windowStart == nil {
		return 0
	}
	return now.Sub(*windowStart).Hours()
}

// AvailableDrivingHours returns the remaining driving hours permitted
// right now: the tightest of the 8-day cycle cap, the 11-hour daily
// driving limit, and the time left in the open 14-hour window (or
// unconstrained if no window is open). All three are floored at zero.
func (d *DriverState) AvailableDrivingHours(now time.Time, rs rules.RuleSet) float64 {
	cycleLimit := rs.MaxCycleHours - d.cycleHoursUsed()
	if cycleLimit < 0 {
		cycleLimit = 0
	}

	drivingLimit := rs.MaxDrivingHours - d.CurrentDayDrivingHours
	if drivingLimit < 0 {
		drivingLimit = 0
	}

	available := cycleLimit
	if drivingLimit < available {
		available = drivingLimit
	}

	if d.CurrentOnDutyWindowStart != nil {
		windowLimit := rs.MaxDutyHours - elapsedInWindow(d.CurrentOnDutyWindowStart, now)
		if windowLimit < 0 {
			windowLimit = 0
		}
		if windowLimit < available {
			available = windowLimit
		}
	}

	return available
}

// NeedsShortBreak reports whether accumulative driving has reached
// the 8-hour break trigger.
func (d *DriverState) NeedsShortBreak(rs rules.RuleSet) bool {
	return d.AccumulativeDrivingHours >= rs.AccumulativeDrivingBreakTriggerHours
}

// NeedsRefueling reports whether miles since the last refuel have
// reached the rule set's refuel interval.
func (d *DriverState) NeedsRefueling(rs rules.RuleSet) bool {
	return d.MilesSinceRefueling >= rs.RefuelDistanceMiles
}

// NeedsRestart34h reports whether the rolling 8-day sum has reached
// the rule set's restart trigger.
func (d *DriverState) NeedsRestart34h(rs rules.RuleSet) bool {
	return d.cycleHoursUsed() >= rs.Restart34hThresholdHours
}

// NeedsDailyRest reports whether either the 14-hour window has
// elapsed or the 8-day cycle cap has been reached.
func (d *DriverState) NeedsDailyRest(now time.Time, rs rules.RuleSet) bool {
	if d.CurrentOnDutyWindowStart != nil && elapsedInWindow(d.CurrentOnDutyWindowStart, now) >= rs.MaxDutyHours {
		return true
	}
	return d.cycleHoursUsed() >= rs.MaxCycleHours
}

// OpenWindow sets CurrentOnDutyWindowStart to now if no window is
// currently open.
func (d *DriverState) OpenWindow(now time.Time) {
	if d.CurrentOnDutyWindowStart == nil {
		w := now
		d.CurrentOnDutyWindowStart = &w
	}
}

// CycleHoursUsed exposes the rolling 8-day sum for invariant checks
// and tests.
func (d *DriverState) CycleHoursUsed() float64 {
	return d.cycleHoursUsed()
}

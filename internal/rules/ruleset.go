// Package rules holds the numeric HOS constants the planner is
// parameterized over. A RuleSet is a plain value, not a singleton, so
// two plans under different rule sets can coexist.
package rules

// RuleSet is a named collection of HOS numeric constants.
type RuleSet struct {
	Name string

	MaxDrivingHours     float64 // §395.3(a)(3)(i) — 11-hour driving limit
	MaxDutyHours        float64 // §395.3(a)(2) — 14-hour window
	DailyRestHours      float64 // 10-hour off-duty reset
	ShortBreakHours     float64 // 30-minute break after 8h accumulative driving
	MaxCycleHours       float64 // §395.3(b) — 70-hour/8-day cycle
	RefuelDistanceMiles float64

	// Restart34hThresholdHours is the rolling 8-day sum at or above
	// which a 34-hour restart is forced. Preserved as-is from the
	// source system's 61-hour trigger rather than the regulatory 60
	// (spec.md §9 Open Question — not reconciled, by design).
	Restart34hThresholdHours float64

	// AccumulativeDrivingBreakTriggerHours is the accumulative-driving
	// threshold (since the last qualifying break) that requires a
	// 30-minute break.
	AccumulativeDrivingBreakTriggerHours float64

	// Restart34hHours is the duration of the 34-hour restart segment.
	Restart34hHours float64

	// PickupDropOffHours is the fixed duration of a Pickup/DropOff
	// activity segment.
	PickupDropOffHours float64
}

// USInterstate returns the U.S. interstate commerce rule set — the
// only rule set in scope (spec.md Non-goals: "non-U.S. rule sets").
func USInterstate() RuleSet {
	return RuleSet{
		Name:                                 "us_interstate",
		MaxDrivingHours:                      11.0,
		MaxDutyHours:                         14.0,
		DailyRestHours:                       10.0,
		ShortBreakHours:                      0.5,
		MaxCycleHours:                        70.0,
		RefuelDistanceMiles:                  1000.0,
		Restart34hThresholdHours:             61.0,
		AccumulativeDrivingBreakTriggerHours: 8.0,
		Restart34hHours:                      34.0,
		PickupDropOffHours:                   1.0,
	}
}

// ByName resolves a rule set by its selector string. Only
// "us_interstate" is implemented; any other name falls back to it,
// since multi-jurisdiction rule sets are an explicit Non-goal.
func ByName(name string) RuleSet {
	switch name {
	case "us_interstate", "":
		return USInterstate()
	default:
		return USInterstate()
	}
}

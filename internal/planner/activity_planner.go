package planner

import (
	"time"

	"github.com/draymaster/trip-planner/internal/domain"
	"github.com/draymaster/trip-planner/internal/rules"
	"github.com/draymaster/trip-planner/internal/state"
)

// ActivityPlanner handles fixed-duration non-driving work: pickup and
// drop-off.
type ActivityPlanner struct{}

// NewActivityPlanner constructs an ActivityPlanner.
func NewActivityPlanner() *ActivityPlanner {
	return &ActivityPlanner{}
}

// HandleActivity emits exactly one ON_DUTY_NOT_DRIVING segment of
// rule-set duration PickupDropOffHours for segmentType ∈ {Pickup,
// DropOff}. It does not check the 14-hour or 70-hour limits — loading
// and unloading are regulatorily performable past those limits since
// they involve no driving, though the hours still accrue into the
// cycle counters. If accrual pushes the cycle past 70 hours, the next
// driving leg's segment planner detects it and inserts rest/restart.
func (a *ActivityPlanner) HandleActivity(
	currentTime time.Time,
	ds *state.DriverState,
	rs rules.RuleSet,
	segmentType domain.SegmentType,
) (domain.Segment, time.Time) {
	ds.CheckDayChange(currentTime)

	endTime := currentTime.Add(time.Duration(rs.PickupDropOffHours * float64(time.Hour)))

	seg := domain.Segment{
		Type:          segmentType,
		StartTime:     currentTime,
		EndTime:       endTime,
		DurationHours: rs.PickupDropOffHours,
		Status:        domain.DutyOnDutyNotDriving,
	}

	ds.AddOnDutyHours(rs.PickupDropOffHours)
	ds.CheckDayChange(endTime)

	return seg, endTime
}

// Package planner implements the segment planner (§4.3) and the
// activity planner (§4.4): the priority-ordered state machine that
// turns one routed leg plus driver state into a compliant sequence of
// segments, and the fixed-duration handler for pickup/drop-off work.
package planner

import (
	"time"

	"github.com/draymaster/trip-planner/internal/domain"
	"github.com/draymaster/trip-planner/internal/rules"
	"github.com/draymaster/trip-planner/internal/state"
	"github.com/draymaster/trip-planner/pkg/logger"
)

// remainingEpsilon is the "rounds to zero" threshold from spec.md
// §4.3 step 7: once remaining duration falls below six minutes, both
// remaining duration and distance are snapped to zero to terminate
// the loop cleanly.
const remainingEpsilon = 0.1

// SegmentPlanner plans a single driving leg (drive-to-pickup or
// drive-to-drop-off) into a compliant sequence of segments.
type SegmentPlanner struct {
	log *logger.Logger
}

// New constructs a SegmentPlanner. log may be nil, in which case a
// default logger is used.
func New(log *logger.Logger) *SegmentPlanner {
	if log == nil {
		log = logger.Default()
	}
	return &SegmentPlanner{log: log}
}

// PlanLeg consumes one routed leg plus driver state and rule set and
// emits the list of segments needed to drive it compliantly,
// returning the clock time after the last emitted segment.
func (p *SegmentPlanner) PlanLeg(
	startTime time.Time,
	segmentType domain.SegmentType,
	leg domain.RouteLeg,
	ds *state.DriverState,
	rs rules.RuleSet,
) ([]domain.Segment, time.Time) {
	var segments []domain.Segment

	currentTime := startTime
	remainingDuration := leg.DurationHours
	remainingDistance := leg.DistanceMiles

	for remainingDuration > 0 {
		// 1. Open window.
		ds.OpenWindow(currentTime)

		// 2. Day-change check.
		ds.CheckDayChange(currentTime)

		// 3. 34-hour restart — highest priority; a cycle at or above
		// the restart threshold must clear before anything else runs.
		if ds.NeedsRestart34h(rs) {
			seg := domain.Segment{
				Type:          domain.SegmentRestart34h,
				StartTime:     currentTime,
				DurationHours: rs.Restart34hHours,
				Status:        domain.DutyOffDuty,
			}
			currentTime = currentTime.Add(time.Duration(rs.Restart34hHours * float64(time.Hour)))
			seg.EndTime = currentTime
			segments = append(segments, seg)
			ds.Apply34hRestart()

			p.log.WithFields(map[string]interface{}{
				"segment_type": seg.Type,
				"start_time":   seg.StartTime,
				"duration_hrs": seg.DurationHours,
			}).Info("34-hour restart triggered")

			continue
		}

		// 4. Refueling — processed before rest, so a combined
		// refuel+break can count toward both.
		if ds.NeedsRefueling(rs) {
			segType := domain.SegmentRefueling
			hadBreakDue := ds.NeedsShortBreak(rs)
			if hadBreakDue {
				segType = domain.SegmentRefuelingWithRest
			}
			seg := domain.Segment{
				Type:          segType,
				StartTime:     currentTime,
				DurationHours: 1.0,
				Status:        domain.DutyOnDutyNotDriving,
			}
			currentTime = currentTime.Add(time.Hour)
			seg.EndTime = currentTime
			segments = append(segments, seg)

			ds.AddOnDutyHours(1.0)
			ds.Refuel()
			if hadBreakDue {
				ds.ResetAccumulativeDriving()
			}

			p.log.WithFields(map[string]interface{}{
				"segment_type":        seg.Type,
				"start_time":          seg.StartTime,
				"combined_with_break": hadBreakDue,
			}).Info("refueling triggered")

			continue
		}

		// 5. HOS rest check — the 14-hour window elapsed, or the
		// 8-day cycle cap reached.
		if ds.NeedsDailyRest(currentTime, rs) {
			segments = append(segments, p.emitDailyRest(&currentTime, ds, rs))
			continue
		}

		// 6. Short break.
		if ds.NeedsShortBreak(rs) {
			seg := domain.Segment{
				Type:          domain.SegmentShortBreak,
				StartTime:     currentTime,
				DurationHours: rs.ShortBreakHours,
				Status:        domain.DutyOffDuty,
			}
			currentTime = currentTime.Add(time.Duration(rs.ShortBreakHours * float64(time.Hour)))
			seg.EndTime = currentTime
			segments = append(segments, seg)
			ds.ResetAccumulativeDriving()

			p.log.WithFields(map[string]interface{}{
				"segment_type": seg.Type,
				"start_time":   seg.StartTime,
			}).Info("short break triggered")

			continue
		}

		// 7. Driving sub-segment.
		available := ds.AvailableDrivingHours(currentTime, rs)
		if cap := rs.AccumulativeDrivingBreakTriggerHours - ds.AccumulativeDrivingHours; cap < available {
			available = cap
		}
		if available < 0 {
			available = 0
		}

		drive := available
		if remainingDuration < drive {
			drive = remainingDuration
		}

		if drive <= 0 {
			segments = append(segments, p.emitDailyRest(&currentTime, ds, rs))
			continue
		}

		driveDistance := drive / remainingDuration * remainingDistance

		seg := domain.Segment{
			Type:          segmentType,
			StartTime:     currentTime,
			DurationHours: drive,
			DistanceMiles: driveDistance,
			Status:        domain.DutyOnDutyDriving,
		}
		currentTime = currentTime.Add(time.Duration(drive * float64(time.Hour)))
		seg.EndTime = currentTime
		segments = append(segments, seg)

		ds.AddDrivingHours(drive)
		ds.AddMiles(driveDistance)

		remainingDuration -= drive
		remainingDistance -= driveDistance

		if remainingDuration < remainingEpsilon {
			remainingDuration = 0
			remainingDistance = 0
		}
	}

	return segments, currentTime
}

func (p *SegmentPlanner) emitDailyRest(currentTime *time.Time, ds *state.DriverState, rs rules.RuleSet) domain.Segment {
	seg := domain.Segment{
		Type:          domain.SegmentDailyRest,
		StartTime:     *currentTime,
		DurationHours: rs.DailyRestHours,
		Status:        domain.DutySleeperBerth,
	}
	*currentTime = currentTime.Add(time.Duration(rs.DailyRestHours * float64(time.Hour)))
	seg.EndTime = *currentTime
	ds.TakeDailyRest()

	p.log.WithFields(map[string]interface{}{
		"segment_type": seg.Type,
		"start_time":   seg.StartTime,
		"duration_hrs": seg.DurationHours,
	}).Info("daily rest inserted")

	return seg
}

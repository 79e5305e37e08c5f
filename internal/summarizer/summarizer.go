// Package summarizer folds a trip's segment list into totals and
// merges the two legs' route geometries.
package summarizer

import (
	"github.com/draymaster/trip-planner/internal/domain"
)

// Summarize folds segments into a RoutePlan's totals. combinedGeometry
// must already be the merged geometry (see MergeGeometry).
func Summarize(segments []domain.Segment, combinedGeometry []domain.Location) domain.RoutePlan {
	var plan domain.RoutePlan
	plan.Segments = segments
	plan.CombinedGeometry = combinedGeometry

	if len(segments) > 0 {
		plan.StartTime = segments[0].StartTime
		plan.EndTime = segments[len(segments)-1].EndTime
	}

	for _, s := range segments {
		plan.TotalDistanceMiles += s.DistanceMiles
		plan.TotalDurationHours += s.DurationHours
		switch s.Status {
		case domain.DutyOnDutyDriving:
			plan.DrivingTime += s.DurationHours
		case domain.DutyOffDuty:
			plan.RestingTime += s.DurationHours
		}
	}

	return plan
}

// MergeGeometry concatenates two legs' polylines, dropping the second
// leg's first point if it exactly equals the first leg's last point.
func MergeGeometry(first, second []domain.Location) []domain.Location {
	if len(first) == 0 {
		return append([]domain.Location{}, second...)
	}
	if len(second) == 0 {
		return append([]domain.Location{}, first...)
	}

	merged := make([]domain.Location, 0, len(first)+len(second))
	merged = append(merged, first...)

	rest := second
	if first[len(first)-1].Equal(second[0]) {
		rest = second[1:]
	}
	merged = append(merged, rest...)

	return merged
}

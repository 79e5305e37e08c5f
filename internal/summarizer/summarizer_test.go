package summarizer

import (
	"testing"
	"time"

	"github.com/draymaster/trip-planner/internal/domain"
)

func TestSummarizeFoldsTotals(t *testing.T) {
	start := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	segments := []domain.Segment{
		{Type: domain.SegmentDriveToPickup, StartTime: start, EndTime: start.Add(2 * time.Hour), DurationHours: 2, DistanceMiles: 130, Status: domain.DutyOnDutyDriving},
		{Type: domain.SegmentPickup, StartTime: start.Add(2 * time.Hour), EndTime: start.Add(3 * time.Hour), DurationHours: 1, Status: domain.DutyOnDutyNotDriving},
		{Type: domain.SegmentShortBreak, StartTime: start.Add(3 * time.Hour), EndTime: start.Add(3*time.Hour + 30*time.Minute), DurationHours: 0.5, Status: domain.DutyOffDuty},
	}

	plan := Summarize(segments, nil)

	if plan.TotalDistanceMiles != 130 {
		t.Fatalf("expected total distance 130, got %f", plan.TotalDistanceMiles)
	}
	if plan.TotalDurationHours != 3.5 {
		t.Fatalf("expected total duration 3.5, got %f", plan.TotalDurationHours)
	}
	if plan.DrivingTime != 2 {
		t.Fatalf("expected driving time 2, got %f", plan.DrivingTime)
	}
	if plan.RestingTime != 0.5 {
		t.Fatalf("expected resting time 0.5 (OffDuty only — SleeperBerth is not counted per spec), got %f", plan.RestingTime)
	}
	if !plan.StartTime.Equal(start) {
		t.Fatalf("expected start time %v, got %v", start, plan.StartTime)
	}
	if !plan.EndTime.Equal(segments[len(segments)-1].EndTime) {
		t.Fatalf("expected end time %v, got %v", segments[len(segments)-1].EndTime, plan.EndTime)
	}
}

func TestMergeGeometryDropsSharedSeamPoint(t *testing.T) {
	shared := domain.Location{Latitude: 36.0, Longitude: -115.0}
	first := []domain.Location{{Latitude: 34.0, Longitude: -118.0}, shared}
	second := []domain.Location{shared, {Latitude: 39.0, Longitude: -104.0}}

	merged := MergeGeometry(first, second)

	if len(merged) != 3 {
		t.Fatalf("expected 3 points after dropping the shared seam, got %d: %+v", len(merged), merged)
	}
}

func TestMergeGeometryKeepsBothWhenNoSharedSeam(t *testing.T) {
	first := []domain.Location{{Latitude: 34.0, Longitude: -118.0}, {Latitude: 35.0, Longitude: -117.0}}
	second := []domain.Location{{Latitude: 36.0, Longitude: -115.0}, {Latitude: 39.0, Longitude: -104.0}}

	merged := MergeGeometry(first, second)

	if len(merged) != 4 {
		t.Fatalf("expected 4 points when legs don't share a seam, got %d", len(merged))
	}
}

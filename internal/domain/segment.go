package domain

import "time"

// SegmentType tags the kind of activity a Segment represents.
type SegmentType string

const (
	SegmentDriveToPickup     SegmentType = "DRIVE_TO_PICKUP"
	SegmentDriveToDropOff    SegmentType = "DRIVE_TO_DROP_OFF"
	SegmentPickup            SegmentType = "PICKUP"
	SegmentDropOff           SegmentType = "DROP_OFF"
	SegmentShortBreak        SegmentType = "SHORT_BREAK"
	SegmentDailyRest         SegmentType = "DAILY_REST"
	SegmentRefueling         SegmentType = "REFUELING"
	SegmentRefuelingWithRest SegmentType = "REFUELING_WITH_BREAK"
	SegmentRestart34h        SegmentType = "RESTART_34H"
)

// DutyStatus is the driver's FMCSA duty classification during a
// Segment.
type DutyStatus string

const (
	DutyOnDutyDriving    DutyStatus = "ON_DUTY_DRIVING"
	DutyOnDutyNotDriving DutyStatus = "ON_DUTY_NOT_DRIVING"
	DutyOffDuty          DutyStatus = "OFF_DUTY"
	DutySleeperBerth     DutyStatus = "SLEEPER_BERTH"
)

// Segment is one immutable, timestamped slice of the trip.
type Segment struct {
	Type          SegmentType
	StartTime     time.Time
	EndTime       time.Time
	DurationHours float64
	DistanceMiles float64
	Location      string
	Status        DutyStatus
}

// segmentDTO is the exposed serialization shape from spec.md §6.
type segmentDTO struct {
	Type          SegmentType `json:"type"`
	StartTime     string      `json:"start_time"`
	EndTime       string      `json:"end_time"`
	DurationHours float64     `json:"duration_hours"`
	DistanceMiles float64     `json:"distance_miles"`
	Location      string      `json:"location"`
	Status        DutyStatus  `json:"status"`
}

// DTO converts the segment to its exposed serialization shape.
func (s Segment) DTO() interface{} {
	return segmentDTO{
		Type:          s.Type,
		StartTime:     s.StartTime.Format(time.RFC3339),
		EndTime:       s.EndTime.Format(time.RFC3339),
		DurationHours: s.DurationHours,
		DistanceMiles: s.DistanceMiles,
		Location:      s.Location,
		Status:        s.Status,
	}
}

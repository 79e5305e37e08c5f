package domain

import (
	"time"

	"github.com/google/uuid"
)

// RoutePlan is the orchestrator's output: an ordered, contiguous list
// of Segments plus rolled-up totals and the combined route geometry.
type RoutePlan struct {
	TripID              uuid.UUID
	Segments            []Segment
	TotalDistanceMiles  float64
	TotalDurationHours  float64
	DrivingTime         float64
	RestingTime         float64
	StartTime           time.Time
	EndTime             time.Time
	CombinedGeometry    []Location
}

// LineString is the exposed GeoJSON-shaped geometry for a RoutePlan.
type LineString struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"`
}

func newLineString(points []Location) LineString {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Latitude, p.Longitude}
	}
	return LineString{Type: "LineString", Coordinates: coords}
}

type routePlanDTO struct {
	Segments           []interface{} `json:"segments"`
	TotalDistanceMiles float64       `json:"total_distance_miles"`
	TotalDurationHours float64       `json:"total_duration_hours"`
	DrivingTime        float64       `json:"driving_time"`
	RestingTime        float64       `json:"resting_time"`
	StartTime          string        `json:"start_time"`
	EndTime            string        `json:"end_time"`
	RouteGeometry      LineString    `json:"route_geometry"`
}

// DTO converts the plan to its exposed serialization shape (spec.md §6).
func (p RoutePlan) DTO() interface{} {
	segments := make([]interface{}, len(p.Segments))
	for i, s := range p.Segments {
		segments[i] = s.DTO()
	}
	return routePlanDTO{
		Segments:           segments,
		TotalDistanceMiles: p.TotalDistanceMiles,
		TotalDurationHours: p.TotalDurationHours,
		DrivingTime:        p.DrivingTime,
		RestingTime:        p.RestingTime,
		StartTime:          p.StartTime.Format(time.RFC3339),
		EndTime:            p.EndTime.Format(time.RFC3339),
		RouteGeometry:      newLineString(p.CombinedGeometry),
	}
}

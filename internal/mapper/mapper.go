// Package mapper specifies, but does not implement, the coordinate
// mapper external collaborator: a component that interpolates a
// Segment's start/end location along its leg's polyline geometry.
// spec.md §1 scopes a concrete implementation out of this repository
// ("specified only via the interface the core consumes or exposes");
// only the seam is defined here.
package mapper

import "github.com/draymaster/trip-planner/internal/domain"

// CoordinateMapper maps a point along a route's geometry to a
// geographic coordinate, given the fraction of the leg's total
// distance already traveled (0.0 at the origin, 1.0 at the
// destination).
type CoordinateMapper interface {
	InterpolateAt(geometry []domain.Location, fractionTraveled float64) domain.Location
}

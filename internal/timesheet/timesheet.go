// Package timesheet specifies, but does not implement, the
// log-format renderer external collaborator: a component that
// projects a RoutePlan's segments into per-day timesheet rows
// suitable for an FMCSA driver's daily log grid. spec.md §1 scopes a
// concrete implementation out of this repository; only the seam is
// defined here.
package timesheet

import "github.com/draymaster/trip-planner/internal/domain"

// Row is one per-day timesheet entry a Renderer produces.
type Row struct {
	Date           string
	Status         domain.DutyStatus
	StartHourOfDay float64
	EndHourOfDay   float64
}

// Renderer projects a RoutePlan's segments into per-day timesheet rows.
type Renderer interface {
	Render(plan domain.RoutePlan) []Row
}

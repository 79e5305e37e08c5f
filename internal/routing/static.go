package routing

import (
	"context"
	"fmt"

	"github.com/draymaster/trip-planner/internal/domain"
)

// StaticAdapter returns pre-seeded legs keyed by origin/destination,
// for tests and for cmd/tripplanner when no live OSRM endpoint is
// configured. Grounded on the other_examples/ delivery-route-api's
// fake-provider pattern, adapted to this domain.
type StaticAdapter struct {
	legs map[legKey]domain.RouteLeg
	err  error
}

type legKey struct {
	origin, destination domain.Location
}

// NewStaticAdapter constructs an empty StaticAdapter.
func NewStaticAdapter() *StaticAdapter {
	return &StaticAdapter{legs: make(map[legKey]domain.RouteLeg)}
}

// WithLeg registers the leg to return for the given origin/destination
// pair and returns the adapter for chaining.
func (a *StaticAdapter) WithLeg(origin, destination domain.Location, leg domain.RouteLeg) *StaticAdapter {
	a.legs[legKey{origin, destination}] = leg
	return a
}

// WithError makes every FetchLeg call fail with err — used to exercise
// the RoutingUnavailable path.
func (a *StaticAdapter) WithError(err error) *StaticAdapter {
	a.err = err
	return a
}

// FetchLeg returns the registered leg for origin/destination, or
// ErrNoRouteFound if none was registered.
func (a *StaticAdapter) FetchLeg(ctx context.Context, origin, destination domain.Location) (domain.RouteLeg, error) {
	if a.err != nil {
		return domain.RouteLeg{}, a.err
	}
	leg, ok := a.legs[legKey{origin, destination}]
	if !ok {
		return domain.RouteLeg{}, fmt.Errorf("%w: no leg registered for %v -> %v", ErrNoRouteFound, origin, destination)
	}
	return leg, nil
}

// Package routing defines the routing-service adapter contract
// (spec.md §6) and two implementations: an OSRM-backed HTTP client
// and a deterministic in-memory StaticAdapter for tests and demos.
package routing

import (
	"context"
	"errors"

	"github.com/draymaster/trip-planner/internal/domain"
)

// Adapter fetches a RouteLeg for an origin/destination pair. This is
// the single operation the core consumes from the routing provider —
// route selection itself is out of scope for this repository.
type Adapter interface {
	FetchLeg(ctx context.Context, origin, destination domain.Location) (domain.RouteLeg, error)
}

// Typed adapter failures, mapped by the orchestrator to
// errors.RoutingUnavailable.
var (
	ErrInvalidResponse = errors.New("routing adapter: invalid response")
	ErrNoRouteFound    = errors.New("routing adapter: no route found")
	ErrTimeout         = errors.New("routing adapter: timeout")
)

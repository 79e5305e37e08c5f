// Package orchestrator composes the segment and activity planners
// into a full trip: current location -> pickup -> drop-off.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/draymaster/trip-planner/internal/domain"
	"github.com/draymaster/trip-planner/internal/planner"
	"github.com/draymaster/trip-planner/internal/routing"
	"github.com/draymaster/trip-planner/internal/rules"
	"github.com/draymaster/trip-planner/internal/state"
	"github.com/draymaster/trip-planner/internal/summarizer"
	tperrors "github.com/draymaster/trip-planner/pkg/errors"
	"github.com/draymaster/trip-planner/pkg/logger"
)

// TripPlanner is constructed once per plan request: it owns the
// locations, rule set, driver's prior cycle load, and the routing
// adapter to fetch legs from.
type TripPlanner struct {
	Current  domain.Location
	Pickup   domain.Location
	DropOff  domain.Location

	RuleSet           rules.RuleSet
	CurrentCycleUsed  float64

	Adapter routing.Adapter

	log *logger.Logger
}

// New constructs a TripPlanner. log may be nil, in which case a
// default logger is used.
func New(current, pickup, dropOff domain.Location, ruleSet rules.RuleSet, currentCycleUsed float64, adapter routing.Adapter, log *logger.Logger) *TripPlanner {
	if log == nil {
		log = logger.Default()
	}
	return &TripPlanner{
		Current:          current,
		Pickup:           pickup,
		DropOff:          dropOff,
		RuleSet:          ruleSet,
		CurrentCycleUsed: currentCycleUsed,
		Adapter:          adapter,
		log:              log,
	}
}

// Plan fetches both route legs concurrently, plans the full
// compliant trip, and returns the resulting RoutePlan. Returns
// *errors.AppError with Code InvalidInput, RoutingUnavailable, or
// InvariantViolation on failure; no partial plan is ever returned.
func (t *TripPlanner) Plan(ctx context.Context, startTime time.Time) (*domain.RoutePlan, error) {
	if err := t.validateInputs(); err != nil {
		return nil, err
	}

	pickupLeg, dropOffLeg, err := t.fetchLegs(ctx)
	if err != nil {
		return nil, err
	}

	ds := state.New(t.CurrentCycleUsed)

	segPlanner := planner.New(t.log)
	actPlanner := planner.NewActivityPlanner()

	var segments []domain.Segment

	pickupSegments, afterPickupDrive := segPlanner.PlanLeg(startTime, domain.SegmentDriveToPickup, pickupLeg, ds, t.RuleSet)
	segments = append(segments, pickupSegments...)

	pickupActivity, afterPickup := actPlanner.HandleActivity(afterPickupDrive, ds, t.RuleSet, domain.SegmentPickup)
	segments = append(segments, pickupActivity)

	dropOffSegments, afterDropOffDrive := segPlanner.PlanLeg(afterPickup, domain.SegmentDriveToDropOff, dropOffLeg, ds, t.RuleSet)
	segments = append(segments, dropOffSegments...)

	dropOffActivity, _ := actPlanner.HandleActivity(afterDropOffDrive, ds, t.RuleSet, domain.SegmentDropOff)
	segments = append(segments, dropOffActivity)

	if err := checkInvariants(segments, ds); err != nil {
		t.log.WithError(err).Warn("leg rejected: invariant violation")
		return nil, err
	}

	combinedGeometry := summarizer.MergeGeometry(pickupLeg.Geometry, dropOffLeg.Geometry)
	plan := summarizer.Summarize(segments, combinedGeometry)
	plan.TripID = uuid.New()

	t.log.WithFields(map[string]interface{}{
		"trip_id":       plan.TripID,
		"segment_count": len(plan.Segments),
		"total_hours":   plan.TotalDurationHours,
		"total_miles":   plan.TotalDistanceMiles,
	}).Info("trip planned")

	return &plan, nil
}

func (t *TripPlanner) validateInputs() error {
	for _, loc := range []domain.Location{t.Current, t.Pickup, t.DropOff} {
		if err := loc.Validate(); err != nil {
			appErr := tperrors.InvalidInput(err.Error())
			t.log.WithError(appErr).Warn("leg rejected: invalid location")
			return appErr
		}
	}
	if t.CurrentCycleUsed < 0 || t.CurrentCycleUsed > t.RuleSet.MaxCycleHours {
		appErr := tperrors.InvalidInput(
			fmt.Sprintf("current_cycle_used must be within [0, %f], got %f", t.RuleSet.MaxCycleHours, t.CurrentCycleUsed),
		)
		t.log.WithError(appErr).Warn("leg rejected: cycle hours out of range")
		return appErr
	}
	return nil
}

// fetchLegs fetches the pickup and drop-off legs concurrently — the
// core's only suspension point (spec.md §5). A cancelled context
// releases both in-flight requests and no partial result is kept.
func (t *TripPlanner) fetchLegs(ctx context.Context) (domain.RouteLeg, domain.RouteLeg, error) {
	var pickupLeg, dropOffLeg domain.RouteLeg

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		leg, err := t.Adapter.FetchLeg(gctx, t.Current, t.Pickup)
		if err != nil {
			logger.WithContext(gctx).WithError(err).Warn("pickup leg fetch failed")
			return err
		}
		pickupLeg = leg
		return nil
	})

	g.Go(func() error {
		leg, err := t.Adapter.FetchLeg(gctx, t.Pickup, t.DropOff)
		if err != nil {
			logger.WithContext(gctx).WithError(err).Warn("drop-off leg fetch failed")
			return err
		}
		dropOffLeg = leg
		return nil
	})

	if err := g.Wait(); err != nil {
		appErr := tperrors.RoutingUnavailable(err)
		t.log.WithError(appErr).Warn("leg rejected: routing unavailable")
		return domain.RouteLeg{}, domain.RouteLeg{}, appErr
	}

	return pickupLeg, dropOffLeg, nil
}

// checkInvariants re-verifies a subset of the properties every
// returned RoutePlan must hold — at least one segment, contiguous
// segments, and no negative slot in the 8-day window — surfacing any
// failure as InvariantViolation rather than a silent bug. The
// duration/distance totals and the HOS-limit properties are not
// re-checked here.
func checkInvariants(segments []domain.Segment, ds *state.DriverState) error {
	if len(segments) == 0 {
		return tperrors.InvariantViolation("plan produced zero segments")
	}

	for i := 0; i+1 < len(segments); i++ {
		if !segments[i].EndTime.Equal(segments[i+1].StartTime) {
			return tperrors.InvariantViolation(
				fmt.Sprintf("segment contiguity violated at index %d: %v != %v", i, segments[i].EndTime, segments[i+1].StartTime),
			).WithDetail("index", i)
		}
	}

	for _, h := range ds.DutyHoursLast8Days {
		if h < 0 {
			return tperrors.InvariantViolation("negative duty-hours slot in 8-day window")
		}
	}

	return nil
}

package service

import (
	"context"
	"sync"
	"time"

	"rider-route-engine/internal/core/logger"
	"rider-route-engine/internal/features/routes/domain"
	"rider-route-engine/internal/features/routes/ports"

	"go.uber.org/zap"
)

// RouteService reconciles the dispatcher's route assignment with the rider's
// raw pending-order pool into one consistent, refreshable route view.
//
// Every call is a fresh, self-contained computation over freshly fetched
// inputs; nothing is cached between calls, so back-to-back refreshes are safe
// and the caller simply keeps the newest result.
type RouteService struct {
	// source is the external dispatch read interface.
	source ports.DispatchSource
	// projector synthesizes ETAs and leg distances.
	projector *Projector
	// depot is the fixed starting coordinate for sequencing and leg chains.
	depot domain.GeoPoint
}

// NewRouteService creates a new RouteService.
func NewRouteService(source ports.DispatchSource, projector *Projector, depot domain.GeoPoint) *RouteService {
	return &RouteService{
		source:    source,
		projector: projector,
		depot:     depot,
	}
}

// Reconcile produces the rider's route for one delivery class at now.
//
// A non-empty server assignment is authoritative and keeps its own ordering;
// otherwise the raw pool is classified, sequenced with the nearest-neighbor
// heuristic, and projected locally. Progression and stats are always
// resolved locally. Fetch failures degrade (no assignment / empty pool) and
// are never returned to the caller, so the result is always a valid route.
func (s *RouteService) Reconcile(ctx context.Context, riderID string, class domain.DeliveryClass, now time.Time) *domain.Route {
	assignment, pool := s.fetchInputs(ctx, riderID, class)

	var (
		stops  []domain.Stop
		origin domain.RouteOrigin
	)

	if assignment != nil && len(assignment.Stops) > 0 {
		origin = domain.OriginServerAssigned
		stops = s.projector.ProjectAssignment(assignment, s.depot, now)
	} else {
		origin = domain.OriginLocalHeuristic
		classified := FilterByClass(pool, class, now)
		sequenced := Sequence(classified, s.depot)
		stops = s.projector.ProjectCandidates(sequenced, class, s.depot, now)
	}

	resolved, activeIdx := ResolveProgression(stops)

	return &domain.Route{
		Stops:           resolved,
		Classification:  class,
		Origin:          origin,
		ActiveStopIndex: activeIdx,
		Stats:           s.computeStats(resolved),
	}
}

// Badges derives the per-class tab counts. A found, non-empty assignment's
// stop count wins for its class (even when every stop is already completed,
// the count still reflects the assigned size); otherwise the classified raw
// pool is counted.
func (s *RouteService) Badges(ctx context.Context, riderID string, now time.Time) domain.BadgeCounts {
	var (
		wg        sync.WaitGroup
		urgent    *domain.Assignment
		scheduled *domain.Assignment
		pool      []domain.StopCandidate
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		urgent = s.fetchAssignment(ctx, riderID, domain.DeliveryClassUrgent)
	}()
	go func() {
		defer wg.Done()
		scheduled = s.fetchAssignment(ctx, riderID, domain.DeliveryClassScheduled)
	}()
	go func() {
		defer wg.Done()
		pool = s.fetchPendingOrders(ctx, riderID)
	}()
	wg.Wait()

	return domain.BadgeCounts{
		Urgent:    badgeCount(urgent, pool, domain.DeliveryClassUrgent, now),
		Scheduled: badgeCount(scheduled, pool, domain.DeliveryClassScheduled, now),
	}
}

// fetchInputs runs the assignment and order-pool fetches concurrently so one
// slow endpoint does not serialize behind the other.
func (s *RouteService) fetchInputs(ctx context.Context, riderID string, class domain.DeliveryClass) (*domain.Assignment, []domain.StopCandidate) {
	var (
		wg         sync.WaitGroup
		assignment *domain.Assignment
		pool       []domain.StopCandidate
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		assignment = s.fetchAssignment(ctx, riderID, class)
	}()
	go func() {
		defer wg.Done()
		pool = s.fetchPendingOrders(ctx, riderID)
	}()
	wg.Wait()

	return assignment, pool
}

// fetchAssignment degrades a failed assignment fetch to "no assignment",
// which triggers the local-heuristic fallback.
func (s *RouteService) fetchAssignment(ctx context.Context, riderID string, class domain.DeliveryClass) *domain.Assignment {
	assignment, err := s.source.GetAssignment(ctx, riderID, class)
	if err != nil {
		logger.Get().Warn("Assignment fetch failed, falling back to local heuristic",
			zap.String("rider_id", riderID),
			zap.String("class", string(class)),
			zap.Error(err),
		)
		return nil
	}
	return assignment
}

// fetchPendingOrders degrades a failed pool fetch to an empty pool rather
// than propagating the error.
func (s *RouteService) fetchPendingOrders(ctx context.Context, riderID string) []domain.StopCandidate {
	pool, err := s.source.GetPendingOrders(ctx, riderID)
	if err != nil {
		logger.Get().Warn("Pending-order fetch failed, degrading to empty pool",
			zap.String("rider_id", riderID),
			zap.Error(err),
		)
		return nil
	}
	return pool
}

func badgeCount(assignment *domain.Assignment, pool []domain.StopCandidate, class domain.DeliveryClass, now time.Time) int {
	if assignment != nil && len(assignment.Stops) > 0 {
		return len(assignment.Stops)
	}
	return CountByClass(pool, class, now)
}

// computeStats derives the route aggregates from the resolved stops. Stats
// are recomputed wholesale every time a route is produced, never mutated
// independently.
func (s *RouteService) computeStats(stops []domain.Stop) domain.RouteStats {
	stats := domain.RouteStats{TotalStops: len(stops)}

	for i, stop := range stops {
		stats.TotalDistanceKm += stop.DistanceFromPreviousKm
		stats.TotalMinutes += stop.ServiceMinutes
		if i > 0 {
			stats.TotalMinutes += s.projector.StopBufferMinutes
		}
		if stop.Progression == domain.ProgressionCompleted {
			stats.CompletedStops++
		} else {
			stats.RemainingStops++
		}
	}

	return stats
}

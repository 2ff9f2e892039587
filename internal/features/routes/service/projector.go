package service

import (
	"sort"
	"time"

	"rider-route-engine/internal/features/routes/domain"
)

const (
	// DefaultServiceMinutes is assumed at the door when an order carries no estimate.
	DefaultServiceMinutes = 12
	// DefaultStopBufferMinutes is the synthetic inter-stop travel allowance.
	DefaultStopBufferMinutes = 12
)

// Projector converts raw order or assignment stop records into normalized,
// ETA-bearing stops. ETAs are synthetic ordering cues built from cumulative
// service and buffer minutes, not routed travel times.
type Projector struct {
	// ServiceMinutes is the fallback per-stop service time.
	ServiceMinutes int
	// StopBufferMinutes is the allowance added before every stop after the first.
	StopBufferMinutes int
}

// NewProjector creates a Projector, substituting defaults for non-positive values.
func NewProjector(serviceMinutes, stopBufferMinutes int) *Projector {
	if serviceMinutes <= 0 {
		serviceMinutes = DefaultServiceMinutes
	}
	if stopBufferMinutes <= 0 {
		stopBufferMinutes = DefaultStopBufferMinutes
	}
	return &Projector{
		ServiceMinutes:    serviceMinutes,
		StopBufferMinutes: stopBufferMinutes,
	}
}

// ProjectCandidates projects an already-sequenced candidate list into stops
// (local-heuristic mode). Leg distances are chained from origin through each
// located stop; unlocated stops report a zero leg and do not move the cursor.
func (p *Projector) ProjectCandidates(sequenced []domain.StopCandidate, class domain.DeliveryClass, origin domain.GeoPoint, now time.Time) []domain.Stop {
	stops := make([]domain.Stop, 0, len(sequenced))

	cursor := origin
	cumulativeMinutes := 0

	for i, c := range sequenced {
		legKm := 0.0
		if c.HasLocation() {
			legKm = domain.DistanceKm(cursor, *c.Geo)
			cursor = *c.Geo
		}

		serviceMinutes := c.EstimatedServiceMinutes
		if serviceMinutes <= 0 {
			serviceMinutes = p.ServiceMinutes
		}

		if i > 0 {
			cumulativeMinutes += p.StopBufferMinutes
		}
		cumulativeMinutes += serviceMinutes

		progression := domain.ProgressionPending
		if domain.IsTerminalStatus(c.RawStatus) {
			progression = domain.ProgressionCompleted
		}

		stops = append(stops, domain.Stop{
			ID:                     c.ID,
			TrackingRef:            c.TrackingRef,
			Recipient:              c.RecipientName,
			Address:                c.Address,
			Geo:                    c.Geo,
			DistanceFromPreviousKm: legKm,
			ServiceMinutes:         serviceMinutes,
			SequenceNumber:         i + 1,
			ETA:                    now.Add(time.Duration(cumulativeMinutes) * time.Minute),
			Classification:         class,
			Progression:            progression,
			SourceOrigin:           domain.OriginLocalHeuristic,
		})
	}

	return stops
}

// ProjectAssignment projects a server assignment's stop list into stops
// (server-assigned mode). The dispatcher's ordinal ordering is authoritative
// and is never re-sequenced; only ETA synthesis and leg distances are
// computed locally.
func (p *Projector) ProjectAssignment(assignment *domain.Assignment, origin domain.GeoPoint, now time.Time) []domain.Stop {
	records := make([]domain.AssignmentStop, len(assignment.Stops))
	copy(records, assignment.Stops)

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Ordinal < records[j].Ordinal
	})

	stops := make([]domain.Stop, 0, len(records))

	cursor := origin
	cumulativeMinutes := 0

	for i, r := range records {
		legKm := 0.0
		if r.Geo != nil && r.Geo.Valid() {
			legKm = domain.DistanceKm(cursor, *r.Geo)
			cursor = *r.Geo
		}

		serviceMinutes := r.ServiceMinutes
		if serviceMinutes <= 0 {
			serviceMinutes = p.ServiceMinutes
		}

		if i > 0 {
			cumulativeMinutes += p.StopBufferMinutes
		}
		cumulativeMinutes += serviceMinutes

		progression := domain.ProgressionPending
		if domain.IsTerminalStatus(r.RawStatus) {
			progression = domain.ProgressionCompleted
		}

		stops = append(stops, domain.Stop{
			ID:                     r.OrderID,
			TrackingRef:            r.TrackingRef,
			Recipient:              r.Recipient,
			Address:                r.Address,
			Geo:                    r.Geo,
			DistanceFromPreviousKm: legKm,
			ServiceMinutes:         serviceMinutes,
			SequenceNumber:         i + 1,
			ETA:                    now.Add(time.Duration(cumulativeMinutes) * time.Minute),
			Classification:         assignment.Class,
			Progression:            progression,
			SourceOrigin:           domain.OriginServerAssigned,
		})
	}

	return stops
}

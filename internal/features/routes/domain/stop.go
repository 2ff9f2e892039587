package domain

import (
	"errors"
	"strings"
	"time"
)

// DeliveryClass partitions pending work into the two rider-facing buckets.
type DeliveryClass string

const (
	// DeliveryClassUrgent covers same-day work: no scheduled time, or a
	// scheduled time before the next local midnight.
	DeliveryClassUrgent DeliveryClass = "URGENT"
	// DeliveryClassScheduled covers work scheduled on or after the next
	// local midnight.
	DeliveryClassScheduled DeliveryClass = "SCHEDULED"
)

// ErrInvalidDeliveryClass is returned when a class string cannot be parsed.
var ErrInvalidDeliveryClass = errors.New("invalid delivery class")

// ParseDeliveryClass parses a case-insensitive class name.
func ParseDeliveryClass(s string) (DeliveryClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "URGENT":
		return DeliveryClassUrgent, nil
	case "SCHEDULED":
		return DeliveryClassScheduled, nil
	default:
		return "", ErrInvalidDeliveryClass
	}
}

// ClassifyTime computes the DeliveryClass of a scheduled delivery time
// relative to now. The rule is a pure function of (scheduled, now) and is
// recomputed on every pass, never cached on the candidate. A missing or zero
// scheduled time always classifies as urgent.
func ClassifyTime(scheduled *time.Time, now time.Time) DeliveryClass {
	if scheduled == nil || scheduled.IsZero() {
		return DeliveryClassUrgent
	}

	// Day boundary is the next local midnight from now.
	y, m, d := now.Date()
	nextMidnight := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())

	if scheduled.Before(nextMidnight) {
		return DeliveryClassUrgent
	}
	return DeliveryClassScheduled
}

// ProgressionState is the rider-visible progression of a sequenced stop.
type ProgressionState string

const (
	// ProgressionCompleted indicates the stop has been delivered.
	ProgressionCompleted ProgressionState = "COMPLETED"
	// ProgressionActive indicates the stop the rider should be heading to now.
	ProgressionActive ProgressionState = "ACTIVE"
	// ProgressionPending indicates a stop later in the sequence.
	ProgressionPending ProgressionState = "PENDING"
)

// RouteOrigin records which source produced a route's stop ordering.
type RouteOrigin string

const (
	// OriginServerAssigned means the ordering came from a dispatcher-pushed assignment.
	OriginServerAssigned RouteOrigin = "SERVER_ASSIGNED"
	// OriginLocalHeuristic means the ordering was computed client-side from the raw pool.
	OriginLocalHeuristic RouteOrigin = "LOCAL_HEURISTIC"
)

// StopCandidate is one raw pending delivery order, prior to sequencing.
// It is produced by the external order source and immutable from the
// engine's point of view.
type StopCandidate struct {
	// ID is the order identifier carried through to the sequenced stop.
	ID string `json:"order_id"`
	// TrackingRef is the shipment tracking reference.
	TrackingRef string `json:"tracking_ref"`
	// RecipientName is the person receiving the delivery.
	RecipientName string `json:"recipient_name"`
	// Address is the delivery address string.
	Address string `json:"address"`
	// Geo is the delivery coordinate, nil when the order has no known location.
	Geo *GeoPoint `json:"geo,omitempty"`
	// ScheduledDeliveryTime is the promised delivery slot, nil for same-day work.
	ScheduledDeliveryTime *time.Time `json:"scheduled_delivery_time,omitempty"`
	// EstimatedServiceMinutes is the expected time at the door; 0 means unspecified.
	EstimatedServiceMinutes int `json:"estimated_service_minutes,omitempty"`
	// RawStatus is the upstream order status string.
	RawStatus string `json:"raw_status"`
}

// Class computes the candidate's DeliveryClass for the given now.
func (c StopCandidate) Class(now time.Time) DeliveryClass {
	return ClassifyTime(c.ScheduledDeliveryTime, now)
}

// HasLocation reports whether the candidate carries a usable coordinate.
func (c StopCandidate) HasLocation() bool {
	return c.Geo != nil && c.Geo.Valid()
}

// Stop is one normalized, sequenced delivery visit. Stops are derived fresh
// on every reconcile and carry no identity across refreshes beyond ID.
type Stop struct {
	// ID is the order identifier from the source order.
	ID string `json:"order_id"`
	// TrackingRef is the shipment tracking reference.
	TrackingRef string `json:"tracking_ref"`
	// Recipient is the person receiving the delivery.
	Recipient string `json:"recipient"`
	// Address is the delivery address, exposed for downstream navigation builders.
	Address string `json:"address"`
	// Geo is the delivery coordinate, nil when unknown.
	Geo *GeoPoint `json:"geo,omitempty"`
	// DistanceFromPreviousKm is the haversine leg from the previous located
	// stop (or the depot for the first). Zero when this stop has no coordinate.
	DistanceFromPreviousKm float64 `json:"distance_from_previous_km"`
	// ServiceMinutes is the expected time at the door.
	ServiceMinutes int `json:"service_minutes"`
	// SequenceNumber is the 1-based visiting position.
	SequenceNumber int `json:"sequence_number"`
	// ETA is the synthetic estimated arrival time, a cue not a guarantee.
	ETA time.Time `json:"eta"`
	// Classification is the delivery class the stop was reconciled under.
	Classification DeliveryClass `json:"classification"`
	// Progression is the resolved progression state.
	Progression ProgressionState `json:"progression"`
	// SourceOrigin records whether the ordering came from the server or the
	// local heuristic.
	SourceOrigin RouteOrigin `json:"source_origin"`
}

// RouteStats is derived wholesale from Route.Stops and never mutated
// independently.
type RouteStats struct {
	// TotalStops is the number of stops in the route.
	TotalStops int `json:"total_stops"`
	// TotalDistanceKm is the sum of the per-stop legs.
	TotalDistanceKm float64 `json:"total_distance_km"`
	// TotalMinutes is the cumulative service plus inter-stop buffer minutes.
	TotalMinutes int `json:"total_minutes"`
	// CompletedStops counts stops already delivered.
	CompletedStops int `json:"completed_stops"`
	// RemainingStops counts stops not yet delivered.
	RemainingStops int `json:"remaining_stops"`
}

// Route is the reconciled, ready-to-display stop sequence for one rider and
// one delivery class. Routes are recomputed wholesale on every refresh,
// never diffed or patched in place.
type Route struct {
	// Stops is the ordered stop sequence.
	Stops []Stop `json:"stops"`
	// Classification is the delivery class this route was reconciled for.
	Classification DeliveryClass `json:"classification"`
	// Origin records which source produced the ordering.
	Origin RouteOrigin `json:"origin"`
	// ActiveStopIndex is the index of the ACTIVE stop, -1 when every stop is
	// completed or the route is empty.
	ActiveStopIndex int `json:"active_stop_index"`
	// Stats holds the derived aggregates.
	Stats RouteStats `json:"stats"`
}

// BadgeCounts holds the per-class stop counts shown on the rider's tabs
// before a route screen is even opened.
type BadgeCounts struct {
	// Urgent is the stop count for the urgent tab.
	Urgent int `json:"urgent"`
	// Scheduled is the stop count for the scheduled tab.
	Scheduled int `json:"scheduled"`
}

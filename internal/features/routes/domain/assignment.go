package domain

import "strings"

// AssignmentStatus is the dispatcher-side lifecycle state of a route assignment.
type AssignmentStatus string

const (
	// AssignmentStatusActive indicates the rider is currently working the assignment.
	AssignmentStatusActive AssignmentStatus = "ACTIVE"
	// AssignmentStatusPending indicates the assignment is pushed but not started.
	AssignmentStatusPending AssignmentStatus = "PENDING"
	// AssignmentStatusDraft indicates the dispatcher is still editing the assignment.
	AssignmentStatusDraft AssignmentStatus = "DRAFT"
)

// AssignableStatuses are the statuses under which an assignment is considered
// authoritative for route reconciliation.
var AssignableStatuses = []AssignmentStatus{
	AssignmentStatusActive,
	AssignmentStatusPending,
	AssignmentStatusDraft,
}

// Assignment is an authoritative stop ordering pushed by the backend
// dispatcher. When a non-empty assignment exists for a class, its ordering
// wins over the local heuristic.
type Assignment struct {
	// ID is the dispatcher's assignment identifier.
	ID string `json:"assignment_id"`
	// RiderID is the rider the assignment belongs to.
	RiderID string `json:"rider_id"`
	// Class is the delivery class the assignment covers.
	Class DeliveryClass `json:"class"`
	// Status is the dispatcher-side lifecycle state.
	Status AssignmentStatus `json:"status"`
	// Stops is the ordered list of assignment stops.
	Stops []AssignmentStop `json:"stops"`
}

// AssignmentStop is one stop record inside a server assignment. Ordering and
// per-stop metadata come from the dispatcher and are never re-sequenced
// locally.
type AssignmentStop struct {
	// OrderID links back to the underlying order.
	OrderID string `json:"order_id"`
	// TrackingRef is the shipment tracking reference.
	TrackingRef string `json:"tracking_ref"`
	// Recipient is the person receiving the delivery.
	Recipient string `json:"recipient"`
	// Address is the delivery address string.
	Address string `json:"address"`
	// Geo is the delivery coordinate, nil when unknown.
	Geo *GeoPoint `json:"geo,omitempty"`
	// Ordinal is the dispatcher-assigned visiting position (1-based).
	Ordinal int `json:"ordinal"`
	// RawStatus is the dispatcher's per-stop delivery status.
	RawStatus string `json:"raw_status"`
	// ServiceMinutes is the expected time at the door; 0 means unspecified.
	ServiceMinutes int `json:"service_minutes,omitempty"`
}

// IsTerminalStatus reports whether a raw order or stop status indicates the
// delivery already happened.
func IsTerminalStatus(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "delivered", "completed":
		return true
	default:
		return false
	}
}

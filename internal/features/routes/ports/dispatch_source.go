package ports

import (
	"context"

	"rider-route-engine/internal/features/routes/domain"
)

// DispatchSource defines the interface for reading route assignments and the
// pending-order pool from the external dispatch service.
// This is a Secondary Port (Driven Port).
type DispatchSource interface {
	// GetAssignment returns the rider's route assignment for the given class,
	// restricted to the assignable statuses (active, pending, draft).
	// Returns nil when no matching assignment exists.
	GetAssignment(ctx context.Context, riderID string, class domain.DeliveryClass) (*domain.Assignment, error)

	// GetPendingOrders returns the rider's currently unresolved delivery
	// orders, unclassified and unsequenced.
	GetPendingOrders(ctx context.Context, riderID string) ([]domain.StopCandidate, error)
}

// ProgressReporter defines the interface for pushing pickup and delivery
// completion effects back to the dispatch service.
type ProgressReporter interface {
	// MarkPickedUp records that the rider collected the order's parcel.
	MarkPickedUp(ctx context.Context, orderID string) error

	// MarkDelivered records that the order was delivered at its stop.
	MarkDelivered(ctx context.Context, orderID string) error
}

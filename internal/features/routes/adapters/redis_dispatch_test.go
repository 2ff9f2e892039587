package adapters

import (
	"context"
	"testing"

	"rider-route-engine/internal/features/routes/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRedisDispatchAdapter_GetAssignment verifies class and status filtering
// over a published snapshot.
func TestRedisDispatchAdapter_GetAssignment(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	snapshot := `[
		{
			"assignment_id": "as-1",
			"rider_id": "rider-7",
			"class": "SCHEDULED",
			"status": "ACTIVE",
			"stops": [{"order_id": "s-1", "ordinal": 1, "raw_status": "pending"}]
		},
		{
			"assignment_id": "as-2",
			"rider_id": "rider-7",
			"class": "URGENT",
			"status": "CANCELLED",
			"stops": [{"order_id": "u-0", "ordinal": 1, "raw_status": "pending"}]
		},
		{
			"assignment_id": "as-3",
			"rider_id": "rider-7",
			"class": "URGENT",
			"status": "PENDING",
			"stops": [
				{"order_id": "u-1", "ordinal": 1, "raw_status": "pending"},
				{"order_id": "u-2", "ordinal": 2, "raw_status": "pending"}
			]
		}
	]`
	require.NoError(t, mr.Set("dispatch:assignments:rider-7", snapshot))

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	ctx := context.Background()

	// Cancelled assignment is skipped in favor of the assignable one.
	urgent, err := adapter.GetAssignment(ctx, "rider-7", domain.DeliveryClassUrgent)
	require.NoError(t, err)
	require.NotNil(t, urgent)
	assert.Equal(t, "as-3", urgent.ID)
	assert.Len(t, urgent.Stops, 2)

	scheduled, err := adapter.GetAssignment(ctx, "rider-7", domain.DeliveryClassScheduled)
	require.NoError(t, err)
	require.NotNil(t, scheduled)
	assert.Equal(t, "as-1", scheduled.ID)
}

// TestRedisDispatchAdapter_GetAssignment_MissingKey verifies a rider with no
// snapshot reads as "no assignment" rather than an error.
func TestRedisDispatchAdapter_GetAssignment_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	assignment, err := adapter.GetAssignment(context.Background(), "rider-unknown", domain.DeliveryClassUrgent)

	require.NoError(t, err)
	assert.Nil(t, assignment)
}

// TestRedisDispatchAdapter_GetPendingOrders verifies order snapshot decoding.
func TestRedisDispatchAdapter_GetPendingOrders(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	snapshot := `[
		{"order_id": "ord-1", "recipient_name": "Ayesha Khan", "address": "14 Khayaban-e-Ittehad", "geo": {"lat": 24.8138, "lng": 67.0572}, "raw_status": "pending"},
		{"order_id": "ord-2", "recipient_name": "Walk-in", "address": "unknown", "raw_status": "pending"}
	]`
	require.NoError(t, mr.Set("dispatch:orders:rider-7", snapshot))

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	orders, err := adapter.GetPendingOrders(context.Background(), "rider-7")

	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord-1", orders[0].ID)
	require.NotNil(t, orders[0].Geo)
	assert.InDelta(t, 24.8138, orders[0].Geo.Latitude, 1e-9)
	assert.False(t, orders[1].HasLocation())
}

// TestRedisDispatchAdapter_GetPendingOrders_MissingKey verifies an absent
// snapshot degrades to an empty pool.
func TestRedisDispatchAdapter_GetPendingOrders_MissingKey(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	orders, err := adapter.GetPendingOrders(context.Background(), "rider-unknown")

	require.NoError(t, err)
	assert.Empty(t, orders)
}

// TestRedisDispatchAdapter_BadSnapshot verifies malformed snapshots surface
// as errors for the service layer to degrade on.
func TestRedisDispatchAdapter_BadSnapshot(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	require.NoError(t, mr.Set("dispatch:orders:rider-7", "not-json"))

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	_, err = adapter.GetPendingOrders(context.Background(), "rider-7")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode order snapshot")
}

// TestRedisDispatchAdapter_Ping verifies reachability probing.
func TestRedisDispatchAdapter_Ping(t *testing.T) {
	mr := miniredis.RunT(t)
	defer mr.Close()

	adapter, err := NewRedisDispatchAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	defer adapter.Close()

	assert.NoError(t, adapter.Ping(context.Background()))
}

package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"rider-route-engine/internal/features/routes/domain"

	"github.com/redis/go-redis/v9"
)

// Key layout written by the dispatcher:
//
//	dispatch:assignments:<riderID>  JSON array of assignments across classes
//	dispatch:orders:<riderID>       JSON array of pending orders
const (
	assignmentKeyPrefix = "dispatch:assignments:"
	orderKeyPrefix      = "dispatch:orders:"
)

// RedisDispatchAdapter implements the DispatchSource interface over the
// snapshot keys the dispatcher publishes per rider. It is read-only: the
// engine never writes to the snapshot store.
type RedisDispatchAdapter struct {
	client *redis.Client
}

// NewRedisDispatchAdapter creates a new Redis-backed dispatch source.
// The redisURL should be in the format: redis://[:password@]host[:port][/database]
func NewRedisDispatchAdapter(redisURL string) (*RedisDispatchAdapter, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	return &RedisDispatchAdapter{client: redis.NewClient(opts)}, nil
}

// GetAssignment reads the rider's snapshot and returns the first assignable
// assignment matching class, or nil when none exists. A missing snapshot key
// means the dispatcher has pushed nothing for this rider.
func (r *RedisDispatchAdapter) GetAssignment(ctx context.Context, riderID string, class domain.DeliveryClass) (*domain.Assignment, error) {
	data, err := r.client.Get(ctx, assignmentKeyPrefix+riderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read assignment snapshot: %w", err)
	}

	var assignments []domain.Assignment
	if err := json.Unmarshal(data, &assignments); err != nil {
		return nil, fmt.Errorf("decode assignment snapshot: %w", err)
	}

	for i := range assignments {
		if assignments[i].Class != class {
			continue
		}
		if !isAssignable(assignments[i].Status) {
			continue
		}
		return &assignments[i], nil
	}
	return nil, nil
}

// GetPendingOrders reads the rider's pending-order snapshot. A missing key
// degrades to an empty pool.
func (r *RedisDispatchAdapter) GetPendingOrders(ctx context.Context, riderID string) ([]domain.StopCandidate, error) {
	data, err := r.client.Get(ctx, orderKeyPrefix+riderID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read order snapshot: %w", err)
	}

	var candidates []domain.StopCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return nil, fmt.Errorf("decode order snapshot: %w", err)
	}
	return candidates, nil
}

// Ping checks if the snapshot store is reachable.
func (r *RedisDispatchAdapter) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close closes the Redis connection.
func (r *RedisDispatchAdapter) Close() error {
	return r.client.Close()
}

func isAssignable(status domain.AssignmentStatus) bool {
	for _, s := range domain.AssignableStatuses {
		if status == s {
			return true
		}
	}
	return false
}

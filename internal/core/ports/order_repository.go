// Package ports defines repository interfaces for the delivery engine.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
)

// OrderFilter narrows order listings. Zero values mean "no constraint";
// Search matches customer name, phone, or address substrings.
type OrderFilter struct {
	Status       *order.Status
	DeliveryDate *time.Time
	Search       string
	Page         int
	PageSize     int
}

// OrderRepository defines the persistence contract for delivery order aggregates.
//
// Mutation goes through exactly two doors: Add for fresh orders and
// UpdateInStatus for status transitions. UpdateInStatus is a compare-and-set on
// (id, expected status): it persists the aggregate only if the stored row is
// still in the expected status, so two concurrent transitions on the same order
// cannot both succeed. Orders are never deleted; terminal orders are retained
// for audit and reporting.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// Returns a ConflictError when a non-reschedule order for the same
	// (subscription, delivery date) already exists, which makes concurrent or
	// repeated schedule generation safe.
	Add(ctx context.Context, aggregate *order.DeliveryOrder) error

	// UpdateInStatus persists changes to an existing order only if its stored
	// status still equals expectedStatus. Returns a ConflictError when the
	// order has been moved on by another caller, or an ObjectNotFoundError
	// when no such order exists.
	UpdateInStatus(ctx context.Context, aggregate *order.DeliveryOrder, expectedStatus order.Status) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.DeliveryOrder, error)

	// GetByFilter retrieves a page of orders matching the filter along with the
	// total match count, ordered by delivery date then creation time.
	GetByFilter(ctx context.Context, filter OrderFilter) ([]*order.DeliveryOrder, int64, error)

	// GetAllForAgent retrieves the orders assigned to an agent, optionally
	// restricted to a set of statuses. An empty status set means all statuses.
	GetAllForAgent(ctx context.Context, agentID kernel.UUID, statuses []order.Status) ([]*order.DeliveryOrder, error)

	// GetChildOf retrieves the reschedule successor of a failed order.
	// Returns an ObjectNotFoundError when no successor exists.
	GetChildOf(ctx context.Context, parentID kernel.UUID) (*order.DeliveryOrder, error)

	// ExistsForSubscriptionOnDate reports whether a non-reschedule order exists
	// for the subscription on the given date. Used by the schedule generator
	// as a cheap pre-check; the unique constraint behind Add remains the
	// authoritative guard.
	ExistsForSubscriptionOnDate(ctx context.Context, subscriptionID kernel.UUID, date time.Time) (bool, error)
}

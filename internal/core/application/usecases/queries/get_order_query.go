package queries

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its reschedule lineage: the chain of
// predecessors back to the original order, and the successor if the order has
// failed and been rescheduled.
//
// Admins may read any order; agents only orders assigned to them.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to read a single order.
func NewGetOrderQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetOrderQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderID returns the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is one order plus its retry lineage.
type GetOrderQueryResponse struct {
	Order OrderResponse
	// SuccessorID is the reschedule successor's ID, when one exists.
	SuccessorID *kernel.UUID
	// Lineage lists predecessor orders from the original to the direct
	// parent, empty for first-attempt orders.
	Lineage []OrderResponse
}

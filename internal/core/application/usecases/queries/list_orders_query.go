// Package queries contains read-only operations over the order store.
// Queries bypass the domain model and read the database directly, returning
// flat response structures shaped for the admin and agent surfaces.
package queries

import (
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListOrdersQuery retrieves a filtered, paginated page of orders for the
// admin dashboard. Admin only.
//
// Example:
//
//	query, err := NewListOrdersQuery(actor, ListOrdersFilter{Status: "pending", Page: 1})
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	actor  kernel.Actor
	filter ListOrdersFilter

	guard guard.ConstructorGuard
}

// ListOrdersFilter narrows the listing. Zero values mean "no filter";
// Page and PageSize are normalized to sane defaults.
type ListOrdersFilter struct {
	// Status restricts to one lifecycle status when non-empty.
	Status string
	// DeliveryDate restricts to orders due on this date when non-zero.
	DeliveryDate time.Time
	// Search matches customer name, phone, or address, case-insensitively.
	Search string

	Page     int
	PageSize int
}

// NewListOrdersQuery creates a query to list orders. An unknown status in the
// filter is rejected up front rather than silently matching nothing.
func NewListOrdersQuery(actor kernel.Actor, filter ListOrdersFilter) (ListOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if filter.Status != "" {
		if _, err := order.StatusFromString(filter.Status); err != nil {
			return ListOrdersQuery{}, err
		}
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	if filter.PageSize > maxPageSize {
		filter.PageSize = maxPageSize
	}

	return ListOrdersQuery{
		actor:  actor,
		filter: filter,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Actor returns the caller.
func (q ListOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// Filter returns the normalized filter.
func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// OrderResponse is the flat order representation returned by queries.
type OrderResponse struct {
	ID             kernel.UUID
	SubscriptionID *kernel.UUID
	ParentOrderID  *kernel.UUID
	CustomerName   string
	CustomerPhone  string
	Address        string
	PlanName       string
	PlanSize       string
	PlanFrequency  string
	DeliveryDate   time.Time
	Status         string
	AgentID        *kernel.UUID
	RetryCount     int
	AssignedAt     *time.Time
	DeliveredAt    *time.Time
	FailedAt       *time.Time
	FailureReason  string
	AgentNotes     string
	CreatedAt      time.Time
}

// ListOrdersQueryResponse is one page of orders plus the total match count.
type ListOrdersQueryResponse struct {
	Orders   []OrderResponse
	Total    int64
	Page     int
	PageSize int
}

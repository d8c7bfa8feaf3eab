package queries

import (
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
	"gasdelivery/internal/pkg/guard"
)

var ErrTodayStatsQueryIsNotConstructed = errors.New(
	"TodayStatsQuery must be created via NewTodayStatsQuery constructor",
)

// TodayStatsQuery aggregates order counts for one delivery date, feeding the
// admin dashboard's daily overview. Admin only.
//
// Example:
//
//	query, err := NewTodayStatsQuery(actor, time.Now())
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTodayStatsQueryHandler(db)
//	stats, err := handler.Handle(ctx, query)
type TodayStatsQuery struct {
	actor kernel.Actor
	date  time.Time

	guard guard.ConstructorGuard
}

// NewTodayStatsQuery creates a stats query for the given date.
func NewTodayStatsQuery(actor kernel.Actor, date time.Time) (TodayStatsQuery, error) {
	if err := actor.Validate(); err != nil {
		return TodayStatsQuery{}, err
	}
	if date.IsZero() {
		return TodayStatsQuery{}, errs.NewValueIsRequiredError("date")
	}

	return TodayStatsQuery{
		actor: actor,
		date:  date,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TodayStatsQuery) Validate() error {
	return q.guard.Validate(ErrTodayStatsQueryIsNotConstructed)
}

// Actor returns the caller.
func (q TodayStatsQuery) Actor() kernel.Actor {
	return q.actor
}

// Date returns the delivery date being aggregated.
func (q TodayStatsQuery) Date() time.Time {
	return q.date
}

// TodayStatsQueryResponse is the per-status order count for one delivery date.
// Total covers the workload statuses only; cancelled orders are reported
// separately and never counted into it, so Total always equals the sum of the
// six workload counters.
type TodayStatsQueryResponse struct {
	Date           time.Time
	Total          int64
	Pending        int64
	Assigned       int64
	Accepted       int64
	OutForDelivery int64
	Delivered      int64
	Failed         int64
	Cancelled      int64
}

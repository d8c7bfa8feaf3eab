package services

import (
	"time"

	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/pkg/errs"
)

// ErrHorizonIsInvalid is returned when the requested generation horizon is not
// a positive number of days.
var ErrHorizonIsInvalid = errs.NewValueIsInvalidError("daysAhead must be positive")

// ScheduleCalendar is a domain service that computes the due delivery dates a
// subscription implies over a generation horizon.
//
// The calendar is pure: it never touches the store. The generator walks the
// returned dates and creates orders for those without an existing
// (subscription, date) order, relying on the store's uniqueness guarantee for
// idempotency.
//
// Example usage:
//
//	calendar := services.NewScheduleCalendar()
//	dates, err := calendar.DueDates(sub, today, 7)
//	if err != nil {
//	    return err
//	}
//	for _, date := range dates {
//	    // create a pending order for (sub.ID(), date) if none exists
//	}
type ScheduleCalendar struct{}

// NewScheduleCalendar creates a new ScheduleCalendar instance.
func NewScheduleCalendar() ScheduleCalendar {
	return ScheduleCalendar{}
}

// DueDates returns the dates in the half-open window [from, from+daysAhead)
// on which the subscription implies a delivery, in ascending order. The from
// date is normalized to midnight UTC; daysAhead must be positive. Inactive
// subscriptions yield no dates.
func (c ScheduleCalendar) DueDates(
	sub *subscription.Subscription,
	from time.Time,
	daysAhead int,
) ([]time.Time, error) {
	if err := sub.Validate(); err != nil {
		return nil, err
	}
	if daysAhead <= 0 {
		return nil, ErrHorizonIsInvalid
	}
	if !sub.IsActive() {
		return nil, nil
	}

	frequency := sub.Plan().Frequency
	start := sub.StartDate()
	day := subscription.NormalizeDate(from)

	var due []time.Time
	for i := 0; i < daysAhead; i++ {
		if frequency.IsDueOn(start, day) {
			due = append(due, day)
		}
		day = day.AddDate(0, 0, 1)
	}

	return due, nil
}

package commands

import (
	"context"
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/services"
	"gasdelivery/internal/pkg/errs"
)

// GenerateSchedulesCommandHandler materializes pending orders for active
// subscriptions over the requested horizon.
//
// Generation is idempotent: dates that already have an order for the
// subscription are skipped, and concurrent generators racing on the same date
// are resolved by the store's uniqueness guarantee, with the loser's insert
// silently skipped. Running the same horizon twice creates nothing new.
type GenerateSchedulesCommandHandler struct {
	uowFactory GenerationUoWFactory
	calendar   services.ScheduleCalendar
}

// NewGenerateSchedulesCommandHandler creates a handler for schedule generation.
func NewGenerateSchedulesCommandHandler(
	uowFactory GenerationUoWFactory,
	calendar services.ScheduleCalendar,
) GenerateSchedulesCommandHandler {
	return GenerateSchedulesCommandHandler{
		uowFactory: uowFactory,
		calendar:   calendar,
	}
}

// Handle walks all active subscriptions, computes their due dates within the
// window, and creates a pending order for each date that has none yet.
// Returns the number of orders created. Admin only.
func (h *GenerateSchedulesCommandHandler) Handle(ctx context.Context, cmd GenerateSchedulesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if !cmd.Actor().IsAdmin() {
		return 0, errs.NewForbiddenError("GenerateSchedules", cmd.Actor().ID().String())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriptions, err := uow.SubscriptionRepository().GetAllActive(ctx)
	if err != nil {
		return 0, err
	}

	orderRepo := uow.OrderRepository()
	created := 0
	for _, sub := range subscriptions {
		dueDates, err := h.calendar.DueDates(sub, cmd.From(), cmd.DaysAhead())
		if err != nil {
			return 0, err
		}

		for _, dueDate := range dueDates {
			exists, err := orderRepo.ExistsForSubscriptionOnDate(ctx, sub.ID(), dueDate)
			if err != nil {
				return 0, err
			}
			if exists {
				continue
			}

			newOrder, err := order.NewOrder(
				kernel.NewUUID(),
				sub.ID(),
				order.CustomerSnapshot{
					Name:    sub.CustomerName(),
					Phone:   sub.CustomerPhone(),
					Address: sub.Address(),
				},
				sub.Plan(),
				dueDate,
				cmd.From(),
			)
			if err != nil {
				return 0, err
			}

			if err := orderRepo.Add(ctx, newOrder); err != nil {
				// A concurrent generator inserted this date first.
				var conflictErr *errs.ConflictError
				if errors.As(err, &conflictErr) {
					continue
				}
				return 0, err
			}
			created++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return created, nil
}

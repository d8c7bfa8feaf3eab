package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
)

// CancelOrderCommandHandler withdraws pending orders.
// Cancelling is admin only and a dead end: cancelled orders never reschedule.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.DeliveryOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := deliveryOrder.Status()
	if err := deliveryOrder.Cancel(cmd.Actor()); err != nil {
		return nil, err
	}

	if err := orderRepo.UpdateInStatus(ctx, deliveryOrder, previousStatus); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deliveryOrder, nil
}

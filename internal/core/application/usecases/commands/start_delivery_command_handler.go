package commands

import (
	"context"

	"gasdelivery/internal/core/domain/model/order"
)

// StartDeliveryCommandHandler moves an accepted order to out_for_delivery.
// Only the assigned agent may start the delivery.
type StartDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(uowFactory OrderUoWFactory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-delivery command.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) (*order.DeliveryOrder, error) {
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
	if err := deliveryOrder.StartDelivery(cmd.Actor()); err != nil {
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

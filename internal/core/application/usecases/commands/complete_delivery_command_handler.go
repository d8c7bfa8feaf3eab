package commands

import (
	"context"
	"time"

	"gasdelivery/internal/core/domain/model/order"
)

// CompleteDeliveryCommandHandler records a successful delivery.
// Allowed from accepted or out_for_delivery, by the assigned agent only.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) (*order.DeliveryOrder, error) {
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
	if err := deliveryOrder.Deliver(cmd.Actor(), cmd.Notes(), time.Now().UTC()); err != nil {
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

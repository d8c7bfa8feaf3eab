package commands

import (
	"context"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
)

// FailDeliveryCommandHandler records a failed delivery attempt and creates its
// reschedule successor.
//
// Both writes happen in one transaction: the order never ends up failed
// without a successor, and no successor appears without its parent's failing
// transition being persisted. The successor is a fresh pending order dated the
// day after the failed attempt, returned to the unassigned pool.
type FailDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFailDeliveryCommandHandler creates a handler for delivery failures.
func NewFailDeliveryCommandHandler(uowFactory OrderUoWFactory) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command and returns the failed order; its
// successor is reachable through the order's lineage.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) (*order.DeliveryOrder, error) {
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

	now := time.Now().UTC()
	previousStatus := deliveryOrder.Status()
	if err := deliveryOrder.Fail(cmd.Actor(), cmd.Reason(), cmd.Notes(), now); err != nil {
		return nil, err
	}

	if err := orderRepo.UpdateInStatus(ctx, deliveryOrder, previousStatus); err != nil {
		return nil, err
	}

	successor, err := deliveryOrder.Reschedule(kernel.NewUUID(), now)
	if err != nil {
		return nil, err
	}

	if err := orderRepo.Add(ctx, successor); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return deliveryOrder, nil
}

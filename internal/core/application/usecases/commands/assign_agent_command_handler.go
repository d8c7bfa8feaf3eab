package commands

import (
	"context"
	"time"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"
)

// AssignAgentCommandHandler binds pending orders to delivery agents.
// The target must exist in the directory, hold the delivery role, and be
// active; the order must be pending. Admin only.
type AssignAgentCommandHandler struct {
	uowFactory DispatchUoWFactory
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory DispatchUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command. The persisted update is guarded by
// the order's pending status, so of two admins assigning the same order
// concurrently exactly one wins and the other receives a ConflictError.
func (h *AssignAgentCommandHandler) Handle(ctx context.Context, cmd AssignAgentCommand) (*order.DeliveryOrder, error) {
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

	assignee, err := uow.AgentRepository().Get(ctx, cmd.AgentID())
	if err != nil {
		return nil, err
	}
	if !assignee.CanDeliver() {
		return nil, errs.NewValueIsInvalidError("agentID")
	}

	orderRepo := uow.OrderRepository()
	deliveryOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	previousStatus := deliveryOrder.Status()
	if err := deliveryOrder.Assign(cmd.Actor(), assignee.ID(), time.Now().UTC()); err != nil {
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

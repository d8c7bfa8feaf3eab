package commands_test

import (
	"testing"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	agentID := kernel.NewUUID()
	testOrder := acceptedOrder(t, agentID)
	cmd, err := commands.NewStartDeliveryCommand(deliveryActor(t, agentID), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Accepted).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, testOrder, updated)
	assert.Equal(t, order.OutForDelivery, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_NotAccepted_ReturnsInvalidTransition(t *testing.T) {
	ctx := t.Context()

	// Assigned but not yet accepted: the agent must accept first.
	agentID := kernel.NewUUID()
	testOrder := assignedOrder(t, agentID)
	cmd, err := commands.NewStartDeliveryCommand(deliveryActor(t, agentID), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Assigned, testOrder.Status())
	uow.AssertExpectations(t)
}

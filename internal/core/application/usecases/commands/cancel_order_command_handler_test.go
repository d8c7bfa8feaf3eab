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

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(adminActor(t), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, testOrder, updated)
	assert.Equal(t, order.Cancelled, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AssignedOrder_ReturnsInvalidTransition(t *testing.T) {
	ctx := t.Context()

	testOrder := assignedOrder(t, kernel.NewUUID())
	cmd, err := commands.NewCancelOrderCommand(adminActor(t), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var transitionErr *errs.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, order.Assigned, testOrder.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_AgentActor_ReturnsForbidden(t *testing.T) {
	ctx := t.Context()

	testOrder := pendingOrder(t)
	cmd, err := commands.NewCancelOrderCommand(deliveryActor(t, kernel.NewUUID()), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var forbiddenErr *errs.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, order.Pending, testOrder.Status())
	uow.AssertExpectations(t)
}

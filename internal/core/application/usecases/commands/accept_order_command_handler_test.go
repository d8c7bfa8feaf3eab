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

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	agentID := kernel.NewUUID()
	testOrder := assignedOrder(t, agentID)
	cmd, err := commands.NewAcceptOrderCommand(deliveryActor(t, agentID), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orderRepo.On("UpdateInStatus", ctx, testOrder, order.Assigned).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, testOrder, updated)
	assert.Equal(t, order.Accepted, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_DifferentAgent_ReturnsForbidden(t *testing.T) {
	ctx := t.Context()

	testOrder := assignedOrder(t, kernel.NewUUID())
	otherAgent := deliveryActor(t, kernel.NewUUID())
	cmd, err := commands.NewAcceptOrderCommand(otherAgent, testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var forbiddenErr *errs.ForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)
	assert.Equal(t, order.Assigned, testOrder.Status())
	orderRepo.AssertNotCalled(t, "UpdateInStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_ConcurrentTransition_ReturnsConflict(t *testing.T) {
	ctx := t.Context()

	agentID := kernel.NewUUID()
	testOrder := assignedOrder(t, agentID)
	cmd, err := commands.NewAcceptOrderCommand(deliveryActor(t, agentID), testOrder.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("UpdateInStatus", ctx, testOrder, order.Assigned).
		Return(errs.NewConflictError("order", testOrder.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptOrderCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	var conflictErr *errs.ConflictError
	require.ErrorAs(t, err, &conflictErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

package commands_test

import (
	"context"
	"time"

	"gasdelivery/internal/core/application/usecases/commands"
	"gasdelivery/internal/core/domain/model/agent"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.DeliveryOrder) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) UpdateInStatus(
	ctx context.Context, o *order.DeliveryOrder, expectedStatus order.Status,
) error {
	args := m.Called(ctx, o, expectedStatus)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) GetByFilter(
	ctx context.Context, filter ports.OrderFilter,
) ([]*order.DeliveryOrder, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) GetAllForAgent(
	ctx context.Context, agentID kernel.UUID, statuses []order.Status,
) ([]*order.DeliveryOrder, error) {
	args := m.Called(ctx, agentID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) GetChildOf(ctx context.Context, parentID kernel.UUID) (*order.DeliveryOrder, error) {
	args := m.Called(ctx, parentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.DeliveryOrder), args.Error(1)
}

func (m *MockOrderRepository) ExistsForSubscriptionOnDate(
	ctx context.Context, subscriptionID kernel.UUID, date time.Time,
) (bool, error) {
	args := m.Called(ctx, subscriptionID, date)
	return args.Bool(0), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetAllByRole(ctx context.Context, role kernel.Role) ([]*agent.Agent, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockSubscriptionRepository struct{ mock.Mock }

func (m *MockSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetAllActive(ctx context.Context) ([]*subscription.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

// MockUoW satisfies every unit of work interface the command handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) SubscriptionRepository() ports.SubscriptionRepository {
	args := m.Called()
	return args.Get(0).(ports.SubscriptionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDispatchUoWFactory struct{ mock.Mock }

func (m *MockDispatchUoWFactory) Create() commands.DispatchUoW {
	args := m.Called()
	return args.Get(0).(commands.DispatchUoW)
}

type MockGenerationUoWFactory struct{ mock.Mock }

func (m *MockGenerationUoWFactory) Create() commands.GenerationUoW {
	args := m.Called()
	return args.Get(0).(commands.GenerationUoW)
}

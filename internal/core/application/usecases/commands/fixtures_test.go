package commands_test

import (
	"testing"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/subscription"

	"github.com/stretchr/testify/require"
)

// testMonday is 2026-03-02, a Monday, used to pin schedule arithmetic.
var testMonday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func adminActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleAdmin)
	require.NoError(t, err)
	return actor
}

func deliveryActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, kernel.RoleDelivery)
	require.NoError(t, err)
	return actor
}

func testPlan(frequency subscription.Frequency) subscription.PlanSnapshot {
	return subscription.PlanSnapshot{Name: "Home Standard", Size: "14.2kg", Frequency: frequency}
}

func pendingOrder(t *testing.T) *order.DeliveryOrder {
	t.Helper()
	customer := order.CustomerSnapshot{
		Name:    "Meena Iyer",
		Phone:   "+91-98-0000-1111",
		Address: "3 Temple Street",
	}
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), customer, testPlan(subscription.Weekly), testMonday, testMonday)
	require.NoError(t, err)
	return o
}

// assignedOrder returns an order assigned to agentID.
func assignedOrder(t *testing.T, agentID kernel.UUID) *order.DeliveryOrder {
	t.Helper()
	o := pendingOrder(t)
	require.NoError(t, o.Assign(adminActor(t), agentID, testMonday))
	return o
}

// acceptedOrder returns an order accepted by agentID.
func acceptedOrder(t *testing.T, agentID kernel.UUID) *order.DeliveryOrder {
	t.Helper()
	o := assignedOrder(t, agentID)
	require.NoError(t, o.Accept(deliveryActor(t, agentID)))
	return o
}

func activeSubscription(t *testing.T, frequency subscription.Frequency, start time.Time) *subscription.Subscription {
	t.Helper()
	sub, err := subscription.NewSubscription(
		kernel.NewUUID(), kernel.NewUUID(), "Meena Iyer", "+91-98-0000-1111", "3 Temple Street",
		testPlan(frequency), start, true)
	require.NoError(t, err)
	return sub
}

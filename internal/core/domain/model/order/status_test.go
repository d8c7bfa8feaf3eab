package order_test

import (
	"testing"

	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending, order.Assigned, order.Accepted, order.OutForDelivery,
		order.Delivered, order.Failed, order.Cancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept all defined statuses", func(t *testing.T) {
		for _, s := range allStatuses() {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var s order.Status
		require.Error(t, s.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		require.Error(t, order.Status("in_transit").Validate())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status", func(t *testing.T) {
		s, err := order.StatusFromString("out_for_delivery")

		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, s)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := order.StatusFromString("shipped")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_Transitions(t *testing.T) {
	type event struct {
		name       string
		apply      func(order.Status) (order.Status, error)
		validFrom  map[order.Status]struct{}
		expectedTo order.Status
	}

	events := []event{
		{
			name:       "Assign",
			apply:      order.Status.Assign,
			validFrom:  map[order.Status]struct{}{order.Pending: {}},
			expectedTo: order.Assigned,
		},
		{
			name:       "Accept",
			apply:      order.Status.Accept,
			validFrom:  map[order.Status]struct{}{order.Assigned: {}},
			expectedTo: order.Accepted,
		},
		{
			name:       "StartDelivery",
			apply:      order.Status.StartDelivery,
			validFrom:  map[order.Status]struct{}{order.Accepted: {}},
			expectedTo: order.OutForDelivery,
		},
		{
			name:       "Deliver",
			apply:      order.Status.Deliver,
			validFrom:  map[order.Status]struct{}{order.Accepted: {}, order.OutForDelivery: {}},
			expectedTo: order.Delivered,
		},
		{
			name:       "Fail",
			apply:      order.Status.Fail,
			validFrom:  map[order.Status]struct{}{order.Accepted: {}, order.OutForDelivery: {}},
			expectedTo: order.Failed,
		},
		{
			name:       "Cancel",
			apply:      order.Status.Cancel,
			validFrom:  map[order.Status]struct{}{order.Pending: {}},
			expectedTo: order.Cancelled,
		},
	}

	for _, ev := range events {
		t.Run(ev.name, func(t *testing.T) {
			for _, from := range allStatuses() {
				to, err := ev.apply(from)

				if _, ok := ev.validFrom[from]; ok {
					require.NoError(t, err, "from %s", from)
					assert.Equal(t, ev.expectedTo, to)
				} else {
					require.Error(t, err, "from %s", from)
					assert.ErrorIs(t, err, errs.ErrInvalidTransition)
				}
			}
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())

	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Assigned.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_ValidateCanHaveAgent(t *testing.T) {
	t.Run("pending and cancelled orders must not have an agent", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Cancelled} {
			assert.NoError(t, s.ValidateCanHaveAgent(false), s.String())
			assert.Error(t, s.ValidateCanHaveAgent(true), s.String())
		}
	})

	t.Run("all other statuses require an agent", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Assigned, order.Accepted, order.OutForDelivery, order.Delivered, order.Failed,
		} {
			assert.NoError(t, s.ValidateCanHaveAgent(true), s.String())
			assert.Error(t, s.ValidateCanHaveAgent(false), s.String())
		}
	})
}

func TestActiveStatuses(t *testing.T) {
	assert.Equal(t,
		[]order.Status{order.Assigned, order.Accepted, order.OutForDelivery},
		order.ActiveStatuses())
}

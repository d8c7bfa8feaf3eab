package agent_test

import (
	"testing"

	"gasdelivery/internal/core/domain/model/agent"
	"gasdelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("should create active delivery agent", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := agent.NewAgent(id, "Suresh", "+91-9000000002", kernel.RoleDelivery, true)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Suresh", a.Name())
		assert.Equal(t, "+91-9000000002", a.Phone())
		assert.Equal(t, kernel.RoleDelivery, a.Role())
		assert.True(t, a.IsActive())
		assert.True(t, a.CanDeliver())
	})

	t.Run("should fail without name", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "", "", kernel.RoleDelivery, true)

		require.ErrorIs(t, err, agent.ErrNameIsRequired)
	})

	t.Run("should fail with unknown role", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "Suresh", "", kernel.Role("driver"), true)

		require.Error(t, err)
	})

	t.Run("zero value agent fails validation", func(t *testing.T) {
		var a agent.Agent

		require.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})
}

func TestAgent_CanDeliver(t *testing.T) {
	t.Run("inactive delivery agent cannot deliver", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Suresh", "", kernel.RoleDelivery, false)

		require.NoError(t, err)
		assert.False(t, a.CanDeliver())
	})

	t.Run("admin cannot deliver", func(t *testing.T) {
		a, err := agent.NewAgent(kernel.NewUUID(), "Meena", "", kernel.RoleAdmin, true)

		require.NoError(t, err)
		assert.False(t, a.CanDeliver())
	})
}

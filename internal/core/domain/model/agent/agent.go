// Package agent provides the delivery-agent entity consumed by the assignment
// dispatcher and the agent directory listing. Agents are field workers
// authorized to execute agent-scoped transitions on orders assigned to them.
package agent

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
)

var (
	// ErrNameIsRequired is returned when attempting to create an agent without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrAgentIsNotConstructed is returned when using an improperly initialized Agent.
	ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent constructor")
)

// Agent represents a field worker in the user directory.
// The dispatcher only binds pending orders to agents that hold the delivery
// role and are currently active.
type Agent struct {
	// id uniquely identifies the agent
	id kernel.UUID
	// name is the human-readable name of the agent
	name string
	// phone is the agent's contact number, shown on admin dashboards
	phone string
	// role is the directory role; only delivery agents are assignable
	role kernel.Role
	// isActive marks whether the agent currently takes deliveries
	isActive bool
	// isConstructed ensures the agent was created via NewAgent
	isConstructed bool
}

// NewAgent creates an Agent with validation. The role must be one of the
// known directory roles.
func NewAgent(id kernel.UUID, name, phone string, role kernel.Role, isActive bool) (*Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, ErrNameIsRequired
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	return &Agent{
		id:            id,
		name:          name,
		phone:         phone,
		role:          role,
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Agent instance was properly constructed through NewAgent.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}
	return nil
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's name.
func (a *Agent) Name() string {
	return a.name
}

// Phone returns the agent's contact number.
func (a *Agent) Phone() string {
	return a.phone
}

// Role returns the agent's directory role.
func (a *Agent) Role() kernel.Role {
	return a.role
}

// IsActive reports whether the agent currently takes deliveries.
func (a *Agent) IsActive() bool {
	return a.isActive
}

// CanDeliver reports whether the dispatcher may bind orders to this agent:
// the agent must hold the delivery role and be active.
func (a *Agent) CanDeliver() bool {
	return a.role == kernel.RoleDelivery && a.isActive
}

package queries

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/guard"
)

var ErrGetAgentOrdersQueryIsNotConstructed = errors.New(
	"GetAgentOrdersQuery must be created via NewGetAgentOrdersQuery constructor",
)

// GetAgentOrdersQuery retrieves the orders assigned to one agent, feeding the
// agent's worklist. Statuses restricts the result to the given set; an empty
// set returns the agent's full history. The agent surface typically asks for
// order.ActiveStatuses(), the statuses the agent still has to act on.
//
// Agents may only read their own worklist; admins may read any agent's.
type GetAgentOrdersQuery struct {
	actor    kernel.Actor
	agentID  kernel.UUID
	statuses []order.Status

	guard guard.ConstructorGuard
}

// NewGetAgentOrdersQuery creates a query for an agent's assigned orders.
func NewGetAgentOrdersQuery(
	actor kernel.Actor,
	agentID kernel.UUID,
	statuses []order.Status,
) (GetAgentOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAgentOrdersQuery{}, err
	}
	if err := agentID.Validate(); err != nil {
		return GetAgentOrdersQuery{}, err
	}
	for _, status := range statuses {
		if _, err := order.StatusFromString(status.String()); err != nil {
			return GetAgentOrdersQuery{}, err
		}
	}

	return GetAgentOrdersQuery{
		actor:    actor,
		agentID:  agentID,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAgentOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAgentOrdersQueryIsNotConstructed)
}

// Actor returns the caller.
func (q GetAgentOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// AgentID returns the agent whose worklist is requested.
func (q GetAgentOrdersQuery) AgentID() kernel.UUID {
	return q.agentID
}

// Statuses returns the requested status set; empty means all statuses.
func (q GetAgentOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// GetAgentOrdersQueryResponse is the agent's worklist.
type GetAgentOrdersQueryResponse struct {
	Orders []OrderResponse
}

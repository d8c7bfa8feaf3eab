package queries

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrListAgentsQueryIsNotConstructed = errors.New(
	"ListAgentsQuery must be created via NewListAgentsQuery constructor",
)

// ListAgentsQuery retrieves the delivery agent directory with each agent's
// active order load, giving admins the data for assignment decisions. Admin only.
type ListAgentsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewListAgentsQuery creates a query to list delivery agents.
func NewListAgentsQuery(actor kernel.Actor) (ListAgentsQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListAgentsQuery{}, err
	}

	return ListAgentsQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAgentsQuery) Validate() error {
	return q.guard.Validate(ErrListAgentsQueryIsNotConstructed)
}

// Actor returns the caller.
func (q ListAgentsQuery) Actor() kernel.Actor {
	return q.actor
}

// AgentResponse is one directory entry with its current workload.
type AgentResponse struct {
	ID       kernel.UUID
	Name     string
	Phone    string
	IsActive bool
	// ActiveOrders counts the agent's orders in assigned, accepted, or
	// out_for_delivery status.
	ActiveOrders int64
}

// ListAgentsQueryResponse is the delivery agent directory.
type ListAgentsQueryResponse struct {
	Agents []AgentResponse
}

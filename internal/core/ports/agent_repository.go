package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/agent"
	"gasdelivery/internal/core/domain/model/kernel"
)

// AgentRepository defines the read contract against the external user
// directory. The engine validates assignment targets and lists agents for the
// admin surface; it never mutates directory records.
type AgentRepository interface {
	// Get retrieves an agent by its unique identifier.
	// Returns an ObjectNotFoundError when the agent does not exist.
	Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error)

	// GetAllByRole retrieves all agents holding the given directory role.
	GetAllByRole(ctx context.Context, role kernel.Role) ([]*agent.Agent, error)
}

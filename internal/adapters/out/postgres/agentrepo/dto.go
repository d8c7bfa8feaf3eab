package agentrepo

import (
	"gasdelivery/internal/core/domain/model/agent"
	"gasdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO maps the agent read model to the user directory table.
// The engine never writes this table.
type AgentDTO struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid"`
	Name     string
	Phone    string
	Role     string `gorm:"index"`
	IsActive bool
}

// TableName overrides the default table name.
func (AgentDTO) TableName() string {
	return "agents"
}

// toDomain converts a DTO row to the Agent read model.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := kernel.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	return agent.NewAgent(id, dto.Name, dto.Phone, role, dto.IsActive)
}

package agentrepo

import (
	"context"
	"errors"

	"gasdelivery/internal/core/domain/model/agent"
	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentRepository implements ports.AgentRepository using GORM.
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB) *GormAgentRepository {
	return &GormAgentRepository{db: db}
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves all directory entries holding the given role,
// ordered by name for stable listings.
func (r *GormAgentRepository) GetAllByRole(ctx context.Context, role kernel.Role) ([]*agent.Agent, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Where("role = ?", role.String()).Order("name").Find(&dtos).Error; err != nil {
		return nil, err
	}

	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return agents, nil
}

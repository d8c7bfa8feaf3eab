package queries

import (
	"context"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListAgentsQueryHandler reads the delivery agent directory with workloads.
type ListAgentsQueryHandler struct {
	db *gorm.DB
}

// NewListAgentsQueryHandler creates a handler for agent directory queries.
func NewListAgentsQueryHandler(db *gorm.DB) ListAgentsQueryHandler {
	return ListAgentsQueryHandler{db: db}
}

// Handle joins the directory against active order counts, sorted by name.
func (h ListAgentsQueryHandler) Handle(
	ctx context.Context,
	query ListAgentsQuery,
) (ListAgentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListAgentsQueryResponse{}, err
	}
	if !query.Actor().IsAdmin() {
		return ListAgentsQueryResponse{}, errs.NewForbiddenError("ListAgents", query.Actor().ID().String())
	}

	statuses := order.ActiveStatuses()
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.name,
			a.phone,
			a.is_active,
			COUNT(o.id) AS active_orders
		FROM agents a
		LEFT JOIN orders o ON o.agent_id = a.id AND o.status IN ?
		WHERE a.role = ?
		GROUP BY a.id, a.name, a.phone, a.is_active
		ORDER BY a.name
	`, values, kernel.RoleDelivery.String()).Rows()
	if err != nil {
		return ListAgentsQueryResponse{}, err
	}
	defer rows.Close()

	agents := make([]AgentResponse, 0)
	for rows.Next() {
		var resp AgentResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &resp.Name, &resp.Phone, &resp.IsActive, &resp.ActiveOrders); err != nil {
			return ListAgentsQueryResponse{}, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListAgentsQueryResponse{}, idErr
		}
		resp.ID = agentID
		agents = append(agents, resp)
	}
	if err = rows.Err(); err != nil {
		return ListAgentsQueryResponse{}, err
	}

	return ListAgentsQueryResponse{Agents: agents}, nil
}

package queries

import (
	"context"

	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAgentOrdersQueryHandler reads an agent's assigned orders.
type GetAgentOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentOrdersQueryHandler creates a handler for agent worklist queries.
func NewGetAgentOrdersQueryHandler(db *gorm.DB) GetAgentOrdersQueryHandler {
	return GetAgentOrdersQueryHandler{db: db}
}

// Handle executes the worklist query, ordered by delivery date.
func (h GetAgentOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAgentOrdersQuery,
) (GetAgentOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() && !actor.ID().IsEqual(query.AgentID()) {
		return GetAgentOrdersQueryResponse{}, errs.NewForbiddenError("GetAgentOrders", actor.ID().String())
	}

	where := "agent_id = ?"
	args := []interface{}{query.AgentID().Bytes()}
	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		where += " AND status IN ?"
		args = append(args, values)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE `+where+`
		ORDER BY delivery_date, created_at
	`, args...).Rows()
	if err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, err := scanOrderRow(rows)
		if err != nil {
			return GetAgentOrdersQueryResponse{}, err
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return GetAgentOrdersQueryResponse{}, err
	}

	return GetAgentOrdersQueryResponse{Orders: orders}, nil
}

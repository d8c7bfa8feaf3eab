package queries

import (
	"context"
	"database/sql"
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and its retry lineage.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order reads.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Agents reading an order not assigned to them
// receive a ForbiddenError, indistinguishable in status from reading another
// agent's order.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp, err := h.fetchOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	actor := query.Actor()
	if !actor.IsAdmin() {
		if resp.AgentID == nil || !resp.AgentID.IsEqual(actor.ID()) {
			return GetOrderQueryResponse{}, errs.NewForbiddenError("GetOrder", actor.ID().String())
		}
	}

	successorID, err := h.fetchSuccessorID(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lineage, err := h.fetchLineage(ctx, resp)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		Order:       resp,
		SuccessorID: successorID,
		Lineage:     lineage,
	}, nil
}

func (h GetOrderQueryHandler) fetchOrder(ctx context.Context, id kernel.UUID) (OrderResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE id = ?
	`, id.Bytes()).Rows()
	if err != nil {
		return OrderResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderResponse{}, err
		}
		return OrderResponse{}, errs.NewObjectNotFoundError("order", id.String())
	}

	return scanOrderRow(rows)
}

func (h GetOrderQueryHandler) fetchSuccessorID(ctx context.Context, id kernel.UUID) (*kernel.UUID, error) {
	var successor uuid.UUID
	err := h.db.WithContext(ctx).Raw(`
		SELECT id FROM orders WHERE parent_order_id = ?
	`, id.Bytes()).Row().Scan(&successor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return optionalUUID(&successor)
}

// fetchLineage walks parent links back to the original order. The chain is
// bounded by the retry count, so the walk always terminates.
func (h GetOrderQueryHandler) fetchLineage(ctx context.Context, resp OrderResponse) ([]OrderResponse, error) {
	lineage := make([]OrderResponse, 0)
	parentID := resp.ParentOrderID

	for parentID != nil {
		parent, err := h.fetchOrder(ctx, *parentID)
		if err != nil {
			return nil, err
		}
		lineage = append([]OrderResponse{parent}, lineage...)
		parentID = parent.ParentOrderID
	}

	return lineage, nil
}

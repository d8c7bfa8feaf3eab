package queries

import (
	"database/sql"

	"gasdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// orderColumns is the column list every order query selects, kept in one place
// so scanOrderRow stays in sync with it.
const orderColumns = `
	id,
	subscription_id,
	parent_order_id,
	customer_name,
	customer_phone,
	address,
	plan_name,
	plan_size,
	plan_frequency,
	delivery_date,
	status,
	agent_id,
	retry_count,
	assigned_at,
	delivered_at,
	failed_at,
	failure_reason,
	agent_notes,
	created_at`

// scanOrderRow scans one row produced by an orderColumns select.
func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var subscriptionID, parentOrderID, agentID *uuid.UUID
	var assignedAt, deliveredAt, failedAt sql.NullTime

	if err := rows.Scan(
		&id,
		&subscriptionID,
		&parentOrderID,
		&resp.CustomerName,
		&resp.CustomerPhone,
		&resp.Address,
		&resp.PlanName,
		&resp.PlanSize,
		&resp.PlanFrequency,
		&resp.DeliveryDate,
		&resp.Status,
		&agentID,
		&resp.RetryCount,
		&assignedAt,
		&deliveredAt,
		&failedAt,
		&resp.FailureReason,
		&resp.AgentNotes,
		&resp.CreatedAt,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID

	if resp.SubscriptionID, err = optionalUUID(subscriptionID); err != nil {
		return OrderResponse{}, err
	}
	if resp.ParentOrderID, err = optionalUUID(parentOrderID); err != nil {
		return OrderResponse{}, err
	}
	if resp.AgentID, err = optionalUUID(agentID); err != nil {
		return OrderResponse{}, err
	}

	if assignedAt.Valid {
		resp.AssignedAt = &assignedAt.Time
	}
	if deliveredAt.Valid {
		resp.DeliveredAt = &deliveredAt.Time
	}
	if failedAt.Valid {
		resp.FailedAt = &failedAt.Time
	}

	return resp, nil
}

func optionalUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

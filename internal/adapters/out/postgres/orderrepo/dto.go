// Package orderrepo provides data transfer objects and mapping functions for
// delivery order persistence. This package implements the repository pattern
// for the order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/domain/model/subscription"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
//
// The composite unique index on (subscription_id, delivery_date) is the
// store-level guarantee behind idempotent schedule generation: at most one
// non-reschedule order can exist per subscription and date. Reschedule-born
// orders carry a NULL subscription_id and fall outside the index (Postgres
// treats NULLs as distinct), so retries on consecutive days never collide.
type OrderDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubscriptionID *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_orders_subscription_date"`
	DeliveryDate   time.Time  `gorm:"type:date;uniqueIndex:idx_orders_subscription_date;index"`
	ParentOrderID  *uuid.UUID `gorm:"type:uuid;index"`
	AgentID        *uuid.UUID `gorm:"type:uuid;index"`
	CustomerName   string
	CustomerPhone  string
	Address        string
	Plan           PlanDTO `gorm:"embedded;embeddedPrefix:plan_"`
	Status         string  `gorm:"index"`
	RetryCount     int
	AssignedAt     *time.Time
	DeliveredAt    *time.Time
	FailedAt       *time.Time
	FailureReason  string
	AgentNotes     string
	CreatedAt      time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// PlanDTO represents the embedded plan snapshot within the order table.
type PlanDTO struct {
	Name      string
	Size      string
	Frequency string
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.DeliveryOrder) OrderDTO {
	return OrderDTO{
		ID:             aggregate.ID().Bytes(),
		SubscriptionID: uuidPtr(aggregate.SubscriptionID()),
		DeliveryDate:   aggregate.DeliveryDate(),
		ParentOrderID:  uuidPtr(aggregate.ParentOrderID()),
		AgentID:        uuidPtr(aggregate.Agent()),
		CustomerName:   aggregate.Customer().Name,
		CustomerPhone:  aggregate.Customer().Phone,
		Address:        aggregate.Customer().Address,
		Plan: PlanDTO{
			Name:      aggregate.Plan().Name,
			Size:      aggregate.Plan().Size,
			Frequency: aggregate.Plan().Frequency.String(),
		},
		Status:        aggregate.Status().String(),
		RetryCount:    aggregate.RetryCount(),
		AssignedAt:    aggregate.AssignedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
		FailedAt:      aggregate.FailedAt(),
		FailureReason: aggregate.FailureReason().String(),
		AgentNotes:    aggregate.AgentNotes(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate,
// re-validating the aggregate's invariants via RestoreOrder.
func toDomain(dto OrderDTO) (*order.DeliveryOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subscriptionID, err := kernelPtr(dto.SubscriptionID)
	if err != nil {
		return nil, err
	}
	parentOrderID, err := kernelPtr(dto.ParentOrderID)
	if err != nil {
		return nil, err
	}
	agentID, err := kernelPtr(dto.AgentID)
	if err != nil {
		return nil, err
	}

	frequency, err := subscription.FrequencyFromString(dto.Plan.Frequency)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:             id,
		SubscriptionID: subscriptionID,
		ParentOrderID:  parentOrderID,
		Customer: order.CustomerSnapshot{
			Name:    dto.CustomerName,
			Phone:   dto.CustomerPhone,
			Address: dto.Address,
		},
		Plan: subscription.PlanSnapshot{
			Name:      dto.Plan.Name,
			Size:      dto.Plan.Size,
			Frequency: frequency,
		},
		DeliveryDate:  dto.DeliveryDate,
		Status:        order.Status(dto.Status),
		AgentID:       agentID,
		RetryCount:    dto.RetryCount,
		AssignedAt:    dto.AssignedAt,
		DeliveredAt:   dto.DeliveredAt,
		FailedAt:      dto.FailedAt,
		FailureReason: order.FailureReason(dto.FailureReason),
		AgentNotes:    dto.AgentNotes,
		CreatedAt:     dto.CreatedAt,
	})
}

// uuidPtr converts an optional kernel UUID to an optional database UUID.
func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

// kernelPtr converts an optional database UUID to an optional kernel UUID.
func kernelPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}

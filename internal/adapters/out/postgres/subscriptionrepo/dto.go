package subscriptionrepo

import (
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/subscription"

	"github.com/google/uuid"
)

// SubscriptionDTO maps the subscription read model to its table.
// The engine never writes this table: it is populated by the subscription
// service and consulted by the schedule generator.
type SubscriptionDTO struct {
	ID            uuid.UUID `gorm:"primaryKey;type:uuid"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerName  string
	CustomerPhone string
	Address       string
	PlanName      string
	PlanSize      string
	PlanFrequency string
	StartDate     time.Time `gorm:"type:date"`
	IsActive      bool      `gorm:"index"`
}

// TableName overrides the default table name.
func (SubscriptionDTO) TableName() string {
	return "subscriptions"
}

// toDomain converts a DTO row to the Subscription read model.
func toDomain(dto SubscriptionDTO) (*subscription.Subscription, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	freq, err := subscription.FrequencyFromString(dto.PlanFrequency)
	if err != nil {
		return nil, err
	}

	plan := subscription.PlanSnapshot{
		Name:      dto.PlanName,
		Size:      dto.PlanSize,
		Frequency: freq,
	}
	return subscription.NewSubscription(
		id,
		customerID,
		dto.CustomerName,
		dto.CustomerPhone,
		dto.Address,
		plan,
		dto.StartDate,
		dto.IsActive,
	)
}

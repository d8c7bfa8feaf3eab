package subscriptionrepo

import (
	"context"
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSubscriptionRepository implements ports.SubscriptionRepository using GORM.
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GORM subscription repository.
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// Get retrieves a subscription by ID.
func (r *GormSubscriptionRepository) Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubscriptionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subscription", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves the subscriptions the schedule generator must walk.
func (r *GormSubscriptionRepository) GetAllActive(ctx context.Context) ([]*subscription.Subscription, error) {
	var dtos []SubscriptionDTO
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("start_date").Find(&dtos).Error; err != nil {
		return nil, err
	}

	subs := make([]*subscription.Subscription, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

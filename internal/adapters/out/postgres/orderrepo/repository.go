package orderrepo

import (
	"context"
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/core/ports"
	"gasdelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mutableColumns are the only columns a status transition may touch.
// Snapshot data, lineage, and the delivery date are immutable after creation.
var mutableColumns = []string{
	"status", "agent_id", "assigned_at", "delivered_at", "failed_at", "failure_reason", "agent_notes",
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
// A duplicate (subscription_id, delivery_date) pair maps to a ConflictError so
// racing schedule generators stay duplicate-free. The insert uses ON CONFLICT
// DO NOTHING rather than letting the violation surface, so a conflict does not
// abort the surrounding transaction and generation can continue past it.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	return nil
}

// UpdateInStatus persists a transitioned order with compare-and-set semantics:
// the UPDATE is guarded by the expected status, so it affects zero rows when
// another caller moved the order first. Zero affected rows map to a
// ConflictError if the order exists and an ObjectNotFoundError otherwise.
func (r *GormOrderRepository) UpdateInStatus(
	ctx context.Context,
	aggregate *order.DeliveryOrder,
	expectedStatus order.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return errs.NewConflictError("order", aggregate.ID().String())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByFilter retrieves a page of orders matching the filter plus the total
// match count, ordered by delivery date then creation time.
func (r *GormOrderRepository) GetByFilter(
	ctx context.Context,
	filter ports.OrderFilter,
) ([]*order.DeliveryOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&OrderDTO{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.DeliveryDate != nil {
		query = query.Where("delivery_date = ?", *filter.DeliveryDate)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"customer_name ILIKE ? OR customer_phone ILIKE ? OR address ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var dtos []OrderDTO
	if err := query.Order("delivery_date, created_at").Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders, err := toDomainSlice(dtos)
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// GetAllForAgent retrieves the orders assigned to an agent, optionally
// restricted to a set of statuses.
func (r *GormOrderRepository) GetAllForAgent(
	ctx context.Context,
	agentID kernel.UUID,
	statuses []order.Status,
) ([]*order.DeliveryOrder, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Where("agent_id = ?", agentID.Bytes())
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, s.String())
		}
		query = query.Where("status IN ?", values)
	}

	var dtos []OrderDTO
	if err := query.Order("delivery_date, created_at").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetChildOf retrieves the reschedule successor of a failed order.
func (r *GormOrderRepository) GetChildOf(ctx context.Context, parentID kernel.UUID) (*order.DeliveryOrder, error) {
	if err := parentID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "parent_order_id = ?", parentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "child of "+parentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsForSubscriptionOnDate reports whether a non-reschedule order exists
// for the subscription on the given date.
func (r *GormOrderRepository) ExistsForSubscriptionOnDate(
	ctx context.Context,
	subscriptionID kernel.UUID,
	date time.Time,
) (bool, error) {
	if err := subscriptionID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("subscription_id = ? AND delivery_date = ?", subscriptionID.Bytes(), date).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// toDomainSlice converts DTO rows to domain aggregates.
func toDomainSlice(dtos []OrderDTO) ([]*order.DeliveryOrder, error) {
	orders := make([]*order.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

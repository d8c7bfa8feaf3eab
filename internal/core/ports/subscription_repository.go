package ports

import (
	"context"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/subscription"
)

// SubscriptionRepository defines the read contract against the external
// subscription catalog. Subscriptions are read-only to this engine: the
// schedule generator consumes them to derive delivery orders.
type SubscriptionRepository interface {
	// Get retrieves a subscription by its unique identifier.
	// Returns an ObjectNotFoundError when the subscription does not exist.
	Get(ctx context.Context, id kernel.UUID) (*subscription.Subscription, error)

	// GetAllActive retrieves all subscriptions with deliveries currently implied.
	GetAllActive(ctx context.Context) ([]*subscription.Subscription, error)
}

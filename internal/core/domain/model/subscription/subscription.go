package subscription

import (
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
)

// Domain errors for subscription construction.
var (
	// ErrSubscriptionIsNotConstructed is returned when a Subscription instance was
	// not created through the NewSubscription factory function.
	ErrSubscriptionIsNotConstructed = errors.New("Subscription must be created via NewSubscription constructor")

	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")

	// ErrAddressIsRequired is returned when the delivery address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// PlanSnapshot is the plan data carried by a subscription: plan name, cylinder
// size, and delivery frequency. Orders copy it verbatim at creation time.
type PlanSnapshot struct {
	Name      string
	Size      string
	Frequency Frequency
}

// Validate checks the snapshot carries a name, a size, and a known frequency.
func (p PlanSnapshot) Validate() error {
	if p.Name == "" {
		return errs.NewValueIsRequiredError("planName")
	}
	if p.Size == "" {
		return errs.NewValueIsRequiredError("size")
	}
	return p.Frequency.Validate()
}

// Subscription is a customer's standing agreement implying recurring deliveries.
// It is external to this engine and read-only: the schedule generator consumes
// active subscriptions to derive delivery orders, but never mutates them.
//
// The start date anchors the frequency arithmetic: a Weekly subscription started
// on a Monday is due every Monday.
type Subscription struct {
	// id uniquely identifies the subscription
	id kernel.UUID
	// customerID identifies the owning customer in the external directory
	customerID kernel.UUID
	// customerName and customerPhone are snapshotted onto generated orders
	customerName  string
	customerPhone string
	// address is the delivery destination snapshotted onto generated orders
	address string
	// plan carries the plan snapshot, including delivery frequency
	plan PlanSnapshot
	// startDate anchors due-date arithmetic
	startDate time.Time
	// isActive gates schedule generation
	isActive bool
	// isConstructed ensures the subscription was created via NewSubscription
	isConstructed bool
}

// NewSubscription creates a Subscription read model with validation.
// Used both when reconstructing from persistence and in tests.
func NewSubscription(
	id kernel.UUID,
	customerID kernel.UUID,
	customerName string,
	customerPhone string,
	address string,
	plan PlanSnapshot,
	startDate time.Time,
	isActive bool,
) (*Subscription, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if customerName == "" {
		return nil, ErrCustomerNameIsRequired
	}
	if address == "" {
		return nil, ErrAddressIsRequired
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return &Subscription{
		id:            id,
		customerID:    customerID,
		customerName:  customerName,
		customerPhone: customerPhone,
		address:       address,
		plan:          plan,
		startDate:     NormalizeDate(startDate),
		isActive:      isActive,
		isConstructed: true,
	}, nil
}

// Validate ensures the Subscription instance was properly constructed.
func (s *Subscription) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubscriptionIsNotConstructed
	}
	return nil
}

// ID returns the subscription's unique identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// CustomerID returns the owning customer's identifier.
func (s *Subscription) CustomerID() kernel.UUID {
	return s.customerID
}

// CustomerName returns the customer's name for order snapshots.
func (s *Subscription) CustomerName() string {
	return s.customerName
}

// CustomerPhone returns the customer's phone for order snapshots.
func (s *Subscription) CustomerPhone() string {
	return s.customerPhone
}

// Address returns the delivery address for order snapshots.
func (s *Subscription) Address() string {
	return s.address
}

// Plan returns the plan snapshot.
func (s *Subscription) Plan() PlanSnapshot {
	return s.plan
}

// StartDate returns the normalized start date anchoring due-date arithmetic.
func (s *Subscription) StartDate() time.Time {
	return s.startDate
}

// IsActive reports whether the subscription currently implies deliveries.
func (s *Subscription) IsActive() bool {
	return s.isActive
}

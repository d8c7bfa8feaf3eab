package order

import (
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/subscription"
	"gasdelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when a DeliveryOrder instance was not
	// created through the NewOrder, Reschedule, or RestoreOrder factory functions.
	ErrOrderIsNotConstructed = errors.New("DeliveryOrder must be created via NewOrder, Reschedule, or RestoreOrder")

	// ErrNotesRequiredForOther is returned when Fail is invoked with ReasonOther
	// and no free-text notes.
	ErrNotesRequiredForOther = errs.NewValueIsRequiredError("notes are required when reason is Other")
)

// CustomerSnapshot is the customer data copied onto an order at creation time.
// Later subscription edits never affect it.
type CustomerSnapshot struct {
	Name    string
	Phone   string
	Address string
}

// Validate checks the snapshot carries a customer name and a delivery address.
func (c CustomerSnapshot) Validate() error {
	if c.Name == "" {
		return errs.NewValueIsRequiredError("customerName")
	}
	if c.Address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	return nil
}

// DeliveryOrder represents one concrete, dated delivery obligation. It is the
// aggregate root that manages the order lifecycle from generation through
// assignment to a terminal state.
//
// DeliveryOrder follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer snapshot
//   - agentID is set if and only if status is past pending and not cancelled
//   - Status only moves forward along the transition graph; terminal orders
//     (delivered, failed, cancelled) never change again
//   - A reschedule-born order carries its parent's ID, the parent's retry count
//     plus one, and a delivery date one day after the parent's
//   - Generator-born orders carry their subscription ID; reschedule-born orders
//     do not, since they are not tied to a subscription due date
//
// All mutating methods take the authenticated caller and apply the access gate
// before the status guard, so a role or ownership mismatch surfaces as
// Forbidden rather than InvalidTransition.
type DeliveryOrder struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// subscriptionID links a generator-born order to its subscription (nil for reschedules)
	subscriptionID *kernel.UUID

	// parentOrderID links a reschedule-born order to the failed order it recovers
	parentOrderID *kernel.UUID

	// customer is the customer data snapshot taken at creation time
	customer CustomerSnapshot

	// plan is the plan data snapshot taken at creation time
	plan subscription.PlanSnapshot

	// deliveryDate is the date the delivery is due (midnight UTC)
	deliveryDate time.Time

	// status is the current state in the order lifecycle
	status Status

	// agentID is the assigned agent's ID (nil while pending or cancelled)
	agentID *kernel.UUID

	// retryCount counts how many reschedules precede this order
	retryCount int

	assignedAt  *time.Time
	deliveredAt *time.Time
	failedAt    *time.Time

	// failureReason is set on failed orders; empty otherwise
	failureReason FailureReason

	// agentNotes carries the agent's free text recorded on Deliver or Fail
	agentNotes string

	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a fresh pending order for a subscription due date.
// This is the schedule generator's creation path: subscriptionID is recorded so
// the store's uniqueness check on (subscriptionID, deliveryDate) applies.
//
// The customer and plan snapshots are validated and copied; deliveryDate is
// normalized to midnight UTC.
func NewOrder(
	id kernel.UUID,
	subscriptionID kernel.UUID,
	customer CustomerSnapshot,
	plan subscription.PlanSnapshot,
	deliveryDate time.Time,
	now time.Time,
) (*DeliveryOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := subscriptionID.Validate(); err != nil {
		return nil, err
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	return &DeliveryOrder{
		id:             id,
		subscriptionID: &subscriptionID,
		customer:       customer,
		plan:           plan,
		deliveryDate:   subscription.NormalizeDate(deliveryDate),
		status:         Pending,
		createdAt:      now,
		isConstructed:  true,
	}, nil
}

// Reschedule creates the successor order for a failed delivery.
//
// The successor is a fresh pending order dated one day after this order's
// delivery date, unassigned (returned to the pool), carrying the same customer
// and plan snapshot, this order's ID as parent, and this order's retry count
// plus one. It deliberately carries no subscription ID: it is not tied to a
// subscription due date, so the generator's uniqueness check does not apply.
//
// Returns InvalidTransitionError if this order is not failed. Invoked only by
// the Fail command handler, in the same transaction as the failing transition.
func (o *DeliveryOrder) Reschedule(successorID kernel.UUID, now time.Time) (*DeliveryOrder, error) {
	if err := successorID.Validate(); err != nil {
		return nil, err
	}
	if o.status != Failed {
		return nil, errs.NewInvalidTransitionError("Reschedule", o.status.String())
	}

	parentID := o.id
	return &DeliveryOrder{
		id:            successorID,
		parentOrderID: &parentID,
		customer:      o.customer,
		plan:          o.plan,
		deliveryDate:  o.deliveryDate.AddDate(0, 0, 1),
		status:        Pending,
		retryCount:    o.retryCount + 1,
		createdAt:     now,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the persisted state of an order for reconstruction.
type RestoreOrderParams struct {
	ID             kernel.UUID
	SubscriptionID *kernel.UUID
	ParentOrderID  *kernel.UUID
	Customer       CustomerSnapshot
	Plan           subscription.PlanSnapshot
	DeliveryDate   time.Time
	Status         Status
	AgentID        *kernel.UUID
	RetryCount     int
	AssignedAt     *time.Time
	DeliveredAt    *time.Time
	FailedAt       *time.Time
	FailureReason  FailureReason
	AgentNotes     string
	CreatedAt      time.Time
}

// RestoreOrder reconstructs an order from persistence, re-validating the
// aggregate's invariants so corrupted rows are rejected at the boundary.
func RestoreOrder(p RestoreOrderParams) (*DeliveryOrder, error) {
	if err := p.ID.Validate(); err != nil {
		return nil, err
	}
	if err := p.Customer.Validate(); err != nil {
		return nil, err
	}
	if err := p.Plan.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.Validate(); err != nil {
		return nil, err
	}
	if err := p.Status.ValidateCanHaveAgent(p.AgentID != nil); err != nil {
		return nil, err
	}
	if p.RetryCount < 0 {
		return nil, errs.NewValueIsInvalidError("retryCount")
	}
	if p.FailureReason != "" {
		if err := p.FailureReason.Validate(); err != nil {
			return nil, err
		}
	}

	return &DeliveryOrder{
		id:             p.ID,
		subscriptionID: p.SubscriptionID,
		parentOrderID:  p.ParentOrderID,
		customer:       p.Customer,
		plan:           p.Plan,
		deliveryDate:   subscription.NormalizeDate(p.DeliveryDate),
		status:         p.Status,
		agentID:        p.AgentID,
		retryCount:     p.RetryCount,
		assignedAt:     p.AssignedAt,
		deliveredAt:    p.DeliveredAt,
		failedAt:       p.FailedAt,
		failureReason:  p.FailureReason,
		agentNotes:     p.AgentNotes,
		createdAt:      p.CreatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the DeliveryOrder instance was properly constructed through
// one of the factory functions.
func (o *DeliveryOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *DeliveryOrder) IsEqual(other *DeliveryOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *DeliveryOrder) ID() kernel.UUID {
	return o.id
}

// SubscriptionID returns the originating subscription's ID.
// Returns nil for reschedule-born orders.
func (o *DeliveryOrder) SubscriptionID() *kernel.UUID {
	return o.subscriptionID
}

// ParentOrderID returns the failed order this order reschedules.
// Returns nil for generator-born orders.
func (o *DeliveryOrder) ParentOrderID() *kernel.UUID {
	return o.parentOrderID
}

// Customer returns the customer snapshot taken at creation time.
func (o *DeliveryOrder) Customer() CustomerSnapshot {
	return o.customer
}

// Plan returns the plan snapshot taken at creation time.
func (o *DeliveryOrder) Plan() subscription.PlanSnapshot {
	return o.plan
}

// DeliveryDate returns the date the delivery is due (midnight UTC).
func (o *DeliveryOrder) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Status returns the current status of the order.
func (o *DeliveryOrder) Status() Status {
	return o.status
}

// Agent returns the assigned agent's ID.
// Returns nil while the order is pending or cancelled.
func (o *DeliveryOrder) Agent() *kernel.UUID {
	return o.agentID
}

// RetryCount returns how many reschedules precede this order.
func (o *DeliveryOrder) RetryCount() int {
	return o.retryCount
}

// AssignedAt returns when the order was assigned, or nil.
func (o *DeliveryOrder) AssignedAt() *time.Time {
	return o.assignedAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *DeliveryOrder) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// FailedAt returns when the delivery attempt failed, or nil.
func (o *DeliveryOrder) FailedAt() *time.Time {
	return o.failedAt
}

// FailureReason returns the reported failure reason, or "" if the order has
// not failed.
func (o *DeliveryOrder) FailureReason() FailureReason {
	return o.failureReason
}

// AgentNotes returns the agent's free-text notes recorded on Deliver or Fail.
func (o *DeliveryOrder) AgentNotes() string {
	return o.agentNotes
}

// CreatedAt returns when the order record was created.
func (o *DeliveryOrder) CreatedAt() time.Time {
	return o.createdAt
}

// Assign binds the order to a delivery agent. Admin only; pending orders only.
// Sets the agent, the assignment timestamp, and moves the status to assigned.
//
// The agent's existence, role, and active flag are the dispatcher's
// responsibility; the aggregate only records a validated identifier.
func (o *DeliveryOrder) Assign(actor kernel.Actor, agentID kernel.UUID, now time.Time) error {
	if err := requireAdmin(actor, "Assign"); err != nil {
		return err
	}
	if err := agentID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.agentID = &agentID
	o.assignedAt = &now
	return nil
}

// Accept acknowledges the delivery. Assigned agent only; assigned orders only.
func (o *DeliveryOrder) Accept(actor kernel.Actor) error {
	if err := o.requireAssignedAgent(actor, "Accept"); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartDelivery marks the agent en route. Assigned agent only; accepted orders only.
func (o *DeliveryOrder) StartDelivery(actor kernel.Actor) error {
	if err := o.requireAssignedAgent(actor, "StartDelivery"); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver completes the order. Assigned agent only; legal from accepted or
// out_for_delivery. Records the delivery timestamp and optional agent notes.
func (o *DeliveryOrder) Deliver(actor kernel.Actor, notes string, now time.Time) error {
	if err := o.requireAssignedAgent(actor, "Deliver"); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	o.agentNotes = notes
	return nil
}

// Fail records a failed delivery attempt. Assigned agent only; legal from
// accepted or out_for_delivery. The reason must be one of the enumerated
// failure reasons, and ReasonOther requires non-empty notes.
//
// Fail only moves this order to its terminal failed state; creating the
// successor order is the caller's responsibility via Reschedule, executed in
// the same transaction so no order ends up failed-but-never-rescheduled.
func (o *DeliveryOrder) Fail(actor kernel.Actor, reason FailureReason, notes string, now time.Time) error {
	if err := o.requireAssignedAgent(actor, "Fail"); err != nil {
		return err
	}
	if err := reason.Validate(); err != nil {
		return err
	}
	if reason.RequiresNotes() && notes == "" {
		return ErrNotesRequiredForOther
	}

	newStatus, err := o.status.Fail()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.failedAt = &now
	o.failureReason = reason
	o.agentNotes = notes
	return nil
}

// Cancel withdraws the order. Admin only; pending orders only.
func (o *DeliveryOrder) Cancel(actor kernel.Actor) error {
	if err := requireAdmin(actor, "Cancel"); err != nil {
		return err
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// requireAdmin is the access gate for admin-only events.
func requireAdmin(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}

// requireAssignedAgent is the access gate for agent-only events: the caller
// must hold the delivery role and be the order's currently assigned agent.
func (o *DeliveryOrder) requireAssignedAgent(actor kernel.Actor, operation string) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsAgent() {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	if o.agentID == nil || !o.agentID.IsEqual(actor.ID()) {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}
	return nil
}

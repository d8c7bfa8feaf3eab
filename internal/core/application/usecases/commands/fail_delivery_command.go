package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/core/domain/model/order"
	"gasdelivery/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand represents an agent recording a failed delivery attempt.
// The reason must be one of the known failure reasons; notes are mandatory
// when the reason is "Other".
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	reason  order.FailureReason
	notes   string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command for an agent to mark a delivery failed.
func NewFailDeliveryCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	reason order.FailureReason,
	notes string,
) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setReason(reason),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// Actor returns the reporting agent.
func (c FailDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the failed order.
func (c FailDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Reason returns the failure reason.
func (c FailDeliveryCommand) Reason() order.FailureReason {
	return c.reason
}

// Notes returns the agent's notes about the failure.
func (c FailDeliveryCommand) Notes() string {
	return c.notes
}

func (c *FailDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *FailDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FailDeliveryCommand) setReason(reason order.FailureReason) error {
	if err := reason.Validate(); err != nil {
		return err
	}

	c.reason = reason
	return nil
}

package commands

import (
	"errors"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents an agent recording a successful delivery,
// optionally with notes.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	notes   string

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command for an agent to mark an order delivered.
func NewCompleteDeliveryCommand(actor kernel.Actor, orderID kernel.UUID, notes string) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// Actor returns the delivering agent.
func (c CompleteDeliveryCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the delivered order.
func (c CompleteDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Notes returns the agent's optional delivery notes.
func (c CompleteDeliveryCommand) Notes() string {
	return c.notes
}

func (c *CompleteDeliveryCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CompleteDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

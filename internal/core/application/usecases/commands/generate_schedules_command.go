package commands

import (
	"errors"
	"time"

	"gasdelivery/internal/core/domain/model/kernel"
	"gasdelivery/internal/pkg/errs"
	"gasdelivery/internal/pkg/guard"
)

var (
	ErrGenerateSchedulesCommandIsNotConstructed = errors.New(
		"GenerateSchedulesCommand must be created via NewGenerateSchedulesCommand constructor",
	)
	ErrDaysAheadIsInvalid = errs.NewValueIsInvalidError("daysAhead must be positive")
)

// GenerateSchedulesCommand represents a request to materialize pending orders
// for every active subscription over a generation horizon.
//
// Example:
//
//	cmd, err := NewGenerateSchedulesCommand(actor, time.Now(), 7)
//	if err != nil {
//	    return fmt.Errorf("invalid generation request: %w", err)
//	}
//
//	handler := NewGenerateSchedulesCommandHandler(uowFactory, calendar)
//	created, err := handler.Handle(ctx, cmd)
type GenerateSchedulesCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	from      time.Time
	daysAhead int

	guard guard.ConstructorGuard
}

// NewGenerateSchedulesCommand creates a command to generate scheduled orders
// for the window [from, from+daysAhead). The from timestamp is the generation
// reference date, usually now.
func NewGenerateSchedulesCommand(actor kernel.Actor, from time.Time, daysAhead int) (GenerateSchedulesCommand, error) {
	cmd := GenerateSchedulesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setFrom(from),
		cmd.setDaysAhead(daysAhead),
	); err != nil {
		return GenerateSchedulesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateSchedulesCommand) Validate() error {
	return c.guard.Validate(ErrGenerateSchedulesCommandIsNotConstructed)
}

// Actor returns the caller requesting generation.
func (c GenerateSchedulesCommand) Actor() kernel.Actor {
	return c.actor
}

// From returns the generation reference date.
func (c GenerateSchedulesCommand) From() time.Time {
	return c.from
}

// DaysAhead returns the generation horizon in days.
func (c GenerateSchedulesCommand) DaysAhead() int {
	return c.daysAhead
}

func (c *GenerateSchedulesCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *GenerateSchedulesCommand) setFrom(from time.Time) error {
	if from.IsZero() {
		return errs.NewValueIsRequiredError("from")
	}

	c.from = from
	return nil
}

func (c *GenerateSchedulesCommand) setDaysAhead(daysAhead int) error {
	if daysAhead <= 0 {
		return ErrDaysAheadIsInvalid
	}

	c.daysAhead = daysAhead
	return nil
}

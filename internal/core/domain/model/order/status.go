package order

import (
	"gasdelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	pending ──> assigned ──> accepted ──┬──> out_for_delivery ──┬──> delivered
//	   │                                │           │           │
//	   │                                ├───────────┼───────────┘
//	   │                                └──> failed <┘
//	   └──> cancelled
//
// Deliver and Fail are legal from both accepted and out_for_delivery.
// delivered, failed, and cancelled are terminal: no event ever moves an
// order out of them, and no transition revisits pending on the same order.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status string

const (
	// Pending is the initial status when an order is created by the schedule
	// generator or by a reschedule. Pending orders carry no agent.
	Pending Status = "pending"

	// Assigned indicates an admin has bound the order to a delivery agent.
	Assigned Status = "assigned"

	// Accepted indicates the assigned agent has acknowledged the delivery.
	Accepted Status = "accepted"

	// OutForDelivery indicates the agent is en route to the customer.
	OutForDelivery Status = "out_for_delivery"

	// Delivered is the terminal success state.
	Delivered Status = "delivered"

	// Failed is the terminal failure state. Recovery never reopens a failed
	// order; a successor order is created instead.
	Failed Status = "failed"

	// Cancelled is the terminal state for orders withdrawn by an admin
	// before assignment.
	Cancelled Status = "cancelled"
)

// getValidStatusStrings returns the set of valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		Assigned:       {},
		Accepted:       {},
		OutForDelivery: {},
		Delivered:      {},
		Failed:         {},
		Cancelled:      {},
	}
}

// ActiveStatuses returns the statuses that represent in-flight work for an
// agent: assigned, accepted, and out_for_delivery. Used by the "my active
// deliveries" filter.
func ActiveStatuses() []Status {
	return []Status{Assigned, Accepted, OutForDelivery}
}

// StatusFromString parses a status from its string representation.
// Returns an error for unknown statuses. Used when reconstructing
// orders from persistence or parsing query filters.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks if the Status value is one of the defined statuses.
// The zero value ("") and any other strings are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status permits no further transitions.
// Terminal orders are retained forever for audit and reporting.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed || s == Cancelled
}

// Assign transitions the status to Assigned.
//
// Valid transitions:
//   - pending -> assigned
//
// Returns InvalidTransitionError for any other current status.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidTransitionError("Assign", s.String())
	}
	return Assigned, nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - assigned -> accepted
//
// Returns InvalidTransitionError for any other current status.
func (s Status) Accept() (Status, error) {
	if s != Assigned {
		return "", errs.NewInvalidTransitionError("Accept", s.String())
	}
	return Accepted, nil
}

// StartDelivery transitions the status to OutForDelivery.
//
// Valid transitions:
//   - accepted -> out_for_delivery
//
// Returns InvalidTransitionError for any other current status.
func (s Status) StartDelivery() (Status, error) {
	if s != Accepted {
		return "", errs.NewInvalidTransitionError("StartDelivery", s.String())
	}
	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - accepted -> delivered
//   - out_for_delivery -> delivered
//
// Returns InvalidTransitionError for any other current status.
func (s Status) Deliver() (Status, error) {
	if s != Accepted && s != OutForDelivery {
		return "", errs.NewInvalidTransitionError("Deliver", s.String())
	}
	return Delivered, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - accepted -> failed
//   - out_for_delivery -> failed
//
// Returns InvalidTransitionError for any other current status.
func (s Status) Fail() (Status, error) {
	if s != Accepted && s != OutForDelivery {
		return "", errs.NewInvalidTransitionError("Fail", s.String())
	}
	return Failed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - pending -> cancelled
//
// Returns InvalidTransitionError for any other current status.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return "", errs.NewInvalidTransitionError("Cancel", s.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveAgent validates the consistency between order status and agent
// assignment. An agent is set if and only if the order has moved past pending
// and was not cancelled.
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	requiresAgent := s != Pending && s != Cancelled
	if hasAgent && !requiresAgent {
		return errs.NewValueIsInvalidError("agentId must be empty for " + s.String() + " orders")
	}
	if !hasAgent && requiresAgent {
		return errs.NewValueIsInvalidError("agentId is required for " + s.String() + " orders")
	}
	return nil
}

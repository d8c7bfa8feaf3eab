package kernel

import (
	"gasdelivery/internal/pkg/errs"
)

// Role classifies an authenticated caller for access checks.
// The engine trusts the role resolved by the external auth collaborator.
type Role string

const (
	// RoleAdmin may generate schedules, assign agents, and cancel pending orders.
	RoleAdmin Role = "admin"

	// RoleDelivery identifies a field agent. Agent-scoped transitions additionally
	// require the caller's ID to match the order's assigned agent.
	RoleDelivery Role = "delivery"
)

// getValidRoleStrings returns the set of valid roles.
// Only valid roles are included to support validation.
func getValidRoleStrings() map[Role]struct{} {
	return map[Role]struct{}{
		RoleAdmin:    {},
		RoleDelivery: {},
	}
}

// Validate checks if the Role value is one of the known roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// RoleFromString parses a role from its string representation.
// Returns an error for unknown roles.
func RoleFromString(s string) (Role, error) {
	r := Role(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

// Actor is the authenticated request context passed into every mutating operation.
// It carries the resolved identity and role; the core never reads ambient state.
//
// Actor is a value object: construct it with NewActor and validate before use.
//
// Example usage:
//
//	actor, err := kernel.NewActor(agentID, kernel.RoleDelivery)
//	if err != nil {
//	    return err
//	}
//	cmd, err := commands.NewAcceptOrderCommand(actor, orderID)
type Actor struct {
	id   UUID
	role Role
}

// NewActor creates an Actor from a validated identity and role.
func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// ID returns the caller's identity.
func (a Actor) ID() UUID {
	return a.id
}

// Role returns the caller's resolved role.
func (a Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the caller holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// IsAgent reports whether the caller holds the delivery-agent role.
func (a Actor) IsAgent() bool {
	return a.role == RoleDelivery
}

// Validate checks that the actor carries a constructed identity and a known role.
func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}

// Package order provides domain entities and business logic for delivery order
// management in the gas-cylinder delivery engine. It implements the DeliveryOrder
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - DeliveryOrder: the aggregate root that manages order identity, customer and
//     plan snapshots, assignment, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - FailureReason: the closed set of reasons an agent may report on failure
//
// Key business rules:
//   - Orders snapshot customer and plan data at creation time; later subscription
//     edits never affect existing orders
//   - Status moves only forward: pending -> assigned -> accepted -> out_for_delivery
//     -> delivered, with failed and cancelled as terminal branches
//   - An agent is assigned if and only if the order is past pending and not cancelled
//   - A failed order stays failed forever; recovery happens by creating a successor
//     order via Reschedule, dated one day later with an incremented retry count
//   - Admin-only events (Assign, Cancel) and agent-only events (Accept,
//     StartDelivery, Deliver, Fail) verify the caller before the status guard
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

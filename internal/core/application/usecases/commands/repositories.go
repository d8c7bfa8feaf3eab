// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, access check,
// transaction management, and persistence.
package commands

import (
	"context"

	"gasdelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface covering the repositories they
// touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// AgentRepoFactory provides access to the agent repository within a transaction.
	AgentRepoFactory interface {
		AgentRepository() ports.AgentRepository
	}

	// SubscriptionRepoFactory provides access to the subscription repository within a transaction.
	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	// OrderUoW manages transactions for order-only operations: the lifecycle
	// transitions, including the fail-and-reschedule sequence which writes the
	// failed parent and its successor in one transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DispatchUoW manages transactions for assignment, which validates the
	// target agent against the directory before binding the order.
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		AgentRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// GenerationUoW manages transactions for schedule generation, which walks
	// active subscriptions and inserts the orders they imply.
	GenerationUoW interface {
		TxManager
		OrderRepoFactory
		SubscriptionRepoFactory
	}

	// GenerationUoWFactory creates new generation unit of work instances.
	GenerationUoWFactory interface {
		Create() GenerationUoW
	}
)

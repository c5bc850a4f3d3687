// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and emission of notification intents after commit.
package commands

import (
	"context"

	"settlement/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
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

	// EscrowRepoFactory provides access to the escrow repository within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// PayoutRepoFactory provides access to the payout repository within a transaction.
	PayoutRepoFactory interface {
		PayoutRepository() ports.PayoutRepository
	}

	// OrderUoW manages transactions for order-only operations: status changes
	// that touch no money (mark ready, assign courier, pickup, dropoff,
	// dispute opening, location recording).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// SettlementUoW manages transactions that move the order and its escrow
	// entry together (open, receipt confirmation, cancellation, arbitration).
	// The status change and the funds movement commit or roll back as one.
	SettlementUoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
		AccountRepoFactory
	}

	// SettlementUoWFactory creates new settlement unit of work instances.
	SettlementUoWFactory interface {
		Create() SettlementUoW
	}

	// PayoutUoW manages transactions for payout operations, which touch the
	// payout request and the account balance together.
	PayoutUoW interface {
		TxManager
		PayoutRepoFactory
		AccountRepoFactory
	}

	// PayoutUoWFactory creates new payout unit of work instances.
	PayoutUoWFactory interface {
		Create() PayoutUoW
	}
)

package ports

import (
	"context"

	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
)

// EscrowRepository defines the persistence contract for escrow entries.
//
// UpdateFromHeld is the correctness-critical operation of the whole system:
// it must apply the entry's new status with a compare-and-set that only
// succeeds while the stored status is still Held. Two concurrent resolvers
// (say, a buyer's receipt confirmation racing an admin's arbitration) then
// produce exactly one funds movement; the loser observes
// escrow.ErrAlreadyResolved.
type EscrowRepository interface {
	// Add persists a new Held entry. Opening a second entry for the same order
	// fails with escrow.ErrDuplicateEntry.
	Add(ctx context.Context, entry *escrow.Entry) error

	// UpdateFromHeld persists a resolved entry (Released or Refunded) with a
	// compare-and-set against the Held status. Fails with
	// escrow.ErrAlreadyResolved if another caller resolved the entry first.
	UpdateFromHeld(ctx context.Context, entry *escrow.Entry) error

	// GetByOrderID retrieves the entry for an order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Entry, error)
}

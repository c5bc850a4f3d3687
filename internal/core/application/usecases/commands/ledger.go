package commands

import (
	"context"

	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// Ledger performs the escrow accounting operations shared by the settlement
// command handlers: opening a hold when an order is created, releasing it to
// the seller, or refunding it to the buyer.
//
// Ledger methods operate on repositories bound to the caller's transaction,
// so an escrow mutation and the order status change that triggered it commit
// or roll back together. The repository's compare-and-set on the Held status
// guarantees that concurrent release/refund callers produce exactly one funds
// movement; the loser gets escrow.ErrAlreadyResolved.
type Ledger struct{}

// NewLedger creates a Ledger instance.
func NewLedger() Ledger {
	return Ledger{}
}

// Open creates the Held escrow entry matching a freshly created order. The
// held amount is the order total; the release amount is the seller-bearing
// amount (item − platform fee). A second entry for the same order fails with
// escrow.ErrDuplicateEntry.
func (Ledger) Open(ctx context.Context, escrowRepo ports.EscrowRepository, o *order.Order) (*escrow.Entry, error) {
	entry, err := escrow.NewEntry(
		o.ID(),
		o.SellerID(),
		o.Pricing().Total(),
		o.Pricing().SellerAmount(),
	)
	if err != nil {
		return nil, err
	}

	if err = escrowRepo.Add(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Release resolves the order's escrow entry in the seller's favor and credits
// the seller's account balance with the seller amount. Idempotency is enforced
// by entry status, not re-derived: a second release fails with
// escrow.ErrAlreadyResolved before any credit happens.
func (Ledger) Release(
	ctx context.Context,
	escrowRepo ports.EscrowRepository,
	accountRepo ports.AccountRepository,
	orderID kernel.UUID,
) (*escrow.Entry, error) {
	entry, err := escrowRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	sellerAmount, err := entry.Release()
	if err != nil {
		return nil, err
	}

	if err = escrowRepo.UpdateFromHeld(ctx, entry); err != nil {
		return nil, err
	}

	acct, err := accountRepo.GetOrCreate(ctx, entry.SellerID())
	if err != nil {
		return nil, err
	}
	if err = acct.Credit(sellerAmount); err != nil {
		return nil, err
	}
	if err = accountRepo.Update(ctx, acct); err != nil {
		return nil, err
	}

	return entry, nil
}

// Refund resolves the order's escrow entry in the buyer's favor. No balance
// mutation happens; the payment processor returns the held total out-of-band.
// A second refund fails with escrow.ErrAlreadyResolved.
func (Ledger) Refund(ctx context.Context, escrowRepo ports.EscrowRepository, orderID kernel.UUID) (*escrow.Entry, error) {
	entry, err := escrowRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err = entry.Refund(); err != nil {
		return nil, err
	}

	if err = escrowRepo.UpdateFromHeld(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

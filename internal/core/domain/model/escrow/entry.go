// Package escrow provides the escrow ledger entry aggregate: the append-only
// record of the monetary hold opened when a buyer's payment is accepted and
// resolved exactly once to either a release or a refund.
//
// Key business rules:
//   - Exactly one entry exists per order, holding the order's total amount
//   - The Held -> Released / Held -> Refunded transition is one-way and
//     happens at most once
//   - Release yields the seller-bearing amount (item − platform fee); refund
//     returns the full total to the buyer out-of-band
package escrow

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry was not created through
	// the NewEntry or RestoreEntry factory methods.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

	// ErrDuplicateEntry is returned when a second escrow entry is opened for an
	// order that already has one. This is an integration error, not a
	// user-recoverable condition.
	ErrDuplicateEntry = errors.New("escrow entry already exists for order")
)

// Entry is the escrow ledger record for one order. It holds the buyer's full
// payment in trust and resolves exactly once: released to the seller or
// refunded to the buyer.
//
// The held amount always equals the order total. On release the seller is
// credited the seller-bearing amount (item − platform fee); on refund no
// balance mutation happens in this core, the payment processor returns the
// total to the buyer.
type Entry struct {
	// orderID ties the entry to its order; exactly one entry per order
	orderID kernel.UUID

	// sellerID identifies the party credited on release
	sellerID kernel.UUID

	// heldAmount is the order total collected from the buyer
	heldAmount kernel.Money

	// sellerAmount is what release credits: item amount minus platform fee
	sellerAmount kernel.Money

	// status is the settlement state (Held, Released, Refunded)
	status Status

	// version supports the compare-and-set guard in persistence
	version int64

	// isConstructed ensures the entry was created via a constructor
	isConstructed bool
}

// NewEntry opens a Held escrow entry for an order.
//
// Parameters:
//   - orderID, sellerID: valid identifiers
//   - heldAmount: the order total collected from the buyer
//   - sellerAmount: the amount a release will credit to the seller
func NewEntry(orderID, sellerID kernel.UUID, heldAmount, sellerAmount kernel.Money) (*Entry, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate()); err != nil {
		return nil, err
	}
	if heldAmount.LessThan(sellerAmount) {
		return nil, errors.New("seller amount exceeds held amount")
	}

	return &Entry{
		orderID:       orderID,
		sellerID:      sellerID,
		heldAmount:    heldAmount,
		sellerAmount:  sellerAmount,
		status:        Held,
		isConstructed: true,
	}, nil
}

// RestoreEntry reconstructs an Entry from persisted state.
func RestoreEntry(
	orderID, sellerID kernel.UUID,
	heldAmount, sellerAmount kernel.Money,
	status Status,
	version int64,
) (*Entry, error) {
	if err := errors.Join(orderID.Validate(), sellerID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Entry{
		orderID:       orderID,
		sellerID:      sellerID,
		heldAmount:    heldAmount,
		sellerAmount:  sellerAmount,
		status:        status,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was properly constructed.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// OrderID returns the identifier of the order this entry settles.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// SellerID returns the party credited when the entry is released.
func (e *Entry) SellerID() kernel.UUID {
	return e.sellerID
}

// HeldAmount returns the total amount held in trust.
func (e *Entry) HeldAmount() kernel.Money {
	return e.heldAmount
}

// SellerAmount returns the amount a release credits to the seller.
func (e *Entry) SellerAmount() kernel.Money {
	return e.sellerAmount
}

// Status returns the settlement state of the entry.
func (e *Entry) Status() Status {
	return e.status
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (e *Entry) Version() int64 {
	return e.version
}

// Release resolves the entry in the seller's favor and returns the amount to
// credit. Fails with ErrAlreadyResolved if the entry already left Held, which
// makes a second release a detectable no-op rather than a double payment.
func (e *Entry) Release() (kernel.Money, error) {
	newStatus, err := e.status.Release()
	if err != nil {
		return kernel.Money{}, err
	}

	e.status = newStatus
	return e.sellerAmount, nil
}

// Refund resolves the entry in the buyer's favor. No balance mutation happens
// here; the payment processor returns the held total to the buyer out-of-band.
// Fails with ErrAlreadyResolved if the entry already left Held.
func (e *Entry) Refund() error {
	newStatus, err := e.status.Refund()
	if err != nil {
		return err
	}

	e.status = newStatus
	return nil
}

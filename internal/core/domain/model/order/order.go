package order

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrInvalidCode is returned when a supplied pickup or dropoff code does not
	// match the order's secret. The order state is unchanged; the caller may
	// retry with the correct code.
	ErrInvalidCode = errors.New("supplied code does not match")

	// ErrCourierAlreadyAssigned is returned when a second courier races for an
	// order that already has one. First assignment wins; the loser should
	// refetch the order state.
	ErrCourierAlreadyAssigned = errors.New("order already has an assigned courier")

	// ErrCourierNotAssigned is returned when a pickup is confirmed before any
	// courier was assigned to the order.
	ErrCourierNotAssigned = errors.New("order has no assigned courier")

	// ErrActorNotAuthorized is returned when the acting party is not the one
	// the operation belongs to: a receipt confirmation from someone other than
	// the buyer, a pickup from a courier not assigned to the order, and so on.
	ErrActorNotAuthorized = errors.New("actor is not authorized for this operation")
)

// Order represents one unit of the fulfillment and escrow settlement workflow.
// It is the aggregate root coordinating the buyer, seller, and courier from
// payment acceptance through physical handoff to settlement.
//
// Order follows these invariants:
//   - Must have valid unique identifiers for itself, the buyer, and the seller
//   - Monetary breakdown is fixed at creation (see Pricing)
//   - Status transitions follow the state machine defined on Status
//   - The history is append-only and the last entry always carries the current status
//   - Pickup and dropoff secret codes never change after creation
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods. Operations that act on behalf of a
// party take that party's identifier explicitly and authorize it against the
// aggregate; there is no ambient "current user".
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// buyerID identifies the paying party
	buyerID kernel.UUID

	// sellerID identifies the party receiving released escrow funds
	sellerID kernel.UUID

	// courierID is the assigned courier's ID (nil until assignment)
	courierID *kernel.UUID

	// pricing is the immutable monetary breakdown
	pricing Pricing

	// pickupCode gates the seller -> courier handoff
	pickupCode string

	// dropoffCode gates the courier -> buyer handoff
	dropoffCode string

	// status is the current state in the order lifecycle
	status Status

	// history is the append-only (status, timestamp, optional position) record
	history history

	// lastKnownPosition is the most recent recorded courier position
	lastKnownPosition *kernel.GeoPosition

	// version supports optimistic concurrency control in persistence
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with an initial history
// entry. This is the only way to create a fresh order; RestoreOrder exists for
// rehydration from persistence.
//
// Parameters:
//   - id, buyerID, sellerID: valid unique identifiers
//   - pricing: the validated monetary breakdown
//   - pickupCode, dropoffCode: non-empty secret codes generated at creation
//
// Returns the constructed order or a joined validation error.
func NewOrder(
	id, buyerID, sellerID kernel.UUID,
	pricing Pricing,
	pickupCode, dropoffCode string,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setPricing(pricing),
		o.setCodes(pickupCode, dropoffCode),
	); err != nil {
		return nil, err
	}

	o.history.append(Pending, time.Now().UTC(), nil)
	return o, nil
}

// RestoreOrder reconstructs an Order from persisted state.
// Used by repository implementations; validates identifiers, pricing, status,
// and the status/courier consistency rules before returning the aggregate.
func RestoreOrder(
	id, buyerID, sellerID kernel.UUID,
	courierID *kernel.UUID,
	pricing Pricing,
	pickupCode, dropoffCode string,
	status Status,
	entries []HistoryEntry,
	lastKnownPosition *kernel.GeoPosition,
	version int64,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setBuyerID(buyerID),
		o.setSellerID(sellerID),
		o.setPricing(pricing),
		o.setCodes(pickupCode, dropoffCode),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.status = status
	o.history = history{entries: entries}
	o.lastKnownPosition = lastKnownPosition
	o.version = version
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for nil or directly instantiated orders.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// Courier returns the assigned courier's ID, or nil if none is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Pricing returns the order's monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// PickupCode returns the secret gating the seller -> courier handoff.
func (o *Order) PickupCode() string {
	return o.pickupCode
}

// DropoffCode returns the secret gating the courier -> buyer handoff.
func (o *Order) DropoffCode() string {
	return o.dropoffCode
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only history.
func (o *Order) History() []HistoryEntry {
	return o.history.snapshot()
}

// LastKnownPosition returns the most recent recorded courier position,
// or nil if no position has been recorded.
func (o *Order) LastKnownPosition() *kernel.GeoPosition {
	return o.lastKnownPosition
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (o *Order) Version() int64 {
	return o.version
}

// MarkReadyForPickup announces that the goods are packed and a courier may
// collect them. Only the order's seller may do this, and only from Pending.
func (o *Order) MarkReadyForPickup(sellerID kernel.UUID) error {
	if !o.sellerID.IsEqual(sellerID) {
		return ErrActorNotAuthorized
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// AssignCourier records the first courier to claim the order.
//
// Business rules:
//   - valid only from ReadyForPickup
//   - first assignment wins: a second assignment fails with
//     ErrCourierAlreadyAssigned even for the same courier
//
// Assignment does not change the order's status, so no history entry is
// appended; the status machine has no separate "assigned" state.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if o.status != ReadyForPickup {
		return o.status.invalidTransition("assign courier")
	}

	if o.courierID != nil {
		return ErrCourierAlreadyAssigned
	}

	o.courierID = &courierID
	return nil
}

// ConfirmPickup verifies the pickup code and moves the order into transit.
//
// Business rules:
//   - valid only from ReadyForPickup with an assigned courier
//   - only the assigned courier may confirm
//   - the code comparison is constant-time; on mismatch the order is untouched
//     and ErrInvalidCode is returned so the courier can retry
func (o *Order) ConfirmPickup(courierID kernel.UUID, suppliedCode string) error {
	if o.status != ReadyForPickup {
		return o.status.invalidTransition("confirm pickup")
	}
	if o.courierID == nil {
		return ErrCourierNotAssigned
	}
	if !o.courierID.IsEqual(courierID) {
		return ErrActorNotAuthorized
	}
	if !kernel.SecureCompare(o.pickupCode, suppliedCode) {
		return ErrInvalidCode
	}

	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// ConfirmDropoff verifies the dropoff code and marks the goods as delivered.
//
// Business rules mirror ConfirmPickup: valid only from InTransit, only for the
// assigned courier, constant-time code check, no state change on mismatch.
func (o *Order) ConfirmDropoff(courierID kernel.UUID, suppliedCode string) error {
	if o.status != InTransit {
		return o.status.invalidTransition("confirm dropoff")
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrActorNotAuthorized
	}
	if !kernel.SecureCompare(o.dropoffCode, suppliedCode) {
		return ErrInvalidCode
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// ConfirmReceipt completes the order on behalf of the buyer.
// Valid only from Delivered; the caller must release escrow in the same
// transactional unit.
func (o *Order) ConfirmReceipt(buyerID kernel.UUID) error {
	if !o.buyerID.IsEqual(buyerID) {
		return ErrActorNotAuthorized
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// OpenDispute freezes the order pending administrative arbitration.
// Only the buyer may open a dispute, from any non-terminal state. Escrow
// stays held; arbitration produces the terminal outcome.
func (o *Order) OpenDispute(buyerID kernel.UUID) error {
	if !o.buyerID.IsEqual(buyerID) {
		return ErrActorNotAuthorized
	}

	newStatus, err := o.status.Dispute()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// Cancel terminates the order before physical handoff.
// Either the buyer or the seller may cancel, only from Pending or
// ReadyForPickup; the caller must refund escrow in the same transactional unit.
func (o *Order) Cancel(actorID kernel.UUID) error {
	if !o.buyerID.IsEqual(actorID) && !o.sellerID.IsEqual(actorID) {
		return ErrActorNotAuthorized
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// ResolveCompleted terminates a disputed order in the seller's favor.
// Admin identity is authorized by the arbitration workflow, not the aggregate.
func (o *Order) ResolveCompleted() error {
	newStatus, err := o.status.ResolveCompleted()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// ResolveCanceled terminates a disputed order in the buyer's favor.
// Admin identity is authorized by the arbitration workflow, not the aggregate.
func (o *Order) ResolveCanceled() error {
	newStatus, err := o.status.ResolveCanceled()
	if err != nil {
		return err
	}

	o.transitionTo(newStatus)
	return nil
}

// RecordPosition appends a location sample from the assigned courier.
//
// Business rules:
//   - valid only while InTransit
//   - only the assigned courier's samples are accepted
//   - the sample becomes a location-tagged history entry (status unchanged)
//     and the order's last known position
//
// Throttling of high-frequency samples happens upstream in the location
// tracker; the aggregate records whatever survives it.
func (o *Order) RecordPosition(courierID kernel.UUID, position kernel.GeoPosition, observedAt time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}
	if o.status != InTransit {
		return o.status.invalidTransition("record position")
	}
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return ErrActorNotAuthorized
	}

	pos := position
	o.history.append(o.status, observedAt.UTC(), &pos)
	o.lastKnownPosition = &pos
	return nil
}

// transitionTo applies an already-validated status change and appends the
// matching history entry, keeping status and history in lockstep.
func (o *Order) transitionTo(newStatus Status) {
	o.status = newStatus
	o.history.append(newStatus, time.Now().UTC(), nil)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	o.buyerID = id
	return nil
}

func (o *Order) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	o.sellerID = id
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}

func (o *Order) setCodes(pickupCode, dropoffCode string) error {
	if pickupCode == "" {
		return errs.NewValueIsRequiredError("pickupCode")
	}
	if dropoffCode == "" {
		return errs.NewValueIsRequiredError("dropoffCode")
	}
	o.pickupCode = pickupCode
	o.dropoffCode = dropoffCode
	return nil
}

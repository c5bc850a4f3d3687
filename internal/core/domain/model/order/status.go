package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when an operation is requested that the
// order's current status does not allow. The caller's view of the order is
// stale or the request is out of order; refetching the order and retrying the
// appropriate operation is always safe.
var ErrInvalidTransition = errors.New("invalid order status transition")

// Status represents the lifecycle state of an order in the fulfillment
// workflow. It implements a state machine with defined transitions to ensure
// orders follow the correct settlement workflow.
//
// State transitions:
//
//	Pending ──> ReadyForPickup ──> InTransit ──> Delivered ──> Completed
//	   │              │                │             │
//	   ├──> Canceled  ├──> Canceled    │             │
//	   └──────────────┴────────────────┴─────────────┴──> InDispute ──> Completed
//	                                                          │
//	                                                          └──> Canceled
//
// Completed and Canceled are terminal. InDispute is only left through
// administrative arbitration.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status after payment is accepted and escrow opened.
	// The seller has not yet prepared the goods for pickup.
	Pending

	// ReadyForPickup indicates the seller has packed the goods and a courier
	// may be assigned and collect them.
	ReadyForPickup

	// InTransit indicates the courier verified the pickup code and holds the
	// goods. Location samples are recorded while in this status.
	InTransit

	// Delivered indicates the courier verified the dropoff code and handed the
	// goods to the buyer. Awaiting buyer receipt confirmation.
	Delivered

	// Completed indicates the buyer confirmed receipt (or arbitration sided
	// with the seller) and escrow was released. Terminal.
	Completed

	// InDispute indicates the buyer froze the order pending administrative
	// arbitration. Escrow stays held.
	InDispute

	// Canceled indicates the order was canceled before handoff (or arbitration
	// sided with the buyer) and escrow was refunded. Terminal.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		ReadyForPickup: "ReadyForPickup",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
		Completed:      "Completed",
		InDispute:      "InDispute",
		Canceled:       "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		ReadyForPickup: "ReadyForPickup",
		InTransit:      "InTransit",
		Delivered:      "Delivered",
		Completed:      "Completed",
		InDispute:      "InDispute",
		Canceled:       "Canceled",
	}
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid. This is used to ensure
// Status values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%w: %d is not a valid status", ErrInvalidTransition, s)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Canceled
}

// invalidTransition builds the uniform error for a disallowed transition,
// wrapping ErrInvalidTransition so callers can classify it with errors.Is.
func (s Status) invalidTransition(operation string) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrInvalidTransition, operation, s)
}

// MarkReady transitions the status to ReadyForPickup.
//
// Valid transitions:
//   - Pending -> ReadyForPickup
func (s Status) MarkReady() (Status, error) {
	if s != Pending {
		return 0, s.invalidTransition("mark ready for pickup")
	}
	return ReadyForPickup, nil
}

// StartTransit transitions the status to InTransit after a verified pickup.
//
// Valid transitions:
//   - ReadyForPickup -> InTransit
func (s Status) StartTransit() (Status, error) {
	if s != ReadyForPickup {
		return 0, s.invalidTransition("confirm pickup")
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered after a verified dropoff.
//
// Valid transitions:
//   - InTransit -> Delivered
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, s.invalidTransition("confirm dropoff")
	}
	return Delivered, nil
}

// Complete transitions the status to Completed on buyer receipt confirmation.
//
// Valid transitions:
//   - Delivered -> Completed
//
// Completed is a final state with no further transitions possible.
func (s Status) Complete() (Status, error) {
	if s != Delivered {
		return 0, s.invalidTransition("confirm receipt")
	}
	return Completed, nil
}

// Dispute transitions the status to InDispute.
//
// Valid from every status except the terminal ones and InDispute itself;
// a dispute that is already open cannot be opened again.
func (s Status) Dispute() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() || s == InDispute {
		return 0, s.invalidTransition("open dispute")
	}
	return InDispute, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions (only before physical handoff):
//   - Pending -> Canceled
//   - ReadyForPickup -> Canceled
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != ReadyForPickup {
		return 0, s.invalidTransition("cancel")
	}
	return Canceled, nil
}

// ResolveCompleted transitions the status to Completed by administrative
// arbitration in favor of the seller.
//
// Valid transitions:
//   - InDispute -> Completed
func (s Status) ResolveCompleted() (Status, error) {
	if s != InDispute {
		return 0, s.invalidTransition("resolve dispute for seller")
	}
	return Completed, nil
}

// ResolveCanceled transitions the status to Canceled by administrative
// arbitration in favor of the buyer.
//
// Valid transitions:
//   - InDispute -> Canceled
func (s Status) ResolveCanceled() (Status, error) {
	if s != InDispute {
		return 0, s.invalidTransition("resolve dispute for buyer")
	}
	return Canceled, nil
}

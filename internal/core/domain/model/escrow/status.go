package escrow

import (
	"errors"
	"fmt"
)

// ErrAlreadyResolved is returned when a release or refund is attempted on an
// entry that already left Held. It signals that a concurrent caller won the
// race and the funds were moved exactly once; the caller's view is stale, not
// corrupt.
var ErrAlreadyResolved = errors.New("escrow entry already resolved")

// Status represents the settlement state of escrowed funds.
//
// State transitions:
//
//	Held ──┬──> Released  (funds credited to the seller)
//	       └──> Refunded  (funds returned to the buyer out-of-band)
//
// Both transitions are one-way; Released and Refunded are terminal. The
// transition out of Held happens at most once per entry, which is the
// foundation of the "never pay twice, never vanish" invariant.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Held means the buyer's payment is in trust awaiting resolution.
	Held

	// Released means the seller was credited the seller-bearing amount. Terminal.
	Released

	// Refunded means the buyer is refunded by the payment processor. Terminal.
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Held:     "Held",
		Released: "Released",
		Refunded: "Refunded",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Held && s != Released && s != Refunded {
		return fmt.Errorf("%d is not a valid escrow status", s)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Release transitions the status to Released.
// Valid only from Held; anything else fails with ErrAlreadyResolved.
func (s Status) Release() (Status, error) {
	if s != Held {
		return 0, ErrAlreadyResolved
	}
	return Released, nil
}

// Refund transitions the status to Refunded.
// Valid only from Held; anything else fails with ErrAlreadyResolved.
func (s Status) Refund() (Status, error) {
	if s != Held {
		return 0, ErrAlreadyResolved
	}
	return Refunded, nil
}

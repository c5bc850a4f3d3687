package payout

import (
	"errors"
	"fmt"
)

// ErrRequestAlreadyResolved is returned when approving or rejecting a payout
// request that is no longer pending. A request is resolved exactly once.
var ErrRequestAlreadyResolved = errors.New("payout request already resolved")

// Status represents the lifecycle state of a payout request.
//
// State transitions:
//
//	Pending ──┬──> Completed  (approved, balance debited)
//	          └──> Failed     (rejected, or insufficient balance at approval)
//
// Completed and Failed are terminal; a request is mutated once by an admin
// action and is immutable afterwards.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending means the request awaits admin review. Funds are not reserved.
	Pending

	// Completed means the request was approved and the balance debited. Terminal.
	Completed

	// Failed means the request was rejected, with a human-readable reason. Terminal.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Completed: "Completed",
		Failed:    "Failed",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != Pending && s != Completed && s != Failed {
		return fmt.Errorf("%d is not a valid payout status", s)
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

// Complete transitions the status to Completed.
// Valid only from Pending.
func (s Status) Complete() (Status, error) {
	if s != Pending {
		return 0, ErrRequestAlreadyResolved
	}
	return Completed, nil
}

// Fail transitions the status to Failed.
// Valid only from Pending.
func (s Status) Fail() (Status, error) {
	if s != Pending {
		return 0, ErrRequestAlreadyResolved
	}
	return Failed, nil
}

package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrRejectPayoutCommandIsNotConstructed = errors.New(
	"RejectPayoutCommand must be created via NewRejectPayoutCommand constructor",
)

// RejectPayoutCommand represents an arbiter rejecting a pending payout.
type RejectPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID  kernel.UUID
	arbiterID kernel.UUID
	reason    string

	guard guard.ConstructorGuard
}

// NewRejectPayoutCommand creates a command to reject a payout request with a
// human-readable reason.
func NewRejectPayoutCommand(payoutID, arbiterID kernel.UUID, reason string) (RejectPayoutCommand, error) {
	cmd := RejectPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setArbiterID(arbiterID),
		cmd.setReason(reason),
	); err != nil {
		return RejectPayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRejectPayoutCommandIsNotConstructed)
}

// PayoutID returns the payout request being rejected.
func (c RejectPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// ArbiterID returns the rejecting arbiter's identifier.
func (c RejectPayoutCommand) ArbiterID() kernel.UUID {
	return c.arbiterID
}

// Reason returns why the request was rejected.
func (c RejectPayoutCommand) Reason() string {
	return c.reason
}

func (c *RejectPayoutCommand) setPayoutID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.payoutID = id
	return nil
}

func (c *RejectPayoutCommand) setArbiterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arbiterID", err)
	}
	c.arbiterID = id
	return nil
}

func (c *RejectPayoutCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}

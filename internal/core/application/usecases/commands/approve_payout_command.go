package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrApprovePayoutCommandIsNotConstructed = errors.New(
	"ApprovePayoutCommand must be created via NewApprovePayoutCommand constructor",
)

// ApprovePayoutCommand represents an arbiter approving a pending payout.
type ApprovePayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID  kernel.UUID
	arbiterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewApprovePayoutCommand creates a command to approve a payout request.
func NewApprovePayoutCommand(payoutID, arbiterID kernel.UUID) (ApprovePayoutCommand, error) {
	cmd := ApprovePayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setArbiterID(arbiterID),
	); err != nil {
		return ApprovePayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApprovePayoutCommand) Validate() error {
	return c.guard.Validate(ErrApprovePayoutCommandIsNotConstructed)
}

// PayoutID returns the payout request being approved.
func (c ApprovePayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// ArbiterID returns the approving arbiter's identifier.
func (c ApprovePayoutCommand) ArbiterID() kernel.UUID {
	return c.arbiterID
}

func (c *ApprovePayoutCommand) setPayoutID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.payoutID = id
	return nil
}

func (c *ApprovePayoutCommand) setArbiterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arbiterID", err)
	}
	c.arbiterID = id
	return nil
}

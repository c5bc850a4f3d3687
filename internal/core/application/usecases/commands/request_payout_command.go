package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrRequestPayoutCommandIsNotConstructed = errors.New(
	"RequestPayoutCommand must be created via NewRequestPayoutCommand constructor",
)

// RequestPayoutCommand represents a seller asking to move part of their
// balance to an external destination.
type RequestPayoutCommand struct { //nolint:recvcheck //using for validation
	payoutID    kernel.UUID
	accountID   kernel.UUID
	amount      kernel.Money
	destination string

	guard guard.ConstructorGuard
}

// NewRequestPayoutCommand creates a command to request a payout.
func NewRequestPayoutCommand(
	payoutID, accountID kernel.UUID,
	amount kernel.Money,
	destination string,
) (RequestPayoutCommand, error) {
	cmd := RequestPayoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPayoutID(payoutID),
		cmd.setAccountID(accountID),
		cmd.setAmount(amount),
		cmd.setDestination(destination),
	); err != nil {
		return RequestPayoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestPayoutCommand) Validate() error {
	return c.guard.Validate(ErrRequestPayoutCommandIsNotConstructed)
}

// PayoutID returns the identifier of the payout request being created.
func (c RequestPayoutCommand) PayoutID() kernel.UUID {
	return c.payoutID
}

// AccountID returns the account the payout draws from.
func (c RequestPayoutCommand) AccountID() kernel.UUID {
	return c.accountID
}

// Amount returns the requested amount.
func (c RequestPayoutCommand) Amount() kernel.Money {
	return c.amount
}

// Destination returns the external destination reference.
func (c RequestPayoutCommand) Destination() string {
	return c.destination
}

func (c *RequestPayoutCommand) setPayoutID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.payoutID = id
	return nil
}

func (c *RequestPayoutCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("accountID", err)
	}
	c.accountID = id
	return nil
}

func (c *RequestPayoutCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	c.amount = amount
	return nil
}

func (c *RequestPayoutCommand) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	c.destination = destination
	return nil
}

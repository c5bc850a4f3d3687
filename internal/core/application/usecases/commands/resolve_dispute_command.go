package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrResolveDisputeCommandIsNotConstructed = errors.New(
	"ResolveDisputeCommand must be created via NewResolveDisputeCommand constructor",
)

// Resolution names the party a dispute is decided in favor of.
type Resolution string

const (
	// ResolutionBuyer refunds the escrowed total and cancels the order.
	ResolutionBuyer Resolution = "buyer"
	// ResolutionSeller releases the escrow and completes the order.
	ResolutionSeller Resolution = "seller"
)

// Validate checks that the resolution names a known party.
func (r Resolution) Validate() error {
	switch r {
	case ResolutionBuyer, ResolutionSeller:
		return nil
	default:
		return errs.NewValueIsInvalidError("resolution")
	}
}

// ResolveDisputeCommand represents an arbiter's decision on a disputed order.
type ResolveDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	arbiterID  kernel.UUID
	resolution Resolution

	guard guard.ConstructorGuard
}

// NewResolveDisputeCommand creates a command to resolve a dispute in favor of
// the buyer or the seller.
func NewResolveDisputeCommand(orderID, arbiterID kernel.UUID, resolution Resolution) (ResolveDisputeCommand, error) {
	cmd := ResolveDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setArbiterID(arbiterID),
		cmd.setResolution(resolution),
	); err != nil {
		return ResolveDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDisputeCommand) Validate() error {
	return c.guard.Validate(ErrResolveDisputeCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c ResolveDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ArbiterID returns the deciding arbiter's identifier.
func (c ResolveDisputeCommand) ArbiterID() kernel.UUID {
	return c.arbiterID
}

// Resolution returns the party the dispute is decided for.
func (c ResolveDisputeCommand) Resolution() Resolution {
	return c.resolution
}

func (c *ResolveDisputeCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ResolveDisputeCommand) setArbiterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("arbiterID", err)
	}
	c.arbiterID = id
	return nil
}

func (c *ResolveDisputeCommand) setResolution(r Resolution) error {
	if err := r.Validate(); err != nil {
		return err
	}
	c.resolution = r
	return nil
}

package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand represents a buyer freezing an order pending
// administrative arbitration. Escrow stays held until an admin resolves.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewOpenDisputeCommand creates a command to open a dispute on an order.
func NewOpenDisputeCommand(orderID, buyerID kernel.UUID) (OpenDisputeCommand, error) {
	cmd := OpenDisputeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
	); err != nil {
		return OpenDisputeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

// OrderID returns the disputed order.
func (c OpenDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the acting buyer's identifier.
func (c OpenDisputeCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *OpenDisputeCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *OpenDisputeCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	c.buyerID = id
	return nil
}

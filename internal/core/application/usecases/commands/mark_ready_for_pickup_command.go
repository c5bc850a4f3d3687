package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrMarkReadyForPickupCommandIsNotConstructed = errors.New(
	"MarkReadyForPickupCommand must be created via NewMarkReadyForPickupCommand constructor",
)

// MarkReadyForPickupCommand represents a seller announcing the goods are
// packed and ready for courier collection.
type MarkReadyForPickupCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	sellerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyForPickupCommand creates a command to mark an order ready for pickup.
func NewMarkReadyForPickupCommand(orderID, sellerID kernel.UUID) (MarkReadyForPickupCommand, error) {
	cmd := MarkReadyForPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSellerID(sellerID),
	); err != nil {
		return MarkReadyForPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkReadyForPickupCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyForPickupCommandIsNotConstructed)
}

// OrderID returns the order to mark ready.
func (c MarkReadyForPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SellerID returns the acting seller's identifier.
func (c MarkReadyForPickupCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c *MarkReadyForPickupCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *MarkReadyForPickupCommand) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	c.sellerID = id
	return nil
}

package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrConfirmReceiptCommandIsNotConstructed = errors.New(
	"ConfirmReceiptCommand must be created via NewConfirmReceiptCommand constructor",
)

// ConfirmReceiptCommand represents the buyer acknowledging the delivered
// goods, which completes the order and releases escrow to the seller.
type ConfirmReceiptCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	buyerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmReceiptCommand creates a command to confirm receipt of an order.
func NewConfirmReceiptCommand(orderID, buyerID kernel.UUID) (ConfirmReceiptCommand, error) {
	cmd := ConfirmReceiptCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
	); err != nil {
		return ConfirmReceiptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmReceiptCommand) Validate() error {
	return c.guard.Validate(ErrConfirmReceiptCommandIsNotConstructed)
}

// OrderID returns the order being completed.
func (c ConfirmReceiptCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the acting buyer's identifier.
func (c ConfirmReceiptCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c *ConfirmReceiptCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmReceiptCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	c.buyerID = id
	return nil
}

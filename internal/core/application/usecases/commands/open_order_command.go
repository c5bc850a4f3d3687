package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var (
	ErrOpenOrderCommandIsNotConstructed = errors.New(
		"OpenOrderCommand must be created via NewOpenOrderCommand constructor",
	)
	ErrItemAmountIsRequired = errors.New("item amount must be greater than 0")
)

// OpenOrderCommand represents an accepted buyer payment entering the
// fulfillment workflow: the order to create and its monetary breakdown.
// The platform fee is not part of the command; the handler computes it from
// the configured fee rate.
//
// Example:
//
//	cmd, err := NewOpenOrderCommand(orderID, buyerID, sellerID,
//	    kernel.MustMoney(120_000), kernel.MustMoney(5_000))
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewOpenOrderCommandHandler(uowFactory, notifier, 500)
//	created, err := handler.Handle(ctx, cmd)
type OpenOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	buyerID     kernel.UUID
	sellerID    kernel.UUID
	itemAmount  kernel.Money
	deliveryFee kernel.Money

	guard guard.ConstructorGuard
}

// NewOpenOrderCommand creates a command to open a new order with escrow.
// Validates that all identifiers are valid and the item amount is positive.
func NewOpenOrderCommand(
	orderID, buyerID, sellerID kernel.UUID,
	itemAmount, deliveryFee kernel.Money,
) (OpenOrderCommand, error) {
	cmd := OpenOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setBuyerID(buyerID),
		cmd.setSellerID(sellerID),
		cmd.setAmounts(itemAmount, deliveryFee),
	); err != nil {
		return OpenOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c OpenOrderCommand) Validate() error {
	return c.guard.Validate(ErrOpenOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c OpenOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// BuyerID returns the paying party's identifier.
func (c OpenOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the selling party's identifier.
func (c OpenOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// ItemAmount returns the price of the goods.
func (c OpenOrderCommand) ItemAmount() kernel.Money {
	return c.itemAmount
}

// DeliveryFee returns the courier delivery fee.
func (c OpenOrderCommand) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

func (c *OpenOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *OpenOrderCommand) setBuyerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("buyerID", err)
	}
	c.buyerID = id
	return nil
}

func (c *OpenOrderCommand) setSellerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sellerID", err)
	}
	c.sellerID = id
	return nil
}

func (c *OpenOrderCommand) setAmounts(itemAmount, deliveryFee kernel.Money) error {
	if itemAmount.IsZero() {
		return ErrItemAmountIsRequired
	}
	c.itemAmount = itemAmount
	c.deliveryFee = deliveryFee
	return nil
}

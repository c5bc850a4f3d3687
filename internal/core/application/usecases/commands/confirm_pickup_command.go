package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents a courier presenting the pickup code to
// take custody of the goods from the seller.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	courierID    kernel.UUID
	suppliedCode string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm the seller -> courier handoff.
func NewConfirmPickupCommand(orderID, courierID kernel.UUID, suppliedCode string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setSuppliedCode(suppliedCode),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the order being picked up.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the acting courier's identifier.
func (c ConfirmPickupCommand) CourierID() kernel.UUID {
	return c.courierID
}

// SuppliedCode returns the code the courier presented.
func (c ConfirmPickupCommand) SuppliedCode() string {
	return c.suppliedCode
}

func (c *ConfirmPickupCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmPickupCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	c.courierID = id
	return nil
}

func (c *ConfirmPickupCommand) setSuppliedCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("suppliedCode")
	}
	c.suppliedCode = code
	return nil
}

package commands

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrConfirmDropoffCommandIsNotConstructed = errors.New(
	"ConfirmDropoffCommand must be created via NewConfirmDropoffCommand constructor",
)

// ConfirmDropoffCommand represents a courier presenting the buyer's dropoff
// code to hand the goods over at the destination.
type ConfirmDropoffCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	courierID    kernel.UUID
	suppliedCode string

	guard guard.ConstructorGuard
}

// NewConfirmDropoffCommand creates a command to confirm the courier -> buyer handoff.
func NewConfirmDropoffCommand(orderID, courierID kernel.UUID, suppliedCode string) (ConfirmDropoffCommand, error) {
	cmd := ConfirmDropoffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setSuppliedCode(suppliedCode),
	); err != nil {
		return ConfirmDropoffCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDropoffCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDropoffCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c ConfirmDropoffCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the acting courier's identifier.
func (c ConfirmDropoffCommand) CourierID() kernel.UUID {
	return c.courierID
}

// SuppliedCode returns the code the buyer handed to the courier.
func (c ConfirmDropoffCommand) SuppliedCode() string {
	return c.suppliedCode
}

func (c *ConfirmDropoffCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *ConfirmDropoffCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	c.courierID = id
	return nil
}

func (c *ConfirmDropoffCommand) setSuppliedCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("suppliedCode")
	}
	c.suppliedCode = code
	return nil
}

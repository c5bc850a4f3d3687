package commands

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var ErrRecordLocationCommandIsNotConstructed = errors.New(
	"RecordLocationCommand must be created via NewRecordLocationCommand constructor",
)

// RecordLocationCommand represents a single courier position sample for an
// order in transit.
type RecordLocationCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	courierID  kernel.UUID
	position   kernel.GeoPosition
	observedAt time.Time

	guard guard.ConstructorGuard
}

// NewRecordLocationCommand creates a command to record a courier position.
func NewRecordLocationCommand(
	orderID, courierID kernel.UUID,
	position kernel.GeoPosition,
	observedAt time.Time,
) (RecordLocationCommand, error) {
	cmd := RecordLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierID(courierID),
		cmd.setPosition(position),
		cmd.setObservedAt(observedAt),
	); err != nil {
		return RecordLocationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordLocationCommand) Validate() error {
	return c.guard.Validate(ErrRecordLocationCommandIsNotConstructed)
}

// OrderID returns the tracked order.
func (c RecordLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the reporting courier's identifier.
func (c RecordLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Position returns the reported position.
func (c RecordLocationCommand) Position() kernel.GeoPosition {
	return c.position
}

// ObservedAt returns when the position was observed by the device.
func (c RecordLocationCommand) ObservedAt() time.Time {
	return c.observedAt
}

func (c *RecordLocationCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *RecordLocationCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	c.courierID = id
	return nil
}

func (c *RecordLocationCommand) setPosition(position kernel.GeoPosition) error {
	if err := position.Validate(); err != nil {
		return err
	}
	c.position = position
	return nil
}

func (c *RecordLocationCommand) setObservedAt(observedAt time.Time) error {
	if observedAt.IsZero() {
		return errs.NewValueIsRequiredError("observedAt")
	}
	c.observedAt = observedAt
	return nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// ConfirmPickupCommandHandler verifies the pickup code and moves the order
// into transit, starting location tracking on the courier's device context.
//
// A wrong code fails with order.ErrInvalidCode and leaves the order untouched;
// the courier may retry with the correct code.
type ConfirmPickupCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	tracking   TrackingControl
}

// NewConfirmPickupCommandHandler creates a handler for pickup confirmation operations.
func NewConfirmPickupCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	tracking TrackingControl,
) ConfirmPickupCommandHandler {
	return ConfirmPickupCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		tracking:   tracking,
	}
}

// Handle processes the pickup confirmation. Tracking starts only after the
// transition is committed, so a rolled-back pickup never leaves a live
// tracking context behind.
func (h ConfirmPickupCommandHandler) Handle(ctx context.Context, cmd ConfirmPickupCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.ConfirmPickup(cmd.CourierID(), cmd.SuppliedCode()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.tracking.StartTracking(cmd.CourierID(), o.ID())

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.BuyerID(),
		Message: "Your order is on its way",
		Link:    "/orders/" + o.ID().String() + "/tracking",
	})

	return o, nil
}

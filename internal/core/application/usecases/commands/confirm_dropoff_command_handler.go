package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// ConfirmDropoffCommandHandler verifies the dropoff code, marks the order
// Delivered, and stops location tracking for it. Escrow stays held until the
// buyer confirms receipt.
type ConfirmDropoffCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	tracking   TrackingControl
}

// NewConfirmDropoffCommandHandler creates a handler for dropoff confirmation operations.
func NewConfirmDropoffCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	tracking TrackingControl,
) ConfirmDropoffCommandHandler {
	return ConfirmDropoffCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		tracking:   tracking,
	}
}

// Handle processes the dropoff confirmation.
func (h ConfirmDropoffCommandHandler) Handle(ctx context.Context, cmd ConfirmDropoffCommand) (*order.Order, error) {
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

	if err = o.ConfirmDropoff(cmd.CourierID(), cmd.SuppliedCode()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.tracking.StopTracking(o.ID())

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.BuyerID(),
		Message: "Your order was delivered, please confirm receipt",
		Link:    "/orders/" + o.ID().String(),
	})

	return o, nil
}

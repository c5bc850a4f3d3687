package commands

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// OpenDisputeCommandHandler freezes an order for arbitration on the buyer's
// request. Valid from any non-terminal state; escrow remains held. Both the
// seller and the platform arbitration desk are notified.
type OpenDisputeCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	tracking   TrackingControl
	arbiterID  kernel.UUID
}

// NewOpenDisputeCommandHandler creates a handler for dispute opening operations.
// arbiterID identifies the admin inbox that receives dispute notifications.
func NewOpenDisputeCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	tracking TrackingControl,
	arbiterID kernel.UUID,
) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		tracking:   tracking,
		arbiterID:  arbiterID,
	}
}

// Handle processes the dispute opening. A dispute opened while the order was
// in transit also stops location tracking; the courier's custody is in
// question until arbitration resolves.
func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) (*order.Order, error) {
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

	if err = o.OpenDispute(cmd.BuyerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.tracking.StopTracking(o.ID())

	link := "/orders/" + o.ID().String()
	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.SellerID(),
		Message: "The buyer opened a dispute on your order",
		Link:    link,
	})
	h.notifier.Publish(ctx, ports.Notification{
		UserID:  h.arbiterID,
		Message: "A dispute needs arbitration",
		Link:    "/admin/disputes/" + o.ID().String(),
	})

	return o, nil
}

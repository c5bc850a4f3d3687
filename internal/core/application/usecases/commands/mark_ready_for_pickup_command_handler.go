package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
)

// MarkReadyForPickupCommandHandler moves an order from Pending to
// ReadyForPickup on behalf of its seller. No escrow effect.
type MarkReadyForPickupCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkReadyForPickupCommandHandler creates a handler for the ready-for-pickup operation.
func NewMarkReadyForPickupCommandHandler(uowFactory OrderUoWFactory) MarkReadyForPickupCommandHandler {
	return MarkReadyForPickupCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command. Fails with order.ErrInvalidTransition unless
// the order is Pending, and with order.ErrActorNotAuthorized if the actor is
// not the order's seller.
func (h MarkReadyForPickupCommandHandler) Handle(
	ctx context.Context,
	cmd MarkReadyForPickupCommand,
) (*order.Order, error) {
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

	if err = o.MarkReadyForPickup(cmd.SellerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

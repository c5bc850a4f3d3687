package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// AssignCourierCommandHandler records the first courier to claim a ready
// order. Two couriers racing for the same order are serialized by the
// order repository's version guard; the loser's transaction fails and the
// retry observes order.ErrCourierAlreadyAssigned.
//
// Example:
//
//	handler := NewAssignCourierCommandHandler(uowFactory, notifier)
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrCourierAlreadyAssigned) {
//	    // another courier got there first; pick a different order
//	}
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
}

// NewAssignCourierCommandHandler creates a handler for courier assignment operations.
func NewAssignCourierCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the courier assignment command and notifies the seller
// that a courier is on the way.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (*order.Order, error) {
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

	if err = o.AssignCourier(cmd.CourierID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.SellerID(),
		Message: "A courier was assigned to your order",
		Link:    "/orders/" + o.ID().String(),
	})

	return o, nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// CancelOrderCommandHandler cancels an order and refunds the escrowed total
// to the buyer in the same transaction. Only the buyer or the seller may
// cancel, and only before the courier has picked the package up.
type CancelOrderCommandHandler struct {
	uowFactory SettlementUoWFactory
	notifier   ports.Notifier
	ledger     Ledger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation operations.
func NewCancelOrderCommandHandler(uowFactory SettlementUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		ledger:     NewLedger(),
	}
}

// Handle processes the cancellation.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
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

	if err = o.Cancel(cmd.ActorID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if _, err = h.ledger.Refund(ctx, uow.EscrowRepository(), o.ID()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.BuyerID(),
		Message: "Order canceled, " + o.Pricing().Total().String() + " refunded",
		Link:    "/orders/" + o.ID().String(),
	})
	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.SellerID(),
		Message: "Order canceled",
		Link:    "/orders/" + o.ID().String(),
	})

	return o, nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// ConfirmReceiptCommandHandler completes an order on the buyer's confirmation
// and releases the escrowed funds to the seller, as one atomic unit: if the
// release fails for any reason, the Completed transition rolls back with it.
//
// Calling Handle twice for the same order is safe: the second call observes
// the Completed status (or escrow.ErrAlreadyResolved under a tight race) and
// the seller is credited exactly once.
//
// Example:
//
//	handler := NewConfirmReceiptCommandHandler(uowFactory, notifier)
//	o, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrInvalidTransition):
//	    // not yet delivered, or already handled
//	case errors.Is(err, escrow.ErrAlreadyResolved):
//	    // a concurrent resolver won; funds moved exactly once
//	}
type ConfirmReceiptCommandHandler struct {
	uowFactory SettlementUoWFactory
	notifier   ports.Notifier
	ledger     Ledger
}

// NewConfirmReceiptCommandHandler creates a handler for receipt confirmation operations.
func NewConfirmReceiptCommandHandler(uowFactory SettlementUoWFactory, notifier ports.Notifier) ConfirmReceiptCommandHandler {
	return ConfirmReceiptCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		ledger:     NewLedger(),
	}
}

// Handle processes the receipt confirmation.
func (h ConfirmReceiptCommandHandler) Handle(ctx context.Context, cmd ConfirmReceiptCommand) (*order.Order, error) {
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

	if err = o.ConfirmReceipt(cmd.BuyerID()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	entry, err := h.ledger.Release(ctx, uow.EscrowRepository(), uow.AccountRepository(), o.ID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.SellerID(),
		Message: "Order completed, " + entry.SellerAmount().String() + " released to your balance",
		Link:    "/orders/" + o.ID().String(),
	})

	return o, nil
}

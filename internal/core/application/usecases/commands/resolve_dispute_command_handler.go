package commands

import (
	"context"

	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
)

// ResolveDisputeCommandHandler applies an arbiter's verdict to a disputed
// order. A verdict for the seller releases the escrow and completes the
// order; a verdict for the buyer refunds the escrow and cancels it. Either
// way the escrow entry leaves Held exactly once: a concurrent resolver loses
// with escrow.ErrAlreadyResolved and the whole transaction rolls back.
type ResolveDisputeCommandHandler struct {
	uowFactory SettlementUoWFactory
	notifier   ports.Notifier
	tracking   TrackingControl
	arbiterID  kernel.UUID
	ledger     Ledger
}

// NewResolveDisputeCommandHandler creates a handler for dispute resolution operations.
func NewResolveDisputeCommandHandler(
	uowFactory SettlementUoWFactory,
	notifier ports.Notifier,
	tracking TrackingControl,
	arbiterID kernel.UUID,
) ResolveDisputeCommandHandler {
	return ResolveDisputeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		tracking:   tracking,
		arbiterID:  arbiterID,
		ledger:     NewLedger(),
	}
}

// Handle processes the verdict.
func (h ResolveDisputeCommandHandler) Handle(ctx context.Context, cmd ResolveDisputeCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if !cmd.ArbiterID().IsEqual(h.arbiterID) {
		return nil, order.ErrActorNotAuthorized
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

	buyerMessage := ""
	sellerMessage := ""

	switch cmd.Resolution() {
	case ResolutionSeller:
		if err = o.ResolveCompleted(); err != nil {
			return nil, err
		}

		var entry *escrow.Entry
		entry, err = h.ledger.Release(ctx, uow.EscrowRepository(), uow.AccountRepository(), o.ID())
		if err != nil {
			return nil, err
		}

		buyerMessage = "Dispute resolved in favor of the seller"
		sellerMessage = "Dispute resolved in your favor, " + entry.SellerAmount().String() + " released to your balance"
	case ResolutionBuyer:
		if err = o.ResolveCanceled(); err != nil {
			return nil, err
		}

		if _, err = h.ledger.Refund(ctx, uow.EscrowRepository(), o.ID()); err != nil {
			return nil, err
		}

		buyerMessage = "Dispute resolved in your favor, " + o.Pricing().Total().String() + " refunded"
		sellerMessage = "Dispute resolved in favor of the buyer"
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
		Message: buyerMessage,
		Link:    "/orders/" + o.ID().String(),
	})
	h.notifier.Publish(ctx, ports.Notification{
		UserID:  o.SellerID(),
		Message: sellerMessage,
		Link:    "/orders/" + o.ID().String(),
	})

	return o, nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/services"
	"settlement/internal/core/ports"
)

// OpenOrderCommandHandler handles the business logic for opening an order.
// Computes the pricing from the configured platform fee rate, generates the
// pickup and dropoff secret codes, and creates the order in Pending status
// together with its Held escrow entry in a single transaction.
//
// Example:
//
//	handler := NewOpenOrderCommandHandler(uowFactory, notifier, 500)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Escrow now holds created.Pricing().Total() until the order resolves.
type OpenOrderCommandHandler struct {
	uowFactory         SettlementUoWFactory
	notifier           ports.Notifier
	ledger             Ledger
	codeVerifier       services.CodeVerifier
	feeRateBasisPoints int64
}

// NewOpenOrderCommandHandler creates a handler for order opening operations.
// feeRateBasisPoints is the platform's cut of the item amount (500 = 5%).
func NewOpenOrderCommandHandler(
	uowFactory SettlementUoWFactory,
	notifier ports.Notifier,
	feeRateBasisPoints int64,
) OpenOrderCommandHandler {
	return OpenOrderCommandHandler{
		uowFactory:         uowFactory,
		notifier:           notifier,
		ledger:             NewLedger(),
		codeVerifier:       services.NewCodeVerifier(),
		feeRateBasisPoints: feeRateBasisPoints,
	}
}

// Handle processes the open-order command.
// Order creation and escrow opening are one atomic unit: if the escrow entry
// cannot be opened, the order is rolled back with it.
func (h OpenOrderCommandHandler) Handle(ctx context.Context, cmd OpenOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	pricing, err := order.NewPricing(cmd.ItemAmount(), cmd.DeliveryFee(), h.feeRateBasisPoints)
	if err != nil {
		return nil, err
	}

	pickupCode, err := h.codeVerifier.GeneratePickupCode()
	if err != nil {
		return nil, err
	}
	dropoffCode, err := h.codeVerifier.GenerateDropoffCode()
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(), cmd.BuyerID(), cmd.SellerID(),
		pricing, pickupCode, dropoffCode,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if _, err = h.ledger.Open(ctx, uow.EscrowRepository(), newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  newOrder.SellerID(),
		Message: "New paid order awaiting preparation",
		Link:    "/orders/" + newOrder.ID().String(),
	})

	return newOrder, nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/order"
)

// RecordLocationCommandHandler persists a courier position sample against an
// order in transit. Samples for orders in any other status fail with
// order.ErrInvalidTransition; samples from anyone but the assigned courier
// fail with order.ErrActorNotAuthorized.
type RecordLocationCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRecordLocationCommandHandler creates a handler for position recording operations.
func NewRecordLocationCommandHandler(uowFactory OrderUoWFactory) RecordLocationCommandHandler {
	return RecordLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the position sample.
func (h RecordLocationCommandHandler) Handle(ctx context.Context, cmd RecordLocationCommand) (*order.Order, error) {
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

	if err = o.RecordPosition(cmd.CourierID(), cmd.Position(), cmd.ObservedAt()); err != nil {
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

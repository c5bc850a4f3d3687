package commands

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/model/payout"
	"settlement/internal/core/ports"
)

// RejectPayoutCommandHandler marks a pending payout request Failed with the
// arbiter's reason. The balance is untouched: nothing was debited when the
// request was made.
type RejectPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	notifier   ports.Notifier
	arbiterID  kernel.UUID
}

// NewRejectPayoutCommandHandler creates a handler for payout rejection operations.
func NewRejectPayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	notifier ports.Notifier,
	arbiterID kernel.UUID,
) RejectPayoutCommandHandler {
	return RejectPayoutCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		arbiterID:  arbiterID,
	}
}

// Handle processes the rejection.
func (h RejectPayoutCommandHandler) Handle(ctx context.Context, cmd RejectPayoutCommand) (*payout.Request, error) {
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

	payoutRepo := uow.PayoutRepository()
	req, err := payoutRepo.Get(ctx, cmd.PayoutID())
	if err != nil {
		return nil, err
	}

	if err = req.Fail(cmd.Reason()); err != nil {
		return nil, err
	}

	if err = payoutRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  req.AccountID(),
		Message: "Payout of " + req.Amount().String() + " rejected: " + cmd.Reason(),
		Link:    "/payouts/" + req.ID().String(),
	})

	return req, nil
}

package commands

import (
	"context"

	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/payout"
)

// RequestPayoutCommandHandler records a pending payout request after
// verifying the account balance covers the amount. Nothing is debited yet:
// the balance is checked again, against current state, when an arbiter
// approves the request, because intervening refunds or payouts may have
// reduced it.
type RequestPayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
}

// NewRequestPayoutCommandHandler creates a handler for payout request operations.
func NewRequestPayoutCommandHandler(uowFactory PayoutUoWFactory) RequestPayoutCommandHandler {
	return RequestPayoutCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payout request.
func (h RequestPayoutCommandHandler) Handle(ctx context.Context, cmd RequestPayoutCommand) (*payout.Request, error) {
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

	acct, err := uow.AccountRepository().Get(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}

	if !acct.CanCover(cmd.Amount()) {
		return nil, account.ErrInsufficientBalance
	}

	req, err := payout.NewRequest(cmd.PayoutID(), cmd.AccountID(), cmd.Amount(), cmd.Destination())
	if err != nil {
		return nil, err
	}

	if err = uow.PayoutRepository().Add(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return req, nil
}

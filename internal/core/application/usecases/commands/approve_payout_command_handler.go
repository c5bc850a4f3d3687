package commands

import (
	"context"
	"errors"

	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/domain/model/payout"
	"settlement/internal/core/ports"
)

// ApprovePayoutCommandHandler debits the account and marks the payout
// Completed in one transaction. The balance is re-checked here against
// current state: if it no longer covers the amount, the request is marked
// Failed instead of Completed and the handler returns the updated request
// without error. The caller distinguishes the two outcomes via
// Request.Status.
type ApprovePayoutCommandHandler struct {
	uowFactory PayoutUoWFactory
	notifier   ports.Notifier
	arbiterID  kernel.UUID
}

// NewApprovePayoutCommandHandler creates a handler for payout approval operations.
func NewApprovePayoutCommandHandler(
	uowFactory PayoutUoWFactory,
	notifier ports.Notifier,
	arbiterID kernel.UUID,
) ApprovePayoutCommandHandler {
	return ApprovePayoutCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		arbiterID:  arbiterID,
	}
}

// Handle processes the approval.
func (h ApprovePayoutCommandHandler) Handle(ctx context.Context, cmd ApprovePayoutCommand) (*payout.Request, error) {
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

	accountRepo := uow.AccountRepository()
	acct, err := accountRepo.Get(ctx, req.AccountID())
	if err != nil {
		return nil, err
	}

	message := ""

	err = acct.Debit(req.Amount())
	switch {
	case errors.Is(err, account.ErrInsufficientBalance):
		// The balance drifted below the requested amount since the request
		// was made. Resolve the request as failed rather than reject the
		// approval, so the seller sees a final state.
		if err = req.Fail(payout.InsufficientBalanceReason); err != nil {
			return nil, err
		}

		message = "Payout of " + req.Amount().String() + " failed: " + req.FailureReason()
	case err != nil:
		return nil, err
	default:
		if err = req.Complete(); err != nil {
			return nil, err
		}

		if err = accountRepo.Update(ctx, acct); err != nil {
			return nil, err
		}

		message = "Payout of " + req.Amount().String() + " sent to " + req.Destination()
	}

	if err = payoutRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notifier.Publish(ctx, ports.Notification{
		UserID:  req.AccountID(),
		Message: message,
		Link:    "/payouts/" + req.ID().String(),
	})

	return req, nil
}

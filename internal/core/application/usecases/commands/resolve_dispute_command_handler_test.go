package commands_test

import (
	"testing"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResolveDisputeCommandHandler_Handle_SellerWins(t *testing.T) {
	ctx := t.Context()
	arbiterID := kernel.NewUUID()

	f := disputedOrderFixture(t)
	entry := heldEntryFixture(t, f)
	sellerAccount, err := account.NewAccount(f.sellerID)
	require.NoError(t, err)

	cmd, err := commands.NewResolveDisputeCommand(f.order.ID(), arbiterID, commands.ResolutionSeller)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	escrowRepo := new(MockEscrowRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockSettlementUoW)
	notifier := new(MockNotifier)
	tracking := new(MockTrackingControl)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		uow.On("EscrowRepository").Return(escrowRepo).Once(),
		uow.On("AccountRepository").Return(accountRepo).Once(),
		escrowRepo.On("GetByOrderID", ctx, f.order.ID()).Return(entry, nil).Once(),
		escrowRepo.On("UpdateFromHeld", ctx, entry).Return(nil).Once(),
		accountRepo.On("GetOrCreate", ctx, f.sellerID).Return(sellerAccount, nil).Once(),
		accountRepo.On("Update", ctx, sellerAccount).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		tracking.On("StopTracking", f.order.ID()).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDisputeCommandHandler(factory, notifier, tracking, arbiterID)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, resolved.Status())
	assert.Equal(t, escrow.Released, entry.Status())
	assert.Equal(t, int64(114_000), sellerAccount.Balance().Amount())

	// One notification per party.
	require.Len(t, notifier.Calls, 2)
	first := notifier.Calls[0].Arguments[1].(ports.Notification)
	second := notifier.Calls[1].Arguments[1].(ports.Notification)
	assert.True(t, first.UserID.IsEqual(f.buyerID))
	assert.True(t, second.UserID.IsEqual(f.sellerID))

	uow.AssertExpectations(t)
	tracking.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_BuyerWins(t *testing.T) {
	ctx := t.Context()
	arbiterID := kernel.NewUUID()

	f := disputedOrderFixture(t)
	entry := heldEntryFixture(t, f)

	cmd, err := commands.NewResolveDisputeCommand(f.order.ID(), arbiterID, commands.ResolutionBuyer)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	escrowRepo := new(MockEscrowRepository)
	accountRepo := new(MockAccountRepository)
	uow := new(MockSettlementUoW)
	notifier := new(MockNotifier)
	tracking := new(MockTrackingControl)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		uow.On("EscrowRepository").Return(escrowRepo).Once(),
		escrowRepo.On("GetByOrderID", ctx, f.order.ID()).Return(entry, nil).Once(),
		escrowRepo.On("UpdateFromHeld", ctx, entry).Return(nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		tracking.On("StopTracking", f.order.ID()).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Twice(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDisputeCommandHandler(factory, notifier, tracking, arbiterID)
	resolved, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Canceled, resolved.Status())
	assert.Equal(t, escrow.Refunded, entry.Status())

	// A refund never touches the seller's balance.
	accountRepo.AssertNotCalled(t, "GetOrCreate", ctx, mock.Anything)
	accountRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)

	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestResolveDisputeCommandHandler_Handle_WrongArbiter(t *testing.T) {
	ctx := t.Context()

	f := disputedOrderFixture(t)
	cmd, err := commands.NewResolveDisputeCommand(f.order.ID(), kernel.NewUUID(), commands.ResolutionSeller)
	require.NoError(t, err)

	factory := new(MockSettlementUoWFactory)
	handler := commands.NewResolveDisputeCommandHandler(
		factory, new(MockNotifier), new(MockTrackingControl), kernel.NewUUID())

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrActorNotAuthorized)
	factory.AssertNotCalled(t, "Create")
}

func TestResolveDisputeCommandHandler_Handle_NotDisputed(t *testing.T) {
	ctx := t.Context()
	arbiterID := kernel.NewUUID()

	f := deliveredOrderFixture(t)
	cmd, err := commands.NewResolveDisputeCommand(f.order.ID(), arbiterID, commands.ResolutionSeller)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockSettlementUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResolveDisputeCommandHandler(
		factory, new(MockNotifier), new(MockTrackingControl), arbiterID)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewResolveDisputeCommand(t *testing.T) {
	t.Run("should reject unknown resolution", func(t *testing.T) {
		_, err := commands.NewResolveDisputeCommand(kernel.NewUUID(), kernel.NewUUID(), "split")

		require.Error(t, err)
	})

	t.Run("should accept both verdicts", func(t *testing.T) {
		for _, res := range []commands.Resolution{commands.ResolutionBuyer, commands.ResolutionSeller} {
			cmd, err := commands.NewResolveDisputeCommand(kernel.NewUUID(), kernel.NewUUID(), res)
			require.NoError(t, err)
			assert.Equal(t, res, cmd.Resolution())
		}
	})
}

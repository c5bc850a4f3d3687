package commands_test

import (
	"testing"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/core/ports"
	"settlement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConfirmPickupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	f := readyOrderFixture(t)
	cmd, err := commands.NewConfirmPickupCommand(f.order.ID(), f.courierID, fixturePickupCode)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	notifier := new(MockNotifier)
	tracking := new(MockTrackingControl)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		tracking.On("StartTracking", f.courierID, f.order.ID()).Once(),
		notifier.On("Publish", ctx, mock.AnythingOfType("ports.Notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, notifier, tracking)
	picked, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InTransit, picked.Status())

	notification := notifier.Calls[0].Arguments[1].(ports.Notification)
	assert.True(t, notification.UserID.IsEqual(f.buyerID))

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	tracking.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmPickupCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()

	f := readyOrderFixture(t)
	cmd, err := commands.NewConfirmPickupCommand(f.order.ID(), f.courierID, "00000000000000000000000000000000")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	tracking := new(MockTrackingControl)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, new(MockNotifier), tracking)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidCode)
	assert.Equal(t, order.ReadyForPickup, f.order.Status())

	// No tracking context is left behind for a failed pickup.
	tracking.AssertNotCalled(t, "StartTracking", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestConfirmPickupCommandHandler_Handle_UpdateConflict(t *testing.T) {
	ctx := t.Context()

	f := readyOrderFixture(t)
	cmd, err := commands.NewConfirmPickupCommand(f.order.ID(), f.courierID, fixturePickupCode)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	tracking := new(MockTrackingControl)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, f.order.ID()).Return(f.order, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errs.NewVersionIsInvalidError("order", nil)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewConfirmPickupCommandHandler(factory, new(MockNotifier), tracking)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	tracking.AssertNotCalled(t, "StartTracking", mock.Anything, mock.Anything)
}

package commands_test

import (
	"testing"

	"settlement/internal/core/application/usecases/commands"
	"settlement/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	buyerID := kernel.NewUUID()
	sellerID := kernel.NewUUID()

	cmd, err := commands.NewOpenOrderCommand(orderID, buyerID, sellerID,
		kernel.MustMoney(120_000), kernel.MustMoney(5_000))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.OrderID().IsEqual(orderID))
	assert.True(t, cmd.BuyerID().IsEqual(buyerID))
	assert.True(t, cmd.SellerID().IsEqual(sellerID))
	assert.Equal(t, int64(120_000), cmd.ItemAmount().Amount())
	assert.Equal(t, int64(5_000), cmd.DeliveryFee().Amount())
}

func TestNewOpenOrderCommand_FreeDelivery(t *testing.T) {
	cmd, err := commands.NewOpenOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney(120_000), kernel.Money{})

	require.NoError(t, err)
	assert.True(t, cmd.DeliveryFee().IsZero())
}

func TestNewOpenOrderCommand_ZeroItemAmount(t *testing.T) {
	_, err := commands.NewOpenOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.Money{}, kernel.MustMoney(5_000))

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrItemAmountIsRequired)
}

func TestNewOpenOrderCommand_InvalidIdentifiers(t *testing.T) {
	var invalidID kernel.UUID

	_, err := commands.NewOpenOrderCommand(invalidID, kernel.NewUUID(), kernel.NewUUID(),
		kernel.MustMoney(100), kernel.Money{})
	require.Error(t, err)

	_, err = commands.NewOpenOrderCommand(kernel.NewUUID(), invalidID, kernel.NewUUID(),
		kernel.MustMoney(100), kernel.Money{})
	require.Error(t, err)

	_, err = commands.NewOpenOrderCommand(kernel.NewUUID(), kernel.NewUUID(), invalidID,
		kernel.MustMoney(100), kernel.Money{})
	require.Error(t, err)
}

func TestOpenOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.OpenOrderCommand{}

	require.ErrorIs(t, cmd.Validate(), commands.ErrOpenOrderCommandIsNotConstructed)
}

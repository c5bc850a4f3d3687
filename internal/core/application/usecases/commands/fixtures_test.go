package commands_test

import (
	"testing"

	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

const (
	fixturePickupCode  = "0f2e4d6c8b0a19283746556473829101"
	fixtureDropoffCode = "271828"
)

// orderFixture bundles an order with the actors that may operate on it.
type orderFixture struct {
	order     *order.Order
	buyerID   kernel.UUID
	sellerID  kernel.UUID
	courierID kernel.UUID
}

func pendingOrderFixture(t *testing.T) orderFixture {
	t.Helper()

	pricing, err := order.NewPricing(kernel.MustMoney(120_000), kernel.MustMoney(5_000), 500)
	require.NoError(t, err)

	f := orderFixture{
		buyerID:   kernel.NewUUID(),
		sellerID:  kernel.NewUUID(),
		courierID: kernel.NewUUID(),
	}

	f.order, err = order.NewOrder(kernel.NewUUID(), f.buyerID, f.sellerID,
		pricing, fixturePickupCode, fixtureDropoffCode)
	require.NoError(t, err)
	return f
}

func readyOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	f := pendingOrderFixture(t)
	require.NoError(t, f.order.MarkReadyForPickup(f.sellerID))
	require.NoError(t, f.order.AssignCourier(f.courierID))
	return f
}

func deliveredOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	f := readyOrderFixture(t)
	require.NoError(t, f.order.ConfirmPickup(f.courierID, fixturePickupCode))
	require.NoError(t, f.order.ConfirmDropoff(f.courierID, fixtureDropoffCode))
	return f
}

func disputedOrderFixture(t *testing.T) orderFixture {
	t.Helper()
	f := readyOrderFixture(t)
	require.NoError(t, f.order.ConfirmPickup(f.courierID, fixturePickupCode))
	require.NoError(t, f.order.OpenDispute(f.buyerID))
	return f
}

// heldEntryFixture creates the escrow entry matching an order fixture's pricing.
func heldEntryFixture(t *testing.T, f orderFixture) *escrow.Entry {
	t.Helper()
	entry, err := escrow.NewEntry(f.order.ID(), f.sellerID,
		f.order.Pricing().Total(), f.order.Pricing().SellerAmount())
	require.NoError(t, err)
	return entry
}

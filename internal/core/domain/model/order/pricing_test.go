package order_test

import (
	"testing"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPricing(t *testing.T) {
	t.Run("should compute the full breakdown", func(t *testing.T) {
		itemAmount := kernel.MustMoney(120_000)
		deliveryFee := kernel.MustMoney(5_000)

		p, err := order.NewPricing(itemAmount, deliveryFee, 500)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, int64(120_000), p.ItemAmount().Amount())
		assert.Equal(t, int64(5_000), p.DeliveryFee().Amount())
		assert.Equal(t, int64(6_000), p.PlatformFee().Amount())
		assert.Equal(t, int64(131_000), p.Total().Amount())
		assert.Equal(t, int64(114_000), p.SellerAmount().Amount())
	})

	t.Run("should allow zero delivery fee", func(t *testing.T) {
		p, err := order.NewPricing(kernel.MustMoney(10_000), kernel.Money{}, 500)

		require.NoError(t, err)
		assert.Equal(t, int64(10_500), p.Total().Amount())
	})

	t.Run("should allow zero fee rate", func(t *testing.T) {
		p, err := order.NewPricing(kernel.MustMoney(10_000), kernel.MustMoney(1_000), 0)

		require.NoError(t, err)
		assert.True(t, p.PlatformFee().IsZero())
		assert.Equal(t, int64(11_000), p.Total().Amount())
		assert.Equal(t, int64(10_000), p.SellerAmount().Amount())
	})

	t.Run("should fail with zero item amount", func(t *testing.T) {
		_, err := order.NewPricing(kernel.Money{}, kernel.MustMoney(5_000), 500)

		require.ErrorIs(t, err, order.ErrItemAmountIsZero)
	})

	t.Run("should fail with fee rate out of range", func(t *testing.T) {
		_, err := order.NewPricing(kernel.MustMoney(10_000), kernel.Money{}, 10_001)

		require.Error(t, err)
	})
}

func TestRestorePricing(t *testing.T) {
	t.Run("should restore consistent amounts", func(t *testing.T) {
		p, err := order.RestorePricing(
			kernel.MustMoney(120_000),
			kernel.MustMoney(5_000),
			kernel.MustMoney(6_000),
			kernel.MustMoney(131_000),
		)

		require.NoError(t, err)
		assert.Equal(t, int64(114_000), p.SellerAmount().Amount())
	})

	t.Run("should reject a total that does not add up", func(t *testing.T) {
		_, err := order.RestorePricing(
			kernel.MustMoney(120_000),
			kernel.MustMoney(5_000),
			kernel.MustMoney(6_000),
			kernel.MustMoney(130_999),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "total")
	})

	t.Run("should reject zero item amount", func(t *testing.T) {
		_, err := order.RestorePricing(
			kernel.Money{},
			kernel.Money{},
			kernel.Money{},
			kernel.Money{},
		)

		require.ErrorIs(t, err, order.ErrItemAmountIsZero)
	})
}

func TestPricing_Validate(t *testing.T) {
	t.Run("zero value should fail validation", func(t *testing.T) {
		var p order.Pricing

		require.ErrorIs(t, p.Validate(), order.ErrPricingIsNotConstructed)
	})
}

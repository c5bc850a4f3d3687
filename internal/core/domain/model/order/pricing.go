package order

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when a Pricing instance was not
// created through NewPricing or RestorePricing.
var ErrPricingIsNotConstructed = errors.New("Pricing must be created via NewPricing or RestorePricing")

// ErrItemAmountIsZero is returned when attempting to price an order without a
// positive item amount.
var ErrItemAmountIsZero = errors.New("item amount must be greater than 0")

// Pricing is the immutable monetary breakdown of an order.
//
// Invariants:
//   - platformFee = itemAmount × feeRate (in basis points), fixed at creation
//   - total = itemAmount + deliveryFee + platformFee
//   - sellerAmount = itemAmount − platformFee, the amount released from escrow
//     to the seller on completion
//
// The full total is held in escrow while the order is open; the delivery fee
// and platform fee portions never reach the seller's balance.
type Pricing struct { //nolint:recvcheck //using for validation
	itemAmount  kernel.Money
	deliveryFee kernel.Money
	platformFee kernel.Money
	total       kernel.Money

	guard guard.ConstructorGuard
}

// NewPricing computes the monetary breakdown for an order from the item
// amount, the delivery fee, and the platform fee rate in basis points
// (500 = 5%). Returns an error if the item amount is zero or the fee rate is
// out of range.
func NewPricing(itemAmount, deliveryFee kernel.Money, feeRateBasisPoints int64) (Pricing, error) {
	if itemAmount.IsZero() {
		return Pricing{}, ErrItemAmountIsZero
	}

	platformFee, err := itemAmount.Percent(feeRateBasisPoints)
	if err != nil {
		return Pricing{}, err
	}

	subtotal, err := itemAmount.Add(deliveryFee)
	if err != nil {
		return Pricing{}, err
	}
	total, err := subtotal.Add(platformFee)
	if err != nil {
		return Pricing{}, err
	}

	return Pricing{
		itemAmount:  itemAmount,
		deliveryFee: deliveryFee,
		platformFee: platformFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestorePricing reconstructs a Pricing from persisted amounts.
// Verifies that the stored amounts still satisfy the total invariant, guarding
// against corrupted rows.
func RestorePricing(itemAmount, deliveryFee, platformFee, total kernel.Money) (Pricing, error) {
	if itemAmount.IsZero() {
		return Pricing{}, ErrItemAmountIsZero
	}

	subtotal, err := itemAmount.Add(deliveryFee)
	if err != nil {
		return Pricing{}, err
	}
	expected, err := subtotal.Add(platformFee)
	if err != nil {
		return Pricing{}, err
	}
	if !expected.IsEqual(total) {
		return Pricing{}, errs.NewValueIsInvalidError("total")
	}

	return Pricing{
		itemAmount:  itemAmount,
		deliveryFee: deliveryFee,
		platformFee: platformFee,
		total:       total,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Pricing was created through a constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// ItemAmount returns the price of the goods themselves.
func (p Pricing) ItemAmount() kernel.Money {
	return p.itemAmount
}

// DeliveryFee returns the courier delivery fee.
func (p Pricing) DeliveryFee() kernel.Money {
	return p.deliveryFee
}

// PlatformFee returns the platform's cut, computed from the item amount.
func (p Pricing) PlatformFee() kernel.Money {
	return p.platformFee
}

// Total returns the full amount collected from the buyer and held in escrow.
func (p Pricing) Total() kernel.Money {
	return p.total
}

// SellerAmount returns the amount credited to the seller when escrow is
// released: the item amount minus the platform fee.
func (p Pricing) SellerAmount() kernel.Money {
	// NewPricing guarantees platformFee <= itemAmount for fee rates <= 100%.
	sellerAmount, err := p.itemAmount.Sub(p.platformFee)
	if err != nil {
		return kernel.Money{}
	}
	return sellerAmount
}

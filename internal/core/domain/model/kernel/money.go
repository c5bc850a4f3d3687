package kernel

import (
	"fmt"

	"settlement/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in minor currency units.
// It is an immutable value object: arithmetic operations return new values and
// never mutate the receiver. Amounts in the settlement workflow (item price,
// delivery fee, platform fee, escrow totals, account balances) are all Money.
//
// The zero value Money{} represents a valid zero amount. Negative amounts
// cannot be constructed; Sub fails instead of going below zero, which is the
// foundation of the "balance never goes negative" invariant.
//
// Example:
//
//	item, _ := kernel.NewMoney(120_000)
//	fee, _ := item.Percent(500) // 5% in basis points -> 6_000
//	total, _ := item.Add(fee)
type Money struct {
	amount int64
}

// NewMoney creates a Money value from an amount in minor currency units.
// Returns an error if the amount is negative.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MustMoney creates a Money value and panics on a negative amount.
// Intended for constants and tests where the amount is known to be valid.
func MustMoney(amount int64) Money {
	m, err := NewMoney(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// Amount returns the raw amount in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsEqual compares two monetary amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// Add returns the sum of two amounts.
// Fails if the result would overflow int64.
func (m Money) Add(other Money) (Money, error) {
	sum := m.amount + other.amount
	if sum < m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d + %d overflows", m.amount, other.amount))
	}
	return Money{amount: sum}, nil
}

// Sub returns the difference m - other.
// Fails if other exceeds m, keeping Money non-negative.
func (m Money) Sub(other Money) (Money, error) {
	if other.amount > m.amount {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d - %d is negative", m.amount, other.amount))
	}
	return Money{amount: m.amount - other.amount}, nil
}

// Percent returns the given fraction of m expressed in basis points
// (1 basis point = 0.01%). Used for platform fee calculation:
// a 5% fee is 500 basis points. The result is truncated toward zero.
func (m Money) Percent(basisPoints int64) (Money, error) {
	if basisPoints < 0 || basisPoints > 10_000 {
		return Money{}, errs.NewValueIsOutOfRangeError("basisPoints", basisPoints, 0, 10_000)
	}
	return Money{amount: m.amount * basisPoints / 10_000}, nil
}

// String formats the amount for logs and messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

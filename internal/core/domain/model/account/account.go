// Package account provides the balance aggregate for funds released from
// escrow. Each user accumulates released amounts here and draws them down
// through approved payouts.
//
// Key business rule: the balance never goes negative. A debit that exceeds the
// balance fails with ErrInsufficientBalance, which is how payout approval
// detects that the balance drifted below the requested amount.
package account

import (
	"errors"

	"settlement/internal/core/domain/model/kernel"
)

var (
	// ErrAccountIsNotConstructed is returned when an Account was not created
	// through the NewAccount or RestoreAccount factory methods.
	ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount constructor")

	// ErrInsufficientBalance is returned when a payout request or debit exceeds
	// the currently available balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Account tracks a user's released-funds balance.
// Credits come from escrow releases; debits come from completed payouts.
type Account struct {
	userID        kernel.UUID
	balance       kernel.Money
	version       int64
	isConstructed bool
}

// NewAccount creates an empty account for a user.
// Accounts are created lazily, on the first escrow release for a seller.
func NewAccount(userID kernel.UUID) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:        userID,
		isConstructed: true,
	}, nil
}

// RestoreAccount reconstructs an Account from persisted state.
func RestoreAccount(userID kernel.UUID, balance kernel.Money, version int64) (*Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Account{
		userID:        userID,
		balance:       balance,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Account was properly constructed.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (a *Account) UserID() kernel.UUID {
	return a.userID
}

// Balance returns the currently available balance.
func (a *Account) Balance() kernel.Money {
	return a.balance
}

// Version returns the optimistic-concurrency version loaded from persistence.
func (a *Account) Version() int64 {
	return a.version
}

// Credit adds a released escrow amount to the balance.
func (a *Account) Credit(amount kernel.Money) error {
	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	return nil
}

// Debit removes a completed payout amount from the balance.
// Fails with ErrInsufficientBalance when the amount exceeds the balance,
// so the balance can never go negative.
func (a *Account) Debit(amount kernel.Money) error {
	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	newBalance, err := a.balance.Sub(amount)
	if err != nil {
		return err
	}
	a.balance = newBalance
	return nil
}

// CanCover reports whether the balance is sufficient for the given amount.
// Used at payout request time; approval re-checks via Debit since the balance
// may drift between request and approval.
func (a *Account) CanCover(amount kernel.Money) bool {
	return !a.balance.LessThan(amount)
}

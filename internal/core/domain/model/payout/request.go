// Package payout provides the payout request aggregate: a seller-initiated
// withdrawal of previously released escrow balance to an external account.
//
// Key business rules:
//   - A pending request does not reserve funds; sufficiency is re-validated
//     at approval time
//   - A request is resolved at most once, to Completed or Failed
//   - A failed request carries a human-readable reason and has no balance effect
package payout

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through the NewRequest or RestoreRequest factory methods.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest or RestoreRequest constructor")

	// ErrAmountIsZero is returned when requesting a payout of nothing.
	ErrAmountIsZero = errors.New("payout amount must be greater than 0")
)

// InsufficientBalanceReason is the failure reason recorded when approval finds
// the balance has dropped below the requested amount since the request was made.
const InsufficientBalanceReason = "insufficient balance"

// Request is one seller-initiated withdrawal against the released balance.
// Created Pending, then resolved exactly once by an admin action.
type Request struct {
	id            kernel.UUID
	accountID     kernel.UUID
	amount        kernel.Money
	destination   string
	status        Status
	failureReason string
	requestedAt   time.Time
	resolvedAt    *time.Time
	isConstructed bool
}

// NewRequest creates a Pending payout request.
//
// Parameters:
//   - id, accountID: valid identifiers
//   - amount: positive withdrawal amount (not reserved until approval)
//   - destination: external account details for the transfer
func NewRequest(id, accountID kernel.UUID, amount kernel.Money, destination string) (*Request, error) {
	if err := errors.Join(id.Validate(), accountID.Validate()); err != nil {
		return nil, err
	}
	if amount.IsZero() {
		return nil, ErrAmountIsZero
	}
	if destination == "" {
		return nil, errs.NewValueIsRequiredError("destination")
	}

	return &Request{
		id:            id,
		accountID:     accountID,
		amount:        amount,
		destination:   destination,
		status:        Pending,
		requestedAt:   time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a Request from persisted state.
func RestoreRequest(
	id, accountID kernel.UUID,
	amount kernel.Money,
	destination string,
	status Status,
	failureReason string,
	requestedAt time.Time,
	resolvedAt *time.Time,
) (*Request, error) {
	if err := errors.Join(id.Validate(), accountID.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		accountID:     accountID,
		amount:        amount,
		destination:   destination,
		status:        status,
		failureReason: failureReason,
		requestedAt:   requestedAt,
		resolvedAt:    resolvedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Request was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// AccountID returns the account the payout draws from.
func (r *Request) AccountID() kernel.UUID {
	return r.accountID
}

// Amount returns the requested withdrawal amount.
func (r *Request) Amount() kernel.Money {
	return r.amount
}

// Destination returns the external account details for the transfer.
func (r *Request) Destination() string {
	return r.destination
}

// Status returns the lifecycle state of the request.
func (r *Request) Status() Status {
	return r.status
}

// FailureReason returns the human-readable reason for a Failed request,
// or an empty string otherwise.
func (r *Request) FailureReason() string {
	return r.failureReason
}

// RequestedAt returns when the seller created the request.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// ResolvedAt returns when the request was approved or rejected, or nil while
// it is still pending.
func (r *Request) ResolvedAt() *time.Time {
	return r.resolvedAt
}

// Complete marks the request approved. The caller must debit the account in
// the same transactional unit.
func (r *Request) Complete() error {
	newStatus, err := r.status.Complete()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.markResolved()
	return nil
}

// Fail marks the request rejected with a human-readable reason.
// No balance effect.
func (r *Request) Fail(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	newStatus, err := r.status.Fail()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.failureReason = reason
	r.markResolved()
	return nil
}

func (r *Request) markResolved() {
	now := time.Now().UTC()
	r.resolvedAt = &now
}

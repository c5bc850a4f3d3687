package queries

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/guard"
)

var (
	ErrGetPendingPayoutsQueryIsNotConstructed = errors.New(
		"GetPendingPayoutsQuery must be created via NewGetPendingPayoutsQuery constructor",
	)
)

// GetPendingPayoutsQuery retrieves all payout requests awaiting a verdict.
// Returns the work list for the arbiter's review screen.
//
// Example:
//
//	query := NewGetPendingPayoutsQuery()
//	handler := NewGetPendingPayoutsQueryHandler(db)
//
//	payouts, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get pending payouts: %w", err)
//	}
//
//	fmt.Printf("%d payouts awaiting review\n", len(payouts))
type GetPendingPayoutsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPayoutsQuery creates a query to retrieve pending payout requests.
// This is a parameterless query that fetches the complete pending list.
func NewGetPendingPayoutsQuery() GetPendingPayoutsQuery {
	return GetPendingPayoutsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPendingPayoutsQueryIsNotConstructed if validation fails.
func (q GetPendingPayoutsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPayoutsQueryIsNotConstructed)
}

// GetPendingPayoutsQueryResponse represents one pending payout request.
type GetPendingPayoutsQueryResponse struct {
	ID          kernel.UUID
	AccountID   kernel.UUID
	Amount      kernel.Money
	Destination string
	RequestedAt time.Time
}

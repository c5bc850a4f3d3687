package queries

import (
	"errors"
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"
	"settlement/internal/pkg/guard"
)

var (
	ErrGetStaleTransitOrdersQueryIsNotConstructed = errors.New(
		"GetStaleTransitOrdersQuery must be created via NewGetStaleTransitOrdersQuery constructor",
	)
)

// GetStaleTransitOrdersQuery retrieves orders that have sat in transit with
// no state change since the cutoff time. Used by the monitoring job to flag
// deliveries that may have gone wrong.
type GetStaleTransitOrdersQuery struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewGetStaleTransitOrdersQuery creates a query for in-transit orders not
// updated since cutoff.
func NewGetStaleTransitOrdersQuery(cutoff time.Time) (GetStaleTransitOrdersQuery, error) {
	if cutoff.IsZero() {
		return GetStaleTransitOrdersQuery{}, errs.NewValueIsRequiredError("cutoff")
	}

	return GetStaleTransitOrdersQuery{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStaleTransitOrdersQueryIsNotConstructed if validation fails.
func (q GetStaleTransitOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStaleTransitOrdersQueryIsNotConstructed)
}

// Cutoff returns the staleness boundary.
func (q GetStaleTransitOrdersQuery) Cutoff() time.Time {
	return q.cutoff
}

// GetStaleTransitOrdersQueryResponse represents one stale in-transit order.
type GetStaleTransitOrdersQueryResponse struct {
	ID            kernel.UUID
	CourierID     kernel.UUID
	LastUpdatedAt time.Time
}

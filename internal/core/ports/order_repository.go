// Package ports defines the contracts between the settlement core and its
// infrastructure: repositories for the persisted aggregates, the transaction
// boundary, and the outbound notification intent publisher. These interfaces
// enable dependency inversion and testability.
package ports

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Updates use optimistic concurrency: the write only applies if the stored
// version still matches the version the aggregate was loaded with, which
// serializes the multiple independent writers (buyer, seller, courier, admin,
// location stream) acting on the same order. A lost race surfaces as
// errs.ErrVersionIsInvalid; the caller reloads and retries.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, guarded by the
	// version the aggregate was loaded with.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, including its
	// complete history.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

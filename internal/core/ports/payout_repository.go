package ports

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/payout"
)

// PayoutRepository defines the persistence contract for payout requests.
type PayoutRepository interface {
	// Add persists a new pending request.
	Add(ctx context.Context, request *payout.Request) error

	// Update persists the single admin resolution of a request.
	Update(ctx context.Context, request *payout.Request) error

	// Get retrieves a request by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payout.Request, error)
}

package queries

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/payout"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingPayoutsQueryHandler retrieves payout requests in Pending status.
// Oldest requests come first so the arbiter works the queue in order.
type GetPendingPayoutsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPayoutsQueryHandler creates a handler for pending payout queries.
// Requires a GORM database connection for query execution.
func NewGetPendingPayoutsQueryHandler(db *gorm.DB) GetPendingPayoutsQueryHandler {
	return GetPendingPayoutsQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending payout requests.
// Returns requests sorted by request time, oldest first.
func (h GetPendingPayoutsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPayoutsQuery,
) ([]GetPendingPayoutsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payouts := make([]GetPendingPayoutsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			account_id,
			amount,
			destination,
			requested_at
		FROM payout_requests
		WHERE status = ?
		ORDER BY requested_at
	`, payout.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetPendingPayoutsQueryResponse
		var id, accountID uuid.UUID
		var amount int64

		err = rows.Scan(
			&id,
			&accountID,
			&amount,
			&resp.Destination,
			&resp.RequestedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.AccountID, err = kernel.UUIDFromBytes(accountID[:]); err != nil {
			return nil, err
		}
		if resp.Amount, err = kernel.NewMoney(amount); err != nil {
			return nil, err
		}

		payouts = append(payouts, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payouts, nil
}

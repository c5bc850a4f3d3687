package queries

import (
	"context"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStaleTransitOrdersQueryHandler finds in-transit orders whose row has not
// changed since the cutoff. Position samples touch the order row, so a stale
// row means the courier stopped reporting.
type GetStaleTransitOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStaleTransitOrdersQueryHandler creates a handler for stale transit queries.
// Requires a GORM database connection for query execution.
func NewGetStaleTransitOrdersQueryHandler(db *gorm.DB) GetStaleTransitOrdersQueryHandler {
	return GetStaleTransitOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve stale in-transit orders.
// Results are sorted oldest first so the longest-stalled orders surface first.
func (h GetStaleTransitOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStaleTransitOrdersQuery,
) ([]GetStaleTransitOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetStaleTransitOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			courier_id,
			updated_at
		FROM orders
		WHERE status = ? AND updated_at < ?
		ORDER BY updated_at
	`, order.InTransit, query.Cutoff()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStaleTransitOrdersQueryResponse
		var id, courierID uuid.UUID

		err = rows.Scan(
			&id,
			&courierID,
			&resp.LastUpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CourierID, err = kernel.UUIDFromBytes(courierID[:]); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"
	"settlement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves order state from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ObjectNotFoundError if no order matches the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			buyer_id,
			seller_id,
			courier_id,
			status,
			item_amount,
			delivery_fee,
			platform_fee,
			total_amount,
			last_lat,
			last_lng
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var (
		id, buyerID, sellerID uuid.UUID
		courierID             *uuid.UUID
		status                int
		itemAmount            int64
		deliveryFee           int64
		platformFee           int64
		totalAmount           int64
		lastLat, lastLng      *float64
	)

	err := row.Scan(
		&id,
		&buyerID,
		&sellerID,
		&courierID,
		&status,
		&itemAmount,
		&deliveryFee,
		&platformFee,
		&totalAmount,
		&lastLat,
		&lastLng,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{Status: order.Status(status)}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if courierID != nil {
		cID, cErr := kernel.UUIDFromBytes((*courierID)[:])
		if cErr != nil {
			return GetOrderQueryResponse{}, cErr
		}
		resp.CourierID = &cID
	}

	if resp.ItemAmount, err = kernel.NewMoney(itemAmount); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.DeliveryFee, err = kernel.NewMoney(deliveryFee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.PlatformFee, err = kernel.NewMoney(platformFee); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.Total, err = kernel.NewMoney(totalAmount); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if lastLat != nil && lastLng != nil {
		pos, posErr := kernel.NewGeoPosition(*lastLat, *lastLng)
		if posErr != nil {
			return GetOrderQueryResponse{}, posErr
		}
		resp.LastKnownPosition = &pos
	}

	return resp, nil
}

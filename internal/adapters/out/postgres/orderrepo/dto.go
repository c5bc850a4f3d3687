// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status/courier history rides along as a JSONB column: it is an
// append-only trail read back with the aggregate, never queried on its own.
// UpdatedAt is maintained by GORM and backs the stale-transit query.
type OrderDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BuyerID     uuid.UUID  `gorm:"type:uuid;index"`
	SellerID    uuid.UUID  `gorm:"type:uuid;index"`
	CourierID   *uuid.UUID `gorm:"type:uuid;index"`
	ItemAmount  int64
	DeliveryFee int64
	PlatformFee int64
	TotalAmount int64
	PickupCode  string
	DropoffCode string
	Status      int `gorm:"index"`
	LastLat     *float64
	LastLng     *float64
	History     []HistoryEntryDTO `gorm:"serializer:json;type:jsonb"`
	Version     int64
	UpdatedAt   time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// HistoryEntryDTO represents one history entry within the JSONB history column.
// Lat/Lng are set only for location samples.
type HistoryEntryDTO struct {
	Status     int       `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
	Lat        *float64  `json:"lat,omitempty"`
	Lng        *float64  `json:"lng,omitempty"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var lastLat, lastLng *float64
	if pos := aggregate.LastKnownPosition(); pos != nil {
		lat, lng := pos.Latitude(), pos.Longitude()
		lastLat, lastLng = &lat, &lng
	}

	entries := aggregate.History()
	historyDTOs := make([]HistoryEntryDTO, 0, len(entries))
	for _, entry := range entries {
		dto := HistoryEntryDTO{
			Status:     int(entry.Status),
			RecordedAt: entry.RecordedAt,
		}
		if entry.Position != nil {
			lat, lng := entry.Position.Latitude(), entry.Position.Longitude()
			dto.Lat, dto.Lng = &lat, &lng
		}
		historyDTOs = append(historyDTOs, dto)
	}

	pricing := aggregate.Pricing()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		BuyerID:     aggregate.BuyerID().Bytes(),
		SellerID:    aggregate.SellerID().Bytes(),
		CourierID:   courierID,
		ItemAmount:  pricing.ItemAmount().Amount(),
		DeliveryFee: pricing.DeliveryFee().Amount(),
		PlatformFee: pricing.PlatformFee().Amount(),
		TotalAmount: pricing.Total().Amount(),
		PickupCode:  aggregate.PickupCode(),
		DropoffCode: aggregate.DropoffCode(),
		Status:      int(aggregate.Status()),
		LastLat:     lastLat,
		LastLng:     lastLng,
		History:     historyDTOs,
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including pricing, history, and the
// last known courier position using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	buyerID, err := kernel.UUIDFromBytes(dto.BuyerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	pricing, err := restorePricing(dto)
	if err != nil {
		return nil, err
	}

	entries := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entryDTO := range dto.History {
		entry := order.HistoryEntry{
			Status:     order.Status(entryDTO.Status),
			RecordedAt: entryDTO.RecordedAt,
		}
		if entryDTO.Lat != nil && entryDTO.Lng != nil {
			pos, posErr := kernel.NewGeoPosition(*entryDTO.Lat, *entryDTO.Lng)
			if posErr != nil {
				return nil, posErr
			}
			entry.Position = &pos
		}
		entries = append(entries, entry)
	}

	var lastKnownPosition *kernel.GeoPosition
	if dto.LastLat != nil && dto.LastLng != nil {
		pos, posErr := kernel.NewGeoPosition(*dto.LastLat, *dto.LastLng)
		if posErr != nil {
			return nil, posErr
		}
		lastKnownPosition = &pos
	}

	return order.RestoreOrder(
		id, buyerID, sellerID,
		courierID,
		pricing,
		dto.PickupCode, dto.DropoffCode,
		order.Status(dto.Status),
		entries,
		lastKnownPosition,
		dto.Version,
	)
}

func restorePricing(dto OrderDTO) (order.Pricing, error) {
	itemAmount, err := kernel.NewMoney(dto.ItemAmount)
	if err != nil {
		return order.Pricing{}, err
	}

	deliveryFee, err := kernel.NewMoney(dto.DeliveryFee)
	if err != nil {
		return order.Pricing{}, err
	}

	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return order.Pricing{}, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return order.Pricing{}, err
	}

	return order.RestorePricing(itemAmount, deliveryFee, platformFee, total)
}

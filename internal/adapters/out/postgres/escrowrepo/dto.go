// Package escrowrepo provides data transfer objects and mapping functions for
// escrow entry persistence. One row exists per order, keyed by the order ID,
// so a second hold attempt for the same order violates the primary key.
package escrowrepo

import (
	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting escrow entries.
type EntryDTO struct {
	OrderID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID     uuid.UUID `gorm:"type:uuid;index"`
	HeldAmount   int64
	SellerAmount int64
	Status       int `gorm:"index"`
	Version      int64
}

// TableName specifies the database table name for escrow entries.
func (EntryDTO) TableName() string {
	return "escrow_entries"
}

// fromDomain converts an escrow entry aggregate to its database representation.
func fromDomain(aggregate *escrow.Entry) EntryDTO {
	return EntryDTO{
		OrderID:      aggregate.OrderID().Bytes(),
		SellerID:     aggregate.SellerID().Bytes(),
		HeldAmount:   aggregate.HeldAmount().Amount(),
		SellerAmount: aggregate.SellerAmount().Amount(),
		Status:       int(aggregate.Status()),
		Version:      aggregate.Version(),
	}
}

// toDomain converts a database DTO to an escrow entry aggregate.
func toDomain(dto EntryDTO) (*escrow.Entry, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	heldAmount, err := kernel.NewMoney(dto.HeldAmount)
	if err != nil {
		return nil, err
	}

	sellerAmount, err := kernel.NewMoney(dto.SellerAmount)
	if err != nil {
		return nil, err
	}

	return escrow.RestoreEntry(
		orderID, sellerID,
		heldAmount, sellerAmount,
		escrow.Status(dto.Status),
		dto.Version,
	)
}

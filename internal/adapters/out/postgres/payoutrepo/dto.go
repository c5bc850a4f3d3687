// Package payoutrepo provides data transfer objects and mapping functions
// for payout request persistence.
package payoutrepo

import (
	"time"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/payout"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting payout requests.
type RequestDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID     uuid.UUID `gorm:"type:uuid;index"`
	Amount        int64
	Destination   string
	Status        int `gorm:"index"`
	FailureReason string
	RequestedAt   time.Time
	ResolvedAt    *time.Time
}

// TableName specifies the database table name for payout requests.
func (RequestDTO) TableName() string {
	return "payout_requests"
}

// fromDomain converts a payout request aggregate to its database representation.
func fromDomain(aggregate *payout.Request) RequestDTO {
	return RequestDTO{
		ID:            aggregate.ID().Bytes(),
		AccountID:     aggregate.AccountID().Bytes(),
		Amount:        aggregate.Amount().Amount(),
		Destination:   aggregate.Destination(),
		Status:        int(aggregate.Status()),
		FailureReason: aggregate.FailureReason(),
		RequestedAt:   aggregate.RequestedAt(),
		ResolvedAt:    aggregate.ResolvedAt(),
	}
}

// toDomain converts a database DTO to a payout request aggregate.
func toDomain(dto RequestDTO) (*payout.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	return payout.RestoreRequest(
		id, accountID,
		amount,
		dto.Destination,
		payout.Status(dto.Status),
		dto.FailureReason,
		dto.RequestedAt,
		dto.ResolvedAt,
	)
}

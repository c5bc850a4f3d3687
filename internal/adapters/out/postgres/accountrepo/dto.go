// Package accountrepo provides data transfer objects and mapping functions
// for balance account persistence.
package accountrepo

import (
	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AccountDTO represents the database structure for persisting balance accounts.
type AccountDTO struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Balance int64
	Version int64
}

// TableName specifies the database table name for balance accounts.
func (AccountDTO) TableName() string {
	return "accounts"
}

// fromDomain converts an account aggregate to its database representation.
func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		UserID:  aggregate.UserID().Bytes(),
		Balance: aggregate.Balance().Amount(),
		Version: aggregate.Version(),
	}
}

// toDomain converts a database DTO to an account aggregate.
func toDomain(dto AccountDTO) (*account.Account, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	balance, err := kernel.NewMoney(dto.Balance)
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(userID, balance, dto.Version)
}

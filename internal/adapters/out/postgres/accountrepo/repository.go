package accountrepo

import (
	"context"
	"errors"

	"settlement/internal/core/domain/model/account"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB, tracker aggregateTracker) *GormAccountRepository {
	return &GormAccountRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves an account by user ID.
func (r *GormAccountRepository) Get(ctx context.Context, userID kernel.UUID) (*account.Account, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOrCreate retrieves an account, inserting an empty one if the user has
// never held a balance. A concurrent first credit is resolved by re-reading
// after a duplicate key insert.
func (r *GormAccountRepository) GetOrCreate(ctx context.Context, userID kernel.UUID) (*account.Account, error) {
	acct, err := r.Get(ctx, userID)
	if err == nil {
		return acct, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	fresh, err := account.NewAccount(userID)
	if err != nil {
		return nil, err
	}

	dto := fromDomain(fresh)
	dto.Version = 1
	if insertErr := r.db.WithContext(ctx).Create(&dto).Error; insertErr != nil {
		if errors.Is(insertErr, gorm.ErrDuplicatedKey) {
			return r.Get(ctx, userID)
		}
		return nil, insertErr
	}

	return toDomain(dto)
}

// Update persists a changed balance using a version check, the same
// optimistic scheme as the order repository.
func (r *GormAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	loadedVersion := dto.Version
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&AccountDTO{}).
		Where("user_id = ? AND version = ?", dto.UserID, loadedVersion).
		Select("*").
		Omit("user_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("account", nil)
	}

	r.tracker.TrackAggregate(aggregate.UserID(), aggregate)
	return nil
}

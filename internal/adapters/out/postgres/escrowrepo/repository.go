package escrowrepo

import (
	"context"
	"errors"

	"settlement/internal/core/domain/model/escrow"
	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEscrowRepository implements EscrowRepository using GORM.
type GormEscrowRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEscrowRepository creates a new GORM escrow repository.
func NewGormEscrowRepository(db *gorm.DB, tracker aggregateTracker) *GormEscrowRepository {
	return &GormEscrowRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new Held entry to the database. The order ID is the primary
// key, so opening a second entry for the same order fails with
// escrow.ErrDuplicateEntry.
func (r *GormEscrowRepository) Add(ctx context.Context, aggregate *escrow.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return escrow.ErrDuplicateEntry
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// UpdateFromHeld persists a resolved entry with a compare-and-set against the
// Held status. At most one caller ever moves an entry out of Held: the loser
// of a race matches zero rows and gets escrow.ErrAlreadyResolved.
func (r *GormEscrowRepository) UpdateFromHeld(ctx context.Context, aggregate *escrow.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Where("order_id = ? AND status = ?", dto.OrderID, int(escrow.Held)).
		Select("*").
		Omit("order_id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return escrow.ErrAlreadyResolved
	}

	r.tracker.TrackAggregate(aggregate.OrderID(), aggregate)
	return nil
}

// GetByOrderID retrieves the entry for an order.
func (r *GormEscrowRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*escrow.Entry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("escrow entry", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

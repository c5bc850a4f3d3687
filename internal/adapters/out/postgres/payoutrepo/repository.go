package payoutrepo

import (
	"context"
	"errors"

	"settlement/internal/core/domain/model/kernel"
	"settlement/internal/core/domain/model/payout"
	"settlement/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPayoutRepository implements PayoutRepository using GORM.
type GormPayoutRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPayoutRepository creates a new GORM payout repository.
func NewGormPayoutRepository(db *gorm.DB, tracker aggregateTracker) *GormPayoutRepository {
	return &GormPayoutRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pending payout request.
func (r *GormPayoutRepository) Add(ctx context.Context, aggregate *payout.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists a resolved request. The write is guarded against double
// resolution: only a row still in Pending status is changed, so a second
// concurrent verdict fails with payout.ErrRequestAlreadyResolved.
func (r *GormPayoutRepository) Update(ctx context.Context, aggregate *payout.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	result := r.db.WithContext(ctx).
		Model(&RequestDTO{}).
		Where("id = ? AND status = ?", dto.ID, int(payout.Pending)).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return payout.ErrRequestAlreadyResolved
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payout request by ID.
func (r *GormPayoutRepository) Get(ctx context.Context, id kernel.UUID) (*payout.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payout request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

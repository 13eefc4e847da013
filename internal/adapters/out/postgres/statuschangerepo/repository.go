package statuschangerepo

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusChangeRepository implements StatusChangeRepository using GORM.
type GormStatusChangeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStatusChangeRepository creates a new GORM status change repository.
func NewGormStatusChangeRepository(db *gorm.DB, tracker aggregateTracker) *GormStatusChangeRepository {
	return &GormStatusChangeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a status change record to the audit trail.
func (r *GormStatusChangeRepository) Add(ctx context.Context, record *order.StatusChange) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}

// GetByOrderNumber retrieves the full transition history of an order,
// oldest first. An order with no recorded transitions yields an empty slice.
func (r *GormStatusChangeRepository) GetByOrderNumber(
	ctx context.Context,
	orderNumber int64,
) ([]*order.StatusChange, error) {
	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_number = ?", orderNumber).
		Order("occurred_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	records := make([]*order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

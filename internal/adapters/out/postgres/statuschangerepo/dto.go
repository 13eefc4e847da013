// Package statuschangerepo persists the transition audit trail. Each row is
// one edge an order walked through the lifecycle graph, appended in the same
// transaction as the order's status update.
package statuschangerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO represents the database structure for one recorded
// transition. Rows are append-only; the order number index serves the
// history query.
type StatusChangeDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber int64     `gorm:"index"`
	FromStatus  int
	ToStatus    int
	OccurredAt  time.Time
}

// TableName specifies the database table name for status change records.
// Overrides GORM's default naming convention to use "status_changes".
func (StatusChangeDTO) TableName() string {
	return "status_changes"
}

// fromDomain converts a status change record to its database representation.
func fromDomain(record *order.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		ID:          record.ID().Bytes(),
		OrderNumber: record.OrderNumber(),
		FromStatus:  int(record.From()),
		ToStatus:    int(record.To()),
		OccurredAt:  record.OccurredAt(),
	}
}

// toDomain converts a database DTO to a status change record.
func toDomain(dto StatusChangeDTO) (*order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreStatusChange(
		id,
		dto.OrderNumber,
		order.Status(dto.FromStatus),
		order.Status(dto.ToStatus),
		dto.OccurredAt,
	)
}

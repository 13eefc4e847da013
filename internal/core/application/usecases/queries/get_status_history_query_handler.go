package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusHistoryQueryHandler retrieves the recorded transitions of an
// order from the audit table. An order with no history yields an empty
// slice, not an error; the caller decides whether that means "unknown
// order" or "created but never moved".
type GetStatusHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusHistoryQueryHandler creates a handler for transition history queries.
// Requires a GORM database connection for query execution.
func NewGetStatusHistoryQueryHandler(db *gorm.DB) GetStatusHistoryQueryHandler {
	return GetStatusHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's transitions,
// oldest first.
func (h GetStatusHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetStatusHistoryQuery,
) ([]GetStatusHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetStatusHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			occurred_at
		FROM status_changes
		WHERE order_number = ?
		ORDER BY occurred_at
	`, query.OrderNumber()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fromStatus, toStatus int
		var occurredAt time.Time

		err = rows.Scan(
			&fromStatus,
			&toStatus,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		history = append(history, GetStatusHistoryQueryResponse{
			From:       order.Status(fromStatus),
			To:         order.Status(toStatus),
			OccurredAt: occurredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

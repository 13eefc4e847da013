package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetStatusHistoryQueryIsNotConstructed = errors.New(
	"GetStatusHistoryQuery must be created via NewGetStatusHistoryQuery constructor",
)

// GetStatusHistoryQuery retrieves the transition audit trail of one order,
// oldest change first. Each entry records the edge that was walked and
// when it happened.
//
// Example:
//
//	query, _ := NewGetStatusHistoryQuery(42)
//	handler := NewGetStatusHistoryQueryHandler(db)
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, entry := range history {
//	    fmt.Printf("%s -> %s at %s\n", entry.From, entry.To, entry.OccurredAt)
//	}
type GetStatusHistoryQuery struct {
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewGetStatusHistoryQuery creates a history query for the order with the
// given upstream number. Returns an error if the number is not positive.
func NewGetStatusHistoryQuery(orderNumber int64) (GetStatusHistoryQuery, error) {
	if orderNumber <= 0 {
		return GetStatusHistoryQuery{}, ErrOrderNumberIsInvalid
	}

	return GetStatusHistoryQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStatusHistoryQueryIsNotConstructed if validation fails.
func (q GetStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusHistoryQueryIsNotConstructed)
}

// OrderNumber returns the upstream identifier of the order.
func (q GetStatusHistoryQuery) OrderNumber() int64 {
	return q.orderNumber
}

// GetStatusHistoryQueryResponse represents one recorded transition.
type GetStatusHistoryQueryResponse struct {
	From       order.Status
	To         order.Status
	OccurredAt time.Time
}

// Package queries contains read-only operations over the order store.
// Implements the Query side of the CQRS architecture: handlers read
// directly through GORM (and the status cache where it helps) without
// going through aggregates or units of work.
package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetOrderStatusQueryIsNotConstructed = errors.New(
		"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
	)
	ErrOrderNumberIsInvalid = errors.New("order number must be greater than 0")
)

// GetOrderStatusQuery retrieves the current lifecycle position of one order:
// its canonical status, the statuses it may legally move to next, and the
// terminal/cancellable predicates. This is the tracking-page read, so the
// handler consults the status cache before touching the database.
//
// Example:
//
//	query, _ := NewGetOrderStatusQuery(42)
//	handler := NewGetOrderStatusQueryHandler(db, cache, logger)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("order %d is %s\n", resp.OrderNumber, resp.Status)
type GetOrderStatusQuery struct {
	orderNumber int64

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a query for the order with the given
// upstream number. Returns an error if the number is not positive.
func NewGetOrderStatusQuery(orderNumber int64) (GetOrderStatusQuery, error) {
	if orderNumber <= 0 {
		return GetOrderStatusQuery{}, ErrOrderNumberIsInvalid
	}

	return GetOrderStatusQuery{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderStatusQueryIsNotConstructed if validation fails.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// OrderNumber returns the upstream identifier of the order to look up.
func (q GetOrderStatusQuery) OrderNumber() int64 {
	return q.orderNumber
}

// GetOrderStatusQueryResponse describes where an order currently sits in
// the lifecycle graph.
type GetOrderStatusQueryResponse struct {
	OrderNumber   int64
	Status        order.Status
	NextStatuses  []order.Status
	IsTerminal    bool
	IsCancellable bool
}

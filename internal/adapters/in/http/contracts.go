package http

import "time"

// Error is the uniform error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewOrder is the request body for creating an order.
type NewOrder struct {
	OrderNumber int64  `json:"order_number"`
	Address     string `json:"address"`
}

// StatusChangeRequest is the request body for a status transition.
// The status may be any recognized spelling; the response carries the
// canonical name.
type StatusChangeRequest struct {
	Status string `json:"status"`
}

// StatusChangeResponse reports the canonical status an order landed in.
type StatusChangeResponse struct {
	OrderNumber int64  `json:"order_number"`
	Status      string `json:"status"`
}

// OrderStatus is the tracking view of one order.
type OrderStatus struct {
	OrderNumber   int64    `json:"order_number"`
	Status        string   `json:"status"`
	NextStatuses  []string `json:"next_statuses"`
	IsTerminal    bool     `json:"is_terminal"`
	IsCancellable bool     `json:"is_cancellable"`
}

// ActiveOrder is one in-flight order in the dashboard listing.
type ActiveOrder struct {
	ID          string    `json:"id"`
	OrderNumber int64     `json:"order_number"`
	Address     string    `json:"address"`
	Status      string    `json:"status"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HistoryEntry is one recorded transition in an order's audit trail.
type HistoryEntry struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

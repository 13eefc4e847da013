// Package rabbit publishes order lifecycle events to RabbitMQ. The
// notification service consumes the status-changed queue to message
// customers about their orders.
package rabbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/order"

	amqp "github.com/rabbitmq/amqp091-go"
)

// StatusChangedQueue is the durable queue carrying order status events.
const StatusChangedQueue = "order.status_changed"

const publishTimeout = 3 * time.Second

// statusChangedEvent is the wire contract for a status change. Statuses go
// out as canonical lowercase names so consumers never see enum ordinals.
type statusChangedEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	OrderNumber int64     `json:"order_number"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// Publisher sends status change events through an AMQP channel.
// Implements ports.StatusChangedPublisher.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher opens a channel on the connection and declares the status
// queue, so publishing never fails due to missing infra.
func NewPublisher(conn *amqp.Connection) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}

	_, err = ch.QueueDeclare(StatusChangedQueue, true, false, false, false, nil)
	if err != nil {
		return nil, fmt.Errorf("declare %s: %w", StatusChangedQueue, err)
	}

	return &Publisher{ch: ch}, nil
}

// Close releases the AMQP channel.
func (p *Publisher) Close() error {
	return p.ch.Close()
}

// Publish sends one status change event to the status queue.
func (p *Publisher) Publish(ctx context.Context, change *order.StatusChange) error {
	ev := statusChangedEvent{
		EventType:   "OrderStatusChanged",
		EventID:     change.ID().String(),
		OrderNumber: change.OrderNumber(),
		From:        change.From().String(),
		To:          change.To().String(),
		OccurredAt:  change.OccurredAt(),
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal OrderStatusChanged: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		"",                 // default exchange
		StatusChangedQueue, // queue name as routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

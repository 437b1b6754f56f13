// Package queue publishes domain events to RabbitMQ for downstream
// consumers (notifications, analytics). Publish failures are logged and
// returned so callers can ignore them without interrupting checkout.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"concert-ticketing-platform/internal/models"
)

const orderCompletedQueue = "order.completed"

// OrderCompletedEvent is published when an order's payment settles. It
// carries enough for consumers to notify the customer without querying
// the primary database.
type OrderCompletedEvent struct {
	OrderID          int    `json:"order_id"`
	OrderNumber      string `json:"order_number"`
	UserID           int    `json:"user_id"`
	CustomerName     string `json:"customer_name"`
	CustomerEmail    string `json:"customer_email"`
	TotalAmountCents int    `json:"total_amount_cents"`
	TicketCount      int    `json:"ticket_count"`
	TransactionID    string `json:"transaction_id"`
	SettledAt        string `json:"settled_at"`
}

// Publisher publishes order events over a long-lived AMQP connection
type Publisher struct {
	conn *amqp.Connection
}

// NewPublisher dials the broker. Returns an error when the broker is
// unreachable; callers typically log it and run without a publisher.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	return &Publisher{conn: conn}, nil
}

// Close closes the broker connection
func (p *Publisher) Close() error {
	return p.conn.Close()
}

// PublishOrderCompleted publishes an OrderCompletedEvent to the
// "order.completed" queue. Messages are persistent so they survive broker
// restarts.
func (p *Publisher) PublishOrderCompleted(ctx context.Context, order *models.Order) error {
	ch, err := p.conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(orderCompletedQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	event := OrderCompletedEvent{
		OrderID:          order.ID,
		OrderNumber:      order.OrderNumber,
		UserID:           order.UserID,
		CustomerName:     order.CustomerName,
		CustomerEmail:    order.CustomerEmail,
		TotalAmountCents: order.TotalAmount,
		TicketCount:      order.Quantity,
		TransactionID:    order.TransactionID,
	}
	if order.PaymentDate != nil {
		event.SettledAt = order.PaymentDate.UTC().Format(time.RFC3339)
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event failed: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", orderCompletedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}

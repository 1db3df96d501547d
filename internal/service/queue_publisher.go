// Package queue_publisher publishes record-change events to RabbitMQ.
// Errors are logged and returned so callers can treat publishing as
// best-effort without interrupting the request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/hotel-venue-manager/internal/queue"
)

// Publisher is a nullary handle implementing the handler layer's event sink.
// It exists so handlers can hold an interface value and tests can swap in a
// recording fake; the zero value is ready to use.
type Publisher struct{}

// RecordChanged publishes ev to the record.changed queue, best-effort.
func (Publisher) RecordChanged(ctx context.Context, ev q.RecordChangedEvent) error {
	return PublishRecordChanged(ctx, ev)
}

// PublishRecordChanged delivers one event to the record.changed queue.  A
// fresh connection is dialed per call; mutation volume here is operator
// clicks, not machine traffic, so connection churn is cheaper than managing a
// long-lived channel across reconnects.  Messages are marked persistent and
// the queue is declared durable on every call so either side can start first.
func PublishRecordChanged(ctx context.Context, event q.RecordChangedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(q.RecordQueue, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	// Default exchange; routing key is the queue name.
	if err := ch.PublishWithContext(ctx, "", q.RecordQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

// Package intake_publisher publishes intake events to RabbitMQ.  Errors
// are logged and returned so callers can ignore failures without
// interrupting the request that triggered the event.
package intake_publisher

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/trinesolutions/website-backend/internal/queue"
)

// PublishIntakeReceived publishes an IntakeEvent to the durable
// "intake.received" queue.  Messages are marked persistent so they survive
// broker restarts; any failure is logged and returned, never panicked.
func PublishIntakeReceived(ctx context.Context, event q.IntakeEvent) error {
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

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare("intake.received", true, false, false, false, nil); err != nil {
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
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", "intake.received", false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}

// Package queue publishes floor events to RabbitMQ so other back-office
// services (notifications, analytics) can react without polling the store.
// Failures are logged and never reach the request that caused the event.
package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/yeremiapane/restaurant-floorplan/floorplan"
	"github.com/yeremiapane/restaurant-floorplan/utils"
)

const publishTimeout = 5 * time.Second

type Publisher struct {
	URL   string
	Queue string
}

// NewPublisher returns nil when url is empty so the caller can leave it out
// of the notifier fan-out.
func NewPublisher(url, queue string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{URL: url, Queue: queue}
}

// Notify publishes in the background.
func (p *Publisher) Notify(ev floorplan.Event) {
	if p == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.Publish(ctx, ev); err != nil {
			utils.ErrorLogger.Printf("rabbitmq: publish %s event %s failed: %v", ev.Type, ev.ID, err)
		}
	}()
}

// Publish sends ev to the durable queue, declaring it first.
func (p *Publisher) Publish(ctx context.Context, ev floorplan.Event) error {
	msg, err := newPublishing(ev)
	if err != nil {
		return err
	}

	conn, err := amqp.DialConfig(p.URL, amqp.Config{Dial: amqp.DefaultDial(2 * time.Second)})
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.Queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.Queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		msg,
	)
}

func newPublishing(ev floorplan.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    ev.ID,
		Type:         ev.Type,
		Timestamp:    ev.At,
		Body:         body,
	}, nil
}

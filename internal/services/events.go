package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const reviewCreatedQueue = "review.created"

// ReviewCreatedEvent is published whenever a review is stored.
type ReviewCreatedEvent struct {
	ReviewID    int64   `json:"review_id"`
	FragranceID int64   `json:"fragrance_id"`
	UserID      int64   `json:"user_id"`
	Rating      float64 `json:"rating"`
	CreatedAt   string  `json:"created_at"`
}

// EventPublisher publishes domain events to RabbitMQ. Publishing is
// fire-and-forget: failures are logged and never interrupt the request.
type EventPublisher struct {
	url string
}

// NewEventPublisher returns a publisher for the given AMQP URL. An
// empty URL disables publishing.
func NewEventPublisher(url string) *EventPublisher {
	return &EventPublisher{url: url}
}

// PublishReviewCreated sends a ReviewCreatedEvent to the review.created
// queue. Messages are marked persistent so they survive broker restarts.
func (p *EventPublisher) PublishReviewCreated(ctx context.Context, event ReviewCreatedEvent) error {
	if p.url == "" {
		return nil
	}

	conn, err := amqp.Dial(p.url)
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

	if _, err := ch.QueueDeclare(reviewCreatedQueue, true, false, false, false, nil); err != nil {
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

	if err := ch.PublishWithContext(ctx, "", reviewCreatedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}

	return nil
}

// Package events publishes domain events to a RabbitMQ topic exchange
// after the owning transaction has committed. Delivery is best effort.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
)

const (
	TypeRidePublished     = "ride.published"
	TypeRideStatusChanged = "ride.status_changed"
	TypeBookingConfirmed  = "booking.confirmed"
	TypeBookingCancelled  = "booking.cancelled"
	TypeReviewSubmitted   = "review.submitted"
)

const publishTimeout = 5 * time.Second

type sender interface {
	Publish(ctx context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error
}

type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type reviewPayload struct {
	Review *domain.Review     `json:"review"`
	Rating *domain.UserRating `json:"rating"`
}

// Publisher implements the service event port. A Publisher without a
// sender only logs, which is how the service runs without a broker.
type Publisher struct {
	sender sender
	logger logger.Logger
}

func NewPublisher(s sender, logger logger.Logger) *Publisher {
	return &Publisher{sender: s, logger: logger}
}

func NewDisabled(logger logger.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Connect dials the broker, declares a durable topic exchange and returns
// a publisher bound to it together with the client to close on shutdown.
func Connect(url, exchange string, log logger.Logger) (*Publisher, *rabbitmq.RabbitClient, error) {
	client, err := rabbitmq.NewClient(rabbitmq.ClientConfig{
		URL:            url,
		ConnectionName: "carpool",
		ConnectTimeout: 5 * time.Second,
		Heartbeat:      10 * time.Second,
		ReconnectStrat: retry.Strategy{Attempts: 5, Delay: time.Second, Backoff: 2},
		ProducingStrat: retry.Strategy{Attempts: 3, Delay: 100 * time.Millisecond, Backoff: 2},
		ConsumingStrat: retry.Strategy{Attempts: 3, Delay: 100 * time.Millisecond, Backoff: 2},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect rabbitmq: %w", err)
	}

	if err = client.DeclareExchange(exchange, "topic", true, false, false, nil); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	return NewPublisher(rabbitmq.NewPublisher(client, exchange, "application/json"), log), client, nil
}

func (p *Publisher) RidePublished(ctx context.Context, ride *domain.Ride) {
	p.publish(ctx, TypeRidePublished, ride.ID, ride)
}

func (p *Publisher) RideStatusChanged(ctx context.Context, ride *domain.Ride) {
	p.publish(ctx, TypeRideStatusChanged, ride.ID, ride)
}

func (p *Publisher) BookingConfirmed(ctx context.Context, booking *domain.Booking) {
	p.publish(ctx, TypeBookingConfirmed, booking.RideID, booking)
}

func (p *Publisher) BookingCancelled(ctx context.Context, booking *domain.Booking) {
	p.publish(ctx, TypeBookingCancelled, booking.RideID, booking)
}

func (p *Publisher) ReviewSubmitted(ctx context.Context, review *domain.Review, rating *domain.UserRating) {
	p.publish(ctx, TypeReviewSubmitted, review.TargetUserID, reviewPayload{Review: review, Rating: rating})
}

// publish routes as "<type>.<entity id>" so consumers can bind per entity.
func (p *Publisher) publish(ctx context.Context, eventType, entityID string, payload any) {
	if p.sender == nil {
		p.logger.Debug("event dropped, broker disabled",
			logger.String("type", eventType),
			logger.String("entity_id", entityID),
		)
		return
	}

	body, err := json.Marshal(Envelope{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		p.logger.Error("failed to marshal event",
			logger.String("type", eventType),
			logger.String("error", err.Error()),
		)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	routingKey := eventType + "." + entityID
	if err = p.sender.Publish(ctx, body, routingKey,
		rabbitmq.WithHeaders(amqp091.Table{"event_type": eventType}),
	); err != nil {
		p.logger.Error("failed to publish event",
			logger.String("type", eventType),
			logger.String("routing_key", routingKey),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("event published",
		logger.String("type", eventType),
		logger.String("routing_key", routingKey),
	)
}

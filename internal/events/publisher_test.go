package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tendolkarurja/IPD/internal/domain"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/rabbitmq"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type sent struct {
	body       []byte
	routingKey string
	headers    amqp091.Table
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []sent
	err  error
}

func (s *recordingSender) Publish(_ context.Context, body []byte, routingKey string, opts ...rabbitmq.PublishOption) error {
	var pub amqp091.Publishing
	for _, opt := range opts {
		opt(&pub)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, sent{body: body, routingKey: routingKey, headers: pub.Headers})
	return s.err
}

func TestPublisher_BookingConfirmed(t *testing.T) {
	s := &recordingSender{}
	p := NewPublisher(s, newTestLogger(t))

	p.BookingConfirmed(context.Background(), &domain.Booking{ID: "b1", RideID: "r1", SeatsBooked: 2})

	require.Len(t, s.msgs, 1)
	msg := s.msgs[0]
	assert.Equal(t, "booking.confirmed.r1", msg.routingKey)
	assert.Equal(t, TypeBookingConfirmed, msg.headers["event_type"])

	var env struct {
		Type    string         `json:"type"`
		Payload domain.Booking `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.body, &env))
	assert.Equal(t, TypeBookingConfirmed, env.Type)
	assert.Equal(t, "b1", env.Payload.ID)
	assert.Equal(t, 2, env.Payload.SeatsBooked)
}

func TestPublisher_ReviewSubmittedRoutesByTarget(t *testing.T) {
	s := &recordingSender{}
	p := NewPublisher(s, newTestLogger(t))

	p.ReviewSubmitted(context.Background(),
		&domain.Review{ID: "rv1", TargetUserID: "u1"},
		&domain.UserRating{UserID: "u1", AverageRating: 4, RidesCompleted: 1},
	)

	require.Len(t, s.msgs, 1)
	assert.Equal(t, "review.submitted.u1", s.msgs[0].routingKey)
}

func TestPublisher_SendErrorIsSwallowed(t *testing.T) {
	s := &recordingSender{err: errors.New("channel closed")}
	p := NewPublisher(s, newTestLogger(t))

	assert.NotPanics(t, func() {
		p.RidePublished(context.Background(), &domain.Ride{ID: "r1"})
	})
	assert.Len(t, s.msgs, 1)
}

func TestPublisher_Disabled(t *testing.T) {
	p := NewDisabled(newTestLogger(t))

	assert.NotPanics(t, func() {
		p.RideStatusChanged(context.Background(), &domain.Ride{ID: "r1"})
	})
}

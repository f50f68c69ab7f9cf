package service

import (
	"context"
	"encoding/json"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/server/internal/model"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventPublisher interface {
	Publish(ctx context.Context, event kafka.EventBooking) error
}

type eventPublisher struct {
	producer sarama.SyncProducer
}

func NewEventPublisher(producer sarama.SyncProducer) EventPublisher {
	return &eventPublisher{
		producer: producer,
	}
}

func (p *eventPublisher) Publish(_ context.Context, event kafka.EventBooking) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookingEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err = p.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

// publishBookingEvent is fire-and-forget: a broker outage must not fail the
// request that already committed.
func (s *Service) publishBookingEvent(ctx context.Context, eventType string, b model.Booking) {
	if s.events == nil {
		return
	}
	event := kafka.EventBooking{
		EventUID:  uuid.NewString(),
		Type:      eventType,
		BookingID: b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Timestamp: s.now().UTC(),
	}
	if err := s.events.Publish(ctx, event); err != nil {
		s.log.Warn("publish booking event", zap.String("type", eventType), zap.Error(err))
	}
}

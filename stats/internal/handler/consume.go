package handler

import (
	"encoding/json"

	"github.com/practicum/shareit/pkg/kafka"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// Consumer drains booking events into the store.
type Consumer struct {
	svc StatsService
	log *zap.Logger
}

var _ sarama.ConsumerGroupHandler = (*Consumer)(nil)

func NewConsumer(svc StatsService, log *zap.Logger) *Consumer {
	return &Consumer{
		svc: svc,
		log: log.Named("consumer"),
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim records every event in the claim. A malformed message is
// logged and skipped; a store failure leaves the message unmarked so it is
// redelivered.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event kafka.EventBooking
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			c.log.Warn("malformed event", zap.Error(err), zap.Int64("offset", msg.Offset))
			session.MarkMessage(msg, "")
			continue
		}
		if err := c.svc.Record(session.Context(), event); err != nil {
			c.log.Error("record event", zap.Error(err), zap.String("event", event.EventUID))
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}

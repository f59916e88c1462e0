package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/firsthome/affordability-service/internal/domain/event"
	"github.com/firsthome/affordability-service/internal/infrastructure/config"
)

// KafkaEventPublisher implements port.EventPublisher by writing
// JSON-serialised domain events to a Kafka topic, keyed by aggregate ID so
// events for one scenario stay ordered within a partition.
type KafkaEventPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the configured
// brokers and topic.
func NewKafkaEventPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaEventPublisher {
	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafkago.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafkago.RequireOne,
	}

	return &KafkaEventPublisher{
		writer: writer,
		logger: logger,
	}
}

// Publish serialises and sends domain events.
func (p *KafkaEventPublisher) Publish(ctx context.Context, events ...event.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]kafkago.Message, 0, len(events))
	for _, evt := range events {
		payload, err := json.Marshal(evt)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", evt.EventType(), err)
		}

		messages = append(messages, kafkago.Message{
			Key:   []byte(evt.AggregateID()),
			Value: payload,
			Headers: []kafkago.Header{
				{Key: "event_type", Value: []byte(evt.EventType())},
				{Key: "tenant_id", Value: []byte(evt.TenantID())},
			},
		})

		p.logger.Debug("publishing domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"payload_size", len(payload),
		)
	}

	if err := p.writer.WriteMessages(ctx, messages...); err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *KafkaEventPublisher) Close() error {
	return p.writer.Close()
}

// NopEventPublisher discards events; used when no broker is configured.
type NopEventPublisher struct {
	logger *slog.Logger
}

// NewNopEventPublisher creates a publisher that only logs.
func NewNopEventPublisher(logger *slog.Logger) *NopEventPublisher {
	return &NopEventPublisher{logger: logger}
}

// Publish logs the events and drops them.
func (p *NopEventPublisher) Publish(_ context.Context, events ...event.DomainEvent) error {
	for _, evt := range events {
		p.logger.Info("domain event (no broker configured)",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
		)
	}
	return nil
}

// Package events publishes trip-planner domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/draymaster/trip-planner/pkg/logger"
)

// Event is a domain event envelope.
type Event struct {
	ID     string      `json:"id"`
	Type   string      `json:"type"`
	Source string      `json:"source"`
	Time   time.Time   `json:"time"`
	Data   interface{} `json:"data"`
}

// NewEvent builds an Event with a fresh ID and UTC timestamp.
func NewEvent(eventType, source string, data interface{}) *Event {
	return &Event{
		ID:     uuid.New().String(),
		Type:   eventType,
		Source: source,
		Time:   time.Now().UTC(),
		Data:   data,
	}
}

// Producer publishes events to a Kafka topic.
type Producer struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewProducer creates a producer against the given brokers. If brokers
// is empty, the returned producer is a no-op (Publish always succeeds
// without writing), matching how the demo binary runs without Kafka
// configured.
func NewProducer(brokers []string, log *logger.Logger) *Producer {
	if log == nil {
		log = logger.Default()
	}
	if len(brokers) == 0 {
		return &Producer{logger: log}
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			RequiredAcks: kafka.RequireAll,
			Async:        false,
		},
		logger: log,
	}
}

// Publish writes event to topic. Callers that treat publication as
// best-effort should log rather than propagate the returned error.
func (p *Producer) Publish(ctx context.Context, topic string, event *Event) error {
	if p.writer == nil {
		return nil
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(event.ID),
		Value: data,
	}); err != nil {
		p.logger.WithError(err).WithFields(map[string]interface{}{
			"topic":      topic,
			"event_type": event.Type,
			"event_id":   event.ID,
		}).Warn("failed to publish event")
		return err
	}

	p.logger.WithFields(map[string]interface{}{
		"topic":      topic,
		"event_type": event.Type,
		"event_id":   event.ID,
	}).Debug("event published")
	return nil
}

// Close releases the underlying Kafka writer, if any.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	if err := p.writer.Close(); err != nil {
		p.logger.WithError(err).Warn("failed to close kafka writer")
		return err
	}
	return nil
}
